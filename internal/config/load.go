package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Load returns the built-in configuration overlaid with values from a JSON
// file. An empty path returns the built-in configuration unchanged. Map
// sections (vocabulary, aliases, fallback priors) are merged key by key;
// list sections (design levels, type rules, modifiers, overrides) replace
// the built-in lists when present in the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
