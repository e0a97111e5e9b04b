package config

import "fmt"

// LoadError represents a failure to read or parse a configuration file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load config %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load config %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a configuration value that failed a semantic check.
type ValidationError struct {
	Section string
	ID      string
	Message string
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("config error: %s %q: %s", e.Section, e.ID, e.Message)
	}
	return fmt.Sprintf("config error: %s: %s", e.Section, e.Message)
}
