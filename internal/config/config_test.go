package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestDefault_VocabularyPriorsSumToOne(t *testing.T) {
	for name, td := range Default().Vocabulary {
		sum := 0.0
		for _, p := range td.Prior {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "type %s", name)
	}
}

func TestDefault_FailsafeTypeInVocabulary(t *testing.T) {
	cfg := Default()
	_, ok := cfg.Vocabulary[cfg.Tuning.FailsafeType]
	assert.True(t, ok)
}

func TestResolveDesignLevel(t *testing.T) {
	cfg := Default()
	tests := []struct {
		name      string
		codeLevel string
		ductility string
		wantLevel string
		wantScore float64
	}{
		{"exact pair", "CDL", "DUL", "L", 0.10},
		{"exact pair moderate", "CDM", "DUM", "M", 0.55},
		{"code level only", "CDM", "", "M", 0.50},
		{"ductility only", "", "DNO", "L", 0.05},
		{"ductile", "", "DUC", "H", 0.90},
		{"nothing known", "", "", "L", 0.10},
		{"unlisted pair falls back to code level", "CDM", "DUC", "M", 0.50},
		{"unlisted code level falls back to ductility", "CDH", "DNO", "L", 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := cfg.ResolveDesignLevel(tt.codeLevel, tt.ductility)
			assert.Equal(t, tt.wantLevel, dl.Level)
			assert.InDelta(t, tt.wantScore, dl.Score, 1e-9)
		})
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "M4", cfg.Tuning.FailsafeType)
	assert.NotEmpty(t, cfg.TypeRules)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "parse")
}

func TestLoad_OverlayMergesMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.json")
	overlay := `{"aliases": {"BRK": "CLBRS"}, "tuning": {
		"max_cumulative_shift": 1.5,
		"entropy_penalty_alpha": 0.25,
		"failsafe_type": "M4",
		"failsafe_confidence": 0.2,
		"invalid_type_confidence_cap": 0.3,
		"override_confidence": 0.99
	}}`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	// New alias added, built-in aliases kept.
	assert.Equal(t, "CLBRS", cfg.Aliases["BRK"])
	assert.Equal(t, "MAT99", cfg.Aliases["UNK"])
	assert.InDelta(t, 1.5, cfg.Tuning.MaxCumulativeShift, 1e-9)
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.Modifiers)
}

func TestLoad_OverlayWithExactOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	overlay := `{"exact_overrides": [
		{"gem": "/CR+CIP/LFM+CDM/H:5/", "ems_type": "RC1-M", "confidence": 0.99,
		 "doc": "field-verified moment frame"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Overrides, 1)
	assert.Equal(t, "RC1-M", cfg.Overrides[0].Type)
}

func TestValidate_RejectsBadPriorSum(t *testing.T) {
	cfg := Default()
	td := cfg.Vocabulary["M1"]
	td.Prior = map[string]float64{"A": 0.5, "B": 0.4}
	cfg.Vocabulary["M1"] = td

	err := cfg.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "vocabulary", vErr.Section)
	assert.Equal(t, "M1", vErr.ID)
}

func TestValidate_RejectsInvertedClassRange(t *testing.T) {
	cfg := Default()
	td := cfg.Vocabulary["M4"]
	td.RangeMin, td.RangeMax = "D", "B"
	cfg.Vocabulary["M4"] = td
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsRuleWithTwoActions(t *testing.T) {
	cfg := Default()
	cfg.TypeRules = append(cfg.TypeRules, TypeRule{
		ID: "BROKEN", Priority: 40,
		Then:              RuleAction{Type: "M1", Template: "RC1-{erd}"},
		ConfidencePenalty: 0.9,
	})
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownFallbackKey(t *testing.T) {
	cfg := Default()
	cfg.TypeRules = append(cfg.TypeRules, TypeRule{
		ID: "BROKEN", Priority: 40,
		Then:              RuleAction{Fallback: "NO_SUCH_KEY"},
		ConfidencePenalty: 0.9,
	})
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsTemplateWithoutPlaceholder(t *testing.T) {
	cfg := Default()
	cfg.TypeRules = append(cfg.TypeRules, TypeRule{
		ID: "BROKEN", Priority: 40,
		Then:              RuleAction{Template: "RC1-X"},
		ConfidencePenalty: 0.9,
	})
	assert.Error(t, cfg.Validate())
}

func TestValidate_RequiresCatchAllRule(t *testing.T) {
	cfg := Default()
	kept := cfg.TypeRules[:0:0]
	for _, r := range cfg.TypeRules {
		if r.ID != "FAILSAFE" {
			kept = append(kept, r)
		}
	}
	cfg.TypeRules = kept

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catch-all")
}

func TestValidate_RejectsOverrideWithBadClass(t *testing.T) {
	cfg := Default()
	cfg.Overrides = []Override{{Input: "CR/LFM/H:1", Type: "RC1-L", VCClass: "G"}}
	assert.Error(t, cfg.Validate())
}
