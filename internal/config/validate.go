package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/gem-translator/internal/types"
)

const priorSumTolerance = 1e-6

// Validate checks structural constraints via struct tags and then runs the
// semantic checks the tags cannot express: priors summing to one, class
// ranges being ordered, rule actions being well formed and every fallback
// reference resolving.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	for name, td := range c.Vocabulary {
		if err := validateTypeDef(name, td); err != nil {
			return err
		}
	}

	hasCatchAll := false
	for _, r := range c.TypeRules {
		if err := validateTypeRule(c, r); err != nil {
			return err
		}
		if isEmptyConditions(r.If) && r.Then.Type != "" {
			hasCatchAll = true
		}
	}
	if !hasCatchAll {
		return &ValidationError{Section: "type_rules",
			Message: "no unconditional catch-all rule with a fixed type"}
	}

	for key, weights := range c.FallbackPriors {
		if len(weights) == 0 {
			return &ValidationError{Section: "fallback_priors", ID: key, Message: "empty distribution"}
		}
		for _, tw := range weights {
			if _, ok := c.Vocabulary[tw.Type]; !ok {
				return &ValidationError{Section: "fallback_priors", ID: key,
					Message: fmt.Sprintf("references unknown type %q", tw.Type)}
			}
		}
	}

	if _, ok := c.Vocabulary[c.Tuning.FailsafeType]; !ok {
		return &ValidationError{Section: "tuning",
			Message: fmt.Sprintf("failsafe type %q not in vocabulary", c.Tuning.FailsafeType)}
	}

	for _, ov := range c.Overrides {
		if ov.Input == "" || ov.Type == "" {
			return &ValidationError{Section: "overrides", ID: ov.Input,
				Message: "both gem and type are required"}
		}
		if ov.VCClass != "" && types.ClassIndex(ov.VCClass) < 0 {
			return &ValidationError{Section: "overrides", ID: ov.Input,
				Message: fmt.Sprintf("unknown vulnerability class %q", ov.VCClass)}
		}
	}

	return nil
}

func validateTypeDef(name string, td TypeDef) error {
	sum := 0.0
	for cls, p := range td.Prior {
		if types.ClassIndex(cls) < 0 {
			return &ValidationError{Section: "vocabulary", ID: name,
				Message: fmt.Sprintf("prior references unknown class %q", cls)}
		}
		if p < 0 {
			return &ValidationError{Section: "vocabulary", ID: name,
				Message: fmt.Sprintf("negative prior for class %s", cls)}
		}
		sum += p
	}
	if math.Abs(sum-1.0) > priorSumTolerance {
		return &ValidationError{Section: "vocabulary", ID: name,
			Message: fmt.Sprintf("prior sums to %.6f, want 1", sum)}
	}
	lo, hi := types.ClassIndex(td.RangeMin), types.ClassIndex(td.RangeMax)
	if lo < 0 || hi < 0 || lo > hi {
		return &ValidationError{Section: "vocabulary", ID: name,
			Message: fmt.Sprintf("invalid class range %s-%s", td.RangeMin, td.RangeMax)}
	}
	if types.ClassIndex(td.MostLikely) < 0 {
		return &ValidationError{Section: "vocabulary", ID: name,
			Message: fmt.Sprintf("unknown most-likely class %q", td.MostLikely)}
	}
	return nil
}

func validateTypeRule(c *Config, r TypeRule) error {
	actions := 0
	if r.Then.Family != "" {
		actions++
	}
	if r.Then.Type != "" {
		actions++
	}
	if r.Then.Template != "" {
		actions++
	}
	if r.Then.Fallback != "" {
		actions++
	}
	if actions != 1 {
		return &ValidationError{Section: "type_rules", ID: r.ID,
			Message: fmt.Sprintf("exactly one action required, got %d", actions)}
	}
	if r.Then.Type != "" {
		if _, ok := c.Vocabulary[r.Then.Type]; !ok {
			return &ValidationError{Section: "type_rules", ID: r.ID,
				Message: fmt.Sprintf("unknown type %q", r.Then.Type)}
		}
	}
	if r.Then.Template != "" && !strings.Contains(r.Then.Template, "{erd}") {
		return &ValidationError{Section: "type_rules", ID: r.ID,
			Message: "template must contain {erd} placeholder"}
	}
	if r.Then.Fallback != "" {
		if _, ok := c.FallbackPriors[r.Then.Fallback]; !ok {
			return &ValidationError{Section: "type_rules", ID: r.ID,
				Message: fmt.Sprintf("unknown fallback key %q", r.Then.Fallback)}
		}
	}
	return nil
}

func isEmptyConditions(rc RuleConditions) bool {
	return len(rc.MaterialAny) == 0 && len(rc.MaterialL2Any) == 0 &&
		len(rc.SystemAny) == 0 && rc.Family == "" && len(rc.MissingAny) == 0
}
