// Package rules implements the ordered type assignment cascade: a first pass
// fixes the material family, a second pass resolves the EMS type as a fixed
// type, an ERD-filled template or a weighted fallback distribution. The first
// matching rule wins within each pass.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/types"
)

// Outcome carries the candidates of one classification together with the
// assigned family and the IDs of every rule that matched along the way.
type Outcome struct {
	Candidates []types.Candidate
	Family     string
	RuleTrace  []string
	Warnings   []string
}

// Engine evaluates the type assignment cascade. Safe for concurrent use.
type Engine struct {
	cfg   *config.Config
	rules []config.TypeRule // priority order, input order on ties
}

// New returns an Engine with the cascade sorted by ascending priority.
func New(cfg *config.Config) *Engine {
	rules := make([]config.TypeRule, len(cfg.TypeRules))
	copy(rules, cfg.TypeRules)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })
	return &Engine{cfg: cfg, rules: rules}
}

// Classify runs both passes over a parsed record, setting rec.Family as a
// side effect. The returned candidate list is never empty.
func (e *Engine) Classify(rec *types.FeatureRecord) Outcome {
	out := Outcome{}

	for _, r := range e.rules {
		if r.Then.Family == "" {
			continue
		}
		if e.matches(r.If, rec, "") {
			out.Family = r.Then.Family
			out.RuleTrace = append(out.RuleTrace, r.ID)
			break
		}
	}
	rec.Family = out.Family

	baseConf := e.baseConfidence(rec)

	for _, r := range e.rules {
		if !e.matches(r.If, rec, out.Family) {
			continue
		}
		out.RuleTrace = append(out.RuleTrace, r.ID)
		if r.Then.Family != "" {
			continue // family rules handled in the first pass
		}

		conf := baseConf * r.ConfidencePenalty
		trace := append([]string(nil), out.RuleTrace...)

		switch {
		case r.Then.Type != "":
			out.Candidates = append(out.Candidates, types.Candidate{
				Type: r.Then.Type, Weight: 1.0, Confidence: conf,
				RuleID: r.ID, RuleTrace: trace, Flags: []string{},
			})
			return out

		case r.Then.Template != "":
			erd := rec.ERD
			if erd == "" {
				erd = "L"
			}
			out.Candidates = append(out.Candidates, types.Candidate{
				Type: strings.ReplaceAll(r.Then.Template, "{erd}", erd), Weight: 1.0,
				Confidence: conf,
				RuleID:     r.ID, RuleTrace: trace, Flags: []string{},
			})
			return out

		case r.Then.Fallback != "":
			fb := e.cfg.FallbackPriors[r.Then.Fallback]
			if len(fb) == 0 {
				out.Warnings = append(out.Warnings,
					fmt.Sprintf("fallback key %q not found in fallback priors", r.Then.Fallback))
				continue
			}
			total := 0.0
			for _, tw := range fb {
				total += tw.Weight
			}
			for _, tw := range fb {
				out.Candidates = append(out.Candidates, types.Candidate{
					Type: tw.Type, Weight: tw.Weight / total, Confidence: conf,
					RuleID: r.ID, RuleTrace: trace,
					Flags: []string{types.FlagDistributedMapping},
				})
			}
			return out
		}
	}

	// Cascades validated at load time always carry a catch-all, so this is
	// only reachable with a broken custom table.
	out.Warnings = append(out.Warnings, "no rule matched; failsafe applied")
	out.Candidates = []types.Candidate{{
		Type: e.cfg.Tuning.FailsafeType, Weight: 1.0,
		Confidence: e.cfg.Tuning.FailsafeConfidence,
		RuleID:     "FAILSAFE", RuleTrace: []string{"FAILSAFE"},
		Flags: []string{types.FlagFailsafe},
	}}
	return out
}

func (e *Engine) matches(cond config.RuleConditions, rec *types.FeatureRecord, family string) bool {
	if len(cond.MaterialAny) > 0 && !matchesMaterialAny(cond.MaterialAny, rec) {
		return false
	}
	if len(cond.MaterialL2Any) > 0 && !containsAny(rec.MaterialL2, cond.MaterialL2Any) {
		return false
	}
	if len(cond.SystemAny) > 0 && !contains(cond.SystemAny, rec.System) {
		return false
	}
	if cond.Family != "" && family != cond.Family {
		return false
	}
	if len(cond.MissingAny) > 0 {
		anyMissing := false
		for _, name := range cond.MissingAny {
			if featureMissing(rec, name) {
				anyMissing = true
				break
			}
		}
		if !anyMissing {
			return false
		}
	}
	return true
}

func matchesMaterialAny(want []string, rec *types.FeatureRecord) bool {
	if rec.Material != "" && contains(want, rec.Material) {
		return true
	}
	return containsAny(rec.MaterialL2, want) || containsAny(rec.MaterialAll, want)
}

func featureMissing(rec *types.FeatureRecord, name string) bool {
	switch name {
	case "material":
		return rec.Material == ""
	case "system":
		return rec.System == ""
	case "height", "height_bin":
		return rec.HeightBin == ""
	case "ductility", "ductility_token":
		return rec.DuctilityToken == ""
	case "year", "year_value":
		return rec.YearValue == nil
	case "occupancy":
		return rec.Occupancy == ""
	}
	return true
}

// baseConfidence scores attribute completeness. ERD counts only when backed
// by an explicit ductility token, not the defaulted level.
func (e *Engine) baseConfidence(rec *types.FeatureRecord) float64 {
	hasMat := rec.Material != ""
	hasSys := rec.System != ""
	hasH := rec.HeightBin != ""
	hasERD := rec.ERD != "" && rec.DuctilityToken != ""
	switch {
	case hasMat && hasSys && hasH && hasERD:
		return e.cfg.Rubric.Full
	case hasMat && hasSys && hasH:
		return e.cfg.Rubric.MaterialSystemHeight
	case hasMat && hasH:
		return e.cfg.Rubric.MaterialHeight
	case hasMat:
		return e.cfg.Rubric.MaterialOnly
	}
	return e.cfg.Rubric.Partial
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsAny(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}
