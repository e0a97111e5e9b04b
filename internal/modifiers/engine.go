// Package modifiers applies vulnerability-class modifiers to a base class
// distribution. Unlike the type cascade, every modifier whose conditions hold
// contributes; contributions are individually capped, summed, clamped, and
// applied as one fractional slide of the six-bin distribution.
package modifiers

import (
	"strings"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/types"
)

// Engine evaluates the modifier set. Safe for concurrent use.
type Engine struct {
	cfg *config.Config
}

// New returns an Engine over the modifier table of cfg.
func New(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Apply evaluates every modifier against the parsed record and the dominant
// candidate type, then shifts the base distribution by the clamped cumulative
// shift while confining mass to the type's hard class range. Returns the
// shifted distribution, the fired modifiers in table order and the cumulative
// shift after clamping.
func (e *Engine) Apply(base types.Distribution, rec *types.FeatureRecord, bestType string) (types.Distribution, []types.AppliedModifier, float64) {
	var applied []types.AppliedModifier
	totalShift := 0.0

	for _, mod := range e.cfg.Modifiers {
		if !e.matches(mod.If, rec, bestType) {
			continue
		}
		contrib := mod.Shift
		if mod.MaxContribution != nil {
			bound := *mod.MaxContribution
			contrib = max(-bound, min(bound, contrib))
		}
		totalShift += contrib
		applied = append(applied, types.AppliedModifier{
			ID:                mod.ID,
			Doc:               mod.Doc,
			Shift:             contrib,
			ConfidencePenalty: mod.ConfidencePenalty,
		})
	}

	limit := e.cfg.Tuning.MaxCumulativeShift
	totalShift = max(-limit, min(limit, totalShift))

	loIdx, hiIdx := 0, len(types.ClassOrder)-1
	if td, ok := e.cfg.Vocabulary[bestType]; ok {
		if i := types.ClassIndex(td.RangeMin); i >= 0 {
			loIdx = i
		}
		if i := types.ClassIndex(td.RangeMax); i >= 0 {
			hiIdx = i
		}
	}

	return shiftDistribution(base, totalShift, loIdx, hiIdx), applied, totalShift
}

// shiftDistribution slides the six-bin distribution by shift steps. A
// positive shift moves the raw vector toward higher indices (the F end),
// a negative shift toward index 0 (the A end); the range clamp below then
// decides where the mass settles. Fractional steps interpolate linearly
// between the unshifted and once-more-shifted arrays. Mass outside
// [loIdx, hiIdx] is zeroed before renormalizing; if nothing remains the
// range is filled uniformly.
func shiftDistribution(probs types.Distribution, shift float64, loIdx, hiIdx int) types.Distribution {
	n := len(types.ClassOrder)
	arr := make([]float64, n)
	for i, cls := range types.ClassOrder {
		arr[i] = probs[cls]
	}

	dir := 1
	if shift < 0 {
		dir = -1
	}
	steps := shift
	if steps < 0 {
		steps = -steps
	}
	full := int(steps)
	frac := steps - float64(full)

	for i := 0; i < full; i++ {
		arr = shiftOnce(arr, dir)
	}
	if frac > 0 {
		next := shiftOnce(arr, dir)
		for i := range arr {
			arr[i] = arr[i]*(1-frac) + next[i]*frac
		}
	}

	for i := range arr {
		if i < loIdx || i > hiIdx {
			arr[i] = 0
		}
	}

	sum := 0.0
	for _, v := range arr {
		sum += v
	}
	out := types.NewDistribution()
	if sum <= 0 {
		uniform := 1.0 / float64(hiIdx-loIdx+1)
		for i := loIdx; i <= hiIdx; i++ {
			out[types.ClassOrder[i]] = uniform
		}
		return out
	}
	for i, cls := range types.ClassOrder {
		out[cls] = arr[i] / sum
	}
	return out
}

// shiftOnce moves each bin's mass one index in direction d (d=+1 toward
// index n-1, d=-1 toward index 0); mass with no source bin collects at the
// clamp boundary. The result is renormalized by the caller.
func shiftOnce(a []float64, d int) []float64 {
	n := len(a)
	out := make([]float64, n)
	boundary := 0
	if d < 0 {
		boundary = n - 1
	}
	for i := 0; i < n; i++ {
		j := i - d
		if j >= 0 && j < n {
			out[i] += a[j]
		} else {
			out[boundary] += a[i]
		}
	}
	return out
}

//nolint:gocyclo // one branch per condition key, same shape as the rule matcher
func (e *Engine) matches(cond config.ModifierConditions, rec *types.FeatureRecord, emsType string) bool {
	if cond.FamilyIs != "" && rec.Family != cond.FamilyIs {
		return false
	}
	if len(cond.FamilyIn) > 0 && !contains(cond.FamilyIn, rec.Family) {
		return false
	}
	if cond.MaterialIs != "" && rec.Material != cond.MaterialIs {
		return false
	}
	if len(cond.MaterialAny) > 0 {
		ok := rec.Material != "" && contains(cond.MaterialAny, rec.Material)
		ok = ok || containsAny(rec.MaterialL2, cond.MaterialAny) ||
			containsAny(rec.MaterialAll, cond.MaterialAny)
		if !ok {
			return false
		}
	}
	if len(cond.MaterialL2Any) > 0 && !containsAny(rec.MaterialL2, cond.MaterialL2Any) {
		return false
	}
	if len(cond.MaterialL3Any) > 0 && !containsAny(rec.MaterialL3, cond.MaterialL3Any) {
		return false
	}
	if cond.SystemIs != "" && rec.System != cond.SystemIs {
		return false
	}
	if len(cond.SystemAny) > 0 && !contains(cond.SystemAny, rec.System) {
		return false
	}
	if len(cond.InfillAny) > 0 && !containsAny(rec.InfillMaterial, cond.InfillAny) {
		return false
	}
	if cond.ERDIs != "" && rec.ERD != cond.ERDIs {
		return false
	}
	if cond.ERDScoreBelow != nil && rec.ERDScore >= *cond.ERDScoreBelow {
		return false
	}
	if cond.ERDScoreAtLeast != nil && rec.ERDScore < *cond.ERDScoreAtLeast {
		return false
	}
	if cond.DuctilityIs != "" && rec.DuctilityToken != cond.DuctilityIs {
		return false
	}
	if len(cond.DuctilityIn) > 0 && !contains(cond.DuctilityIn, rec.DuctilityToken) {
		return false
	}
	if cond.CodeLevelIs != "" && rec.CodeLevel != cond.CodeLevelIs {
		return false
	}
	if cond.HeightBinIs != "" && rec.HeightBin != cond.HeightBinIs {
		return false
	}
	if len(cond.HeightBinIn) > 0 && !contains(cond.HeightBinIn, rec.HeightBin) {
		return false
	}
	if cond.StoriesAbove != nil {
		if rec.HeightStories == nil || *rec.HeightStories <= *cond.StoriesAbove {
			return false
		}
	}
	if cond.YearKnown != nil && (rec.YearValue != nil) != *cond.YearKnown {
		return false
	}
	if cond.YearBefore != nil {
		if rec.YearValue == nil || *rec.YearValue >= *cond.YearBefore {
			return false
		}
	}
	if cond.YearAtLeast != nil {
		if rec.YearValue == nil || *rec.YearValue < *cond.YearAtLeast {
			return false
		}
	}
	if cond.OccupancyIs != "" && rec.Occupancy != cond.OccupancyIs {
		return false
	}
	if len(cond.OccupancyDetailIn) > 0 && !contains(cond.OccupancyDetailIn, rec.OccupancyDetail) {
		return false
	}
	if len(cond.PositionIn) > 0 && !contains(cond.PositionIn, rec.Position) {
		return false
	}
	if len(cond.PlanShapeIn) > 0 && !contains(cond.PlanShapeIn, rec.PlanShape) {
		return false
	}
	if cond.IrregularityL1Is != "" && rec.IrregularityL1 != cond.IrregularityL1Is {
		return false
	}
	// Non-nil empty lists require the parsed list itself to be empty.
	if cond.PlanTypesAny != nil {
		if len(cond.PlanTypesAny) == 0 {
			if len(rec.IrregularityPlanTypes) > 0 {
				return false
			}
		} else if !containsAny(rec.IrregularityPlanTypes, cond.PlanTypesAny) {
			return false
		}
	}
	if cond.VertTypesAny != nil {
		if len(cond.VertTypesAny) == 0 {
			if len(rec.IrregularityVertTypes) > 0 {
				return false
			}
		} else if !containsAny(rec.IrregularityVertTypes, cond.VertTypesAny) {
			return false
		}
	}
	if len(cond.RoofCoveringIn) > 0 && !contains(cond.RoofCoveringIn, rec.RoofCovering) {
		return false
	}
	if len(cond.RoofSystemIn) > 0 && !matchesPrefixed(rec.RoofSystemMaterial, cond.RoofSystemIn) {
		return false
	}
	if len(cond.FloorMaterialIn) > 0 && !matchesPrefixed(rec.FloorMaterial, cond.FloorMaterialIn) {
		return false
	}
	if cond.FloorConnIs != "" && rec.FloorConnection != cond.FloorConnIs {
		return false
	}
	if len(cond.RoofConnIn) > 0 && !containsAny(rec.RoofConnections, cond.RoofConnIn) {
		return false
	}
	if len(cond.FoundationIn) > 0 && !contains(cond.FoundationIn, rec.Foundation) {
		return false
	}
	if len(cond.ExteriorWallAny) > 0 && !containsAny(rec.ExteriorWalls, cond.ExteriorWallAny) {
		return false
	}
	if len(cond.TypeIn) > 0 && !contains(cond.TypeIn, emsType) {
		return false
	}
	return true
}

// matchesPrefixed reports whether tok equals or extends any listed token,
// so FW matches FW1, FW2 and similar sub-typed tokens.
func matchesPrefixed(tok string, want []string) bool {
	if tok == "" {
		return false
	}
	for _, w := range want {
		if tok == w || strings.HasPrefix(tok, w) {
			return true
		}
	}
	return false
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
