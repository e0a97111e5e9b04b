// Package pipeline provides the high-level orchestration for taxonomy
// translation: exact-override lookup, parsing, type classification,
// vulnerability distribution assembly, modifier application and result
// scoring, for single strings and for batches.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/modifiers"
	"github.com/jonathan/gem-translator/internal/parsing"
	"github.com/jonathan/gem-translator/internal/rules"
	"github.com/jonathan/gem-translator/internal/types"
	"github.com/jonathan/gem-translator/internal/uncertainty"
)

// DefaultTopK is the number of candidates reported when Options.TopK is unset.
const DefaultTopK = 3

// Options controls per-call output shaping.
type Options struct {
	IncludeRuleTrace bool
	TopK             int // number of candidates to report; <=0 means DefaultTopK
}

// Translator is the translation engine. Construct once with New and share;
// all methods are safe for concurrent use.
type Translator struct {
	cfg       *config.Config
	parser    *parsing.Parser
	rules     *rules.Engine
	modifiers *modifiers.Engine
	overrides map[string]config.Override
}

// New validates cfg and builds a Translator over it.
func New(cfg *config.Config) (*Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	overrides := make(map[string]config.Override, len(cfg.Overrides))
	for _, ov := range cfg.Overrides {
		overrides[ov.Input] = ov
	}
	return &Translator{
		cfg:       cfg,
		parser:    parsing.New(cfg),
		rules:     rules.New(cfg),
		modifiers: modifiers.New(cfg),
		overrides: overrides,
	}, nil
}

// TranslateOne translates a single taxonomy string. It never fails: malformed
// input degrades to the failsafe candidate with warnings attached.
func (t *Translator) TranslateOne(input string, opts Options) *types.Result {
	trimmed := strings.TrimSpace(input)

	if ov, ok := t.overrides[trimmed]; ok {
		return t.applyOverride(ov, trimmed)
	}

	rec := t.parser.Parse(trimmed)
	outcome := t.rules.Classify(rec)
	warnings := outcome.Warnings

	// Candidates whose type is missing from the vocabulary degrade to the
	// failsafe type with capped confidence.
	valid := make([]types.Candidate, 0, len(outcome.Candidates))
	for _, c := range outcome.Candidates {
		if _, ok := t.cfg.Vocabulary[c.Type]; ok {
			valid = append(valid, c)
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"EMS type %q not in vocabulary; replaced with %s", c.Type, t.cfg.Tuning.FailsafeType))
		c.Confidence = min(c.Confidence, t.cfg.Tuning.InvalidTypeConfidenceCap)
		c.Type = t.cfg.Tuning.FailsafeType
		c.Flags = append(c.Flags, types.FlagTypeNotInVocab)
		valid = append(valid, c)
	}
	normalizeWeights(valid)

	vcBase := types.NewDistribution()
	for _, c := range valid {
		for cls, p := range t.cfg.Vocabulary[c.Type].Prior {
			vcBase[cls] += c.Weight * p
		}
	}
	vcBase = vcBase.Normalize()

	best := valid[0]
	for _, c := range valid[1:] {
		if c.Weight > best.Weight {
			best = c
		}
	}

	vcFinal, applied, shift := t.modifiers.Apply(vcBase, rec, best.Type)

	typeWeights := make([]float64, len(valid))
	weightedConf := 0.0
	for i, c := range valid {
		typeWeights[i] = c.Weight
		weightedConf += c.Weight * c.Confidence
	}
	typeEntropy := uncertainty.Entropy(typeWeights)

	modPenalty := 1.0
	for _, m := range applied {
		modPenalty *= m.ConfidencePenalty
	}
	confidence := uncertainty.Confidence(weightedConf, typeEntropy, len(valid),
		modPenalty, t.cfg.Tuning.EntropyPenaltyAlpha)

	modeBase := vcBase.Mode()
	modeFinal := vcFinal.Mode()
	baseLo, baseHi := uncertainty.CredibleRange(vcBase, uncertainty.CredibleMass)
	finalLo, finalHi := uncertainty.CredibleRange(vcFinal, uncertainty.CredibleMass)

	var missing []string
	if !rec.HasMaterial() {
		missing = append(missing, "material")
	}
	if !rec.HasSystem() {
		missing = append(missing, "system")
	}
	if !rec.HasHeight() {
		missing = append(missing, "height")
	}
	if !rec.HasDuctility() {
		missing = append(missing, "ductility")
	}

	var flags []string
	for _, c := range valid {
		if contains(c.Flags, types.FlagDistributedMapping) {
			flags = append(flags, types.FlagOneToManyMapping)
			break
		}
	}
	if !rec.HasDuctility() {
		flags = append(flags, types.FlagERDDefaulted)
	}
	if !rec.HasSystem() {
		flags = append(flags, types.FlagSystemMissing)
	}
	if !rec.HasHeight() {
		flags = append(flags, types.FlagHeightMissing)
	}
	if len(applied) > 0 {
		flags = append(flags, types.FlagModifierApplied)
	}

	sorted := sortByWeightDesc(valid)
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	out := make([]types.Candidate, 0, topK)
	for _, c := range sorted[:min(topK, len(sorted))] {
		c.Weight = round4(c.Weight)
		c.Confidence = round4(c.Confidence)
		if !opts.IncludeRuleTrace {
			c.RuleTrace = nil
		}
		out = append(out, c)
	}

	top1Margin := 1.0
	if len(sorted) > 1 {
		top1Margin = round4(sorted[0].Weight - sorted[1].Weight)
	}

	return &types.Result{
		Input:       trimmed,
		Parsed:      rec,
		Candidates:  out,
		VCProbs:     roundDistribution(vcFinal),
		VCProbsBase: roundDistribution(vcBase),
		Summary: types.Summary{
			BestType:            best.Type,
			BestWeight:          round4(best.Weight),
			VCModeBase:          modeBase,
			VCModeFinal:         modeFinal,
			CredibleRange80:     finalLo + "-" + finalHi,
			CredibleRange80Base: baseLo + "-" + baseHi,
			ExactOverride:       false,
			ModifiersFired:      len(applied),
			CumulativeShift:     round3(shift),
		},
		Uncertainty: types.Uncertainty{
			MissingFeatures:           missing,
			TypeEntropy:               round4(typeEntropy),
			VCEntropy:                 round4(vcFinal.Entropy()),
			VCEntropyBase:             round4(vcBase.Entropy()),
			Top1Margin:                top1Margin,
			ModifierConfidencePenalty: round4(modPenalty),
			Flags:                     flags,
		},
		Confidence:       round4(confidence),
		Warnings:         warnings,
		VCClass:          modeFinal,
		VCClassInt:       types.ClassRank(modeFinal),
		VCClassBase:      modeBase,
		VCClassBaseInt:   types.ClassRank(modeBase),
		ModifiersApplied: applied,
	}
}

// TranslateMany translates a batch concurrently, preserving input order.
// workers <= 0 uses GOMAXPROCS. The only error source is ctx cancellation.
func (t *Translator) TranslateMany(ctx context.Context, inputs []string, opts Options, workers int) ([]*types.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]*types.Result, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = t.TranslateOne(in, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// applyOverride bypasses the engines: the configured type's prior (or a
// forced single class) becomes the distribution, and the raw string is still
// parsed so display fields stay populated.
func (t *Translator) applyOverride(ov config.Override, input string) *types.Result {
	rec := t.parser.Parse(input)

	conf := ov.Confidence
	if conf == 0 {
		conf = t.cfg.Tuning.OverrideConfidence
	}

	prior := types.NewDistribution()
	if td, ok := t.cfg.Vocabulary[ov.Type]; ok {
		for cls, p := range td.Prior {
			prior[cls] = p
		}
	} else {
		for _, cls := range types.ClassOrder {
			prior[cls] = 1.0 / float64(len(types.ClassOrder))
		}
	}
	prior = prior.Normalize()

	vcFinal := prior.Clone()
	if ov.VCClass != "" && types.ClassIndex(ov.VCClass) >= 0 {
		vcFinal = types.NewDistribution()
		vcFinal[ov.VCClass] = 1.0
	}

	mode := vcFinal.Mode()
	modeBase := prior.Mode()
	lo, hi := uncertainty.CredibleRange(vcFinal, uncertainty.CredibleMass)

	return &types.Result{
		Input:  input,
		Parsed: rec,
		Candidates: []types.Candidate{{
			Type: ov.Type, Weight: 1.0, Confidence: conf,
			RuleID: "EXACT_OVERRIDE", Flags: []string{types.FlagExactOverride},
		}},
		VCProbs:     roundDistribution(vcFinal),
		VCProbsBase: roundDistribution(prior),
		Summary: types.Summary{
			BestType:            ov.Type,
			BestWeight:          1.0,
			VCModeBase:          modeBase,
			VCModeFinal:         mode,
			CredibleRange80:     lo + "-" + hi,
			CredibleRange80Base: lo + "-" + hi,
			ExactOverride:       true,
		},
		Uncertainty: types.Uncertainty{
			MissingFeatures:           []string{},
			VCEntropy:                 round4(vcFinal.Entropy()),
			VCEntropyBase:             round4(prior.Entropy()),
			Top1Margin:                1.0,
			ModifierConfidencePenalty: 1.0,
			Flags:                     []string{types.FlagExactOverride},
		},
		Confidence:       conf,
		Warnings:         []string{},
		VCClass:          mode,
		VCClassInt:       types.ClassRank(mode),
		VCClassBase:      modeBase,
		VCClassBaseInt:   types.ClassRank(modeBase),
		ModifiersApplied: []types.AppliedModifier{},
	}
}

func normalizeWeights(cands []types.Candidate) {
	total := 0.0
	for _, c := range cands {
		total += c.Weight
	}
	if total <= 0 {
		for i := range cands {
			cands[i].Weight = 0
		}
		return
	}
	for i := range cands {
		cands[i].Weight /= total
	}
}

func sortByWeightDesc(cands []types.Candidate) []types.Candidate {
	out := make([]types.Candidate, len(cands))
	copy(out, cands)
	// Insertion sort keeps ties in rule order; candidate sets are tiny.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Weight > out[j-1].Weight; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func roundDistribution(d types.Distribution) types.Distribution {
	out := types.NewDistribution()
	for _, cls := range types.ClassOrder {
		out[cls] = round4(d[cls])
	}
	return out
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }

func round3(v float64) float64 { return math.Round(v*1e3) / 1e3 }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
