package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/types"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New(config.Default())
	require.NoError(t, err)
	return tr
}

func translate(t *testing.T, input string) *types.Result {
	t.Helper()
	return newTranslator(t).TranslateOne(input, Options{})
}

func TestTranslateOne_RCFrameDeterministic(t *testing.T) {
	r := translate(t, "CR/LFM+CDL+DUL/H:3/IND")
	assert.Equal(t, "RC1-L", r.Summary.BestType)
	assert.InDelta(t, 1.0, r.Summary.BestWeight, 1e-9)
	require.Len(t, r.Candidates, 1)
	assert.Equal(t, "RC1-L", r.Candidates[0].Type)

	// Full rubric scaled by the frame rule penalty; nothing else bites.
	assert.InDelta(t, 0.95*0.95, r.Confidence, 1e-4)
	assert.Zero(t, r.Summary.ModifiersFired)
	assert.InDelta(t, 1.0, r.Uncertainty.ModifierConfidencePenalty, 1e-9)
	assert.Equal(t, r.VCClassBase, r.VCClass)
}

func TestTranslateOne_RubbleStoneIsPureClassA(t *testing.T) {
	r := translate(t, "MUR+STRUB/LWAL+DNO/H:2/IND")
	assert.Equal(t, "M1", r.Summary.BestType)
	assert.InDelta(t, 1.0, r.VCProbs["A"], 1e-4)
	assert.Equal(t, "A", r.VCClass)
	assert.Equal(t, 1, r.VCClassInt)
	assert.Equal(t, "A-A", r.Summary.CredibleRange80)
}

func TestTranslateOne_UnknownMaterialHitsFailsafe(t *testing.T) {
	r := translate(t, "UNK+CDL+DUM/H:3/IND")
	assert.Equal(t, "M4", r.Summary.BestType)
	assert.Less(t, r.Confidence, 0.25)
	assert.Contains(t, r.Uncertainty.Flags, types.FlagSystemMissing)
	assert.Contains(t, r.Uncertainty.MissingFeatures, "system")
}

func TestTranslateOne_OneToManyFlag(t *testing.T) {
	r := translate(t, "MUR+CBH/LWAL+DNO/H:3/IND")
	assert.Greater(t, len(r.Candidates), 1)
	assert.Contains(t, r.Uncertainty.Flags, types.FlagOneToManyMapping)
	assert.Contains(t, []string{"M5", "M6", "M7"}, r.Summary.BestType)
}

func TestTranslateOne_MissingHeightAndDuctilityFlags(t *testing.T) {
	r := translate(t, "CR/LFINF(MUR+CBH)+CDL+DUL/H:UNK/IND")
	assert.Contains(t, r.Uncertainty.Flags, types.FlagHeightMissing)

	r = translate(t, "MUR+STRUB/LWAL/H:2/IND")
	assert.Contains(t, r.Uncertainty.Flags, types.FlagERDDefaulted)
}

func TestTranslateOne_DistributionsSumToOne(t *testing.T) {
	inputs := []string{
		"CR/LFM+CDL+DUL/H:3/IND",
		"MUR+STRUB/LWAL+DNO/H:2/IND",
		"MUR+CBH/LWAL+DNO/H:4/IND",
		"S/LFBR+CDM+DUM/H:5/IND",
		"W/LWAL+CDL+DUM/H:2/IND",
		"W/LFINF(MUR+ADO)+DNO/H:1/IND",
		"UNK+CDL+DUM/H:3/IND",
	}
	tr := newTranslator(t)
	for _, in := range inputs {
		r := tr.TranslateOne(in, Options{})
		assert.InDelta(t, 1.0, r.VCProbs.Sum(), 1e-3, "final for %s", in)
		assert.InDelta(t, 1.0, r.VCProbsBase.Sum(), 1e-3, "base for %s", in)
	}
}

func TestTranslateOne_ModifierAccounting(t *testing.T) {
	r := translate(t, "MUR+CBH/LWAL+DNO/H:4/IND")
	require.NotEmpty(t, r.ModifiersApplied)
	assert.Equal(t, len(r.ModifiersApplied), r.Summary.ModifiersFired)
	assert.Contains(t, r.Uncertainty.Flags, types.FlagModifierApplied)

	product := 1.0
	sum := 0.0
	for _, m := range r.ModifiersApplied {
		product *= m.ConfidencePenalty
		sum += m.Shift
	}
	assert.InDelta(t, product, r.Uncertainty.ModifierConfidencePenalty, 1e-4)

	limit := config.Default().Tuning.MaxCumulativeShift
	capped := max(-limit, min(limit, sum))
	assert.InDelta(t, capped, r.Summary.CumulativeShift, 1e-3)
	assert.NotEqual(t, r.VCProbsBase, r.VCProbs)
}

func TestTranslateOne_CumulativeShiftClamped(t *testing.T) {
	r := translate(t, "CR/LFINF(MUR+ADO)+DNO/H:1/IND/IRRE+IRVP+SOS")
	limit := config.Default().Tuning.MaxCumulativeShift
	assert.LessOrEqual(t, r.Summary.CumulativeShift, limit)
	assert.GreaterOrEqual(t, r.Summary.CumulativeShift, -limit)
}

func TestTranslateOne_CleanRecordKeepsBaseDistribution(t *testing.T) {
	r := translate(t, "CR/LWAL+CDM+DUM/H:5/IND")
	assert.Zero(t, r.Summary.ModifiersFired)
	assert.NotContains(t, r.Uncertainty.Flags, types.FlagModifierApplied)
	assert.Equal(t, r.VCClassBase, r.VCClass)
	for _, cls := range types.ClassOrder {
		assert.InDelta(t, r.VCProbsBase[cls], r.VCProbs[cls], 1e-9)
	}
}

func TestTranslateOne_TopK(t *testing.T) {
	tr := newTranslator(t)

	r := tr.TranslateOne("MUR+CBH/LWAL+DNO/H:3/IND", Options{TopK: 1})
	assert.Len(t, r.Candidates, 1)

	r = tr.TranslateOne("MUR+CBH/LWAL+DNO/H:3/IND", Options{})
	assert.Len(t, r.Candidates, 3)
	for i := 1; i < len(r.Candidates); i++ {
		assert.GreaterOrEqual(t, r.Candidates[i-1].Weight, r.Candidates[i].Weight)
	}
}

func TestTranslateOne_RuleTraceOptIn(t *testing.T) {
	tr := newTranslator(t)

	r := tr.TranslateOne("CR/LFM+CDL+DUL/H:3/IND", Options{})
	require.NotEmpty(t, r.Candidates)
	assert.Nil(t, r.Candidates[0].RuleTrace)

	r = tr.TranslateOne("CR/LFM+CDL+DUL/H:3/IND", Options{IncludeRuleTrace: true})
	assert.NotEmpty(t, r.Candidates[0].RuleTrace)
	assert.Contains(t, r.Candidates[0].RuleTrace, "RC_FRAME")
}

func TestTranslateOne_Top1Margin(t *testing.T) {
	r := translate(t, "CR/LFM+CDL+DUL/H:3/IND")
	assert.InDelta(t, 1.0, r.Uncertainty.Top1Margin, 1e-9)

	r = translate(t, "MUR+CBH/LWAL+DNO/H:3/IND")
	assert.Less(t, r.Uncertainty.Top1Margin, 1.0)
	assert.GreaterOrEqual(t, r.Uncertainty.Top1Margin, 0.0)
}

func TestTranslateOne_InputTrimmedAndEchoed(t *testing.T) {
	r := translate(t, "  CR/LFM+CDL+DUL/H:3/IND  ")
	assert.Equal(t, "CR/LFM+CDL+DUL/H:3/IND", r.Input)
}

func TestTranslateOne_EmptyInputDegradesGracefully(t *testing.T) {
	r := translate(t, "")
	require.NotNil(t, r)
	assert.Equal(t, "M4", r.Summary.BestType)
	assert.NotEmpty(t, r.VCClass)
}

func TestTranslateOne_ExactOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Overrides = []config.Override{{
		Input: "/CR+CIP/LFM+CDM/H:5/", Type: "RC1-M", Confidence: 0.99,
		Doc: "field-verified moment frame",
	}}
	tr, err := New(cfg)
	require.NoError(t, err)

	r := tr.TranslateOne("/CR+CIP/LFM+CDM/H:5/", Options{})
	assert.True(t, r.Summary.ExactOverride)
	assert.Equal(t, "RC1-M", r.Summary.BestType)
	assert.InDelta(t, 0.99, r.Confidence, 1e-9)
	assert.Contains(t, r.Uncertainty.Flags, types.FlagExactOverride)
	// The raw string is still parsed for display fields.
	require.NotNil(t, r.Parsed)
	assert.Equal(t, "CR", r.Parsed.Material)

	// A near-miss string goes through the normal path.
	r = tr.TranslateOne("/CR+CIP/LFM+CDM/H:4/", Options{})
	assert.False(t, r.Summary.ExactOverride)
}

func TestTranslateOne_OverrideForcedClass(t *testing.T) {
	cfg := config.Default()
	cfg.Overrides = []config.Override{{
		Input: "MUR+ADO/LWAL/H:1", Type: "M2", VCClass: "B",
	}}
	tr, err := New(cfg)
	require.NoError(t, err)

	r := tr.TranslateOne("MUR+ADO/LWAL/H:1", Options{})
	assert.Equal(t, "B", r.VCClass)
	assert.InDelta(t, 1.0, r.VCProbs["B"], 1e-9)
	// Default override confidence applies when none is configured.
	assert.InDelta(t, cfg.Tuning.OverrideConfidence, r.Confidence, 1e-9)
}

func TestTranslateMany_PreservesOrder(t *testing.T) {
	inputs := []string{
		"CR/LFM+CDL+DUL/H:3/IND",
		"MUR+STRUB/LWAL+DNO/H:2/IND",
		"S/LFBR+CDM+DUM/H:5/IND",
	}
	tr := newTranslator(t)
	results, err := tr.TranslateMany(context.Background(), inputs, Options{}, 2)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	assert.Equal(t, "RC1-L", results[0].Summary.BestType)
	assert.Equal(t, "M1", results[1].Summary.BestType)
	assert.Equal(t, inputs[2], results[2].Input)
}

func TestTranslateMany_MatchesSingleTranslation(t *testing.T) {
	input := "CR/LWAL+CDM+DUM/H:5/IND"
	tr := newTranslator(t)

	single := tr.TranslateOne(input, Options{})
	batch, err := tr.TranslateMany(context.Background(), []string{input}, Options{}, 0)
	require.NoError(t, err)
	require.Len(t, batch, 1)

	assert.Equal(t, single.Summary.BestType, batch[0].Summary.BestType)
	assert.Equal(t, single.VCClass, batch[0].VCClass)
	assert.InDelta(t, single.Confidence, batch[0].Confidence, 1e-9)
}

func TestTranslateMany_EmptyBatch(t *testing.T) {
	results, err := newTranslator(t).TranslateMany(context.Background(), nil, Options{}, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTranslateMany_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTranslator(t).TranslateMany(ctx, []string{"CR/LFM/H:3"}, Options{}, 1)
	assert.Error(t, err)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tuning.FailsafeType = "NOT_A_TYPE"
	_, err := New(cfg)
	assert.Error(t, err)
}
