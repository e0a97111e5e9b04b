package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/parsing"
	"github.com/jonathan/gem-translator/internal/types"
)

func classify(t *testing.T, input string) Outcome {
	t.Helper()
	cfg := config.Default()
	rec := parsing.New(cfg).Parse(input)
	return New(cfg).Classify(rec)
}

func bestCandidate(t *testing.T, out Outcome) types.Candidate {
	t.Helper()
	require.NotEmpty(t, out.Candidates)
	best := out.Candidates[0]
	for _, c := range out.Candidates[1:] {
		if c.Weight > best.Weight {
			best = c
		}
	}
	return best
}

func TestClassify_RCFrame(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"moment frame low erd", "CR/LFM+CDL+DUL/H:3/IND", "RC1-L"},
		{"moment frame moderate erd", "CR/LFM+CDM+DUM/H:3/IND", "RC1-M"},
		{"infilled frame", "CR/LFINF(MUR+CBH)+CDL+DUL/H:3/IND", "RC1-L"},
		{"braced frame", "CR/LFBR+CDM+DUM/H:4/IND", "RC1-M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := classify(t, tt.input)
			require.Len(t, out.Candidates, 1)
			assert.Equal(t, tt.want, out.Candidates[0].Type)
			assert.Equal(t, "RC_FRAME", out.Candidates[0].RuleID)
			assert.Equal(t, "RC", out.Family)
		})
	}
}

func TestClassify_RCWall(t *testing.T) {
	out := classify(t, "CR/LWAL+CDL+DUL/H:3/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "RC2-L", out.Candidates[0].Type)

	out = classify(t, "CR/LWAL+CDM+DUM/H:5/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "RC2-M", out.Candidates[0].Type)
}

func TestClassify_RCDual(t *testing.T) {
	out := classify(t, "CR/LDUAL+CDM+DUM/H:6/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "RC3-M", out.Candidates[0].Type)
}

func TestClassify_PrecastTakesPriorityOverCastInPlace(t *testing.T) {
	out := classify(t, "CR+PC/LFM+CDL+DUL/H:1/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "RC5-L", out.Candidates[0].Type)
	assert.Equal(t, "RC_PRECAST_FRAME", out.Candidates[0].RuleID)

	out = classify(t, "CR+PC/LWAL+CDM+DUM/H:3/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "RC6-M", out.Candidates[0].Type)
}

func TestClassify_RCMissingSystem(t *testing.T) {
	out := classify(t, "CR/H:3/IND")
	assert.Greater(t, len(out.Candidates), 1)
	assert.Equal(t, "RC_NO_SYSTEM", out.Candidates[0].RuleID)
	for _, c := range out.Candidates {
		assert.Contains(t, c.Flags, types.FlagDistributedMapping)
	}
}

func TestClassify_MasonryRubbleStone(t *testing.T) {
	out := classify(t, "MUR+STRUB/LWAL+DNO/H:2/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "M1", out.Candidates[0].Type)
	assert.Equal(t, "MASONRY", out.Family)
}

func TestClassify_MasonryAdobe(t *testing.T) {
	out := classify(t, "MUR+ADO/LWAL+DNO/H:1/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "M2", out.Candidates[0].Type)
}

func TestClassify_MasonryConcreteBlockDistributes(t *testing.T) {
	out := classify(t, "MUR+CBH/LWAL+DNO/H:3/IND")
	require.Len(t, out.Candidates, 3)
	best := bestCandidate(t, out)
	assert.Contains(t, []string{"M5", "M6", "M7"}, best.Type)

	total := 0.0
	for _, c := range out.Candidates {
		total += c.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestClassify_MasonryFiredClayBrick(t *testing.T) {
	out := classify(t, "MUR+CLBRS/LWAL+DNO/H:3/IND")
	require.Len(t, out.Candidates, 2)
	assert.Contains(t, []string{"M5", "M6"}, bestCandidate(t, out).Type)
}

func TestClassify_MasonryReinforced(t *testing.T) {
	out := classify(t, "MR/LWAL+CDM+DUM/H:3/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "M7", out.Candidates[0].Type)
}

func TestClassify_SteelDistributes(t *testing.T) {
	out := classify(t, "S/LFBR+CDM+DUM/H:5/IND")
	assert.Equal(t, "STEEL", out.Family)
	require.Len(t, out.Candidates, 2)
	assert.Contains(t, []string{"S-L", "S-M/H"}, bestCandidate(t, out).Type)
}

func TestClassify_TimberDistributes(t *testing.T) {
	out := classify(t, "W/LWAL+CDL+DUM/H:2/IND")
	assert.Equal(t, "TIMBER", out.Family)
	best := bestCandidate(t, out)
	assert.Contains(t, []string{"T1", "T2-L", "T2-M/H"}, best.Type)
}

func TestClassify_FamilyRuleAppearsTwiceInTrace(t *testing.T) {
	// The family rule matches in the family pass and again in the type pass.
	out := classify(t, "CR/LFM+CDL+DUL/H:3/IND")
	count := 0
	for _, id := range out.RuleTrace {
		if id == "MAT_RC" {
			count++
		}
	}
	assert.Equal(t, 2, count)
	assert.Contains(t, out.RuleTrace, "RC_FRAME")
}

func TestClassify_FailsafeOnUnknownMaterial(t *testing.T) {
	out := classify(t, "UNK+CDL+DUM/H:3/IND")
	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, "M4", c.Type)
	assert.Equal(t, "FAILSAFE", c.RuleID)
	// Material and height known, system missing: 0.60 base scaled by the
	// failsafe penalty.
	assert.InDelta(t, 0.60*0.20, c.Confidence, 1e-9)
	assert.Empty(t, out.Family)
}

func TestClassify_BaseConfidenceRubric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64 // base confidence before the rule penalty
	}{
		{"all four attributes", "CR/LFM+CDL+DUL/H:3/IND", 0.95},
		{"no ductility token", "CR/LFM/H:3/IND", 0.80},
		{"no system", "MUR+STRUB/H:2/IND", 0.60},
	}
	cfg := config.Default()
	parser := parsing.New(cfg)
	engine := New(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := parser.Parse(tt.input)
			out := engine.Classify(rec)
			best := bestCandidate(t, out)

			var penalty float64
			for _, r := range cfg.TypeRules {
				if r.ID == best.RuleID {
					penalty = r.ConfidencePenalty
				}
			}
			require.NotZero(t, penalty)
			assert.InDelta(t, tt.want*penalty, best.Confidence, 1e-9)
		})
	}
}

func TestClassify_SetsFamilyOnRecord(t *testing.T) {
	cfg := config.Default()
	rec := parsing.New(cfg).Parse("W/LWAL+CDL+DUM/H:2/IND")
	New(cfg).Classify(rec)
	assert.Equal(t, "TIMBER", rec.Family)
}

func TestClassify_EmptyRecordHitsCatchAll(t *testing.T) {
	out := classify(t, "")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "M4", out.Candidates[0].Type)
}

func TestClassify_PriorityOrderIsStable(t *testing.T) {
	// STRUB at priority 20 must win over the generic masonry fallback at 85.
	out := classify(t, "MUR+STRUB+CBH/LWAL+DNO/H:2/IND")
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "M1", out.Candidates[0].Type)
}
