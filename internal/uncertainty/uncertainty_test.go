package uncertainty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/gem-translator/internal/types"
)

func dist(vals ...float64) types.Distribution {
	d := types.NewDistribution()
	for i, v := range vals {
		d[types.ClassOrder[i]] = v
	}
	return d
}

func TestEntropy(t *testing.T) {
	assert.Zero(t, Entropy(nil))
	assert.Zero(t, Entropy([]float64{1.0}))
	assert.Zero(t, Entropy([]float64{1.0, 0.0}))
	assert.InDelta(t, math.Log(2), Entropy([]float64{0.5, 0.5}), 1e-12)
	assert.InDelta(t, math.Log(4), Entropy([]float64{0.25, 0.25, 0.25, 0.25}), 1e-12)
}

func TestCredibleRange_SingleClass(t *testing.T) {
	lo, hi := CredibleRange(dist(1.0), 0.80)
	assert.Equal(t, "A", lo)
	assert.Equal(t, "A", hi)
}

func TestCredibleRange_ContiguousWindow(t *testing.T) {
	lo, hi := CredibleRange(dist(0.1, 0.5, 0.35, 0.05), 0.80)
	assert.Equal(t, "B", lo)
	assert.Equal(t, "C", hi)
}

func TestCredibleRange_TieBreaksTowardA(t *testing.T) {
	// Both A-B and B-C hold exactly 0.8; the window nearer A wins.
	lo, hi := CredibleRange(dist(0.2, 0.6, 0.2), 0.80)
	assert.Equal(t, "A", lo)
	assert.Equal(t, "B", hi)
}

func TestCredibleRange_NeverReachedGivesFullRange(t *testing.T) {
	lo, hi := CredibleRange(types.NewDistribution(), 0.80)
	assert.Equal(t, "A", lo)
	assert.Equal(t, "F", hi)
}

func TestCredibleRange_UniformNeedsFiveClasses(t *testing.T) {
	uniform := dist(1.0/6, 1.0/6, 1.0/6, 1.0/6, 1.0/6, 1.0/6)
	lo, hi := CredibleRange(uniform, 0.80)
	assert.Equal(t, "A", lo)
	assert.Equal(t, "E", hi)
}

func TestConfidence_SingleCandidateNotPenalized(t *testing.T) {
	got := Confidence(0.9, 0.0, 1, 1.0, 0.25)
	assert.InDelta(t, 0.9, got, 1e-12)
}

func TestConfidence_EntropyPenalty(t *testing.T) {
	// Two equally weighted candidates give maximal normalized entropy.
	h := math.Log(2)
	got := Confidence(0.8, h, 2, 1.0, 0.25)
	assert.InDelta(t, 0.8*(1-0.25), got, 1e-12)
}

func TestConfidence_ModifierPenaltyMultiplies(t *testing.T) {
	got := Confidence(0.8, 0.0, 1, 0.9*0.88, 0.25)
	assert.InDelta(t, 0.8*0.9*0.88, got, 1e-12)
}

func TestConfidence_ClampedToUnitInterval(t *testing.T) {
	assert.Equal(t, 1.0, Confidence(2.0, 0.0, 1, 1.0, 0.25))
	assert.Equal(t, 0.0, Confidence(0.5, 10.0, 2, 1.0, 1.0))
}

func TestCredibleMassConstant(t *testing.T) {
	assert.InDelta(t, 0.80, CredibleMass, 1e-12)
}
