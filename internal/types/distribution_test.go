package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassRank(t *testing.T) {
	assert.Equal(t, 1, ClassRank("A"))
	assert.Equal(t, 6, ClassRank("F"))
	assert.Equal(t, 0, ClassRank("G"))
	assert.Equal(t, 0, ClassRank(""))
}

func TestClassIndex(t *testing.T) {
	assert.Equal(t, 0, ClassIndex("A"))
	assert.Equal(t, 5, ClassIndex("F"))
	assert.Equal(t, -1, ClassIndex("X"))
}

func TestNewDistribution_AllClassesZero(t *testing.T) {
	d := NewDistribution()
	assert.Len(t, d, 6)
	assert.Zero(t, d.Sum())
}

func TestDistribution_CloneIsIndependent(t *testing.T) {
	d := NewDistribution()
	d["A"] = 0.5
	c := d.Clone()
	c["A"] = 0.1
	assert.InDelta(t, 0.5, d["A"], 1e-12)
}

func TestDistribution_Normalize(t *testing.T) {
	d := Distribution{"A": 2, "B": 2, "C": 0, "D": 0, "E": 0, "F": 0}
	n := d.Normalize()
	assert.InDelta(t, 0.5, n["A"], 1e-12)
	assert.InDelta(t, 0.5, n["B"], 1e-12)
	assert.InDelta(t, 1.0, n.Sum(), 1e-12)
}

func TestDistribution_NormalizeClampsNegatives(t *testing.T) {
	d := Distribution{"A": -1, "B": 1}
	n := d.Normalize()
	assert.Zero(t, n["A"])
	assert.InDelta(t, 1.0, n["B"], 1e-12)
}

func TestDistribution_NormalizeEmptyStaysZero(t *testing.T) {
	n := NewDistribution().Normalize()
	assert.Zero(t, n.Sum())
}

func TestDistribution_ModeTieBreaksTowardA(t *testing.T) {
	d := Distribution{"A": 0.0, "B": 0.4, "C": 0.4, "D": 0.2}
	assert.Equal(t, "B", d.Mode())
}

func TestDistribution_Entropy(t *testing.T) {
	certain := Distribution{"A": 1.0}
	assert.Zero(t, certain.Entropy())

	even := Distribution{"A": 0.5, "B": 0.5}
	assert.InDelta(t, math.Log(2), even.Entropy(), 1e-12)
}

func TestDistribution_Values(t *testing.T) {
	d := Distribution{"A": 0.1, "F": 0.9}
	vals := d.Values()
	assert.Equal(t, []float64{0.1, 0, 0, 0, 0, 0.9}, vals)
}
