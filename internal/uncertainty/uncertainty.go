// Package uncertainty quantifies how sure a translation is: Shannon entropy
// over candidate weights and class probabilities, the narrowest credible
// class range, and the combined confidence score.
package uncertainty

import (
	"math"

	"github.com/jonathan/gem-translator/internal/types"
)

// CredibleMass is the probability mass a credible range must cover.
const CredibleMass = 0.80

// Entropy returns the Shannon entropy (natural log) of a weight vector.
// Zero entries contribute nothing.
func Entropy(weights []float64) float64 {
	h := 0.0
	for _, p := range weights {
		if p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h
}

// CredibleRange returns the narrowest contiguous class window holding at
// least mass probability. Ties resolve to the window starting at the more
// vulnerable end. A distribution that never reaches mass yields the full
// A-F range.
func CredibleRange(d types.Distribution, mass float64) (lo, hi string) {
	n := len(types.ClassOrder)
	bestWidth, bestLo, bestHi := -1, 0, n-1
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := i; j < n; j++ {
			sum += d[types.ClassOrder[j]]
			if sum >= mass {
				if bestWidth < 0 || j-i < bestWidth || (j-i == bestWidth && i < bestLo) {
					bestWidth, bestLo, bestHi = j-i, i, j
				}
				break
			}
		}
	}
	return types.ClassOrder[bestLo], types.ClassOrder[bestHi]
}

// Confidence combines the weighted candidate confidence with an entropy
// penalty and the product of modifier penalties, clamped to [0, 1]. The
// entropy term is normalized by log of the candidate count (floored at two
// so a single candidate is not penalized).
func Confidence(weightedConf, candidateEntropy float64, nCandidates int, modifierPenalty, alpha float64) float64 {
	n := nCandidates
	if n < 2 {
		n = 2
	}
	normalized := candidateEntropy / math.Log(float64(n))
	conf := weightedConf * (1.0 - alpha*normalized) * modifierPenalty
	return max(0.0, min(1.0, conf))
}
