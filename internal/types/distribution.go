package types

import "math"

// ClassOrder lists the six vulnerability classes, most vulnerable first.
var ClassOrder = []string{"A", "B", "C", "D", "E", "F"}

// ClassRank maps a vulnerability class letter to its integer rank
// (A=1 most vulnerable .. F=6 least). Unknown letters return 0.
func ClassRank(class string) int {
	for i, c := range ClassOrder {
		if c == class {
			return i + 1
		}
	}
	return 0
}

// ClassIndex returns the zero-based index of a class letter, or -1 if unknown.
func ClassIndex(class string) int {
	for i, c := range ClassOrder {
		if c == class {
			return i
		}
	}
	return -1
}

// Distribution is a probability distribution over the six vulnerability
// classes. A well-formed distribution sums to 1 within 1e-6.
type Distribution map[string]float64

// NewDistribution returns a zero-valued distribution over all six classes.
func NewDistribution() Distribution {
	d := make(Distribution, len(ClassOrder))
	for _, c := range ClassOrder {
		d[c] = 0
	}
	return d
}

// Clone returns an independent copy.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(ClassOrder))
	for _, c := range ClassOrder {
		out[c] = d[c]
	}
	return out
}

// Values returns the probabilities in class order.
func (d Distribution) Values() []float64 {
	out := make([]float64, len(ClassOrder))
	for i, c := range ClassOrder {
		out[i] = d[c]
	}
	return out
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var s float64
	for _, c := range ClassOrder {
		s += d[c]
	}
	return s
}

// Normalize scales the distribution (negative entries clamped to zero) so it
// sums to 1. A distribution with no positive mass is left all-zero.
func (d Distribution) Normalize() Distribution {
	out := NewDistribution()
	var s float64
	for _, c := range ClassOrder {
		if d[c] > 0 {
			s += d[c]
		}
	}
	if s <= 0 {
		return out
	}
	for _, c := range ClassOrder {
		if d[c] > 0 {
			out[c] = d[c] / s
		}
	}
	return out
}

// Mode returns the modal class letter. Ties break toward the more vulnerable
// class (earlier in ClassOrder).
func (d Distribution) Mode() string {
	best := ClassOrder[0]
	for _, c := range ClassOrder[1:] {
		if d[c] > d[best] {
			best = c
		}
	}
	return best
}

// Entropy returns the Shannon entropy (natural log) of the distribution.
func (d Distribution) Entropy() float64 {
	var h float64
	for _, c := range ClassOrder {
		if p := d[c]; p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h
}
