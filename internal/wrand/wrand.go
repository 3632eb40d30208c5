// Package wrand provides weighted random selection over an explicit
// rand.Rand. Selection builds a cumulative-weight table and does one
// binary search per draw, so memory stays O(n) in the number of
// alternatives rather than O(total weight).
package wrand

import (
	"math"
	"math/rand"
	"sort"
)

// Index picks an index proportional to weights[i]. Negative weights are
// treated as zero. Returns -1 when no weight is positive.
func Index(r *rand.Rand, weights []float64) int {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cum[i] = total
	}
	if total <= 0 {
		return -1
	}
	roll := r.Float64() * total
	return sort.SearchFloat64s(cum, roll+1e-300)
}

// IndexRoll is Index but also returns the roll in [0, total) that chose
// the winner, for trace output.
func IndexRoll(r *rand.Rand, weights []float64) (idx int, roll float64) {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cum[i] = total
	}
	if total <= 0 {
		return -1, 0
	}
	roll = r.Float64() * total
	return sort.SearchFloat64s(cum, roll+1e-300), roll
}

// Pick selects one item proportional to weight(item). The second return
// is false when every weight is non-positive.
func Pick[T any](r *rand.Rand, items []T, weight func(T) float64) (T, bool) {
	weights := make([]float64, len(items))
	for i, it := range items {
		weights[i] = weight(it)
	}
	i := Index(r, weights)
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}

// Bool draws a binary weighted choice: true with probability
// yes/(yes+no). Both zero yields false.
func Bool(r *rand.Rand, yes, no float64) bool {
	if yes <= 0 {
		return false
	}
	if no <= 0 {
		return true
	}
	return r.Float64()*(yes+no) < yes
}

// Percent draws true with probability p/100. Values outside [0,100] are
// clamped.
func Percent(r *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 100 {
		return true
	}
	return r.Float64()*100 < p
}

// Gauss draws one sample from N(mean, stddev²) via Box-Muller, consuming
// exactly two uniform draws from r.
func Gauss(r *rand.Rand, mean, stddev float64) float64 {
	u1 := r.Float64()
	u2 := r.Float64()
	if u1 < 1e-300 {
		u1 = 1e-300
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}
