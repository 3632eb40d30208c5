package stress

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// A violationFunc counts how badly stressing syllable idx violates one
// constraint.
type violationFunc func(syllables []*phonology.Syllable, idx int) float64

// builtin maps constraint names to their violation profiles. Unknown
// names in a config are ignored rather than rejected.
var builtin = map[string]violationFunc{
	// WSP: stressing a light syllable while a heavy one goes
	// unstressed violates weight-to-stress, once per slighted heavy.
	"WSP": func(ss []*phonology.Syllable, idx int) float64 {
		if ss[idx].Heavy() {
			return 0
		}
		n := 0.0
		for i, s := range ss {
			if i != idx && s.Heavy() {
				n++
			}
		}
		return n
	},
	// ALIGN-LEFT / ALIGN-RIGHT: distance of the stress from the edge.
	"ALIGN-LEFT": func(ss []*phonology.Syllable, idx int) float64 {
		return float64(idx)
	},
	"ALIGN-RIGHT": func(ss []*phonology.Syllable, idx int) float64 {
		return float64(len(ss) - 1 - idx)
	},
	// NONFINALITY: binary penalty for final stress.
	"NONFINALITY": func(ss []*phonology.Syllable, idx int) float64 {
		if idx == len(ss)-1 {
			return 1
		}
		return 0
	},
	// NONINITIAL: penalty for initial stress that decays as the word
	// grows, leaving short words nearly free to stress the first
	// syllable.
	"NONINITIAL": func(ss []*phonology.Syllable, idx int) float64 {
		if idx != 0 {
			return 0
		}
		return 1 / float64(len(ss))
	},
}

// Evaluate scores every candidate stress position as the noise-
// perturbed weighted sum of constraint violations and returns the
// lowest-cost index. Noise is drawn once per constraint per evaluation,
// so results vary word to word but stay deterministic under a seeded
// RNG. Monosyllables always return 0.
func Evaluate(r *rand.Rand, constraints []language.ConstraintWeight, syllables []*phonology.Syllable) int {
	if len(syllables) <= 1 {
		return 0
	}

	type active struct {
		f      violationFunc
		weight float64
	}
	var acts []active
	for _, c := range constraints {
		f, ok := builtin[c.Name]
		if !ok {
			continue
		}
		weight := c.Weight
		if c.Noise > 0 {
			weight += wrand.Gauss(r, 0, c.Noise)
		}
		acts = append(acts, active{f: f, weight: weight})
	}

	best, bestCost := 0, 0.0
	for idx := range syllables {
		cost := 0.0
		for _, a := range acts {
			cost += a.weight * a.f(syllables, idx)
		}
		if idx == 0 || cost < bestCost {
			best, bestCost = idx, cost
		}
	}
	return best
}
