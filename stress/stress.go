// Package stress assigns primary and secondary stress to a word, either
// by a small rule grammar or by a harmonic-grammar (noisy weighted OT)
// evaluation over candidate stress positions.
package stress

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// Assign places stress marks on the root syllables of w (affix
// syllables are left to the morphology stress effects). Monosyllables
// carry no stress marker.
func Assign(r *rand.Rand, m *language.Model, w *phonology.Word, tracer phonology.Tracer) {
	lo, hi := w.RootRange()
	root := w.Syllables[lo:hi]
	if len(w.Syllables) <= 1 || len(root) == 0 {
		return
	}

	var primary int
	if m.Config.Stress.Strategy == "grammar" && len(m.Config.Stress.Grammar) > 0 {
		primary = Evaluate(r, m.Config.Stress.Grammar, root)
	} else {
		primary = rulePrimary(r, m.Config.Stress, root)
	}
	root[primary].Stress = phonology.Primary

	assignSecondary(r, m.Config.Stress, root, primary)
	assignRhythmic(r, m.Config.Stress, root)

	if tracer != nil {
		tracer.Stage("stress", w.Syllables)
	}
}

// rulePrimary picks the primary stress index from the weight table
// keyed on syllable count and penult weight. Words longer than the
// table falls back to penult stress.
func rulePrimary(r *rand.Rand, cfg language.StressConfig, root []*phonology.Syllable) int {
	n := len(root)
	if n == 1 {
		return 0
	}
	table := cfg.LightPenult
	if root[n-2].Heavy() {
		table = cfg.HeavyPenult
	}
	weights, ok := table[n]
	if !ok || len(weights) == 0 {
		return n - 2
	}
	i := wrand.Index(r, weights)
	if i < 0 || i >= n {
		return n - 2
	}
	return i
}

// assignSecondary optionally marks one heavy non-primary syllable among
// the first three.
func assignSecondary(r *rand.Rand, cfg language.StressConfig, root []*phonology.Syllable, primary int) {
	if len(root) < 3 || !wrand.Percent(r, cfg.SecondaryPercent) {
		return
	}
	limit := 3
	if limit > len(root) {
		limit = len(root)
	}
	for i := 0; i < limit; i++ {
		if i == primary || !root[i].Heavy() {
			continue
		}
		root[i].Stress = phonology.Secondary
		return
	}
}

// assignRhythmic adds secondary stress to unstressed syllables flanked
// by two other unstressed syllables, breaking long lapses.
func assignRhythmic(r *rand.Rand, cfg language.StressConfig, root []*phonology.Syllable) {
	for i := 1; i+1 < len(root); i++ {
		if root[i-1].Stress != phonology.NoStress ||
			root[i].Stress != phonology.NoStress ||
			root[i+1].Stress != phonology.NoStress {
			continue
		}
		if wrand.Percent(r, cfg.RhythmicPercent) {
			root[i].Stress = phonology.Secondary
		}
	}
}
