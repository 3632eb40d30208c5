// Package syllable builds the phonological skeleton of a word: it grows
// sonority-legal onset/nucleus/coda clusters, assembles them into
// syllables, and repairs phonotactic violations left at syllable
// boundaries and word edges.
package syllable

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// ClusterContext is the per-cluster-build state. It is scoped to one
// BuildCluster call and never shared.
type ClusterContext struct {
	Rand     *rand.Rand
	Model    *language.Model
	Position phonology.Position

	// Cluster accumulates the phonemes chosen so far.
	Cluster []*phonology.Phoneme
	// Exclude lists sounds that may not be chosen.
	Exclude map[string]bool

	StartOfWord bool
	EndOfWord   bool
	MaxLength   int
	// SyllableCount is the word's total syllable count, for weight
	// tables keyed on word shape.
	SyllableCount int
}

// BuildCluster grows the context's cluster phoneme by phoneme until the
// maximum length is reached, the candidate pool empties, or an early
// stop rule fires. Identical RNG stream and candidate pool produce an
// identical cluster.
func BuildCluster(cc *ClusterContext) []*phonology.Phoneme {
	for len(cc.Cluster) < cc.MaxLength {
		candidates := cc.candidates()
		if len(candidates) == 0 {
			break
		}
		p, ok := wrand.Pick(cc.Rand, candidates, cc.weight)
		if !ok {
			break
		}
		cc.Cluster = append(cc.Cluster, p)

		// Onsets stop growing once a two-phoneme cluster ends in a
		// liquid or nasal; nothing may legally follow.
		if cc.Position == phonology.Onset && len(cc.Cluster) == 2 {
			m := p.Manner
			if m == phonology.MannerLiquid || m == phonology.MannerNasal {
				break
			}
		}
	}
	return cc.Cluster
}

// candidates filters the position pool to phonemes that may legally
// extend the cluster.
func (cc *ClusterContext) candidates() []*phonology.Phoneme {
	var out []*phonology.Phoneme
	for _, p := range cc.Model.Pool(cc.Position) {
		if cc.Exclude[p.Sound] || cc.contains(p) {
			continue
		}
		if p.WordPosition.Modifier(cc.StartOfWord, cc.EndOfWord) <= 0 {
			continue
		}
		if !cc.sonorityAllows(p) {
			continue
		}
		trial := append(append([]*phonology.Phoneme(nil), cc.Cluster...), p)
		if cc.Model.ClusterInvalid(cc.Position, trial) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (cc *ClusterContext) contains(p *phonology.Phoneme) bool {
	for _, q := range cc.Cluster {
		if q == p {
			return true
		}
	}
	return false
}

// weight is positional weight times the word-position modifier.
func (cc *ClusterContext) weight(p *phonology.Phoneme) float64 {
	return p.Weights.At(cc.Position) * p.WordPosition.Modifier(cc.StartOfWord, cc.EndOfWord)
}

// sonorityAllows applies the sonority sequencing rules for the position.
// Onsets rise toward the nucleus, codas fall away from it; both carry a
// small set of fixed exceptions.
func (cc *ClusterContext) sonorityAllows(p *phonology.Phoneme) bool {
	if len(cc.Cluster) == 0 || cc.Position == phonology.Nucleus {
		return true
	}
	prev := cc.Cluster[len(cc.Cluster)-1]
	prevSon := cc.Model.Sonority.Of(prev)
	candSon := cc.Model.Sonority.Of(p)

	switch cc.Position {
	case phonology.Onset:
		// After a stop only a glide or liquid may follow, whatever the
		// sonority says.
		if prev.Manner == phonology.MannerStop {
			return p.Manner == phonology.MannerGlide || p.Manner == phonology.MannerLiquid
		}
		if candSon > prevSon {
			return true
		}
		// /s/ + stop clusters violate the rise and are still legal.
		return prev.Sound == "s" && p.Manner == phonology.MannerStop

	case phonology.Coda:
		if candSon < prevSon {
			return true
		}
		switch {
		case prev.Manner == phonology.MannerFricative && p.Manner == phonology.MannerFricative:
			return true
		case prev.Manner == phonology.MannerStop && p.Manner == phonology.MannerStop:
			return true
		case prev.Manner == phonology.MannerStop && (p.Manner == phonology.MannerFricative || p.Sibilant):
			return true
		case prev.Sibilant && p.Manner == phonology.MannerNasal:
			return true
		}
		return false
	}
	return true
}
