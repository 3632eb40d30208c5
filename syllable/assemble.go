package syllable

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// PickSyllableCount draws the word's syllable count from the language's
// weight table.
func PickSyllableCount(r *rand.Rand, m *language.Model) int {
	i := wrand.Index(r, m.Config.Generation.SyllableCount)
	if i < 0 {
		return 1
	}
	return i + 1
}

// Assemble builds a word of count syllables. Each syllable decides
// onset and coda presence by word position, picks cluster lengths from
// the language's context-specific tables, grows clusters, and adjusts
// the boundary against the previous syllable.
func Assemble(r *rand.Rand, m *language.Model, count int, tracer phonology.Tracer) *phonology.Word {
	if count < 1 {
		count = 1
	}
	if count > language.MaxSyllables {
		count = language.MaxSyllables
	}

	w := &phonology.Word{}
	for i := 0; i < count; i++ {
		s := assembleSyllable(r, m, w, i, count)
		w.Syllables = append(w.Syllables, s)
		if i > 0 {
			adjustBoundary(r, m, w.Syllables[i-1], s, tracer)
		}
	}
	if tracer != nil {
		tracer.Stage("assemble", w.Syllables)
	}
	return w
}

func assembleSyllable(r *rand.Rand, m *language.Model, w *phonology.Word, index, count int) *phonology.Syllable {
	gen := m.Config.Generation
	mono := count == 1
	first := index == 0
	last := index == count-1

	var prev *phonology.Syllable
	if index > 0 {
		prev = w.Syllables[index-1]
	}

	// Onset presence. Mid-word onsets are mandatory after an open
	// syllable; elsewhere they are probabilistic.
	hasOnset := true
	switch {
	case first:
		hasOnset = wrand.Percent(r, gen.Probability.WordInitialOnset)
	case len(prev.Coda) > 0:
		hasOnset = wrand.Percent(r, gen.Probability.OnsetAfterCoda)
	}

	s := &phonology.Syllable{}
	onsetLen := 0
	if hasOnset {
		var weights []float64
		switch {
		case mono:
			weights = gen.OnsetLength.Monosyllabic
		case prev != nil && len(prev.Coda) == 0:
			weights = gen.OnsetLength.AfterOpen
		default:
			weights = gen.OnsetLength.Default
		}
		if i := wrand.Index(r, weights); i > 0 {
			onsetLen = i
		}
		if onsetLen > 0 {
			s.Onset = BuildCluster(&ClusterContext{
				Rand:          r,
				Model:         m,
				Position:      phonology.Onset,
				StartOfWord:   first,
				MaxLength:     onsetLen,
				SyllableCount: count,
			})
		}
	}

	s.Nucleus = BuildCluster(&ClusterContext{
		Rand:          r,
		Model:         m,
		Position:      phonology.Nucleus,
		StartOfWord:   first && len(s.Onset) == 0,
		EndOfWord:     last,
		MaxLength:     1,
		SyllableCount: count,
	})
	if len(s.Nucleus) == 0 {
		// The nucleus pool can only empty through word-position
		// weights; fall back to an unconditioned draw.
		if p, ok := wrand.Pick(r, m.Pool(phonology.Nucleus), func(p *phonology.Phoneme) float64 {
			return p.Weights.Nucleus
		}); ok {
			s.Nucleus = []*phonology.Phoneme{p}
		}
	}

	// Coda presence.
	var hasCoda bool
	switch {
	case mono:
		hasCoda = wrand.Percent(r, gen.Probability.CodaMonosyllable)
	case last:
		hasCoda = wrand.Percent(r, gen.Probability.CodaFinal)
	default:
		hasCoda = wrand.Percent(r, gen.Probability.CodaMid)
	}

	if hasCoda {
		codaLen := pickCodaLength(r, gen.CodaLength, mono, len(s.Onset))
		if codaLen > 0 {
			s.Coda = BuildCluster(&ClusterContext{
				Rand:          r,
				Model:         m,
				Position:      phonology.Coda,
				EndOfWord:     last,
				MaxLength:     codaLen,
				SyllableCount: count,
			})
		}
	}

	// A final /s/ may ride on the last coda, mimicking inflection-like
	// endings on monomorphemic words.
	if last && wrand.Percent(r, gen.Probability.FinalS) {
		if sp, ok := m.Phoneme("s"); ok && !endsSibilant(s) {
			s.Coda = append(s.Coda, sp)
		}
	}

	return s
}

// pickCodaLength picks the coda length. Monosyllables key their table on
// the onset length already chosen; polysyllables first make the
// zero/non-zero choice, then a length choice.
func pickCodaLength(r *rand.Rand, cfg language.CodaLengthWeights, mono bool, onsetLen int) int {
	if mono {
		weights, ok := cfg.Monosyllabic[onsetLen]
		if !ok {
			weights = cfg.NonZero
			if i := wrand.Index(r, weights); i >= 0 {
				return i + 1
			}
			return 1
		}
		if i := wrand.Index(r, weights); i >= 0 {
			return i
		}
		return 0
	}

	total := 0.0
	for _, w := range cfg.NonZero {
		total += w
	}
	if wrand.Bool(r, cfg.Zero, total) {
		return 0
	}
	if i := wrand.Index(r, cfg.NonZero); i >= 0 {
		return i + 1
	}
	return 1
}

func endsSibilant(s *phonology.Syllable) bool {
	if len(s.Coda) == 0 {
		return false
	}
	return s.Coda[len(s.Coda)-1].Sibilant
}

// adjustBoundary simulates resyllabification: when the previous coda's
// last phoneme and the new onset's first phoneme tie in sonority, the
// coda phoneme probabilistically drops.
func adjustBoundary(r *rand.Rand, m *language.Model, prev, cur *phonology.Syllable, tracer phonology.Tracer) {
	if len(prev.Coda) == 0 || len(cur.Onset) == 0 {
		return
	}
	last := prev.Coda[len(prev.Coda)-1]
	first := cur.Onset[0]
	if m.Sonority.Of(last) != m.Sonority.Of(first) {
		return
	}
	if wrand.Percent(r, m.Config.Generation.Probability.BoundaryCodaDrop) {
		prev.Coda = prev.Coda[:len(prev.Coda)-1]
		if tracer != nil {
			tracer.Event("boundary-adjust", "dropped coda "+last.Sound+" before onset "+first.Sound)
		}
	}
}
