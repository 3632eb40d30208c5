// Package ipa assembles the IPA-like pronunciation string of a word:
// position- and stress-sensitive aspiration of voiceless stops, then
// serialization with stress marks and syllable boundaries.
package ipa

import (
	"math/rand"
	"strings"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// Render builds the pronunciation string for w.
func Render(r *rand.Rand, m *language.Model, w *phonology.Word) string {
	var b strings.Builder
	for si, s := range w.Syllables {
		switch s.Stress {
		case phonology.Primary, phonology.Secondary:
			b.WriteString(s.Stress.String())
		default:
			if si > 0 {
				b.WriteString(".")
			}
		}
		for i, p := range s.Onset {
			b.WriteString(p.Sound)
			b.WriteString(aspiration(r, m, w, s, si, i, phonology.Onset))
		}
		for _, p := range s.Nucleus {
			b.WriteString(p.Sound)
		}
		for i, p := range s.Coda {
			b.WriteString(p.Sound)
			b.WriteString(aspiration(r, m, w, s, si, i, phonology.Coda))
		}
	}
	return b.String()
}

// aspiration returns "ʰ" when the phoneme at the given slot aspirates.
// Only voiceless stops aspirate: most strongly word-initially and in
// stressed onsets, almost never after /s/, and only weakly in a
// word-final single-consonant coda.
func aspiration(r *rand.Rand, m *language.Model, w *phonology.Word, s *phonology.Syllable, si, i int, pos phonology.Position) string {
	cfg := m.Config.Aspiration
	var p *phonology.Phoneme
	switch pos {
	case phonology.Onset:
		p = s.Onset[i]
	case phonology.Coda:
		p = s.Coda[i]
	default:
		return ""
	}
	if p.Voiced || p.Manner != phonology.MannerStop {
		return ""
	}

	var pct float64
	switch pos {
	case phonology.Onset:
		switch {
		case i > 0 && s.Onset[i-1].Sound == "s":
			pct = cfg.PostS
		case si == 0 && i == 0:
			pct = cfg.WordInitial
		case s.Stress == phonology.Primary && i == 0:
			pct = cfg.StressedOnset
		}
	case phonology.Coda:
		if si == len(w.Syllables)-1 && len(s.Coda) == 1 {
			pct = cfg.FinalCoda
		}
	}
	if pct > 0 && wrand.Percent(r, pct) {
		return "ʰ"
	}
	return ""
}
