package morphology

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// realization is an affix's resolved surface form after allomorph
// selection.
type realization struct {
	written   string
	phonemes  []string
	syllables []language.SyllableTemplate
}

// Apply splices the planned affixes onto w and records the result in
// w.Morph. The word's pronunciation and spelling are recomputed by the
// later pipeline stages, never patched incrementally.
func Apply(r *rand.Rand, m *language.Model, w *phonology.Word, plan *Plan, tracer phonology.Tracer) {
	if plan == nil || plan.Template == TemplateBare || len(w.Syllables) == 0 {
		return
	}
	info := &phonology.MorphInfo{Template: string(plan.Template)}
	w.Morph = info

	if plan.Suffix != nil {
		attachSuffix(r, m, w, plan.Suffix, info, tracer)
	}
	if plan.Prefix != nil {
		attachPrefix(r, m, w, plan.Prefix, info, tracer)
	}
	if tracer != nil {
		tracer.Stage("morphology", w.Syllables)
		tracer.Event("morph-plan", string(plan.Template))
	}
}

// resolve picks the affix realization: the most specific matching
// variant wins, where manner/place/sound-constrained conditions outrank
// voicing-only ones; ties keep declaration order. With no match the
// base form is used.
func resolve(a *language.Affix, adjacent *phonology.Phoneme) realization {
	pick := func(specific bool) *language.AllomorphVariant {
		for i := range a.Variants {
			v := &a.Variants[i]
			if v.Condition.Specific() != specific {
				continue
			}
			if v.Condition.Matches(adjacent) {
				return v
			}
		}
		return nil
	}
	v := pick(true)
	if v == nil {
		v = pick(false)
	}
	if v == nil {
		return realization{written: a.Written, phonemes: a.Phonemes, syllables: a.Syllables}
	}
	rz := realization{written: v.Written, phonemes: v.Phonemes, syllables: v.Syllables}
	if rz.written == "" {
		rz.written = a.Written
	}
	return rz
}

// buildSyllable materializes one template syllable, substituting the
// synthetic default phoneme for sounds missing from the inventory.
func buildSyllable(m *language.Model, t language.SyllableTemplate) *phonology.Syllable {
	s := &phonology.Syllable{}
	for _, snd := range t.Onset {
		s.Onset = append(s.Onset, m.PhonemeOrDefault(snd))
	}
	for _, snd := range t.Nucleus {
		s.Nucleus = append(s.Nucleus, m.PhonemeOrDefault(snd))
	}
	if len(s.Nucleus) == 0 {
		s.Nucleus = []*phonology.Phoneme{m.PhonemeOrDefault("")}
	}
	for _, snd := range t.Coda {
		s.Coda = append(s.Coda, m.PhonemeOrDefault(snd))
	}
	return s
}

func attachSuffix(r *rand.Rand, m *language.Model, w *phonology.Word, a *language.Affix, info *phonology.MorphInfo, tracer phonology.Tracer) {
	last := w.Syllables[len(w.Syllables)-1]
	adjacent := lastPhoneme(last)
	rz := resolve(a, adjacent)

	info.SuffixWritten = rz.written
	info.SuffixName = a.Written
	info.SuffixStress = a.StressEffect

	if len(rz.syllables) == 0 {
		// Zero-syllable suffix: splice phonemes into the final coda.
		for _, snd := range rz.phonemes {
			last.Coda = append(last.Coda, m.PhonemeOrDefault(snd))
		}
		info.SuffixPhonemes = len(rz.phonemes)
		return
	}

	// Vowel hiatus at the join: the root ends in a bare vowel and the
	// suffix starts with one. Bridge it with a consonant spliced onto
	// the root's coda so it renders with the root.
	if len(last.Coda) == 0 && len(rz.syllables[0].Onset) == 0 {
		if b := pickBridge(r, m); b != nil {
			last.Coda = append(last.Coda, b)
			if tracer != nil {
				tracer.Event("hiatus-bridge", "suffix join bridged with "+b.Sound)
			}
		}
	}
	for _, t := range rz.syllables {
		w.Syllables = append(w.Syllables, buildSyllable(m, t))
	}
	info.SuffixSyllables = len(rz.syllables)
}

func attachPrefix(r *rand.Rand, m *language.Model, w *phonology.Word, a *language.Affix, info *phonology.MorphInfo, tracer phonology.Tracer) {
	first := w.Syllables[0]
	adjacent := firstPhoneme(first)
	rz := resolve(a, adjacent)

	info.PrefixWritten = rz.written
	info.PrefixName = a.Written
	info.PrefixStress = a.StressEffect

	if len(rz.syllables) == 0 {
		onset := make([]*phonology.Phoneme, 0, len(rz.phonemes)+len(first.Onset))
		for _, snd := range rz.phonemes {
			onset = append(onset, m.PhonemeOrDefault(snd))
		}
		first.Onset = append(onset, first.Onset...)
		info.PrefixPhonemes = len(rz.phonemes)
		return
	}

	lastT := rz.syllables[len(rz.syllables)-1]
	if len(lastT.Coda) == 0 && len(first.Onset) == 0 {
		if b := pickBridge(r, m); b != nil {
			first.Onset = append([]*phonology.Phoneme{b}, first.Onset...)
			if tracer != nil {
				tracer.Event("hiatus-bridge", "prefix join bridged with "+b.Sound)
			}
		}
	}
	pre := make([]*phonology.Syllable, 0, len(rz.syllables)+len(w.Syllables))
	for _, t := range rz.syllables {
		pre = append(pre, buildSyllable(m, t))
	}
	w.Syllables = append(pre, w.Syllables...)
	info.PrefixSyllables = len(rz.syllables)
}

// pickBridge draws a hiatus-breaking consonant from the weighted
// fallback-bridge table.
func pickBridge(r *rand.Rand, m *language.Model) *phonology.Phoneme {
	bridges := m.Config.Morphology.Bridges
	if len(bridges) == 0 {
		return nil
	}
	b, ok := wrand.Pick(r, bridges, func(b language.Bridge) float64 { return b.Weight })
	if !ok {
		return nil
	}
	return m.PhonemeOrDefault(b.Sound)
}

// ApplyStress applies the affix stress effects after the stress
// assigner has run on the root.
func ApplyStress(w *phonology.Word) {
	if w.Morph == nil {
		return
	}
	info := w.Morph

	if info.PrefixSyllables > 0 {
		applyEffect(w, info.PrefixStress, 0, -1)
	}
	if info.SuffixSyllables > 0 {
		suffixStart := len(w.Syllables) - info.SuffixSyllables
		applyEffect(w, info.SuffixStress, suffixStart, suffixStart-1)
	}
}

// applyEffect mutates stress for one affix. affixIdx is the first affix
// syllable; precedingIdx is the syllable before a suffix (-1 for
// prefixes, where attract-preceding does not apply).
func applyEffect(w *phonology.Word, effect phonology.StressEffect, affixIdx, precedingIdx int) {
	switch effect {
	case phonology.StressPrimary:
		demotePrimary(w)
		w.Syllables[affixIdx].Stress = phonology.Primary
	case phonology.StressSecondary:
		if w.Syllables[affixIdx].Stress == phonology.NoStress {
			w.Syllables[affixIdx].Stress = phonology.Secondary
		}
	case phonology.StressAttractPreceding:
		if precedingIdx >= 0 && precedingIdx < len(w.Syllables) {
			demotePrimary(w)
			w.Syllables[precedingIdx].Stress = phonology.Primary
		}
	}
}

func demotePrimary(w *phonology.Word) {
	for _, s := range w.Syllables {
		if s.Stress == phonology.Primary {
			s.Stress = phonology.Secondary
		}
	}
}

func lastPhoneme(s *phonology.Syllable) *phonology.Phoneme {
	if len(s.Coda) > 0 {
		return s.Coda[len(s.Coda)-1]
	}
	if len(s.Nucleus) > 0 {
		return s.Nucleus[len(s.Nucleus)-1]
	}
	return nil
}

func firstPhoneme(s *phonology.Syllable) *phonology.Phoneme {
	if len(s.Onset) > 0 {
		return s.Onset[0]
	}
	if len(s.Nucleus) > 0 {
		return s.Nucleus[0]
	}
	return nil
}
