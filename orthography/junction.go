package orthography

import (
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// junctionLegal checks a coda-final / onset-initial consonant pair
// against the articulatory junction rules, evaluated in order:
//
//  1. identical sounds are rejected
//  2. same manner and place is rejected
//  3. /s/ on either side is legal
//  4. stop+stop with a non-coronal onset is rejected
//  5. stop+stop disagreeing in voicing is rejected
//  6. homorganic nasal+stop is legal
//  7. a coronal onset is legal
//  8. a manner change is legal
//  9. a place change is legal
//
// Anything falling through is rejected.
func junctionLegal(coda, onset *phonology.Phoneme) bool {
	if coda.Sound == onset.Sound {
		return false
	}
	if coda.Manner == onset.Manner && coda.Place == onset.Place {
		return false
	}
	if coda.Sound == "s" || onset.Sound == "s" {
		return true
	}
	if coda.Manner == phonology.MannerStop && onset.Manner == phonology.MannerStop {
		if !onset.Place.Coronal() {
			return false
		}
		if coda.Voiced != onset.Voiced {
			return false
		}
		return true
	}
	if coda.Manner == phonology.MannerNasal && onset.Manner == phonology.MannerStop && coda.Place == onset.Place {
		return true
	}
	if onset.Place.Coronal() {
		return true
	}
	if coda.Manner != onset.Manner {
		return true
	}
	return coda.Place != onset.Place
}

// repairJunctions drops illegal coda-final consonants at every root
// syllable join. Whole grapheme units are removed, never split, so a
// digraph disappears as one piece.
func repairJunctions(m *language.Model, segments [][]unit, tracer phonology.Tracer) {
	for i := 1; i < len(segments); i++ {
		for iter := 0; iter < 4; iter++ {
			left := segments[i-1]
			if len(left) == 0 {
				break
			}
			lu := left[len(left)-1]
			ru, ok := firstConsonant(segments[i])
			if !ok || lu.pos != phonology.Coda || lu.ph.IsVowel() {
				break
			}
			if junctionLegal(lu.ph, ru.ph) {
				break
			}
			segments[i-1] = left[:len(left)-1]
			if tracer != nil {
				tracer.Event("junction-repair", "dropped "+lu.text+" before "+ru.text)
			}
		}
	}
}

// affixJunctionLegal relaxes the root-internal junction rules for the
// join against a verbatim affix spelling. Doubled and homorganic
// sonorant pairs are normal written morpheme joins (coolly, plainness),
// so only stop pairs keep the full articulatory check.
func affixJunctionLegal(coda, onset *phonology.Phoneme) bool {
	if coda.Manner == phonology.MannerStop && onset.Manner == phonology.MannerStop {
		return junctionLegal(coda, onset)
	}
	if coda.Sound == onset.Sound {
		return true
	}
	if coda.Manner == onset.Manner && coda.Place == onset.Place {
		return true
	}
	return junctionLegal(coda, onset)
}

// repairAffixJunctions drops root written units that form an illegal
// consonant pair against an affix spelling. Affix spellings are kept
// verbatim, so the root side always yields; the pair is judged by the
// consonant the affix's edge letter spells, which for a suffix like
// "tion" differs from its onset phoneme.
func repairAffixJunctions(m *language.Model, info *phonology.MorphInfo, segments [][]unit, tracer phonology.Tracer) {
	if info == nil || len(segments) == 0 {
		return
	}
	if p := affixEdgePhoneme(m, info.SuffixWritten, true); p != nil {
		li := len(segments) - 1
		for iter := 0; iter < 4 && len(segments[li]) > 0; iter++ {
			lu := segments[li][len(segments[li])-1]
			if lu.pos != phonology.Coda || lu.ph.IsVowel() || affixJunctionLegal(lu.ph, p) {
				break
			}
			segments[li] = segments[li][:len(segments[li])-1]
			if tracer != nil {
				tracer.Event("junction-repair", "dropped "+lu.text+" before "+info.SuffixWritten)
			}
		}
	}
	if p := affixEdgePhoneme(m, info.PrefixWritten, false); p != nil {
		for iter := 0; iter < 4 && len(segments[0]) > 0; iter++ {
			ru := segments[0][0]
			if ru.pos != phonology.Onset || ru.ph.IsVowel() || affixJunctionLegal(p, ru.ph) {
				break
			}
			segments[0] = segments[0][1:]
			if tracer != nil {
				tracer.Event("junction-repair", "dropped "+ru.text+" after "+info.PrefixWritten)
			}
		}
	}
}

// affixEdgePhoneme maps the first or last written unit of an affix
// spelling to the consonant it spells in isolation, or nil when the
// edge is vowel-like or outside the inventory.
func affixEdgePhoneme(m *language.Model, written string, first bool) *phonology.Phoneme {
	if written == "" {
		return nil
	}
	units := SegmentUnits(m, written)
	if len(units) == 0 {
		return nil
	}
	u := units[0]
	if !first {
		u = units[len(units)-1]
	}
	p, ok := m.Phoneme(u)
	if !ok {
		// A multi-letter unit like "ti" reads as its edge letter at
		// the join.
		if first {
			p, ok = m.Phoneme(u[:1])
		} else {
			p, ok = m.Phoneme(u[len(u)-1:])
		}
	}
	if !ok || p.IsVowel() {
		return nil
	}
	return p
}

func firstConsonant(seg []unit) (unit, bool) {
	if len(seg) == 0 {
		return unit{}, false
	}
	u := seg[0]
	if u.pos != phonology.Onset || u.ph.IsVowel() {
		return unit{}, false
	}
	return u, true
}
