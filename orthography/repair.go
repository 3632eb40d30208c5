package orthography

import (
	"math/rand"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// SegmentUnits splits written text into grapheme units, treating the
// language's multi-letter grapheme forms (digraphs, trigraphs) as
// atomic. Longest match wins; unknown letters are single units.
func SegmentUnits(m *language.Model, text string) []string {
	forms := multiLetterForms(m)
	var units []string
	for len(text) > 0 {
		matched := ""
		for _, f := range forms {
			if strings.HasPrefix(text, f) {
				matched = f
				break
			}
		}
		if matched == "" {
			_, size := utf8.DecodeRuneInString(text)
			matched = text[:size]
		}
		units = append(units, matched)
		text = text[len(matched):]
	}
	return units
}

// multiLetterForms lists the config's multi-letter grapheme forms,
// longest first.
func multiLetterForms(m *language.Model) []string {
	seen := make(map[string]bool)
	var forms []string
	for _, g := range m.Config.Graphemes {
		if len(g.Form) > 1 && !seen[g.Form] {
			seen[g.Form] = true
			forms = append(forms, g.Form)
		}
	}
	sort.Slice(forms, func(i, j int) bool {
		if len(forms[i]) != len(forms[j]) {
			return len(forms[i]) > len(forms[j])
		}
		return forms[i] < forms[j]
	})
	return forms
}

// consonantUnit reports whether a grapheme unit is consonantal: it
// contains no plain vowel letter. "y" counts as a vowel so it breaks
// consonant runs.
func consonantUnit(u string) bool {
	for _, r := range u {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return false
		}
	}
	return len(u) > 0
}

// MaxConsonantRun measures the longest run of consecutive consonant
// grapheme units in text. Exposed for the analysis tooling.
func MaxConsonantRun(m *language.Model, text string) int {
	units := SegmentUnits(m, text)
	best, run := 0, 0
	for _, u := range units {
		if consonantUnit(u) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// repairConsonantPileups caps consonant-unit runs across the word.
// Runs spanning a segment boundary lose interior units from the side
// contributing more, nearest the boundary; runs inside one segment
// lose their middle unit.
func repairConsonantPileups(m *language.Model, parts []string, rootStart, rootEnd int, tracer phonology.Tracer) {
	max := m.MaxConsonantRun()
	for iter := 0; iter < 8; iter++ {
		if !trimPileup(m, parts, rootStart, rootEnd, max, consonantUnit, tracer) {
			return
		}
	}
}

// repairVowelPileups caps vowel-letter runs the same way, counting
// single letters rather than units.
func repairVowelPileups(m *language.Model, parts []string, rootStart, rootEnd int, tracer phonology.Tracer) {
	max := m.MaxVowelRun()
	vowel := func(u string) bool {
		return len(u) > 0 && !consonantUnit(u) && u != "y"
	}
	for iter := 0; iter < 8; iter++ {
		if !trimPileup(m, parts, rootStart, rootEnd, max, vowel, tracer) {
			return
		}
	}
}

// posUnit is one grapheme unit located inside the parts list.
type posUnit struct {
	part   int
	offset int
	text   string
}

// trimPileup finds the first over-long run and removes one unit,
// reporting whether anything changed. Only root parts (index in
// [rootStart, rootEnd)) lose units; affix spellings stay intact.
func trimPileup(m *language.Model, parts []string, rootStart, rootEnd, max int, match func(string) bool, tracer phonology.Tracer) bool {
	var all []posUnit
	for pi, p := range parts {
		off := 0
		for _, u := range SegmentUnits(m, p) {
			all = append(all, posUnit{part: pi, offset: off, text: u})
			off += len(u)
		}
	}

	runStart := -1
	for i := 0; i <= len(all); i++ {
		if i < len(all) && match(all[i].text) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 && i-runStart > max {
			v := pickVictim(all[runStart:i], runStart)
			// Walk the victim into root territory if an affix unit was
			// chosen.
			for v > runStart && (all[v].part < rootStart || all[v].part >= rootEnd) {
				v--
			}
			for v < i-1 && (all[v].part < rootStart || all[v].part >= rootEnd) {
				v++
			}
			victim := all[v]
			if victim.part < rootStart || victim.part >= rootEnd {
				return false
			}
			parts[victim.part] = parts[victim.part][:victim.offset] + parts[victim.part][victim.offset+len(victim.text):]
			if tracer != nil {
				tracer.Event("pileup-repair", "dropped "+victim.text)
			}
			return true
		}
		runStart = -1
	}
	return false
}

// pickVictim picks the index (into the full unit list) of the unit to
// remove from an over-long run: a unit beside the part boundary on the
// side contributing more units, or the middle unit when the run lies
// inside one part.
func pickVictim(run []posUnit, base int) int {
	boundary := -1
	for i := 1; i < len(run); i++ {
		if run[i].part != run[i-1].part {
			boundary = i
			break
		}
	}
	if boundary < 0 {
		return base + len(run)/2
	}
	left, right := boundary, len(run)-boundary
	if left >= right {
		return base + boundary - 1
	}
	return base + boundary
}

// fixHardG inserts a silent "u" when a syllable-final hard-g spelling
// would be misread as soft g before a front vowel letter.
func fixHardG(m *language.Model, segments [][]unit, texts []string) {
	if !m.Config.Orthography.HardGFix {
		return
	}
	for i := 0; i+1 < len(texts); i++ {
		if texts[i] == "" || texts[i+1] == "" {
			continue
		}
		if !strings.HasSuffix(texts[i], "g") || !endsHardG(segments[i]) {
			continue
		}
		switch texts[i+1][0] {
		case 'e', 'i', 'y':
			texts[i] += "u"
		}
	}
}

// endsHardG reports whether the segment's last unit spells /g/ as "g".
func endsHardG(seg []unit) bool {
	if len(seg) == 0 {
		return false
	}
	u := seg[len(seg)-1]
	return u.ph.Sound == "g" && strings.HasSuffix(u.text, "g")
}

// applySilentE appends a silent e after a stressed tense single-letter
// nucleus followed by a single single-letter consonant at the end of
// the word ("mak" → "make").
func applySilentE(r *rand.Rand, m *language.Model, w *phonology.Word, parts []string, segments [][]unit) {
	pct := m.Config.Orthography.SilentEPercent
	if pct <= 0 || len(parts) == 0 || len(segments) == 0 {
		return
	}
	lastSeg := segments[len(segments)-1]
	if len(lastSeg) < 2 {
		return
	}
	final := lastSeg[len(lastSeg)-1]
	nucleus := lastSeg[len(lastSeg)-2]
	if final.pos != phonology.Coda || final.ph.IsVowel() || len(final.text) != 1 {
		return
	}
	if nucleus.pos != phonology.Nucleus || !nucleus.ph.Tense || len(nucleus.text) != 1 {
		return
	}
	_, hi := w.RootRange()
	if w.Syllables[hi-1].Stress == phonology.NoStress && len(w.Syllables) > 1 {
		return
	}
	last := parts[len(parts)-1]
	if last == "" || strings.HasSuffix(last, "e") {
		return
	}
	if wrand.Percent(r, pct) {
		parts[len(parts)-1] = last + "e"
	}
}
