// Package orthography turns the final phoneme sequence of a word into
// its written forms: context-filtered grapheme selection, consonant
// doubling, spelling rules, and the pileup / junction / silent-e repair
// passes over the rendered string.
package orthography

import (
	"math/rand"
	"strings"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// unit is one rendered grapheme: a phoneme with the text chosen for it.
// Multi-letter texts (digraphs, trigraphs) are atomic units.
type unit struct {
	ph   *phonology.Phoneme
	pos  phonology.Position
	text string
}

// flat is one element of the word's position-tagged phoneme sequence.
type flat struct {
	ph         *phonology.Phoneme
	pos        phonology.Position
	syll       int
	clusterLen int
}

// Render converts w's syllables to written form. Affix syllables and
// spliced affix phonemes keep their configured spelling verbatim; root
// syllables are rendered phoneme by phoneme.
func Render(r *rand.Rand, m *language.Model, w *phonology.Word, tracer phonology.Tracer) phonology.Written {
	if len(w.Syllables) == 0 {
		return phonology.Written{}
	}
	seq := flatten(w)
	lo, hi := w.RootRange()

	segments := make([][]unit, 0, hi-lo)
	st := &renderState{r: r, m: m, w: w, seq: seq, tracer: tracer}
	for si := lo; si < hi; si++ {
		segments = append(segments, st.renderSyllable(si, lo, hi))
	}

	repairJunctions(m, segments, tracer)
	repairAffixJunctions(m, w.Morph, segments, tracer)

	texts := make([]string, len(segments))
	for i, seg := range segments {
		var b strings.Builder
		for _, u := range seg {
			b.WriteString(u.text)
		}
		text := b.String()
		for _, rule := range m.SyllableRules() {
			text, _ = rule.Apply(r, text)
		}
		texts[i] = text
	}

	fixHardG(m, segments, texts)

	prefix, suffix := affixWritten(m, w, texts)

	parts := make([]string, 0, len(texts)+2)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	rootStart := len(parts)
	parts = append(parts, texts...)
	rootEnd := len(parts)
	if suffix != "" {
		parts = append(parts, suffix)
	}
	collapseJoins(parts[rootStart:rootEnd])

	repairConsonantPileups(m, parts, rootStart, rootEnd, tracer)
	repairVowelPileups(m, parts, rootStart, rootEnd, tracer)
	// A trim at a segment boundary can leave a fresh duplicated letter.
	collapseJoins(parts[rootStart:rootEnd])

	if suffix == "" {
		applySilentE(r, m, w, parts, segments)
	}

	clean := strings.Join(parts, "")
	for _, rule := range m.WordRules() {
		clean, _ = rule.Apply(r, clean)
	}

	return phonology.Written{
		Clean:      clean,
		Hyphenated: strings.Join(parts, "-"),
	}
}

// flatten builds the whole word's phoneme sequence, affixes included,
// so neighbor-sensitive conditions see across morpheme boundaries.
func flatten(w *phonology.Word) []flat {
	var seq []flat
	for si, s := range w.Syllables {
		for _, p := range s.Onset {
			seq = append(seq, flat{ph: p, pos: phonology.Onset, syll: si, clusterLen: len(s.Onset)})
		}
		for _, p := range s.Nucleus {
			seq = append(seq, flat{ph: p, pos: phonology.Nucleus, syll: si, clusterLen: len(s.Nucleus)})
		}
		for _, p := range s.Coda {
			seq = append(seq, flat{ph: p, pos: phonology.Coda, syll: si, clusterLen: len(s.Coda)})
		}
	}
	return seq
}

type renderState struct {
	r      *rand.Rand
	m      *language.Model
	w      *phonology.Word
	seq    []flat
	tracer phonology.Tracer

	doublings int
}

// renderSyllable renders the root syllable at index si, skipping
// phonemes spliced in by zero-syllable affixes (their affix written
// form covers them).
func (st *renderState) renderSyllable(si, lo, hi int) []unit {
	info := st.w.Morph
	skipOnset, skipCoda := 0, 0
	if info != nil {
		if si == lo {
			skipOnset = info.PrefixPhonemes
		}
		if si == hi-1 {
			skipCoda = info.SuffixPhonemes
		}
	}
	s := st.w.Syllables[si]
	codaLen := len(s.Coda)

	var units []unit
	onsetSeen, codaSeen := 0, 0
	for i, f := range st.seq {
		if f.syll != si {
			continue
		}
		switch f.pos {
		case phonology.Onset:
			onsetSeen++
			if onsetSeen <= skipOnset {
				continue
			}
		case phonology.Coda:
			codaSeen++
			if codaSeen > codaLen-skipCoda {
				continue
			}
		}
		units = append(units, st.selectGrapheme(i))
	}
	return units
}

// selectGrapheme picks the spelling for seq[i]: candidates for the
// (sound, position) pair are filtered by context condition, then by
// structural position, with fallback to the unfiltered set whenever a
// filter empties the candidates; one survivor is chosen by cumulative-
// frequency-weighted draw.
func (st *renderState) selectGrapheme(i int) unit {
	f := st.seq[i]
	sound := f.ph.Sound
	cands := st.m.Graphemes(sound)
	if len(cands) == 0 {
		// No spelling configured: fall back to the raw sound symbol so
		// rendering stays total.
		return unit{ph: f.ph, pos: f.pos, text: sound}
	}

	wordStart := i == 0
	wordEnd := i == len(st.seq)-1

	filtered := st.filterByCondition(cands, i, wordStart, wordEnd)
	if len(filtered) == 0 {
		filtered = cands
	}

	structural := filtered[:0:0]
	for _, g := range filtered {
		if g.WordPosition.Modifier(wordStart, wordEnd) > 0 {
			structural = append(structural, g)
		}
	}
	if len(structural) == 0 {
		structural = filtered
	}

	weights := make([]float64, len(structural))
	inCluster := f.clusterLen > 1 && f.ph.IsConsonant()
	for j, g := range structural {
		wgt := g.Frequency * g.WordPosition.Modifier(wordStart, wordEnd)
		if wgt <= 0 {
			wgt = g.Frequency
		}
		if inCluster && g.Cluster > 0 {
			wgt *= g.Cluster
		}
		weights[j] = wgt
	}
	idx, roll := wrand.IndexRoll(st.r, weights)
	if idx < 0 {
		idx = 0
	}
	chosen := structural[idx]

	if st.tracer != nil {
		names := make([]string, len(structural))
		for j, g := range structural {
			names[j] = g.Form
		}
		st.tracer.Decision(phonology.GraphemeDecision{
			Sound:      sound,
			Position:   f.pos,
			Candidates: names,
			Weights:    weights,
			Roll:       roll,
			Selected:   chosen.Form,
		})
	}

	text := chosen.Form
	if doubled := st.maybeDouble(i, text, wordEnd); doubled != "" {
		text = doubled
	}
	return unit{ph: f.ph, pos: f.pos, text: text}
}

// filterByCondition keeps candidates whose context condition matches
// the neighboring phonemes and word position.
func (st *renderState) filterByCondition(cands []*phonology.Grapheme, i int, wordStart, wordEnd bool) []*phonology.Grapheme {
	var left, right *phonology.Phoneme
	if i > 0 {
		left = st.seq[i-1].ph
	}
	if i+1 < len(st.seq) {
		right = st.seq[i+1].ph
	}

	out := cands[:0:0]
	for _, g := range cands {
		c := g.Condition
		if c == nil {
			out = append(out, g)
			continue
		}
		if c.WordStart && !wordStart {
			continue
		}
		if c.WordEnd && !wordEnd {
			continue
		}
		if len(c.Before) > 0 && !inAnyClass(st.m, c.Before, left) {
			continue
		}
		if len(c.After) > 0 && !inAnyClass(st.m, c.After, right) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func inAnyClass(m *language.Model, classes []string, p *phonology.Phoneme) bool {
	for _, c := range classes {
		if m.InClass(c, p) {
			return true
		}
	}
	return false
}

// maybeDouble duplicates a single consonant letter after a lax vowel,
// subject to the doubling config. Returns "" when no doubling applies.
func (st *renderState) maybeDouble(i int, text string, wordEnd bool) string {
	cfg := st.m.Config.Doubling
	f := st.seq[i]
	if !cfg.Enabled || f.ph.IsVowel() || len(text) != 1 {
		return ""
	}
	if cfg.MaxPerWord > 0 && st.doublings >= cfg.MaxPerWord {
		return ""
	}
	if i == 0 {
		return ""
	}
	prev := st.seq[i-1].ph
	if !prev.IsVowel() || prev.Tense || prev.Reduced {
		return ""
	}
	for _, l := range cfg.NeverDouble {
		if l == text {
			return ""
		}
	}
	for _, l := range cfg.FinalOnly {
		if l == text && !wordEnd {
			return ""
		}
	}
	// A tense vowel right after the consonant signals a long-vowel
	// spelling; doubling would misread it.
	if i+1 < len(st.seq) {
		next := st.seq[i+1].ph
		if next.IsVowel() && next.Tense {
			return ""
		}
	}
	percent := cfg.Percent
	if st.w.Syllables[f.syll].Stress == phonology.NoStress && cfg.UnstressedFactor > 0 {
		percent *= cfg.UnstressedFactor
	}
	if !wrand.Percent(st.r, percent) {
		return ""
	}
	st.doublings++
	return text + text
}

// affixWritten resolves the affix spellings and applies the suffix's
// boundary transforms to the root's final segment.
func affixWritten(m *language.Model, w *phonology.Word, texts []string) (prefix, suffix string) {
	info := w.Morph
	if info == nil {
		return "", ""
	}
	prefix = info.PrefixWritten
	suffix = info.SuffixWritten

	if suffix != "" && len(texts) > 0 {
		if a := m.FindSuffix(info.SuffixName); a != nil {
			last := len(texts) - 1
			texts[last] = applyTransforms(m, a, texts[last], info)
		}
	}
	if prefix != "" && len(texts) > 0 {
		if a := m.FindPrefix(info.PrefixName); a != nil {
			texts[0] = applyTransforms(m, a, texts[0], nil)
		}
	}
	return prefix, suffix
}

// applyTransforms runs the affix's ordered boundary transforms with
// named mutual exclusion: a transform blocked by one that already fired
// is skipped.
func applyTransforms(m *language.Model, a *language.Affix, text string, info *phonology.MorphInfo) string {
	fired := make(map[string]bool)
	for _, t := range a.Transforms {
		ct := m.Transform(a, t.Name)
		if ct == nil {
			continue
		}
		blocked := false
		for _, name := range ct.BlockedBy {
			if fired[name] {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		out, ok := ct.Apply(text)
		if ok {
			fired[ct.Name] = true
			text = out
			if info != nil {
				info.SuffixTransformed = text
			}
		}
	}
	return text
}

// collapseJoins removes a duplicated letter where one root segment ends
// with the letter the next begins with.
func collapseJoins(texts []string) {
	for i := 1; i < len(texts); i++ {
		prev := texts[i-1]
		if prev == "" {
			continue
		}
		last := prev[len(prev)-1]
		for texts[i] != "" && texts[i][0] == last && !isVowelLetter(rune(last)) {
			texts[i] = texts[i][1:]
		}
	}
}

func isVowelLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
