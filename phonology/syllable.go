package phonology

import "strings"

// Stress marks the prominence of a syllable.
type Stress int

const (
	NoStress Stress = iota
	Primary
	Secondary
)

// String returns the IPA stress mark for the level ("" for none).
func (s Stress) String() string {
	switch s {
	case Primary:
		return "ˈ"
	case Secondary:
		return "ˌ"
	}
	return ""
}

// Syllable is an onset/nucleus/coda triple. The nucleus of a finished
// syllable is never empty. Syllables are mutable during assembly and
// repair; later stages read them in place.
type Syllable struct {
	Onset   []*Phoneme
	Nucleus []*Phoneme
	Coda    []*Phoneme
	Stress  Stress
}

// Phonemes returns the syllable's phonemes in order.
func (s *Syllable) Phonemes() []*Phoneme {
	out := make([]*Phoneme, 0, len(s.Onset)+len(s.Nucleus)+len(s.Coda))
	out = append(out, s.Onset...)
	out = append(out, s.Nucleus...)
	out = append(out, s.Coda...)
	return out
}

// Heavy reports whether the syllable counts as heavy for stress
// purposes: it has a coda or a multi-phoneme nucleus.
func (s *Syllable) Heavy() bool {
	return len(s.Coda) > 0 || len(s.Nucleus) > 1
}

// Sounds returns the concatenated sound symbols, for diagnostics.
func (s *Syllable) Sounds() string {
	var b strings.Builder
	for _, p := range s.Phonemes() {
		b.WriteString(p.Sound)
	}
	return b.String()
}

// Clone returns a deep copy of the syllable (phoneme pointers shared,
// slices copied). Used by trace snapshots.
func (s *Syllable) Clone() *Syllable {
	c := &Syllable{Stress: s.Stress}
	c.Onset = append([]*Phoneme(nil), s.Onset...)
	c.Nucleus = append([]*Phoneme(nil), s.Nucleus...)
	c.Coda = append([]*Phoneme(nil), s.Coda...)
	return c
}

// Written is the orthographic rendering of a word.
type Written struct {
	Clean      string `yaml:"clean"`
	Hyphenated string `yaml:"hyphenated"`
}

// StressEffect describes how an affix alters word stress.
type StressEffect string

const (
	StressNone             StressEffect = "none"
	StressPrimary          StressEffect = "primary"
	StressSecondary        StressEffect = "secondary"
	StressAttractPreceding StressEffect = "attract-preceding"
)

// MorphInfo records how morphology changed a word, so that downstream
// rendering can keep affix spellings verbatim and apply boundary
// transforms at the right joins.
type MorphInfo struct {
	Template string

	// PrefixWritten spells the attached prefix (after allomorph
	// resolution); PrefixName is the base written form identifying the
	// affix in the language config. PrefixSyllables counts whole
	// syllables it contributed at the front of the word;
	// PrefixPhonemes counts phonemes a zero-syllable prefix spliced
	// into the first syllable's onset.
	PrefixWritten   string
	PrefixName      string
	PrefixSyllables int
	PrefixPhonemes  int
	PrefixStress    StressEffect

	SuffixWritten   string
	SuffixName      string
	SuffixSyllables int
	SuffixPhonemes  int
	SuffixStress    StressEffect

	// SuffixTransformed is the root's final written segment after the
	// suffix's boundary transforms ran; empty when none fired.
	// It is filled in by the orthography renderer.
	SuffixTransformed string
}

// Word is the root entity produced by one generation call.
type Word struct {
	Syllables     []*Syllable
	Pronunciation string
	Written       Written
	Morph         *MorphInfo
	Trace         *TraceLog
}

// RootRange returns the half-open syllable index range [lo, hi) owned by
// the root (excluding whole-syllable affixes).
func (w *Word) RootRange() (lo, hi int) {
	lo, hi = 0, len(w.Syllables)
	if w.Morph != nil {
		lo += w.Morph.PrefixSyllables
		hi -= w.Morph.SuffixSyllables
	}
	if lo > hi {
		lo, hi = 0, len(w.Syllables)
	}
	return lo, hi
}

// PrimaryIndex returns the index of the primary-stressed syllable, or -1.
func (w *Word) PrimaryIndex() int {
	for i, s := range w.Syllables {
		if s.Stress == Primary {
			return i
		}
	}
	return -1
}
