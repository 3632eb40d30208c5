// Package language defines the language configuration a generator is
// built from, its validation, and the compiled model the pipeline
// consumes. A Config is loaded (or taken from the built-in English
// instance), validated once, and treated as immutable afterwards.
package language

import (
	"github.com/unglish/unglish-go/phonology"
)

// Mode selects the statistical register words are generated for:
// running text favors short, morphologically simple words while lexicon
// mode behaves like dictionary headwords.
type Mode string

const (
	ModeText    Mode = "text"
	ModeLexicon Mode = "lexicon"
)

// Config is the full description of a generatable language.
type Config struct {
	Name string `yaml:"name"`

	Phonemes  []*phonology.Phoneme  `yaml:"phonemes"`
	Graphemes []*phonology.Grapheme `yaml:"graphemes"`

	Sonority phonology.SonorityHierarchy `yaml:"sonority"`

	// InvalidClusters holds per-position patterns over space-joined
	// sound sequences; a cluster-in-progress matching one is rejected.
	InvalidClusters InvalidClusterConfig `yaml:"invalidClusters,omitempty"`

	Generation  GenerationWeights  `yaml:"generation"`
	Stress      StressConfig       `yaml:"stress"`
	Constraints ClusterConstraints `yaml:"constraints"`
	Doubling    DoublingConfig     `yaml:"doubling,omitempty"`
	Spelling    SpellingConfig     `yaml:"spelling,omitempty"`
	Orthography OrthographyConfig  `yaml:"orthography,omitempty"`
	Morphology  MorphologyConfig   `yaml:"morphology,omitempty"`
	Aspiration  AspirationConfig   `yaml:"aspiration,omitempty"`
}

// InvalidClusterConfig lists rejected cluster shapes per position.
// Patterns are RE2 expressions matched against the cluster's sounds
// joined by single spaces (e.g. `^s (?:b|d|g)`). An optional Unless
// pattern suppresses the rejection when it also matches, standing in
// for the negative lookaheads of the original rule set.
type InvalidClusterConfig struct {
	Onset []ClusterPattern `yaml:"onset,omitempty"`
	Coda  []ClusterPattern `yaml:"coda,omitempty"`
}

// ClusterPattern is one declarative invalid-cluster rule.
type ClusterPattern struct {
	Pattern string `yaml:"pattern"`
	Unless  string `yaml:"unless,omitempty"`
}

// GenerationWeights drives every structural decision of syllable
// assembly. All Probability values are percentages in [0,100].
type GenerationWeights struct {
	// SyllableCount weights word lengths 1..n; index 0 is one syllable.
	SyllableCount []float64 `yaml:"syllableCount"`

	Probability ProbabilityWeights `yaml:"probability"`

	OnsetLength OnsetLengthWeights `yaml:"onsetLength"`
	CodaLength  CodaLengthWeights  `yaml:"codaLength"`
}

// ProbabilityWeights are the binary-decision percentages of assembly.
type ProbabilityWeights struct {
	// WordInitialOnset is the chance the first syllable has an onset.
	WordInitialOnset float64 `yaml:"wordInitialOnset"`
	// OnsetAfterCoda is the chance a mid-word syllable keeps an onset
	// when the previous syllable ended in a coda. After an open
	// syllable an onset is mandatory.
	OnsetAfterCoda float64 `yaml:"onsetAfterCoda"`
	// CodaMonosyllable / CodaFinal / CodaMid gate coda presence.
	CodaMonosyllable float64 `yaml:"codaMonosyllable"`
	CodaFinal        float64 `yaml:"codaFinal"`
	CodaMid          float64 `yaml:"codaMid"`
	// FinalS is the chance of appending a trailing /s/ to the last coda.
	FinalS float64 `yaml:"finalS"`
	// BoundaryCodaDrop is the chance of dropping a coda phoneme whose
	// sonority equals the following onset's first phoneme.
	BoundaryCodaDrop float64 `yaml:"boundaryCodaDrop"`
}

// OnsetLengthWeights weight onset lengths 0..n by context; index is the
// length.
type OnsetLengthWeights struct {
	Monosyllabic []float64 `yaml:"monosyllabic"`
	AfterOpen    []float64 `yaml:"afterOpen"`
	Default      []float64 `yaml:"default"`
}

// CodaLengthWeights weight coda lengths. Monosyllabic words key the
// length table on the onset length already chosen; polysyllabic words
// first decide zero vs non-zero, then pick a non-zero length.
type CodaLengthWeights struct {
	Monosyllabic map[int][]float64 `yaml:"monosyllabic"`
	Zero         float64           `yaml:"zero"`
	NonZero      []float64         `yaml:"nonZero"` // index 0 = length 1
}

// StressConfig selects and parameterizes the stress assigner.
type StressConfig struct {
	// Strategy is "rules" or "grammar".
	Strategy string `yaml:"strategy"`

	// Primary maps syllable count to index weights, split by penult
	// weight. Missing counts fall back to final-syllable stress.
	HeavyPenult map[int][]float64 `yaml:"heavyPenult,omitempty"`
	LightPenult map[int][]float64 `yaml:"lightPenult,omitempty"`

	// SecondaryPercent gates placing a secondary stress on a heavy
	// non-primary syllable among the first three.
	SecondaryPercent float64 `yaml:"secondaryPercent,omitempty"`
	// RhythmicPercent gates rhythmic secondary stress on syllables
	// flanked by two unstressed neighbors.
	RhythmicPercent float64 `yaml:"rhythmicPercent,omitempty"`

	// Grammar lists harmonic-grammar constraints when Strategy is
	// "grammar". Unknown names are ignored.
	Grammar []ConstraintWeight `yaml:"grammar,omitempty"`
}

// ConstraintWeight is one weighted harmonic-grammar constraint.
type ConstraintWeight struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Noise  float64 `yaml:"noise,omitempty"`
}

// ClusterConstraints drives the phonotactic repair passes.
type ClusterConstraints struct {
	// BannedTransitions lists coda-final → onset-initial sound pairs
	// that may not survive across a syllable boundary.
	BannedTransitions []Transition `yaml:"bannedTransitions,omitempty"`
	// FinalCodas is the set of sounds allowed word-finally. Empty
	// disables final-coda repair.
	FinalCodas []string `yaml:"finalCodas,omitempty"`
	// Shape enables the cluster-shape repair pass.
	Shape ShapeRepair `yaml:"shape,omitempty"`
}

// Transition is a coda/onset sound pair with the side to repair.
type Transition struct {
	Coda  string `yaml:"coda"`
	Onset string `yaml:"onset"`
	// Drop is "coda" (default) or "onset": which side loses a phoneme.
	Drop string `yaml:"drop,omitempty"`
}

// ShapeRepair configures the optional cluster-shape pass.
type ShapeRepair struct {
	Enabled bool `yaml:"enabled"`
	// MaxCoda truncates codas longer than this many phonemes (0 = off).
	MaxCoda int `yaml:"maxCoda,omitempty"`
	// VoicingAgreement forces coda obstruent clusters to agree in
	// voicing with their final obstruent.
	VoicingAgreement bool `yaml:"voicingAgreement,omitempty"`
	// HomorganicNasals forces nasal+stop coda sequences to share place.
	HomorganicNasals bool `yaml:"homorganicNasals,omitempty"`
}

// DoublingConfig gates consonant-letter doubling after lax vowels.
type DoublingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Percent is the base chance of doubling when triggered.
	Percent float64 `yaml:"percent"`
	// UnstressedFactor scales Percent down in unstressed syllables.
	UnstressedFactor float64 `yaml:"unstressedFactor,omitempty"`
	// NeverDouble lists letters that never double; FinalOnly lists
	// letters that double only word-finally.
	NeverDouble []string `yaml:"neverDouble,omitempty"`
	FinalOnly   []string `yaml:"finalOnly,omitempty"`
	// MaxPerWord caps doublings per word (0 = unlimited).
	MaxPerWord int `yaml:"maxPerWord,omitempty"`
}

// SpellingConfig holds probabilistic rewrite rules over rendered text.
// Syllable rules run when each syllable's segment closes; Word rules run
// on the final joined form.
type SpellingConfig struct {
	Syllable []SpellingRule `yaml:"syllable,omitempty"`
	Word     []SpellingRule `yaml:"word,omitempty"`
}

// SpellingRule is a pattern + replacement with a firing probability.
// Pattern is RE2; Replace may use capture-group references ($1, $2).
// Exclude suppresses the rule when it matches the same text, standing
// in for negative lookahead.
type SpellingRule struct {
	Pattern string  `yaml:"pattern"`
	Exclude string  `yaml:"exclude,omitempty"`
	Replace string  `yaml:"replace"`
	Percent float64 `yaml:"percent"`
}

// OrthographyConfig bounds the spelling repair passes.
type OrthographyConfig struct {
	// MaxConsonantRun caps consecutive consonant grapheme units
	// (digraphs count as one unit). Zero defaults to 4.
	MaxConsonantRun int `yaml:"maxConsonantRun,omitempty"`
	// MaxVowelRun caps consecutive vowel letters. Zero defaults to 3.
	MaxVowelRun int `yaml:"maxVowelRun,omitempty"`
	// HardGFix inserts a silent "u" after a syllable-final hard g
	// followed by a front vowel letter.
	HardGFix bool `yaml:"hardGFix,omitempty"`
	// SilentEPercent gates appending a silent e after a stressed tense
	// single-letter nucleus plus single consonant word-finally.
	SilentEPercent float64 `yaml:"silentEPercent,omitempty"`
}

// AspirationConfig holds aspiration probabilities for voiceless stops.
type AspirationConfig struct {
	WordInitial   float64 `yaml:"wordInitial"`
	StressedOnset float64 `yaml:"stressedOnset"`
	PostS         float64 `yaml:"postS"`
	FinalCoda     float64 `yaml:"finalCoda"`
}

// MorphologyConfig drives the morphology engine.
type MorphologyConfig struct {
	// Templates weight the four word templates per mode.
	Templates map[Mode]TemplateWeights `yaml:"templates,omitempty"`
	Prefixes  []*Affix                 `yaml:"prefixes,omitempty"`
	Suffixes  []*Affix                 `yaml:"suffixes,omitempty"`
	// Bridges weight the consonants that may break vowel hiatus at an
	// affix boundary.
	Bridges []Bridge `yaml:"bridges,omitempty"`
}

// TemplateWeights weight the bare/prefixed/suffixed/both templates.
type TemplateWeights struct {
	Bare     float64 `yaml:"bare"`
	Prefixed float64 `yaml:"prefixed"`
	Suffixed float64 `yaml:"suffixed"`
	Both     float64 `yaml:"both"`
}

// Bridge is one hiatus-breaking consonant with its selection weight.
type Bridge struct {
	Sound  string  `yaml:"sound"`
	Weight float64 `yaml:"weight"`
}

// SyllableTemplate spells out one affix syllable by sound.
type SyllableTemplate struct {
	Onset   []string `yaml:"onset,omitempty"`
	Nucleus []string `yaml:"nucleus"`
	Coda    []string `yaml:"coda,omitempty"`
}

// Affix is a prefix or suffix, possibly with phonologically conditioned
// allomorphs and orthographic boundary transforms.
type Affix struct {
	Written string `yaml:"written"`
	// Phonemes lists sounds for a zero-syllable affix; Syllables lists
	// whole-syllable templates otherwise.
	Phonemes  []string           `yaml:"phonemes,omitempty"`
	Syllables []SyllableTemplate `yaml:"syllables,omitempty"`

	StressEffect phonology.StressEffect `yaml:"stressEffect,omitempty"`
	Frequency    float64                `yaml:"frequency"`

	Variants   []AllomorphVariant  `yaml:"variants,omitempty"`
	Transforms []BoundaryTransform `yaml:"transforms,omitempty"`
}

// SyllableCount returns the number of whole syllables the affix (base
// form) contributes.
func (a *Affix) SyllableCount() int { return len(a.Syllables) }

// AllomorphVariant replaces the affix's realization when its condition
// matches the adjacent root phoneme. Variants with a manner or place
// constraint outrank voicing-only variants; ties keep declaration
// order.
type AllomorphVariant struct {
	Condition AllomorphCondition `yaml:"condition"`

	Phonemes  []string           `yaml:"phonemes,omitempty"`
	Syllables []SyllableTemplate `yaml:"syllables,omitempty"`
	Written   string             `yaml:"written,omitempty"`
}

// AllomorphCondition constrains the root phoneme adjacent to the affix.
type AllomorphCondition struct {
	Voiced   *bool              `yaml:"voiced,omitempty"`
	Manner   []phonology.Manner `yaml:"manner,omitempty"`
	Place    []phonology.Place  `yaml:"place,omitempty"`
	Sibilant *bool              `yaml:"sibilant,omitempty"`
	// Sounds restricts to an explicit sound list.
	Sounds []string `yaml:"sounds,omitempty"`
}

// Specific reports whether the condition carries a manner, place, or
// sound constraint (ranked above voicing-only conditions).
func (c AllomorphCondition) Specific() bool {
	return len(c.Manner) > 0 || len(c.Place) > 0 || len(c.Sounds) > 0 || c.Sibilant != nil
}

// Matches reports whether p satisfies the condition.
func (c AllomorphCondition) Matches(p *phonology.Phoneme) bool {
	if p == nil {
		return false
	}
	if c.Voiced != nil && p.Voiced != *c.Voiced {
		return false
	}
	if c.Sibilant != nil && p.Sibilant != *c.Sibilant {
		return false
	}
	if len(c.Manner) > 0 && !containsManner(c.Manner, p.Manner) {
		return false
	}
	if len(c.Place) > 0 && !containsPlace(c.Place, p.Place) {
		return false
	}
	if len(c.Sounds) > 0 {
		found := false
		for _, s := range c.Sounds {
			if s == p.Sound {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsManner(ms []phonology.Manner, m phonology.Manner) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

func containsPlace(ps []phonology.Place, p phonology.Place) bool {
	for _, x := range ps {
		if x == p {
			return true
		}
	}
	return false
}

// BoundaryTransform is an ordered orthographic rewrite applied to the
// root's written form where it meets the affix. A transform whose
// BlockedBy names an earlier transform that already fired is skipped.
type BoundaryTransform struct {
	Name      string   `yaml:"name"`
	Pattern   string   `yaml:"pattern"`
	Replace   string   `yaml:"replace"`
	BlockedBy []string `yaml:"blockedBy,omitempty"`
}
