// Package phonology defines the shared vocabulary of the generation
// pipeline: phonemes, graphemes, syllables, words, and the sonority
// model derived from a language's articulation hierarchy.
package phonology

// Position identifies a slot within a syllable.
type Position int

const (
	Onset Position = iota
	Nucleus
	Coda
)

// String returns the conventional name of the position.
func (p Position) String() string {
	switch p {
	case Onset:
		return "onset"
	case Nucleus:
		return "nucleus"
	case Coda:
		return "coda"
	}
	return "unknown"
}

// Manner is the manner of articulation.
type Manner string

const (
	MannerStop      Manner = "stop"
	MannerAffricate Manner = "affricate"
	MannerFricative Manner = "fricative"
	MannerNasal     Manner = "nasal"
	MannerLiquid    Manner = "liquid"
	MannerGlide     Manner = "glide"
	MannerVowel     Manner = "vowel"
)

// Place is the place of articulation. Vowels use the vowel backness
// places (front/central/back).
type Place string

const (
	PlaceBilabial     Place = "bilabial"
	PlaceLabiodental  Place = "labiodental"
	PlaceDental       Place = "dental"
	PlaceAlveolar     Place = "alveolar"
	PlacePostAlveolar Place = "postalveolar"
	PlacePalatal      Place = "palatal"
	PlaceVelar        Place = "velar"
	PlaceGlottal      Place = "glottal"
	PlaceFront        Place = "front"
	PlaceCentral      Place = "central"
	PlaceBack         Place = "back"
)

// Coronal reports whether the place involves the tongue tip or blade.
func (p Place) Coronal() bool {
	switch p {
	case PlaceDental, PlaceAlveolar, PlacePostAlveolar:
		return true
	}
	return false
}

// PositionWeights holds per-slot selection weights. A zero weight means
// the phoneme is not allowed in that slot.
type PositionWeights struct {
	Onset   float64 `yaml:"onset,omitempty"`
	Nucleus float64 `yaml:"nucleus,omitempty"`
	Coda    float64 `yaml:"coda,omitempty"`
}

// At returns the weight for the given position.
func (w PositionWeights) At(pos Position) float64 {
	switch pos {
	case Onset:
		return w.Onset
	case Nucleus:
		return w.Nucleus
	case Coda:
		return w.Coda
	}
	return 0
}

// WordPositionWeights scale selection by where in the word the syllable
// sits. The zero value means "no preference" and scales by 1 everywhere.
// A populated struct with a zero field disallows that word position.
type WordPositionWeights struct {
	Start float64 `yaml:"start,omitempty"`
	Mid   float64 `yaml:"mid,omitempty"`
	End   float64 `yaml:"end,omitempty"`
}

// Modifier returns the applicable word-position factor. Start takes
// precedence over end for monosyllables.
func (w WordPositionWeights) Modifier(startOfWord, endOfWord bool) float64 {
	if w == (WordPositionWeights{}) {
		return 1
	}
	switch {
	case startOfWord:
		return w.Start
	case endOfWord:
		return w.End
	default:
		return w.Mid
	}
}

// Phoneme is one sound of the language. Phonemes are loaded once per
// language config and treated as immutable; pipeline code passes
// pointers into the inventory and compares them by identity.
type Phoneme struct {
	Sound    string `yaml:"sound"`
	Voiced   bool   `yaml:"voiced,omitempty"`
	Manner   Manner `yaml:"manner"`
	Place    Place  `yaml:"place"`
	Sibilant bool   `yaml:"sibilant,omitempty"`
	Tense    bool   `yaml:"tense,omitempty"`
	Reduced  bool   `yaml:"reduced,omitempty"`

	Weights      PositionWeights     `yaml:"weights"`
	WordPosition WordPositionWeights `yaml:"wordPosition,omitempty"`
}

// IsVowel reports whether the phoneme is a vowel.
func (p *Phoneme) IsVowel() bool { return p.Manner == MannerVowel }

// IsConsonant reports whether the phoneme is a consonant.
func (p *Phoneme) IsConsonant() bool { return p.Manner != MannerVowel }

// AllowedIn reports whether the phoneme may occupy the given slot.
func (p *Phoneme) AllowedIn(pos Position) bool { return p.Weights.At(pos) > 0 }
