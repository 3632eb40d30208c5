package phonology

// GraphemeCondition restricts when a grapheme may be chosen. Class names
// ("vowel", "lax-vowel", "voiced", ...) are expanded to concrete sound
// sets once at model-compile time.
type GraphemeCondition struct {
	// Before lists phoneme classes that must contain the phoneme to the
	// left for the grapheme to apply. Empty means no restriction.
	Before []string `yaml:"before,omitempty"`
	// After lists phoneme classes for the phoneme to the right.
	After []string `yaml:"after,omitempty"`
	// WordStart/WordEnd, when set, require the phoneme to sit at that
	// word boundary.
	WordStart bool `yaml:"wordStart,omitempty"`
	WordEnd   bool `yaml:"wordEnd,omitempty"`
}

// Grapheme is one way of spelling a phoneme. Many graphemes may map to
// the same sound; selection among them is frequency-weighted.
type Grapheme struct {
	Phoneme   string  `yaml:"phoneme"` // sound this grapheme spells
	Form      string  `yaml:"form"`
	Frequency float64 `yaml:"frequency"`

	// Cluster scales frequency when the phoneme is part of a multi-
	// consonant cluster. A zero (unset) value is treated as 1.
	Cluster float64 `yaml:"cluster,omitempty"`

	WordPosition WordPositionWeights `yaml:"wordPosition,omitempty"`
	Condition    *GraphemeCondition  `yaml:"condition,omitempty"`
}
