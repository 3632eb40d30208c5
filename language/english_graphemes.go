package language

import (
	"github.com/unglish/unglish-go/phonology"
)

// englishGraphemes is the English spelling table. Frequencies are
// relative within one sound; conditions reference the compiled phoneme
// classes (or literal sounds) and word-position weights gate structural
// placement.
func englishGraphemes() []*phonology.Grapheme {
	wp := func(start, mid, end float64) phonology.WordPositionWeights {
		return phonology.WordPositionWeights{Start: start, Mid: mid, End: end}
	}
	return []*phonology.Grapheme{
		// Stops.
		{Phoneme: "p", Form: "p", Frequency: 1},
		{Phoneme: "b", Form: "b", Frequency: 1},
		{Phoneme: "t", Form: "t", Frequency: 1},
		{Phoneme: "d", Form: "d", Frequency: 1},
		{Phoneme: "k", Form: "c", Frequency: 1,
			Condition: &phonology.GraphemeCondition{After: []string{"back-vowel", "central-vowel", "consonant"}}},
		{Phoneme: "k", Form: "k", Frequency: 0.8},
		{Phoneme: "k", Form: "ck", Frequency: 0.9, WordPosition: wp(0, 0.4, 1),
			Condition: &phonology.GraphemeCondition{Before: []string{"lax-vowel"}}},
		{Phoneme: "k", Form: "ch", Frequency: 0.05},
		{Phoneme: "g", Form: "g", Frequency: 1},
		{Phoneme: "g", Form: "gh", Frequency: 0.04, WordPosition: wp(1, 0, 0)},

		// Affricates.
		{Phoneme: "tʃ", Form: "ch", Frequency: 1},
		{Phoneme: "tʃ", Form: "tch", Frequency: 0.5, WordPosition: wp(0, 0.5, 1),
			Condition: &phonology.GraphemeCondition{Before: []string{"lax-vowel"}}},
		{Phoneme: "dʒ", Form: "j", Frequency: 1, WordPosition: wp(1, 0.5, 0)},
		{Phoneme: "dʒ", Form: "g", Frequency: 0.5,
			Condition: &phonology.GraphemeCondition{After: []string{"front-vowel"}}},
		{Phoneme: "dʒ", Form: "dge", Frequency: 0.6, WordPosition: wp(0, 0.2, 1),
			Condition: &phonology.GraphemeCondition{Before: []string{"lax-vowel"}}},

		// Fricatives.
		{Phoneme: "f", Form: "f", Frequency: 1},
		{Phoneme: "f", Form: "ph", Frequency: 0.15},
		{Phoneme: "f", Form: "gh", Frequency: 0.03, WordPosition: wp(0, 0, 1)},
		{Phoneme: "v", Form: "v", Frequency: 1},
		{Phoneme: "v", Form: "ve", Frequency: 0.4, WordPosition: wp(0, 0, 1)},
		{Phoneme: "θ", Form: "th", Frequency: 1},
		{Phoneme: "ð", Form: "th", Frequency: 1},
		{Phoneme: "s", Form: "s", Frequency: 1},
		{Phoneme: "s", Form: "c", Frequency: 0.25,
			Condition: &phonology.GraphemeCondition{After: []string{"front-vowel"}}},
		{Phoneme: "s", Form: "ss", Frequency: 0.3, WordPosition: wp(0, 0.5, 1),
			Condition: &phonology.GraphemeCondition{Before: []string{"lax-vowel"}}},
		{Phoneme: "s", Form: "ce", Frequency: 0.15, WordPosition: wp(0, 0, 1)},
		{Phoneme: "z", Form: "s", Frequency: 1, WordPosition: wp(0, 1, 1),
			Condition: &phonology.GraphemeCondition{Before: []string{"vowel"}}},
		{Phoneme: "z", Form: "z", Frequency: 0.6},
		{Phoneme: "ʃ", Form: "sh", Frequency: 1},
		{Phoneme: "ʃ", Form: "ti", Frequency: 0.3, WordPosition: wp(0, 1, 0)},
		{Phoneme: "ʃ", Form: "ci", Frequency: 0.1, WordPosition: wp(0, 1, 0)},
		{Phoneme: "ʒ", Form: "s", Frequency: 1, WordPosition: wp(0, 1, 0),
			Condition: &phonology.GraphemeCondition{Before: []string{"vowel"}, After: []string{"vowel"}}},
		{Phoneme: "ʒ", Form: "ge", Frequency: 0.4, WordPosition: wp(0, 0, 1)},
		{Phoneme: "h", Form: "h", Frequency: 1},
		{Phoneme: "h", Form: "wh", Frequency: 0.05, WordPosition: wp(1, 0, 0),
			Condition: &phonology.GraphemeCondition{After: []string{"back-vowel"}}},

		// Nasals.
		{Phoneme: "m", Form: "m", Frequency: 1},
		{Phoneme: "m", Form: "mb", Frequency: 0.05, WordPosition: wp(0, 0, 1)},
		{Phoneme: "n", Form: "n", Frequency: 1},
		{Phoneme: "n", Form: "kn", Frequency: 0.05, WordPosition: wp(1, 0, 0)},
		{Phoneme: "n", Form: "gn", Frequency: 0.02, WordPosition: wp(1, 0, 0)},
		{Phoneme: "ŋ", Form: "ng", Frequency: 1, WordPosition: wp(0, 0.6, 1)},
		{Phoneme: "ŋ", Form: "n", Frequency: 0.8,
			Condition: &phonology.GraphemeCondition{After: []string{"k", "g"}}},

		// Liquids and glides.
		{Phoneme: "l", Form: "l", Frequency: 1},
		{Phoneme: "r", Form: "r", Frequency: 1},
		{Phoneme: "r", Form: "wr", Frequency: 0.04, WordPosition: wp(1, 0, 0)},
		{Phoneme: "r", Form: "rh", Frequency: 0.02, WordPosition: wp(1, 0, 0)},
		{Phoneme: "w", Form: "w", Frequency: 1},
		{Phoneme: "w", Form: "u", Frequency: 0.3,
			Condition: &phonology.GraphemeCondition{Before: []string{"k", "g"}}},
		{Phoneme: "j", Form: "y", Frequency: 1},

		// Front vowels.
		{Phoneme: "i", Form: "e", Frequency: 1},
		{Phoneme: "i", Form: "ee", Frequency: 0.8},
		{Phoneme: "i", Form: "ea", Frequency: 0.7},
		{Phoneme: "i", Form: "ie", Frequency: 0.2, WordPosition: wp(0, 0.5, 0)},
		{Phoneme: "i", Form: "y", Frequency: 0.5, WordPosition: wp(0, 0.2, 1)},
		{Phoneme: "i", Form: "ey", Frequency: 0.15, WordPosition: wp(0, 0, 1)},
		{Phoneme: "ɪ", Form: "i", Frequency: 1},
		{Phoneme: "ɪ", Form: "y", Frequency: 0.25, WordPosition: wp(0, 1, 0)},
		{Phoneme: "e", Form: "a", Frequency: 1},
		{Phoneme: "e", Form: "ai", Frequency: 0.5, WordPosition: wp(0.3, 1, 0)},
		{Phoneme: "e", Form: "ay", Frequency: 0.5, WordPosition: wp(0, 0, 1)},
		{Phoneme: "e", Form: "ei", Frequency: 0.1, WordPosition: wp(0.2, 1, 0)},
		{Phoneme: "ɛ", Form: "e", Frequency: 1},
		{Phoneme: "ɛ", Form: "ea", Frequency: 0.15, WordPosition: wp(0, 1, 0)},
		{Phoneme: "æ", Form: "a", Frequency: 1},

		// Back and central vowels.
		{Phoneme: "ɑ", Form: "a", Frequency: 1},
		{Phoneme: "ɑ", Form: "o", Frequency: 0.8},
		{Phoneme: "ɔ", Form: "o", Frequency: 1},
		{Phoneme: "ɔ", Form: "au", Frequency: 0.4, WordPosition: wp(0.5, 1, 0)},
		{Phoneme: "ɔ", Form: "aw", Frequency: 0.35, WordPosition: wp(0, 0.3, 1)},
		{Phoneme: "o", Form: "o", Frequency: 1},
		{Phoneme: "o", Form: "oa", Frequency: 0.4, WordPosition: wp(0, 1, 0)},
		{Phoneme: "o", Form: "ow", Frequency: 0.5, WordPosition: wp(0, 0, 1)},
		{Phoneme: "o", Form: "oe", Frequency: 0.1, WordPosition: wp(0, 0, 1)},
		{Phoneme: "ʊ", Form: "u", Frequency: 1},
		{Phoneme: "ʊ", Form: "oo", Frequency: 0.8},
		{Phoneme: "ʊ", Form: "ou", Frequency: 0.2, WordPosition: wp(0, 1, 0)},
		{Phoneme: "u", Form: "oo", Frequency: 1},
		{Phoneme: "u", Form: "u", Frequency: 0.6},
		{Phoneme: "u", Form: "ew", Frequency: 0.4, WordPosition: wp(0, 0, 1)},
		{Phoneme: "u", Form: "ue", Frequency: 0.3, WordPosition: wp(0, 0, 1)},
		{Phoneme: "u", Form: "ou", Frequency: 0.15, WordPosition: wp(0, 1, 0)},
		{Phoneme: "ʌ", Form: "u", Frequency: 1},
		{Phoneme: "ʌ", Form: "o", Frequency: 0.3},
		{Phoneme: "ʌ", Form: "ou", Frequency: 0.1, WordPosition: wp(0, 1, 0)},
		{Phoneme: "ə", Form: "a", Frequency: 0.8},
		{Phoneme: "ə", Form: "e", Frequency: 0.7},
		{Phoneme: "ə", Form: "o", Frequency: 0.4},
		{Phoneme: "ə", Form: "u", Frequency: 0.3},
		{Phoneme: "ə", Form: "i", Frequency: 0.2},
		{Phoneme: "ɝ", Form: "er", Frequency: 1},
		{Phoneme: "ɝ", Form: "ur", Frequency: 0.6},
		{Phoneme: "ɝ", Form: "ir", Frequency: 0.5},
		{Phoneme: "ɝ", Form: "ear", Frequency: 0.1, WordPosition: wp(0, 1, 0)},

		// Diphthongs.
		{Phoneme: "aɪ", Form: "i", Frequency: 1},
		{Phoneme: "aɪ", Form: "igh", Frequency: 0.3, WordPosition: wp(0, 0.6, 1)},
		{Phoneme: "aɪ", Form: "y", Frequency: 0.6, WordPosition: wp(0, 0, 1)},
		{Phoneme: "aɪ", Form: "ie", Frequency: 0.3, WordPosition: wp(0, 0, 1)},
		{Phoneme: "aʊ", Form: "ou", Frequency: 1},
		{Phoneme: "aʊ", Form: "ow", Frequency: 0.7, WordPosition: wp(0, 0.3, 1)},
		{Phoneme: "ɔɪ", Form: "oi", Frequency: 1, WordPosition: wp(1, 1, 0)},
		{Phoneme: "ɔɪ", Form: "oy", Frequency: 0.8, WordPosition: wp(0, 0.2, 1)},
	}
}
