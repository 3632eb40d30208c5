package language

import (
	"github.com/unglish/unglish-go/phonology"
)

// English returns the built-in English-like configuration. The returned
// Config is freshly allocated on every call so callers may tweak it
// before compiling.
func English() *Config {
	return &Config{
		Name:      "english",
		Phonemes:  englishPhonemes(),
		Graphemes: englishGraphemes(),

		Sonority: phonology.SonorityHierarchy{
			Manner: map[phonology.Manner]float64{
				phonology.MannerVowel:     24,
				phonology.MannerGlide:     20,
				phonology.MannerLiquid:    17,
				phonology.MannerNasal:     14,
				phonology.MannerFricative: 8,
				phonology.MannerAffricate: 6,
				phonology.MannerStop:      4,
			},
			Place: map[phonology.Place]float64{
				phonology.PlaceGlottal:      -1,
				phonology.PlaceVelar:        -0.5,
				phonology.PlacePalatal:      0.5,
				phonology.PlacePostAlveolar: 0.25,
			},
			VoicedBonus: 1,
			TenseBonus:  0.5,
		},

		InvalidClusters: InvalidClusterConfig{
			Onset: []ClusterPattern{
				{Pattern: `^h .`},
				{Pattern: `^(?:tʃ|dʒ) `},
				{Pattern: `^(?:t|d) l`},
				{Pattern: `^(?:p|b|f|v) w`},
				{Pattern: `^s (?:z|ʒ|v|ð|h)`},
				{Pattern: `(?:s|z|ʃ|ʒ) (?:s|z|ʃ|ʒ)`},
				{Pattern: `^(?:θ|ð) (?:f|s|ʃ)`},
				// /j/ clusters only after a plain consonant, as in
				// "cue" or "few"; rule out everything else.
				{Pattern: ` j$`, Unless: `^(?:p|b|t|d|k|g|m|n|f|v|h) j$`},
			},
			Coda: []ClusterPattern{
				{Pattern: `(?:tʃ|dʒ) .`},
				{Pattern: `ʒ .`},
				{Pattern: `(?:v|ð|z|ʒ) (?:p|t|k|s)`},
				{Pattern: `(?:p|b) (?:b|p|g)`},
			},
		},

		Generation: GenerationWeights{
			SyllableCount: []float64{12, 38, 30, 14, 5, 1},
			Probability: ProbabilityWeights{
				WordInitialOnset: 85,
				OnsetAfterCoda:   65,
				CodaMonosyllable: 95,
				CodaFinal:        70,
				CodaMid:          35,
				FinalS:           4,
				BoundaryCodaDrop: 40,
			},
			OnsetLength: OnsetLengthWeights{
				// Index is cluster length; presence has already been
				// decided, so length 0 never carries weight.
				Monosyllabic: []float64{0, 58, 32, 10},
				AfterOpen:    []float64{0, 82, 16, 2},
				Default:      []float64{0, 74, 22, 4},
			},
			CodaLength: CodaLengthWeights{
				Monosyllabic: map[int][]float64{
					0: {0, 55, 35, 10},
					1: {0, 60, 32, 8},
					2: {0, 72, 24, 4},
					3: {0, 85, 14, 1},
				},
				Zero:    30,
				NonZero: []float64{52, 15, 3},
			},
		},

		Stress: StressConfig{
			Strategy: "grammar",
			HeavyPenult: map[int][]float64{
				2: {3, 1},
				3: {1, 3, 0.5},
				4: {1, 1, 3, 0.5},
			},
			LightPenult: map[int][]float64{
				2: {2, 1},
				3: {3, 1, 0.5},
				4: {1, 3, 1, 0.5},
			},
			SecondaryPercent: 30,
			RhythmicPercent:  25,
			Grammar: []ConstraintWeight{
				{Name: "WSP", Weight: 3, Noise: 1},
				{Name: "ALIGN-LEFT", Weight: 2, Noise: 0.8},
				{Name: "ALIGN-RIGHT", Weight: 1, Noise: 0.6},
				{Name: "NONFINALITY", Weight: 2.5, Noise: 1},
				{Name: "NONINITIAL", Weight: 0.5, Noise: 0.4},
			},
		},

		Constraints: ClusterConstraints{
			BannedTransitions: []Transition{
				{Coda: "t", Onset: "t"},
				{Coda: "d", Onset: "d"},
				{Coda: "s", Onset: "s"},
				{Coda: "z", Onset: "s"},
				{Coda: "m", Onset: "ŋ"},
				{Coda: "dʒ", Onset: "tʃ", Drop: "onset"},
			},
			FinalCodas: []string{
				"p", "b", "t", "d", "k", "g", "tʃ", "dʒ",
				"f", "v", "θ", "ð", "s", "z", "ʃ",
				"m", "n", "ŋ", "l", "r",
			},
			Shape: ShapeRepair{
				Enabled:          true,
				MaxCoda:          3,
				VoicingAgreement: true,
				HomorganicNasals: true,
			},
		},

		Doubling: DoublingConfig{
			Enabled:          true,
			Percent:          45,
			UnstressedFactor: 0.5,
			NeverDouble:      []string{"h", "j", "q", "v", "w", "x", "y"},
			FinalOnly:        []string{"f", "z"},
			MaxPerWord:       2,
		},

		Spelling: SpellingConfig{
			Syllable: []SpellingRule{
				{Pattern: `ks$`, Replace: `x`, Percent: 30},
				{Pattern: `^hw`, Replace: `wh`, Percent: 60},
				{Pattern: `kw`, Replace: `qu`, Percent: 70},
			},
			Word: []SpellingRule{
				{Pattern: `([^aeiou])i$`, Replace: `${1}y`, Percent: 60},
				{Pattern: `u$`, Exclude: `[aeo]u$`, Replace: `ue`, Percent: 40},
				{Pattern: `j$`, Replace: `ge`, Percent: 85},
				{Pattern: `v$`, Replace: `ve`, Percent: 90},
			},
		},

		Orthography: OrthographyConfig{
			MaxConsonantRun: 4,
			MaxVowelRun:     3,
			HardGFix:        true,
			SilentEPercent:  35,
		},

		Morphology: englishMorphology(),

		Aspiration: AspirationConfig{
			WordInitial:   85,
			StressedOnset: 70,
			PostS:         3,
			FinalCoda:     25,
		},
	}
}

func englishPhonemes() []*phonology.Phoneme {
	w := func(onset, nucleus, coda float64) phonology.PositionWeights {
		return phonology.PositionWeights{Onset: onset, Nucleus: nucleus, Coda: coda}
	}
	return []*phonology.Phoneme{
		// Stops.
		{Sound: "p", Manner: phonology.MannerStop, Place: phonology.PlaceBilabial, Weights: w(1, 0, 0.6)},
		{Sound: "b", Voiced: true, Manner: phonology.MannerStop, Place: phonology.PlaceBilabial, Weights: w(0.9, 0, 0.3)},
		{Sound: "t", Manner: phonology.MannerStop, Place: phonology.PlaceAlveolar, Weights: w(1, 0, 1)},
		{Sound: "d", Voiced: true, Manner: phonology.MannerStop, Place: phonology.PlaceAlveolar, Weights: w(0.9, 0, 0.7)},
		{Sound: "k", Manner: phonology.MannerStop, Place: phonology.PlaceVelar, Weights: w(1, 0, 0.8)},
		{Sound: "g", Voiced: true, Manner: phonology.MannerStop, Place: phonology.PlaceVelar, Weights: w(0.7, 0, 0.3)},

		// Affricates.
		{Sound: "tʃ", Manner: phonology.MannerAffricate, Place: phonology.PlacePostAlveolar, Sibilant: true, Weights: w(0.4, 0, 0.3)},
		{Sound: "dʒ", Voiced: true, Manner: phonology.MannerAffricate, Place: phonology.PlacePostAlveolar, Sibilant: true, Weights: w(0.35, 0, 0.2)},

		// Fricatives.
		{Sound: "f", Manner: phonology.MannerFricative, Place: phonology.PlaceLabiodental, Weights: w(0.8, 0, 0.4)},
		{Sound: "v", Voiced: true, Manner: phonology.MannerFricative, Place: phonology.PlaceLabiodental, Weights: w(0.5, 0, 0.3)},
		{Sound: "θ", Manner: phonology.MannerFricative, Place: phonology.PlaceDental, Weights: w(0.25, 0, 0.2)},
		{Sound: "ð", Voiced: true, Manner: phonology.MannerFricative, Place: phonology.PlaceDental, Weights: w(0.3, 0, 0.1),
			WordPosition: phonology.WordPositionWeights{Start: 1, Mid: 0.3, End: 0.1}},
		{Sound: "s", Manner: phonology.MannerFricative, Place: phonology.PlaceAlveolar, Sibilant: true, Weights: w(1, 0, 1)},
		{Sound: "z", Voiced: true, Manner: phonology.MannerFricative, Place: phonology.PlaceAlveolar, Sibilant: true, Weights: w(0.3, 0, 0.7)},
		{Sound: "ʃ", Manner: phonology.MannerFricative, Place: phonology.PlacePostAlveolar, Sibilant: true, Weights: w(0.45, 0, 0.3)},
		{Sound: "ʒ", Voiced: true, Manner: phonology.MannerFricative, Place: phonology.PlacePostAlveolar, Sibilant: true, Weights: w(0.05, 0, 0.05),
			WordPosition: phonology.WordPositionWeights{Start: 0, Mid: 1, End: 0.3}},
		{Sound: "h", Manner: phonology.MannerFricative, Place: phonology.PlaceGlottal, Weights: w(0.6, 0, 0),
			WordPosition: phonology.WordPositionWeights{Start: 1, Mid: 0.5, End: 0}},

		// Nasals.
		{Sound: "m", Voiced: true, Manner: phonology.MannerNasal, Place: phonology.PlaceBilabial, Weights: w(0.9, 0, 0.8)},
		{Sound: "n", Voiced: true, Manner: phonology.MannerNasal, Place: phonology.PlaceAlveolar, Weights: w(0.9, 0, 1)},
		{Sound: "ŋ", Voiced: true, Manner: phonology.MannerNasal, Place: phonology.PlaceVelar, Weights: w(0, 0, 0.5),
			WordPosition: phonology.WordPositionWeights{Start: 0, Mid: 0.5, End: 1}},

		// Liquids and glides.
		{Sound: "l", Voiced: true, Manner: phonology.MannerLiquid, Place: phonology.PlaceAlveolar, Weights: w(0.9, 0, 0.9)},
		{Sound: "r", Voiced: true, Manner: phonology.MannerLiquid, Place: phonology.PlaceAlveolar, Weights: w(1, 0, 0.8)},
		{Sound: "w", Voiced: true, Manner: phonology.MannerGlide, Place: phonology.PlaceBilabial, Weights: w(0.7, 0, 0)},
		{Sound: "j", Voiced: true, Manner: phonology.MannerGlide, Place: phonology.PlacePalatal, Weights: w(0.4, 0, 0)},

		// Vowels. Tense vowels can carry a word-final open syllable;
		// lax vowels prefer closed ones, which the coda probabilities
		// approximate globally rather than per phoneme.
		{Sound: "i", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront, Tense: true, Weights: w(0, 1, 0)},
		{Sound: "ɪ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront, Weights: w(0, 1, 0)},
		{Sound: "e", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront, Tense: true, Weights: w(0, 0.8, 0)},
		{Sound: "ɛ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront, Weights: w(0, 0.9, 0)},
		{Sound: "æ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront, Weights: w(0, 0.9, 0)},
		{Sound: "ɑ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Tense: true, Weights: w(0, 0.7, 0)},
		{Sound: "ɔ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Weights: w(0, 0.5, 0)},
		{Sound: "o", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Tense: true, Weights: w(0, 0.8, 0)},
		{Sound: "ʊ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Weights: w(0, 0.4, 0),
			WordPosition: phonology.WordPositionWeights{Start: 0.2, Mid: 1, End: 0.2}},
		{Sound: "u", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Tense: true, Weights: w(0, 0.7, 0)},
		{Sound: "ʌ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceCentral, Weights: w(0, 0.7, 0)},
		{Sound: "ə", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceCentral, Reduced: true, Weights: w(0, 0.9, 0),
			WordPosition: phonology.WordPositionWeights{Start: 0.3, Mid: 1, End: 0.8}},
		{Sound: "ɝ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceCentral, Tense: true, Weights: w(0, 0.4, 0)},
		{Sound: "aɪ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront, Tense: true, Weights: w(0, 0.6, 0)},
		{Sound: "aʊ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Tense: true, Weights: w(0, 0.3, 0)},
		{Sound: "ɔɪ", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceBack, Tense: true, Weights: w(0, 0.15, 0)},
	}
}

func englishMorphology() MorphologyConfig {
	f := false
	t := true

	// Shared spelling adjustments at a vowel-initial suffix boundary:
	// drop a silent e, else double a final consonant after a short
	// vowel ("bat" + "ed" -> "batted").
	vowelBoundary := []BoundaryTransform{
		{Name: "drop-e", Pattern: `e$`, Replace: ``},
		{Name: "double", Pattern: `([aeiou])([bdgmnprt])$`, Replace: `${1}${2}${2}`, BlockedBy: []string{"drop-e"}},
	}
	// y → i before a consonant-initial suffix ("happy" + "ness" ->
	// "happiness").
	yToI := []BoundaryTransform{
		{Name: "y-to-i", Pattern: `([^aeiou])y$`, Replace: `${1}i`},
	}

	return MorphologyConfig{
		Templates: map[Mode]TemplateWeights{
			ModeText:    {Bare: 55, Prefixed: 12, Suffixed: 25, Both: 8},
			ModeLexicon: {Bare: 40, Prefixed: 15, Suffixed: 32, Both: 13},
		},
		Prefixes: []*Affix{
			{
				Written:   "un",
				Syllables: []SyllableTemplate{{Nucleus: []string{"ʌ"}, Coda: []string{"n"}}},
				Frequency: 25,
			},
			{
				Written:      "re",
				Syllables:    []SyllableTemplate{{Onset: []string{"r"}, Nucleus: []string{"i"}}},
				Frequency:    20,
				StressEffect: phonology.StressSecondary,
			},
			{
				Written:   "de",
				Syllables: []SyllableTemplate{{Onset: []string{"d"}, Nucleus: []string{"i"}}},
				Frequency: 10,
			},
			{
				Written:   "con",
				Syllables: []SyllableTemplate{{Onset: []string{"k"}, Nucleus: []string{"ɑ"}, Coda: []string{"n"}}},
				Frequency: 12,
				Variants: []AllomorphVariant{
					{
						Condition: AllomorphCondition{Place: []phonology.Place{phonology.PlaceBilabial}},
						Syllables: []SyllableTemplate{{Onset: []string{"k"}, Nucleus: []string{"ɑ"}, Coda: []string{"m"}}},
						Written:   "com",
					},
				},
			},
			{
				Written:   "pre",
				Syllables: []SyllableTemplate{{Onset: []string{"p", "r"}, Nucleus: []string{"i"}}},
				Frequency: 8,
			},
		},
		Suffixes: []*Affix{
			{
				Written:    "ing",
				Syllables:  []SyllableTemplate{{Nucleus: []string{"ɪ"}, Coda: []string{"ŋ"}}},
				Frequency:  30,
				Transforms: vowelBoundary,
			},
			{
				Written:   "ed",
				Phonemes:  []string{"d"},
				Frequency: 20,
				Variants: []AllomorphVariant{
					// Syllabic after an alveolar stop ("batted").
					{
						Condition: AllomorphCondition{Sounds: []string{"t", "d"}},
						Syllables: []SyllableTemplate{{Nucleus: []string{"ɪ"}, Coda: []string{"d"}}},
					},
					{
						Condition: AllomorphCondition{Voiced: &f},
						Phonemes:  []string{"t"},
					},
				},
				Transforms: vowelBoundary,
			},
			{
				Written:   "s",
				Phonemes:  []string{"z"},
				Frequency: 25,
				Variants: []AllomorphVariant{
					// Syllabic after a sibilant ("buses").
					{
						Condition: AllomorphCondition{Sibilant: &t},
						Syllables: []SyllableTemplate{{Nucleus: []string{"ə"}, Coda: []string{"z"}}},
						Written:   "es",
					},
					{
						Condition: AllomorphCondition{Voiced: &f},
						Phonemes:  []string{"s"},
					},
				},
			},
			{
				Written:    "er",
				Syllables:  []SyllableTemplate{{Nucleus: []string{"ə"}, Coda: []string{"r"}}},
				Frequency:  15,
				Transforms: vowelBoundary,
			},
			{
				Written:    "ly",
				Syllables:  []SyllableTemplate{{Onset: []string{"l"}, Nucleus: []string{"i"}}},
				Frequency:  10,
				Transforms: yToI,
			},
			{
				Written:    "ness",
				Syllables:  []SyllableTemplate{{Onset: []string{"n"}, Nucleus: []string{"ə"}, Coda: []string{"s"}}},
				Frequency:  8,
				Transforms: yToI,
			},
			{
				Written: "able",
				Syllables: []SyllableTemplate{
					{Nucleus: []string{"e"}},
					{Onset: []string{"b"}, Nucleus: []string{"ə"}, Coda: []string{"l"}},
				},
				Frequency:  5,
				Transforms: vowelBoundary[:1],
			},
			{
				Written:      "tion",
				Syllables:    []SyllableTemplate{{Onset: []string{"ʃ"}, Nucleus: []string{"ə"}, Coda: []string{"n"}}},
				Frequency:    6,
				StressEffect: phonology.StressAttractPreceding,
			},
		},
		Bridges: []Bridge{
			{Sound: "n", Weight: 3},
			{Sound: "r", Weight: 2},
			{Sound: "t", Weight: 1},
		},
	}
}
