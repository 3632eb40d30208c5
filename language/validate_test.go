package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unglish/unglish-go/phonology"
)

func minimalConfig() *Config {
	return &Config{
		Name: "test",
		Phonemes: []*phonology.Phoneme{
			{Sound: "t", Manner: phonology.MannerStop, Place: phonology.PlaceAlveolar,
				Weights: phonology.PositionWeights{Onset: 1, Coda: 1}},
			{Sound: "a", Voiced: true, Manner: phonology.MannerVowel, Place: phonology.PlaceFront,
				Weights: phonology.PositionWeights{Nucleus: 1}},
		},
		Graphemes: []*phonology.Grapheme{
			{Phoneme: "t", Form: "t", Frequency: 1},
			{Phoneme: "a", Form: "a", Frequency: 1},
		},
		Generation: GenerationWeights{
			SyllableCount: []float64{1, 1},
		},
	}
}

func TestValidateMinimal(t *testing.T) {
	require.NoError(t, minimalConfig().Validate())
}

func TestValidateEnglish(t *testing.T) {
	require.NoError(t, English().Validate())
}

func TestValidateNoPhonemes(t *testing.T) {
	cfg := minimalConfig()
	cfg.Phonemes = nil
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateDuplicateSound(t *testing.T) {
	cfg := minimalConfig()
	cfg.Phonemes = append(cfg.Phonemes, &phonology.Phoneme{
		Sound: "t", Manner: phonology.MannerStop,
		Weights: phonology.PositionWeights{Onset: 1},
	})
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateEmptyNucleusPool(t *testing.T) {
	cfg := minimalConfig()
	cfg.Phonemes[1].Weights = phonology.PositionWeights{Onset: 1}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateUnknownGraphemePhoneme(t *testing.T) {
	cfg := minimalConfig()
	cfg.Graphemes = append(cfg.Graphemes, &phonology.Grapheme{Phoneme: "zz", Form: "z", Frequency: 1})
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateMissingSyllableCount(t *testing.T) {
	cfg := minimalConfig()
	cfg.Generation.SyllableCount = nil
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateTooManySyllables(t *testing.T) {
	cfg := minimalConfig()
	cfg.Generation.SyllableCount = make([]float64, MaxSyllables+1)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateProbabilityRange(t *testing.T) {
	cfg := minimalConfig()
	cfg.Generation.Probability.CodaFinal = 130
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = minimalConfig()
	cfg.Aspiration.PostS = -2
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = minimalConfig()
	cfg.Spelling.Word = []SpellingRule{{Pattern: "x", Replace: "y", Percent: 101}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateUnknownFinalCoda(t *testing.T) {
	cfg := minimalConfig()
	cfg.Constraints.FinalCodas = []string{"zz"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateBannedTransition(t *testing.T) {
	cfg := minimalConfig()
	cfg.Constraints.BannedTransitions = []Transition{{Coda: "t", Onset: "zz"}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = minimalConfig()
	cfg.Constraints.BannedTransitions = []Transition{{Coda: "t", Onset: "t", Drop: "sideways"}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateUnknownBridge(t *testing.T) {
	cfg := minimalConfig()
	cfg.Morphology.Bridges = []Bridge{{Sound: "zz", Weight: 1}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateStressStrategy(t *testing.T) {
	cfg := minimalConfig()
	cfg.Stress.Strategy = "coin-flip"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	for _, s := range []string{"", "rules", "grammar"} {
		cfg := minimalConfig()
		cfg.Stress.Strategy = s
		assert.NoError(t, cfg.Validate(), "strategy %q", s)
	}
}

func TestCompileRejectsBadPattern(t *testing.T) {
	cfg := minimalConfig()
	cfg.InvalidClusters.Onset = []ClusterPattern{{Pattern: "("}}
	_, err := Compile(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
