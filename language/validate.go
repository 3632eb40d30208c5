package language

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("language: invalid config")

// Validate checks internal consistency of the config. It is called by
// Compile; generation never revalidates.
func (c *Config) Validate() error {
	if len(c.Phonemes) == 0 {
		return fmt.Errorf("%w: no phonemes", ErrInvalidConfig)
	}

	sounds := make(map[string]bool, len(c.Phonemes))
	nucleusOK := false
	for _, p := range c.Phonemes {
		if p.Sound == "" {
			return fmt.Errorf("%w: phoneme with empty sound", ErrInvalidConfig)
		}
		if sounds[p.Sound] {
			return fmt.Errorf("%w: duplicate phoneme %q", ErrInvalidConfig, p.Sound)
		}
		sounds[p.Sound] = true
		if p.Weights.Nucleus > 0 {
			nucleusOK = true
		}
	}
	if !nucleusOK {
		return fmt.Errorf("%w: no phoneme allowed in nucleus position", ErrInvalidConfig)
	}

	for _, g := range c.Graphemes {
		if g.Form == "" {
			return fmt.Errorf("%w: grapheme for %q with empty form", ErrInvalidConfig, g.Phoneme)
		}
		if !sounds[g.Phoneme] {
			return fmt.Errorf("%w: grapheme %q references unknown phoneme %q", ErrInvalidConfig, g.Form, g.Phoneme)
		}
	}

	if len(c.Generation.SyllableCount) == 0 {
		return fmt.Errorf("%w: missing syllableCount weights", ErrInvalidConfig)
	}
	if len(c.Generation.SyllableCount) > MaxSyllables {
		return fmt.Errorf("%w: syllableCount weights exceed %d syllables", ErrInvalidConfig, MaxSyllables)
	}

	if err := c.validateProbabilities(); err != nil {
		return err
	}

	for _, s := range c.Constraints.FinalCodas {
		if !sounds[s] {
			return fmt.Errorf("%w: finalCodas references unknown phoneme %q", ErrInvalidConfig, s)
		}
	}
	for _, t := range c.Constraints.BannedTransitions {
		if !sounds[t.Coda] || !sounds[t.Onset] {
			return fmt.Errorf("%w: banned transition %q→%q references unknown phoneme", ErrInvalidConfig, t.Coda, t.Onset)
		}
		if t.Drop != "" && t.Drop != "coda" && t.Drop != "onset" {
			return fmt.Errorf("%w: banned transition drop side %q", ErrInvalidConfig, t.Drop)
		}
	}
	for _, b := range c.Morphology.Bridges {
		if !sounds[b.Sound] {
			return fmt.Errorf("%w: hiatus bridge references unknown phoneme %q", ErrInvalidConfig, b.Sound)
		}
	}

	switch c.Stress.Strategy {
	case "", "rules", "grammar":
	default:
		return fmt.Errorf("%w: unknown stress strategy %q", ErrInvalidConfig, c.Stress.Strategy)
	}

	return nil
}

// validateProbabilities checks every percentage field lies in [0,100].
func (c *Config) validateProbabilities() error {
	check := func(name string, v float64) error {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: probability %s = %v outside [0,100]", ErrInvalidConfig, name, v)
		}
		return nil
	}
	p := c.Generation.Probability
	pairs := []struct {
		name string
		v    float64
	}{
		{"wordInitialOnset", p.WordInitialOnset},
		{"onsetAfterCoda", p.OnsetAfterCoda},
		{"codaMonosyllable", p.CodaMonosyllable},
		{"codaFinal", p.CodaFinal},
		{"codaMid", p.CodaMid},
		{"finalS", p.FinalS},
		{"boundaryCodaDrop", p.BoundaryCodaDrop},
		{"stress.secondaryPercent", c.Stress.SecondaryPercent},
		{"stress.rhythmicPercent", c.Stress.RhythmicPercent},
		{"doubling.percent", c.Doubling.Percent},
		{"orthography.silentEPercent", c.Orthography.SilentEPercent},
		{"aspiration.wordInitial", c.Aspiration.WordInitial},
		{"aspiration.stressedOnset", c.Aspiration.StressedOnset},
		{"aspiration.postS", c.Aspiration.PostS},
		{"aspiration.finalCoda", c.Aspiration.FinalCoda},
	}
	for _, pr := range pairs {
		if err := check(pr.name, pr.v); err != nil {
			return err
		}
	}
	for _, r := range c.Spelling.Syllable {
		if err := check("spelling.syllable "+r.Pattern, r.Percent); err != nil {
			return err
		}
	}
	for _, r := range c.Spelling.Word {
		if err := check("spelling.word "+r.Pattern, r.Percent); err != nil {
			return err
		}
	}
	return nil
}
