package phonology

// SonorityHierarchy holds the per-language constants a sonority table is
// derived from: a base value per manner, an adjustment per place, and
// bonuses for voicing and vowel tenseness.
type SonorityHierarchy struct {
	Manner       map[Manner]float64 `yaml:"manner"`
	Place        map[Place]float64  `yaml:"place,omitempty"`
	VoicedBonus  float64            `yaml:"voicedBonus,omitempty"`
	TenseBonus   float64            `yaml:"tenseBonus,omitempty"`
}

// Level computes the sonority score for a single phoneme.
func (h SonorityHierarchy) Level(p *Phoneme) float64 {
	level := h.Manner[p.Manner] + h.Place[p.Place]
	if p.Voiced {
		level += h.VoicedBonus
	}
	if p.Tense {
		level += h.TenseBonus
	}
	return level
}

// SonorityTable maps phoneme sounds to precomputed sonority scores.
// It is derived once per language config.
type SonorityTable map[string]float64

// BuildSonorityTable precomputes sonority for every phoneme in the
// inventory.
func BuildSonorityTable(phonemes []*Phoneme, h SonorityHierarchy) SonorityTable {
	t := make(SonorityTable, len(phonemes))
	for _, p := range phonemes {
		t[p.Sound] = h.Level(p)
	}
	return t
}

// Of returns the sonority of p, or 0 when p is not in the table.
func (t SonorityTable) Of(p *Phoneme) float64 {
	return t[p.Sound]
}
