package syllable

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

// maxRepairIterations bounds every repair loop so a pass that cannot
// satisfy its constraint stops instead of spinning.
const maxRepairIterations = 8

// RepairClusters removes banned coda→onset transitions at every
// syllable boundary, dropping phonemes from the configured side until
// the pair is legal or one side empties. The pass is idempotent.
func RepairClusters(m *language.Model, w *phonology.Word, tracer phonology.Tracer) {
	for i := 1; i < len(w.Syllables); i++ {
		prev, cur := w.Syllables[i-1], w.Syllables[i]
		for iter := 0; iter < maxRepairIterations; iter++ {
			if len(prev.Coda) == 0 || len(cur.Onset) == 0 {
				break
			}
			coda := prev.Coda[len(prev.Coda)-1]
			onset := cur.Onset[0]
			side, banned := m.BannedTransition(coda.Sound, onset.Sound)
			if !banned {
				break
			}
			if side == "onset" {
				cur.Onset = cur.Onset[1:]
			} else {
				prev.Coda = prev.Coda[:len(prev.Coda)-1]
			}
			if tracer != nil {
				tracer.Event("cluster-repair", coda.Sound+"→"+onset.Sound+" dropped "+side)
			}
		}
	}
	if tracer != nil {
		tracer.Stage("cluster-repair", w.Syllables)
	}
}

// RepairFinalCoda trims the last syllable's coda until it ends in a
// sound allowed word-finally.
func RepairFinalCoda(m *language.Model, w *phonology.Word, tracer phonology.Tracer) {
	if len(w.Syllables) == 0 {
		return
	}
	last := w.Syllables[len(w.Syllables)-1]
	for iter := 0; iter < maxRepairIterations && len(last.Coda) > 0; iter++ {
		p := last.Coda[len(last.Coda)-1]
		if m.FinalCodaAllowed(p.Sound) {
			break
		}
		last.Coda = last.Coda[:len(last.Coda)-1]
		if tracer != nil {
			tracer.Event("final-coda-repair", "dropped "+p.Sound)
		}
	}
}

// RepairShape runs the optional cluster-shape pass: over-long coda
// truncation, voicing agreement among coda obstruents, and homorganic
// place agreement for nasal+stop sequences.
func RepairShape(m *language.Model, w *phonology.Word, tracer phonology.Tracer) {
	cfg := m.Config.Constraints.Shape
	if !cfg.Enabled {
		return
	}
	for _, s := range w.Syllables {
		if cfg.MaxCoda > 0 && len(s.Coda) > cfg.MaxCoda {
			s.Coda = s.Coda[:cfg.MaxCoda]
		}
		if cfg.VoicingAgreement {
			agreeVoicing(m, s, tracer)
		}
		if cfg.HomorganicNasals {
			homorganicNasals(m, s, tracer)
		}
	}
	if tracer != nil {
		tracer.Stage("shape-repair", w.Syllables)
	}
}

// agreeVoicing makes every coda obstruent agree in voicing with the
// cluster's final obstruent, swapping phonemes for their voicing
// counterpart when one exists and dropping them otherwise. A swap or
// retained phoneme that would sit next to an identical one is dropped
// instead, so agreement never mints a geminate.
func agreeVoicing(m *language.Model, s *phonology.Syllable, tracer phonology.Tracer) {
	lastObstruent := -1
	for i := len(s.Coda) - 1; i >= 0; i-- {
		if obstruent(s.Coda[i]) {
			lastObstruent = i
			break
		}
	}
	if lastObstruent < 0 {
		return
	}
	want := s.Coda[lastObstruent].Voiced
	out := s.Coda[:0]
	for i, p := range s.Coda {
		q := p
		if i < lastObstruent && obstruent(p) && p.Voiced != want {
			q = voicingCounterpart(m, p, want)
			if q == nil {
				if tracer != nil {
					tracer.Event("voicing-agreement", "dropped "+p.Sound)
				}
				continue
			}
			if tracer != nil {
				tracer.Event("voicing-agreement", p.Sound+"→"+q.Sound)
			}
		}
		if len(out) > 0 && out[len(out)-1].Sound == q.Sound {
			if tracer != nil {
				tracer.Event("voicing-agreement", "dropped "+p.Sound+" against "+q.Sound)
			}
			continue
		}
		out = append(out, q)
	}
	s.Coda = out
}

// voicingCounterpart finds the phoneme with identical manner and place
// but the requested voicing.
func voicingCounterpart(m *language.Model, p *phonology.Phoneme, voiced bool) *phonology.Phoneme {
	for _, q := range m.Config.Phonemes {
		if q.Manner == p.Manner && q.Place == p.Place && q.Sibilant == p.Sibilant && q.Voiced == voiced {
			return q
		}
	}
	return nil
}

// homorganicNasals replaces a nasal directly before a stop with the
// nasal sharing the stop's place of articulation.
func homorganicNasals(m *language.Model, s *phonology.Syllable, tracer phonology.Tracer) {
	for i := 0; i+1 < len(s.Coda); i++ {
		nasal, stop := s.Coda[i], s.Coda[i+1]
		if nasal.Manner != phonology.MannerNasal || stop.Manner != phonology.MannerStop {
			continue
		}
		if nasal.Place == stop.Place {
			continue
		}
		for _, q := range m.Config.Phonemes {
			if q.Manner == phonology.MannerNasal && q.Place == stop.Place {
				if tracer != nil {
					tracer.Event("homorganic-nasal", nasal.Sound+"→"+q.Sound+" before "+stop.Sound)
				}
				s.Coda[i] = q
				break
			}
		}
	}
}

func obstruent(p *phonology.Phoneme) bool {
	switch p.Manner {
	case phonology.MannerStop, phonology.MannerFricative, phonology.MannerAffricate:
		return true
	}
	return false
}

// RepickStressedNucleus replaces a reduced vowel in a primary-stressed
// syllable with a full vowel; stressed schwa does not occur in the
// target languages.
func RepickStressedNucleus(r *rand.Rand, m *language.Model, w *phonology.Word, tracer phonology.Tracer) {
	for _, s := range w.Syllables {
		if s.Stress != phonology.Primary || len(s.Nucleus) != 1 || !s.Nucleus[0].Reduced {
			continue
		}
		var full []*phonology.Phoneme
		for _, p := range m.Pool(phonology.Nucleus) {
			if !p.Reduced {
				full = append(full, p)
			}
		}
		p, ok := wrand.Pick(r, full, func(p *phonology.Phoneme) float64 { return p.Weights.Nucleus })
		if !ok {
			continue
		}
		if tracer != nil {
			tracer.Event("stressed-nucleus", s.Nucleus[0].Sound+"→"+p.Sound)
		}
		s.Nucleus[0] = p
	}
}
