// Package trace records pipeline activity during word generation.
package trace

import "github.com/unglish/unglish-go/phonology"

// Recorder implements phonology.Tracer by accumulating snapshots,
// events, and grapheme decisions. Snapshots are deep copies so later
// stages cannot mutate them.
type Recorder struct {
	log phonology.TraceLog
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Stage(name string, syllables []*phonology.Syllable) {
	cp := make([]*phonology.Syllable, len(syllables))
	for i, s := range syllables {
		cp[i] = s.Clone()
	}
	r.log.Stages = append(r.log.Stages, phonology.StageSnapshot{Name: name, Syllables: cp})
}

func (r *Recorder) Event(kind, detail string) {
	r.log.Events = append(r.log.Events, phonology.TraceEvent{Kind: kind, Detail: detail})
}

func (r *Recorder) Decision(d phonology.GraphemeDecision) {
	r.log.Decisions = append(r.log.Decisions, d)
}

// Log returns the accumulated trace.
func (r *Recorder) Log() *phonology.TraceLog {
	return &r.log
}
