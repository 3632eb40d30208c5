package phonology

// Tracer observes the pipeline. Every stage accepts a nil Tracer, in
// which case tracing costs nothing. Tracers are purely observational:
// they must never influence generation output.
type Tracer interface {
	// Stage records a before/after snapshot boundary for a pipeline stage.
	Stage(name string, syllables []*Syllable)
	// Event records a structural event (repair, hiatus bridge, ...).
	Event(kind, detail string)
	// Decision records one grapheme selection.
	Decision(d GraphemeDecision)
}

// GraphemeDecision is a single spelling choice made by the orthography
// renderer.
type GraphemeDecision struct {
	Sound      string
	Position   Position
	Candidates []string
	Weights    []float64
	Roll       float64
	Selected   string
}

// StageSnapshot is a named copy of the word's syllables at a stage
// boundary.
type StageSnapshot struct {
	Name      string
	Syllables []*Syllable
}

// TraceEvent is a structural event recorded during generation.
type TraceEvent struct {
	Kind   string
	Detail string
}

// TraceLog is the assembled trace attached to a Word when tracing was
// requested.
type TraceLog struct {
	Stages    []StageSnapshot
	Events    []TraceEvent
	Decisions []GraphemeDecision
}
