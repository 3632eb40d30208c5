// Package unglish generates pronounceable, orthographically plausible
// pseudo-words for a configurable language model. The shipped English
// configuration approximates English phonotactics; the pipeline is
// fully deterministic under a seeded random source.
package unglish

import (
	"math/rand"
	"time"

	"github.com/unglish/unglish-go/ipa"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/morphology"
	"github.com/unglish/unglish-go/orthography"
	"github.com/unglish/unglish-go/phonology"
	"github.com/unglish/unglish-go/stress"
	"github.com/unglish/unglish-go/syllable"
	"github.com/unglish/unglish-go/trace"
)

// Generator produces words for one compiled language. It holds no
// mutable state of its own and is safe for concurrent use as long as
// each call supplies its own random source.
type Generator struct {
	model *language.Model
}

// NewGenerator validates cfg, precomputes the language model, and
// returns a ready generator. All configuration errors surface here;
// generation itself never fails.
func NewGenerator(cfg *language.Config) (*Generator, error) {
	m, err := language.Compile(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{model: m}, nil
}

// NewEnglish returns a generator for the built-in English
// configuration.
func NewEnglish() *Generator {
	g, err := NewGenerator(language.English())
	if err != nil {
		panic("unglish: built-in english config invalid: " + err.Error())
	}
	return g
}

// Model exposes the compiled language model, mainly for analysis
// tooling.
func (g *Generator) Model() *language.Model { return g.model }

// GenerateOptions parameterize one generation call. The zero value asks
// for a single text-mode word from a time-seeded source.
type GenerateOptions struct {
	// Rand supplies the random stream. When nil, Seed is used; a zero
	// Seed falls back to the current time.
	Rand *rand.Rand
	Seed int64

	// SyllableCount forces the root length before morphology. Zero
	// draws from the language's syllable-count table.
	SyllableCount int

	// Mode selects the template weight table; empty means text mode.
	Mode language.Mode

	// NoMorphology generates a bare root regardless of mode.
	NoMorphology bool

	// Trace attaches a full generation trace to the word.
	Trace bool
}

func (o GenerateOptions) rng() *rand.Rand {
	switch {
	case o.Rand != nil:
		return o.Rand
	case o.Seed != 0:
		return rand.New(rand.NewSource(o.Seed))
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// GenerateWord produces one word. Identical options with a fixed seed
// produce identical words.
func (g *Generator) GenerateWord(opts GenerateOptions) *phonology.Word {
	return g.generate(opts.rng(), opts)
}

// GenerateWords produces n words drawn from one shared random stream,
// so a fixed seed reproduces the whole batch while its words stay
// distinct from one another.
func (g *Generator) GenerateWords(n int, opts GenerateOptions) []*phonology.Word {
	r := opts.rng()
	words := make([]*phonology.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, g.generate(r, opts))
	}
	return words
}

func (g *Generator) generate(r *rand.Rand, opts GenerateOptions) *phonology.Word {
	m := g.model

	var rec *trace.Recorder
	var tracer phonology.Tracer
	if opts.Trace {
		rec = trace.NewRecorder()
		tracer = rec
	}

	mode := opts.Mode
	if mode == "" {
		mode = language.ModeText
	}

	var plan *morphology.Plan
	if !opts.NoMorphology {
		plan = morphology.PlanWord(r, m, mode)
	}

	count := opts.SyllableCount
	if count == 0 {
		count = syllable.PickSyllableCount(r, m)
	}
	if plan != nil {
		count -= plan.SyllableReduction
		// A conditionally syllabic allomorph can add a syllable the
		// reduction did not budget for; keep the root short enough
		// that even the widest realization stays within the cap.
		if ceil := language.MaxSyllables - plan.MaxAffixSyllables(); count > ceil {
			count = ceil
		}
	}
	if count < 1 {
		count = 1
	}

	w := syllable.Assemble(r, m, count, tracer)
	syllable.RepairClusters(m, w, tracer)
	syllable.RepairFinalCoda(m, w, tracer)
	syllable.RepairShape(m, w, tracer)

	morphology.Apply(r, m, w, plan, tracer)
	stress.Assign(r, m, w, tracer)
	morphology.ApplyStress(w)
	syllable.RepickStressedNucleus(r, m, w, tracer)

	w.Written = orthography.Render(r, m, w, tracer)
	w.Pronunciation = ipa.Render(r, m, w)

	if rec != nil {
		w.Trace = rec.Log()
	}
	return w
}
