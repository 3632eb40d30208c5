package unglish

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/orthography"
	"github.com/unglish/unglish-go/phonology"
)

func TestGenerateWordDeterministic(t *testing.T) {
	g := NewEnglish()
	for seed := int64(1); seed <= 50; seed++ {
		a := g.GenerateWord(GenerateOptions{Seed: seed})
		b := g.GenerateWord(GenerateOptions{Seed: seed})
		if a.Written.Clean != b.Written.Clean || a.Pronunciation != b.Pronunciation {
			t.Fatalf("seed %d: %q /%s/ vs %q /%s/",
				seed, a.Written.Clean, a.Pronunciation, b.Written.Clean, b.Pronunciation)
		}
	}
}

func TestGenerateWordsSharedStream(t *testing.T) {
	g := NewEnglish()
	words := g.GenerateWords(50, GenerateOptions{Seed: 42})
	if len(words) != 50 {
		t.Fatalf("got %d words", len(words))
	}
	distinct := make(map[string]bool)
	for _, w := range words {
		if w.Written.Clean == "" {
			t.Fatal("empty word generated")
		}
		distinct[w.Written.Clean] = true
	}
	if len(distinct) < 40 {
		t.Errorf("only %d distinct words in a batch of 50", len(distinct))
	}

	// The whole batch reproduces under the same seed.
	again := g.GenerateWords(50, GenerateOptions{Seed: 42})
	for i := range words {
		if words[i].Written.Clean != again[i].Written.Clean {
			t.Fatalf("word %d differs: %q vs %q", i, words[i].Written.Clean, again[i].Written.Clean)
		}
	}
}

func TestGenerateWordExplicitRand(t *testing.T) {
	g := NewEnglish()
	a := g.GenerateWord(GenerateOptions{Rand: rand.New(rand.NewSource(7))})
	b := g.GenerateWord(GenerateOptions{Rand: rand.New(rand.NewSource(7))})
	if a.Written.Clean != b.Written.Clean {
		t.Errorf("explicit sources with equal seeds differ: %q vs %q", a.Written.Clean, b.Written.Clean)
	}
}

func TestGenerateSyllableCountHonored(t *testing.T) {
	g := NewEnglish()
	for seed := int64(1); seed <= 100; seed++ {
		w := g.GenerateWord(GenerateOptions{Seed: seed, SyllableCount: 3, NoMorphology: true})
		if got := len(w.Syllables); got != 3 {
			t.Fatalf("seed %d: %d syllables, want 3", seed, got)
		}
	}
}

func TestGenerateNoMorphology(t *testing.T) {
	g := NewEnglish()
	for seed := int64(1); seed <= 200; seed++ {
		w := g.GenerateWord(GenerateOptions{Seed: seed, NoMorphology: true})
		if w.Morph != nil {
			t.Fatalf("seed %d: morphology on a bare word: %+v", seed, w.Morph)
		}
	}
}

func TestGenerateStressedSyllableExists(t *testing.T) {
	g := NewEnglish()
	for seed := int64(1); seed <= 300; seed++ {
		w := g.GenerateWord(GenerateOptions{Seed: seed, SyllableCount: 3, NoMorphology: true})
		primaries := 0
		for _, s := range w.Syllables {
			if s.Stress == phonology.Primary {
				primaries++
			}
		}
		if primaries != 1 {
			t.Fatalf("seed %d: %d primary stresses in %q", seed, primaries, w.Written.Clean)
		}
	}
}

func TestGenerateNoStressedSchwa(t *testing.T) {
	g := NewEnglish()
	n := 10000
	if testing.Short() {
		n = 2000
	}
	words := g.GenerateWords(n, GenerateOptions{Seed: 1, Mode: language.ModeLexicon})
	for _, w := range words {
		for _, s := range w.Syllables {
			if s.Stress != phonology.Primary {
				continue
			}
			for _, p := range s.Nucleus {
				if p.Reduced {
					t.Fatalf("stressed reduced nucleus in %q /%s/", w.Written.Clean, w.Pronunciation)
				}
			}
		}
	}
}

func TestGenerateConsonantRunBounded(t *testing.T) {
	g := NewEnglish()
	m := g.Model()
	max := m.MaxConsonantRun()
	n := 100000
	if testing.Short() {
		n = 2000
	}
	words := g.GenerateWords(n, GenerateOptions{Seed: 2, Mode: language.ModeLexicon})
	for _, w := range words {
		if run := orthography.MaxConsonantRun(m, w.Written.Clean); run > max {
			t.Fatalf("%q has a consonant run of %d (max %d)", w.Written.Clean, run, max)
		}
	}
}

func TestGenerateSyllableCapWithMorphology(t *testing.T) {
	g := NewEnglish()
	// A conditionally syllabic allomorph (-es after a sibilant, -ɪd
	// after an alveolar stop) must not push a forced-length word past
	// the cap.
	for seed := int64(1); seed <= 500; seed++ {
		w := g.GenerateWord(GenerateOptions{Seed: seed, SyllableCount: 7, Mode: language.ModeLexicon})
		if got := len(w.Syllables); got > language.MaxSyllables {
			t.Fatalf("seed %d: %d syllables in %q /%s/", seed, got, w.Written.Clean, w.Pronunciation)
		}
	}
}

func TestGenerateNoGeminateCoda(t *testing.T) {
	g := NewEnglish()
	n := 50000
	if testing.Short() {
		n = 2000
	}
	words := g.GenerateWords(n, GenerateOptions{Seed: 5, Mode: language.ModeLexicon})
	for _, w := range words {
		for _, s := range w.Syllables {
			for i := 1; i < len(s.Coda); i++ {
				if s.Coda[i].Sound == s.Coda[i-1].Sound {
					t.Fatalf("doubled coda phoneme %s in %q /%s/", s.Coda[i].Sound, w.Written.Clean, w.Pronunciation)
				}
			}
		}
	}
}

func TestGenerateNoDoubledLetterAtJoins(t *testing.T) {
	g := NewEnglish()
	n := 50000
	if testing.Short() {
		n = 2000
	}
	words := g.GenerateWords(n, GenerateOptions{Seed: 11, NoMorphology: true})
	for _, w := range words {
		parts := strings.Split(w.Written.Hyphenated, "-")
		for i := 1; i < len(parts); i++ {
			if parts[i-1] == "" || parts[i] == "" {
				continue
			}
			last := parts[i-1][len(parts[i-1])-1]
			if parts[i][0] == last && !strings.ContainsRune("aeiou", rune(last)) {
				t.Fatalf("doubled letter at join in %q", w.Written.Hyphenated)
			}
		}
	}
}

func TestGenerateNoStopClashBeforeSuffix(t *testing.T) {
	g := NewEnglish()
	n := 50000
	if testing.Short() {
		n = 2000
	}
	words := g.GenerateWords(n, GenerateOptions{Seed: 11, Mode: language.ModeLexicon})
	for _, w := range words {
		if w.Morph == nil || w.Morph.SuffixWritten != "tion" {
			continue
		}
		parts := strings.Split(w.Written.Hyphenated, "-")
		if len(parts) < 2 {
			continue
		}
		root := parts[len(parts)-2]
		if root == "" {
			continue
		}
		if strings.ContainsRune("bdgt", rune(root[len(root)-1])) {
			t.Fatalf("stop clash before suffix in %q", w.Written.Hyphenated)
		}
	}
}

func TestGenerateTrace(t *testing.T) {
	g := NewEnglish()
	w := g.GenerateWord(GenerateOptions{Seed: 3, Trace: true})
	if w.Trace == nil {
		t.Fatal("trace requested but missing")
	}
	if len(w.Trace.Stages) == 0 {
		t.Error("trace has no stage snapshots")
	}
	if len(w.Trace.Decisions) == 0 {
		t.Error("trace has no grapheme decisions")
	}

	w = g.GenerateWord(GenerateOptions{Seed: 3})
	if w.Trace != nil {
		t.Error("trace attached without being requested")
	}
}

func TestGenerateTraceDoesNotChangeOutput(t *testing.T) {
	g := NewEnglish()
	for seed := int64(1); seed <= 30; seed++ {
		plain := g.GenerateWord(GenerateOptions{Seed: seed})
		traced := g.GenerateWord(GenerateOptions{Seed: seed, Trace: true})
		if plain.Written.Clean != traced.Written.Clean || plain.Pronunciation != traced.Pronunciation {
			t.Fatalf("seed %d: tracing changed output: %q vs %q", seed, plain.Written.Clean, traced.Written.Clean)
		}
	}
}

func TestGenerateHyphenatedMatchesSyllables(t *testing.T) {
	g := NewEnglish()
	for seed := int64(1); seed <= 50; seed++ {
		w := g.GenerateWord(GenerateOptions{Seed: seed, NoMorphology: true})
		if w.Written.Hyphenated == "" {
			t.Fatalf("seed %d: empty hyphenated form", seed)
		}
	}
}

func TestNewGeneratorInvalidConfig(t *testing.T) {
	if _, err := NewGenerator(&language.Config{Name: "empty"}); err == nil {
		t.Fatal("expected an error for a config with no phonemes")
	}
}

func TestGenerateEveryWordPronounced(t *testing.T) {
	g := NewEnglish()
	words := g.GenerateWords(200, GenerateOptions{Seed: 9})
	for _, w := range words {
		if w.Pronunciation == "" {
			t.Fatalf("word %q has no pronunciation", w.Written.Clean)
		}
		if len(w.Syllables) == 0 {
			t.Fatal("word with no syllables")
		}
	}
}
