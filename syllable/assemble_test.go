package syllable

import (
	"math/rand"
	"testing"

	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

func TestAssembleNucleusNeverEmpty(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 500; seed++ {
		r := rand.New(rand.NewSource(seed))
		count := int(seed%4) + 1
		w := Assemble(r, m, count, nil)
		for i, s := range w.Syllables {
			if len(s.Nucleus) == 0 {
				t.Fatalf("seed %d: syllable %d has empty nucleus", seed, i)
			}
		}
	}
}

func TestAssembleCount(t *testing.T) {
	m := englishModel(t)
	r := rand.New(rand.NewSource(1))
	for count := 1; count <= 4; count++ {
		w := Assemble(r, m, count, nil)
		if len(w.Syllables) != count {
			t.Errorf("Assemble(%d) produced %d syllables", count, len(w.Syllables))
		}
	}
}

func TestAssembleClampsCount(t *testing.T) {
	m := englishModel(t)
	r := rand.New(rand.NewSource(2))
	if got := len(Assemble(r, m, 0, nil).Syllables); got != 1 {
		t.Errorf("Assemble(0) produced %d syllables, want 1", got)
	}
	if got := len(Assemble(r, m, 99, nil).Syllables); got != language.MaxSyllables {
		t.Errorf("Assemble(99) produced %d syllables, want %d", got, language.MaxSyllables)
	}
}

func TestAssembleDeterminism(t *testing.T) {
	m := englishModel(t)
	sounds := func(w *phonology.Word) string {
		out := ""
		for _, s := range w.Syllables {
			out += s.Sounds() + "."
		}
		return out
	}
	for seed := int64(0); seed < 50; seed++ {
		a := Assemble(rand.New(rand.NewSource(seed)), m, 3, nil)
		b := Assemble(rand.New(rand.NewSource(seed)), m, 3, nil)
		if sounds(a) != sounds(b) {
			t.Fatalf("seed %d: %q != %q", seed, sounds(a), sounds(b))
		}
	}
}

func TestPickSyllableCountRange(t *testing.T) {
	m := englishModel(t)
	r := rand.New(rand.NewSource(3))
	max := len(m.Config.Generation.SyllableCount)
	for i := 0; i < 2000; i++ {
		n := PickSyllableCount(r, m)
		if n < 1 || n > max {
			t.Fatalf("PickSyllableCount = %d, want 1..%d", n, max)
		}
	}
}

func TestOnsetsAfterOpenSyllableMandatory(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 300; seed++ {
		r := rand.New(rand.NewSource(seed))
		w := Assemble(r, m, 3, nil)
		for i := 1; i < len(w.Syllables); i++ {
			prev, cur := w.Syllables[i-1], w.Syllables[i]
			// Boundary adjustment only drops a coda when the next
			// onset is non-empty, so assembly never leaves vowel
			// hiatus inside a root.
			if len(prev.Coda) == 0 && len(cur.Onset) == 0 {
				t.Fatalf("seed %d: open syllable %d followed by onsetless syllable", seed, i-1)
			}
		}
	}
}
