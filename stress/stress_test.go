package stress

import (
	"math/rand"
	"testing"

	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

func englishModel(t *testing.T) *language.Model {
	t.Helper()
	m, err := language.Compile(language.English())
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return m
}

func light(m *language.Model, t *testing.T) *phonology.Syllable {
	t.Helper()
	v, ok := m.Phoneme("æ")
	if !ok {
		t.Fatal("æ missing")
	}
	return &phonology.Syllable{Nucleus: []*phonology.Phoneme{v}}
}

func heavy(m *language.Model, t *testing.T) *phonology.Syllable {
	t.Helper()
	s := light(m, t)
	c, ok := m.Phoneme("n")
	if !ok {
		t.Fatal("n missing")
	}
	s.Coda = []*phonology.Phoneme{c}
	return s
}

func TestAssignMonosyllableNoStress(t *testing.T) {
	m := englishModel(t)
	w := &phonology.Word{Syllables: []*phonology.Syllable{heavy(m, t)}}
	Assign(rand.New(rand.NewSource(1)), m, w, nil)
	if w.Syllables[0].Stress != phonology.NoStress {
		t.Errorf("monosyllable stress = %v, want none", w.Syllables[0].Stress)
	}
}

func TestAssignExactlyOnePrimary(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 300; seed++ {
		w := &phonology.Word{Syllables: []*phonology.Syllable{
			light(m, t), heavy(m, t), light(m, t), heavy(m, t),
		}}
		Assign(rand.New(rand.NewSource(seed)), m, w, nil)
		primaries := 0
		for _, s := range w.Syllables {
			if s.Stress == phonology.Primary {
				primaries++
			}
		}
		if primaries != 1 {
			t.Fatalf("seed %d: %d primary stresses, want 1", seed, primaries)
		}
	}
}

func TestAssignDeterminism(t *testing.T) {
	m := englishModel(t)
	stresses := func(seed int64) []phonology.Stress {
		w := &phonology.Word{Syllables: []*phonology.Syllable{
			heavy(m, t), light(m, t), heavy(m, t),
		}}
		Assign(rand.New(rand.NewSource(seed)), m, w, nil)
		out := make([]phonology.Stress, len(w.Syllables))
		for i, s := range w.Syllables {
			out[i] = s.Stress
		}
		return out
	}
	for seed := int64(0); seed < 50; seed++ {
		a, b := stresses(seed), stresses(seed)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %d: stress %d differs", seed, i)
			}
		}
	}
}

func TestEvaluateMonosyllable(t *testing.T) {
	m := englishModel(t)
	got := Evaluate(rand.New(rand.NewSource(1)),
		m.Config.Stress.Grammar,
		[]*phonology.Syllable{heavy(m, t)})
	if got != 0 {
		t.Errorf("Evaluate monosyllable = %d, want 0", got)
	}
}

func TestEvaluateRange(t *testing.T) {
	m := englishModel(t)
	syllables := []*phonology.Syllable{light(m, t), heavy(m, t), light(m, t)}
	for seed := int64(0); seed < 200; seed++ {
		got := Evaluate(rand.New(rand.NewSource(seed)), m.Config.Stress.Grammar, syllables)
		if got < 0 || got >= len(syllables) {
			t.Fatalf("seed %d: Evaluate = %d, out of range", seed, got)
		}
	}
}

func TestEvaluateNoiselessWSP(t *testing.T) {
	m := englishModel(t)
	// Heavy WSP with no noise must stress the only heavy syllable.
	constraints := []language.ConstraintWeight{{Name: "WSP", Weight: 10}}
	syllables := []*phonology.Syllable{light(m, t), heavy(m, t), light(m, t)}
	for seed := int64(0); seed < 20; seed++ {
		if got := Evaluate(rand.New(rand.NewSource(seed)), constraints, syllables); got != 1 {
			t.Fatalf("seed %d: Evaluate = %d, want 1", seed, got)
		}
	}
}

func TestEvaluateAlignLeft(t *testing.T) {
	m := englishModel(t)
	constraints := []language.ConstraintWeight{{Name: "ALIGN-LEFT", Weight: 1}}
	syllables := []*phonology.Syllable{light(m, t), light(m, t), light(m, t)}
	if got := Evaluate(rand.New(rand.NewSource(1)), constraints, syllables); got != 0 {
		t.Errorf("ALIGN-LEFT Evaluate = %d, want 0", got)
	}

	constraints = []language.ConstraintWeight{{Name: "ALIGN-RIGHT", Weight: 1}}
	if got := Evaluate(rand.New(rand.NewSource(1)), constraints, syllables); got != 2 {
		t.Errorf("ALIGN-RIGHT Evaluate = %d, want 2", got)
	}
}

func TestEvaluateUnknownConstraintIgnored(t *testing.T) {
	m := englishModel(t)
	constraints := []language.ConstraintWeight{
		{Name: "NO-SUCH-CONSTRAINT", Weight: 100},
		{Name: "ALIGN-LEFT", Weight: 1},
	}
	syllables := []*phonology.Syllable{light(m, t), light(m, t)}
	if got := Evaluate(rand.New(rand.NewSource(1)), constraints, syllables); got != 0 {
		t.Errorf("Evaluate = %d, want 0 (unknown constraint skipped)", got)
	}
}

func TestRulePrimaryFallback(t *testing.T) {
	m := englishModel(t)
	cfg := m.Config.Stress
	// Five syllables are not in the table; penult is the fallback.
	root := []*phonology.Syllable{
		light(m, t), light(m, t), light(m, t), light(m, t), light(m, t),
	}
	if got := rulePrimary(rand.New(rand.NewSource(1)), cfg, root); got != 3 {
		t.Errorf("rulePrimary fallback = %d, want 3 (penult)", got)
	}
}

func TestAssignRhythmicNeverAdjacent(t *testing.T) {
	m := englishModel(t)
	for seed := int64(0); seed < 200; seed++ {
		w := &phonology.Word{Syllables: []*phonology.Syllable{
			light(m, t), light(m, t), light(m, t), light(m, t), light(m, t), light(m, t),
		}}
		Assign(rand.New(rand.NewSource(seed)), m, w, nil)
		for i := 1; i < len(w.Syllables); i++ {
			if w.Syllables[i-1].Stress == phonology.Secondary && w.Syllables[i].Stress == phonology.Secondary {
				t.Fatalf("seed %d: adjacent secondary stresses at %d", seed, i)
			}
		}
	}
}
