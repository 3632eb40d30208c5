package language

import (
	"math/rand"
	"testing"

	"github.com/unglish/unglish-go/phonology"
)

func compileEnglish(t *testing.T) *Model {
	t.Helper()
	m, err := Compile(English())
	if err != nil {
		t.Fatalf("Compile(English()) error: %v", err)
	}
	return m
}

func TestEnglishCompiles(t *testing.T) {
	m := compileEnglish(t)
	if len(m.Pool(phonology.Nucleus)) == 0 {
		t.Fatal("empty nucleus pool")
	}
	if len(m.Pool(phonology.Onset)) == 0 {
		t.Fatal("empty onset pool")
	}
	if len(m.Pool(phonology.Coda)) == 0 {
		t.Fatal("empty coda pool")
	}
}

func TestPools(t *testing.T) {
	m := compileEnglish(t)
	for _, p := range m.Pool(phonology.Nucleus) {
		if !p.IsVowel() {
			t.Errorf("nucleus pool contains consonant %q", p.Sound)
		}
	}
	for _, p := range m.Pool(phonology.Onset) {
		if p.IsVowel() {
			t.Errorf("onset pool contains vowel %q", p.Sound)
		}
	}
	// ŋ has no onset weight.
	for _, p := range m.Pool(phonology.Onset) {
		if p.Sound == "ŋ" {
			t.Error("ŋ should not be in the onset pool")
		}
	}
}

func TestClasses(t *testing.T) {
	m := compileEnglish(t)
	cases := []struct {
		class string
		sound string
		want  bool
	}{
		{"vowel", "i", true},
		{"vowel", "t", false},
		{"consonant", "t", true},
		{"tense-vowel", "i", true},
		{"tense-vowel", "ɪ", false},
		{"lax-vowel", "ɪ", true},
		{"front-vowel", "æ", true},
		{"central-vowel", "ə", true},
		{"back-vowel", "u", true},
		{"reduced", "ə", true},
		{"reduced", "ʌ", false},
		{"sibilant", "s", true},
		{"sibilant", "f", false},
		{"voiced", "b", true},
		{"voiceless", "p", true},
		{"stop", "k", true},
		{"nasal", "m", true},
	}
	for _, c := range cases {
		p, ok := m.Phoneme(c.sound)
		if !ok {
			t.Fatalf("phoneme %q missing", c.sound)
		}
		if got := m.InClass(c.class, p); got != c.want {
			t.Errorf("InClass(%q, %q) = %v, want %v", c.class, c.sound, got, c.want)
		}
	}
}

func TestInClassLiteralSound(t *testing.T) {
	m := compileEnglish(t)
	k, _ := m.Phoneme("k")
	if !m.InClass("k", k) {
		t.Error("unknown class name should match the sound literally")
	}
	if m.InClass("g", k) {
		t.Error("literal sound match should not cross sounds")
	}
}

func TestClusterInvalid(t *testing.T) {
	m := compileEnglish(t)
	p := func(sound string) *phonology.Phoneme {
		ph, ok := m.Phoneme(sound)
		if !ok {
			t.Fatalf("phoneme %q missing", sound)
		}
		return ph
	}

	// h never clusters in onsets.
	if !m.ClusterInvalid(phonology.Onset, []*phonology.Phoneme{p("h"), p("r")}) {
		t.Error("h+r onset should be invalid")
	}
	// s+voiced obstruent is out; s+stop is the classic exception.
	if !m.ClusterInvalid(phonology.Onset, []*phonology.Phoneme{p("s"), p("z")}) {
		t.Error("s+z onset should be invalid")
	}
	if m.ClusterInvalid(phonology.Onset, []*phonology.Phoneme{p("s"), p("t")}) {
		t.Error("s+t onset should be legal")
	}
	// The unless pattern allows /j/ only after a plain consonant.
	if m.ClusterInvalid(phonology.Onset, []*phonology.Phoneme{p("k"), p("j")}) {
		t.Error("k+j onset should be legal (unless pattern)")
	}
	if !m.ClusterInvalid(phonology.Onset, []*phonology.Phoneme{p("r"), p("j")}) {
		t.Error("r+j onset should be invalid")
	}
	// Affricates never start a coda cluster.
	if !m.ClusterInvalid(phonology.Coda, []*phonology.Phoneme{p("tʃ"), p("t")}) {
		t.Error("tʃ+t coda should be invalid")
	}
	if m.ClusterInvalid(phonology.Coda, []*phonology.Phoneme{p("s"), p("t")}) {
		t.Error("s+t coda should be legal")
	}
}

func TestFinalCodaAllowed(t *testing.T) {
	m := compileEnglish(t)
	if !m.FinalCodaAllowed("t") {
		t.Error("t should be allowed word-finally")
	}
	if m.FinalCodaAllowed("ʒ") {
		t.Error("ʒ should not be allowed word-finally")
	}

	// No configured set means everything goes.
	cfg := minimalConfig()
	open, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if !open.FinalCodaAllowed("t") {
		t.Error("empty final-coda set should allow everything")
	}
}

func TestBannedTransition(t *testing.T) {
	m := compileEnglish(t)
	side, ok := m.BannedTransition("t", "t")
	if !ok || side != "coda" {
		t.Errorf("t→t = (%q, %v), want (coda, true)", side, ok)
	}
	side, ok = m.BannedTransition("dʒ", "tʃ")
	if !ok || side != "onset" {
		t.Errorf("dʒ→tʃ = (%q, %v), want (onset, true)", side, ok)
	}
	if _, ok := m.BannedTransition("t", "r"); ok {
		t.Error("t→r should not be banned")
	}
}

func TestPhonemeOrDefault(t *testing.T) {
	m := compileEnglish(t)
	if p := m.PhonemeOrDefault("t"); p.Sound != "t" {
		t.Errorf("PhonemeOrDefault(t) = %q", p.Sound)
	}
	p := m.PhonemeOrDefault("ɰ")
	if p.Sound != "ə" || !p.IsVowel() {
		t.Errorf("fallback = %q, want schwa vowel", p.Sound)
	}
}

func TestFindAffixes(t *testing.T) {
	m := compileEnglish(t)
	if a := m.FindSuffix("ing"); a == nil || a.Written != "ing" {
		t.Error("FindSuffix(ing) failed")
	}
	if a := m.FindPrefix("un"); a == nil || a.Written != "un" {
		t.Error("FindPrefix(un) failed")
	}
	if a := m.FindSuffix("zzz"); a != nil {
		t.Error("FindSuffix(zzz) should be nil")
	}
}

func TestCompiledRuleApply(t *testing.T) {
	rules, err := compileRules([]SpellingRule{
		{Pattern: `ks$`, Replace: `x`, Percent: 100},
	})
	if err != nil {
		t.Fatalf("compileRules error: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	got, fired := rules[0].Apply(r, "boks")
	if !fired || got != "box" {
		t.Errorf("Apply = %q, %v, want box, true", got, fired)
	}
	got, fired = rules[0].Apply(r, "bok")
	if fired || got != "bok" {
		t.Errorf("Apply non-match = %q, %v, want bok, false", got, fired)
	}
}

func TestCompiledRuleExclude(t *testing.T) {
	rules, err := compileRules([]SpellingRule{
		{Pattern: `u$`, Exclude: `[aeo]u$`, Replace: `ue`, Percent: 100},
	})
	if err != nil {
		t.Fatalf("compileRules error: %v", err)
	}
	r := rand.New(rand.NewSource(1))
	got, fired := rules[0].Apply(r, "blu")
	if !fired || got != "blue" {
		t.Errorf("Apply = %q, %v, want blue, true", got, fired)
	}
	got, fired = rules[0].Apply(r, "thou")
	if fired || got != "thou" {
		t.Errorf("Apply excluded = %q, %v, want thou, false", got, fired)
	}
}

func TestAllomorphConditionSpecific(t *testing.T) {
	f := false
	voicingOnly := AllomorphCondition{Voiced: &f}
	if voicingOnly.Specific() {
		t.Error("voicing-only condition reported specific")
	}
	withSounds := AllomorphCondition{Sounds: []string{"t", "d"}}
	if !withSounds.Specific() {
		t.Error("sound-list condition reported non-specific")
	}
	withPlace := AllomorphCondition{Place: []phonology.Place{phonology.PlaceBilabial}}
	if !withPlace.Specific() {
		t.Error("place condition reported non-specific")
	}
}

func TestAllomorphConditionMatches(t *testing.T) {
	m := compileEnglish(t)
	tPh, _ := m.Phoneme("t")
	bPh, _ := m.Phoneme("b")
	sPh, _ := m.Phoneme("s")

	f := false
	if !(AllomorphCondition{Voiced: &f}).Matches(tPh) {
		t.Error("voiceless condition should match t")
	}
	if (AllomorphCondition{Voiced: &f}).Matches(bPh) {
		t.Error("voiceless condition should not match b")
	}
	tr := true
	if !(AllomorphCondition{Sibilant: &tr}).Matches(sPh) {
		t.Error("sibilant condition should match s")
	}
	cond := AllomorphCondition{Sounds: []string{"t", "d"}}
	if !cond.Matches(tPh) || cond.Matches(bPh) {
		t.Error("sound-list condition mismatch")
	}
	if (AllomorphCondition{}).Matches(nil) {
		t.Error("nil phoneme should never match")
	}
}

func TestBoundaryTransformYToI(t *testing.T) {
	m := compileEnglish(t)
	ness := m.FindSuffix("ness")
	if ness == nil {
		t.Fatal("suffix ness missing")
	}
	ct := m.Transform(ness, "y-to-i")
	if ct == nil {
		t.Fatal("y-to-i transform not compiled")
	}
	got, fired := ct.Apply("happy")
	if !fired || got != "happi" {
		t.Errorf("Apply(happy) = %q, %v; want happi, true", got, fired)
	}
	got, fired = ct.Apply("day")
	if fired || got != "day" {
		t.Errorf("vowel+y must not rewrite: %q, %v", got, fired)
	}
}
