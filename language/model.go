package language

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/phonology"
)

// MaxSyllables is the hard ceiling on word length.
const MaxSyllables = 7

// Model is a validated, precomputed language: phoneme index, per-slot
// candidate pools, sonority table, compiled cluster and spelling
// patterns. A Model is immutable and safe for concurrent readers.
type Model struct {
	Config   *Config
	Sonority phonology.SonorityTable

	phonemes  map[string]*phonology.Phoneme
	pools     map[phonology.Position][]*phonology.Phoneme
	graphemes map[string][]*phonology.Grapheme
	classes   map[string]map[string]bool

	invalid map[phonology.Position][]compiledPattern

	syllableRules []CompiledRule
	wordRules     []CompiledRule
	transforms    map[string]*CompiledTransform // affix written + name

	finalCodas map[string]bool
	banned     map[[2]string]string // coda,onset -> drop side

	fallback *phonology.Phoneme
}

type compiledPattern struct {
	re     *regexp.Regexp
	unless *regexp.Regexp
}

// Compile validates cfg and precomputes the model. All configuration
// errors are reported here, wrapped in ErrInvalidConfig; generation
// itself never fails.
func Compile(cfg *Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		Config:     cfg,
		phonemes:   make(map[string]*phonology.Phoneme, len(cfg.Phonemes)),
		pools:      make(map[phonology.Position][]*phonology.Phoneme),
		graphemes:  make(map[string][]*phonology.Grapheme, len(cfg.Graphemes)),
		invalid:    make(map[phonology.Position][]compiledPattern),
		transforms: make(map[string]*CompiledTransform),
		finalCodas: make(map[string]bool),
		banned:     make(map[[2]string]string),
	}

	for _, p := range cfg.Phonemes {
		m.phonemes[p.Sound] = p
		for _, pos := range []phonology.Position{phonology.Onset, phonology.Nucleus, phonology.Coda} {
			if p.AllowedIn(pos) {
				m.pools[pos] = append(m.pools[pos], p)
			}
		}
	}

	m.Sonority = phonology.BuildSonorityTable(cfg.Phonemes, cfg.Sonority)

	for _, g := range cfg.Graphemes {
		m.graphemes[g.Phoneme] = append(m.graphemes[g.Phoneme], g)
	}

	m.buildClasses()

	if err := m.compilePatterns(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for _, s := range cfg.Constraints.FinalCodas {
		m.finalCodas[s] = true
	}
	for _, t := range cfg.Constraints.BannedTransitions {
		drop := t.Drop
		if drop == "" {
			drop = "coda"
		}
		m.banned[[2]string{t.Coda, t.Onset}] = drop
	}

	// Synthetic fallback for sounds referenced by morphology or
	// templates but missing from the inventory: a mid central voiced
	// vowel, so generation proceeds instead of failing.
	m.fallback = &phonology.Phoneme{
		Sound:   "ə",
		Voiced:  true,
		Manner:  phonology.MannerVowel,
		Place:   phonology.PlaceCentral,
		Reduced: true,
		Weights: phonology.PositionWeights{Nucleus: 1},
	}
	if p, ok := m.phonemes["ə"]; ok {
		m.fallback = p
	}

	return m, nil
}

func (m *Model) compilePatterns() error {
	compileSet := func(pos phonology.Position, pats []ClusterPattern) error {
		for _, cp := range pats {
			re, err := regexp.Compile(cp.Pattern)
			if err != nil {
				return fmt.Errorf("invalid cluster pattern %q: %v", cp.Pattern, err)
			}
			p := compiledPattern{re: re}
			if cp.Unless != "" {
				p.unless, err = regexp.Compile(cp.Unless)
				if err != nil {
					return fmt.Errorf("invalid cluster exclusion %q: %v", cp.Unless, err)
				}
			}
			m.invalid[pos] = append(m.invalid[pos], p)
		}
		return nil
	}
	if err := compileSet(phonology.Onset, m.Config.InvalidClusters.Onset); err != nil {
		return err
	}
	if err := compileSet(phonology.Coda, m.Config.InvalidClusters.Coda); err != nil {
		return err
	}

	var err error
	m.syllableRules, err = compileRules(m.Config.Spelling.Syllable)
	if err != nil {
		return err
	}
	m.wordRules, err = compileRules(m.Config.Spelling.Word)
	if err != nil {
		return err
	}

	affixes := append(append([]*Affix(nil), m.Config.Morphology.Prefixes...), m.Config.Morphology.Suffixes...)
	for _, a := range affixes {
		for i := range a.Transforms {
			t := &a.Transforms[i]
			ct, err := compileTransform(t)
			if err != nil {
				return err
			}
			m.transforms[a.Written+"\x00"+t.Name] = ct
		}
	}
	return nil
}

// buildClasses expands the category shorthands grapheme conditions and
// allomorph conditions may reference into concrete sound sets.
func (m *Model) buildClasses() {
	m.classes = make(map[string]map[string]bool)
	add := func(class string, p *phonology.Phoneme) {
		set := m.classes[class]
		if set == nil {
			set = make(map[string]bool)
			m.classes[class] = set
		}
		set[p.Sound] = true
	}
	for _, p := range m.Config.Phonemes {
		add(string(p.Manner), p)
		if p.IsVowel() {
			add("vowel", p)
			if p.Tense {
				add("tense-vowel", p)
			} else {
				add("lax-vowel", p)
			}
			switch p.Place {
			case phonology.PlaceFront:
				add("front-vowel", p)
			case phonology.PlaceCentral:
				add("central-vowel", p)
			case phonology.PlaceBack:
				add("back-vowel", p)
			}
			if p.Reduced {
				add("reduced", p)
			}
		} else {
			add("consonant", p)
		}
		if p.Voiced {
			add("voiced", p)
		} else {
			add("voiceless", p)
		}
		if p.Sibilant {
			add("sibilant", p)
		}
	}
}

// Phoneme looks up a phoneme by sound.
func (m *Model) Phoneme(sound string) (*phonology.Phoneme, bool) {
	p, ok := m.phonemes[sound]
	return p, ok
}

// PhonemeOrDefault looks up a phoneme by sound, substituting the
// synthetic fallback phoneme when the sound is not in the inventory.
func (m *Model) PhonemeOrDefault(sound string) *phonology.Phoneme {
	if p, ok := m.phonemes[sound]; ok {
		return p
	}
	return m.fallback
}

// Pool returns the phonemes allowed in the given slot.
func (m *Model) Pool(pos phonology.Position) []*phonology.Phoneme { return m.pools[pos] }

// Graphemes returns the spellings of a sound.
func (m *Model) Graphemes(sound string) []*phonology.Grapheme { return m.graphemes[sound] }

// InClass reports whether p belongs to the named class. A name that is
// not a known class matches the phoneme's sound literally.
func (m *Model) InClass(class string, p *phonology.Phoneme) bool {
	if p == nil {
		return false
	}
	if set, ok := m.classes[class]; ok {
		return set[p.Sound]
	}
	return class == p.Sound
}

// ClusterInvalid reports whether the cluster (as ordered sounds) matches
// an invalid-cluster pattern for the position.
func (m *Model) ClusterInvalid(pos phonology.Position, cluster []*phonology.Phoneme) bool {
	pats := m.invalid[pos]
	if len(pats) == 0 {
		return false
	}
	sounds := make([]string, len(cluster))
	for i, p := range cluster {
		sounds[i] = p.Sound
	}
	joined := strings.Join(sounds, " ")
	for _, cp := range pats {
		if cp.re.MatchString(joined) {
			if cp.unless != nil && cp.unless.MatchString(joined) {
				continue
			}
			return true
		}
	}
	return false
}

// FinalCodaAllowed reports whether a sound may end the word. When no
// final-coda set is configured everything is allowed.
func (m *Model) FinalCodaAllowed(sound string) bool {
	if len(m.finalCodas) == 0 {
		return true
	}
	return m.finalCodas[sound]
}

// BannedTransition returns the configured drop side ("coda"/"onset")
// when the coda-final → onset-initial sound pair is banned.
func (m *Model) BannedTransition(coda, onset string) (string, bool) {
	side, ok := m.banned[[2]string{coda, onset}]
	return side, ok
}

// SyllableRules returns the compiled syllable-scope spelling rules.
func (m *Model) SyllableRules() []CompiledRule { return m.syllableRules }

// WordRules returns the compiled word-scope spelling rules.
func (m *Model) WordRules() []CompiledRule { return m.wordRules }

// FindPrefix looks up a configured prefix by its base written form.
func (m *Model) FindPrefix(written string) *Affix {
	for _, a := range m.Config.Morphology.Prefixes {
		if a.Written == written {
			return a
		}
	}
	return nil
}

// FindSuffix looks up a configured suffix by its base written form.
func (m *Model) FindSuffix(written string) *Affix {
	for _, a := range m.Config.Morphology.Suffixes {
		if a.Written == written {
			return a
		}
	}
	return nil
}

// Transform returns the compiled boundary transform declared by the
// affix under the given name.
func (m *Model) Transform(a *Affix, name string) *CompiledTransform {
	return m.transforms[a.Written+"\x00"+name]
}

// MaxConsonantRun returns the configured consonant-unit run cap.
func (m *Model) MaxConsonantRun() int {
	if n := m.Config.Orthography.MaxConsonantRun; n > 0 {
		return n
	}
	return 4
}

// MaxVowelRun returns the configured vowel-letter run cap.
func (m *Model) MaxVowelRun() int {
	if n := m.Config.Orthography.MaxVowelRun; n > 0 {
		return n
	}
	return 3
}

// CompiledRule is a ready-to-run spelling rule.
type CompiledRule struct {
	re      *regexp.Regexp
	exclude *regexp.Regexp
	replace string
	percent float64
}

func compileRules(rules []SpellingRule) ([]CompiledRule, error) {
	out := make([]CompiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid spelling rule %q: %v", r.Pattern, err)
		}
		cr := CompiledRule{re: re, replace: r.Replace, percent: r.Percent}
		if r.Exclude != "" {
			cr.exclude, err = regexp.Compile(r.Exclude)
			if err != nil {
				return nil, fmt.Errorf("invalid spelling exclusion %q: %v", r.Exclude, err)
			}
		}
		out = append(out, cr)
	}
	return out, nil
}

// Apply runs the rule on s. The probability draw happens only when the
// pattern matches, so non-matching rules do not consume randomness.
func (r CompiledRule) Apply(rnd *rand.Rand, s string) (string, bool) {
	if !r.re.MatchString(s) {
		return s, false
	}
	if r.exclude != nil && r.exclude.MatchString(s) {
		return s, false
	}
	if !wrand.Percent(rnd, r.percent) {
		return s, false
	}
	return r.re.ReplaceAllString(s, r.replace), true
}

// CompiledTransform is a ready-to-run boundary transform.
type CompiledTransform struct {
	Name      string
	BlockedBy []string
	re        *regexp.Regexp
	replace   string
}

func compileTransform(t *BoundaryTransform) (*CompiledTransform, error) {
	re, err := regexp.Compile(t.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid boundary transform %q: %v", t.Pattern, err)
	}
	return &CompiledTransform{Name: t.Name, BlockedBy: t.BlockedBy, re: re, replace: t.Replace}, nil
}

// Apply rewrites s, reporting whether the transform fired.
func (t *CompiledTransform) Apply(s string) (string, bool) {
	if !t.re.MatchString(s) {
		return s, false
	}
	return t.re.ReplaceAllString(s, t.replace), true
}
