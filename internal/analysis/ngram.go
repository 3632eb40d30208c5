package analysis

import (
	"math"
	"strings"
)

// logZero stands in for log10(0) when a transition was never observed.
const logZero = -99.0

const (
	wordStart = "^"
	wordEnd   = "$"
)

// NGram is a character n-gram model with Witten-Bell smoothing, built
// from a reference wordlist and used to score how English-like a
// generated spelling is.
type NGram struct {
	order int

	// counts maps a context (n-1 letters joined) to the letters seen
	// after it.
	counts map[string]map[string]int
	total  map[string]int
}

// NewNGram creates an empty model. Order is clamped to 2..4.
func NewNGram(order int) *NGram {
	if order < 2 {
		order = 2
	}
	if order > 4 {
		order = 4
	}
	return &NGram{
		order:  order,
		counts: make(map[string]map[string]int),
		total:  make(map[string]int),
	}
}

// Order returns the model's n-gram order.
func (m *NGram) Order() int { return m.order }

// Add accumulates one word's letter transitions, padded with start and
// end markers.
func (m *NGram) Add(word string) {
	seq := pad(word, m.order)
	for i := m.order - 1; i < len(seq); i++ {
		ctx := strings.Join(seq[i-m.order+1:i], "")
		next := seq[i]
		set := m.counts[ctx]
		if set == nil {
			set = make(map[string]int)
			m.counts[ctx] = set
		}
		set[next]++
		m.total[ctx]++
	}
}

// AddAll accumulates every word in the list.
func (m *NGram) AddAll(l *Wordlist) {
	for _, w := range l.Words() {
		m.Add(w)
	}
}

// LogProb returns the Witten-Bell smoothed log10 probability of next
// following ctx. Unseen contexts score logZero; unseen transitions in a
// seen context share the leftover type mass uniformly.
func (m *NGram) LogProb(ctx, next string) float64 {
	set, ok := m.counts[ctx]
	if !ok {
		return logZero
	}
	n := float64(m.total[ctx])
	t := float64(len(set))
	if c, ok := set[next]; ok {
		return math.Log10(float64(c) / (n + t))
	}
	// Leftover mass t/(n+t) spread over the unseen alphabet; the
	// alphabet size is unknown, so t stands in for it.
	return math.Log10(t / (n + t) / (t + 1))
}

// Score returns the mean log10 transition probability of the word,
// boundary markers included. Higher is more corpus-like.
func (m *NGram) Score(word string) float64 {
	seq := pad(word, m.order)
	total, transitions := 0.0, 0
	for i := m.order - 1; i < len(seq); i++ {
		ctx := strings.Join(seq[i-m.order+1:i], "")
		total += m.LogProb(ctx, seq[i])
		transitions++
	}
	if transitions == 0 {
		return logZero
	}
	return total / float64(transitions)
}

// Coverage returns the fraction of the word's n-grams attested in the
// corpus, for gap reporting.
func (m *NGram) Coverage(word string) float64 {
	seq := pad(word, m.order)
	attested, transitions := 0, 0
	for i := m.order - 1; i < len(seq); i++ {
		ctx := strings.Join(seq[i-m.order+1:i], "")
		if set, ok := m.counts[ctx]; ok && set[seq[i]] > 0 {
			attested++
		}
		transitions++
	}
	if transitions == 0 {
		return 0
	}
	return float64(attested) / float64(transitions)
}

// Gaps returns the word's unattested n-grams, in order.
func (m *NGram) Gaps(word string) []string {
	seq := pad(word, m.order)
	var gaps []string
	for i := m.order - 1; i < len(seq); i++ {
		ctx := strings.Join(seq[i-m.order+1:i], "")
		if set, ok := m.counts[ctx]; ok && set[seq[i]] > 0 {
			continue
		}
		gaps = append(gaps, ctx+seq[i])
	}
	return gaps
}

func pad(word string, order int) []string {
	word = strings.ToLower(word)
	seq := make([]string, 0, len(word)+order)
	for i := 0; i < order-1; i++ {
		seq = append(seq, wordStart)
	}
	for _, r := range word {
		seq = append(seq, string(r))
	}
	seq = append(seq, wordEnd)
	return seq
}
