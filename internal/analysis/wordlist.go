// Package analysis holds the offline tooling behind the analyze
// command: reference wordlists and character n-gram scoring used to
// compare generated output against a real-word corpus.
package analysis

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Wordlist is a set of reference words loaded from a plain list or a
// CMU-style pronunciation dictionary (only the headword column is
// kept).
type Wordlist struct {
	words []string
	seen  map[string]bool
}

// NewWordlist creates an empty wordlist.
func NewWordlist() *Wordlist {
	return &Wordlist{seen: make(map[string]bool)}
}

// Add inserts a word, ignoring duplicates.
func (l *Wordlist) Add(word string) {
	word = strings.ToLower(word)
	if word == "" || l.seen[word] {
		return
	}
	l.seen[word] = true
	l.words = append(l.words, word)
}

// Load reads one word per line. Comment lines (";;;" as in the CMU
// dictionary, or "#") are skipped, only the first field of each line is
// kept, and CMU variant markers like "word(2)" are stripped.
func Load(r io.Reader) (*Wordlist, error) {
	l := NewWordlist()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#") {
			continue
		}
		word := strings.Fields(line)[0]
		if i := strings.IndexByte(word, '('); i > 0 {
			word = word[:i]
		}
		l.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Contains reports whether the word is in the list.
func (l *Wordlist) Contains(word string) bool {
	return l.seen[strings.ToLower(word)]
}

// Words returns the words in load order.
func (l *Wordlist) Words() []string { return l.words }

// Len returns the number of distinct words.
func (l *Wordlist) Len() int { return len(l.words) }

// Nearest returns the listed word with the smallest edit distance to
// word, and that distance. An empty list returns ("", -1).
func (l *Wordlist) Nearest(word string) (string, int) {
	word = strings.ToLower(word)
	best, bestDist := "", -1
	for _, w := range l.words {
		d := EditDistance(word, w)
		if bestDist < 0 || d < bestDist {
			best, bestDist = w, d
			if d == 0 {
				break
			}
		}
	}
	return best, bestDist
}

// EditDistance computes the Levenshtein distance between two words over
// runes.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single-row DP keeps memory linear in the shorter word.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			m := prev[j] + 1
			if ins := cur[j-1] + 1; ins < m {
				m = ins
			}
			if sub := prev[j-1] + cost; sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[lb]
}
