package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	unglish "github.com/unglish/unglish-go"
	"github.com/unglish/unglish-go/internal/analysis"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/orthography"
)

var analyzeFlags struct {
	count    int
	seed     int64
	config   string
	wordlist string
	order    int
	gaps     int
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a generated sample against a reference wordlist",
	Long: "Analyze generates a sample and reports structural statistics,\n" +
		"collisions with a reference wordlist, character n-gram coverage\n" +
		"against that corpus, and the most frequent unattested n-grams.",
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.IntVarP(&analyzeFlags.count, "count", "n", 10000, "Sample size")
	f.Int64Var(&analyzeFlags.seed, "seed", 1, "Random seed")
	f.StringVarP(&analyzeFlags.config, "config", "c", "", "Language config YAML (default: built-in English)")
	f.StringVarP(&analyzeFlags.wordlist, "wordlist", "w", "", "Reference wordlist or CMU-style dictionary")
	f.IntVar(&analyzeFlags.order, "order", 3, "Character n-gram order (2-4)")
	f.IntVar(&analyzeFlags.gaps, "gaps", 20, "How many top unattested n-grams to list")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	g, err := newGenerator(analyzeFlags.config)
	if err != nil {
		return err
	}

	words := g.GenerateWords(analyzeFlags.count, unglish.GenerateOptions{
		Seed: analyzeFlags.seed,
		Mode: language.ModeLexicon,
	})

	out := cmd.OutOrStdout()

	// Structural statistics.
	var totalSyll, maxRun, maxLen int
	lengths := make(map[int]int)
	for _, w := range words {
		n := len(w.Syllables)
		totalSyll += n
		lengths[n]++
		if n > maxLen {
			maxLen = n
		}
		if r := orthography.MaxConsonantRun(g.Model(), w.Written.Clean); r > maxRun {
			maxRun = r
		}
	}
	fmt.Fprintf(out, "words:              %d\n", len(words))
	fmt.Fprintf(out, "mean syllables:     %.2f\n", float64(totalSyll)/float64(len(words)))
	fmt.Fprintf(out, "max consonant run:  %d\n", maxRun)
	for n := 1; n <= maxLen; n++ {
		if c := lengths[n]; c > 0 {
			fmt.Fprintf(out, "  %d-syllable: %6d (%.1f%%)\n", n, c, 100*float64(c)/float64(len(words)))
		}
	}

	if analyzeFlags.wordlist == "" {
		return nil
	}

	list, err := analysis.LoadFile(analyzeFlags.wordlist)
	if err != nil {
		return fmt.Errorf("load wordlist: %w", err)
	}
	model := analysis.NewNGram(analyzeFlags.order)
	model.AddAll(list)

	collisions := 0
	var scoreSum, coverageSum float64
	gapCounts := make(map[string]int)
	for _, w := range words {
		text := w.Written.Clean
		if list.Contains(text) {
			collisions++
		}
		scoreSum += model.Score(text)
		coverageSum += model.Coverage(text)
		for _, gap := range model.Gaps(text) {
			gapCounts[gap]++
		}
	}
	fmt.Fprintf(out, "corpus:             %d words (%s)\n", list.Len(), analyzeFlags.wordlist)
	fmt.Fprintf(out, "collisions:         %d (%.2f%%)\n", collisions, 100*float64(collisions)/float64(len(words)))
	fmt.Fprintf(out, "mean %d-gram score:  %.3f\n", model.Order(), scoreSum/float64(len(words)))
	fmt.Fprintf(out, "%d-gram coverage:    %.1f%%\n", model.Order(), 100*coverageSum/float64(len(words)))

	type gap struct {
		ngram string
		count int
	}
	gaps := make([]gap, 0, len(gapCounts))
	for n, c := range gapCounts {
		gaps = append(gaps, gap{n, c})
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].count != gaps[j].count {
			return gaps[i].count > gaps[j].count
		}
		return gaps[i].ngram < gaps[j].ngram
	})
	if len(gaps) > analyzeFlags.gaps {
		gaps = gaps[:analyzeFlags.gaps]
	}
	if len(gaps) > 0 {
		fmt.Fprintln(out, "top unattested n-grams:")
		for _, g := range gaps {
			fmt.Fprintf(out, "  %-6s %d\n", g.ngram, g.count)
		}
	}
	return nil
}
