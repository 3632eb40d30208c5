package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	unglish "github.com/unglish/unglish-go"
	"github.com/unglish/unglish-go/language"
	"github.com/unglish/unglish-go/phonology"
)

var genFlags struct {
	count     int
	seed      int64
	syllables int
	mode      string
	config    string
	bare      bool
	ipa       bool
	hyphens   bool
	trace     bool
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate words and print them",
	RunE:  runGen,
}

func init() {
	f := genCmd.Flags()
	f.IntVarP(&genFlags.count, "count", "n", 10, "Number of words to generate")
	f.Int64Var(&genFlags.seed, "seed", 0, "Random seed (0 = time-based)")
	f.IntVar(&genFlags.syllables, "syllables", 0, "Force root syllable count (0 = weighted draw)")
	f.StringVar(&genFlags.mode, "mode", "text", "Generation mode: text or lexicon")
	f.StringVarP(&genFlags.config, "config", "c", "", "Language config YAML (default: built-in English)")
	f.BoolVar(&genFlags.bare, "bare", false, "Skip morphology, generate bare roots")
	f.BoolVar(&genFlags.ipa, "ipa", false, "Print the pronunciation next to each word")
	f.BoolVar(&genFlags.hyphens, "hyphens", false, "Print the hyphenated form")
	f.BoolVar(&genFlags.trace, "trace", false, "Print the generation trace for each word")
}

func newGenerator(configPath string) (*unglish.Generator, error) {
	if configPath == "" {
		return unglish.NewEnglish(), nil
	}
	cfg, err := language.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	g, err := unglish.NewGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("compile config: %w", err)
	}
	return g, nil
}

func runGen(cmd *cobra.Command, _ []string) error {
	g, err := newGenerator(genFlags.config)
	if err != nil {
		return err
	}

	words := g.GenerateWords(genFlags.count, unglish.GenerateOptions{
		Seed:          genFlags.seed,
		SyllableCount: genFlags.syllables,
		Mode:          language.Mode(genFlags.mode),
		NoMorphology:  genFlags.bare,
		Trace:         genFlags.trace,
	})

	out := cmd.OutOrStdout()
	for _, w := range words {
		text := w.Written.Clean
		if genFlags.hyphens {
			text = w.Written.Hyphenated
		}
		if genFlags.ipa {
			fmt.Fprintf(out, "%s\t/%s/\n", text, w.Pronunciation)
		} else {
			fmt.Fprintln(out, text)
		}
		if genFlags.trace && w.Trace != nil {
			printTrace(out, w)
		}
	}
	return nil
}

func printTrace(out io.Writer, w *phonology.Word) {
	for _, st := range w.Trace.Stages {
		sylls := make([]string, len(st.Syllables))
		for i, s := range st.Syllables {
			sylls[i] = s.Sounds()
		}
		fmt.Fprintf(out, "  stage %-12s %s\n", st.Name, strings.Join(sylls, "."))
	}
	for _, ev := range w.Trace.Events {
		fmt.Fprintf(out, "  event %-12s %s\n", ev.Kind, ev.Detail)
	}
	for _, d := range w.Trace.Decisions {
		fmt.Fprintf(out, "  spell %s@%s -> %q (of %s)\n",
			d.Sound, d.Position, d.Selected, strings.Join(d.Candidates, ","))
	}
}
