package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unglish/unglish-go/language"
)

var configFlags struct {
	out string
}

var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Validate a language config, or dump the built-in English one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configFlags.out, "out", "o", "", "Write the config as YAML to a file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	var cfg *language.Config
	if len(args) == 1 {
		loaded, err := language.LoadFile(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = language.English()
	}

	if _, err := language.Compile(cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configFlags.out != "" {
		f, err := os.Create(configFlags.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		return cfg.Dump(f)
	}

	if len(args) == 1 {
		fmt.Fprintf(out, "%s: ok (%d phonemes, %d graphemes)\n", args[0], len(cfg.Phonemes), len(cfg.Graphemes))
		return nil
	}
	return cfg.Dump(out)
}
