package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random equations, one per line",
	Long: `Generates equations of odd token length with integer components drawn uniformly
from [min-val, max-val]. The same seed and ranges always produce the same file.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntP("count", "n", 0, "Number of equations (default: config, 1000)")
	f.Int("min-val", 0, "Smallest component value")
	f.Int("max-val", 0, "Largest component value")
	f.Int("min-len", 0, "Shortest equation length in tokens")
	f.Int("max-len", 0, "Longest equation length in tokens")
	f.Int64("seed", 0, "Random seed (0 means the default seed)")
	f.StringP("output", "o", "", "Write equations to this file (default: stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gc := app.cfg.Generator
	f := cmd.Flags()
	overrideInt(cmd, "count", &gc.Count)
	overrideInt(cmd, "min-val", &gc.MinValue)
	overrideInt(cmd, "max-val", &gc.MaxValue)
	overrideInt(cmd, "min-len", &gc.MinLength)
	overrideInt(cmd, "max-len", &gc.MaxLength)
	if f.Changed("seed") {
		gc.Seed, _ = f.GetInt64("seed")
	}
	app.cfg.Generator = gc

	equations, err := generator.Generate(app.cfg.GeneratorConfig(), gc.Count)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	outPath, _ := f.GetString("output")
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	for _, eq := range equations {
		if _, err := fmt.Fprintln(out, eq); err != nil {
			return err
		}
	}

	withDiv, divOps := generator.CountDivisions(equations)
	app.logger.Info("equations generated",
		"count", len(equations),
		"with_division", withDiv,
		"division_ops", divOps,
		"seed", gc.Seed,
	)
	if outPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d equations to %s\n", len(equations), outPath)
	}
	return nil
}

// overrideInt copies an explicitly set int flag into dst.
func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}
