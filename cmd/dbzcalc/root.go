package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/config"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/logging"
)

// app holds what PersistentPreRunE resolved for the running command.
var app struct {
	cfg    config.Config
	logger *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "dbzcalc",
	Short: "Calculator for semi-structured complex numbers with total division",
	Long: `dbzcalc evaluates space-separated equations over triples x,y,z = x + yi + zp.

The STD machine aborts an equation on division by zero and reports ERR.
The DBZ machine returns p = 0,0,1 for a zero divisor and always finishes.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML or TOML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("rule", "", "Product rule for p-valued operands (absorbing|table16)")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rule") {
		cfg.Algebra.Rule, _ = cmd.Flags().GetString("rule")
		if _, err := cfg.ProductRule(); err != nil {
			return err
		}
	}

	app.cfg = cfg
	app.logger = logging.New(cmd.ErrOrStderr(), logging.Level(debug))
	app.logger.Debug("settings loaded", "config", path, "rule", cfg.Algebra.Rule)
	return nil
}

// machineOptions returns the calculator options implied by the settings.
func machineOptions() ([]calculator.Option, error) {
	rule, err := app.cfg.ProductRule()
	if err != nil {
		return nil, err
	}
	return []calculator.Option{calculator.WithProductRule(rule)}, nil
}
