package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/presentation/tui"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <equation>",
	Short: "Evaluate one equation",
	Long: `Evaluates a single equation and prints the result of each selected machine.
The equation may be quoted or given as separate arguments:

  dbzcalc eval "1,0,0 / 0,0,0 + 2,1,0"
  dbzcalc eval --policy std 1,0,0 + 2,0,0 '*' 3,0,0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("policy", "both", "Division policy: std, dbz or both")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	policyName, _ := cmd.Flags().GetString("policy")
	equation := strings.Join(args, " ")

	var policies []algebra.DivisionPolicy
	if policyName == "both" {
		policies = []algebra.DivisionPolicy{algebra.STD, algebra.DBZ}
	} else {
		p, err := algebra.ParsePolicy(policyName)
		if err != nil {
			return err
		}
		policies = []algebra.DivisionPolicy{p}
	}

	opts, err := machineOptions()
	if err != nil {
		return err
	}
	prog, err := calculator.Compile(equation)
	if err != nil {
		return err
	}
	app.logger.Debug("compiled", "postfix", prog.String(), "operators", prog.Operators())

	out := cmd.OutOrStdout()
	profile := tui.Profile(out)
	for _, policy := range policies {
		var text string
		ok := true
		switch policy {
		case algebra.STD:
			v, err := calculator.NewSTD(opts...).Run(prog)
			text, ok = calculator.FormatResult(v, err), err == nil
		case algebra.DBZ:
			text = calculator.FormatResult(calculator.NewDBZ(opts...).Run(prog), nil)
		}
		if len(policies) == 1 {
			fmt.Fprintln(out, tui.Status(profile, text, ok))
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(policy.String()), tui.Status(profile, text, ok))
	}
	return nil
}
