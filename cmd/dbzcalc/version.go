package main

import (
	"fmt"

	"github.com/spf13/cobra"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dbzcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dbzcalc version %s\n", calculator.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
