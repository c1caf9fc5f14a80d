package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/presentation/tui"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/bench"
)

var stdCmd = newBatchCmd(algebra.STD, "Evaluate an equations file with the STD machine (zero divisor gives ERR)")

var dbzCmd = newBatchCmd(algebra.DBZ, "Evaluate an equations file with the DBZ machine (zero divisor gives 0,0,1)")

func init() {
	rootCmd.AddCommand(stdCmd, dbzCmd)
}

func newBatchCmd(policy algebra.DivisionPolicy, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   policy.String() + " <file>",
		Short: short,
		Long: `Reads one equation per line (blank lines skipped, "-" reads stdin) and writes
one result per line. The summary goes to stderr and is printed with --summary or
whenever results are written to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, policy, args[0])
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write results to this file (default: stdout)")
	cmd.Flags().Bool("summary", false, "Print a benchmark summary to stderr")
	cmd.Flags().Int("workers", 0, "Concurrent evaluations (default: config, then one per CPU)")
	cmd.Flags().String("metrics", "", "Write Prometheus metrics to this file")
	return cmd
}

func runBatch(cmd *cobra.Command, policy algebra.DivisionPolicy, path string) error {
	outPath, _ := cmd.Flags().GetString("output")
	summary, _ := cmd.Flags().GetBool("summary")
	metricsPath, _ := cmd.Flags().GetString("metrics")
	workers := app.cfg.Bench.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}

	var equations []string
	var err error
	if path == "-" {
		equations, err = bench.ReadEquations(cmd.InOrStdin())
	} else {
		equations, err = bench.ReadEquationsFile(path)
	}
	if err != nil {
		return err
	}

	opts, err := machineOptions()
	if err != nil {
		return err
	}
	m, err := calculator.New(policy, opts...)
	if err != nil {
		return err
	}
	runner, err := bench.New(m, bench.WithWorkers(workers), bench.WithLogger(app.logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt)
	defer stop()
	report, runErr := runner.Run(ctx, equations)
	if runErr != nil && report == nil {
		return runErr
	}

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	written, err := report.WriteOutput(out)
	if err != nil {
		return err
	}

	if summary || outPath != "" {
		printSummary(cmd.ErrOrStderr(), report, outPath != "", written)
	}
	if metricsPath != "" {
		if err := runner.WriteMetrics(metricsPath); err != nil {
			return err
		}
	}
	return runErr
}

func printSummary(w io.Writer, r *bench.Report, toFile bool, written int64) {
	p := tui.Profile(w)
	title := fmt.Sprintf("--- %s Calculator Summary ---", strings.ToUpper(r.Policy.String()))

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.Header(p, title))
	fmt.Fprintf(w, "  Equations submitted   : %d\n", r.Submitted)
	fmt.Fprintf(w, "  Equations completed   : %d\n", r.Completed)
	if r.Policy == algebra.STD {
		fmt.Fprintf(w, "  DBZ aborts (ERR)      : %d\n", r.DivisionByZero)
	}
	if r.Failed > 0 {
		fmt.Fprintf(w, "  Malformed (ERR:...)   : %d\n", r.Failed)
	}
	if r.Cancelled > 0 {
		fmt.Fprintf(w, "  Cancelled             : %d\n", r.Cancelled)
	}
	fmt.Fprintf(w, "  Processing time (s)   : %.6f\n", r.Elapsed.Seconds())
	fmt.Fprintf(w, "  Peak memory (bytes)   : %d\n", r.PeakMemoryBytes)
	fmt.Fprintf(w, "  Allocated (bytes)     : %d\n", r.AllocatedBytes)
	fmt.Fprintf(w, "  Operations/sec        : %.0f\n", r.OpsPerSecond())
	if toFile {
		fmt.Fprintf(w, "  Output size (bytes)   : %d\n", written)
	}
}

// contextOrBackground guards commands executed without a context.
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
