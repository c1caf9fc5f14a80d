package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/presentation/tui"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/experiment"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run the STD vs DBZ benchmark over growing equation lengths",
	Long: `Runs a series of simulations. Simulation s generates a batch of equations of
length base + (s-1)*increment with seed+s, evaluates it with both machines and
records time, memory, throughput and completions. Results are written as CSV.`,
	Args: cobra.NoArgs,
	RunE: runExperiment,
}

func init() {
	f := experimentCmd.Flags()
	f.Int("sims", 0, "Number of simulations (default: config, 20)")
	f.Int("eq-per-sim", 0, "Equations per simulation (default: config, 1000)")
	f.Int64("seed", 0, "Base random seed (default: config, 42)")
	f.Int("workers", 0, "Concurrent evaluations per batch")
	f.StringP("output", "o", "results.csv", "CSV output file; empty to skip")
	f.Bool("markdown", false, "Print a Markdown report to stdout")
	f.Bool("banner", false, "Print the banner first")
	f.String("metrics", "", "Write Prometheus metrics to this file")
	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	overrideInt(cmd, "sims", &app.cfg.Experiment.Simulations)
	overrideInt(cmd, "eq-per-sim", &app.cfg.Experiment.EquationsPerSim)
	overrideInt(cmd, "workers", &app.cfg.Bench.Workers)
	if f.Changed("seed") {
		app.cfg.Experiment.Seed, _ = f.GetInt64("seed")
	}
	outPath, _ := f.GetString("output")
	markdown, _ := f.GetBool("markdown")
	banner, _ := f.GetBool("banner")
	metricsPath, _ := f.GetString("metrics")

	opts, err := machineOptions()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	if banner {
		tui.PrintBanner(out, tui.Profile(out))
	}

	reg := prometheus.NewRegistry()
	runner, err := experiment.New(app.cfg.ExperimentConfig(),
		experiment.WithLogger(app.logger),
		experiment.WithMachineOptions(opts...),
		experiment.WithRegistry(reg),
		experiment.WithProgress(func(r experiment.Row) {
			fmt.Fprintf(errOut, "Sim %2d  L=%4d  STD: %4d done (%.4fs)  |  DBZ: %4d done (%.4fs)\n",
				r.Simulation, r.Length,
				r.STD.Completed, r.STD.Elapsed.Seconds(),
				r.DBZ.Completed, r.DBZ.Elapsed.Seconds())
		}),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt)
	defer stop()
	res, runErr := runner.Run(ctx)
	if res == nil {
		return runErr
	}

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := res.WriteCSV(file); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
		fmt.Fprintf(errOut, "Results written to: %s\n", outPath)
	}
	if markdown {
		rendered, err := tui.NewRenderer(out, 120)(res.Markdown())
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	}
	if metricsPath != "" {
		if err := prometheus.WriteToTextfile(metricsPath, reg); err != nil {
			return err
		}
	}
	return runErr
}
