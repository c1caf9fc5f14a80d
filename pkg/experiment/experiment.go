package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/logging"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/bench"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/generator"
)

// Measurement is what one machine did in one simulation.
type Measurement struct {
	PeakMemoryBytes uint64
	AvgMemPerOp     float64
	OutputBytes     int
	Elapsed         time.Duration
	OpsPerSecond    float64
	Completed       int
}

func measure(rep *bench.Report) Measurement {
	return Measurement{
		PeakMemoryBytes: rep.PeakMemoryBytes,
		AvgMemPerOp:     rep.AvgMemoryPerOp(),
		OutputBytes:     rep.OutputBytes(),
		Elapsed:         rep.Elapsed,
		OpsPerSecond:    rep.OpsPerSecond(),
		Completed:       rep.Completed,
	}
}

// Row is one simulation.
type Row struct {
	Simulation int
	Length     int
	OpsPerEq   int
	// EquationsWithDivision counts equations holding at least one '/'.
	EquationsWithDivision int
	// DivisionOps counts '/' operators, each a zero-division candidate.
	DivisionOps int
	STD         Measurement
	DBZ         Measurement
}

// Result is a finished experiment.
type Result struct {
	RunID    uuid.UUID
	Config   Config
	Started  time.Time
	Finished time.Time
	Rows     []Row
}

// Option defines a functional option for configuring a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMachineOptions configures both machines, for example with a product rule.
func WithMachineOptions(opts ...calculator.Option) Option {
	return func(r *Runner) {
		r.machineOpts = append(r.machineOpts, opts...)
	}
}

// WithProgress registers a callback invoked after each simulation.
func WithProgress(fn func(Row)) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// WithRegistry collects batch metrics of every simulation in reg.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Runner) {
		r.registry = reg
	}
}

// Runner executes experiments.
type Runner struct {
	cfg         Config
	logger      *slog.Logger
	machineOpts []calculator.Option
	progress    func(Row)
	registry    *prometheus.Registry
}

// New validates cfg and creates a runner.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}
	return r, nil
}

// Run executes every simulation in order. Cancelling ctx stops the experiment
// after the current batch; rows finished so far are returned with the error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: uuid.New(), Config: r.cfg, Started: time.Now()}
	logger := r.logger.With("run_id", res.RunID.String())
	logger.Info("experiment started",
		"simulations", r.cfg.Simulations,
		"equations_per_sim", r.cfg.EquationsPerSim,
		"seed", r.cfg.Seed,
	)

	std, err := bench.New(calculator.NewSTD(r.machineOpts...), r.benchOptions(logger)...)
	if err != nil {
		return nil, err
	}
	dbz, err := bench.New(calculator.NewDBZ(r.machineOpts...), r.benchOptions(logger)...)
	if err != nil {
		return nil, err
	}

	for sim := 1; sim <= r.cfg.Simulations; sim++ {
		row, err := r.simulate(ctx, sim, std, dbz)
		if err != nil {
			res.Finished = time.Now()
			return res, fmt.Errorf("experiment: simulation %d: %w", sim, err)
		}
		res.Rows = append(res.Rows, row)
		logger.Info("simulation finished",
			"simulation", sim,
			"length", row.Length,
			"std_completed", row.STD.Completed,
			"std_elapsed", row.STD.Elapsed,
			"dbz_completed", row.DBZ.Completed,
			"dbz_elapsed", row.DBZ.Elapsed,
		)
		if r.progress != nil {
			r.progress(row)
		}
	}

	res.Finished = time.Now()
	return res, nil
}

func (r *Runner) benchOptions(logger *slog.Logger) []bench.Option {
	return []bench.Option{
		bench.WithWorkers(r.cfg.Workers),
		bench.WithLogger(logger),
		bench.WithRegistry(r.registry),
	}
}

func (r *Runner) simulate(ctx context.Context, sim int, std, dbz *bench.Runner) (Row, error) {
	length := r.cfg.Length(sim)
	eqs, err := generator.Generate(r.cfg.generatorConfig(sim), r.cfg.EquationsPerSim)
	if err != nil {
		return Row{}, err
	}
	withDiv, divOps := generator.CountDivisions(eqs)

	stdReport, err := std.Run(ctx, eqs)
	if err != nil {
		return Row{}, err
	}
	dbzReport, err := dbz.Run(ctx, eqs)
	if err != nil {
		return Row{}, err
	}

	return Row{
		Simulation:            sim,
		Length:                generator.NormalizeLength(length),
		OpsPerEq:              (generator.NormalizeLength(length) - 1) / 2,
		EquationsWithDivision: withDiv,
		DivisionOps:           divOps,
		STD:                   measure(stdReport),
		DBZ:                   measure(dbzReport),
	}, nil
}
