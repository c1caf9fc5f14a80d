package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// ErrNilMachine is returned by New when no machine is given.
var ErrNilMachine = errors.New("bench: nil machine")

// Runner evaluates batches of equations with a fixed machine.
// A Runner may be reused; concurrent Run calls share its metrics.
type Runner struct {
	machine        calculator.Machine
	workers        int
	logger         *slog.Logger
	hooks          Hooks
	registry       *prometheus.Registry
	sampleInterval time.Duration
	metrics        *metrics
}

// New creates a runner for m.
func New(m calculator.Machine, opts ...Option) (*Runner, error) {
	if m == nil {
		return nil, ErrNilMachine
	}
	r := &Runner{machine: m}
	for _, opt := range opts {
		opt(r)
	}
	r.applyDefaults()

	met, err := newMetrics(r.registry)
	if err != nil {
		return nil, fmt.Errorf("bench: register metrics: %w", err)
	}
	r.metrics = met
	return r, nil
}

// Workers returns the size of the worker pool.
func (r *Runner) Workers() int { return r.workers }

// Registry returns the registry holding the runner's collectors.
func (r *Runner) Registry() *prometheus.Registry { return r.registry }

// WriteMetrics writes the registry to path in the Prometheus text format.
func (r *Runner) WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Run evaluates equations and returns a report with one result per equation, in
// input order. Cancelling ctx stops dispatching; equations already being evaluated
// finish, the rest are reported as cancelled and Run returns ctx.Err() alongside
// the partial report.
func (r *Runner) Run(ctx context.Context, equations []string) (*Report, error) {
	policy := r.machine.Policy()
	label := policy.String()
	results := make([]Result, len(equations))

	if r.hooks.OnStart != nil {
		r.hooks.OnStart(ctx, policy, len(equations))
	}
	r.logger.Debug("batch started", "policy", label, "equations", len(equations), "workers", r.workers)

	sampler := startSampler(r.sampleInterval)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, eq := range equations {
		if gctx.Err() != nil {
			break
		}
		i, eq := i, eq
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			begin := time.Now()
			res := r.evaluate(i, eq)
			r.metrics.observe(label, res, time.Since(begin))
			results[i] = res
			if r.hooks.OnResult != nil {
				r.hooks.OnResult(gctx, res)
			}
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)
	peak, allocated := sampler.stop()

	report := &Report{
		Policy:          policy,
		Submitted:       len(equations),
		Elapsed:         elapsed,
		PeakMemoryBytes: peak,
		AllocatedBytes:  allocated,
		Results:         results,
	}
	for i := range results {
		res := &results[i]
		if res.Outcome == OutcomeCancelled {
			res.Index = i
			res.Equation = equations[i]
			res.Err = context.Canceled
			r.metrics.observe(label, *res, 0)
		}
		report.count(*res)
	}

	r.logger.Info("batch finished",
		"policy", label,
		"submitted", report.Submitted,
		"completed", report.Completed,
		"division_by_zero", report.DivisionByZero,
		"failed", report.Failed,
		"cancelled", report.Cancelled,
		"elapsed", report.Elapsed,
	)
	if r.hooks.OnFinish != nil {
		r.hooks.OnFinish(ctx, report)
	}
	return report, ctx.Err()
}

func (r *Runner) evaluate(i int, eq string) Result {
	v, err := r.machine.Evaluate(eq)
	res := Result{Index: i, Equation: eq, Value: v, Err: err}
	switch {
	case err == nil:
		res.Outcome = OutcomeCompleted
		res.Operators = len(strings.Fields(eq)) / 2
	case errors.Is(err, domain.ErrDivisionByZero):
		res.Outcome = OutcomeDivisionByZero
	default:
		res.Outcome = OutcomeFailed
		r.logger.Debug("equation failed", "index", i, "err", err)
	}
	return res
}

// sampler tracks heap growth above the level seen when it started.
type sampler struct {
	baseHeap  uint64
	baseTotal uint64
	peak      uint64
	done      chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
}

func startSampler(interval time.Duration) *sampler {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := &sampler{baseHeap: ms.HeapAlloc, baseTotal: ms.TotalAlloc, done: make(chan struct{})}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.sample()
			}
		}
	}()
	return s
}

func (s *sampler) sample() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.mu.Lock()
	defer s.mu.Unlock()
	if ms.HeapAlloc > s.baseHeap && ms.HeapAlloc-s.baseHeap > s.peak {
		s.peak = ms.HeapAlloc - s.baseHeap
	}
	return ms.TotalAlloc
}

// stop ends sampling and returns the peak heap growth and the bytes allocated
// since start.
func (s *sampler) stop() (peak, allocated uint64) {
	close(s.done)
	s.wg.Wait()
	total := s.sample()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak, total - s.baseTotal
}
