package bench

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/logging"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
)

// DefaultSampleInterval is how often heap usage is sampled during a run.
const DefaultSampleInterval = 2 * time.Millisecond

// Hooks are optional callbacks invoked around a batch.
// OnResult runs on worker goroutines and must be safe for concurrent use.
type Hooks struct {
	OnStart  func(ctx context.Context, policy algebra.DivisionPolicy, submitted int)
	OnResult func(ctx context.Context, res Result)
	OnFinish func(ctx context.Context, report *Report)
}

// Option defines a functional option for configuring a Runner.
type Option func(*Runner)

// WithWorkers sets the number of concurrent evaluations. Values below 1 mean
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithHooks registers batch callbacks.
func WithHooks(hooks Hooks) Option {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// WithRegistry registers the runner's collectors in reg instead of a private
// registry. Runners sharing a registry share their collectors.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Runner) {
		r.registry = reg
	}
}

// WithSampleInterval sets the heap sampling period.
func WithSampleInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.sampleInterval = d
	}
}

func (r *Runner) applyDefaults() {
	if r.workers < 1 {
		r.workers = runtime.NumCPU()
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}
	if r.sampleInterval <= 0 {
		r.sampleInterval = DefaultSampleInterval
	}
}
