package bench

import (
	"bytes"
	"io"
	"time"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
)

// Report summarises one batch.
type Report struct {
	Policy         algebra.DivisionPolicy
	Submitted      int
	Completed      int
	DivisionByZero int
	Failed         int
	Cancelled      int
	// Operators is the number of operators applied by completed equations.
	Operators int

	Elapsed time.Duration
	// PeakMemoryBytes is the largest sampled heap growth during the run.
	PeakMemoryBytes uint64
	// AllocatedBytes is the total allocated during the run, including freed memory.
	AllocatedBytes uint64

	Results []Result
}

func (r *Report) count(res Result) {
	switch res.Outcome {
	case OutcomeCompleted:
		r.Completed++
		r.Operators += res.Operators
	case OutcomeDivisionByZero:
		r.DivisionByZero++
	case OutcomeFailed:
		r.Failed++
	default:
		r.Cancelled++
	}
}

// OpsPerSecond returns applied operators per second of elapsed time.
func (r *Report) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Operators) / r.Elapsed.Seconds()
}

// AvgMemoryPerOp returns PeakMemoryBytes divided by Operators, or 0 without operators.
func (r *Report) AvgMemoryPerOp() float64 {
	if r.Operators == 0 {
		return 0
	}
	return float64(r.PeakMemoryBytes) / float64(r.Operators)
}

// WriteOutput writes one result line per evaluated equation. Cancelled equations
// are skipped.
func (r *Report) WriteOutput(w io.Writer) (int64, error) {
	var n int64
	for _, res := range r.Results {
		if res.Outcome == OutcomeCancelled {
			continue
		}
		m, err := io.WriteString(w, res.Text()+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Output returns the text WriteOutput would write.
func (r *Report) Output() []byte {
	var buf bytes.Buffer
	_, _ = r.WriteOutput(&buf)
	return buf.Bytes()
}

// OutputBytes returns len(Output()).
func (r *Report) OutputBytes() int {
	return len(r.Output())
}
