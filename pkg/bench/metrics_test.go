package bench

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
)

func TestSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	std, err := New(calculator.NewSTD(), WithRegistry(reg))
	require.NoError(t, err)
	dbz, err := New(calculator.NewDBZ(), WithRegistry(reg))
	require.NoError(t, err)
	assert.Same(t, std.metrics.outcomes, dbz.metrics.outcomes)

	eqs := []string{"1,0,0 / 0,0,0", "1,0,0 + 1,0,0"}
	_, err = std.Run(context.Background(), eqs)
	require.NoError(t, err)
	_, err = dbz.Run(context.Background(), eqs)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(std.metrics.outcomes.WithLabelValues("std", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(std.metrics.outcomes.WithLabelValues("std", "division_by_zero")))
	assert.Equal(t, 2.0, testutil.ToFloat64(dbz.metrics.outcomes.WithLabelValues("dbz", "completed")))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "cancelled", OutcomeCancelled.String())
	assert.Equal(t, "division_by_zero", OutcomeDivisionByZero.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
