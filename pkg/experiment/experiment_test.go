package experiment_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/experiment"
)

func smallConfig() experiment.Config {
	cfg := experiment.DefaultConfig()
	cfg.Simulations = 3
	cfg.EquationsPerSim = 40
	cfg.Workers = 2
	return cfg
}

func TestRun(t *testing.T) {
	var seen []int
	r, err := experiment.New(smallConfig(), experiment.WithProgress(func(row experiment.Row) {
		seen = append(seen, row.Simulation)
	}))
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.RunID)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, []int{1, 2, 3}, seen)

	for i, row := range res.Rows {
		assert.Equal(t, i+1, row.Simulation)
		assert.Equal(t, 5+20*i, row.Length)
		assert.Equal(t, (row.Length-1)/2, row.OpsPerEq)
		assert.Equal(t, 40, row.DBZ.Completed, "DBZ is total")
		assert.LessOrEqual(t, row.STD.Completed, 40)
		assert.GreaterOrEqual(t, row.STD.Completed, 40-row.EquationsWithDivision)
		assert.LessOrEqual(t, row.EquationsWithDivision, row.DivisionOps)
		assert.Greater(t, row.DBZ.OutputBytes, 0)
	}
	assert.False(t, res.Finished.Before(res.Started))
}

func TestRun_Reproducible(t *testing.T) {
	run := func() []experiment.Row {
		r, err := experiment.New(smallConfig())
		require.NoError(t, err)
		res, err := r.Run(context.Background())
		require.NoError(t, err)
		return res.Rows
	}
	a, b := run(), run()
	for i := range a {
		assert.Equal(t, a[i].EquationsWithDivision, b[i].EquationsWithDivision)
		assert.Equal(t, a[i].DivisionOps, b[i].DivisionOps)
		assert.Equal(t, a[i].STD.Completed, b[i].STD.Completed)
		assert.Equal(t, a[i].STD.OutputBytes, b[i].STD.OutputBytes)
		assert.Equal(t, a[i].DBZ.OutputBytes, b[i].DBZ.OutputBytes)
	}
}

func TestRun_MachineOptions(t *testing.T) {
	r, err := experiment.New(smallConfig(), experiment.WithMachineOptions(calculator.WithProductRule(algebra.Table16)))
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Rows, 3)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := experiment.New(smallConfig())
	require.NoError(t, err)
	res, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Rows)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, experiment.DefaultConfig().Validate())

	for name, mutate := range map[string]func(*experiment.Config){
		"no simulations": func(c *experiment.Config) { c.Simulations = 0 },
		"no equations":   func(c *experiment.Config) { c.EquationsPerSim = 0 },
		"short base":     func(c *experiment.Config) { c.BaseLength = 1 },
		"negative step":  func(c *experiment.Config) { c.LengthIncrement = -1 },
		"inverted range": func(c *experiment.Config) { c.MinValue = 2 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			mutate(&cfg)
			_, err := experiment.New(cfg)
			assert.ErrorIs(t, err, experiment.ErrInvalidConfig)
		})
	}
	assert.Equal(t, 385, experiment.DefaultConfig().Length(20))
}

func TestWriteCSV(t *testing.T) {
	r, err := experiment.New(smallConfig())
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, experiment.Columns, records[0])
	assert.Len(t, records[0], 17)
	assert.Equal(t, []string{"1", "5", "2"}, records[1][:3])
	assert.Equal(t, "40", records[1][16])
}

func TestMarkdown(t *testing.T) {
	r, err := experiment.New(smallConfig())
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	md := res.Markdown()
	assert.Contains(t, md, res.RunID.String())
	assert.Contains(t, md, "| Sim | L |")
	assert.Contains(t, md, "DBZ completed 120.")
}
