package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values and captured output.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dbzcalc version")
}

func TestEval(t *testing.T) {
	out, _, err := execute(t, "", "eval", "1,0,0 / 0,0,0 + 2,1,0")
	require.NoError(t, err)
	assert.Equal(t, "STD: ERR\nDBZ: 2,1,1\n", out)

	out, _, err = execute(t, "", "eval", "--policy", "std", "1,0,0", "+", "2,0,0", "*", "3,0,0")
	require.NoError(t, err)
	assert.Equal(t, "7,0,0\n", out)

	out, _, err = execute(t, "", "eval", "--policy", "dbz", "--rule", "table16", "0,0,1 * 0,0,1")
	require.NoError(t, err)
	assert.Equal(t, "1,0,0\n", out)
}

func TestEval_Errors(t *testing.T) {
	_, _, err := execute(t, "", "eval", "+ 1,0,0")
	assert.Error(t, err)

	_, _, err = execute(t, "", "eval", "--policy", "fast", "1,0,0")
	assert.Error(t, err)

	_, _, err = execute(t, "", "eval", "--rule", "nope", "1,0,0")
	assert.Error(t, err)
}

func TestBatch_Stdin(t *testing.T) {
	input := "1,0,0 + 2,0,0 * 3,0,0\n\n1,0,0 / 0,0,0\n"

	out, errOut, err := execute(t, input, "std", "-", "--summary", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "7,0,0\nERR\n", out)
	assert.Contains(t, errOut, "STD Calculator Summary")
	assert.Contains(t, errOut, "DBZ aborts (ERR)      : 1")

	out, errOut, err = execute(t, input, "dbz", "-")
	require.NoError(t, err)
	assert.Equal(t, "7,0,0\n0,0,1\n", out)
	assert.Empty(t, errOut)
}

func TestBatch_FileOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "equations.txt")
	outPath := filepath.Join(dir, "results.txt")
	metrics := filepath.Join(dir, "dbz.prom")
	require.NoError(t, os.WriteFile(in, []byte("1,0,0 / 0,0,0\n2,0,0 - 1,0,0\n"), 0o644))

	_, errOut, err := execute(t, "", "dbz", in, "-o", outPath, "--metrics", metrics)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Output size (bytes)   : 12")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "0,0,1\n1,0,0\n", string(data))

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "dbzcalc_equations_total")
}

func TestGenerate(t *testing.T) {
	first, _, err := execute(t, "", "generate", "-n", "5", "--seed", "9", "--max-len", "9")
	require.NoError(t, err)
	second, _, err := execute(t, "", "generate", "-n", "5", "--seed", "9", "--max-len", "9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.LessOrEqual(t, len(strings.Fields(l)), 9)
	}

	_, _, err = execute(t, "", "generate", "--min-val", "5", "--max-val", "1")
	assert.Error(t, err)
}

func TestExperiment(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "results.csv")
	out, errOut, err := execute(t, "", "experiment", "--sims", "2", "--eq-per-sim", "10", "-o", csvPath, "--markdown")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Sim  1")
	assert.Contains(t, errOut, "Results written to")
	assert.Contains(t, out, "| Sim | L |")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Simulation,Length_L,Ops_per_eq"))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbzcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algebra:\n  rule: table16\n"), 0o644))

	out, _, err := execute(t, "", "--config", path, "eval", "--policy", "std", "0,0,1 * 0,0,1")
	require.NoError(t, err)
	assert.Equal(t, "1,0,0\n", out)
}
