package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Columns is the CSV header written by WriteCSV.
var Columns = []string{
	"Simulation", "Length_L", "Ops_per_eq", "N_eq_with_DBZ", "Total_DBZ_ops",
	"STD_peak_memory_bytes", "STD_avg_mem_per_op", "STD_output_bytes",
	"STD_time_s", "STD_ops_per_s", "STD_eq_completed",
	"DBZ_peak_memory_bytes", "DBZ_avg_mem_per_op", "DBZ_output_bytes",
	"DBZ_time_s", "DBZ_ops_per_s", "DBZ_eq_completed",
}

// WriteCSV writes a header and one record per row.
func (res *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, row := range res.Rows {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (row Row) record() []string {
	rec := []string{
		strconv.Itoa(row.Simulation),
		strconv.Itoa(row.Length),
		strconv.Itoa(row.OpsPerEq),
		strconv.Itoa(row.EquationsWithDivision),
		strconv.Itoa(row.DivisionOps),
	}
	rec = append(rec, row.STD.fields()...)
	return append(rec, row.DBZ.fields()...)
}

func (m Measurement) fields() []string {
	return []string{
		strconv.FormatUint(m.PeakMemoryBytes, 10),
		formatRounded(m.AvgMemPerOp, 4),
		strconv.Itoa(m.OutputBytes),
		formatRounded(m.Elapsed.Seconds(), 6),
		formatRounded(m.OpsPerSecond, 0),
		strconv.Itoa(m.Completed),
	}
}

func formatRounded(v float64, places int) string {
	p := math.Pow10(places)
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', -1, 64)
}

// Markdown renders the result as a Markdown document with one table row per simulation.
func (res *Result) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# STD vs DBZ benchmark\n\n")
	fmt.Fprintf(&b, "Run `%s`: %d simulations, %d equations each, seed %d, values in [%d, %d].\n\n",
		res.RunID, res.Config.Simulations, res.Config.EquationsPerSim, res.Config.Seed,
		res.Config.MinValue, res.Config.MaxValue)

	b.WriteString("| Sim | L | Eq with / | / ops | STD done | STD time (s) | STD peak (B) | DBZ done | DBZ time (s) | DBZ peak (B) |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, r := range res.Rows {
		fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %.4f | %d | %d | %.4f | %d |\n",
			r.Simulation, r.Length, r.EquationsWithDivision, r.DivisionOps,
			r.STD.Completed, r.STD.Elapsed.Seconds(), r.STD.PeakMemoryBytes,
			r.DBZ.Completed, r.DBZ.Elapsed.Seconds(), r.DBZ.PeakMemoryBytes)
	}

	var stdDone, dbzDone, total int
	for _, r := range res.Rows {
		stdDone += r.STD.Completed
		dbzDone += r.DBZ.Completed
		total += res.Config.EquationsPerSim
	}
	fmt.Fprintf(&b, "\nSTD completed %d of %d equations; DBZ completed %d.\n", stdDone, total, dbzDone)
	return b.String()
}
