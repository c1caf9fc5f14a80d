/*
Package bench runs batches of equations through a calculator.Machine and measures them.

A Runner fans equations out over a bounded pool of workers and writes each result
into the slot of its input, so Report.Results is in input order regardless of
scheduling. One equation failing never stops the batch; the Report counts every
outcome and records elapsed time, heap growth and throughput.

Each Runner owns a Prometheus registry holding an evaluation-duration histogram and
per-outcome counters. Nothing is served over the network; use WriteMetrics to dump
the registry in the text exposition format.

	r, err := bench.New(calculator.NewSTD(), bench.WithWorkers(4))
	if err != nil {
		return err
	}
	report, err := r.Run(ctx, equations)
*/
package bench
