// Command dbzcalc evaluates equations over semi-structured complex numbers with the
// STD and DBZ machines, generates test batches and runs the benchmark experiment.
package main

func main() {
	Execute()
}
