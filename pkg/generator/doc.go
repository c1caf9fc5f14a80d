// Package generator produces random, well-formed infix equations of
// semi-structured complex numbers for benchmarks and experiments.
//
// Equations alternate operand and operator, start and end with an operand, and
// contain no parentheses. Every component of every operand is drawn uniformly from
// [MinValue, MaxValue]; operators are drawn uniformly from + - * /.
//
// Generation is deterministic: the same Config always yields the same sequence.
// A Generator wraps a *rand.Rand and must not be shared between goroutines.
package generator
