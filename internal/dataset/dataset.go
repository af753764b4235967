// Package dataset generates training samples for the demonstration scenarios.
package dataset

import "math/rand"

// Func maps an input vector to a target vector.
type Func func(x []float64) []float64

// Uniform returns n vectors of the given width with entries drawn from U(lo, hi).
func Uniform(rng *rand.Rand, n, width int, lo, hi float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, width)
		for j := range out[i] {
			out[i][j] = lo + rng.Float64()*(hi-lo)
		}
	}
	return out
}

// FromFunc returns n uniform random inputs and the targets f produces for them.
func FromFunc(rng *rand.Rand, n, width int, lo, hi float64, f Func) (inputs, targets [][]float64) {
	inputs = Uniform(rng, n, width, lo, hi)
	targets = make([][]float64, n)
	for i, x := range inputs {
		targets[i] = f(x)
	}
	return inputs, targets
}

// Identity returns a copy of x.
func Identity(x []float64) []float64 {
	return append([]float64(nil), x...)
}

// Square returns the element-wise square of x.
func Square(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * v
	}
	return out
}

// Product returns the one-element vector {x[0] * x[1]}.
func Product(x []float64) []float64 {
	return []float64{x[0] * x[1]}
}

// XOR returns the four-sample XOR-like table scaled to 0.75.
func XOR() (inputs, targets [][]float64) {
	inputs = [][]float64{
		{0, 0},
		{0, 0.75},
		{0.75, 0},
		{0.75, 0.75},
	}
	targets = [][]float64{
		{0},
		{0.75},
		{0.75},
		{0},
	}
	return inputs, targets
}
