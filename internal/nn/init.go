package nn

import "math/rand"

// Uniform returns n values drawn from U(-bound, bound).
//
// Used for both weights and biases.
func Uniform(rng *rand.Rand, n int, bound float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return data
}
