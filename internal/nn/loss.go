package nn

import (
	"fmt"

	"github.com/born-ml/dualfit/internal/dual"
)

// MSE computes the per-sample cost of a dual-mode output layer.
//
// Loss = Σ_k (target_k - output_k)² / len(output)
//
// Each term is built with dual subtraction, Pow(·, 2) and division by a
// constant, so the result's partials are the gradient of the loss.
// outputs must not be empty.
func MSE(outputs []dual.Number, target []float64) dual.Number {
	if len(outputs) != len(target) {
		panic(fmt.Sprintf("nn.MSE: %d outputs but %d targets", len(outputs), len(target)))
	}

	numVars := outputs[0].NumVars()
	size := dual.Constant(numVars, float64(len(outputs)))

	cost := dual.Zero(numVars)
	for k, y := range outputs {
		diff := dual.Sub(dual.Constant(numVars, target[k]), y)
		cost = dual.Add(cost, dual.Div(dual.Pow(diff, 2), size))
	}
	return cost
}

// MSEReal computes the same loss as MSE on plain floats.
func MSEReal(outputs, target []float64) float64 {
	if len(outputs) != len(target) {
		panic(fmt.Sprintf("nn.MSEReal: %d outputs but %d targets", len(outputs), len(target)))
	}

	size := float64(len(outputs))
	var cost float64
	for k, y := range outputs {
		d := target[k] - y
		cost += d * d / size
	}
	return cost
}
