package nn

import (
	"fmt"

	"github.com/born-ml/dualfit/internal/dual"
)

// SubtractGradient performs one gradient-descent update.
//
// g is scaled by lr (multiplied by a constant dual number) and every weight
// and bias moves against its partial: param -= lr * g.Partial(Index slot).
//
// Panics if g does not track exactly NumVars variables.
func (n *Network) SubtractGradient(g dual.Number, lr float64) {
	if g.NumVars() != n.NumVars() {
		panic(fmt.Sprintf("nn.SubtractGradient: gradient has %d variables, network has %d", g.NumVars(), n.NumVars()))
	}

	scaled := dual.Mul(g, dual.Constant(n.NumVars(), lr))
	for l, layer := range n.weights {
		for j, w := range layer {
			n.biases[l][j] -= scaled.Partial(n.index.Bias(l, j))
			for k := range w {
				w[k] -= scaled.Partial(n.index.Weight(l, j, k))
			}
		}
	}
}

// Parameters returns all weights and biases as one vector in Index order.
func (n *Network) Parameters() []float64 {
	params := make([]float64, n.NumVars())
	for l, layer := range n.weights {
		for j, w := range layer {
			params[n.index.Bias(l, j)] = n.biases[l][j]
			for k, wk := range w {
				params[n.index.Weight(l, j, k)] = wk
			}
		}
	}
	return params
}

// SetParameters overwrites all weights and biases from a vector in Index order.
func (n *Network) SetParameters(params []float64) error {
	if len(params) != n.NumVars() {
		return fmt.Errorf("parameter vector has length %d, network has %d variables", len(params), n.NumVars())
	}
	for l, layer := range n.weights {
		for j, w := range layer {
			n.biases[l][j] = params[n.index.Bias(l, j)]
			for k := range w {
				w[k] = params[n.index.Weight(l, j, k)]
			}
		}
	}
	return nil
}
