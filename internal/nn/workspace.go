package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/dualfit/internal/dual"
)

// Workspace holds pre-sized neuron-value buffers for forward passes.
//
// Every pass overwrites the buffers from the input layer up; nothing carries
// over between calls. A Workspace reads its network's parameters but never
// writes them, so several workspaces may evaluate the same network
// concurrently as long as no one updates the parameters meanwhile.
// A single Workspace is not safe for concurrent use.
type Workspace struct {
	net   *Network
	duals [][]dual.Number // [layer][neuron], layer 0 is the input
	reals [][]float64     // [layer][neuron], layer 0 is the input
}

// NewWorkspace allocates a workspace sized for this network.
func (n *Network) NewWorkspace() *Workspace {
	ws := &Workspace{
		net:   n,
		duals: make([][]dual.Number, len(n.layers)),
		reals: make([][]float64, len(n.layers)),
	}
	for l, size := range n.layers {
		ws.duals[l] = make([]dual.Number, size)
		ws.reals[l] = make([]float64, size)
	}
	return ws
}

// ForwardDual evaluates the network on input and returns the cost against
// target as a dual number.
//
// Inputs enter as constants. Every bias and weight enters as a tracked
// variable at its Index slot, so the returned Number has:
//   - Real(): the mean squared error of this sample
//   - Partial(i): the exact derivative of that error with respect to parameter i
//
// Panics if input or target length does not match the input or output layer.
func (ws *Workspace) ForwardDual(input, target []float64) dual.Number {
	n := ws.net
	n.checkInput("ForwardDual", input)
	if len(target) != n.OutputSize() {
		panic(fmt.Sprintf("nn.ForwardDual: expected target of length %d, got %d", n.OutputSize(), len(target)))
	}

	numVars := n.NumVars()
	for j, v := range input {
		ws.duals[0][j] = dual.Constant(numVars, v)
	}

	for l, layer := range n.weights {
		prev := ws.duals[l]
		cur := ws.duals[l+1]
		for j, w := range layer {
			// Pre-activation starts at the bias, tracked as its own variable.
			z := dual.Variable(numVars, n.biases[l][j], n.index.Bias(l, j))
			for k, wk := range w {
				weight := dual.Variable(numVars, wk, n.index.Weight(l, j, k))
				z = dual.Add(z, dual.Mul(weight, prev[k]))
			}
			cur[j] = n.activation.Dual(z)
		}
	}

	return MSE(ws.duals[len(ws.duals)-1], target)
}

// ForwardReal evaluates the network on input with plain float arithmetic.
//
// No gradient is tracked. Returns a fresh output slice of the output layer's width.
//
// Panics if input length does not match the input layer.
func (ws *Workspace) ForwardReal(input []float64) []float64 {
	n := ws.net
	n.checkInput("ForwardReal", input)

	copy(ws.reals[0], input)
	for l, layer := range n.weights {
		prev := ws.reals[l]
		cur := ws.reals[l+1]
		for j, w := range layer {
			cur[j] = n.activation.Real(n.biases[l][j] + floats.Dot(w, prev))
		}
	}

	out := make([]float64, n.OutputSize())
	copy(out, ws.reals[len(ws.reals)-1])
	return out
}

func (n *Network) checkInput(op string, input []float64) {
	if len(input) != n.InputSize() {
		panic(fmt.Sprintf("nn.%s: expected input of length %d, got %d", op, n.InputSize(), len(input)))
	}
}
