// Package nn implements a fully connected feed-forward network trained with
// forward-mode dual-number differentiation.
//
// Every weight and bias owns one variable slot in the gradient vector (see
// Index). The dual forward pass seeds those slots as tracked variables, so the
// cost it returns carries the exact gradient with respect to every parameter
// without a separate backward sweep.
//
// Example:
//
//	net, err := nn.New([]int{2, 2, 1}, nn.Config{Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cost := net.ForwardDual([]float64{0, 0.75}, []float64{0.75})
//	net.SubtractGradient(cost, 0.4)
//
//	out := net.ForwardReal([]float64{0, 0.75})
package nn

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/born-ml/dualfit/internal/dual"
)

// ErrInvalidLayers is returned when a layer descriptor cannot describe a network.
var ErrInvalidLayers = errors.New("invalid layer descriptor")

// Config holds construction options for a Network.
type Config struct {
	Activation Activation // Neuron activation (default: Sine)
	InitRange  float64    // Parameters are drawn from U(-InitRange, InitRange) (default: 1)
	Seed       int64      // Random seed for initialization (0 = random)
}

// Network is a fully connected feed-forward network.
//
// Layer 0 is the input layer and has no parameters. Weights and biases are
// stored per non-input layer, so weights[l][j][k] connects neuron k of layer l
// to neuron j of layer l+1.
//
// A Network is not safe for concurrent use: ForwardDual and ForwardReal
// overwrite its workspace. Use NewWorkspace for concurrent evaluation.
type Network struct {
	layers     []int
	weights    [][][]float64 // [layer][neuron][connection]
	biases     [][]float64   // [layer][neuron]
	activation Activation
	index      *Index
	ws         *Workspace
}

// New creates a network with the given layer sizes.
//
// layers[0] is the input width and layers[len(layers)-1] the output width.
// Weights and biases are initialized uniformly in [-InitRange, InitRange].
//
// Returns ErrInvalidLayers if there are fewer than two layers or any size is
// not positive.
func New(layers []int, cfg Config) (*Network, error) {
	if len(layers) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidLayers, len(layers))
	}
	for i, size := range layers {
		if size <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrInvalidLayers, i, size)
		}
	}

	// Set defaults
	if cfg.Activation == nil {
		cfg.Activation = Sine{}
	}
	if cfg.InitRange == 0 {
		cfg.InitRange = 1
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // Weight initialization is not security-critical
	}

	n := &Network{
		layers:     append([]int(nil), layers...),
		weights:    make([][][]float64, len(layers)-1),
		biases:     make([][]float64, len(layers)-1),
		activation: cfg.Activation,
		index:      NewIndex(layers),
	}
	for l := 1; l < len(layers); l++ {
		n.biases[l-1] = Uniform(rng, layers[l], cfg.InitRange)
		n.weights[l-1] = make([][]float64, layers[l])
		for j := range n.weights[l-1] {
			n.weights[l-1][j] = Uniform(rng, layers[l-1], cfg.InitRange)
		}
	}
	n.ws = n.NewWorkspace()

	return n, nil
}

// Layers returns a copy of the layer descriptor.
func (n *Network) Layers() []int {
	return append([]int(nil), n.layers...)
}

// InputSize returns the width of the input layer.
func (n *Network) InputSize() int {
	return n.layers[0]
}

// OutputSize returns the width of the output layer.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1]
}

// Index returns the parameter index convention of this network.
func (n *Network) Index() *Index {
	return n.index
}

// NumWeights returns the total number of weights.
func (n *Network) NumWeights() int {
	return n.index.NumWeights()
}

// NumBiases returns the total number of biases.
func (n *Network) NumBiases() int {
	return n.index.NumBiases()
}

// NumVars returns the length of the gradient vector (weights + biases).
func (n *Network) NumVars() int {
	return n.index.NumVars()
}

// Activation returns the neuron activation function.
func (n *Network) Activation() Activation {
	return n.activation
}

// Weight returns the weight from neuron conn of the previous layer into
// neuron of the given non-input layer (counted from zero).
func (n *Network) Weight(layer, neuron, conn int) float64 {
	return n.weights[layer][neuron][conn]
}

// SetWeight sets a single weight.
func (n *Network) SetWeight(layer, neuron, conn int, v float64) {
	n.weights[layer][neuron][conn] = v
}

// Bias returns the bias of a neuron in the given non-input layer (counted from zero).
func (n *Network) Bias(layer, neuron int) float64 {
	return n.biases[layer][neuron]
}

// SetBias sets a single bias.
func (n *Network) SetBias(layer, neuron int, v float64) {
	n.biases[layer][neuron] = v
}

// ForwardDual runs the dual-mode forward pass on the network's own workspace.
//
// See Workspace.ForwardDual.
func (n *Network) ForwardDual(input, target []float64) dual.Number {
	return n.ws.ForwardDual(input, target)
}

// ForwardReal runs the real-valued forward pass on the network's own workspace.
//
// See Workspace.ForwardReal.
func (n *Network) ForwardReal(input []float64) []float64 {
	return n.ws.ForwardReal(input)
}
