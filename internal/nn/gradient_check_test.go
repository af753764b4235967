package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/dualfit/internal/dual"
)

var (
	checkInputs  = [][]float64{{0, 0}, {0, 0.75}, {0.75, 0}, {0.75, 0.75}, {0.3, -0.6}}
	checkTargets = [][]float64{{0, 0.5}, {0.75, 0.1}, {0.75, -0.2}, {0, 0}, {0.4, 0.4}}
)

// averageCost is the mean real-valued cost over the check set at the network's
// current parameters.
func averageCost(net *Network) float64 {
	var sum float64
	for i, in := range checkInputs {
		sum += MSEReal(net.ForwardReal(in), checkTargets[i])
	}
	return sum / float64(len(checkInputs))
}

// averageGradient is the mean dual cost over the check set.
func averageGradient(net *Network) dual.Number {
	sum := dual.Zero(net.NumVars())
	for i, in := range checkInputs {
		sum = dual.Add(sum, net.ForwardDual(in, checkTargets[i]))
	}
	return dual.Div(sum, dual.Constant(net.NumVars(), float64(len(checkInputs))))
}

func TestGradientCheck_SingleWeight(t *testing.T) {
	net := newTestNetwork(t, []int{2, 3, 2}, 42)
	grad := averageGradient(net)

	const eps = 1e-5
	layer, neuron, conn := 0, 1, 1
	w := net.Weight(layer, neuron, conn)

	net.SetWeight(layer, neuron, conn, w+eps)
	plus := averageCost(net)
	net.SetWeight(layer, neuron, conn, w-eps)
	minus := averageCost(net)
	net.SetWeight(layer, neuron, conn, w)

	numeric := (plus - minus) / (2 * eps)
	analytic := grad.Partial(net.Index().Weight(layer, neuron, conn))

	assert.InDelta(t, numeric, analytic, 1e-7)
	assert.InDelta(t, averageCost(net), grad.Real(), 1e-12)
}

func TestGradientCheck_AllParameters(t *testing.T) {
	for _, layers := range [][]int{{2, 2, 2}, {2, 4, 3, 2}} {
		net := newTestNetwork(t, layers, 7)
		grad := averageGradient(net)

		x := net.Parameters()
		f := func(p []float64) float64 {
			if err := net.SetParameters(p); err != nil {
				panic(err)
			}
			return averageCost(net)
		}

		numeric := fd.Gradient(nil, f, x, &fd.Settings{
			Formula: fd.Central,
			Step:    1e-6,
		})
		require.NoError(t, net.SetParameters(x))

		require.Len(t, numeric, net.NumVars())
		for i := range numeric {
			assert.InDelta(t, numeric[i], grad.Partial(i), 1e-6, "layers %v parameter %d", layers, i)
		}
	}
}

func TestGradientCheck_LeakyReLU(t *testing.T) {
	net, err := New([]int{2, 3, 2}, Config{Seed: 3, Activation: LeakyReLU{Slope: 0.1}})
	require.NoError(t, err)
	grad := averageGradient(net)

	x := net.Parameters()
	f := func(p []float64) float64 {
		if err := net.SetParameters(p); err != nil {
			panic(err)
		}
		return averageCost(net)
	}
	numeric := fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central, Step: 1e-7})
	require.NoError(t, net.SetParameters(x))

	for i := range numeric {
		assert.InDelta(t, numeric[i], grad.Partial(i), 1e-5, "parameter %d", i)
	}
}
