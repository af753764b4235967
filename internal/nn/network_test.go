package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualfit/internal/dual"
)

func newTestNetwork(t *testing.T, layers []int, seed int64) *Network {
	t.Helper()
	net, err := New(layers, Config{Seed: seed})
	require.NoError(t, err)
	return net
}

func TestNew_InvalidLayers(t *testing.T) {
	tests := []struct {
		name   string
		layers []int
	}{
		{"nil", nil},
		{"single layer", []int{3}},
		{"zero size", []int{2, 0, 1}},
		{"negative size", []int{-1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := New(tt.layers, Config{})
			assert.Nil(t, net)
			assert.True(t, errors.Is(err, ErrInvalidLayers), "got %v", err)
		})
	}
}

func TestNew_Topology(t *testing.T) {
	net := newTestNetwork(t, []int{3, 4, 2}, 1)

	assert.Equal(t, []int{3, 4, 2}, net.Layers())
	assert.Equal(t, 3, net.InputSize())
	assert.Equal(t, 2, net.OutputSize())
	assert.Equal(t, 3*4+4*2, net.NumWeights())
	assert.Equal(t, 4+2, net.NumBiases())
	assert.Equal(t, 26, net.NumVars())
	assert.Equal(t, "sine", net.Activation().Name())

	for j := 0; j < 4; j++ {
		assert.Len(t, net.weights[0][j], 3)
	}
	for j := 0; j < 2; j++ {
		assert.Len(t, net.weights[1][j], 4)
	}
}

func TestNew_InitRange(t *testing.T) {
	net := newTestNetwork(t, []int{4, 8, 3}, 7)
	for _, p := range net.Parameters() {
		assert.GreaterOrEqual(t, p, -1.0)
		assert.LessOrEqual(t, p, 1.0)
	}

	small, err := New([]int{4, 8, 3}, Config{Seed: 7, InitRange: 0.1})
	require.NoError(t, err)
	for _, p := range small.Parameters() {
		assert.LessOrEqual(t, p, 0.1)
		assert.GreaterOrEqual(t, p, -0.1)
	}
}

func TestNew_SeedIsDeterministic(t *testing.T) {
	a := newTestNetwork(t, []int{2, 3, 1}, 42)
	b := newTestNetwork(t, []int{2, 3, 1}, 42)
	c := newTestNetwork(t, []int{2, 3, 1}, 43)

	assert.Equal(t, a.Parameters(), b.Parameters())
	assert.NotEqual(t, a.Parameters(), c.Parameters())
}

func TestLayers_ReturnsCopy(t *testing.T) {
	net := newTestNetwork(t, []int{2, 2, 1}, 1)
	layers := net.Layers()
	layers[0] = 99
	assert.Equal(t, 2, net.InputSize())
}

func TestParameters_RoundTrip(t *testing.T) {
	net := newTestNetwork(t, []int{2, 3, 2}, 3)

	params := make([]float64, net.NumVars())
	for i := range params {
		params[i] = float64(i) / 10
	}
	require.NoError(t, net.SetParameters(params))
	assert.Equal(t, params, net.Parameters())

	ix := net.Index()
	assert.Equal(t, params[ix.Weight(1, 1, 2)], net.Weight(1, 1, 2))
	assert.Equal(t, params[ix.Bias(0, 2)], net.Bias(0, 2))

	assert.Error(t, net.SetParameters(params[1:]))
}

func TestSetWeightAndBias(t *testing.T) {
	net := newTestNetwork(t, []int{2, 2, 1}, 3)

	net.SetWeight(0, 1, 0, 0.5)
	net.SetBias(1, 0, -0.25)

	params := net.Parameters()
	assert.Equal(t, 0.5, params[net.Index().Weight(0, 1, 0)])
	assert.Equal(t, -0.25, params[net.Index().Bias(1, 0)])
}

func TestSubtractGradient_UsesIndexSlots(t *testing.T) {
	net := newTestNetwork(t, []int{2, 3, 2}, 5)
	before := net.Parameters()

	partials := make([]float64, net.NumVars())
	for i := range partials {
		partials[i] = float64(i + 1)
	}
	g := dual.FromPartials(0.3, partials)

	net.SubtractGradient(g, 0.5)

	after := net.Parameters()
	for i := range after {
		assert.InDelta(t, before[i]-0.5*float64(i+1), after[i], 1e-12, "parameter %d", i)
	}
}

func TestSubtractGradient_WrongLengthPanics(t *testing.T) {
	net := newTestNetwork(t, []int{2, 2, 1}, 5)
	assert.Panics(t, func() {
		net.SubtractGradient(dual.Zero(net.NumVars()+1), 0.1)
	})
}
