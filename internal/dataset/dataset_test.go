package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) //nolint:gosec // Deterministic test data
	data := Uniform(rng, 50, 3, -2, 4)

	require.Len(t, data, 50)
	for _, row := range data {
		require.Len(t, row, 3)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -2.0)
			assert.Less(t, v, 4.0)
		}
	}
}

func TestFromFunc(t *testing.T) {
	rng := rand.New(rand.NewSource(2)) //nolint:gosec // Deterministic test data
	inputs, targets := FromFunc(rng, 20, 2, 0, 1, Product)

	require.Len(t, inputs, 20)
	require.Len(t, targets, 20)
	for i := range inputs {
		require.Len(t, targets[i], 1)
		assert.Equal(t, inputs[i][0]*inputs[i][1], targets[i][0])
	}
}

func TestFuncs(t *testing.T) {
	x := []float64{2, -3}

	id := Identity(x)
	assert.Equal(t, x, id)
	id[0] = 9
	assert.Equal(t, 2.0, x[0], "Identity must copy")

	assert.Equal(t, []float64{4, 9}, Square(x))
	assert.Equal(t, []float64{-6}, Product(x))
}

func TestXOR(t *testing.T) {
	inputs, targets := XOR()
	require.Len(t, inputs, 4)
	require.Len(t, targets, 4)
	assert.Equal(t, []float64{0.75, 0}, inputs[2])
	assert.Equal(t, []float64{0.75}, targets[2])
	assert.Equal(t, []float64{0}, targets[3])
}
