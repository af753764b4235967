package nn

// Index maps every weight and bias of a network to its slot in the gradient vector.
//
// Weights come first, numbered in layer, neuron, connection order starting at 0.
// Biases continue right after the last weight, in layer, neuron order.
// Layers are the non-input layers counted from zero.
//
// The table is computed once; the dual forward pass seeds variables with it and
// SubtractGradient reads gradient entries with it, so both always agree.
type Index struct {
	weights    [][][]int // [layer][neuron][connection]
	biases     [][]int   // [layer][neuron]
	numWeights int
	numBiases  int
}

// NewIndex builds the index table for a layer descriptor.
func NewIndex(layers []int) *Index {
	ix := &Index{
		weights: make([][][]int, len(layers)-1),
		biases:  make([][]int, len(layers)-1),
	}

	next := 0
	for l := 1; l < len(layers); l++ {
		ix.weights[l-1] = make([][]int, layers[l])
		for j := range ix.weights[l-1] {
			ix.weights[l-1][j] = make([]int, layers[l-1])
			for k := range ix.weights[l-1][j] {
				ix.weights[l-1][j][k] = next
				next++
			}
		}
	}
	ix.numWeights = next

	for l := 1; l < len(layers); l++ {
		ix.biases[l-1] = make([]int, layers[l])
		for j := range ix.biases[l-1] {
			ix.biases[l-1][j] = next
			next++
		}
	}
	ix.numBiases = next - ix.numWeights

	return ix
}

// Weight returns the global index of a weight.
func (ix *Index) Weight(layer, neuron, conn int) int {
	return ix.weights[layer][neuron][conn]
}

// Bias returns the global index of a bias.
func (ix *Index) Bias(layer, neuron int) int {
	return ix.biases[layer][neuron]
}

// NumWeights returns the number of weight slots.
func (ix *Index) NumWeights() int {
	return ix.numWeights
}

// NumBiases returns the number of bias slots.
func (ix *Index) NumBiases() int {
	return ix.numBiases
}

// NumVars returns the total number of slots.
func (ix *Index) NumVars() int {
	return ix.numWeights + ix.numBiases
}
