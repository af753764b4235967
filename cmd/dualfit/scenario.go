package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/born-ml/dualfit/internal/dataset"
)

// scenario describes one demonstration training run.
type scenario struct {
	name        string
	description string
	layers      []int
	iterations  int
	lr          float64
	samples     int // Training samples (0 = fixed table)
	test        int // Out-of-sample inputs to print after training
	fn          dataset.Func
}

var scenarios = map[string]scenario{
	"xor": {
		name:        "xor",
		description: "XOR on {0, 0.75} inputs (2 input, 2 hidden, 1 output)",
		layers:      []int{2, 2, 1},
		iterations:  1000,
		lr:          0.4,
	},
	"compress": {
		name:        "compress",
		description: "identity through a 2-neuron bottleneck (3 input, 2 hidden, 3 output)",
		layers:      []int{3, 2, 3},
		iterations:  750,
		lr:          0.4,
		samples:     250,
		test:        10,
		fn:          dataset.Identity,
	},
	"continuous": {
		name:        "continuous",
		description: "fit x1*x2 on [0, 1)² (2 input, 2 hidden, 1 output)",
		layers:      []int{2, 2, 1},
		iterations:  750,
		lr:          0.05,
		samples:     450,
		test:        10,
		fn:          dataset.Product,
	},
}

// lookupScenario returns the named scenario.
func lookupScenario(name string) (scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return scenario{}, fmt.Errorf("unknown scenario %q (available: %v)", name, scenarioNames())
	}
	return s, nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// data builds the training set and the inputs printed after training.
func (s scenario) data(rng *rand.Rand, samples, test int) (inputs, targets, probe [][]float64) {
	if s.fn == nil {
		inputs, targets = dataset.XOR()
		return inputs, targets, inputs
	}
	width := s.layers[0]
	inputs, targets = dataset.FromFunc(rng, samples, width, 0, 1, s.fn)
	probe = dataset.Uniform(rng, test, width, 0, 1)
	return inputs, targets, probe
}
