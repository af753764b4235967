// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feed-forward network trained with dual numbers.
//
// # Overview
//
// This package contains:
//   - Network: fully connected layers with per-neuron activation
//   - Index: the weight/bias to gradient-slot convention
//   - Workspace: isolated neuron buffers for concurrent evaluation
//   - Activations: Sine (default), LeakyReLU
//   - Loss functions: MSE (dual), MSEReal
//
// # Basic Usage
//
//	import "github.com/born-ml/dualfit/nn"
//
//	func main() {
//	    net, err := nn.New([]int{2, 2, 1}, nn.Config{Seed: 1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Cost and full gradient in one forward pass
//	    cost := net.ForwardDual([]float64{0, 0.75}, []float64{0.75})
//	    net.SubtractGradient(cost, 0.4)
//
//	    // Inference without gradient tracking
//	    out := net.ForwardReal([]float64{0, 0.75})
//	}
//
// # Parameter Index
//
// Weights take gradient slots [0, NumWeights) in layer, neuron, connection
// order; biases follow in layer, neuron order. Index exposes the mapping.
package nn
