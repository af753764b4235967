// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/dualfit/internal/dual"
	"github.com/born-ml/dualfit/internal/nn"
)

// Network is a fully connected feed-forward network.
type Network = nn.Network

// Config holds construction options for a Network.
type Config = nn.Config

// Index maps weights and biases to gradient slots.
type Index = nn.Index

// Workspace holds neuron buffers for forward passes.
type Workspace = nn.Workspace

// ErrInvalidLayers is returned for unusable layer descriptors.
var ErrInvalidLayers = nn.ErrInvalidLayers

// New creates a network with the given layer sizes.
//
// Example:
//
//	net, err := nn.New([]int{3, 2, 3}, nn.Config{Seed: 7})
func New(layers []int, cfg Config) (*Network, error) {
	return nn.New(layers, cfg)
}

// NewIndex builds the gradient-slot table for a layer descriptor.
func NewIndex(layers []int) *Index {
	return nn.NewIndex(layers)
}

// Activations

// Activation is a neuron activation usable in both forward passes.
type Activation = nn.Activation

// Sine is f(x) = sin(x).
type Sine = nn.Sine

// LeakyReLU is f(x) = x for x >= 0 and Slope*x otherwise.
type LeakyReLU = nn.LeakyReLU

// ActivationByName returns an activation by identifier ("sine", "leaky_relu").
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss functions

// MSE computes the per-sample mean squared error on dual outputs.
func MSE(outputs []dual.Number, target []float64) dual.Number {
	return nn.MSE(outputs, target)
}

// MSEReal computes the mean squared error on plain floats.
func MSEReal(outputs, target []float64) float64 {
	return nn.MSEReal(outputs, target)
}
