// Package optim implements the parameter update step of dual-number training.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - SGD: plain full-batch gradient descent
//
// Example usage:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.4})
//
//	for epoch := range epochs {
//	    grad := averageCost(net, inputs, targets) // dual.Number
//	    optimizer.Step(net, grad)
//	}
package optim

import (
	"github.com/born-ml/dualfit/internal/dual"
	"github.com/born-ml/dualfit/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers move network parameters against the gradient carried by a dual
// cost number to minimize that cost.
type Optimizer interface {
	// Step applies one update to every weight and bias of net.
	//
	// grad must track exactly net.NumVars() variables; its partials are read
	// through the network's Index.
	Step(net *nn.Network, grad dual.Number)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
