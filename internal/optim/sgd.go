package optim

import (
	"github.com/born-ml/dualfit/internal/dual"
	"github.com/born-ml/dualfit/internal/nn"
)

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// The scaling happens on the dual number itself (multiplication by a constant),
// then each parameter subtracts its own partial.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.4})
//	optimizer.Step(net, avgCost)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{lr: config.LR}
}

// Step performs a single optimization step: param -= lr * grad.
func (s *SGD) Step(net *nn.Network, grad dual.Number) {
	net.SubtractGradient(grad, s.lr)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
