package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/dualfit/internal/dual"
)

// Activation is a neuron activation function usable in both forward passes.
//
// Dual and Real must compute the same function; Dual additionally carries the
// partial derivatives through it.
type Activation interface {
	// Dual applies the activation to a dual number.
	Dual(x dual.Number) dual.Number

	// Real applies the activation to a plain float.
	Real(x float64) float64

	// Name returns the identifier accepted by ActivationByName.
	Name() string
}

// Sine is the sinusoidal activation: f(x) = sin(x).
//
// This is the default activation.
type Sine struct{}

// Dual applies sin with derivative cos.
func (Sine) Dual(x dual.Number) dual.Number {
	return dual.Sin(x)
}

// Real applies sin.
func (Sine) Real(x float64) float64 {
	return math.Sin(x)
}

// Name returns "sine".
func (Sine) Name() string {
	return "sine"
}

// LeakyReLU is f(x) = x for x >= 0 and Slope*x otherwise.
type LeakyReLU struct {
	Slope float64 // Negative-side slope (e.g. 0.001)
}

// DefaultLeakySlope is the slope used by ActivationByName("leaky_relu").
const DefaultLeakySlope = 0.001

// Dual applies the leaky ReLU; the negative branch scales all partials by Slope.
func (r LeakyReLU) Dual(x dual.Number) dual.Number {
	if x.Real() >= 0 {
		return x
	}
	return dual.Mul(dual.Constant(x.NumVars(), r.Slope), x)
}

// Real applies the leaky ReLU.
func (r LeakyReLU) Real(x float64) float64 {
	if x >= 0 {
		return x
	}
	return r.Slope * x
}

// Name returns "leaky_relu".
func (LeakyReLU) Name() string {
	return "leaky_relu"
}

// ActivationByName returns the activation registered under name.
func ActivationByName(name string) (Activation, error) {
	switch name {
	case "", "sine", "sin":
		return Sine{}, nil
	case "leaky_relu", "leakyrelu":
		return LeakyReLU{Slope: DefaultLeakySlope}, nil
	default:
		return nil, fmt.Errorf("unknown activation %q", name)
	}
}
