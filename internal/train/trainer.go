// Package train drives full-batch gradient descent over dual-number costs.
//
// Each iteration evaluates every sample with the dual forward pass against the
// same parameter snapshot, averages the resulting cost numbers (value and
// gradient together) and applies one optimizer step.
package train

import (
	"errors"
	"fmt"

	"github.com/born-ml/dualfit/internal/dual"
	"github.com/born-ml/dualfit/internal/nn"
	"github.com/born-ml/dualfit/internal/optim"
	"github.com/born-ml/dualfit/internal/parallel"
)

// Configuration errors. Train returns them before touching any parameter.
var (
	ErrInvalidConfig = errors.New("invalid training config")
	ErrNoSamples     = errors.New("no training samples")
	ErrSampleCount   = errors.New("input and target sample counts differ")
	ErrInputSize     = errors.New("input size mismatch")
	ErrOutputSize    = errors.New("output size mismatch")
)

// ProgressFunc receives the average cost after each iteration.
// iter counts from 0; total is the configured iteration count.
type ProgressFunc func(iter, total int, cost float64)

// Config holds training hyperparameters.
type Config struct {
	Iterations int             // Number of full-batch iterations (> 0)
	LR         float64         // Learning rate (> 0)
	Parallel   parallel.Config // Per-sample parallelism (zero value: sequential)
	Progress   ProgressFunc    // Optional per-iteration report
}

// Trainer runs gradient descent with a fixed configuration.
type Trainer struct {
	cfg       Config
	optimizer optim.Optimizer
}

// New creates a Trainer using plain SGD at cfg.LR.
func New(cfg Config) *Trainer {
	return &Trainer{
		cfg:       cfg,
		optimizer: optim.NewSGD(optim.SGDConfig{LR: cfg.LR}),
	}
}

// Config returns the trainer configuration.
func (t *Trainer) Config() Config {
	return t.cfg
}

// Train runs cfg.Iterations iterations of full-batch gradient descent on net.
//
// Per iteration:
//  1. ForwardDual every sample and sum the cost numbers in sample order
//  2. Divide the sum by the sample count
//  3. Step the optimizer (param -= lr * partial)
//  4. Report the average real cost
//
// The network's weights and biases are updated in place. Returns the average
// cost of the last iteration, measured before its update.
//
// Any configuration error (see the Err values) aborts before the first
// iteration and leaves net untouched.
func (t *Trainer) Train(net *nn.Network, inputs, targets [][]float64) (float64, error) {
	if err := t.validate(net, inputs, targets); err != nil {
		return 0, err
	}

	numVars := net.NumVars()
	count := dual.Constant(numVars, float64(len(inputs)))
	costs := make([]dual.Number, len(inputs))
	workspaces := make([]*nn.Workspace, parallel.NumChunks(len(inputs), t.cfg.Parallel))

	var last float64
	for iter := 0; iter < t.cfg.Iterations; iter++ {
		// All samples see the same parameters; the update waits for the reduction.
		parallel.ForChunk(len(inputs), func(chunk, start, end int) {
			ws := workspaces[chunk]
			if ws == nil {
				ws = net.NewWorkspace()
				workspaces[chunk] = ws
			}
			for i := start; i < end; i++ {
				costs[i] = ws.ForwardDual(inputs[i], targets[i])
			}
		}, t.cfg.Parallel)

		sum := dual.Zero(numVars)
		for _, c := range costs {
			sum = dual.Add(sum, c)
		}
		avg := dual.Div(sum, count)

		t.optimizer.Step(net, avg)

		last = avg.Real()
		if t.cfg.Progress != nil {
			t.cfg.Progress(iter, t.cfg.Iterations, last)
		}
	}

	return last, nil
}

func (t *Trainer) validate(net *nn.Network, inputs, targets [][]float64) error {
	if t.cfg.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, t.cfg.Iterations)
	}
	if t.cfg.LR <= 0 {
		return fmt.Errorf("%w: learning rate must be positive, got %g", ErrInvalidConfig, t.cfg.LR)
	}
	if len(inputs) == 0 {
		return ErrNoSamples
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrSampleCount, len(inputs), len(targets))
	}
	for i := range inputs {
		if len(inputs[i]) != net.InputSize() {
			return fmt.Errorf("%w: sample %d has %d inputs, network has %d input neurons",
				ErrInputSize, i, len(inputs[i]), net.InputSize())
		}
		if len(targets[i]) != net.OutputSize() {
			return fmt.Errorf("%w: sample %d has %d targets, network has %d output neurons",
				ErrOutputSize, i, len(targets[i]), net.OutputSize())
		}
	}
	return nil
}

// Evaluate returns the average real-valued cost of net over the samples.
//
// Uses the real forward pass only; no gradient is computed. Panics on
// mismatched lengths, like the forward passes.
func Evaluate(net *nn.Network, inputs, targets [][]float64) float64 {
	if len(inputs) == 0 {
		return 0
	}
	var sum float64
	for i, in := range inputs {
		sum += nn.MSEReal(net.ForwardReal(in), targets[i])
	}
	return sum / float64(len(inputs))
}
