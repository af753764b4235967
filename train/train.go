// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch gradient descent on dual-number networks.
//
// Example:
//
//	import (
//	    "github.com/born-ml/dualfit/nn"
//	    "github.com/born-ml/dualfit/train"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{2, 2, 1}, nn.Config{})
//	    trainer := train.New(train.Config{Iterations: 1000, LR: 0.4})
//
//	    cost, err := trainer.Train(net, inputs, targets)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
package train

import (
	"github.com/born-ml/dualfit/internal/nn"
	"github.com/born-ml/dualfit/internal/parallel"
	"github.com/born-ml/dualfit/internal/train"
)

// Trainer runs gradient descent with a fixed configuration.
type Trainer = train.Trainer

// Config holds training hyperparameters.
type Config = train.Config

// ProgressFunc receives the average cost after each iteration.
type ProgressFunc = train.ProgressFunc

// ParallelConfig controls per-sample parallel evaluation.
type ParallelConfig = parallel.Config

// Configuration errors returned by Trainer.Train.
var (
	ErrInvalidConfig = train.ErrInvalidConfig
	ErrNoSamples     = train.ErrNoSamples
	ErrSampleCount   = train.ErrSampleCount
	ErrInputSize     = train.ErrInputSize
	ErrOutputSize    = train.ErrOutputSize
)

// New creates a Trainer using plain gradient descent.
func New(cfg Config) *Trainer {
	return train.New(cfg)
}

// DefaultParallel returns a parallel configuration sized to the machine.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}

// Evaluate returns the average real-valued cost of net over the samples.
func Evaluate(net *nn.Network, inputs, targets [][]float64) float64 {
	return train.Evaluate(net, inputs, targets)
}
