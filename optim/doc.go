// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rule for dual-number training.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent (param -= lr * partial)
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dualfit/nn"
//	    "github.com/born-ml/dualfit/optim"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{2, 2, 1}, nn.Config{})
//	    optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.4})
//
//	    cost := net.ForwardDual([]float64{0, 0.75}, []float64{0.75})
//	    optimizer.Step(net, cost)
//	}
package optim
