// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides multivariable dual numbers for forward-mode
// automatic differentiation.
//
// A Number pairs a real value with one partial derivative per tracked
// variable. Composing Numbers with the functions of this package applies the
// chain rule to all partials at once.
//
// Example:
//
//	import "github.com/born-ml/dualfit/dual"
//
//	func main() {
//	    x := dual.Variable(1, 0.5, 0)  // x = 0.5, tracked as variable 0
//	    f := dual.Sin(dual.Mul(x, x))  // f = sin(x²)
//
//	    fmt.Println(f.Real())     // sin(0.25)
//	    fmt.Println(f.Partial(0)) // 2x·cos(x²) = cos(0.25)
//	}
package dual

import "github.com/born-ml/dualfit/internal/dual"

// Number is a real value with a vector of partial derivatives.
type Number = dual.Number

// Zero returns the constant 0 over numVars variables.
func Zero(numVars int) Number {
	return dual.Zero(numVars)
}

// Constant returns an untracked value over numVars variables.
func Constant(numVars int, v float64) Number {
	return dual.Constant(numVars, v)
}

// Variable returns v tracked as variable index (one-hot partials).
func Variable(numVars int, v float64, index int) Number {
	return dual.Variable(numVars, v, index)
}

// FromPartials returns a Number with a copy of the given partials.
func FromPartials(v float64, partials []float64) Number {
	return dual.FromPartials(v, partials)
}

// Arithmetic

// Add returns a + b.
func Add(a, b Number) Number { return dual.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Number) Number { return dual.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b Number) Number { return dual.Mul(a, b) }

// Div returns a / b.
func Div(a, b Number) Number { return dual.Div(a, b) }

// Elementary functions

// Sqrt returns the square root of a.
func Sqrt(a Number) Number { return dual.Sqrt(a) }

// Pow returns a raised to the plain exponent y.
func Pow(a Number, y float64) Number { return dual.Pow(a, y) }

// Sin returns sin(a).
func Sin(a Number) Number { return dual.Sin(a) }

// Cos returns cos(a).
func Cos(a Number) Number { return dual.Cos(a) }

// Tan returns tan(a).
func Tan(a Number) Number { return dual.Tan(a) }

// Atan returns atan(a).
func Atan(a Number) Number { return dual.Atan(a) }
