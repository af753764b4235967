// Package dual implements multivariable dual numbers for forward-mode
// automatic differentiation.
//
// A Number carries a real value together with one partial derivative per
// tracked variable. Arithmetic on Numbers applies the chain rule to every
// partial at once, so evaluating a function on Numbers yields both the value
// and its full gradient in a single forward sweep.
//
// Architecture:
//   - Number is an immutable value type: every operation allocates a fresh result
//   - All operands of one expression must share the same number of variables
//   - Variable seeds a one-hot partial vector ("this is variable #i")
//
// Usage:
//
//	x := dual.Variable(2, 0.5, 0) // x, tracked as variable 0
//	y := dual.Variable(2, 2.0, 1) // y, tracked as variable 1
//	f := dual.Sin(dual.Mul(x, y)) // f = sin(x*y)
//
//	f.Real()     // sin(1.0)
//	f.Partial(0) // df/dx = y*cos(x*y)
//	f.Partial(1) // df/dy = x*cos(x*y)
package dual

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is a dual number with a vector of partial derivatives.
//
// The zero value is a constant 0 with no tracked variables.
type Number struct {
	real     float64
	partials []float64
}

// Zero returns the constant 0 over numVars variables.
func Zero(numVars int) Number {
	return Constant(numVars, 0)
}

// Constant returns a Number with the given real value and all partials zero.
func Constant(numVars int, v float64) Number {
	if numVars < 0 {
		panic(fmt.Sprintf("dual.Constant: negative variable count %d", numVars))
	}
	return Number{real: v, partials: make([]float64, numVars)}
}

// Variable returns a Number tracked as variable index: its partial with
// respect to index is 1 and every other partial is 0.
func Variable(numVars int, v float64, index int) Number {
	if index < 0 || index >= numVars {
		panic(fmt.Sprintf("dual.Variable: index %d out of range [0, %d)", index, numVars))
	}
	n := Constant(numVars, v)
	n.partials[index] = 1
	return n
}

// FromPartials returns a Number with the given real value and a copy of partials.
func FromPartials(v float64, partials []float64) Number {
	p := make([]float64, len(partials))
	copy(p, partials)
	return Number{real: v, partials: p}
}

// Real returns the real component.
func (n Number) Real() float64 {
	return n.real
}

// Partial returns the partial derivative with respect to variable i.
func (n Number) Partial(i int) float64 {
	return n.partials[i]
}

// Partials returns a copy of the partial derivative vector.
func (n Number) Partials() []float64 {
	p := make([]float64, len(n.partials))
	copy(p, n.partials)
	return p
}

// NumVars returns the number of tracked variables.
func (n Number) NumVars() int {
	return len(n.partials)
}

// String formats the number as "[ real p0, p1, ... ]".
func (n Number) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	sb.WriteString(strconv.FormatFloat(n.real, 'g', -1, 64))
	sb.WriteByte(' ')
	for i, p := range n.partials {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	sb.WriteString("]")
	return sb.String()
}

// mustMatch panics when two operands track a different number of variables.
func mustMatch(op string, a, b Number) {
	if len(a.partials) != len(b.partials) {
		panic(fmt.Sprintf("dual.%s: variable count mismatch: %d vs %d", op, len(a.partials), len(b.partials)))
	}
}
