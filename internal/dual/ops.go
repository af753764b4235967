package dual

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Add returns a + b.
//
// Partials: d(a+b) = da + db.
func Add(a, b Number) Number {
	mustMatch("Add", a, b)
	p := make([]float64, len(a.partials))
	floats.AddTo(p, a.partials, b.partials)
	return Number{real: a.real + b.real, partials: p}
}

// Sub returns a - b.
//
// Partials: d(a-b) = da - db.
func Sub(a, b Number) Number {
	mustMatch("Sub", a, b)
	p := make([]float64, len(a.partials))
	floats.SubTo(p, a.partials, b.partials)
	return Number{real: a.real - b.real, partials: p}
}

// Mul returns a * b.
//
// Partials (product rule): d(ab) = a*db + da*b.
func Mul(a, b Number) Number {
	mustMatch("Mul", a, b)
	p := make([]float64, len(a.partials))
	floats.ScaleTo(p, a.real, b.partials)
	floats.AddScaled(p, b.real, a.partials)
	return Number{real: a.real * b.real, partials: p}
}

// Div returns a / b.
//
// Partials (quotient rule): d(a/b) = (da*b - a*db) / b².
// A zero denominator is not guarded and yields ±Inf or NaN.
func Div(a, b Number) Number {
	mustMatch("Div", a, b)
	p := make([]float64, len(a.partials))
	floats.ScaleTo(p, b.real, a.partials)
	floats.AddScaled(p, -a.real, b.partials)
	denom := b.real * b.real
	for i := range p {
		p[i] /= denom
	}
	return Number{real: a.real / b.real, partials: p}
}

// Sqrt returns √a.
//
// Partials: d√a = 0.5 * da / √a. Negative inputs propagate NaN.
func Sqrt(a Number) Number {
	s := math.Sqrt(a.real)
	return chain(a, s, 0.5/s)
}

// Pow returns a^y for a plain (untracked) exponent y.
//
// Partials: d(a^y) = y * a^(y-1) * da.
func Pow(a Number, y float64) Number {
	return chain(a, math.Pow(a.real, y), y*math.Pow(a.real, y-1))
}

// Sin returns sin(a).
//
// Partials: d sin(a) = cos(a) * da.
func Sin(a Number) Number {
	return chain(a, math.Sin(a.real), math.Cos(a.real))
}

// Cos returns cos(a).
//
// Partials: d cos(a) = -sin(a) * da.
func Cos(a Number) Number {
	return chain(a, math.Cos(a.real), -math.Sin(a.real))
}

// Tan returns tan(a).
//
// Partials: d tan(a) = da / cos²(a).
func Tan(a Number) Number {
	c := math.Cos(a.real)
	return chain(a, math.Tan(a.real), 1/(c*c))
}

// Atan returns atan(a).
//
// Partials: d atan(a) = da / (1 + a²).
func Atan(a Number) Number {
	return chain(a, math.Atan(a.real), 1/(1+a.real*a.real))
}

// chain builds f(a) from its value and its scalar derivative f'(a).
func chain(a Number, value, deriv float64) Number {
	p := make([]float64, len(a.partials))
	floats.ScaleTo(p, deriv, a.partials)
	return Number{real: value, partials: p}
}
