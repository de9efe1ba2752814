// Package polynomial implements dense univariate polynomials generic over
// the two field element types (bfield.Element, xfield.Element) that coexist
// in the Master Table pipeline (spec §4.1: "FF ranges over {B, X}"),
// grounded on core/polynomial.go's method surface but reworked from a
// pointer-shared *Field/*FieldElement pair into a value-generic type, since
// this repo's field elements are already plain Copy-semantic values.
package polynomial

import "fmt"

// Elem is the constraint every coefficient type must satisfy: bfield.Element
// and xfield.Element both already implement it without modification.
type Elem[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	IsZero() bool
	Equal(T) bool
}

// Polynomial holds coefficients lowest-degree first. The zero value (no
// coefficients) is the zero polynomial; prefer New, which trims trailing
// zeros.
type Polynomial[T Elem[T]] struct {
	Coefficients []T
}

// New trims trailing (highest-degree) zero coefficients, matching the
// teacher's NewPolynomial canonicalization.
func New[T Elem[T]](coeffs []T) Polynomial[T] {
	n := len(coeffs)
	var zero T
	for n > 0 && coeffs[n-1].Equal(zero) {
		n--
	}
	return Polynomial[T]{Coefficients: append([]T(nil), coeffs[:n]...)}
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Polynomial[T]) Degree() int {
	return len(p.Coefficients) - 1
}

// IsZero reports whether p has no nonzero coefficients.
func (p Polynomial[T]) IsZero() bool {
	return len(p.Coefficients) == 0
}

// Coefficient returns the coefficient of x^i, or the zero value if i is
// beyond the polynomial's degree.
func (p Polynomial[T]) Coefficient(i int) T {
	var zero T
	if i < 0 || i >= len(p.Coefficients) {
		return zero
	}
	return p.Coefficients[i]
}

// Clone returns an independent copy.
func (p Polynomial[T]) Clone() Polynomial[T] {
	return Polynomial[T]{Coefficients: append([]T(nil), p.Coefficients...)}
}

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	n := len(p.Coefficients)
	if len(q.Coefficients) > n {
		n = len(q.Coefficients)
	}
	out := make([]T, n)
	var zero T
	for i := 0; i < n; i++ {
		a, b := zero, zero
		if i < len(p.Coefficients) {
			a = p.Coefficients[i]
		}
		if i < len(q.Coefficients) {
			b = q.Coefficients[i]
		}
		out[i] = a.Add(b)
	}
	return New(out)
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	n := len(p.Coefficients)
	if len(q.Coefficients) > n {
		n = len(q.Coefficients)
	}
	out := make([]T, n)
	var zero T
	for i := 0; i < n; i++ {
		a, b := zero, zero
		if i < len(p.Coefficients) {
			a = p.Coefficients[i]
		}
		if i < len(q.Coefficients) {
			b = q.Coefficients[i]
		}
		out[i] = a.Sub(b)
	}
	return New(out)
}

// Mul returns p * q via schoolbook convolution.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if p.IsZero() || q.IsZero() {
		var zero T
		return New([]T{zero})
	}
	out := make([]T, len(p.Coefficients)+len(q.Coefficients)-1)
	for i, a := range p.Coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return New(out)
}

// MulScalar returns p with every coefficient multiplied by s.
func (p Polynomial[T]) MulScalar(s T) Polynomial[T] {
	out := make([]T, len(p.Coefficients))
	for i, c := range p.Coefficients {
		out[i] = c.Mul(s)
	}
	return New(out)
}

// Eval evaluates p at x via Horner's method.
func (p Polynomial[T]) Eval(x T) T {
	var acc T
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coefficients[i])
	}
	return acc
}

// DivMod performs polynomial long division, returning quotient and
// remainder such that p == q*divisor + r and deg(r) < deg(divisor).
// Requires the divisor's leading coefficient to have a multiplicative
// inverse exposed via invert; panics on division by the zero polynomial.
func (p Polynomial[T]) DivMod(divisor Polynomial[T], invert func(T) T) (quotient, remainder Polynomial[T]) {
	if divisor.IsZero() {
		panic("polynomial: division by zero polynomial")
	}
	remainder = p.Clone()
	degDivisor := divisor.Degree()
	leadInv := invert(divisor.Coefficients[degDivisor])
	var quotientCoeffs []T
	for remainder.Degree() >= degDivisor {
		shift := remainder.Degree() - degDivisor
		coeff := remainder.Coefficients[remainder.Degree()].Mul(leadInv)
		termCoeffs := make([]T, shift+1)
		termCoeffs[shift] = coeff
		term := New(termCoeffs)
		for len(quotientCoeffs) <= shift {
			var zero T
			quotientCoeffs = append(quotientCoeffs, zero)
		}
		quotientCoeffs[shift] = coeff
		remainder = remainder.Sub(term.Mul(divisor))
	}
	return New(quotientCoeffs), remainder
}

// String renders the polynomial for debugging.
func (p Polynomial[T]) String() string {
	return fmt.Sprintf("Polynomial(degree=%d)", p.Degree())
}

// LagrangeInterpolation builds the unique polynomial of degree < len(xs)
// passing through (xs[i], ys[i]), via the standard Lagrange construction.
// one must be T's multiplicative identity and invert the multiplicative
// inverse of a nonzero T; Go generics have no numeric literals, so both are
// supplied by the caller's concrete field (bfield.One/xfield.One and their
// Inv methods).
func LagrangeInterpolation[T Elem[T]](xs, ys []T, one T, invert func(T) T) Polynomial[T] {
	if len(xs) != len(ys) {
		panic("polynomial: LagrangeInterpolation requires equal-length xs and ys")
	}
	var zero T
	result := New([]T{zero})
	for i := range xs {
		basis := New([]T{one})
		denom := one
		for j := range xs {
			if i == j {
				continue
			}
			negXj := zero.Sub(xs[j])
			basis = basis.Mul(New([]T{negXj, one}))
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		scaled := basis.MulScalar(ys[i].Mul(invert(denom)))
		result = result.Add(scaled)
	}
	return result
}
