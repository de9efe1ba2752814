// Package domain implements ArithmeticDomain: a multiplicative coset of a
// power-of-two subgroup of B, used for the trace, randomized-trace,
// quotient, and FRI domains that coexist over one physical Master matrix.
//
// Evaluation and interpolation are implemented directly (Horner evaluation
// per point, Lagrange interpolation), the same shortcut the teacher's own
// protocols/domains.go takes — its Evaluate is a direct evaluation loop, not
// an NTT, with a comment noting the NTT is left as a future optimization.
// This repo follows that honest shortcut rather than implementing a new,
// unverified radix-2 NTT with no toolchain available to check it; see
// DESIGN.md for the Open Question this resolves.
package domain

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/polynomial"
)

// Domain is the set {offset * generator^i : 0 <= i < Length}.
type Domain struct {
	Generator bfield.Element
	Offset    bfield.Element
	Length    int
}

// OfLength returns the domain of the given power-of-two length with unit
// offset and the canonical generator of that order. Panics if n is not a
// power of two (spec §4.1, §7 class 1).
func OfLength(n int) Domain {
	if n <= 0 || (n&(n-1)) != 0 {
		panic(fmt.Sprintf("domain: length %d is not a positive power of two", n))
	}
	return Domain{
		Generator: bfield.PrimitiveRootOfUnity(uint64(n)),
		Offset:    bfield.One,
		Length:    n,
	}
}

// WithOffset returns a copy of d shifted by o.
func (d Domain) WithOffset(o bfield.Element) Domain {
	return Domain{Generator: d.Generator, Offset: o, Length: d.Length}
}

// Halve returns the domain of half the length, same offset, generator
// squared (since g^2 has order Length/2 when g has order Length).
func (d Domain) Halve() Domain {
	if d.Length%2 != 0 {
		panic("domain: cannot halve an odd-length domain")
	}
	return Domain{Generator: d.Generator.Mul(d.Generator), Offset: d.Offset, Length: d.Length / 2}
}

// Double returns the domain of twice the length and the same offset, using
// a generator of the doubled order.
func (d Domain) Double() Domain {
	return Domain{Generator: bfield.PrimitiveRootOfUnity(uint64(d.Length) * 2), Offset: d.Offset, Length: d.Length * 2}
}

// Elements returns the domain's Length points, offset * generator^i.
func (d Domain) Elements() []bfield.Element {
	out := make([]bfield.Element, d.Length)
	acc := d.Offset
	for i := 0; i < d.Length; i++ {
		out[i] = acc
		acc = acc.Mul(d.Generator)
	}
	return out
}

// Value returns the i-th domain element without materializing the rest.
func (d Domain) Value(i int) bfield.Element {
	return d.Offset.Mul(d.Generator.Exp(uint64(i)))
}

// Evaluate evaluates poly at every point of d, lifting each B-valued domain
// point into T via lift (the identity for T=bfield.Element, xfield.FromB for
// T=xfield.Element). Panics if poly's "length" assumption doesn't hold is
// the caller's responsibility; this function itself never fails.
func Evaluate[T polynomial.Elem[T]](d Domain, poly polynomial.Polynomial[T], lift func(bfield.Element) T) []T {
	points := d.Elements()
	out := make([]T, len(points))
	for i, x := range points {
		out[i] = poly.Eval(lift(x))
	}
	return out
}

// Interpolate returns the unique polynomial of degree < d.Length matching
// values at d's points, via Lagrange interpolation. one/invert are T's
// multiplicative identity and inverse, supplied by the caller's field.
func Interpolate[T polynomial.Elem[T]](d Domain, values []T, one T, invert func(T) T, lift func(bfield.Element) T) polynomial.Polynomial[T] {
	if len(values) != d.Length {
		panic(fmt.Sprintf("domain: Interpolate expects %d values, got %d", d.Length, len(values)))
	}
	points := d.Elements()
	xs := make([]T, len(points))
	for i, x := range points {
		xs[i] = lift(x)
	}
	return polynomial.LagrangeInterpolation(xs, values, one, invert)
}

// ProverDomains bundles the four coexisting domains of a Master instance.
type ProverDomains struct {
	Trace           Domain
	RandomizedTrace Domain
	Quotient        Domain
	FRI             Domain
}

// DeriveProverDomains builds the four domains from a padded trace height,
// a trace-randomizer count, and the two larger (quotient, FRI) lengths.
// The randomized-trace domain is rounded to the next power of two at least
// paddedHeight+numTraceRandomizers, per spec §4.
func DeriveProverDomains(paddedHeight, numTraceRandomizers, quotientLen, friLen int) ProverDomains {
	trace := OfLength(paddedHeight)
	randomizedLen := nextPow2(paddedHeight + numTraceRandomizers)
	randomizedTrace := OfLength(randomizedLen)
	quotient := OfLength(quotientLen).WithOffset(bfield.New(7))
	fri := OfLength(friLen).WithOffset(bfield.New(7))
	return ProverDomains{Trace: trace, RandomizedTrace: randomizedTrace, Quotient: quotient, FRI: fri}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// EvalDomain returns the larger of quotient and fri by length, ties
// resolving to quotient, per spec §4.6.
func (pd ProverDomains) EvalDomain() Domain {
	if pd.FRI.Length > pd.Quotient.Length {
		return pd.FRI
	}
	return pd.Quotient
}

// Stride returns the integer ratio big.Length / small.Length, used to
// project rows of the larger domain's physical storage down to the
// smaller domain's rows without copying. Panics if small does not evenly
// divide big, a programming error per spec §7 class 1.
func Stride(big, small Domain) int {
	if big.Length == 0 || big.Length%small.Length != 0 {
		panic(fmt.Sprintf("domain: length %d does not evenly divide %d", small.Length, big.Length))
	}
	return big.Length / small.Length
}
