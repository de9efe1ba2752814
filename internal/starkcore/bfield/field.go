// Package bfield implements the base field B = Z/pZ with
// p = 2^64 - 2^32 + 1, the field over which the Master Table's trace
// columns live before extension.
package bfield

import (
	"fmt"
	"math/big"
)

// Modulus is p = 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

var modulusBig = new(big.Int).SetUint64(Modulus)

// Element is a value in B. The zero value is the field's zero element.
// Elements are always kept in canonical form (0 <= value < Modulus), so
// value equality is field equality and Element is safe to compare with ==.
type Element struct {
	value uint64
}

// New reduces v modulo Modulus and returns the resulting Element.
func New(v uint64) Element {
	return Element{value: v % Modulus}
}

// NewFromInt64 reduces a signed integer modulo Modulus.
func NewFromInt64(v int64) Element {
	if v >= 0 {
		return New(uint64(v))
	}
	return Zero.Sub(New(uint64(-v)))
}

// Zero is the additive identity.
var Zero = Element{value: 0}

// One is the multiplicative identity.
var One = Element{value: 1}

// Value returns the canonical uint64 representation.
func (a Element) Value() uint64 { return a.value }

func (a Element) toBig() *big.Int { return new(big.Int).SetUint64(a.value) }

func fromBig(x *big.Int) Element {
	var r big.Int
	r.Mod(x, modulusBig)
	return Element{value: r.Uint64()}
}

// Add returns a + b mod p.
func (a Element) Add(b Element) Element {
	s := a.value + b.value
	if s < a.value || s >= Modulus {
		// either wrapped (s < a.value) or landed in [p, 2p)
		s = fromBig(new(big.Int).Add(a.toBig(), b.toBig())).value
	}
	return Element{value: s}
}

// Sub returns a - b mod p.
func (a Element) Sub(b Element) Element {
	if a.value >= b.value {
		return Element{value: a.value - b.value}
	}
	return Element{value: Modulus - (b.value - a.value)}
}

// Neg returns -a mod p.
func (a Element) Neg() Element {
	return Zero.Sub(a)
}

// Mul returns a * b mod p.
func (a Element) Mul(b Element) Element {
	var prod big.Int
	prod.Mul(a.toBig(), b.toBig())
	return fromBig(&prod)
}

// Square returns a * a.
func (a Element) Square() Element { return a.Mul(a) }

// Inv returns the multiplicative inverse of a. Panics if a is zero, since
// attempting to invert zero is a programming error (spec §7, class 1).
func (a Element) Inv() Element {
	if a.IsZero() {
		panic("bfield: cannot invert zero")
	}
	exp := new(big.Int).Sub(modulusBig, big.NewInt(2))
	var r big.Int
	r.Exp(a.toBig(), exp, modulusBig)
	return Element{value: r.Uint64()}
}

// Div returns a / b. Panics if b is zero.
func (a Element) Div(b Element) Element {
	return a.Mul(b.Inv())
}

// Exp returns a^n mod p for n >= 0.
func (a Element) Exp(n uint64) Element {
	var r big.Int
	r.Exp(a.toBig(), new(big.Int).SetUint64(n), modulusBig)
	return Element{value: r.Uint64()}
}

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool { return a.value == 0 }

// IsOne reports whether a is the multiplicative identity.
func (a Element) IsOne() bool { return a.value == 1 }

// Equal reports field equality.
func (a Element) Equal(b Element) bool { return a.value == b.value }

// String renders the canonical decimal representation.
func (a Element) String() string { return fmt.Sprintf("%d", a.value) }

// Bytes returns the little-endian 8-byte encoding.
func (a Element) Bytes() [8]byte {
	var out [8]byte
	v := a.value
	for i := 0; i < 8; i++ {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// FromBytes decodes a little-endian 8-byte encoding. The input is reduced
// modulo p, matching the teacher's lenient field.FromBytes behaviour.
func FromBytes(b [8]byte) Element {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = (v << 8) | uint64(b[i])
	}
	return New(v)
}

// BatchInverse inverts all elements at once using Montgomery's trick: one
// field inversion plus 3(n-1) multiplications instead of n inversions.
// Panics if any element is zero.
func BatchInverse(elements []Element) []Element {
	n := len(elements)
	if n == 0 {
		return nil
	}
	acc := make([]Element, n)
	acc[0] = elements[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(elements[i])
	}
	accInv := acc[n-1].Inv()
	results := make([]Element, n)
	for i := n - 1; i > 0; i-- {
		results[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(elements[i])
	}
	results[0] = accInv
	return results
}

// PrimitiveRootOfUnity returns a generator of the unique subgroup of order n,
// where n must divide p-1 and be a power of two. Panics otherwise (spec §7,
// class 1: ArithmeticDomain construction requires a power-of-two length).
func PrimitiveRootOfUnity(n uint64) Element {
	if n == 0 || (n&(n-1)) != 0 {
		panic(fmt.Sprintf("bfield: order %d is not a power of two", n))
	}
	// p - 1 = 2^32 * (2^32 - 1); 2^32 is the largest power-of-two order
	// available, matching Goldilocks' standard generator of order 2^32.
	const maxOrderLog2 = 32
	// 7 generates the whole multiplicative group (order p-1), so
	// 7^((p-1)/2^32) is a primitive (2^32)-th root of unity.
	generatorOfMaxOrder := New(7).Exp((Modulus - 1) >> maxOrderLog2)
	var log2n uint
	for v := n; v > 1; v >>= 1 {
		log2n++
	}
	if log2n > maxOrderLog2 {
		panic(fmt.Sprintf("bfield: order %d exceeds maximum power-of-two subgroup 2^%d", n, maxOrderLog2))
	}
	shift := maxOrderLog2 - log2n
	return generatorOfMaxOrder.Exp(uint64(1) << shift)
}
