package xfield

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
)

func TestMulInv(t *testing.T) {
	a := New(bfield.New(3), bfield.New(5), bfield.New(11))
	inv := a.Inv()
	if !a.Mul(inv).Equal(One) {
		t.Errorf("a * a^-1 != 1, got %v", a.Mul(inv))
	}
}

func TestInvZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic inverting zero")
		}
	}()
	Zero.Inv()
}

func TestAddSubRoundTrip(t *testing.T) {
	a := New(bfield.New(1), bfield.New(2), bfield.New(3))
	b := New(bfield.New(9), bfield.New(8), bfield.New(7))
	if !a.Add(b).Sub(b).Equal(a) {
		t.Error("(a+b)-b != a")
	}
}

func TestFromBEmbedsConstantTerm(t *testing.T) {
	e := FromB(bfield.New(42))
	if !e.Coefficients[0].Equal(bfield.New(42)) || !e.Coefficients[1].IsZero() || !e.Coefficients[2].IsZero() {
		t.Errorf("FromB did not embed as constant term: %v", e)
	}
}

func TestExpMatchesRepeatedMul(t *testing.T) {
	a := New(bfield.New(2), bfield.New(0), bfield.New(1))
	got := a.Exp(5)
	want := a.Mul(a).Mul(a).Mul(a).Mul(a)
	if !got.Equal(want) {
		t.Errorf("Exp(5) != a^5 by repeated mul: got %v want %v", got, want)
	}
}

func TestSquareMatchesMulSelf(t *testing.T) {
	a := New(bfield.New(7), bfield.New(13), bfield.New(21))
	if !a.Square().Equal(a.Mul(a)) {
		t.Error("Square() != Mul(a)")
	}
}
