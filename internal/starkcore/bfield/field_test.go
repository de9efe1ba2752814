package bfield

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	a := New(5)
	b := New(7)
	sum := a.Add(b)
	if !sum.Sub(b).Equal(a) {
		t.Errorf("(a+b)-b != a: got %v", sum.Sub(b))
	}
}

func TestMulInv(t *testing.T) {
	a := New(12345)
	inv := a.Inv()
	if !a.Mul(inv).Equal(One) {
		t.Errorf("a * a^-1 != 1, got %v", a.Mul(inv))
	}
}

func TestMulInvZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic inverting zero")
		}
	}()
	Zero.Inv()
}

func TestAddWraparound(t *testing.T) {
	a := New(Modulus - 1)
	b := New(2)
	got := a.Add(b)
	want := New(1)
	if !got.Equal(want) {
		t.Errorf("wraparound add: got %v want %v", got, want)
	}
}

func TestBatchInverse(t *testing.T) {
	elements := []Element{New(2), New(3), New(4), New(5)}
	invs := BatchInverse(elements)
	for i, e := range elements {
		if !e.Mul(invs[i]).Equal(One) {
			t.Errorf("element %d: e * inv(e) != 1", i)
		}
	}
}

func TestBatchInverseRejectsZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic batch-inverting a zero element")
		}
	}()
	BatchInverse([]Element{New(1), Zero})
}

func TestBytesRoundTrip(t *testing.T) {
	a := New(0xDEADBEEF)
	got := FromBytes(a.Bytes())
	if !got.Equal(a) {
		t.Errorf("Bytes/FromBytes round trip: got %v want %v", got, a)
	}
}

func TestPrimitiveRootOfUnity(t *testing.T) {
	n := uint64(8)
	root := PrimitiveRootOfUnity(n)
	pow := root.Exp(n)
	if !pow.Equal(One) {
		t.Errorf("root^n != 1, got %v", pow)
	}
	half := root.Exp(n / 2)
	if half.Equal(One) {
		t.Error("root^(n/2) == 1, root is not primitive")
	}
}

func TestPrimitiveRootOfUnityRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-power-of-two order")
		}
	}()
	PrimitiveRootOfUnity(6)
}
