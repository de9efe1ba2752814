package polynomial

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
)

func b(v uint64) bfield.Element { return bfield.New(v) }

func TestEvalHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2
	p := New([]bfield.Element{b(1), b(2), b(3)})
	x := b(5)
	got := p.Eval(x)
	want := b(1).Add(b(2).Mul(x)).Add(b(3).Mul(x).Mul(x))
	if !got.Equal(want) {
		t.Errorf("Eval mismatch: got %v want %v", got, want)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	p := New([]bfield.Element{b(1), b(2)})
	q := New([]bfield.Element{b(3), b(4), b(5)})
	if !p.Add(q).Sub(q).Eval(b(7)).Equal(p.Eval(b(7))) {
		t.Error("(p+q)-q does not evaluate the same as p")
	}
}

func TestMulDegree(t *testing.T) {
	p := New([]bfield.Element{b(1), b(1)}) // degree 1
	q := New([]bfield.Element{b(1), b(1)}) // degree 1
	got := p.Mul(q)
	if got.Degree() != 2 {
		t.Errorf("expected product degree 2, got %d", got.Degree())
	}
}

func TestDivModReconstructs(t *testing.T) {
	p := New([]bfield.Element{b(6), b(11), b(6), b(1)}) // (x+1)(x+2)(x+3)
	divisor := New([]bfield.Element{b(1), b(1)})        // (x+1)
	invert := func(e bfield.Element) bfield.Element { return e.Inv() }

	q, r := p.DivMod(divisor, invert)
	if !r.IsZero() {
		t.Errorf("expected zero remainder, got degree %d", r.Degree())
	}
	reconstructed := q.Mul(divisor)
	for i := 0; i < 4; i++ {
		x := b(uint64(i + 100))
		if !reconstructed.Eval(x).Equal(p.Eval(x)) {
			t.Errorf("reconstructed polynomial disagrees with p at x=%d", i+100)
		}
	}
}

func TestLagrangeInterpolationPassesThroughPoints(t *testing.T) {
	xs := []bfield.Element{b(1), b(2), b(3), b(4)}
	ys := []bfield.Element{b(10), b(20), b(30), b(40)}
	invert := func(e bfield.Element) bfield.Element { return e.Inv() }

	poly := LagrangeInterpolation(xs, ys, bfield.One, invert)
	for i, x := range xs {
		if !poly.Eval(x).Equal(ys[i]) {
			t.Errorf("interpolated polynomial disagrees at x=%v: got %v want %v", x, poly.Eval(x), ys[i])
		}
	}
}

func TestNewTrimsTrailingZeros(t *testing.T) {
	p := New([]bfield.Element{b(1), b(0), b(0)})
	if p.Degree() != 0 {
		t.Errorf("expected trailing zeros trimmed to degree 0, got %d", p.Degree())
	}
}
