package quotient

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/domain"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// TestZerofiersVanishAtExpectedPoints covers spec §4.9's S6 property: the
// initial, consistency, and terminal zerofier-inverse codewords, multiplied
// back by their zerofiers, reproduce 1 everywhere (i.e. each codeword really
// is the inverse, and by construction the zerofier itself vanishes at the
// points its name implies). The transition codeword is checked separately
// below.
func TestZerofiersVanishAtExpectedPoints(t *testing.T) {
	traceDomain := domain.OfLength(8)
	quotientDomain := domain.OfLength(32).WithOffset(bfield.New(3))

	z := Compute(quotientDomain, traceDomain)
	points := quotientDomain.Elements()
	gInv := xfield.FromB(traceDomain.Generator.Inv())
	T := uint64(traceDomain.Length)

	for i, x := range points {
		xx := xfield.FromB(x)
		got := z.Initial[i].Mul(xx.Sub(xfield.One))
		if !got.IsOne() {
			t.Fatalf("initial zerofier-inverse*zerofier != 1 at point %d", i)
		}
		got = z.Consistency[i].Mul(xx.Exp(T).Sub(xfield.One))
		if !got.IsOne() {
			t.Fatalf("consistency zerofier-inverse*zerofier != 1 at point %d", i)
		}
		got = z.Terminal[i].Mul(xx.Sub(gInv))
		if !got.IsOne() {
			t.Fatalf("terminal zerofier-inverse*zerofier != 1 at point %d", i)
		}
	}
}

func TestTransitionZerofierMatchesNumeratorOverDenominator(t *testing.T) {
	traceDomain := domain.OfLength(8)
	quotientDomain := domain.OfLength(32).WithOffset(bfield.New(3))
	z := Compute(quotientDomain, traceDomain)

	gInv := xfield.FromB(traceDomain.Generator.Inv())
	T := uint64(traceDomain.Length)
	points := quotientDomain.Elements()
	for i, x := range points {
		xx := xfield.FromB(x)
		denom := xx.Exp(T).Sub(xfield.One)
		numerator := xx.Sub(gInv)
		want := numerator.Mul(denom.Inv())
		if !z.Transition[i].Equal(want) {
			t.Fatalf("transition zerofier mismatch at point %d", i)
		}
	}
}

func TestAllQuotientsProducesFourSections(t *testing.T) {
	traceDomain := domain.OfLength(8)
	quotientDomain := domain.OfLength(32).WithOffset(bfield.New(3))

	a := air.DefaultAIR{}
	n := quotientDomain.Length
	width := 9 // one constraint per NonDegreeLoweringTables entry, per section
	baseQ := make([][]xfield.Element, tables.NumBaseColumns())
	extQ := make([][]xfield.Element, tables.NumExtColumns())
	for i := range baseQ {
		baseQ[i] = make([]xfield.Element, n)
	}
	for i := range extQ {
		extQ[i] = make([]xfield.Element, n)
	}

	sections := AllQuotients(a, baseQ, extQ, traceDomain, quotientDomain, []xfield.Element{xfield.One})
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}
	for _, s := range sections {
		if len(s.Data) != width {
			t.Errorf("section %v: expected %d constraint columns, got %d", s.Kind, width, len(s.Data))
		}
		for _, col := range s.Data {
			if len(col) != n {
				t.Errorf("section %v: expected column length %d, got %d", s.Kind, n, len(col))
			}
		}
	}
}

func TestNumQuotientsMatchesPerSectionCounts(t *testing.T) {
	a := air.DefaultAIR{}
	want := a.NumQuotients(air.Initial) + a.NumQuotients(air.Consistency) + a.NumQuotients(air.Transition) + a.NumQuotients(air.Terminal)
	if NumQuotients(a) != want {
		t.Errorf("NumQuotients mismatch: got %d want %d", NumQuotients(a), want)
	}
}
