package domain

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/polynomial"
)

func TestOfLengthRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-power-of-two length")
		}
	}()
	OfLength(6)
}

func TestEvaluateInterpolateRoundTrip(t *testing.T) {
	d := OfLength(8)
	poly := polynomial.New([]bfield.Element{bfield.New(1), bfield.New(2), bfield.New(3), bfield.New(4)})
	identity := func(e bfield.Element) bfield.Element { return e }

	values := Evaluate(d, poly, identity)
	if len(values) != 8 {
		t.Fatalf("expected 8 evaluations, got %d", len(values))
	}

	reconstructed := Interpolate(d, values, bfield.One, func(e bfield.Element) bfield.Element { return e.Inv() }, identity)
	for i := 0; i < poly.Degree()+1; i++ {
		if !reconstructed.Coefficient(i).Equal(poly.Coefficient(i)) {
			t.Errorf("coefficient %d mismatch after round trip: got %v want %v", i, reconstructed.Coefficient(i), poly.Coefficient(i))
		}
	}
}

func TestStrideDivides(t *testing.T) {
	big := OfLength(16)
	small := OfLength(4)
	if Stride(big, small) != 4 {
		t.Errorf("expected stride 4, got %d", Stride(big, small))
	}
}

func TestStridePanicsOnGenuineNonDivisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when small does not evenly divide big")
		}
	}()
	// Built by hand: OfLength/PrimitiveRootOfUnity would panic on 12 before
	// Stride is reached. Stride only looks at Length.
	big := Domain{Generator: bfield.One, Offset: bfield.One, Length: 12}
	small := OfLength(8)
	Stride(big, small)
}

func TestDeriveProverDomainsEvalDomainPicksLarger(t *testing.T) {
	doms := DeriveProverDomains(8, 2, 16, 32)
	if doms.EvalDomain().Length != 32 {
		t.Errorf("expected EvalDomain to pick the larger FRI domain, got length %d", doms.EvalDomain().Length)
	}
}

func TestDeriveProverDomainsEvalDomainTiesToQuotient(t *testing.T) {
	doms := DeriveProverDomains(8, 2, 16, 16)
	if doms.EvalDomain() != doms.Quotient {
		t.Error("expected EvalDomain to tie-break to the quotient domain")
	}
}
