package sponge

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
)

func TestHashRowDeterministic(t *testing.T) {
	row := []bfield.Element{bfield.New(1), bfield.New(2), bfield.New(3)}
	a := HashRow(row)
	b := HashRow(row)
	if a != b {
		t.Error("HashRow is not deterministic")
	}
}

func TestHashRowSensitiveToInput(t *testing.T) {
	a := HashRow([]bfield.Element{bfield.New(1)})
	b := HashRow([]bfield.Element{bfield.New(2)})
	if a == b {
		t.Error("different rows hashed to the same digest")
	}
}

func TestPadAndAbsorbLockStep(t *testing.T) {
	s1 := New()
	s2 := New()
	elements := []bfield.Element{bfield.New(10), bfield.New(20), bfield.New(30)}

	s1.PadAndAbsorbAll(elements)
	s2.PadAndAbsorbAll(elements)

	if s1.State() != s2.State() {
		t.Error("two spongesState after absorbing identical input diverged")
	}
}

func TestSqueezeIndicesInRange(t *testing.T) {
	s := New()
	s.PadAndAbsorbAll([]bfield.Element{bfield.New(7)})
	indices := s.SampleIndices(64, 20)
	if len(indices) != 20 {
		t.Fatalf("expected 20 indices, got %d", len(indices))
	}
	for _, idx := range indices {
		if idx >= 64 {
			t.Errorf("index %d out of range [0, 64)", idx)
		}
	}
}

func TestSampleIndicesRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-power-of-two upper bound")
		}
	}()
	New().SampleIndices(100, 1)
}

func TestSampleScalarsCount(t *testing.T) {
	s := New()
	scalars := s.SampleScalars(7)
	if len(scalars) != 7 {
		t.Errorf("expected 7 scalars, got %d", len(scalars))
	}
}

func TestAbsorbChangesSqueezeOutput(t *testing.T) {
	s := New()
	before := s.Squeeze()
	s.Absorb([Rate]bfield.Element{bfield.New(1)})
	after := s.Squeeze()
	if before == after {
		t.Error("squeeze output unchanged after absorbing new data")
	}
}
