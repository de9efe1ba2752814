package vm

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/tables"
)

func TestPaddedHeightIsPowerOfTwoAndAtLeastLookupLength(t *testing.T) {
	trace := NewToyTrace(37)
	h := trace.PaddedHeight()
	if h&(h-1) != 0 {
		t.Errorf("padded height %d is not a power of two", h)
	}
	if h < tables.LookupTableLength {
		t.Errorf("padded height %d is below the Lookup table's hard-coded length %d", h, tables.LookupTableLength)
	}
}

func TestLookupTableLengthIsFixed(t *testing.T) {
	trace := NewToyTrace(10)
	if trace.TableLength(tables.Lookup) != tables.LookupTableLength {
		t.Errorf("expected Lookup table length %d, got %d", tables.LookupTableLength, trace.TableLength(tables.Lookup))
	}
}

func TestTableColumnsWidthMatchesBaseWidth(t *testing.T) {
	trace := NewToyTrace(20)
	for _, id := range tables.All {
		if id == tables.DegreeLowering {
			continue
		}
		cols := trace.TableColumns(id)
		if len(cols) != id.BaseWidth() {
			t.Errorf("table %s: expected %d columns, got %d", id, id.BaseWidth(), len(cols))
		}
	}
}

func TestProgramAttestationDigestDeterministic(t *testing.T) {
	trace := NewToyTrace(20)
	col := trace.TableColumns(tables.Program)[0]
	a := ProgramAttestationDigest(col)
	b := ProgramAttestationDigest(col)
	if a != b {
		t.Error("ProgramAttestationDigest is not deterministic")
	}
}
