// Package vm defines the ExecutionTrace interface MasterBaseTable consumes
// (spec §1: the VM instruction set and its AET producer are external
// collaborators) plus a tiny worked trace producer sufficient to drive
// tests end to end, grounded loosely on vm/tables.go's
// AlgebraicExecutionTrace and vm/aet.go.
package vm

import (
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
	"github.com/vybium/starkcore/internal/starkcore/tables"
)

// ExecutionTrace is the contract MasterBaseTable.New consumes: for every
// sub-table, the already-computed base columns (each exactly TableLength(id)
// rows, to be padded up to the shared padded height) and the overall padded
// height (already rounded to a power of two by the producer).
type ExecutionTrace interface {
	PaddedHeight() int
	TableColumns(id tables.ID) [][]bfield.Element
	TableLength(id tables.ID) int
}

// ToyTrace is a minimal, self-consistent ExecutionTrace: every table's
// columns hold a simple deterministic pattern long enough to exercise
// padding, randomization, and LDE without depending on a real VM.
type ToyTrace struct {
	padded  int
	lengths [10]int
	columns [10][][]bfield.Element
}

// NewToyTrace builds a trace whose real (pre-padding) length is realLen in
// every table except Lookup, which always has tables.LookupTableLength rows
// (the Lookup table's hard-coded length, spec §9 Open Question). The padded
// height is the next power of two covering max(realLen,
// tables.LookupTableLength).
func NewToyTrace(realLen int) *ToyTrace {
	padded := nextPow2(realLen)
	if padded < tables.LookupTableLength {
		padded = tables.LookupTableLength
	}
	t := &ToyTrace{padded: padded}
	for _, id := range tables.All {
		if id == tables.DegreeLowering {
			continue // filled later by DegreeLoweringTable.fill_derived_base_columns
		}
		length := realLen
		if id == tables.Lookup {
			length = tables.LookupTableLength
		}
		t.lengths[id] = length
		width := id.BaseWidth()
		cols := make([][]bfield.Element, width)
		for c := 0; c < width; c++ {
			col := make([]bfield.Element, length)
			for row := 0; row < length; row++ {
				col[row] = bfield.New(uint64((c+1)*1000 + row))
			}
			cols[c] = col
		}
		t.columns[id] = cols
	}
	return t
}

// PaddedHeight implements ExecutionTrace.
func (t *ToyTrace) PaddedHeight() int { return t.padded }

// TableColumns implements ExecutionTrace.
func (t *ToyTrace) TableColumns(id tables.ID) [][]bfield.Element { return t.columns[id] }

// TableLength implements ExecutionTrace.
func (t *ToyTrace) TableLength(id tables.ID) int { return t.lengths[id] }

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

// ProgramAttestationDigest hashes a program's base column (the Program
// table's own first column, by convention) into a Digest via the sponge,
// supplementing the partition spec.md names with the teacher's
// TIP-0006-style program attestation (vm/tables.go:ProgramHashTable) as a
// helper consumed before Master matrix construction, not as a column-owning
// table of its own.
func ProgramAttestationDigest(programColumn []bfield.Element) digest.Digest {
	return sponge.HashRow(programColumn)
}
