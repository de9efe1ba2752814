// Package tables defines the ten logical sub-tables that partition the
// Master matrix's columns, in the fixed order spec.md §3 names: Program,
// Processor, OpStack, Ram, JumpStack, Hash, Cascade, Lookup, U32,
// DegreeLowering. Column ranges are prefix sums of each table's published
// BASE_WIDTH/EXT_WIDTH, with no gaps, per spec §3's partition invariant.
//
// The teacher's vm/tables.go enumerates a different ten (with a
// ProgramHashTable in place of DegreeLowering); this repo's partition
// follows spec.md's naming exactly and keeps the teacher's attestation
// table as a supplementary, non-column-owning helper (see the vm package).
package tables

import "fmt"

// ID names one of the ten sub-tables, in column order.
type ID int

const (
	Program ID = iota
	Processor
	OpStack
	Ram
	JumpStack
	Hash
	Cascade
	Lookup
	U32
	DegreeLowering
	numTables
)

func (id ID) String() string {
	switch id {
	case Program:
		return "Program"
	case Processor:
		return "Processor"
	case OpStack:
		return "OpStack"
	case Ram:
		return "Ram"
	case JumpStack:
		return "JumpStack"
	case Hash:
		return "Hash"
	case Cascade:
		return "Cascade"
	case Lookup:
		return "Lookup"
	case U32:
		return "U32"
	case DegreeLowering:
		return "DegreeLowering"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// All lists every table in column order.
var All = [numTables]ID{Program, Processor, OpStack, Ram, JumpStack, Hash, Cascade, Lookup, U32, DegreeLowering}

// baseWidths and extWidths are each table's published column counts. Widths
// are a deliberately small, internally-consistent toy schedule (this spec
// treats per-table AIR constraint generators as an external collaborator,
// out of scope per spec §1) rather than Triton VM's production widths.
var baseWidths = [numTables]int{
	Program:        4,
	Processor:      10,
	OpStack:        4,
	Ram:            4,
	JumpStack:      4,
	Hash:           8,
	Cascade:        4,
	Lookup:         4,
	U32:            4,
	DegreeLowering: 2,
}

var extWidths = [numTables]int{
	Program:        2,
	Processor:      2,
	OpStack:        1,
	Ram:            1,
	JumpStack:      1,
	Hash:           2,
	Cascade:        1,
	Lookup:         2,
	U32:            1,
	DegreeLowering: 1,
}

// LookupTableLength is the Lookup table's hard-coded padded length (spec §9
// Open Question: "The Lookup table's length is hard-coded to 1<<8"). Callers
// must ensure the overall padded height is at least this, since Lookup is
// never allowed to be shorter than its lookup-argument domain.
const LookupTableLength = 1 << 8

// BaseWidth returns id's base-matrix column count.
func (id ID) BaseWidth() int { return baseWidths[id] }

// ExtWidth returns id's ext-matrix column count (excluding randomizer
// columns, which are not owned by any table).
func (id ID) ExtWidth() int { return extWidths[id] }

// ColumnRange is a half-open [Start, End) range of columns.
type ColumnRange struct {
	Start, End int
}

// Width returns End - Start.
func (r ColumnRange) Width() int { return r.End - r.Start }

// BaseColumnRange returns id's column range in the base matrix.
func BaseColumnRange(id ID) ColumnRange {
	start := 0
	for _, t := range All {
		if t == id {
			return ColumnRange{Start: start, End: start + t.BaseWidth()}
		}
		start += t.BaseWidth()
	}
	panic("tables: unknown table id")
}

// ExtColumnRange returns id's column range in the ext matrix (randomizer
// columns trail after the last table's range and are not returned here).
func ExtColumnRange(id ID) ColumnRange {
	start := 0
	for _, t := range All {
		if t == id {
			return ColumnRange{Start: start, End: start + t.ExtWidth()}
		}
		start += t.ExtWidth()
	}
	panic("tables: unknown table id")
}

// NumBaseColumns is the total width of the base matrix.
func NumBaseColumns() int {
	total := 0
	for _, w := range baseWidths {
		total += w
	}
	return total
}

// NumExtColumns is the total width of the ext matrix, excluding trailing
// randomizer columns.
func NumExtColumns() int {
	total := 0
	for _, w := range extWidths {
		total += w
	}
	return total
}

// ValidatePartition asserts the prefix-sum invariant spec §3/§8 require:
// column ranges are contiguous, strictly increasing, and cover
// [0, NumBaseColumns) / [0, NumExtColumns) exactly. Panics otherwise, since
// a broken partition is a programming error, never a runtime data issue.
func ValidatePartition() {
	baseCursor, extCursor := 0, 0
	for _, t := range All {
		br := BaseColumnRange(t)
		if br.Start != baseCursor || br.End <= br.Start {
			panic(fmt.Sprintf("tables: base column range for %s is not contiguous", t))
		}
		baseCursor = br.End

		er := ExtColumnRange(t)
		if er.Start != extCursor || er.End <= er.Start {
			panic(fmt.Sprintf("tables: ext column range for %s is not contiguous", t))
		}
		extCursor = er.End
	}
	if baseCursor != NumBaseColumns() {
		panic("tables: base column ranges do not cover NumBaseColumns")
	}
	if extCursor != NumExtColumns() {
		panic("tables: ext column ranges do not cover NumExtColumns")
	}
}

// NonDegreeLoweringTables returns the nine tables that master.Extend extends
// one after another, not in parallel (spec §4.7); DegreeLowering is filled
// afterward by its own derived-column routine, not by a generic extend() call.
func NonDegreeLoweringTables() []ID {
	out := make([]ID, 0, numTables-1)
	for _, t := range All {
		if t != DegreeLowering {
			out = append(out, t)
		}
	}
	return out
}
