// Package air defines the interfaces the Master Table pipeline consumes
// from its external collaborators: per-table padding and extension, the
// derived DegreeLowering columns, and the AIR constraint evaluator that the
// quotient engine composes with zerofier-inverse codewords. Per spec §1
// these generators are themselves out of scope; this package supplies the
// contracts plus one small, honest default implementation so the pipeline
// has something concrete to drive end to end, grounded loosely on
// protocols/air.go's AIR/AIRConstraint shapes.
package air

import (
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/domain"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// TablePadder fills in a sub-table's padding rows given its already-filled
// prefix. cols is the table's own columns (width == id.BaseWidth()),
// row-major-by-column (cols[c] is column c across all rows); currentLength
// is the number of rows already filled with real trace data.
type TablePadder interface {
	Pad(id tables.ID, cols [][]bfield.Element, currentLength int)
}

// TableExtender derives a sub-table's ext columns from its base columns and
// the Fiat-Shamir challenges (spec §4.7).
type TableExtender interface {
	Extend(id tables.ID, base [][]bfield.Element, ext [][]xfield.Element, challenges []xfield.Element)
}

// DegreeLowering fills the derived base and ext columns that lower AIR
// degree, after every other table has been padded (base) / extended (ext).
type DegreeLowering interface {
	FillDerivedBaseColumns(allBaseColumns [][]bfield.Element)
	FillDerivedExtColumns(allBaseColumns [][]bfield.Element, allExtColumns [][]xfield.Element, challenges []xfield.Element)
}

// QuotientSection names one of the four AIR constraint categories, in the
// fixed order the quotient table's output columns are sliced into (spec
// §4.9).
type QuotientSection int

const (
	Initial QuotientSection = iota
	Consistency
	Transition
	Terminal
)

// AIR composes constraint counts per section with fill routines that
// evaluate those constraints, divided by the section's zerofier inverse,
// into the quotient table's column slice for that section.
type AIR interface {
	NumQuotients(section QuotientSection) int

	// FillInitial and FillConsistency evaluate every constraint in their
	// section at every point of the quotient domain.
	FillInitial(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element)
	FillConsistency(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element)

	// FillTransition additionally needs the trace and quotient domains to
	// compute the subgroup-generator shift between consecutive trace rows
	// (spec §4.9).
	FillTransition(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element, traceDomain, quotientDomain domain.Domain)
	FillTerminal(baseQ, extQ [][]xfield.Element, out [][]xfield.Element, zerofierInv []xfield.Element, challenges []xfield.Element)
}
