// Package master implements the Master matrix: a single column-major
// allocation shared by ten logical sub-tables via fixed column ranges
// (spec §3, §4.4), and the MasterBaseTable/MasterExtTable lifecycle built
// on top of it (spec §4.5-§4.10), grounded on
// internal/vybium-starks-vm/protocols/master_table.go.
package master

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/tables"
)

// Matrix is a column-major Rows x Cols array. Each column is a contiguous
// slice of Data, so Column returns a true zero-copy view; a disjoint set of
// column ranges can therefore be handed to separate goroutines safely, the
// "multi-slice by disjoint column ranges" primitive spec §9 calls for.
type Matrix[T any] struct {
	Rows, Cols int
	Data       []T
}

// NewMatrix allocates a zeroed Rows x Cols matrix.
func NewMatrix[T any](rows, cols int) *Matrix[T] {
	return &Matrix[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

// Column returns the zero-copy view of column c.
func (m *Matrix[T]) Column(c int) []T {
	return m.Data[c*m.Rows : (c+1)*m.Rows]
}

// ColumnsInRange returns zero-copy views for every column in r, in order.
func (m *Matrix[T]) ColumnsInRange(r tables.ColumnRange) [][]T {
	out := make([][]T, r.Width())
	for i := 0; i < r.Width(); i++ {
		out[i] = m.Column(r.Start + i)
	}
	return out
}

// AllColumns returns zero-copy views of every column.
func (m *Matrix[T]) AllColumns() [][]T {
	out := make([][]T, m.Cols)
	for c := 0; c < m.Cols; c++ {
		out[c] = m.Column(c)
	}
	return out
}

// Get returns the value at (row, col).
func (m *Matrix[T]) Get(row, col int) T {
	return m.Data[col*m.Rows+row]
}

// Set writes the value at (row, col).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.Data[col*m.Rows+row] = v
}

// Row gathers the values across every column at the given physical row.
// This is an explicit per-row gather (needed to produce hash inputs and
// out-of-domain rows), not a per-domain copy of the table.
func (m *Matrix[T]) Row(row int) []T {
	out := make([]T, m.Cols)
	for c := 0; c < m.Cols; c++ {
		out[c] = m.Data[c*m.Rows+row]
	}
	return out
}

// RowRange gathers columns [colStart, colEnd) at the given physical row.
func (m *Matrix[T]) RowRange(row, colStart, colEnd int) []T {
	out := make([]T, colEnd-colStart)
	for i, c := 0, colStart; c < colEnd; i, c = i+1, c+1 {
		out[i] = m.Data[c*m.Rows+row]
	}
	return out
}

// StridedView presents a logical, smaller-row-count window over m without
// copying: logical row i maps to physical row offset+i*stride. This is how
// the trace-domain view of a sub-table is obtained from randomized-trace
// physical storage (spec §4.4), and how the quotient/FRI domain views are
// obtained from the post-LDE "extended" storage (spec §4.6).
type StridedView[T any] struct {
	m             *Matrix[T]
	offset        int
	stride        int
	length        int
	colStart, end int
}

// NewStridedView builds a view over the given column range, with the given
// row stride/offset/logical length. Panics if the requested rows would run
// past the physical matrix — a programming error, not a runtime data issue.
func NewStridedView[T any](m *Matrix[T], offset, stride, length int, colRange tables.ColumnRange) *StridedView[T] {
	if offset+(length-1)*stride >= m.Rows && length > 0 {
		panic(fmt.Sprintf("master: strided view out of bounds: offset=%d stride=%d length=%d rows=%d", offset, stride, length, m.Rows))
	}
	return &StridedView[T]{m: m, offset: offset, stride: stride, length: length, colStart: colRange.Start, end: colRange.End}
}

// NumRows returns the view's logical row count.
func (v *StridedView[T]) NumRows() int { return v.length }

// NumCols returns the view's column count.
func (v *StridedView[T]) NumCols() int { return v.end - v.colStart }

// Get returns the value at logical (row, localCol).
func (v *StridedView[T]) Get(row, localCol int) T {
	return v.m.Get(v.offset+row*v.stride, v.colStart+localCol)
}

// Set writes the value at logical (row, localCol). Callers must ensure
// disjoint views are used across goroutines; Set performs no locking.
func (v *StridedView[T]) Set(row, localCol int, val T) {
	v.m.Set(v.offset+row*v.stride, v.colStart+localCol, val)
}

// Column returns the logical column localCol gathered into a fresh slice
// (the physical column is strided, so it cannot be returned as a
// zero-copy Go slice; this performs the minimal necessary gather).
func (v *StridedView[T]) Column(localCol int) []T {
	out := make([]T, v.length)
	for row := 0; row < v.length; row++ {
		out[row] = v.Get(row, localCol)
	}
	return out
}

// Row gathers logical row `row` across every column of the view.
func (v *StridedView[T]) Row(row int) []T {
	out := make([]T, v.NumCols())
	for c := range out {
		out[c] = v.Get(row, c)
	}
	return out
}

// Columns gathers every column of the view into a dense [][]T, the shape
// the quotient engine consumes (spec §4.9).
func (v *StridedView[T]) Columns() [][]T {
	out := make([][]T, v.NumCols())
	for c := range out {
		out[c] = v.Column(c)
	}
	return out
}
