package air

import (
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// DefaultPadder pads every table by repeating its last real row, the
// simplest padding rule that keeps every AIR constraint's consistency
// section satisfied on trivial columns (real per-table padding rules, e.g.
// "repeat the halt instruction", are an external collaborator per spec §1).
type DefaultPadder struct{}

func (DefaultPadder) Pad(id tables.ID, cols [][]bfield.Element, currentLength int) {
	if currentLength == 0 {
		return
	}
	for _, col := range cols {
		last := col[currentLength-1]
		for row := currentLength; row < len(col); row++ {
			col[row] = last
		}
	}
}

// DefaultExtender derives every ext column as a running sum of its
// corresponding base column (ext column e uses base column e mod the base
// width, so base columns repeat if ext is wider; if ext is narrower, the
// remaining base columns are not used), weighted by the first challenge. This is a toy stand-in for real permutation/lookup
// running-sum extensions, grounded loosely in the shape of those arguments.
type DefaultExtender struct{}

func (DefaultExtender) Extend(id tables.ID, base [][]bfield.Element, ext [][]xfield.Element, challenges []xfield.Element) {
	if len(base) == 0 || len(ext) == 0 {
		return
	}
	weight := xfield.One
	if len(challenges) > 0 {
		weight = challenges[0]
	}
	rows := len(base[0])
	for e, extCol := range ext {
		baseCol := base[e%len(base)]
		running := xfield.Zero
		for row := 0; row < rows; row++ {
			running = running.Add(xfield.FromB(baseCol[row]).Mul(weight))
			extCol[row] = running
		}
	}
}

// DefaultDegreeLowering fills its small derived column set with a
// deterministic, auditable pattern (randomizer-free) rather than any
// genuine degree-lowering introduction of new low-degree columns, since the
// real construction is specific to each table's own high-degree
// constraints (out of scope per spec §1).
type DefaultDegreeLowering struct{}

func (DefaultDegreeLowering) FillDerivedBaseColumns(allBaseColumns [][]bfield.Element) {
	r := tables.BaseColumnRange(tables.DegreeLowering)
	if r.Width() == 0 {
		return
	}
	rows := len(allBaseColumns[0])
	for i := r.Start; i < r.End; i++ {
		col := allBaseColumns[i]
		source := allBaseColumns[i%r.Start]
		for row := 0; row < rows && row < len(col) && row < len(source); row++ {
			col[row] = source[row].Square()
		}
	}
}

func (DefaultDegreeLowering) FillDerivedExtColumns(allBaseColumns [][]bfield.Element, allExtColumns [][]xfield.Element, challenges []xfield.Element) {
	r := tables.ExtColumnRange(tables.DegreeLowering)
	if r.Width() == 0 {
		return
	}
	rows := len(allExtColumns[0])
	for i := r.Start; i < r.End; i++ {
		col := allExtColumns[i]
		source := allExtColumns[i%r.Start]
		for row := 0; row < rows && row < len(col) && row < len(source); row++ {
			col[row] = source[row].Square()
		}
	}
}
