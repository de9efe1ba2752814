package air

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/tables"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

func TestDefaultPadderRepeatsLastRealRow(t *testing.T) {
	col := make([]bfield.Element, 8)
	for i := 0; i < 4; i++ {
		col[i] = bfield.New(uint64(i + 1))
	}
	DefaultPadder{}.Pad(tables.Program, [][]bfield.Element{col}, 4)
	for i := 4; i < 8; i++ {
		if !col[i].Equal(col[3]) {
			t.Errorf("row %d: expected padding to repeat last real row, got %v", i, col[i])
		}
	}
}

func TestDefaultPadderNoopOnZeroLength(t *testing.T) {
	col := []bfield.Element{bfield.New(1), bfield.New(2)}
	DefaultPadder{}.Pad(tables.Program, [][]bfield.Element{col}, 0)
	if !col[0].IsOne() || !col[1].Equal(bfield.New(2)) {
		t.Error("Pad with currentLength 0 should leave columns untouched")
	}
}

func TestDefaultExtenderProducesRunningSum(t *testing.T) {
	base := [][]bfield.Element{{bfield.New(1), bfield.New(2), bfield.New(3)}}
	ext := [][]xfield.Element{make([]xfield.Element, 3)}
	challenges := []xfield.Element{xfield.One}

	DefaultExtender{}.Extend(tables.Program, base, ext, challenges)

	want := xfield.FromB(bfield.New(1))
	if !ext[0][0].Equal(want) {
		t.Errorf("row 0: expected running sum %v, got %v", want, ext[0][0])
	}
	want = want.Add(xfield.FromB(bfield.New(2)))
	if !ext[0][1].Equal(want) {
		t.Errorf("row 1: expected running sum %v, got %v", want, ext[0][1])
	}
}

func TestDefaultDegreeLoweringSquaresSourceColumn(t *testing.T) {
	r := tables.BaseColumnRange(tables.DegreeLowering)
	cols := make([][]bfield.Element, tables.NumBaseColumns())
	for i := range cols {
		cols[i] = make([]bfield.Element, 4)
	}
	for row := 0; row < 4; row++ {
		cols[0][row] = bfield.New(uint64(row + 2))
	}

	DefaultDegreeLowering{}.FillDerivedBaseColumns(cols)

	for row := 0; row < 4; row++ {
		want := cols[0][row].Square()
		if !cols[r.Start][row].Equal(want) {
			t.Errorf("row %d: expected squared source %v, got %v", row, want, cols[r.Start][row])
		}
	}
}
