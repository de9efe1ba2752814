package tables

import "testing"

func TestValidatePartitionDoesNotPanic(t *testing.T) {
	ValidatePartition()
}

func TestColumnRangesAreContiguous(t *testing.T) {
	cursor := 0
	for _, id := range All {
		r := BaseColumnRange(id)
		if r.Start != cursor {
			t.Errorf("table %s: base range starts at %d, expected %d", id, r.Start, cursor)
		}
		cursor = r.End
	}
	if cursor != NumBaseColumns() {
		t.Errorf("base ranges cover %d columns, NumBaseColumns reports %d", cursor, NumBaseColumns())
	}
}

func TestNonDegreeLoweringTablesExcludesDegreeLowering(t *testing.T) {
	for _, id := range NonDegreeLoweringTables() {
		if id == DegreeLowering {
			t.Error("NonDegreeLoweringTables included DegreeLowering")
		}
	}
	if len(NonDegreeLoweringTables()) != len(All)-1 {
		t.Errorf("expected %d tables, got %d", len(All)-1, len(NonDegreeLoweringTables()))
	}
}

func TestTableOrderMatchesSpec(t *testing.T) {
	want := []ID{Program, Processor, OpStack, Ram, JumpStack, Hash, Cascade, Lookup, U32, DegreeLowering}
	if len(All) != len(want) {
		t.Fatalf("expected %d tables, got %d", len(want), len(All))
	}
	for i, id := range want {
		if All[i] != id {
			t.Errorf("position %d: expected %s, got %s", i, id, All[i])
		}
	}
}

func TestUnknownIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown table id")
		}
	}()
	BaseColumnRange(ID(999))
}
