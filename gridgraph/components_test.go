package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestLiveComponents_Conn4vsConn8 checks that diagonal contacts join islands
// only under Conn8.
//
// Grid:
//
//	@ . @
//	. @ .
//	@ . @
func TestLiveComponents_Conn4vsConn8(t *testing.T) {
	lines := []string{"@.@", ".@.", "@.@"}

	opts := DefaultGridOptions()
	gg, err := NewGridGraph(lines, opts)
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	if comps := gg.LiveComponents(); len(comps) != 1 || len(comps[0]) != 5 {
		t.Errorf("Conn8: got %v; want one component of 5", comps)
	}

	opts.Conn = Conn4
	gg, _ = NewGridGraph(lines, opts)
	if comps := gg.LiveComponents(); len(comps) != 5 {
		t.Errorf("Conn4: got %d components; want 5", len(comps))
	}
}

// TestLiveComponents_AfterCascade checks that two separate 4×4 blocks lose
// only their corners at threshold 4 and settle as two islands of 12 cells.
//
// Grid:
//
//	@@@@..@@@@
//	@@@@..@@@@
//	@@@@..@@@@
//	@@@@..@@@@
func TestLiveComponents_AfterCascade(t *testing.T) {
	row := "@@@@..@@@@"
	gg, err := NewGridGraph([]string{row, row, row, row}, DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	gg.TotalEvicted(4, true)

	comps := gg.LiveComponents()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	if want := []int{12, 12}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if gg.Live(0, 0) {
		t.Error("corner (0,0) survived the cascade")
	}
	if got := gg.cells[gg.index(1, 0)]; got != 5 {
		t.Errorf("edge cache = %d; want 5 (4 neighbors + 1)", got)
	}
}

// TestLiveComponents_Empty ensures a fully evicted grid has no components.
func TestLiveComponents_Empty(t *testing.T) {
	gg, _ := NewGridGraph([]string{"@.", ".."}, DefaultGridOptions())
	gg.TotalEvicted(DefaultThreshold, true)
	if comps := gg.LiveComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}
