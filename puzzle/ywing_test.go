package puzzle

import (
	"reflect"
	"testing"
)

// yWingGrid is the classic pattern: a {1,2} pivot with a {1,3}
// wing along its row and a {2,3} wing down its column.  The one
// cell seeing both wings is at the wings' crossing.
func yWingGrid() *Grid {
	g := blankGrid()
	g.cells[cellAt(0, 0)] = intset{1, 2}
	g.cells[cellAt(0, 4)] = intset{1, 3}
	g.cells[cellAt(4, 0)] = intset{2, 3}
	return g
}

func TestYWing(t *testing.T) {
	g := yWingGrid()
	if n := yWing(g, true); n != 1 {
		t.Errorf("removed %d candidates, expected 1", n)
	}
	if g.Candidates(cellAt(4, 4)).contains(3) {
		t.Errorf("crossing cell still holds 3")
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 0)), intset{1, 2}) {
		t.Errorf("pivot was touched: %v", g.Candidates(cellAt(0, 0)))
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 4)), intset{1, 3}) {
		t.Errorf("wing was touched: %v", g.Candidates(cellAt(0, 4)))
	}
	if !g.Candidates(cellAt(4, 1)).contains(3) {
		t.Errorf("cell seeing only one wing lost 3")
	}
	if n := yWing(g, true); n != 0 {
		t.Errorf("second call removed %d candidates", n)
	}
}

func TestYWingInert(t *testing.T) {
	g := yWingGrid()
	before := g.Copy()
	if n := yWing(g, false); n != 0 {
		t.Errorf("inert mode removed %d candidates", n)
	}
	if !reflect.DeepEqual(g.cells, before.cells) {
		t.Errorf("inert mode changed the grid")
	}
}

func TestYWingNeedsDistinctSharedDigits(t *testing.T) {
	g := blankGrid()
	// both wings share digit 1 with the pivot, so the pivot's
	// other candidate is never forced anywhere
	g.cells[cellAt(0, 0)] = intset{1, 2}
	g.cells[cellAt(0, 4)] = intset{1, 3}
	g.cells[cellAt(4, 0)] = intset{1, 3}
	if n := yWing(g, true); n != 0 {
		t.Errorf("removed %d candidates without a proper wing pair", n)
	}
}
