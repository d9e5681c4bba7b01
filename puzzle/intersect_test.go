package puzzle

import (
	"testing"
)

func TestIntersectionPointing(t *testing.T) {
	g := blankGrid()
	// in block 0, digit 5 survives only in the row-0 overlap, so
	// it must leave the rest of row 0
	g.cells[cellAt(0, 0)] = intset{1, 5}
	g.cells[cellAt(0, 1)] = intset{2, 5}
	g.cells[cellAt(0, 2)] = intset{3, 4}
	for ri := 1; ri < BlockSide; ri++ {
		for ci := 0; ci < BlockSide; ci++ {
			g.cells[cellAt(ri, ci)] = intset{1, 2, 3, 4, 6, 7, 8, 9}
		}
	}
	if n := intersections(g); n != 6 {
		t.Errorf("removed %d candidates, expected 6", n)
	}
	for ci := 3; ci < SideLength; ci++ {
		if g.Candidates(cellAt(0, ci)).contains(5) {
			t.Errorf("row cell %d still holds 5", ci)
		}
	}
	if !g.Candidates(cellAt(0, 0)).contains(5) {
		t.Errorf("overlap cell lost 5")
	}
	if !g.Candidates(cellAt(3, 0)).contains(5) {
		t.Errorf("cell outside the row lost 5")
	}
	if n := intersections(g); n != 0 {
		t.Errorf("second call removed %d candidates", n)
	}
}

func TestIntersectionBoxLine(t *testing.T) {
	g := blankGrid()
	// in column 0, digit 9 survives only in the block-0 overlap,
	// so it must leave the rest of block 0
	for ri := BlockSide; ri < SideLength; ri++ {
		g.cells[cellAt(ri, 0)] = intset{1, 2, 3, 4, 5, 6, 7, 8}
	}
	if n := intersections(g); n != 6 {
		t.Errorf("removed %d candidates, expected 6", n)
	}
	for ri := 0; ri < BlockSide; ri++ {
		for ci := 1; ci < BlockSide; ci++ {
			if g.Candidates(cellAt(ri, ci)).contains(9) {
				t.Errorf("block cell (%d,%d) still holds 9", ri, ci)
			}
		}
	}
	for ri := 0; ri < BlockSide; ri++ {
		if !g.Candidates(cellAt(ri, 0)).contains(9) {
			t.Errorf("overlap cell (%d,0) lost 9", ri)
		}
	}
	if n := intersections(g); n != 0 {
		t.Errorf("second call removed %d candidates", n)
	}
}
