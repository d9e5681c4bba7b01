package puzzle

import (
	"reflect"
	"testing"
)

func TestHiddenPairs(t *testing.T) {
	g := blankGrid()
	g.cells[cellAt(0, 0)] = intset{4, 5, 6, 7}
	g.cells[cellAt(0, 1)] = intset{4, 5, 8, 9}
	for ci := 2; ci < SideLength; ci++ {
		g.cells[cellAt(0, ci)] = intset{1, 2, 3, 6, 7, 8, 9}
	}
	// 4 and 5 live only in the first two row cells, which lose
	// their other two candidates each
	if n := hiddenPairs(g); n != 4 {
		t.Errorf("removed %d candidates, expected 4", n)
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 0)), intset{4, 5}) {
		t.Errorf("first pair cell holds %v", g.Candidates(cellAt(0, 0)))
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 1)), intset{4, 5}) {
		t.Errorf("second pair cell holds %v", g.Candidates(cellAt(0, 1)))
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 2)), intset{1, 2, 3, 6, 7, 8, 9}) {
		t.Errorf("other row cell was touched: %v", g.Candidates(cellAt(0, 2)))
	}
	if n := hiddenPairs(g); n != 0 {
		t.Errorf("second call removed %d candidates", n)
	}
}

func TestHiddenPairsLooseDigit(t *testing.T) {
	g := blankGrid()
	// like the case above, but a third cell also holds a 4, so
	// {4,5} is not confined to two cells
	g.cells[cellAt(0, 0)] = intset{4, 5, 6, 7}
	g.cells[cellAt(0, 1)] = intset{4, 5, 8, 9}
	for ci := 2; ci < SideLength; ci++ {
		g.cells[cellAt(0, ci)] = intset{1, 2, 3, 6, 7, 8, 9}
	}
	g.cells[cellAt(0, 2)] = intset{1, 2, 3, 4, 6, 7}
	if n := hiddenPairs(g); n != 0 {
		t.Errorf("removed %d candidates with a loose digit around", n)
	}
}

func TestHiddenTriples(t *testing.T) {
	g := blankGrid()
	g.cells[cellAt(0, 0)] = intset{1, 2, 5, 6}
	g.cells[cellAt(0, 1)] = intset{2, 3, 7, 8}
	g.cells[cellAt(0, 2)] = intset{1, 3, 4, 9}
	for ci := 3; ci < SideLength; ci++ {
		g.cells[cellAt(0, ci)] = intset{4, 5, 6, 7, 8, 9}
	}
	// 1, 2, 3 each occur twice in row 0, all inside the first
	// three cells; each of those drops its two other candidates
	if n := hiddenTriples(g); n != 6 {
		t.Errorf("removed %d candidates, expected 6", n)
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 0)), intset{1, 2}) {
		t.Errorf("first triple cell holds %v", g.Candidates(cellAt(0, 0)))
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 1)), intset{2, 3}) {
		t.Errorf("second triple cell holds %v", g.Candidates(cellAt(0, 1)))
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 2)), intset{1, 3}) {
		t.Errorf("third triple cell holds %v", g.Candidates(cellAt(0, 2)))
	}
	if !reflect.DeepEqual(g.Candidates(cellAt(0, 4)), intset{4, 5, 6, 7, 8, 9}) {
		t.Errorf("other row cell was touched: %v", g.Candidates(cellAt(0, 4)))
	}
	if n := hiddenTriples(g); n != 0 {
		t.Errorf("second call removed %d candidates", n)
	}
}
