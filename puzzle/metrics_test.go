package puzzle

import (
	"reflect"
	"testing"
)

func TestCounts(t *testing.T) {
	values, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	g, err := NewGrid(values)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if n := g.SolvedCount(); n != 30 {
		t.Errorf("SolvedCount = %d, expected 30", n)
	}
	// 51 blank cells, each 8 candidates away from solved
	if n := g.RemainingCount(); n != 51*8 {
		t.Errorf("RemainingCount = %d, expected %d", n, 51*8)
	}
	row := &grouping.rows[0] // givens 5, 3, 7
	if n := solvedCountInGroup(row, g); n != 3 {
		t.Errorf("solvedCountInGroup = %d, expected 3", n)
	}
}

func TestGroupQueries(t *testing.T) {
	g := blankGrid()
	g.cells[cellAt(0, 0)] = intset{1, 2}
	g.cells[cellAt(0, 1)] = intset{2, 3}
	g.cells[cellAt(0, 2)] = intset{7}
	indices := []int{cellAt(0, 0), cellAt(0, 1), cellAt(0, 2)}

	if got := uniqueCandidates(indices, g); !reflect.DeepEqual(got, intset{1, 2, 3, 7}) {
		t.Errorf("uniqueCandidates = %v", got)
	}
	freq := candidateFrequency(indices, g)
	expected := [SideLength + 1]int{0, 1, 2, 1, 0, 0, 0, 1, 0, 0}
	if freq != expected {
		t.Errorf("candidateFrequency = %v, expected %v", freq, expected)
	}
	if !groupContains(indices, g, 2) {
		t.Errorf("groupContains missed digit 2")
	}
	if groupContains(indices, g, 9) {
		t.Errorf("groupContains invented digit 9")
	}
}
