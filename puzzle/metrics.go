package puzzle

/*

Grid metrics

Read-only queries over a grid and its groups.  The solve driver
uses the counts to decide termination, the techniques use the
per-group tables, and the diagnostic trace reports all of them.

*/

// SolvedCount returns the number of cells with exactly one
// candidate.
func (g *Grid) SolvedCount() int {
	n := 0
	for i := range g.cells {
		if len(g.cells[i]) == 1 {
			n++
		}
	}
	return n
}

// RemainingCount returns the sum over all cells of (candidate
// count - 1).  It is zero exactly when every cell is solved.
func (g *Grid) RemainingCount() int {
	n := 0
	for i := range g.cells {
		n += len(g.cells[i]) - 1
	}
	return n
}

// solvedCountInGroup counts the solved cells of one group.
func solvedCountInGroup(gd *groupDescriptor, g *Grid) int {
	n := 0
	for _, idx := range gd.indices {
		if len(g.cells[idx]) == 1 {
			n++
		}
	}
	return n
}

// uniqueCandidates returns the union of the candidate sets of
// the given cells.
func uniqueCandidates(indices []int, g *Grid) intset {
	var out intset
	for _, idx := range indices {
		for _, d := range g.cells[idx] {
			out.insert(d)
		}
	}
	return out
}

// candidateFrequency returns, for each digit 1-9, the number of
// the given cells whose candidate set contains it.  Entry 0 is
// unused.
func candidateFrequency(indices []int, g *Grid) [SideLength + 1]int {
	var freq [SideLength + 1]int
	for _, idx := range indices {
		for _, d := range g.cells[idx] {
			freq[d]++
		}
	}
	return freq
}

// groupContains reports whether any of the given cells has d as
// a candidate.
func groupContains(indices []int, g *Grid, d int) bool {
	for _, idx := range indices {
		if g.cells[idx].contains(d) {
			return true
		}
	}
	return false
}
