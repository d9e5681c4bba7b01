package puzzle

/*

Single-cell techniques

Simple elimination is the baseline constraint propagation: a
solved cell's digit cannot appear anywhere else in any of its
houses.  Hidden singles is its dual: a digit with only one
possible home in a house must live there.

Both loop internally until they stop making progress, so a
second consecutive call always reports zero.

*/

// simpleElimination removes every solved cell's digit from the
// other cells of its houses, repeating until stable.  Returns
// the number of candidates removed.
func simpleElimination(g *Grid) int {
	total := 0
	for {
		removed := 0
		for hi := range grouping.houses {
			house := &grouping.houses[hi]
			for _, idx := range house.indices {
				d := g.digit(idx)
				if d == 0 {
					continue
				}
				for _, other := range house.indices {
					if other != idx {
						removed += g.removeCandidate(other, d)
					}
				}
			}
		}
		total += removed
		if removed == 0 {
			return total
		}
	}
}

// hiddenSingles collapses any cell that is the only home for a
// digit in one of its houses, repeating until stable.  The
// credit for a collapse is the number of candidates it removes
// from the cell (set size before minus one).
func hiddenSingles(g *Grid) int {
	total := 0
	for {
		removed := 0
		for hi := range grouping.houses {
			house := &grouping.houses[hi]
			for d := 1; d <= SideLength; d++ {
				at, count := -1, 0
				for _, idx := range house.indices {
					if g.cells[idx].contains(d) {
						at, count = idx, count+1
					}
				}
				if count == 1 && !g.solved(at) {
					removed += g.setOnly(at, d)
				}
			}
		}
		total += removed
		if removed == 0 {
			return total
		}
	}
}
