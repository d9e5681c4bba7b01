package puzzle

/*

X-Wing

Four cells at the corners of a rectangle, all carrying the same
candidate digit, with the digit appearing nowhere else in the two
base houses: whichever diagonal the digit takes, it occupies one
corner in each cover house, so the digit can be purged from the
rest of the cover houses.  The base can be the rectangle's rows
(covering its columns) or its columns (covering its rows); both
orientations are scanned.

*/

// xWing scans every rectangle of two rows and two columns for
// the pattern, in both orientations.  Repeats until stable;
// returns candidates removed.
func xWing(g *Grid) int {
	total := 0
	for {
		removed := 0
		for a := 0; a < SideLength; a++ {
			for b := a + 1; b < SideLength; b++ {
				for c := 0; c < SideLength; c++ {
					for e := c + 1; e < SideLength; e++ {
						// rows a,b as base; columns c,e as cover
						removed += xWingAt(g,
							[4]int{cellAt(a, c), cellAt(a, e), cellAt(b, c), cellAt(b, e)},
							grouping.rows[a].indices[:], grouping.rows[b].indices[:],
							grouping.cols[c].indices[:], grouping.cols[e].indices[:])
						// columns a,b as base; rows c,e as cover
						removed += xWingAt(g,
							[4]int{cellAt(c, a), cellAt(c, b), cellAt(e, a), cellAt(e, b)},
							grouping.cols[a].indices[:], grouping.cols[b].indices[:],
							grouping.rows[c].indices[:], grouping.rows[e].indices[:])
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

// xWingAt checks one rectangle with the given base and cover
// houses, purging a qualifying digit from the cover cells
// outside the rectangle.
func xWingAt(g *Grid, corners [4]int, base1, base2, cover1, cover2 []int) int {
	removed := 0
	for d := 1; d <= SideLength; d++ {
		// the digit must be a candidate in all four corners...
		count := 0
		for _, idx := range corners {
			if g.cells[idx].contains(d) {
				count++
			}
		}
		if count != 4 {
			continue
		}
		// ...and nowhere else in either base house
		if countInGroup(base1, g, d) != 2 || countInGroup(base2, g, d) != 2 {
			continue
		}
		for _, cover := range [2][]int{cover1, cover2} {
			for _, idx := range cover {
				if idx != corners[0] && idx != corners[1] &&
					idx != corners[2] && idx != corners[3] {
					removed += g.removeCandidate(idx, d)
				}
			}
		}
	}
	return removed
}

// countInGroup counts the cells of a group holding d as a
// candidate.
func countInGroup(indices []int, g *Grid, d int) int {
	n := 0
	for _, idx := range indices {
		if g.cells[idx].contains(d) {
			n++
		}
	}
	return n
}
