package puzzle

/*

Y-Wing

A pivot cell with candidates {a,b} and two wing cells visible to
it, one sharing only a (so it holds {a,c}) and one sharing only b
(so it holds {b,c}).  Whichever digit the pivot takes forces one
wing to c, so any cell visible to both wings can never hold c.

Detection and elimination are separable: the driver can run the
technique in detection-only mode, in which case it reports zero
removals (see Options.InertYWing in solver.go).

*/

// yWing finds pivot/wing triples among bi-value cells and, when
// eliminate is set, purges the wings' common digit from every
// cell that sees both wings.  Repeats until stable; returns
// candidates removed.
func yWing(g *Grid, eliminate bool) int {
	total := 0
	for {
		removed := 0
		var bivalue intset
		for i := range g.cells {
			if len(g.cells[i]) == 2 {
				bivalue = append(bivalue, i)
			}
		}
		for _, pivot := range bivalue {
			// candidate wings: bi-value cells visible to the
			// pivot sharing exactly one digit with it
			var wings intset
			for _, w := range bivalue {
				if w != pivot && sees(pivot, w) &&
					intersectCount(g.cells[pivot], g.cells[w]) == 1 {
					wings = append(wings, w)
				}
			}
			for i := 0; i < len(wings); i++ {
				for j := i + 1; j < len(wings); j++ {
					w1, w2 := wings[i], wings[j]
					a := sharedDigit(g.cells[pivot], g.cells[w1])
					b := sharedDigit(g.cells[pivot], g.cells[w2])
					if a == b {
						continue
					}
					// the pivot's candidates must be exactly the
					// two shared digits
					if !g.cells[pivot].contains(a) || !g.cells[pivot].contains(b) {
						continue
					}
					// both wings' remaining digit must agree, and
					// must not be a pivot candidate
					c1 := otherDigit(g.cells[w1], a)
					c2 := otherDigit(g.cells[w2], b)
					if c1 != c2 || g.cells[pivot].contains(c1) {
						continue
					}
					if !eliminate {
						continue
					}
					for v := 0; v < CellCount; v++ {
						if v == pivot || v == w1 || v == w2 {
							continue
						}
						if sees(v, w1) && sees(v, w2) {
							removed += g.removeCandidate(v, c1)
						}
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

// sharedDigit returns the one digit two sets share (they are
// assumed to share exactly one).
func sharedDigit(a, b intset) int {
	for _, d := range a {
		if b.contains(d) {
			return d
		}
	}
	return 0
}

// otherDigit returns the member of a two-digit set that isn't d.
func otherDigit(ds intset, d int) int {
	for _, v := range ds {
		if v != d {
			return v
		}
	}
	return 0
}
