package puzzle

/*

Hidden subsets

A hidden set is N digits confined to exactly N cells of a house.
Those cells must hold those digits, so every other candidate can
be purged from them.  Unlike naked sets the eliminations land on
the matching cells themselves, not on the rest of the house.

*/

// hiddenPairs enumerates 2-digit subsets of a house's remaining
// candidates.  When exactly two cells contain both digits and no
// other cell contains either, the two cells are reduced to
// exactly that pair.  Repeats until stable; returns candidates
// removed.
func hiddenPairs(g *Grid) int {
	total := 0
	for {
		removed := 0
		for hi := range grouping.houses {
			house := &grouping.houses[hi]
			pool := uniqueCandidates(house.indices[:], g)
			if len(pool) < 2 {
				continue
			}
			forEachSubset(pool, 2, func(sub intset) {
				var matched intset
				loose := false // a subset digit outside the matched cells
				for _, idx := range house.indices {
					switch intersectCount(g.cells[idx], sub) {
					case 2:
						matched = append(matched, idx)
					case 1:
						loose = true
					}
				}
				if loose || len(matched) != 2 {
					return
				}
				for _, idx := range matched {
					removed += g.reduceTo(idx, sub)
				}
			})
		}
		total += removed
		if removed == 0 {
			return total
		}
	}
}

// hiddenTriples looks only at houses with at most two solved
// cells, keeps the digits occurring two or three times there,
// and enumerates 3-digit subsets of those.  A cell matches when
// it shares at least two digits with the subset; exactly three
// matching cells with no subset digit elsewhere make a triple,
// and the three cells are reduced to the subset's digits.
// Repeats until stable; returns candidates removed.
func hiddenTriples(g *Grid) int {
	total := 0
	for {
		removed := 0
		for hi := range grouping.houses {
			house := &grouping.houses[hi]
			if solvedCountInGroup(house, g) > 2 {
				continue
			}
			freq := candidateFrequency(house.indices[:], g)
			var pool intset
			for d := 1; d <= SideLength; d++ {
				if freq[d] == 2 || freq[d] == 3 {
					pool = append(pool, d)
				}
			}
			if len(pool) < 3 {
				continue
			}
			forEachSubset(pool, 3, func(sub intset) {
				var matched intset
				loose := false
				for _, idx := range house.indices {
					switch n := intersectCount(g.cells[idx], sub); {
					case n >= 2:
						matched = append(matched, idx)
					case n == 1:
						loose = true
					}
				}
				if loose || len(matched) != 3 {
					return
				}
				for _, idx := range matched {
					removed += g.reduceTo(idx, sub)
				}
			})
		}
		total += removed
		if removed == 0 {
			return total
		}
	}
}
