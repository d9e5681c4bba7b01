package puzzle

/*

Naked subsets

A naked set is N unsolved cells of a house whose combined
candidates are exactly N digits.  Those digits are fully consumed
by the set, so they can be purged from every other cell of the
house.  Pairs are found by grouping cells on their exact
candidate set; triples by enumerating 3-digit subsets of the
pool of digits seen in 2- and 3-candidate cells.

*/

// nakedPairs finds houses where exactly two cells carry the same
// two-candidate set and purges that pair of digits from the rest
// of the house.  Repeats until stable; returns candidates
// removed.
func nakedPairs(g *Grid) int {
	total := 0
	for {
		removed := 0
		for hi := range grouping.houses {
			house := &grouping.houses[hi]
			// group unsolved bi-value cells by exact candidate set
			pairs := make(map[digitmask][]int)
			for _, idx := range house.indices {
				if len(g.cells[idx]) == 2 {
					m := g.cells[idx].mask()
					pairs[m] = append(pairs[m], idx)
				}
			}
			for m, members := range pairs {
				if len(members) != 2 {
					continue
				}
				ds := m.digits()
				for _, idx := range house.indices {
					if idx != members[0] && idx != members[1] {
						removed += g.subtractCandidates(idx, ds)
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

// nakedTriples enumerates 3-digit subsets of the candidates seen
// in a house's 2- and 3-candidate cells.  A cell matches a
// subset when its two candidates are both in it, or its three
// candidates all are.  Exactly three matching cells make a
// triple; the subset's digits are purged from the rest of the
// house.  Repeats until stable; returns candidates removed.
func nakedTriples(g *Grid) int {
	total := 0
	for {
		removed := 0
		for hi := range grouping.houses {
			house := &grouping.houses[hi]
			var pool intset
			for _, idx := range house.indices {
				if n := len(g.cells[idx]); n == 2 || n == 3 {
					for _, d := range g.cells[idx] {
						pool.insert(d)
					}
				}
			}
			if len(pool) < 3 {
				continue
			}
			forEachSubset(pool, 3, func(sub intset) {
				var matched intset
				for _, idx := range house.indices {
					switch len(g.cells[idx]) {
					case 2:
						if intersectCount(g.cells[idx], sub) >= 2 {
							matched = append(matched, idx)
						}
					case 3:
						if intersectCount(g.cells[idx], sub) == 3 {
							matched = append(matched, idx)
						}
					}
				}
				if len(matched) != 3 {
					return
				}
				for _, idx := range house.indices {
					if !matched.contains(idx) {
						removed += g.subtractCandidates(idx, sub)
					}
				}
			})
		}
		total += removed
		if removed == 0 {
			return total
		}
	}
}
