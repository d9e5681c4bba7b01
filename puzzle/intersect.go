package puzzle

/*

Block/line interaction

For each block and each line (row or column) crossing it, the
cells split three ways: in both, only in the block, only in the
line.  A digit possible in the overlap but nowhere else in the
line must land in the overlap, so it can be purged from the rest
of the block; symmetrically for a digit absent from the rest of
the block.  Covers both the pointing-pair and box-line reduction
patterns.

*/

// intersections applies the block/line interaction rule to every
// (block, line) pair with a nonempty overlap.  Repeats until
// stable; returns candidates removed.
func intersections(g *Grid) int {
	total := 0
	for {
		removed := 0
		for bi := range grouping.blocks {
			block := &grouping.blocks[bi]
			for li := range grouping.lines {
				line := &grouping.lines[li]
				both, onlyBlock, onlyLine := overlap(block, line)
				if len(both) == 0 {
					continue
				}
				for d := 1; d <= SideLength; d++ {
					if !groupContains(both, g, d) {
						continue
					}
					inBlock := groupContains(onlyBlock, g, d)
					inLine := groupContains(onlyLine, g, d)
					switch {
					case inBlock && !inLine:
						// the line confines d to the overlap
						for _, idx := range onlyBlock {
							removed += g.removeCandidate(idx, d)
						}
					case inLine && !inBlock:
						// the block confines d to the overlap
						for _, idx := range onlyLine {
							removed += g.removeCandidate(idx, d)
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

// overlap partitions a block and a line into the cells they
// share, the block's remainder, and the line's remainder.
func overlap(block, line *groupDescriptor) (both, onlyBlock, onlyLine []int) {
	inLine := make(map[int]bool, SideLength)
	for _, idx := range line.indices {
		inLine[idx] = true
	}
	for _, idx := range block.indices {
		if inLine[idx] {
			both = append(both, idx)
		} else {
			onlyBlock = append(onlyBlock, idx)
		}
	}
	if len(both) == 0 {
		return
	}
	inBlock := make(map[int]bool, SideLength)
	for _, idx := range block.indices {
		inBlock[idx] = true
	}
	for _, idx := range line.indices {
		if !inBlock[idx] {
			onlyLine = append(onlyLine, idx)
		}
	}
	return
}
