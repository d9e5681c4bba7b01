package puzzle

/*

Puzzle representation

A Grid holds the working state of one solve: for each of the 81
cells, the set of digits the cell can still take.  A given in the
input puzzle becomes a singleton set; a blank becomes the full
set 1-9.  A cell is solved exactly when its set is a singleton.

Techniques only ever shrink candidate sets.  Shrinking a set to
empty signals a contradiction; the removal is performed anyway
and the solve driver detects the empty set and aborts (see
solver.go).

*/

/*

Integer sets

*/

// An intset is a set of small integers, represented as a sorted
// slice.  We use intsets both for candidate digits and for sets
// of cell indices.
type intset []int

// newIntsetRange: make an intset holding 1 through max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// contains reports membership of v.
func (ps intset) contains(v int) bool {
	_, found := (&ps).find(v)
	return found
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// Subtract the passed intset, returning how many values were
// removed.
func (ps *intset) subtract(xs intset) int {
	removed := 0
	for _, v := range xs {
		if ps.remove(v) {
			removed++
		}
	}
	return removed
}

// Intersect with the passed intset, returning how many values
// were removed.
func (ps *intset) intersect(xs intset) int {
	end := len(*ps)
	newend := 0
	for i := 0; i < end; i++ {
		if xs.contains((*ps)[i]) {
			(*ps)[newend] = (*ps)[i]
			newend++
		}
	}
	*ps = (*ps)[:newend]
	return end - newend
}

// intersectCount counts the values two intsets share without
// modifying either.
func intersectCount(a, b intset) int {
	n := 0
	for _, v := range a {
		if b.contains(v) {
			n++
		}
	}
	return n
}

/*

Digit masks

Candidate combinations (the pair and triple techniques group
cells by their exact candidate sets, and enumerate fixed-size
subsets of a digit pool) are keyed by a 9-bit mask rather than by
formatted strings, so key equality is ordering-proof and cheap.

*/

// A digitmask is a set of digits 1-9 packed into the low 9 bits.
type digitmask uint16

// mask converts an intset of digits to its digitmask.
func (ps intset) mask() digitmask {
	var m digitmask
	for _, d := range ps {
		m |= 1 << uint(d-1)
	}
	return m
}

// digits converts a digitmask back to a sorted intset.
func (m digitmask) digits() intset {
	var out intset
	for d := 1; d <= SideLength; d++ {
		if m&(1<<uint(d-1)) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// count returns the number of digits in the mask.
func (m digitmask) count() int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// forEachSubset calls fn with every size-n subset of the pool,
// as an intset in sorted order.  The pool must be sorted and
// duplicate-free (intsets are).
func forEachSubset(pool intset, n int, fn func(intset)) {
	sub := make(intset, n)
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == n {
			fn(sub)
			return
		}
		for i := start; i <= len(pool)-(n-k); i++ {
			sub[k] = pool[i]
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
}

/*

Grids

*/

// A Grid is the candidate state of one puzzle.  It is owned by a
// single solve from construction until the output string is
// extracted; nothing in this package shares a Grid between
// solves.
type Grid struct {
	cells [CellCount]intset
}

// NewGrid builds a Grid from 81 cell values in reading order.
// A value of 0 means a blank cell (all digits possible); 1-9
// mean a given.  Gives an Error if the count or any value is out
// of range.
func NewGrid(values []int) (*Grid, error) {
	if len(values) != CellCount {
		return nil, countError(len(values))
	}
	g := &Grid{}
	for i, v := range values {
		switch {
		case v == 0:
			g.cells[i] = newIntsetRange(SideLength)
		case v >= 1 && v <= SideLength:
			g.cells[i] = intset{v}
		default:
			return nil, rangeError(ValueAttribute, v, 1, SideLength)
		}
	}
	return g, nil
}

// Candidates returns a copy of a cell's candidate set.
func (g *Grid) Candidates(idx int) intset {
	return newIntsetCopy(g.cells[idx])
}

// solved reports whether a cell has exactly one candidate.
func (g *Grid) solved(idx int) bool {
	return len(g.cells[idx]) == 1
}

// digit returns a cell's final digit, or 0 if the cell is not
// solved.
func (g *Grid) digit(idx int) int {
	if len(g.cells[idx]) == 1 {
		return g.cells[idx][0]
	}
	return 0
}

// removeCandidate removes one digit from one cell, returning the
// number of candidates removed (0 or 1).  The removal proceeds
// even if it empties the cell.
func (g *Grid) removeCandidate(idx, d int) int {
	if g.cells[idx].remove(d) {
		return 1
	}
	return 0
}

// subtractCandidates removes a set of digits from one cell,
// returning the number removed.
func (g *Grid) subtractCandidates(idx int, ds intset) int {
	return g.cells[idx].subtract(ds)
}

// reduceTo shrinks a cell to the digits it shares with ds,
// returning the number removed.
func (g *Grid) reduceTo(idx int, ds intset) int {
	return g.cells[idx].intersect(ds)
}

// setOnly collapses a cell to the single digit d, returning the
// number of candidates removed.  d is assumed to be a member of
// the cell's current set.
func (g *Grid) setOnly(idx, d int) int {
	removed := len(g.cells[idx]) - 1
	g.cells[idx] = intset{d}
	return removed
}

// emptyCell returns the index of a cell whose candidate set has
// been emptied, or -1 if the grid is consistent.
func (g *Grid) emptyCell() int {
	for i := range g.cells {
		if len(g.cells[i]) == 0 {
			return i
		}
	}
	return -1
}

// Copy returns a Grid with no shared storage.
func (g *Grid) Copy() *Grid {
	c := &Grid{}
	for i := range g.cells {
		c.cells[i] = newIntsetCopy(g.cells[i])
	}
	return c
}
