package puzzle

/*

Puzzle geometry

The geometry of a standard puzzle is fixed: 81 cells in a 9x9
square, constrained by 27 houses (9 rows, 9 columns, and 9 blocks
of 3x3 cells).  The 18 row and column houses are also "lines",
which the intersection technique treats separately from blocks.

Because there is only one geometry, the whole topology is
computed once at package initialization and shared read-only by
every solve.

*/

import "fmt"

const (
	// SideLength is the number of cells on a side (and the
	// number of cells in a house).
	SideLength = 9

	// BlockSide is the side length of a block.
	BlockSide = 3

	// CellCount is the total number of cells in a puzzle.
	CellCount = SideLength * SideLength
)

// A GroupID names a row, column, or block for display and
// diagnostics.  Group indices are 1-based, matching the way
// humans talk about puzzles.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

// Group IDs implement Stringer
func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index)
}

// Group type constants.  These are human-readable but not
// localized.
const (
	GtypeRow   = "row"
	GtypeCol   = "column"
	GtypeBlock = "block"
)

// A groupDescriptor identifies a house (or line) and enumerates
// the cell indices it contains, in reading order.
type groupDescriptor struct {
	id      GroupID
	indices [SideLength]int
}

// The topology holds every group of the fixed geometry plus the
// per-cell membership map used for visibility tests.
type topology struct {
	rows   []groupDescriptor
	cols   []groupDescriptor
	blocks []groupDescriptor
	houses []groupDescriptor // rows, then columns, then blocks
	lines  []groupDescriptor // rows, then columns
	member [CellCount][3]int // house index (into houses) of the cell's row, column, block
}

// grouping is the one topology, computed once.
var grouping = computeTopology()

func computeTopology() *topology {
	t := &topology{}
	for i := 0; i < SideLength; i++ {
		// row i
		row := groupDescriptor{id: GroupID{GtypeRow, i + 1}}
		for ci := 0; ci < SideLength; ci++ {
			idx := i*SideLength + ci
			row.indices[ci] = idx
			t.member[idx][0] = i
		}
		t.rows = append(t.rows, row)
		// column i
		col := groupDescriptor{id: GroupID{GtypeCol, i + 1}}
		for ri := 0; ri < SideLength; ri++ {
			idx := ri*SideLength + i
			col.indices[ri] = idx
			t.member[idx][1] = SideLength + i
		}
		t.cols = append(t.cols, col)
		// block i
		blk := groupDescriptor{id: GroupID{GtypeBlock, i + 1}}
		baserow, basecol := BlockSide*(i/BlockSide), BlockSide*(i%BlockSide)
		for bi := 0; bi < SideLength; bi++ {
			idx := (baserow+bi/BlockSide)*SideLength + basecol + bi%BlockSide
			blk.indices[bi] = idx
			t.member[idx][2] = 2*SideLength + i
		}
		t.blocks = append(t.blocks, blk)
	}
	t.houses = append(t.houses, t.rows...)
	t.houses = append(t.houses, t.cols...)
	t.houses = append(t.houses, t.blocks...)
	t.lines = append(t.lines, t.rows...)
	t.lines = append(t.lines, t.cols...)
	return t
}

// cell coordinate helpers, all on reading-order indices
func cellAt(row, col int) int { return row*SideLength + col }
func cellRow(idx int) int     { return idx / SideLength }
func cellCol(idx int) int     { return idx % SideLength }
func cellBlock(idx int) int {
	return (cellRow(idx)/BlockSide)*BlockSide + cellCol(idx)/BlockSide
}

// sees reports whether two distinct cells share a house.
func sees(i, j int) bool {
	if i == j {
		return false
	}
	return cellRow(i) == cellRow(j) || cellCol(i) == cellCol(j) ||
		cellBlock(i) == cellBlock(j)
}
