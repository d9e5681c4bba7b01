// sudoku - a logic-based Sudoku solver and rating service.
// Copyright (C) 2026 James Cheung.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"fmt"
	"strings"
)

/*

Puzzle strings

Puzzles travel as strings of 81 decimal digits in reading order,
0 for a blank cell.  Extra characters after the 81st are
tolerated on input (published puzzle strings often carry trailing
newlines or annotations) and never produced on output.

*/

// Parse converts a puzzle string to 81 cell values.  The string
// must be at least 81 characters and the first 81 must all be
// decimal digits; anything else is rejected with an Error before
// any solving begins.
func Parse(s string) ([]int, error) {
	if len(s) < CellCount {
		return nil, lengthError(len(s))
	}
	values := make([]int, CellCount)
	for i := 0; i < CellCount; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, digitError(i, c)
		}
		values[i] = int(c - '0')
	}
	return values, nil
}

// DigitsString serializes a grid as 81 digits in reading order.
// Cells with more than one remaining candidate have no single
// representable digit and come out as 0; callers must treat 0 as
// "unsolved", not as a value.
func (g *Grid) DigitsString() string {
	var b strings.Builder
	b.Grow(CellCount)
	for i := 0; i < CellCount; i++ {
		b.WriteByte(byte('0' + g.digit(i)))
	}
	return b.String()
}

/*

Pretty-printed grids in strings, for the shell and debugging.

*/

// String gives a pretty-printed view of a grid: solved cells
// show their digit, bi-value cells show both candidates, other
// unsolved cells show an underscore.
func (g *Grid) String() string {
	return g.ValuesString(true)
}

// ValuesString returns a pretty-printed grid.  If showPairs is
// specified, 2-candidate cells show their contents.
func (g *Grid) ValuesString(showPairs bool) (result string) {
	if g == nil {
		return
	}
	// first put out the header
	result += " "
	for i := 0; i < SideLength; i++ {
		if i%BlockSide != 0 {
			result += " "
		} else {
			result += "|"
		}
		result += fmt.Sprintf("%2d ", i+1)
	}
	result += "\n"
	// next are the rows, including the separator at the top
	for ri, rowhdr := 0, 'a'; ri < SideLength; ri, rowhdr = ri+1, rowhdr+1 {
		if ri%BlockSide == 0 {
			result += " "
			for i := 0; i < SideLength; i++ {
				result += "+---"
			}
			result += "\n"
		}
		result += string(rowhdr)
		for ci := 0; ci < SideLength; ci++ {
			cs := g.cells[cellAt(ri, ci)]
			if ci%BlockSide != 0 {
				result += " "
			} else {
				result += "|"
			}
			switch {
			case len(cs) == 1:
				result += fmt.Sprintf(" %d ", cs[0])
			case len(cs) == 2 && showPairs:
				result += fmt.Sprintf("%d,%d", cs[0], cs[1])
			case len(cs) == 0:
				result += " ! "
			default:
				result += " _ "
			}
		}
		result += "\n"
	}
	return
}

// CandidatesString returns the full candidate view: each cell is
// a 3x3 character tile showing the digits still possible, so the
// whole grid is 27 columns by 27 rows of digits and dots.
func (g *Grid) CandidatesString() string {
	var b strings.Builder
	for ri := 0; ri < SideLength; ri++ {
		for sub := 0; sub < BlockSide; sub++ {
			for ci := 0; ci < SideLength; ci++ {
				cs := g.cells[cellAt(ri, ci)]
				for k := 0; k < BlockSide; k++ {
					d := sub*BlockSide + k + 1
					if cs.contains(d) {
						b.WriteByte(byte('0' + d))
					} else {
						b.WriteByte('.')
					}
				}
				if ci < SideLength-1 {
					b.WriteByte(' ')
				}
			}
			b.WriteByte('\n')
		}
		if ri < SideLength-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
