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
)

/*

Errors

*/

// An Error describes a problem with a puzzle input or a
// requested operation.  It can produce an error message in
// English, but its main function is to support structured error
// reporting by clients: it tells the client "this thing failed
// to meet this condition" with supplemental details about both.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a client request, a caller-supplied argument, a
// square of the grid, or internal logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	SquareScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	NonDigitCondition
	WrongCountCondition
	NoCandidatesCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	LocationAttribute
	PuzzleAttribute
	IndexAttribute
	ValueAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as required limits).  Every item
// is required to be JSON-serializable, so it can be returned to
// web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case SquareScope:
		es = fmt.Sprintf("Problem in square %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case LocationAttribute:
			es += fmt.Sprintf("In puzzle.%v", nextVal())
		case PuzzleAttribute:
			es += "Puzzle"
		case IndexAttribute:
			es += "Index"
		case ValueAttribute:
			es += "Value"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case NonDigitCondition:
		es += fmt.Sprintf("Character %v is not a decimal digit", nextVal())
	case WrongCountCondition:
		es += fmt.Sprintf("Need exactly %v cell values", nextVal())
	case NoCandidatesCondition:
		es += "No remaining candidates"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

/*

Error constructors for the conditions this package can produce.

*/

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// countError: the cell-value slice isn't 81 long.
func countError(n int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: PuzzleAttribute,
		Condition: WrongCountCondition,
		Values:    ErrorData{n, CellCount},
	}
}

// lengthError: the puzzle string is shorter than 81 characters.
func lengthError(n int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: PuzzleAttribute,
		Condition: TooSmallCondition,
		Values:    ErrorData{n, CellCount},
	}
}

// digitError: a non-digit character inside the first 81.
func digitError(i int, c byte) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: IndexAttribute,
		Condition: NonDigitCondition,
		Values:    ErrorData{i, string(c)},
	}
}
