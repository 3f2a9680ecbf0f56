// collapse.go - a wavefunction-collapse Sudoku solver and toolkit.
// Copyright (C) 2026 the collapse.go authors.
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
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board or a requested
// operation.  It can produce an error message in English, but its
// main function is to support structured error handling by
// callers: it tells the caller "this thing failed to meet this
// condition", with supplemental details about the thing and the
// condition.
//
// Errors are only used for caller-visible failures: bad geometry,
// out-of-range arguments, and unsolvable initial assignments.
// Contradictions found during search are not Errors; they are
// ordinary outcomes consumed by the solver's backtracking.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, the board geometry,
// a particular tile, or a failure of internal logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GeometryScope
	TileScope
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
// scope/attribute/value failed to satisfy.  There are a number of
// known, named predicates and then a "general" (arbitrary English
// string) predicate for runtime errors.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	NotInSetCondition
	NoPossibleValuesCondition
	NonSquareCondition
	DuplicateGivenCondition
	UnsolvableGivensCondition
	WrongBoardSizeCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	ValueAttribute
	GivenValueAttribute
	CoordinateAttribute
	SideLengthAttribute
	BoardSizeAttribute
	NamedAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as minimum required values).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so errors can be persisted and transmitted.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce
// an appropriate (English, non-localized) message.
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
	case ArgumentScope:
		es = "Invalid argument: "
	case GeometryScope:
		es = "Invalid geometry: "
	case TileScope:
		es = fmt.Sprintf("Problem in tile %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case ValueAttribute:
			es += "Value"
		case GivenValueAttribute:
			es += "Given value"
		case CoordinateAttribute:
			es += "Coordinate"
		case SideLengthAttribute:
			es += "Side length"
		case BoardSizeAttribute:
			es += "Board size"
		case NamedAttribute:
			es += fmt.Sprint(nextVal())
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
	case NotInSetCondition:
		es += fmt.Sprintf("Must be in possible values %v", nextVal())
	case NoPossibleValuesCondition:
		es += "No remaining possible values"
	case NonSquareCondition:
		es += "Not a perfect square"
	case DuplicateGivenCondition:
		es += fmt.Sprintf("Tile is already assigned value %v", nextVal())
	case UnsolvableGivensCondition:
		es += "Given values cannot be extended to a solution"
	case WrongBoardSizeCondition:
		es += fmt.Sprintf("Doesn't match specified side length (%v)", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

/*

Error constructors

*/

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val interface{}, min, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if v, ok := val.(int); ok && v < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// geometryError returns an Error about a board dimension that
// fails a geometric condition.
func geometryError(attr ErrorAttribute, val int, cond ErrorCondition, limit int) Error {
	err := Error{
		Scope:     GeometryScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData{val},
	}
	if cond == TooSmallCondition || cond == TooLargeCondition {
		err.Values = append(err.Values, limit)
	}
	return err
}

// tileError returns an Error from an attempted operation on a
// tile that would violate a constraint on the tile.
func tileError(c Coord, v interface{}, cond ErrorCondition, extra ...interface{}) Error {
	err := Error{
		Scope:     TileScope,
		Structure: AttributeValueStructure,
		Attribute: GivenValueAttribute,
		Condition: cond,
		Values:    ErrorData{c, v},
	}
	err.Values = append(err.Values, extra...)
	return err
}

// unsolvableError returns the construction Error produced when
// the initial assignment cannot be extended to a solution.
func unsolvableError(c Coord, v int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: GivenValueAttribute,
		Condition: UnsolvableGivensCondition,
		Values:    ErrorData{c, v},
	}
}
