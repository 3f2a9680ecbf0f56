// Copyright 2026 the collapse.go authors.  All rights reserved.

// Package puzzle provides a Sudoku board model for the wfc
// solver, plus operations on boards.
//
// In this package, Sudoku boards are made of tiles which are
// either uncommitted or hold a value between 1 and the side
// length of the board (inclusive).  Tiles are addressed by (x, y)
// coordinates starting at 0, with x the column and y the row.
// The side length must be a perfect square, so that the board
// partitions into square boxes; each row, column, and box of a
// solved board must contain every value exactly once.
//
// For each uncommitted tile, the implementation maintains the set
// of values the tile can still take without conflicting with the
// certain values of the tiles it shares a row, column, or box
// with.  Boards are immutable snapshots: committing a value via
// propagation always produces a new board, so callers (notably
// the wfc driver's backtracking stack) can hold old snapshots and
// restore them later.
//
// Boards are constructed empty or with an initial assignment of
// given values.  The givens are checked when the board is built:
// values out of range, two givens on one tile, and assignments
// that constraint propagation proves unsolvable are all
// construction errors, reported as Error values.  Contradictions
// discovered later, during the solve itself, are not errors; they
// are ordinary outcomes consumed by the solver's backtracking.
package puzzle

import (
	"sort"
)

// A Coord addresses one tile of a board: X is the column, Y the
// row, both starting at 0.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// A Summary is the JSON-serializable form of a board: its side
// length and the committed value of every tile in row-major
// order, with 0 for uncommitted tiles.  Summaries are what get
// cached, persisted, and passed between programs.
type Summary struct {
	SideLength int   `json:"sidelen"`
	Values     []int `json:"values"`
}

// New returns a board with the given side length and initial
// assignment, mapping coordinates to values.  A nil or empty map
// gives an empty board.  The side length must be a perfect
// square; the givens must be in range, distinct per tile, and
// jointly solvable as far as constraint propagation can tell.
// Violations are construction errors.
func New(sidelen int, givens map[Coord]int) (*Board, error) {
	mapping, err := boardMappingFor(sidelen)
	if err != nil {
		return nil, err
	}
	gs := make([]given, 0, len(givens))
	for c, v := range givens {
		gs = append(gs, given{c, v})
	}
	sortGivens(gs)
	return create(mapping, gs)
}

// NewFromValueMap returns a board with the given side length and
// an initial assignment mapping each value to the coordinates
// that hold it.  This inverted mapping is preserved for
// compatibility with existing callers; New's coordinate-to-value
// mapping is the preferred interface.
func NewFromValueMap(sidelen int, placements map[int][]Coord) (*Board, error) {
	mapping, err := boardMappingFor(sidelen)
	if err != nil {
		return nil, err
	}
	var gs []given
	for v, cs := range placements {
		for _, c := range cs {
			gs = append(gs, given{c, v})
		}
	}
	sortGivens(gs)
	return create(mapping, gs)
}

// NewFromValues returns a board built from the committed value of
// every tile in row-major order, with 0 meaning an uncommitted
// tile.  The number of values must be the square of a perfect
// square (16, 81, 256, ...); the side length is inferred from it.
func NewFromValues(values []int) (*Board, error) {
	mapping, err := boardMappingForSize(len(values))
	if err != nil {
		return nil, err
	}
	var gs []given
	for i, v := range values {
		if v != 0 {
			gs = append(gs, given{Coord{i % mapping.sidelen, i / mapping.sidelen}, v})
		}
	}
	return create(mapping, gs)
}

// NewFromSummary returns the board described by a Summary.  The
// value count must match the summary's declared side length.
func NewFromSummary(s *Summary) (*Board, error) {
	if len(s.Values) != s.SideLength*s.SideLength {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: BoardSizeAttribute,
			Condition: WrongBoardSizeCondition,
			Values:    ErrorData{len(s.Values), s.SideLength},
		}
	}
	return NewFromValues(s.Values)
}

// Summary returns the board's Summary.  The return value doesn't
// share storage with the board.
func (b *Board) Summary() *Summary {
	return &Summary{SideLength: b.mapping.sidelen, Values: b.Values()}
}

// sortGivens puts givens in reading order, so construction
// behavior and errors don't depend on map iteration order.
func sortGivens(gs []given) {
	sort.Slice(gs, func(i, j int) bool {
		gi, gj := gs[i], gs[j]
		if gi.c.Y != gj.c.Y {
			return gi.c.Y < gj.c.Y
		}
		if gi.c.X != gj.c.X {
			return gi.c.X < gj.c.X
		}
		return gi.v < gj.v
	})
}
