// Copyright 2026 the collapse.go authors.  All rights reserved.

// Package wfc implements a generic Wavefunction Collapse solver.
//
// A wavefunction is a whole-board snapshot in which every cell
// (tile) holds the set of values it can still take.  The solver
// repeatedly picks the least-constrained unresolved tile, commits
// it to one randomly chosen candidate, and propagates that choice
// to the related tiles.  If propagation ever empties a tile's
// candidate set, the solver backtracks to the most recent
// snapshot and tries a different draw.
//
// The package knows nothing about any particular puzzle.  A
// concrete puzzle supplies types satisfying the Tile and
// Wavefunction interfaces; the driver in this package runs the
// collapse/propagate/backtrack loop against them.  The interfaces
// are parameterized over the concrete types themselves, so
// implementations return their own types and the driver never
// needs runtime type assertions.
//
// Snapshots handed to the driver must never be mutated
// afterwards: every propagation produces a brand-new value.  That
// discipline is what makes restoring a popped snapshot safe.
package wfc

import (
	"math/rand"
)

// A Tile is a single cell of a wavefunction.  A tile either has a
// committed value or a set of candidate values (its domain); the
// size of that set is the tile's entropy.
//
// Tiles are immutable: Collapse returns a new tile rather than
// modifying the receiver.
type Tile[T any] interface {
	// Collapsed reports whether the tile has a committed value.
	Collapsed() bool

	// Entropy returns the number of candidate values remaining.
	Entropy() int

	// Collapse commits the tile to one candidate chosen uniformly
	// at random from its domain, returning the new tile.  The
	// second return value is false if the domain is empty, which
	// is a contradiction.
	Collapse(rng *rand.Rand) (T, bool)
}

// A Wavefunction is a whole-board snapshot.  Implementations must
// treat the receiver as immutable: Propagate builds a new
// snapshot and leaves the old one intact, so the driver can keep
// old snapshots on its history stack and restore them verbatim.
type Wavefunction[W any, T Tile[T]] interface {
	// MinEntropyTile returns an uncommitted tile with the fewest
	// remaining candidates, choosing uniformly at random among
	// ties.  The second return value is false when every tile is
	// already committed, which means there is nothing left to do.
	MinEntropyTile(rng *rand.Rand) (T, bool)

	// Propagate narrows the domains of all tiles directly or
	// transitively affected by the given just-collapsed tile,
	// returning the narrowed snapshot.  The second return value
	// is false if any tile's domain became empty, which is a
	// contradiction; in that case the returned snapshot must be
	// discarded.
	Propagate(collapsed T) (W, bool)

	// Collapsed reports whether every tile has a committed value.
	Collapsed() bool
}
