package puzzle

/*

Sudoku board representation

*/

import (
	"math/rand"
)

/*

Tiles

*/

// A Tile is a single cell of a board.  It has a position, an
// optional committed value (0 if uncommitted), a domain of values
// it can still take (pvals), and the set of values its neighbors
// can still take as far as this tile is concerned (cvals).
//
// The cvals set starts with the full value range and loses a
// value only when this tile is certain to use it: when the tile
// is committed, or when its domain has narrowed to a single
// candidate.  Intersecting a neighbor's domain with cvals is how
// a tile's certainty prunes the tiles around it.
//
// Tiles are immutable once they are part of a board snapshot:
// collapsing a tile produces a new Tile, and propagation copies
// every tile it narrows.
type Tile struct {
	x, y  int
	aval  int    // committed value, 0 if none
	pvals intset // possible values (the domain)
	cvals intset // values neighbors can still take
}

// NewTile creates a free-standing tile at (x, y) on a board with
// the given side length, committed to value (or uncommitted if
// value is 0).  A non-zero value outside [1, sidelen] is an
// argument error.
func NewTile(x, y, sidelen, value int) (*Tile, error) {
	if value == 0 {
		return newEmptyTile(x, y, sidelen), nil
	}
	if value < 1 || value > sidelen {
		return nil, rangeError(ValueAttribute, value, 1, sidelen)
	}
	return newGivenTile(x, y, sidelen, value), nil
}

// Make an uncommitted tile with a full domain.  Doesn't do error
// checking.
func newEmptyTile(x, y, sidelen int) *Tile {
	return &Tile{
		x:     x,
		y:     y,
		pvals: newIntsetRange(sidelen),
		cvals: newIntsetRange(sidelen),
	}
}

// Make a tile committed to the given value.  Doesn't do error
// checking.
func newGivenTile(x, y, sidelen, value int) *Tile {
	t := &Tile{
		x:     x,
		y:     y,
		aval:  value,
		pvals: intset{value},
		cvals: newIntsetRange(sidelen),
	}
	t.cvals.remove(value)
	return t
}

// X returns the tile's column.
func (t *Tile) X() int { return t.x }

// Y returns the tile's row.
func (t *Tile) Y() int { return t.y }

// Value returns the tile's committed value, 0 if uncommitted.
func (t *Tile) Value() int { return t.aval }

// Collapsed reports whether the tile has a committed value.
func (t *Tile) Collapsed() bool { return t.aval != 0 }

// Entropy returns the number of values remaining in the tile's
// domain.
func (t *Tile) Entropy() int { return len(t.pvals) }

// Domain returns the tile's remaining possible values.  The
// return value doesn't share storage with the tile.
func (t *Tile) Domain() []int { return newIntsetCopy(t.pvals) }

// Collapse commits the tile to one value chosen uniformly at
// random from its domain, returning a new Tile whose domain is
// just the pick and whose neighbor set excludes it.  Returns
// false if the domain is empty: the tile has no legal value left.
func (t *Tile) Collapse(rng *rand.Rand) (*Tile, bool) {
	if len(t.pvals) == 0 {
		return nil, false
	}
	pick := t.pvals[rng.Intn(len(t.pvals))]
	nt := &Tile{
		x:     t.x,
		y:     t.y,
		aval:  pick,
		pvals: intset{pick},
		cvals: newIntsetCopy(t.cvals),
	}
	nt.cvals.remove(pick)
	return nt, true
}

// copy returns a deep copy of a tile.
func (t *Tile) copy() *Tile {
	return &Tile{
		x:     t.x,
		y:     t.y,
		aval:  t.aval,
		pvals: newIntsetCopy(t.pvals),
		cvals: newIntsetCopy(t.cvals),
	}
}

// force commits a tile to the given value, used during initial
// assignment.  The value must already be validated as one of the
// tile's possible values.
func (t *Tile) force(value int) *Tile {
	nt := &Tile{
		x:     t.x,
		y:     t.y,
		aval:  value,
		pvals: intset{value},
		cvals: newIntsetCopy(t.cvals),
	}
	nt.cvals.remove(value)
	return nt
}

/*

Boards

*/

// A Board is one snapshot of an N x N Sudoku wavefunction.  The
// tiles are stored row-major; the mapping carries the geometry
// and is shared by all boards of the same size.
//
// Boards are copy-on-write: Propagate builds a new board and
// leaves the receiver intact, so callers (notably the solver's
// backtracking stack) can hold old snapshots and restore them
// later.
type Board struct {
	mapping *boardMapping
	tiles   []*Tile
}

// SideLength returns the board's side length N.
func (b *Board) SideLength() int {
	return b.mapping.sidelen
}

// TileAt returns the tile at column x, row y.  Out-of-range
// coordinates are an argument error.
func (b *Board) TileAt(x, y int) (*Tile, error) {
	if err := b.mapping.checkCoord(x, y); err != nil {
		return nil, err
	}
	return b.tiles[b.mapping.index(x, y)], nil
}

// Affected returns the tiles sharing a row, column, or box with
// (x, y), excluding the tile at (x, y) itself.  Out-of-range
// coordinates are an argument error.
func (b *Board) Affected(x, y int) ([]*Tile, error) {
	if err := b.mapping.checkCoord(x, y); err != nil {
		return nil, err
	}
	is := b.mapping.neighbors[b.mapping.index(x, y)]
	ts := make([]*Tile, len(is))
	for i, idx := range is {
		ts[i] = b.tiles[idx]
	}
	return ts, nil
}

// Values returns the committed value of every tile in row-major
// order, with 0 for uncommitted tiles.  The return value doesn't
// share storage with the board.
func (b *Board) Values() []int {
	vs := make([]int, len(b.tiles))
	for i, t := range b.tiles {
		vs[i] = t.aval
	}
	return vs
}

// Collapsed reports whether every tile has a committed value.
func (b *Board) Collapsed() bool {
	for _, t := range b.tiles {
		if t.aval == 0 {
			return false
		}
	}
	return true
}

// MinEntropyTile returns an uncommitted tile with the smallest
// domain, choosing uniformly at random among ties.  Returns false
// if every tile is committed.
func (b *Board) MinEntropyTile(rng *rand.Rand) (*Tile, bool) {
	var ties []*Tile
	min := b.mapping.sidelen + 1
	for _, t := range b.tiles {
		if t.aval != 0 {
			continue
		}
		if n := len(t.pvals); n < min {
			ties = append(ties[:0], t)
			min = n
		} else if n == min {
			ties = append(ties, t)
		}
	}
	if len(ties) == 0 {
		return nil, false
	}
	return ties[rng.Intn(len(ties))], true
}

// Propagate narrows the board to account for the given collapsed
// tile, returning a new board snapshot.  The receiver is not
// modified.
//
// Propagation is a bounded arc-consistency pass: a worklist is
// seeded with the collapsed tile, and while it is non-empty a
// tile is popped and each uncommitted tile in its row, column,
// and box has its domain intersected with the popped tile's
// neighbor set.  A tile whose domain changed goes (back) on the
// worklist; a tile whose domain became empty fails the whole
// propagation.  The worklist is a LIFO stack, which biases the
// pass depth-first; any order gives the same verdict.
//
// Returns false (and no board) on contradiction.
func (b *Board) Propagate(collapsed *Tile) (*Board, bool) {
	c := &Board{mapping: b.mapping, tiles: make([]*Tile, len(b.tiles))}
	for i, t := range b.tiles {
		c.tiles[i] = t.copy()
	}
	seed := b.mapping.index(collapsed.x, collapsed.y)
	c.tiles[seed] = collapsed.copy()

	stack := []int{seed}
	queued := make([]bool, b.mapping.ccount)
	queued[seed] = true
	for len(stack) > 0 {
		ti := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		queued[ti] = false
		t := c.tiles[ti]
		for _, si := range b.mapping.neighbors[ti] {
			s := c.tiles[si]
			if s.aval != 0 {
				continue
			}
			if !s.pvals.intersect(t.cvals) {
				continue
			}
			if len(s.pvals) == 0 {
				return nil, false
			}
			if len(s.pvals) == 1 {
				// the tile is certain to use its one remaining
				// candidate, so its neighbors no longer can
				s.cvals.remove(s.pvals[0])
			}
			if !queued[si] {
				queued[si] = true
				stack = append(stack, si)
			}
		}
	}
	return c, true
}

/*

Board construction

*/

// A given is one pre-filled cell of an initial assignment.
type given struct {
	c Coord
	v int
}

// create takes a mapping and a list of givens and builds a board
// with those cells forced and their consequences propagated.
// Errors encountered here are construction errors: a given out of
// range, the same cell given twice, or an initial assignment that
// propagation proves unsolvable.
func create(mapping *boardMapping, givens []given) (*Board, error) {
	b := &Board{mapping: mapping, tiles: make([]*Tile, mapping.ccount)}
	for y := 0; y < mapping.sidelen; y++ {
		for x := 0; x < mapping.sidelen; x++ {
			b.tiles[mapping.index(x, y)] = newEmptyTile(x, y, mapping.sidelen)
		}
	}
	for _, g := range givens {
		if err := mapping.checkCoord(g.c.X, g.c.Y); err != nil {
			return nil, err
		}
		if g.v < 1 || g.v > mapping.sidelen {
			return nil, rangeError(GivenValueAttribute, g.v, 1, mapping.sidelen)
		}
		t := b.tiles[mapping.index(g.c.X, g.c.Y)]
		if t.aval != 0 {
			return nil, tileError(g.c, g.v, DuplicateGivenCondition, t.aval)
		}
		if _, ok := t.pvals.find(g.v); !ok {
			// an earlier given already eliminated this value here
			return nil, unsolvableError(g.c, g.v)
		}
		nb, ok := b.Propagate(t.force(g.v))
		if !ok {
			return nil, unsolvableError(g.c, g.v)
		}
		b = nb
	}
	return b, nil
}

/*

Integer sets

*/

// An intset is a set of small integers, represented as a sorted
// slice.  We use intsets both for tile values and for cell
// indices.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
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

// newIntsetCopy: Make a copy of an intset.
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

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
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

// Intersect the passed intset, returning whether anything was
// removed.
func (ps *intset) intersect(xs intset) bool {
	pend, xend := len(*ps), len(xs)
	pi := 0
	newend := pi
	for xi := 0; pi < pend && xi < xend; {
		pv, xv := (*ps)[pi], xs[xi]
		switch {
		case pv == xv:
			if newend != pi {
				(*ps)[newend] = pv
			}
			newend++
			pi++
			xi++
		case pv < xv:
			pi++
		case pv > xv:
			xi++
		}
	}
	*ps = (*ps)[:newend]
	return newend < pend
}

// equal reports whether two intsets hold the same values.
func (ps intset) equal(xs intset) bool {
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
