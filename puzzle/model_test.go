package puzzle

import (
	"math/rand"
	"reflect"
	"testing"
)

/*

Test Values

*/

var (
	partialRowValues = []int{
		1, 2, 3, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	solvedSimpleValues = []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	lastTileValues = []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 0,
	}
)

/*

Integer sets

*/

func TestIntsetBasics(t *testing.T) {
	ps := newIntsetRange(4)
	if !ps.equal(intset{1, 2, 3, 4}) {
		t.Fatalf("newIntsetRange(4) = %v", ps)
	}
	if found := ps.insert(3); !found {
		t.Errorf("Inserting a present value reported absent.")
	}
	if found := ps.insert(6); found {
		t.Errorf("Inserting an absent value reported present.")
	}
	if !ps.equal(intset{1, 2, 3, 4, 6}) {
		t.Fatalf("After insert: %v", ps)
	}
	if removed := ps.remove(5); removed {
		t.Errorf("Removing an absent value reported present.")
	}
	if removed := ps.remove(2); !removed {
		t.Errorf("Removing a present value reported absent.")
	}
	if !ps.equal(intset{1, 3, 4, 6}) {
		t.Fatalf("After remove: %v", ps)
	}
	if where, found := ps.find(4); !found || where != 2 {
		t.Errorf("find(4) = (%d, %v), expected (2, true)", where, found)
	}
	if _, found := ps.find(5); found {
		t.Errorf("find(5) found a missing value.")
	}
}

func TestIntsetIntersect(t *testing.T) {
	cases := []struct {
		in, xs, out intset
		changed     bool
	}{
		{intset{1, 2, 3, 4}, intset{2, 4, 6}, intset{2, 4}, true},
		{intset{1, 2, 3}, intset{1, 2, 3}, intset{1, 2, 3}, false},
		{intset{1, 2, 3}, intset{}, intset{}, true},
		{intset{}, intset{1, 2}, intset{}, false},
		{intset{5, 9}, intset{1, 2, 3}, intset{}, true},
	}
	for _, c := range cases {
		ps := newIntsetCopy(c.in)
		changed := ps.intersect(c.xs)
		if changed != c.changed || !ps.equal(c.out) {
			t.Errorf("%v.intersect(%v) = %v (changed %v), expected %v (changed %v)",
				c.in, c.xs, ps, changed, c.out, c.changed)
		}
	}
}

/*

Tiles

*/

func TestNewTile(t *testing.T) {
	tile, err := NewTile(2, 1, 9, 0)
	if err != nil {
		t.Fatalf("Couldn't create an empty tile: %v", err)
	}
	if tile.X() != 2 || tile.Y() != 1 || tile.Collapsed() || tile.Entropy() != 9 {
		t.Errorf("Bad empty tile: %+v", *tile)
	}
	tile, err = NewTile(0, 0, 9, 7)
	if err != nil {
		t.Fatalf("Couldn't create a given tile: %v", err)
	}
	if tile.Value() != 7 || !tile.Collapsed() || tile.Entropy() != 1 {
		t.Errorf("Bad given tile: %+v", *tile)
	}
	if _, found := tile.cvals.find(7); found {
		t.Errorf("Given tile still offers its own value to neighbors.")
	}
	for _, v := range []int{-1, 10, 100} {
		if _, err := NewTile(0, 0, 9, v); err == nil {
			t.Errorf("Creating a tile with value %d did not fail.", v)
		} else if e, ok := err.(Error); !ok || e.Scope != ArgumentScope {
			t.Errorf("Tile value %d gave unexpected error: %v", v, err)
		}
	}
}

func TestTileCollapse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// a single-candidate tile collapses deterministically
	tile := newEmptyTile(0, 0, 4)
	tile.pvals = intset{3}
	nt, ok := tile.Collapse(rng)
	if !ok {
		t.Fatalf("Collapse of a single-candidate tile failed.")
	}
	if nt.Value() != 3 || !nt.pvals.equal(intset{3}) {
		t.Errorf("Collapsed tile is %+v, expected value 3", *nt)
	}
	if _, found := nt.cvals.find(3); found {
		t.Errorf("Collapsed tile still offers its value to neighbors.")
	}
	if tile.Collapsed() {
		t.Errorf("Collapse mutated the original tile.")
	}

	// a multi-candidate tile collapses to one of its candidates
	tile = newEmptyTile(0, 0, 4)
	nt, ok = tile.Collapse(rng)
	if !ok {
		t.Fatalf("Collapse of a full-domain tile failed.")
	}
	if _, found := tile.pvals.find(nt.Value()); !found {
		t.Errorf("Collapse picked %d, not in domain %v", nt.Value(), tile.pvals)
	}

	// an empty-domain tile is a contradiction
	tile = newEmptyTile(0, 0, 4)
	tile.pvals = intset{}
	if _, ok := tile.Collapse(rng); ok {
		t.Errorf("Collapse of an empty-domain tile did not fail.")
	}
}

/*

Board construction

*/

func TestNewErrors(t *testing.T) {
	if _, err := New(5, nil); err == nil {
		t.Fatalf("Creating a 5x5 board did not fail.")
	} else if err.(Error).Condition != NonSquareCondition {
		t.Errorf("5x5 board gave unexpected error: %v", err)
	}
	if _, err := New(9, map[Coord]int{{0, 0}: 10}); err == nil {
		t.Fatalf("Creating a board with out-of-range given did not fail.")
	} else if err.(Error).Condition != TooLargeCondition {
		t.Errorf("Out-of-range given gave unexpected error: %v", err)
	}
	if _, err := New(9, map[Coord]int{{9, 0}: 1}); err == nil {
		t.Fatalf("Creating a board with out-of-range coordinate did not fail.")
	} else if err.(Error).Attribute != CoordinateAttribute {
		t.Errorf("Out-of-range coordinate gave unexpected error: %v", err)
	}

	// two equal values in one row conflict during initial propagation
	if _, err := New(4, map[Coord]int{{0, 0}: 1, {3, 0}: 1}); err == nil {
		t.Fatalf("Creating a board with a row conflict did not fail.")
	} else if err.(Error).Condition != UnsolvableGivensCondition {
		t.Errorf("Row conflict gave unexpected error: %v", err)
	}

	// two values on the same tile
	placements := map[int][]Coord{1: {{0, 0}}, 2: {{0, 0}}}
	if _, err := NewFromValueMap(4, placements); err == nil {
		t.Fatalf("Creating a board with a doubly-given tile did not fail.")
	} else if err.(Error).Condition != DuplicateGivenCondition {
		t.Errorf("Doubly-given tile gave unexpected error: %v", err)
	}
}

func TestNewFromValues(t *testing.T) {
	if _, err := NewFromValues(make([]int, 80)); err == nil {
		t.Fatalf("Creating a board from 80 values did not fail.")
	}
	b, err := NewFromValues(partialRowValues)
	if err != nil {
		t.Fatalf("Couldn't create a board from values: %v", err)
	}
	if b.SideLength() != 4 {
		t.Errorf("Board side length is %d, expected 4", b.SideLength())
	}
	if !reflect.DeepEqual(b.Values(), partialRowValues) {
		t.Errorf("Board values are %v, expected %v", b.Values(), partialRowValues)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	b, err := NewFromValues(partialRowValues)
	if err != nil {
		t.Fatalf("Couldn't create a board from values: %v", err)
	}
	s := b.Summary()
	if s.SideLength != 4 || !reflect.DeepEqual(s.Values, partialRowValues) {
		t.Errorf("Bad summary: %+v", *s)
	}
	b2, err := NewFromSummary(s)
	if err != nil {
		t.Fatalf("Couldn't rebuild a board from its summary: %v", err)
	}
	if !reflect.DeepEqual(b2.Values(), b.Values()) {
		t.Errorf("Summary round trip changed the values.")
	}
	s.Values = s.Values[:10]
	if _, err := NewFromSummary(s); err == nil {
		t.Fatalf("Rebuilding from a truncated summary did not fail.")
	} else if err.(Error).Condition != WrongBoardSizeCondition {
		t.Errorf("Truncated summary gave unexpected error: %v", err)
	}
}

/*

Board queries

*/

func TestTileAtAndAffected(t *testing.T) {
	b, err := NewFromValues(partialRowValues)
	if err != nil {
		t.Fatalf("Couldn't create a board from values: %v", err)
	}
	tile, err := b.TileAt(1, 0)
	if err != nil {
		t.Fatalf("TileAt(1, 0) failed: %v", err)
	}
	if tile.Value() != 2 {
		t.Errorf("TileAt(1, 0) has value %d, expected 2", tile.Value())
	}
	if _, err := b.TileAt(4, 0); err == nil {
		t.Errorf("TileAt(4, 0) did not fail.")
	}
	affected, err := b.Affected(0, 0)
	if err != nil {
		t.Fatalf("Affected(0, 0) failed: %v", err)
	}
	if len(affected) != 7 {
		t.Errorf("Affected(0, 0) returned %d tiles, expected 7", len(affected))
	}
	for _, a := range affected {
		if a.X() == 0 && a.Y() == 0 {
			t.Errorf("Affected(0, 0) includes the tile itself.")
		}
	}
	if _, err := b.Affected(-1, 0); err == nil {
		t.Errorf("Affected(-1, 0) did not fail.")
	}
}

func TestMinEntropyTile(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b, err := NewFromValues(partialRowValues)
	if err != nil {
		t.Fatalf("Couldn't create a board from values: %v", err)
	}
	// (3,0) is the only tile narrowed to a single candidate
	tile, ok := b.MinEntropyTile(rng)
	if !ok {
		t.Fatalf("MinEntropyTile found nothing on a partial board.")
	}
	if tile.X() != 3 || tile.Y() != 0 || !tile.pvals.equal(intset{4}) {
		t.Errorf("MinEntropyTile chose (%d,%d) with domain %v, expected (3,0) with [4]",
			tile.X(), tile.Y(), tile.pvals)
	}

	// a fully collapsed board has no tile to choose
	b, err = NewFromValues(solvedSimpleValues)
	if err != nil {
		t.Fatalf("Couldn't create a solved board: %v", err)
	}
	if _, ok := b.MinEntropyTile(rng); ok {
		t.Errorf("MinEntropyTile found a tile on a collapsed board.")
	}
	if !b.Collapsed() {
		t.Errorf("Solved board does not report collapsed.")
	}
}

/*

Propagation

*/

func TestPropagateNarrows(t *testing.T) {
	b, err := New(4, nil)
	if err != nil {
		t.Fatalf("Couldn't create an empty board: %v", err)
	}
	seed, _ := b.TileAt(0, 0)
	nb, ok := b.Propagate(seed.force(1))
	if !ok {
		t.Fatalf("Propagation on an empty board failed.")
	}
	// the original snapshot is untouched
	orig, _ := b.TileAt(0, 0)
	if orig.Collapsed() {
		t.Errorf("Propagation mutated the original board.")
	}
	// the new snapshot has the committed tile and narrowed peers
	committed, _ := nb.TileAt(0, 0)
	if committed.Value() != 1 {
		t.Errorf("Committed tile has value %d, expected 1", committed.Value())
	}
	affected, _ := nb.Affected(0, 0)
	for _, a := range affected {
		if _, found := a.pvals.find(1); found {
			t.Errorf("Tile (%d,%d) still allows 1 after propagation", a.X(), a.Y())
		}
	}
	// an unrelated tile keeps its full domain
	far, _ := nb.TileAt(3, 3)
	if far.Entropy() != 4 {
		t.Errorf("Unrelated tile has entropy %d, expected 4", far.Entropy())
	}
}

func TestPropagateContradiction(t *testing.T) {
	b, err := NewFromValues(partialRowValues)
	if err != nil {
		t.Fatalf("Couldn't create a board from values: %v", err)
	}
	// (3,0) can only be 4; committing 4 right next to it in the
	// same row leaves it with no legal value
	intruder := newGivenTile(3, 1, 4, 4)
	if _, ok := b.Propagate(intruder); ok {
		t.Errorf("Propagation did not fail when a domain emptied.")
	}
}

func TestPropagateChains(t *testing.T) {
	// committing 1 in the top-left box of this board leaves (1,1)
	// with a single candidate, whose consequences must propagate
	// transitively
	values := []int{
		0, 2, 0, 0,
		3, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	b, err := NewFromValues(values)
	if err != nil {
		t.Fatalf("Couldn't create a board from values: %v", err)
	}
	seed, _ := b.TileAt(0, 0)
	if !seed.pvals.equal(intset{1, 4}) {
		t.Fatalf("Tile (0,0) has domain %v, expected [1 4]", seed.pvals)
	}
	nb, ok := b.Propagate(seed.force(1))
	if !ok {
		t.Fatalf("Propagation failed.")
	}
	corner, _ := nb.TileAt(1, 1)
	if !corner.pvals.equal(intset{4}) {
		t.Fatalf("Tile (1,1) has domain %v, expected [4]", corner.pvals)
	}
	// (1,1) being certainly 4 must have pruned 4 from its column
	below, _ := nb.TileAt(1, 2)
	if _, found := below.pvals.find(4); found {
		t.Errorf("Tile (1,2) still allows 4 after chained propagation: %v", below.pvals)
	}
}
