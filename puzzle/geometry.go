package puzzle

/*

Board Geometry

A board's geometry is entirely determined by its side length: the
side length must be a perfect square so the board partitions into
sqrt(N) x sqrt(N) boxes, and every cell belongs to exactly three
constraint groups (its row, its column, and its box).  Rather
than recomputing group membership during every propagation, we
precompute, for every cell, the set of cells it shares a group
with.  These mappings are invariant, so they are memoized per
side length and shared by all boards of that size.

*/

// A boardMapping summarizes the geometry parameters of a board:
// the side length, the box side length, the cell count, and for
// each cell index the indices of the cells that share a row,
// column, or box with it (the cell itself excluded).
type boardMapping struct {
	sidelen   int
	boxlen    int
	ccount    int
	neighbors []intset
}

// Geometry limits.  The lower limit admits the degenerate 1x1
// board; the upper limit keeps values representable in a byte.
const (
	minSideLength = 1
	maxSideLength = 225
)

// boardMaps is where we memoize computed board mappings for each
// side length we've encountered, to avoid computing them more
// than once.
var boardMaps = make(map[int]*boardMapping)

// Find the integer square root of val, if it exists.
func findIntSquareRoot(val int) (int, bool) {
	var i int
	for i = 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return i - 1, false
}

// computeBoardMapping builds the mapping for a given side length
// and box length.
func computeBoardMapping(slen, blen int) *boardMapping {
	ccount := slen * slen
	ns := make([]intset, ccount)
	for y := 0; y < slen; y++ {
		for x := 0; x < slen; x++ {
			ci := y*slen + x
			set := make(intset, 0, 3*slen)
			// the row and the column
			for i := 0; i < slen; i++ {
				set.insert(y*slen + i)
				set.insert(i*slen + x)
			}
			// the box, whose top-left corner is the coordinate
			// rounded down to the nearest multiple of the box length
			basex, basey := x-x%blen, y-y%blen
			for by := 0; by < blen; by++ {
				for bx := 0; bx < blen; bx++ {
					set.insert((basey+by)*slen + (basex + bx))
				}
			}
			set.remove(ci)
			ns[ci] = set
		}
	}
	return &boardMapping{slen, blen, ccount, ns}
}

// boardMappingFor returns the board mapping for the given side
// length.  This computes (first time) and then returns
// (thereafter) the mapping.  Returns an error if the side length
// is out of range or not a perfect square.
func boardMappingFor(sidelen int) (*boardMapping, error) {
	if sidelen < minSideLength {
		return nil, geometryError(SideLengthAttribute, sidelen, TooSmallCondition, minSideLength)
	}
	if sidelen > maxSideLength {
		return nil, geometryError(SideLengthAttribute, sidelen, TooLargeCondition, maxSideLength)
	}
	boxlen, ok := findIntSquareRoot(sidelen)
	if !ok {
		return nil, geometryError(SideLengthAttribute, sidelen, NonSquareCondition, 0)
	}
	pm, ok := boardMaps[sidelen]
	if ok {
		return pm, nil
	}
	pm = computeBoardMapping(sidelen, boxlen)
	boardMaps[sidelen] = pm
	return pm, nil
}

// boardMappingForSize returns the board mapping for a board with
// the given number of cells.  Returns an error if the cell count
// is not the square of a valid side length.
func boardMappingForSize(csize int) (*boardMapping, error) {
	sidelen, ok := findIntSquareRoot(csize)
	if !ok {
		return nil, geometryError(BoardSizeAttribute, csize, NonSquareCondition, 0)
	}
	return boardMappingFor(sidelen)
}

// index converts an (x, y) coordinate to a cell index.  The
// coordinate must already be validated.
func (m *boardMapping) index(x, y int) int {
	return y*m.sidelen + x
}

// checkCoord validates an (x, y) coordinate against the mapping,
// returning an Error if either part is out of range.
func (m *boardMapping) checkCoord(x, y int) error {
	if x < 0 || x >= m.sidelen {
		return rangeError(CoordinateAttribute, x, 0, m.sidelen-1)
	}
	if y < 0 || y >= m.sidelen {
		return rangeError(CoordinateAttribute, y, 0, m.sidelen-1)
	}
	return nil
}
