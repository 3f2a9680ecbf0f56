package puzzle

/*

Solved-board validation

*/

// Valid reports whether the board is a correct solution: every
// tile committed, and every row, column, and box containing each
// value in [1, N] exactly once.  Valid is a pure check with no
// side effects, so applying it repeatedly always gives the same
// answer.
func (b *Board) Valid() bool {
	slen, blen := b.mapping.sidelen, b.mapping.boxlen
	for _, t := range b.tiles {
		if t.aval < 1 || t.aval > slen {
			return false
		}
	}
	seen := make([]bool, slen+1)
	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}
	// rows
	for y := 0; y < slen; y++ {
		reset()
		for x := 0; x < slen; x++ {
			v := b.tiles[b.mapping.index(x, y)].aval
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	// columns
	for x := 0; x < slen; x++ {
		reset()
		for y := 0; y < slen; y++ {
			v := b.tiles[b.mapping.index(x, y)].aval
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	// boxes
	for basey := 0; basey < slen; basey += blen {
		for basex := 0; basex < slen; basex += blen {
			reset()
			for by := 0; by < blen; by++ {
				for bx := 0; bx < blen; bx++ {
					v := b.tiles[b.mapping.index(basex+bx, basey+by)].aval
					if seen[v] {
						return false
					}
					seen[v] = true
				}
			}
		}
	}
	return true
}
