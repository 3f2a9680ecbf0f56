package puzzle

/*

Solving boards

The actual search lives in the wfc package; this file just binds
a Board to the driver and reports what happened.  The search
picks the uncommitted tile with the fewest remaining candidates,
commits it to a random one, and propagates; on contradiction it
restores the previous snapshot and redraws.  A solvable board
ends Collapsed; a board with no reachable solution ends
Exhausted, never in a panic.

*/

import (
	"math/rand"

	"github.com/adrian-a27/collapse.go/wfc"
)

// SolveStats reports how much work a solve took.
type SolveStats struct {
	Steps      int `json:"steps"`
	Backtracks int `json:"backtracks"`
}

// Solve runs the wfc driver over the board to a terminal state,
// returning the final board, the outcome, and the work counters.
// The receiver is not modified.  The random source drives
// candidate selection and tie-breaking; pass nil for a
// time-seeded source.
func (b *Board) Solve(rng *rand.Rand) (*Board, wfc.Outcome, SolveStats) {
	d := wfc.NewDriver[*Board, *Tile](b, rng)
	outcome := d.Run()
	return d.Wavefunction(), outcome, SolveStats{Steps: d.Steps(), Backtracks: d.Backtracks()}
}
