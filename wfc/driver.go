package wfc

/*

Wavefunction Collapse driver

The driver is a small state machine.  While Running, each step:

1. If the wavefunction is fully collapsed, stop with Collapsed.

2. Pick the minimum-entropy uncommitted tile.  If there is none
(and the wavefunction is not collapsed), the snapshot is
internally inconsistent; treat it as a contradiction.

3. Collapse that tile to one random candidate.  An empty domain
here is also a contradiction.

4. Propagate the collapsed tile.  On success, push the current
snapshot onto the history stack and adopt the new one.  On
contradiction, pop the most recent snapshot and retry from it;
the next step's random draw explores a different branch.

Backtracking past an empty history is not an error: it means no
solution is reachable, and the driver stops with Exhausted.

*/

import (
	"math/rand"
	"time"
)

// An Outcome is the driver's current state.
type Outcome int

// The driver states.  Collapsed and Exhausted are terminal.
const (
	Running Outcome = iota
	Collapsed
	Exhausted
)

// Outcomes implement Stringer.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Collapsed:
		return "collapsed"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// A Driver runs the collapse/propagate/backtrack loop over a
// wavefunction.  It owns the history stack of previously-adopted
// snapshots: the stack grows by one entry per successful
// collapse and shrinks by one entry per backtrack.
type Driver[W Wavefunction[W, T], T Tile[T]] struct {
	current    W
	history    []W
	rng        *rand.Rand
	outcome    Outcome
	steps      int
	backtracks int
}

// NewDriver creates a driver over the given wavefunction.  The
// random source drives both candidate selection and tie-breaking;
// pass nil to get a time-seeded source, which preserves the
// default behavior of uniformly random, non-reproducible runs.
func NewDriver[W Wavefunction[W, T], T Tile[T]](w W, rng *rand.Rand) *Driver[W, T] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Driver[W, T]{current: w, rng: rng}
}

// Wavefunction returns the driver's current snapshot.
func (d *Driver[W, T]) Wavefunction() W {
	return d.current
}

// Outcome returns the driver's current state.
func (d *Driver[W, T]) Outcome() Outcome {
	return d.outcome
}

// Steps returns the number of collapse attempts made so far.
func (d *Driver[W, T]) Steps() int {
	return d.steps
}

// Backtracks returns the number of snapshots restored so far.
func (d *Driver[W, T]) Backtracks() int {
	return d.backtracks
}

// Depth returns the current height of the history stack.
func (d *Driver[W, T]) Depth() int {
	return len(d.history)
}

// Step performs one iteration of the loop and returns the
// resulting state.  Calling Step in a terminal state is a no-op.
func (d *Driver[W, T]) Step() Outcome {
	if d.outcome != Running {
		return d.outcome
	}
	if d.current.Collapsed() {
		d.outcome = Collapsed
		return d.outcome
	}
	d.steps++
	tile, ok := d.current.MinEntropyTile(d.rng)
	if !ok {
		// No uncommitted tile but not collapsed: an inconsistent
		// snapshot.  Treated as a contradiction.
		return d.backtrack()
	}
	collapsed, ok := tile.Collapse(d.rng)
	if !ok {
		// Selection returned a tile with an empty domain, which
		// propagation is designed to prevent.
		return d.backtrack()
	}
	next, ok := d.current.Propagate(collapsed)
	if !ok {
		return d.backtrack()
	}
	d.history = append(d.history, d.current)
	d.current = next
	return d.outcome
}

// Run drives the loop to a terminal state and returns it.
func (d *Driver[W, T]) Run() Outcome {
	for d.Step() == Running {
	}
	return d.outcome
}

// backtrack discards the current snapshot and restores the most
// recent one from the history.  The restored snapshot still has
// its pre-collapse domains, so the failed branch's narrowing is
// discarded with it.  An empty history means no solution is
// reachable, so the driver stops with Exhausted.
func (d *Driver[W, T]) backtrack() Outcome {
	if len(d.history) == 0 {
		d.outcome = Exhausted
		return d.outcome
	}
	top := len(d.history) - 1
	d.current = d.history[top]
	var zero W
	d.history[top] = zero // release the popped snapshot
	d.history = d.history[:top]
	d.backtracks++
	return d.outcome
}
