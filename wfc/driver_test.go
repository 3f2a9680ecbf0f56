package wfc

import (
	"math/rand"
	"testing"
)

/*

Scripted wavefunctions

The driver is tested against a scripted wavefunction that counts
down uncommitted tiles and fails propagation on demand, so every
branch of the loop can be exercised without a real puzzle.

*/

type scriptedTile struct {
	empty bool // the tile has no candidates left
}

func (t *scriptedTile) Collapsed() bool { return false }

func (t *scriptedTile) Entropy() int {
	if t.empty {
		return 0
	}
	return 1
}

func (t *scriptedTile) Collapse(rng *rand.Rand) (*scriptedTile, bool) {
	if t.empty {
		return nil, false
	}
	return &scriptedTile{}, true
}

type scriptedWave struct {
	left      int  // uncommitted tiles remaining
	noTile    bool // selection finds nothing despite left > 0
	emptyTile bool // selection hands out an empty-domain tile
	failures  *int // countdown of propagation contradictions
}

func (w *scriptedWave) Collapsed() bool { return w.left == 0 }

func (w *scriptedWave) MinEntropyTile(rng *rand.Rand) (*scriptedTile, bool) {
	if w.noTile {
		return nil, false
	}
	return &scriptedTile{empty: w.emptyTile}, true
}

func (w *scriptedWave) Propagate(collapsed *scriptedTile) (*scriptedWave, bool) {
	if w.failures != nil && *w.failures > 0 {
		*w.failures--
		return nil, false
	}
	return &scriptedWave{left: w.left - 1, failures: w.failures}, true
}

func newTestDriver(w *scriptedWave) *Driver[*scriptedWave, *scriptedTile] {
	return NewDriver[*scriptedWave, *scriptedTile](w, rand.New(rand.NewSource(1)))
}

/*

Driver state machine

*/

func TestDriverAlreadyCollapsed(t *testing.T) {
	w := &scriptedWave{left: 0}
	d := newTestDriver(w)
	if out := d.Run(); out != Collapsed {
		t.Fatalf("Run on a collapsed wavefunction gave %v", out)
	}
	if d.Steps() != 0 {
		t.Errorf("Run on a collapsed wavefunction took %d steps", d.Steps())
	}
	if d.Wavefunction() != w {
		t.Errorf("Run on a collapsed wavefunction replaced the snapshot.")
	}
}

func TestDriverRunToCollapsed(t *testing.T) {
	d := newTestDriver(&scriptedWave{left: 3})
	if out := d.Run(); out != Collapsed {
		t.Fatalf("Run gave %v", out)
	}
	if d.Steps() != 3 || d.Backtracks() != 0 || d.Depth() != 3 {
		t.Errorf("Run took %d steps, %d backtracks, depth %d; expected 3, 0, 3",
			d.Steps(), d.Backtracks(), d.Depth())
	}
	if d.Outcome() != Collapsed {
		t.Errorf("Outcome() = %v after a finished run", d.Outcome())
	}
}

func TestDriverBacktrack(t *testing.T) {
	fails := 0
	w0 := &scriptedWave{left: 2, failures: &fails}
	d := newTestDriver(w0)

	// one successful collapse pushes the starting snapshot
	if out := d.Step(); out != Running {
		t.Fatalf("First step gave %v", out)
	}
	if d.Wavefunction() == w0 || d.Depth() != 1 {
		t.Fatalf("First step didn't adopt a new snapshot.")
	}

	// a contradiction must restore that exact snapshot
	fails = 1
	if out := d.Step(); out != Running {
		t.Fatalf("Backtracking step gave %v", out)
	}
	if d.Wavefunction() != w0 {
		t.Errorf("Backtracking didn't restore the pushed snapshot.")
	}
	if d.Depth() != 0 || d.Backtracks() != 1 {
		t.Errorf("After backtracking: depth %d, backtracks %d; expected 0, 1",
			d.Depth(), d.Backtracks())
	}

	// the retry runs out from the restored snapshot
	if out := d.Run(); out != Collapsed {
		t.Fatalf("Run after backtracking gave %v", out)
	}
	if d.Steps() != 4 || d.Backtracks() != 1 {
		t.Errorf("Run took %d steps and %d backtracks; expected 4 and 1",
			d.Steps(), d.Backtracks())
	}
}

func TestDriverExhausted(t *testing.T) {
	// a contradiction with nothing on the history stack is not an
	// error, it just means no solution is reachable
	fails := 1
	d := newTestDriver(&scriptedWave{left: 1, failures: &fails})
	if out := d.Run(); out != Exhausted {
		t.Fatalf("Run gave %v, expected Exhausted", out)
	}
	if d.Backtracks() != 0 {
		t.Errorf("Exhaustion counted %d backtracks", d.Backtracks())
	}

	// terminal states are sticky
	if out := d.Step(); out != Exhausted {
		t.Errorf("Step after exhaustion gave %v", out)
	}
	if d.Steps() != 1 {
		t.Errorf("Step after exhaustion did more work: %d steps", d.Steps())
	}
}

func TestDriverInconsistentSnapshot(t *testing.T) {
	// uncommitted tiles but nothing selectable: a contradiction
	d := newTestDriver(&scriptedWave{left: 1, noTile: true})
	if out := d.Run(); out != Exhausted {
		t.Errorf("Run on an inconsistent snapshot gave %v", out)
	}
}

func TestDriverEmptyDomainTile(t *testing.T) {
	d := newTestDriver(&scriptedWave{left: 1, emptyTile: true})
	if out := d.Run(); out != Exhausted {
		t.Errorf("Run with an empty-domain tile gave %v", out)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := []struct {
		o Outcome
		s string
	}{
		{Running, "running"},
		{Collapsed, "collapsed"},
		{Exhausted, "exhausted"},
		{Outcome(9), "unknown"},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.s {
			t.Errorf("Outcome(%d).String() = %q, expected %q", int(c.o), got, c.s)
		}
	}
}
