package ngram

import (
	"testing"

	"github.com/renewboy/new-words-discoverer/internal/counter"
)

func freqOf(t *testing.T, tbl *counter.Table, key string) uint64 {
	t.Helper()
	c, ok := tbl.Get(key)
	if !ok {
		return 0
	}
	return c.Frequency
}

func TestEnumerateCountsAllWindows(t *testing.T) {
	tbl := counter.NewTable(0)
	tbl.SetPhase(counter.Counting)

	Enumerate(tbl, "葡萄葡萄葡萄", 2)

	if got := freqOf(t, tbl, "葡萄"); got != 3 {
		t.Errorf("frequency(葡萄) = %d, want 3", got)
	}
	if got := freqOf(t, tbl, "萄葡"); got != 2 {
		t.Errorf("frequency(萄葡) = %d, want 2", got)
	}
	// length-1 keys are tracked for frequency only.
	if got := freqOf(t, tbl, "葡"); got != 3 {
		t.Errorf("frequency(葡) = %d, want 3", got)
	}
	if tbl.NTotal() != 6+5 { // k=1: 6 windows, k=2: 5 windows
		t.Errorf("NTotal() = %d, want %d", tbl.NTotal(), 6+5)
	}
}

func TestEnumerateRespectsLengthCap(t *testing.T) {
	tbl := counter.NewTable(0)
	tbl.SetPhase(counter.Counting)

	Enumerate(tbl, "ABCDEF", 3)

	if _, ok := tbl.Get("ABCD"); ok {
		t.Fatal("a 4-character window was inserted despite max_word_len=3")
	}
	if _, ok := tbl.Get("ABC"); !ok {
		t.Fatal("expected 3-character window to be present")
	}
}

func TestEnumerateNeighbors(t *testing.T) {
	tbl := counter.NewTable(0)
	tbl.SetPhase(counter.Counting)

	Enumerate(tbl, "ZXYW", 2)

	xy, ok := tbl.Get("XY")
	if !ok {
		t.Fatal("expected XY to be present")
	}
	if xy.Left['Z'] != 1 {
		t.Errorf("left neighbor Z count = %d, want 1", xy.Left['Z'])
	}
	if xy.Right['W'] != 1 {
		t.Errorf("right neighbor W count = %d, want 1", xy.Right['W'])
	}

	// Length-1 keys never get neighbor maps populated.
	z, ok := tbl.Get("Z")
	if !ok {
		t.Fatal("expected Z to be present")
	}
	if len(z.Left) != 0 || len(z.Right) != 0 {
		t.Errorf("length-1 key got neighbor entries: left=%v right=%v", z.Left, z.Right)
	}
}
