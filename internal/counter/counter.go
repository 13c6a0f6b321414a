// Package counter holds the Counter Table: the central map from candidate
// key to candidate record, and the five-phase state machine that governs
// which operations are legal against it at a given point in the run
// (spec §3, §4.8).
package counter

import "fmt"

// Phase names the Counter Table's lifecycle. Transitions are linear; no
// phase is re-entered (spec §4.8).
type Phase int

const (
	Empty Phase = iota
	Counting
	FrozenWithScores
	Filtered
	Emitted
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Counting:
		return "counting"
	case FrozenWithScores:
		return "frozen_with_scores"
	case Filtered:
		return "filtered"
	case Emitted:
		return "emitted"
	default:
		return "unknown"
	}
}

// Candidate is one record in the Counter Table: a frequency, its left and
// right neighbor multisets, and a cohesion score populated later.
type Candidate struct {
	Frequency uint64
	Left      map[rune]uint64
	Right     map[rune]uint64
	Cohesion  float64
	Scored    bool // true once the Cohesion Pass has written Cohesion
}

// Table is the shared Counter Table. Capacity can be reserved up front
// (see NewTable) the way the teacher reserves directory-walk channel depth
// up front based on an estimable workload.
type Table struct {
	entries map[string]*Candidate
	nTotal  uint64
	phase   Phase
}

// NewTable creates an empty table, optionally reserving capacity if the
// corpus size is estimable.
func NewTable(sizeHint int) *Table {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Table{
		entries: make(map[string]*Candidate, sizeHint),
		phase:   Empty,
	}
}

// Phase reports the table's current lifecycle phase.
func (t *Table) Phase() Phase { return t.phase }

// SetPhase advances the table to the next phase. It panics on a
// non-forward transition: that would indicate a pipeline bug, not a data
// problem (spec §4.9, internal invariant violation).
func (t *Table) SetPhase(p Phase) {
	if p <= t.phase {
		panic(fmt.Sprintf("counter: illegal phase transition %s -> %s", t.phase, p))
	}
	t.phase = p
}

// NTotal returns the total occurrence count accumulated during counting.
func (t *Table) NTotal() uint64 { return t.nTotal }

// AddOccurrence increments N_total by one. Called once per (sentence,
// offset, length) enumerated, from the single consumer thread only.
func (t *Table) AddOccurrence() { t.nTotal++ }

// GetOrCreate returns the candidate record for key, creating a zero record
// if absent. Only legal during the Counting phase; it is the only mutator
// of the key set.
func (t *Table) GetOrCreate(key string) *Candidate {
	if t.phase != Counting {
		panic(fmt.Sprintf("counter: GetOrCreate called in phase %s", t.phase))
	}
	c, ok := t.entries[key]
	if !ok {
		c = &Candidate{}
		t.entries[key] = c
	}
	return c
}

// Get returns the candidate for key and whether it is present. Safe to call
// concurrently once counting has finished, since no writer may grow or
// shrink the key set again until a filter pass runs.
func (t *Table) Get(key string) (*Candidate, bool) {
	c, ok := t.entries[key]
	return c, ok
}

// Len returns the number of distinct candidate keys currently tracked.
func (t *Table) Len() int { return len(t.entries) }

// Keys returns a stable snapshot of the current key set. The Cohesion Pass
// uses this to carve contiguous, disjoint ranges for its workers (spec
// §4.4); order is otherwise insignificant.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// Delete removes a candidate key. Used only by the two filter passes,
// which are remove-only.
func (t *Table) Delete(key string) {
	delete(t.entries, key)
}

// Snapshot returns every (key, candidate) pair currently in the table, for
// passes that need to materialize and sort the survivors.
func (t *Table) Snapshot() map[string]*Candidate {
	return t.entries
}
