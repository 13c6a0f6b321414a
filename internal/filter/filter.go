// Package filter implements the two remove-only passes that run after
// cohesion scoring: the frequency/length filter (spec §4.5) and the
// freedom (contextual-entropy) filter (spec §4.6).
package filter

import (
	"github.com/renewboy/new-words-discoverer/internal/counter"
	"github.com/renewboy/new-words-discoverer/internal/entropy"
)

// ByFreqAndLength removes every entry shorter than two characters or with
// frequency below freqThr. What remains are multi-character candidates
// with adequate count and cohesion; the length-1 keys kept alive for the
// cohesion formula are no longer needed past this point.
func ByFreqAndLength(table *counter.Table, freqThr uint) {
	table.SetPhase(counter.Filtered)

	for _, key := range table.Keys() {
		c, ok := table.Get(key)
		if !ok {
			continue
		}
		if len([]rune(key)) < 2 || c.Frequency < uint64(freqThr) {
			table.Delete(key)
		}
	}
}

// ByFreedom computes the degree of freedom (min of left- and
// right-neighbor entropy) for each surviving entry and removes those below
// dfThr.
func ByFreedom(table *counter.Table, dfThr float64) {
	for _, key := range table.Keys() {
		c, ok := table.Get(key)
		if !ok {
			continue
		}
		hl := entropy.Of(c.Left)
		hr := entropy.Of(c.Right)
		df := hl
		if hr < df {
			df = hr
		}
		if df < dfThr {
			table.Delete(key)
		}
	}
}
