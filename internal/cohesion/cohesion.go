// Package cohesion implements the Cohesion Pass: a parallel
// pointwise-mutual-information-style score over every multi-character
// candidate, followed by removal of entries that fall short of the
// firmness threshold (spec §4.4).
package cohesion

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/renewboy/new-words-discoverer/internal/counter"
)

// maxWorkers caps the parallel partition at four, per spec §4.4/§5: "a
// fixed number of worker tasks (four if the table has >= 4 entries, else
// one)".
const maxWorkers = 4

// Compute scores every candidate of length >= 2 in table, then removes
// those scoring below firmnessThr. Single-character keys survive this pass
// regardless of score; they are removed by the frequency/length filter.
//
// The partition-and-join shape mirrors the teacher's parallel directory
// walk: a fixed pool of goroutines, each owning a disjoint slice of work,
// joined before the driver proceeds.
func Compute(table *counter.Table, firmnessThr float64) error {
	table.SetPhase(counter.FrozenWithScores)

	keys := table.Keys()
	n := len(keys)
	if n == 0 {
		return nil
	}

	workers := maxWorkers
	if n < maxWorkers {
		workers = 1
	}
	chunk := n / workers

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if i == workers-1 {
			end = n // last partition takes the exact remainder
		}
		rangeKeys := keys[start:end]
		g.Go(func() error {
			return scoreRange(table, rangeKeys)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, key := range keys {
		if len([]rune(key)) < 2 {
			continue
		}
		c, ok := table.Get(key)
		if !ok {
			continue // already removed by a concurrent duplicate key pass; cannot happen with a frozen key set
		}
		if c.Cohesion < firmnessThr {
			table.Delete(key)
		}
	}
	return nil
}

// scoreRange computes Cohesion for every multi-character key in keys. Each
// worker writes only the Cohesion field of records in its own range; all
// reads target the Frequency field of prefixes/suffixes, which may live in
// any other worker's range but is immutable for the duration of this pass.
func scoreRange(table *counter.Table, keys []string) error {
	for _, key := range keys {
		runes := []rune(key)
		if len(runes) < 2 {
			continue
		}
		c, ok := table.Get(key)
		if !ok {
			return fmt.Errorf("cohesion: key %q vanished mid-pass", key)
		}

		minFirmness := math.MaxFloat64
		freq := float64(c.Frequency)
		nTotal := float64(table.NTotal())

		for i := 1; i < len(runes); i++ {
			prefix := string(runes[:i])
			suffix := string(runes[i:])

			pc, ok := table.Get(prefix)
			if !ok {
				return fmt.Errorf("cohesion: invariant violated, missing prefix %q of %q", prefix, key)
			}
			sc, ok := table.Get(suffix)
			if !ok {
				return fmt.Errorf("cohesion: invariant violated, missing suffix %q of %q", suffix, key)
			}

			ans := freq * nTotal / (float64(pc.Frequency) * float64(sc.Frequency))
			if ans < minFirmness {
				minFirmness = ans
			}
		}

		c.Cohesion = minFirmness
		c.Scored = true
	}
	return nil
}
