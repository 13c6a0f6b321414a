// Package rank implements the Ranker/Emitter: sorts surviving candidates by
// frequency and writes the result artifact (spec §4.7).
package rank

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/renewboy/new-words-discoverer/internal/counter"
)

// Entry is one surviving candidate, ready to emit.
type Entry struct {
	Word      string
	Frequency uint64
}

// byFrequency sorts ascending by frequency, then by word, mirroring the
// teacher's named-sort-interface idiom (loccount's "sortable" type).
type byFrequency []Entry

func (a byFrequency) Len() int      { return len(a) }
func (a byFrequency) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a byFrequency) Less(i, j int) bool {
	if a[i].Frequency != a[j].Frequency {
		return a[i].Frequency < a[j].Frequency
	}
	return a[i].Word < a[j].Word
}

// Survivors materializes every remaining candidate as a sorted Entry
// slice, ascending by frequency. Equal frequencies are ordered by word, so
// repeated calls on the same table return the same order even though the
// table's map iteration order varies.
func Survivors(table *counter.Table) []Entry {
	snapshot := table.Snapshot()
	entries := make(byFrequency, 0, len(snapshot))
	for word, c := range snapshot {
		entries = append(entries, Entry{Word: word, Frequency: c.Frequency})
	}
	sort.Sort(entries)
	return entries
}

// WriteTo emits entries to w in the format spec §4.7 requires: a header
// line with the total count, then one "<word> <frequency>" line per entry.
func WriteTo(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "Total words: %d\n", len(entries)); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Word, e.Frequency); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// OutputPath derives the result artifact's path from the input path: the
// last '.'-delimited suffix is dropped (or the whole path kept if there is
// none), then "_out.txt" is appended (spec §6).
func OutputPath(inputPath string) string {
	dot := strings.LastIndex(inputPath, ".")
	stem := inputPath
	if dot >= 0 {
		// Only treat it as a suffix if it falls after the last path
		// separator; a dotted directory name should not be truncated.
		if sep := strings.LastIndexAny(inputPath, `/\`); sep < dot {
			stem = inputPath[:dot]
		}
	}
	return filepath.Clean(stem) + "_out.txt"
}

// MarkEmitted transitions the table's state machine into its terminal
// phase once emission has completed.
func MarkEmitted(table *counter.Table) {
	table.SetPhase(counter.Emitted)
}
