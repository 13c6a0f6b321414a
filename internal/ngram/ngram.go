// Package ngram implements the N-gram Enumerator: for one sentence and
// every candidate length up to max_word_len, it slides a window across the
// sentence and updates the Counter Table (spec §4.3).
package ngram

import "github.com/renewboy/new-words-discoverer/internal/counter"

// Enumerate walks sentence (already segmented, non-empty) for every length
// k in [1, min(maxWordLen, len(sentence))] and every offset j in
// [0, len(sentence)-k], updating table in place.
//
// Lengths and offsets are counted in characters: sentence is decoded into
// runes once up front so slicing never crosses a multi-byte boundary.
func Enumerate(table *counter.Table, sentence string, maxWordLen uint) {
	runes := []rune(sentence)
	n := len(runes)
	if n == 0 {
		return
	}

	limit := maxWordLen
	if uint(n) < limit {
		limit = uint(n)
	}

	for k := uint(1); k <= limit; k++ {
		for j := 0; j+int(k) <= n; j++ {
			word := string(runes[j : j+int(k)])
			c := table.GetOrCreate(word)
			c.Frequency++
			table.AddOccurrence()

			if k < 2 {
				continue
			}
			if j > 0 {
				if c.Left == nil {
					c.Left = make(map[rune]uint64)
				}
				c.Left[runes[j-1]]++
			}
			if j+int(k) < n {
				if c.Right == nil {
					c.Right = make(map[rune]uint64)
				}
				c.Right[runes[j+int(k)]]++
			}
		}
	}
}
