// Package entropy computes the Shannon entropy of a neighbor-character
// distribution, shared by the Freedom Pass (spec §4.6).
package entropy

import "math"

// Of returns the base-2 Shannon entropy of the counts in m. An empty map
// has entropy 0 by definition (spec §4.6: "Empty neighbor maps yield T = 0;
// in that case define entropy as 0").
func Of(m map[rune]uint64) float64 {
	var total uint64
	for _, count := range m {
		total += count
	}
	if total == 0 {
		return 0
	}

	t := float64(total)
	var h float64
	for _, count := range m {
		p := float64(count) / t
		h += -p * math.Log2(p)
	}
	return h
}
