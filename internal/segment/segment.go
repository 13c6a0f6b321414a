// Package segment turns a raw paragraph into the short, punctuation-free,
// non-ideographic-free sentences the rest of the engine counts over
// (spec §4.1).
package segment

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// hardBreaks is the fixed full-width punctuation set that always splits a
// paragraph, regardless of what nonSentence below would do with it.
const hardBreaks = "【】，。？《》！、（）……；：“”‘’"

// nonSentence matches runs of non-ideographic text. The original
// implementation expressed this as three alternatives — a locale-dependent
// \W+, an ASCII alphanumeric run, and a whitespace run — relying on the
// process locale to classify Han ideographs as "word" characters so they
// never fall into \W. Go's regexp has no locale-sensitive \w, so the three
// alternatives are expressed directly as their union: any run of
// characters that are not Han ideographs. It is used as a separator, not a
// token pattern — text between matches is a candidate sentence.
var nonSentence = regexp.MustCompile(`[^\p{Han}]+`)

// Split segments one paragraph (one input line) into sentences, in
// original order, trimmed and with empties discarded.
func Split(paragraph string) []string {
	if paragraph == "" {
		return nil
	}

	// Normalize so a composed and a decomposed form of the same ideograph
	// are never tracked as distinct candidate keys downstream.
	paragraph = norm.NFC.String(paragraph)

	var sentences []string
	for _, segment := range strings.FieldsFunc(paragraph, isHardBreak) {
		for _, s := range nonSentence.Split(segment, -1) {
			s = strings.TrimSpace(s)
			if s != "" {
				sentences = append(sentences, s)
			}
		}
	}
	return sentences
}

func isHardBreak(r rune) bool {
	return strings.ContainsRune(hardBreaks, r)
}
