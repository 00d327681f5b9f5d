// Package fuzzyreplace implements the cascade of candidate-matching
// strategies used to locate a fragment of text inside a larger document
// even when a language model's rendition of that fragment differs from the
// file's literal bytes.
//
// Each replacer is a pure function of (content, oldFragment) that lazily
// yields candidate substrings of content for the driver to try. The suite
// is a closed, ordered set - naturally expressed here as three named
// functions collected into one slice, not an open class hierarchy: no
// replacer holds state, and nothing outside this package extends the set.
package fuzzyreplace

import "iter"

// Candidates lazily yields substrings of content that the driver should
// attempt to locate and, if unique (or under replaceAll), replace.
type Candidates func(content, oldFragment string) iter.Seq[string]

// replacer pairs a name with its candidate generator. There is no rank
// field; a replacer's position in the list is its priority.
type replacer struct {
	name       string
	candidates Candidates
}

// Suite is the fixed, ordered set of replacers, with the default
// block-anchor thresholds. DriveWithThresholds does not read Suite; it
// builds its own list in the same order, binding its thresholds into the
// block-anchor entry. New strategies may be
// appended (lower priority) but must never reorder these three - the
// driver's monotonicity guarantee (exact match found uniquely =>
// line-trimmed/block-anchor never consulted) depends on it.
var Suite = []replacer{
	{name: "exact", candidates: Exact},
	{name: "line-trimmed", candidates: LineTrimmed},
	{name: "block-anchor", candidates: BlockAnchor},
}

// trimASCII strips leading and trailing ASCII whitespace (space, tab, CR,
// LF, vertical tab, form feed). Unicode whitespace is deliberately left
// untouched - the source behaviour this engine reproduces never normalised
// beyond ASCII, and widening it would change which lines are considered
// equal after trimming.
func trimASCII(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
