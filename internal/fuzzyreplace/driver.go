package fuzzyreplace

import (
	"iter"
	"strings"
)

// Drive runs the replacer suite with the engine's default block-anchor
// thresholds. See DriveWithThresholds.
func Drive(content, oldFragment, newFragment string, replaceAll bool) (string, int, error) {
	return DriveWithThresholds(content, oldFragment, newFragment, replaceAll, DefaultThresholds())
}

// DriveWithThresholds runs the replacer suite against content in priority
// order, taking the first candidate that satisfies the uniqueness (or
// replaceAll) contract, and returns the new content plus the number of
// textual substitutions made. th overrides the block-anchor replacer's
// acceptance thresholds.
//
// The cascade resumes on ambiguity rather than stopping at the first
// ambiguous candidate: a later replacer may narrow a region an earlier one
// couldn't disambiguate (line-trimmed matches may be multiple while a
// block-anchor match on the same fragment is unique).
func DriveWithThresholds(content, oldFragment, newFragment string, replaceAll bool, th Thresholds) (string, int, error) {
	if oldFragment == newFragment {
		return "", 0, ErrNoChange
	}

	suite := []replacer{
		{name: "exact", candidates: Exact},
		{name: "line-trimmed", candidates: LineTrimmed},
		{name: "block-anchor", candidates: func(content, oldFragment string) iter.Seq[string] {
			return BlockAnchorWithThresholds(content, oldFragment, th)
		}},
	}

	foundAny := false

	for _, r := range suite {
		for candidate := range r.candidates(content, oldFragment) {
			idx := strings.Index(content, candidate)
			if idx == -1 {
				continue
			}
			foundAny = true

			if replaceAll {
				count := strings.Count(content, candidate)
				return strings.ReplaceAll(content, candidate, newFragment), count, nil
			}

			last := strings.LastIndex(content, candidate)
			if last != idx {
				continue
			}

			newContent := content[:idx] + newFragment + content[idx+len(candidate):]
			return newContent, 1, nil
		}
	}

	if !foundAny {
		return "", 0, ErrNotFound
	}
	return "", 0, ErrAmbiguous
}
