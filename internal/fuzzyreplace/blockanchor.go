package fuzzyreplace

import (
	"iter"
	"strings"

	"github.com/caelisco/fuzzyedit/internal/similarity"
)

// DefaultSingleCandidateThreshold and DefaultMultiCandidateThreshold are the
// asymmetric acceptance thresholds for block-anchor interior similarity:
// with a single candidate the anchor evidence alone is strong, so a weak
// interior still passes; with competing candidates the interior must
// substantially favour one before the match is trusted.
const (
	DefaultSingleCandidateThreshold = 0.3
	DefaultMultiCandidateThreshold  = 0.5
)

// Thresholds carries the block-anchor replacer's acceptance thresholds,
// overridable per call so callers can expose them as configuration.
type Thresholds struct {
	SingleCandidate float64
	MultiCandidate  float64
}

// DefaultThresholds returns the engine's built-in 0.3/0.5 thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SingleCandidate: DefaultSingleCandidateThreshold,
		MultiCandidate:  DefaultMultiCandidateThreshold,
	}
}

type blockAnchorCandidate struct {
	start, end int // line indices into origLines, inclusive
}

// BlockAnchor is the priority-3 replacer, run with the engine's default
// thresholds. It locates a multi-line fragment by its first and last line
// ("anchors"), tolerating an arbitrarily paraphrased interior, and admits
// the match only if the interior is sufficiently similar.
func BlockAnchor(content, oldFragment string) iter.Seq[string] {
	return BlockAnchorWithThresholds(content, oldFragment, DefaultThresholds())
}

// BlockAnchorWithThresholds is BlockAnchor with caller-supplied acceptance
// thresholds in place of the engine defaults.
func BlockAnchorWithThresholds(content, oldFragment string, th Thresholds) iter.Seq[string] {
	return func(yield func(string) bool) {
		origLines := strings.Split(content, "\n")
		searchLines := strings.Split(oldFragment, "\n")

		if len(searchLines) > 0 && searchLines[len(searchLines)-1] == "" {
			searchLines = searchLines[:len(searchLines)-1]
		}
		if len(searchLines) < 3 {
			return
		}

		first := trimASCII(searchLines[0])
		last := trimASCII(searchLines[len(searchLines)-1])

		var candidates []blockAnchorCandidate
		for i := 0; i < len(origLines); i++ {
			if trimASCII(origLines[i]) != first {
				continue
			}
			for j := i + 2; j < len(origLines); j++ {
				if trimASCII(origLines[j]) == last {
					candidates = append(candidates, blockAnchorCandidate{start: i, end: j})
					break
				}
			}
		}

		if len(candidates) == 0 {
			return
		}

		var chosen blockAnchorCandidate
		accepted := false

		if len(candidates) == 1 {
			c := candidates[0]
			sim, hasInterior := interiorSimilarity(origLines, searchLines, c)
			if !hasInterior || sim >= th.SingleCandidate {
				chosen = c
				accepted = true
			}
		} else {
			best := candidates[0]
			bestSim := -1.0
			for _, c := range candidates {
				sim, hasInterior := interiorSimilarity(origLines, searchLines, c)
				if !hasInterior {
					sim = 1.0
				}
				if sim > bestSim {
					bestSim = sim
					best = c
				}
			}
			if bestSim >= th.MultiCandidate {
				chosen = best
				accepted = true
			}
		}

		if !accepted {
			return
		}

		start := 0
		for k := 0; k < chosen.start; k++ {
			start += len(origLines[k]) + 1
		}
		end := start
		for k := chosen.start; k <= chosen.end; k++ {
			end += len(origLines[k])
			if k < chosen.end {
				end++
			}
		}

		yield(content[start:end])
	}
}

// interiorSimilarity compares the first interiorCount interior line-pairs
// of the old fragment against the candidate block's interior - an
// aligned-prefix comparison, not a full alignment, so it biases toward
// blocks whose beginnings agree. hasInterior is false when there are no
// interior lines to compare, in which case the caller treats the candidate
// as anchor-only evidence.
func interiorSimilarity(origLines, searchLines []string, c blockAnchorCandidate) (sim float64, hasInterior bool) {
	actualBlockSize := c.end - c.start + 1
	interiorCount := min(len(searchLines)-2, actualBlockSize-2)
	if interiorCount <= 0 {
		return 0, false
	}

	total := 0.0
	for k := 1; k <= len(searchLines)-2; k++ {
		if c.start+k >= c.end {
			break
		}
		orig := trimASCII(origLines[c.start+k])
		search := trimASCII(searchLines[k])
		total += similarity.Similarity(orig, search) / float64(interiorCount)
	}
	return total, true
}
