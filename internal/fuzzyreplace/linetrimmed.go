package fuzzyreplace

import (
	"iter"
	"strings"
)

// LineTrimmed is the priority-2 replacer. It matches oldFragment against a
// contiguous run of content's lines when each pair of lines is equal after
// trimming ASCII leading/trailing whitespace - the common case of a model
// reproducing a region with altered indentation but unchanged line text.
func LineTrimmed(content, oldFragment string) iter.Seq[string] {
	return func(yield func(string) bool) {
		origLines := strings.Split(content, "\n")
		searchLines := strings.Split(oldFragment, "\n")

		// A trailing LF in oldFragment produces a spurious empty final
		// element; drop it so it doesn't force a phantom blank line match.
		if len(searchLines) > 0 && searchLines[len(searchLines)-1] == "" {
			searchLines = searchLines[:len(searchLines)-1]
		}
		if len(searchLines) == 0 {
			return
		}

		for i := 0; i+len(searchLines) <= len(origLines); i++ {
			matched := true
			for j, sl := range searchLines {
				if trimASCII(origLines[i+j]) != trimASCII(sl) {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}

			start := 0
			for k := 0; k < i; k++ {
				start += len(origLines[k]) + 1
			}

			end := start
			for k := range searchLines {
				end += len(origLines[i+k])
				if k < len(searchLines)-1 {
					end++
				}
			}

			if !yield(content[start:end]) {
				return
			}
		}
	}
}
