// Package diff produces the unified-diff text shown to the user for
// confirmation before an edit is written. It is a display collaborator
// only - its exact whitespace is never part of the replacement contract
// the confirmation step checks.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compute returns diff text comparing oldContent to newContent, with
// "--- a/<displayPath>" / "+++ b/<displayPath>" headers followed by "@@"
// hunks, LF line endings throughout.
//
// The contents are diffed line by line (DiffLinesToChars/DiffCharsToLines
// around diffmatchpatch's DiffMain), so removed and inserted text is made of
// whole lines, and DiffCleanupSemantic coalesces the result. The hunks are
// diffmatchpatch's patch text (PatchMake/PatchToText), not a line-numbered
// unified diff: the "@@ -s,l +s,l @@" headers count characters, the context
// around a change is character-based and can begin or end mid-line, and a
// newline inside a hunk line is percent-encoded as "%0A".
func Compute(oldContent, newContent, displayPath string) string {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	diffs = dmp.DiffCleanupSemantic(diffs)

	patches := dmp.PatchMake(oldContent, diffs)
	body := dmp.PatchToText(patches)

	header := fmt.Sprintf("--- a/%s\n+++ b/%s\n", displayPath, displayPath)
	if body == "" {
		return header
	}
	return header + strings.ReplaceAll(body, "\r\n", "\n")
}

// Colourise adds ANSI colours to unified-diff text for TTY display.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		cyan  = "\033[36m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		switch {
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			b.WriteString(green + line + reset + "\n")
		case strings.HasPrefix(line, "@@"):
			b.WriteString(cyan + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
