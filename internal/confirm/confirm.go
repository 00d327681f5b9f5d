// Package confirm implements the interactive "apply this edit?" gate shown
// before a write. It follows a TTY-detection
// idiom: output goes to stderr, behaviour adapts to whether stdin is a
// terminal, and a non-interactive run is declined without prompting.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Confirmer asks the user whether a proposed diff should be applied.
type Confirmer interface {
	Confirm(diff, displayPath string) (bool, error)
}

// Auto always returns a fixed decision without prompting. It backs
// -y/--yes, FUZZYEDIT_AUTO_CONFIRM, and tests that must never block on
// stdin.
type Auto struct {
	Decision bool
}

// Confirm implements Confirmer.
func (a Auto) Confirm(string, string) (bool, error) {
	return a.Decision, nil
}

// TTY prompts on a terminal and renders the diff through glamour as a
// fenced markdown code block first, matching the rich Panel+Syntax
// treatment the engine's diff preview is grounded on. On a non-terminal
// input (piped, redirected, or at EOF) it declines rather than blocking.
type TTY struct {
	In  io.Reader
	Out io.Writer
}

// NewTTY builds a TTY confirmer reading from stdin and writing to stderr.
func NewTTY() TTY {
	return TTY{In: os.Stdin, Out: os.Stderr}
}

// Confirm renders diff as a markdown code fence, prints a heading naming
// displayPath, and reads a y/n answer. Any response other than "y" or
// "yes" (case-insensitive), or a read error, is treated as a decline -
// confirmation must be explicit, never implicit. When t.In is not a
// terminal (piped, redirected, or closed), it declines without printing
// the prompt at all.
func (t TTY) Confirm(diff, displayPath string) (bool, error) {
	if f, ok := t.In.(*os.File); ok && !IsInteractive(f.Fd()) {
		return false, nil
	}

	fmt.Fprintln(t.Out)
	fmt.Fprintln(t.Out, renderDiffPanel(diff, displayPath))
	fmt.Fprint(t.Out, "Apply this edit? (y/n): ")

	reader := bufio.NewReader(t.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// IsInteractive reports whether fd refers to a terminal, following the
// teacher's term.IsTerminal check in internal/progress.
func IsInteractive(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// renderDiffPanel wraps diff in a fenced "diff" code block titled with
// displayPath and renders it through glamour for a coloured terminal
// preview. If rendering fails for any reason, the raw fenced block is
// returned unrendered rather than losing the diff entirely.
func renderDiffPanel(diff, displayPath string) string {
	md := fmt.Sprintf("**Proposed edit: %s**\n\n```diff\n%s\n```\n", displayPath, diff)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
