// diffcmd.go implements "fuzzyedit diff", a dry-run preview of the edit
// operation that never writes or prompts - the CLI surface for
// internal/editop.Preview, mirroring the standalone diff-generation entry
// point a caller might want before committing to an edit.
package cmd

import (
	"fmt"
	"os"

	"github.com/caelisco/fuzzyedit/internal/confirm"
	"github.com/caelisco/fuzzyedit/internal/diff"
	"github.com/caelisco/fuzzyedit/internal/editop"
	"github.com/caelisco/fuzzyedit/internal/log"
	"github.com/spf13/cobra"
)

var diffAll bool

func newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <path> <old> <new>",
		Short: "Preview the diff apply would produce, without writing",
		Args:  cobra.ExactArgs(3),
		RunE:  runDiff,
	}
	c.Flags().BoolVar(&diffAll, "all", false, "Preview replacing every occurrence of the located candidate")
	return c
}

func runDiff(cmd *cobra.Command, args []string) error {
	path, oldString, newString := args[0], args[1], args[2]

	replaceAll := resolveReplaceAll(cmd, "all", diffAll)
	thresholds := resolveThresholds()

	l := log.Event("edit:diff", "diff").Path(path).ReplaceAll(replaceAll)

	diffText, err := editop.Preview(editop.Options{
		FilePath:   path,
		OldString:  oldString,
		NewString:  newString,
		ReplaceAll: replaceAll,
		Thresholds: &thresholds,
	})
	l.Write(err)
	if err != nil {
		return describeApplyError(err)
	}

	if isOutputTerminal() {
		diffText = diff.Colourise(diffText)
	}
	fmt.Fprintln(Out(), diffText)
	return nil
}

// isOutputTerminal reports whether the command's output writer is an
// interactive terminal, gating whether diff output is colourised.
func isOutputTerminal() bool {
	f, ok := Out().(*os.File)
	if !ok {
		return false
	}
	return confirm.IsInteractive(f.Fd())
}

func init() {
	rootCmd.AddCommand(newDiffCmd())
}
