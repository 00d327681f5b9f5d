// apply.go implements "fuzzyedit apply", the CLI surface for the public
// edit(filePath, oldString, newString, replaceAll) operation.
package cmd

import (
	"errors"
	"fmt"

	"github.com/caelisco/fuzzyedit/internal/confirm"
	"github.com/caelisco/fuzzyedit/internal/editop"
	"github.com/caelisco/fuzzyedit/internal/fuzzyreplace"
	"github.com/caelisco/fuzzyedit/internal/log"
	"github.com/spf13/cobra"
)

var (
	applyAll bool
	applyYes bool
)

func newApplyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "apply <path> <old> <new>",
		Short: "Apply a fuzzy search/replace edit to a file",
		Long: `Locate old in path - tolerating whitespace, indentation, or paraphrased
interior lines that differ from the file's literal bytes - and replace it
with new after showing a diff and asking for confirmation.

  fuzzyedit apply main.go "func old()" "func new()"
  fuzzyedit apply main.go "x" "y" --all      # replace every occurrence
  fuzzyedit apply main.go "x" "y" -y         # skip confirmation`,
		Args: cobra.ExactArgs(3),
		RunE: runApply,
	}
	c.Flags().BoolVar(&applyAll, "all", false, "Replace every occurrence of the located candidate")
	c.Flags().BoolVarP(&applyYes, "yes", "y", false, "Skip the confirmation prompt")
	return c
}

func runApply(cmd *cobra.Command, args []string) error {
	path, oldString, newString := args[0], args[1], args[2]

	var confirmer confirm.Confirmer = confirm.NewTTY()
	if resolveAutoConfirm(applyYes) {
		confirmer = confirm.Auto{Decision: true}
	}

	replaceAll := resolveReplaceAll(cmd, "all", applyAll)
	thresholds := resolveThresholds()

	l := log.Event("edit:apply", "edit").Path(path).ReplaceAll(replaceAll)

	result, err := editop.Edit(editop.Options{
		FilePath:   path,
		OldString:  oldString,
		NewString:  newString,
		ReplaceAll: replaceAll,
		Thresholds: &thresholds,
		Confirmer:  confirmer,
	})
	l.Replacements(result.Replacements).Write(err)

	if err != nil {
		return describeApplyError(err)
	}

	fmt.Fprintf(Out(), "%s\n%s (%d replacement(s))\n", result.Title, result.Output, result.Replacements)
	return nil
}

// describeApplyError renders the engine's fixed error taxonomy as a
// user-facing message, naming the fragment only in summary for the
// NotFound/Ambiguous cases rather than dumping file content.
func describeApplyError(err error) error {
	switch {
	case errors.Is(err, fuzzyreplace.ErrNoChange):
		return fmt.Errorf("no change: old and new are identical")
	case errors.Is(err, fuzzyreplace.ErrNotFound):
		return fmt.Errorf("could not locate the given text in the file")
	case errors.Is(err, fuzzyreplace.ErrAmbiguous):
		return fmt.Errorf("the given text matches multiple locations; use --all or narrow it")
	case errors.Is(err, editop.ErrUserCancelled):
		return fmt.Errorf("edit cancelled")
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(newApplyCmd())
}
