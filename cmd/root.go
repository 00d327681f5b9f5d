// root.go defines the root command and CLI execution entry point.
//
// Design: the auto-confirm bypass is resolved in one place,
// resolveAutoConfirm in flags.go - -y/--yes, FUZZYEDIT_AUTO_CONFIRM, and the
// config file's auto_confirm all feed into the same decision, so commands only ever ask
// "should this run be non-interactive" rather than checking each source.
package cmd

import (
	"fmt"
	"os"

	"github.com/caelisco/fuzzyedit/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzyedit",
	Short: "Fuzzy textual replacement engine for localized file edits",
	Long: `fuzzyedit locates a region of a file from an (old, new) fragment pair,
even when the old fragment's whitespace, indentation, or interior lines
differ from the file's literal bytes, and replaces it after confirmation.`,
	// A failed run prints only cobra's "Error: ..." line, not the usage text.
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command and handles process lifecycle.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		log.SetProject(cwd)
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command, for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
