// flags.go defines shared global state: the output writer commands write
// to (swappable in tests) and the auto-confirm resolution shared by apply
// and any future non-interactive surface.
package cmd

import (
	"io"
	"os"

	"github.com/caelisco/fuzzyedit/internal/config"
	"github.com/caelisco/fuzzyedit/internal/fuzzyreplace"
	"github.com/spf13/cobra"
)

// out is the output writer for commands. Tests replace this to capture
// output instead of writing to the real stdout.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// resolveAutoConfirm reports whether an edit should bypass the interactive
// prompt: the --yes flag wins, otherwise FUZZYEDIT_AUTO_CONFIRM or the
// config file's auto_confirm setting (checked via cfg.AutoConfirmEnabled,
// which already applies the env var override).
func resolveAutoConfirm(yesFlag bool) bool {
	if yesFlag {
		return true
	}
	cfg, err := config.Load()
	if err != nil {
		return false
	}
	return cfg.AutoConfirmEnabled()
}

// resolveReplaceAll reports whether an edit should replace every occurrence
// of the located candidate: the --all flag wins when the caller set it
// explicitly, otherwise the config file's replace_all default applies.
func resolveReplaceAll(cmd *cobra.Command, flagName string, allFlag bool) bool {
	if cmd.Flags().Changed(flagName) {
		return allFlag
	}
	cfg, err := config.Load()
	if err != nil {
		return false
	}
	return cfg.DefaultReplaceAll()
}

// resolveThresholds returns the block-anchor acceptance thresholds from
// config, falling back to the engine defaults when unset or unreadable.
func resolveThresholds() fuzzyreplace.Thresholds {
	cfg, err := config.Load()
	if err != nil {
		return fuzzyreplace.DefaultThresholds()
	}
	return fuzzyreplace.Thresholds{
		SingleCandidate: cfg.SingleCandidateThreshold(),
		MultiCandidate:  cfg.MultiCandidateThreshold(),
	}
}
