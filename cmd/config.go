// config.go implements "fuzzyedit config" for viewing and setting
// configuration, following the local-overrides-global cascade of
// internal/config.
package cmd

import (
	"fmt"

	"github.com/caelisco/fuzzyedit/internal/config"
	"github.com/caelisco/fuzzyedit/internal/log"
	"github.com/spf13/cobra"
)

var configLocal bool

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  fuzzyedit config                              # show all values
  fuzzyedit config auto_confirm                 # show one value
  fuzzyedit config auto_confirm true            # set a value

Configuration locations:
  Global: ~/.fuzzyedit/config.yaml
  Local:  .fuzzyedit/config.yaml

Uses local config if it exists, otherwise global. Writes go to the same
place reads come from. Use --local to target local config explicitly.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().BoolVar(&configLocal, "local", false, "Use local config (.fuzzyedit/config.yaml)")
	return c
}

func runConfig(_ *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		for _, k := range config.ValidKeys() {
			v, _ := cfg.Get(k)
			fmt.Fprintf(Out(), "%s: %s\n", k, v)
		}
		log.Event("config", "list").Write(nil)

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return fmt.Errorf("config get %q: %w", args[0], err)
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("config", "set").Detail("key", args[0]).Write(err)
			return fmt.Errorf("config set %q: %w", args[0], err)
		}
		saveErr := cfg.Save()
		log.Event("config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return fmt.Errorf("config save: %w", saveErr)
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newConfigCmd())
}
