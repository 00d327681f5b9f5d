// serve.go implements "fuzzyedit serve" for MCP server operation.
//
// Design: serve blocks indefinitely handling stdio requests, unlike every
// other command here which runs once and exits.
package cmd

import (
	"github.com/caelisco/fuzzyedit/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start an MCP server exposing the edit operation over stdio",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve()
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
