// Package mcp implements the Model Context Protocol server, exposing the
// fuzzy replacement engine to LLMs as a single "edit" tool. This is the
// agent-routing collaborator the core engine treats as external.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/caelisco/fuzzyedit/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
//
// Design: stdout is reserved for MCP JSON-RPC messages, so all logging
// goes to stderr, following the usual MCP server convention.
func Serve() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := log.Open(); err != nil {
		slog.Warn("audit log unavailable", "error", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		log.SetProject(cwd)
	}
	defer log.Close()

	h := &handlers{}

	s := server.NewMCPServer(
		"fuzzyedit",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("fuzzyedit MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers. It carries no state of its own -
// the engine itself is stateless across calls.
type handlers struct{}

// registerTools exposes the single edit operation as an MCP tool.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("edit",
			mcp.WithDescription(
				"Apply a fuzzy search/replace edit to a file. Locates oldString "+
					"even when whitespace, indentation, or paraphrased interior "+
					"lines differ from the file's literal bytes, then applies the "+
					"edit non-interactively and returns a success message.",
			),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path, absolute or relative to the server's working directory")),
			mcp.WithString("old_string", mcp.Required(), mcp.Description("Text to locate")),
			mcp.WithString("new_string", mcp.Required(), mcp.Description("Replacement text")),
			mcp.WithBoolean("replace_all", mcp.Description("Replace every occurrence of the located candidate instead of requiring uniqueness")),
		),
		h.edit,
	)

	s.AddTool(
		mcp.NewTool("edit_preview",
			mcp.WithDescription("Compute the unified diff a call to 'edit' would apply, without writing the file."),
			mcp.WithString("path", mcp.Required(), mcp.Description("File path, absolute or relative to the server's working directory")),
			mcp.WithString("old_string", mcp.Required(), mcp.Description("Text to locate")),
			mcp.WithString("new_string", mcp.Required(), mcp.Description("Replacement text")),
			mcp.WithBoolean("replace_all", mcp.Description("Replace every occurrence of the located candidate instead of requiring uniqueness")),
		),
		h.preview,
	)
}
