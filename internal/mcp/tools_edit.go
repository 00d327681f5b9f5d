// tools_edit.go implements the "edit" and "edit_preview" MCP tools,
// delegating to internal/editop, the same engine the CLI uses. Unlike the
// CLI, these tools do not read the config file: block-anchor thresholds are
// the engine defaults and replace_all defaults to false.
package mcp

import (
	"context"
	"errors"

	"github.com/caelisco/fuzzyedit/internal/confirm"
	"github.com/caelisco/fuzzyedit/internal/editop"
	"github.com/caelisco/fuzzyedit/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// edit applies a fuzzy replacement unconditionally - an agent calling this
// tool has already decided to make the change, so there is no interactive
// confirmation step; the MCP client is the confirmation surface.
func (h *handlers) edit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}
	oldString, err := req.RequireString("old_string")
	if err != nil {
		return mcp.NewToolResultError("old_string is required"), nil
	}
	newString, err := req.RequireString("new_string")
	if err != nil {
		return mcp.NewToolResultError("new_string is required"), nil
	}
	replaceAll := getBool(req, "replace_all", false)

	l := log.Event("mcp:edit", "edit").Path(path).ReplaceAll(replaceAll)

	result, editErr := editop.Edit(editop.Options{
		FilePath:   path,
		OldString:  oldString,
		NewString:  newString,
		ReplaceAll: replaceAll,
		Confirmer:  confirm.Auto{Decision: true},
	})
	l.Write(editErr)
	if editErr != nil {
		return mcp.NewToolResultError(describeError(editErr)), nil
	}

	return mcp.NewToolResultText(result.Output), nil
}

// preview computes the would-be diff without writing, for an agent that
// wants to inspect a change before deciding whether to call edit.
func (h *handlers) preview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}
	oldString, err := req.RequireString("old_string")
	if err != nil {
		return mcp.NewToolResultError("old_string is required"), nil
	}
	newString, err := req.RequireString("new_string")
	if err != nil {
		return mcp.NewToolResultError("new_string is required"), nil
	}
	replaceAll := getBool(req, "replace_all", false)

	l := log.Event("mcp:edit_preview", "diff").Path(path).ReplaceAll(replaceAll)

	diffText, previewErr := editop.Preview(editop.Options{
		FilePath:   path,
		OldString:  oldString,
		NewString:  newString,
		ReplaceAll: replaceAll,
	})
	l.Write(previewErr)
	if previewErr != nil {
		return mcp.NewToolResultError(describeError(previewErr)), nil
	}

	return mcp.NewToolResultText(diffText), nil
}

// describeError names the fragment only in summary, never the whole file,
// per the engine's error-handling design for NotFound/Ambiguous outcomes.
func describeError(err error) string {
	switch {
	case errors.Is(err, editop.ErrUserCancelled):
		return "edit cancelled"
	default:
		return err.Error()
	}
}
