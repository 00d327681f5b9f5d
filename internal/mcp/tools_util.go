// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Design: permissive extraction (return default on error) rather than strict
// validation - LLMs frequently omit optional parameters or get their type
// wrong, and a sensible default keeps the tool usable rather than failing
// with a cryptic type error the caller can't act on.
package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getBool extracts a boolean parameter from the MCP request arguments.
// JSON booleans decode as Go bool values, so a type assertion suffices.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}
