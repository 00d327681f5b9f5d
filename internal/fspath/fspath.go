// Package fspath resolves the file paths the edit operation works with.
// Unlike a document-store path package, which would normalise virtual
// paths for a virtual store, this operates on real filesystem paths: it
// has no store root to stay inside, and its job is resolution and display,
// not traversal defence.
package fspath

import (
	"path/filepath"
)

// Resolve turns p into an absolute path. A relative p is resolved against
// the process's current working directory, matching the original tool's
// "Path.cwd() / path" behaviour when given a non-absolute filePath.
func Resolve(p string) (string, error) {
	return filepath.Abs(p)
}

// Display returns the path to show the user in diffs and confirmation
// prompts: p relative to the current working directory when possible,
// falling back to p unchanged (already absolute) when it lies outside
// the working directory tree.
func Display(p string) string {
	cwd, err := filepathAbsCwd()
	if err != nil {
		return p
	}

	rel, err := filepath.Rel(cwd, p)
	if err != nil {
		return p
	}

	// filepath.Rel happily produces paths that climb out with "..";
	// anything leaving the cwd is shown as the absolute path instead,
	// since a relative path doesn't make the location clearer there.
	if len(rel) >= 2 && rel[:2] == ".." {
		return p
	}

	return rel
}

func filepathAbsCwd() (string, error) {
	return filepath.Abs(".")
}
