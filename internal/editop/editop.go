// Package editop orchestrates a single fuzzy-replacement edit against a
// file on disk: it reads content, drives the replacement, renders a diff,
// asks for confirmation, and writes only on a positive answer.
//
// Design: the state machine is a single pure function threading fixed
// collaborators (fileio, fuzzyreplace, diff, confirm). There is no
// persistence or cross-call state, following a one-shot-operation
// orientation toward one-shot operations over a caller-supplied service.
package editop

import (
	"errors"
	"fmt"

	"github.com/caelisco/fuzzyedit/internal/confirm"
	"github.com/caelisco/fuzzyedit/internal/diff"
	"github.com/caelisco/fuzzyedit/internal/fileio"
	"github.com/caelisco/fuzzyedit/internal/fspath"
	"github.com/caelisco/fuzzyedit/internal/fuzzyreplace"
)

// ErrUserCancelled indicates the confirmation collaborator declined the
// edit. The on-disk file is guaranteed unchanged.
var ErrUserCancelled = errors.New("edit cancelled by user")

// Options configures one edit call. Names mirror the public contract's
// stable parameter names.
type Options struct {
	FilePath   string
	OldString  string
	NewString  string
	ReplaceAll bool

	// Thresholds overrides the block-anchor replacer's acceptance
	// thresholds. Nil uses fuzzyreplace.DefaultThresholds().
	Thresholds *fuzzyreplace.Thresholds

	// Confirmer decides whether to apply the edit after the diff is built.
	// Defaults to confirm.Auto{Decision: true} when nil, matching the
	// engine's test bypass for non-interactive callers.
	Confirmer confirm.Confirmer
}

func (o Options) thresholds() fuzzyreplace.Thresholds {
	if o.Thresholds == nil {
		return fuzzyreplace.DefaultThresholds()
	}
	return *o.Thresholds
}

// Result is the outcome of a successful edit.
type Result struct {
	Title        string `json:"title"`
	Output       string `json:"output"`
	Replacements int    `json:"replacements"`
}

// Edit runs the full ValidateArgs -> ResolvePath -> VerifyFile ->
// ReadContent -> DriveReplacement -> BuildDiff -> RequestConfirmation ->
// {WriteContent|Abort} -> ReportResult state machine.
//
// On any failure, the on-disk file is byte-identical to what it was at
// the start of the call - nothing is written before confirmation resolves
// positively, and confirmation only happens after a successful read and
// drive.
func Edit(opts Options) (Result, error) {
	// ValidateArgs
	if opts.OldString == opts.NewString {
		return Result{}, fuzzyreplace.ErrNoChange
	}

	// ResolvePath
	absPath, err := fspath.Resolve(opts.FilePath)
	if err != nil {
		return Result{}, fmt.Errorf("resolve path %q: %w", opts.FilePath, err)
	}
	displayPath := fspath.Display(absPath)

	// VerifyFile
	if !fileio.Exists(absPath) {
		return Result{}, fmt.Errorf("%w: %s", fileio.ErrNotFound, displayPath)
	}
	if fileio.IsDirectory(absPath) {
		return Result{}, fmt.Errorf("%w: %s", fileio.ErrIsDirectory, displayPath)
	}

	// ReadContent
	content, err := fileio.ReadText(absPath)
	if err != nil {
		return Result{}, err
	}

	// DriveReplacement
	newContent, n, err := fuzzyreplace.DriveWithThresholds(content, opts.OldString, opts.NewString, opts.ReplaceAll, opts.thresholds())
	if err != nil {
		return Result{}, err
	}

	// BuildDiff
	diffText := diff.Compute(content, newContent, displayPath)

	// RequestConfirmation
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = confirm.Auto{Decision: true}
	}
	ok, err := confirmer.Confirm(diffText, displayPath)
	if err != nil || !ok {
		// Any collaborator error, or an explicit decline, is a decline:
		// the engine never writes without an unambiguous positive answer.
		return Result{}, ErrUserCancelled
	}

	// WriteContent
	if err := fileio.WriteText(absPath, newContent); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", displayPath, err)
	}

	// ReportResult
	return Result{
		Title:        displayPath,
		Output:       "Edit applied successfully.",
		Replacements: n,
	}, nil
}

// Preview runs ResolvePath -> VerifyFile -> ReadContent -> DriveReplacement
// -> BuildDiff and returns the would-be diff without confirming or
// writing, backing the diff-preview surface.
func Preview(opts Options) (string, error) {
	if opts.OldString == opts.NewString {
		return "", fuzzyreplace.ErrNoChange
	}

	absPath, err := fspath.Resolve(opts.FilePath)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", opts.FilePath, err)
	}
	displayPath := fspath.Display(absPath)

	if !fileio.Exists(absPath) {
		return "", fmt.Errorf("%w: %s", fileio.ErrNotFound, displayPath)
	}
	if fileio.IsDirectory(absPath) {
		return "", fmt.Errorf("%w: %s", fileio.ErrIsDirectory, displayPath)
	}

	content, err := fileio.ReadText(absPath)
	if err != nil {
		return "", err
	}

	newContent, _, err := fuzzyreplace.DriveWithThresholds(content, opts.OldString, opts.NewString, opts.ReplaceAll, opts.thresholds())
	if err != nil {
		return "", err
	}

	return diff.Compute(content, newContent, displayPath), nil
}
