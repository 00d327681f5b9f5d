// Package log provides centralised audit logging for fuzzyedit operations.
// Logs are stored in ~/.fuzzyedit/log/fuzzyedit-log.db by default, or at
// the config file's log_path if set, and track both CLI invocations and
// MCP tool calls across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("edit:apply", "edit").
//		Path(path).
//		ReplaceAll(opts.ReplaceAll).
//		Replacements(n).
//		Write(err)
//
//	log.Event("mcp:edit", "edit").
//		Path(path).
//		Detail("replacer", "block-anchor").
//		Write(err)
//
// The source parameter follows the format "{surface}:{command}" for the
// edit commands or "mcp:{tool}" for MCP tools. Examples: "edit:apply",
// "edit:diff", "mcp:edit". The config command logs under plain "config".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "edit:apply", "mcp:edit"
	Author string // who performed the action
	Action string // verb: "edit", "diff"
	Path   string // input: file path requested

	// Output fields - populated after operation succeeds.
	ResolvedPath string // output: absolute path, if different from input
	Replacements int    // output: number of textual substitutions made
	ReplaceAll   bool   // input: whether replaceAll mode was requested

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI edit commands: "{surface}:{command}" (e.g., "edit:apply", "edit:diff")
//   - the config command: "config"
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:edit")
//
// The action describes what operation was performed: "edit" or "diff" for
// the edit surfaces, "list", "get" or "set" for the config command.
//
// Example:
//
//	log.Event("edit:apply", "edit").
//		Path(path).
//		Write(err)
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation. The author column is left NULL
// when Author is not called.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the input file path this operation targets.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Resolved sets the resolved absolute path (output), when it differs from
// the input path.
//
// Example:
//
//	l.Resolved(result.Path)  // After confirming success
func (b *Builder) Resolved(path string) *Builder {
	b.entry.ResolvedPath = path
	return b
}

// ReplaceAll records whether replaceAll mode was requested for this edit.
func (b *Builder) ReplaceAll(all bool) *Builder {
	b.entry.ReplaceAll = all
	return b
}

// Replacements records the number of textual substitutions the edit made
// (output, populated after a successful Drive).
func (b *Builder) Replacements(n int) *Builder {
	b.entry.Replacements = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields: which
// replacer in the cascade matched, the confirmation decision, and so on.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation.
//
// Example:
//
//	newContent, n, err := fuzzyreplace.Drive(content, old, new, all)
//	log.Event("edit:apply", "edit").Path(path).Replacements(n).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the project's working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
