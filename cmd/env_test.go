// env_test.go provides the exec-based integration test harness shared by
// the other cmd/*_test.go files: build the fuzzyedit binary once, then run
// it against files in a temp directory, matching a build-once, exec-driven
// integration-test style (build once, exercise the full CLI stack).
package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "fuzzyedit-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "fuzzyedit"
		if os.PathSeparator == '\\' {
			binaryName = "fuzzyedit.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = projectRoot
		if out, err := buildCmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds a temp working directory and the built binary, isolating
// each test's files and config from the others.
type testEnv struct {
	t      *testing.T
	dir    string
	binary string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dir: t.TempDir(), binary: buildBinary(t)}
}

// writeFile creates name (relative to the env's temp dir) with content and
// returns its absolute path.
func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// readFile returns the current content of name (relative to the env's temp dir).
func (e *testEnv) readFile(name string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, name))
	if err != nil {
		e.t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

// run executes fuzzyedit with the given args and fails the test on error.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("fuzzyedit %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes fuzzyedit and returns stdout+stderr and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.dir, "FUZZYEDIT_AUTO_CONFIRM=")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}
