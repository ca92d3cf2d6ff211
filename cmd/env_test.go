// The cmd/ package holds CLI integration tests that exercise the full
// stack: flag parsing, config defaults, the search engines and output.
// Each test runs the built binary in a fresh directory with HOME pointed
// at a temp dir, so neither global config nor the audit log leak between
// tests.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the ffind binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "ffind-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "ffind"
		if os.PathSeparator == '\\' {
			binaryName = "ffind.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
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

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates an empty working directory and home directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// write creates files under the working directory.
func (e *testEnv) write(files map[string]string) {
	e.t.Helper()
	for rel, content := range files {
		p := filepath.Join(e.dir, filepath.FromSlash(rel))
		require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	}
}

// run executes ffind with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("ffind %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes ffind and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home, "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runOut executes ffind and returns stdout only, for JSON decoding.
func (e *testEnv) runOut(args ...string) string {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home, "NO_COLOR=1")
	out, err := cmd.Output()
	if err != nil {
		e.t.Fatalf("ffind %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output lacks a string.
func (e *testEnv) notContains(output, unexpected string) {
	e.t.Helper()
	assert.NotContains(e.t, output, unexpected)
}
