package walk

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under a new temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func rels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Rel
	}
	return out
}

func TestFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.txt":          "b",
		"a.txt":          "a",
		"src/main.go":    "package main",
		"src/util/x.go":  "package util",
		"docs/readme.md": "# readme",
	})

	t.Run("lexical order, files only", func(t *testing.T) {
		got := rels(Collect(root, Options{}))
		assert.Equal(t, []string{
			"a.txt",
			"b.txt",
			"docs/readme.md",
			"src/main.go",
			"src/util/x.go",
		}, got)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first := rels(Collect(root, Options{}))
		second := rels(Collect(root, Options{}))
		assert.Equal(t, first, second)
	})

	t.Run("entry fields", func(t *testing.T) {
		var found Entry
		for e := range Files(root, Options{}) {
			if e.Rel == "src/main.go" {
				found = e
			}
		}
		assert.Equal(t, "main.go", found.Name)
		assert.Equal(t, filepath.Join(root, "src", "main.go"), found.Path)
		require.NotNil(t, found.Info)
		assert.Equal(t, int64(len("package main")), found.Info.Size())
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range Files(root, Options{}) {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})
}

func TestFiles_Exclude(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":                      "package main",
		"node_modules/pkg/index.js":    "module.exports = 1",
		"web/node_modules/x/x.js":      "x",
		"web/app.js":                   "app",
		"logs/today.txt":               "log",
		"debug.log":                    "log",
		"vendor/lib/lib.go":            "package lib",
		"internal/vendor/keep/keep.go": "package keep",
	})

	got := rels(Collect(root, Options{Exclude: []string{"node_modules", "*.log", "logs", "/vendor"}}))
	assert.Equal(t, []string{
		"internal/vendor/keep/keep.go",
		"main.go",
		"web/app.js",
	}, got)
}

func TestFiles_SkipsUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	root := writeTree(t, map[string]string{
		"ok.txt":          "ok",
		"locked/hide.txt": "hidden",
		"zz/after.txt":    "after",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	got := rels(Collect(root, Options{}))
	assert.Equal(t, []string{"ok.txt", "zz/after.txt"}, got)
}

func TestFiles_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := writeTree(t, map[string]string{
		"real.txt":     "real",
		"dir/file.txt": "file",
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.txt"), filepath.Join(root, "broken.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "dir"), filepath.Join(root, "dirlink")))

	got := rels(Collect(root, Options{}))
	assert.Equal(t, []string{"dir/file.txt", "link.txt", "real.txt"}, got)
}

func TestStat(t *testing.T) {
	root := writeTree(t, map[string]string{"f.txt": "x"})

	assert.NoError(t, Stat(root))

	err := Stat(filepath.Join(root, "missing"))
	assert.True(t, errors.Is(err, ErrRoot), "missing root: got %v", err)

	err = Stat(filepath.Join(root, "f.txt"))
	assert.True(t, errors.Is(err, ErrRoot), "file root: got %v", err)
}
