package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/ffind/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grepFixture(t *testing.T) *testEnv {
	env := newTestEnv(t)
	env.write(map[string]string{
		"a.rs":             "fn main() {\n    println!(\"main\");\n}\n",
		"b.png":            "main\n",
		"lib/c.py":         "def main(): pass\n",
		"notes.md":         "# MAIN\n",
		"target/out.rs":    "fn main() {}\n",
		"scripts/run":      "#!/bin/sh\nmain\n",
		"scripts/data.bin": "main\x00\x01",
	})
	return env
}

func TestGrep(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		env := grepFixture(t)
		out := env.run("grep", "main")
		env.contains(out, "Searching for pattern: main")
		env.contains(out, "Found 4 matches in 3 files (searched 4 files):")
		env.contains(out, "a.rs (2 matches)")
		env.contains(out, "   1 │ fn main() {")
		env.notContains(out, "out.rs")
		env.notContains(out, "b.png")
		env.notContains(out, "data.bin")
	})

	t.Run("ignore case", func(t *testing.T) {
		env := grepFixture(t)
		out := env.run("grep", "-i", "-l", "MAIN")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, []string{
			"a.rs",
			filepath.Join("lib", "c.py"),
			"notes.md",
			filepath.Join("scripts", "run"),
		}, lines)
	})

	t.Run("extension filter", func(t *testing.T) {
		env := grepFixture(t)
		out := env.run("grep", "-e", "rs, .PY", "-l", "main")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, []string{"a.rs", filepath.Join("lib", "c.py")}, lines)

		out = env.run("grep", "-e", "rs,py", "main")
		env.contains(out, "Extensions: py,rs")
	})

	t.Run("counts", func(t *testing.T) {
		env := grepFixture(t)
		out := env.run("grep", "-c", "-e", "rs", "main")
		assert.Equal(t, "a.rs:2", strings.TrimSpace(out))
	})

	t.Run("regex", func(t *testing.T) {
		env := grepFixture(t)
		out := env.run("grep", "-r", "-l", `^def \w+\(`)
		assert.Equal(t, filepath.Join("lib", "c.py"), strings.TrimSpace(out))
	})

	t.Run("no matches", func(t *testing.T) {
		env := grepFixture(t)
		out := env.run("grep", "zzz")
		env.contains(out, "No matches found for pattern: zzz (searched 4 files)")
	})

	t.Run("threads", func(t *testing.T) {
		env := newTestEnv(t)
		files := make(map[string]string)
		for i := range 40 {
			files[fmt.Sprintf("d%02d/f.txt", i)] = strings.Repeat("needle hay\n", i%5+1)
		}
		env.write(files)

		want := env.run("grep", "needle")
		assert.Equal(t, want, env.run("grep", "-t", "8", "needle"))
	})

	t.Run("JSON output", func(t *testing.T) {
		env := grepFixture(t)
		out := env.runOut("grep", "-e", "rs", "main", "-o", "json")

		var groups []result.Group
		require.NoError(t, json.Unmarshal([]byte(out), &groups))
		require.Len(t, groups, 1)
		assert.Equal(t, "a.rs", groups[0].Path)
		require.Len(t, groups[0].Matches, 2)
		m := groups[0].Matches[0]
		assert.Equal(t, 1, m.Line)
		assert.Equal(t, 3, m.Start)
		assert.Equal(t, 7, m.End)
	})

	t.Run("JSON counts", func(t *testing.T) {
		env := grepFixture(t)
		out := env.runOut("grep", "-c", "-e", "py", "main", "-o", "json")
		assert.JSONEq(t, fmt.Sprintf(`[{"path":%q,"count":1}]`, filepath.Join("lib", "c.py")), out)
	})
}

func TestGrep_ConfigDefaults(t *testing.T) {
	env := grepFixture(t)
	env.run("config", "--local", "search.extensions", "py")
	env.run("config", "--local", "search.ignore_case", "true")

	out := env.run("grep", "-l", "MAIN")
	assert.Equal(t, filepath.Join("lib", "c.py"), strings.TrimSpace(out))

	// Flags override config
	out = env.run("grep", "-l", "-e", "md", "--ignore-case=false", "MAIN")
	assert.Equal(t, "notes.md", strings.TrimSpace(out))
}

func TestGrep_Errors(t *testing.T) {
	env := grepFixture(t)

	_, err := env.runErr("grep", "-r", "[")
	assert.Error(t, err)

	_, err = env.runErr("grep", "-t", "0", "main")
	assert.Error(t, err)

	out, err := env.runErr("grep", "-t", "257", "main", "-o", "json")
	assert.Error(t, err)
	env.contains(out, "between 1 and 256")

	out, err = env.runErr("grep", "-d", "missing", "main", "-o", "json")
	assert.Error(t, err)
	env.contains(out, `"error"`)
}
