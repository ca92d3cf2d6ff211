package format

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{-1, "0 B"},
		{1, "1 B"},
		{500, "500 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{2048 * 1024 * 1024 * 1024 * 1024, "2048.0 TB"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FileSize(tc.size))
		})
	}
}

func TestModTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	assert.Equal(t, "2024-03-09 07:05:01", ModTime(ts))
}

func TestHeader(t *testing.T) {
	t.Run("find", func(t *testing.T) {
		var buf bytes.Buffer
		Header(&buf, Heading{Pattern: "config", Root: "/src", IgnoreCase: true}, Style{})
		out := buf.String()
		assert.Contains(t, out, "Searching for: config\n")
		assert.Contains(t, out, "Directory: /src\n")
		assert.Contains(t, out, "Options: Case Insensitive | Literal\n")
		assert.NotContains(t, out, "All files")
	})

	t.Run("grep with extensions", func(t *testing.T) {
		var buf bytes.Buffer
		Header(&buf, Heading{Pattern: `fn\s`, Root: ".", Regex: true, Content: true, Extensions: "py,rs"}, Style{})
		assert.Contains(t, buf.String(), "Searching for pattern: fn\\s\n")
		assert.Contains(t, buf.String(), "Options: Case Sensitive | Regex | Extensions: py,rs\n")
	})

	t.Run("grep all files", func(t *testing.T) {
		var buf bytes.Buffer
		Header(&buf, Heading{Pattern: "x", Root: ".", Content: true}, Style{})
		assert.Contains(t, buf.String(), "| All files\n")
	})
}

func TestFiles(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		Files(&buf, nil, "nothing", Style{})
		assert.Equal(t, "No files found matching: nothing\n", buf.String())
	})

	t.Run("listing", func(t *testing.T) {
		mod := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
		files := []result.File{
			{Path: filepath.Join("src", "main.rs"), Name: "main.rs", Dir: "src", Size: 1536, ModTime: mod},
			{Path: filepath.Join("src", "lib.rs"), Name: "lib.rs", Dir: "src", Size: 10, ModTime: mod},
		}

		var buf bytes.Buffer
		Files(&buf, files, "rs", Style{})
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "Found 2 matches:\n"))
		assert.Contains(t, out, "1. 🦀 main.rs\n")
		assert.Contains(t, out, "   📍 src\n")
		assert.Contains(t, out, "   📏 1.5 KB  🕒 2024-01-02 03:04:05  🔗 "+filepath.Join("src", "main.rs")+"\n")
		assert.Contains(t, out, "2. 🦀 lib.rs\n")
		assert.Contains(t, out, "Search completed. Found 2 files.\n")
		assert.Equal(t, 2, strings.Count(out, strings.Repeat("═", ruleWidth)))
		assert.Equal(t, 1, strings.Count(out, strings.Repeat("─", ruleWidth)))
	})

	t.Run("singular", func(t *testing.T) {
		var buf bytes.Buffer
		Files(&buf, []result.File{{Path: "a.txt", Name: "a.txt", Dir: "."}}, "a", Style{})
		assert.Contains(t, buf.String(), "Found 1 match:\n")
		assert.Contains(t, buf.String(), "Found 1 file.\n")
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		Files(&buf, []result.File{{Path: "gone.go", Name: "gone.go", Missing: true}}, "gone", Style{})
		assert.Contains(t, buf.String(), "❌ 1. 🐹 gone.go\n")
		assert.NotContains(t, buf.String(), "📏")
	})
}

func TestGrep(t *testing.T) {
	t.Run("no matches", func(t *testing.T) {
		var buf bytes.Buffer
		Grep(&buf, nil, GrepSummary{Pattern: "zzz", Scanned: 3}, Style{})
		assert.Equal(t, "No matches found for pattern: zzz (searched 3 files)\n", buf.String())
	})

	t.Run("grouped", func(t *testing.T) {
		path := filepath.Join("src", "a.rs")
		groups := []result.Group{{
			Path: path,
			Matches: []result.Match{
				{Path: path, Line: 1, Content: "fn main() {}", Start: 3, End: 7},
				{Path: path, Line: 12, Content: "    let main = 1; main", Start: 8, End: 12},
			},
		}}

		var buf bytes.Buffer
		Grep(&buf, groups, GrepSummary{Pattern: "main", Matches: 2, Scanned: 4}, Style{})
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "Found 2 matches in 1 file (searched 4 files):\n"))
		assert.Contains(t, out, "1. 🦀 a.rs (2 matches)\n")
		assert.Contains(t, out, "   📍 src\n")
		assert.Contains(t, out, "     1    1 │ fn main() {}\n")
		// Leading indentation trimmed, text after the span untouched
		assert.Contains(t, out, "     2   12 │ let main = 1; main\n")
		assert.Contains(t, out, "Search completed. Found 2 matches in 1 file.\n")
	})
}

func TestGrep_Colour(t *testing.T) {
	groups := []result.Group{{
		Path:    "a.go",
		Matches: []result.Match{{Path: "a.go", Line: 1, Content: "x := foo", Start: 5, End: 8}},
	}}

	var plain, coloured bytes.Buffer
	Grep(&plain, groups, GrepSummary{Pattern: "foo", Matches: 1, Scanned: 1}, Style{})
	Grep(&coloured, groups, GrepSummary{Pattern: "foo", Matches: 1, Scanned: 1}, Style{Colour: true})

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, coloured.String(), "\x1b[")
}

func TestPathsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	Paths(&buf, []string{"a.go", "b.go"})
	assert.Equal(t, "a.go\nb.go\n", buf.String())

	buf.Reset()
	Counts(&buf, []result.Group{
		{Path: "a.go", Matches: make([]result.Match, 3)},
		{Path: "b.go", Matches: make([]result.Match, 1)},
	})
	assert.Equal(t, "a.go:3\nb.go:1\n", buf.String())
}

func TestTree(t *testing.T) {
	root := "proj"
	paths := []string{
		filepath.Join(root, "src", "main.rs"),
		filepath.Join(root, "README.md"),
		filepath.Join(root, "src", "util", "io.rs"),
	}

	var buf bytes.Buffer
	Tree(&buf, root, paths)

	want := strings.Join([]string{
		"proj",
		"├── README.md",
		"└── src/",
		"    ├── main.rs",
		"    └── util/",
		"        └── io.rs",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	Tree(&buf, "proj", nil)
	assert.Empty(t, buf.String())
}

func TestHistory(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
	entries := []log.Entry{
		{Source: "search:grep", Action: "search", Pattern: "TODO", Root: "abcd", Matches: 1, Start: at, Success: true},
		{Source: "mcp:ffind_find", Action: "search", Pattern: "(", Start: at, Error: "invalid pattern"},
		{Source: "core:config", Action: "set", Start: at, Success: true},
	}

	var buf bytes.Buffer
	History(&buf, entries, Style{})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `2026-03-04 05:06:07 ✓ search:grep "TODO" → 1 match [abcd]`, lines[0])
	assert.Equal(t, `2026-03-04 05:06:07 ✗ mcp:ffind_find "(" → invalid pattern`, lines[1])
	assert.Equal(t, `2026-03-04 05:06:07 ✓ core:config set`, lines[2])

	buf.Reset()
	History(&buf, nil, Style{})
	assert.Equal(t, "No searches recorded\n", buf.String())
}
