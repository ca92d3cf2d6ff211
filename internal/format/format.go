// Package format renders search results for the terminal.
//
// Every function here is a pure function of its arguments writing to an
// io.Writer: nothing reads the filesystem or touches search state, so the
// same results always render to the same text. Colour is opt-in through
// Style; with Colour off no escape sequences are written.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/color"
	"github.com/jpl-au/ffind/internal/classify"
	"github.com/jpl-au/ffind/internal/result"
)

// ruleWidth is the width of the horizontal separators.
const ruleWidth = 80

// Style controls presentation.
type Style struct {
	Colour bool // Emit ANSI colour
}

// palette holds the colours used by one render.
type palette struct {
	bold   *color.Color
	count  *color.Color
	path   *color.Color
	rule   *color.Color
	thin   *color.Color
	ok     *color.Color
	bad    *color.Color
	index  *color.Color
	match  *color.Color
	dim    *color.Color
	lineNo *color.Color
}

func (s Style) palette() palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if s.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		bold:   mk(color.FgHiWhite, color.Bold),
		count:  mk(color.FgHiYellow, color.Bold),
		path:   mk(color.FgHiCyan),
		rule:   mk(color.FgHiBlue),
		thin:   mk(color.FgHiBlack),
		ok:     mk(color.FgHiGreen),
		bad:    mk(color.FgHiRed),
		index:  mk(color.FgHiMagenta),
		match:  mk(color.BgHiYellow, color.FgBlack, color.Bold),
		dim:    mk(color.Faint),
		lineNo: mk(color.FgHiBlue),
	}
}

// plural picks the singular or plural noun for n.
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FileSize formats a byte count the way ls -h users expect to read it:
// "0 B", "500 B", "1.0 KB", "1.5 MB". Units stop at TB.
func FileSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	const threshold = 1024

	if size <= 0 {
		return "0 B"
	}

	f := float64(size)
	i := 0
	for f >= threshold && i < len(units)-1 {
		f /= threshold
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", size, units[0])
	}
	return fmt.Sprintf("%.1f %s", f, units[i])
}

// ModTime formats a modification time in local time.
func ModTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

// Heading describes a search for the banner printed before scanning.
type Heading struct {
	Pattern    string
	Root       string
	IgnoreCase bool
	Regex      bool

	// Extensions is shown for content searches only. Empty means all files.
	Extensions string
	Content    bool
}

// Header prints the search banner.
func Header(w io.Writer, h Heading, s Style) {
	p := s.palette()

	label := "Searching for:"
	if h.Content {
		label = "Searching for pattern:"
	}
	fmt.Fprintf(w, "%s %s\n", label, p.bold.Sprint(h.Pattern))
	fmt.Fprintf(w, "Directory: %s\n", p.path.Sprint(h.Root))

	var opts []string
	if h.IgnoreCase {
		opts = append(opts, p.ok.Sprint("Case Insensitive"))
	} else {
		opts = append(opts, p.bad.Sprint("Case Sensitive"))
	}
	if h.Regex {
		opts = append(opts, p.ok.Sprint("Regex"))
	} else {
		opts = append(opts, p.count.Sprint("Literal"))
	}
	if h.Content {
		if h.Extensions != "" {
			opts = append(opts, p.index.Sprint("Extensions: "+h.Extensions))
		} else {
			opts = append(opts, p.index.Sprint("All files"))
		}
	}
	fmt.Fprintf(w, "Options: %s\n", strings.Join(opts, " | "))
	fmt.Fprintln(w, p.thin.Sprint(strings.Repeat("─", ruleWidth)))
}

// Files prints file-name search results as a numbered list.
func Files(w io.Writer, files []result.File, pattern string, s Style) {
	p := s.palette()

	if len(files) == 0 {
		fmt.Fprintf(w, "No files found matching: %s\n", p.bold.Sprint(pattern))
		return
	}

	fmt.Fprintf(w, "Found %s %s:\n", p.count.Sprint(len(files)), plural(len(files), "match", "matches"))
	fmt.Fprintln(w, p.rule.Sprint(strings.Repeat("═", ruleWidth)))

	for i, f := range files {
		fileInfo(w, p, f, i+1)
		if i < len(files)-1 {
			fmt.Fprintln(w, p.thin.Sprint(strings.Repeat("─", ruleWidth)))
		}
	}

	fmt.Fprintln(w, p.rule.Sprint(strings.Repeat("═", ruleWidth)))
	fmt.Fprintf(w, "Search completed. Found %s %s.\n", p.count.Sprint(len(files)), plural(len(files), "file", "files"))
}

// fileInfo prints one numbered file block.
func fileInfo(w io.Writer, p palette, f result.File, n int) {
	if f.Missing {
		fmt.Fprintf(w, "❌ %s. %s %s\n", p.bold.Sprint(n), classify.Icon(f.Path), p.bad.Sprint(f.Path))
		return
	}
	fmt.Fprintf(w, "%s. %s %s\n", p.bold.Sprint(n), classify.Icon(f.Path), p.bold.Sprint(f.Name))
	fmt.Fprintf(w, "   📍 %s\n", p.path.Sprint(f.Dir))
	fmt.Fprintf(w, "   📏 %s  🕒 %s  🔗 %s\n", FileSize(f.Size), ModTime(f.ModTime), p.dim.Sprint(f.Path))
}

// GrepSummary is the bookkeeping a content search reports with its groups.
type GrepSummary struct {
	Pattern string
	Matches int // total match count across groups
	Scanned int // files opened for scanning
}

// Grep prints content search results grouped by file.
func Grep(w io.Writer, groups []result.Group, sum GrepSummary, s Style) {
	p := s.palette()

	if sum.Matches == 0 {
		fmt.Fprintf(w, "No matches found for pattern: %s (searched %s %s)\n",
			p.bold.Sprint(sum.Pattern), p.count.Sprint(sum.Scanned), plural(sum.Scanned, "file", "files"))
		return
	}

	fmt.Fprintf(w, "Found %s %s in %s %s (searched %s %s):\n",
		p.count.Sprint(sum.Matches), plural(sum.Matches, "match", "matches"),
		p.path.Sprint(len(groups)), plural(len(groups), "file", "files"),
		p.bold.Sprint(sum.Scanned), plural(sum.Scanned, "file", "files"))
	fmt.Fprintln(w, p.rule.Sprint(strings.Repeat("═", ruleWidth)))

	for i, g := range groups {
		fileMatches(w, p, g, i+1)
		if i < len(groups)-1 {
			fmt.Fprintln(w, p.thin.Sprint(strings.Repeat("─", ruleWidth)))
		}
	}

	fmt.Fprintln(w, p.rule.Sprint(strings.Repeat("═", ruleWidth)))
	fmt.Fprintf(w, "Search completed. Found %s %s in %s %s.\n",
		p.count.Sprint(sum.Matches), plural(sum.Matches, "match", "matches"),
		p.path.Sprint(len(groups)), plural(len(groups), "file", "files"))
}

// fileMatches prints the header for one file and each of its matches.
func fileMatches(w io.Writer, p palette, g result.Group, n int) {
	fmt.Fprintf(w, "%s. %s %s (%s %s)\n",
		p.bold.Sprint(n), classify.Icon(g.Path), p.bold.Sprint(filepath.Base(g.Path)),
		p.count.Sprint(len(g.Matches)), plural(len(g.Matches), "match", "matches"))
	fmt.Fprintf(w, "   📍 %s\n", p.path.Sprint(filepath.Dir(g.Path)))

	for i, m := range g.Matches {
		fmt.Fprintln(w, matchLine(p, m, i+1))
	}
}

// matchLine renders one match: its index, line number, and the source line
// with the span highlighted. Leading whitespace before the span is trimmed;
// everything after it is left as is.
func matchLine(p palette, m result.Match, n int) string {
	before := strings.TrimLeftFunc(m.Content[:m.Start], unicode.IsSpace)
	return fmt.Sprintf("     %s %s │ %s%s%s",
		p.index.Sprint(n),
		p.lineNo.Sprintf("%4d", m.Line),
		before,
		p.match.Sprint(m.Content[m.Start:m.End]),
		m.Content[m.End:])
}

// Paths prints one path per line.
func Paths(w io.Writer, paths []string) {
	for _, path := range paths {
		fmt.Fprintln(w, path)
	}
}

// Counts prints "path:count" for each group.
func Counts(w io.Writer, groups []result.Group) {
	for _, g := range groups {
		fmt.Fprintf(w, "%s:%d\n", g.Path, len(g.Matches))
	}
}

// Tree prints paths as a directory tree relative to root.
func Tree(w io.Writer, root string, paths []string) {
	if len(paths) == 0 {
		return
	}

	type node struct {
		children map[string]*node
		file     bool
	}

	top := &node{children: make(map[string]*node)}
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		current := top
		parts := strings.Split(filepath.ToSlash(rel), "/")
		for i, part := range parts {
			if current.children[part] == nil {
				current.children[part] = &node{children: make(map[string]*node)}
			}
			current = current.children[part]
			if i == len(parts)-1 {
				current.file = true
			}
		}
	}

	fmt.Fprintln(w, root)

	var printNode func(n *node, prefix string)
	printNode = func(n *node, prefix string) {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}

			suffix := ""
			if !child.file {
				suffix = "/"
			}
			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, suffix)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}
			if len(child.children) > 0 {
				printNode(child, pfx)
			}
		}
	}

	printNode(top, "")
}
