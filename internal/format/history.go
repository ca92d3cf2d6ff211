package format

import (
	"fmt"
	"io"

	"github.com/jpl-au/ffind/internal/log"
)

// History prints audit log entries, one per line, in the order given.
func History(w io.Writer, entries []log.Entry, s Style) {
	p := s.palette()

	if len(entries) == 0 {
		fmt.Fprintln(w, "No searches recorded")
		return
	}

	for _, e := range entries {
		mark := p.ok.Sprint("✓")
		if !e.Success {
			mark = p.bad.Sprint("✗")
		}

		what := e.Action
		if e.Pattern != "" {
			what = fmt.Sprintf("%q", e.Pattern)
		}
		fmt.Fprintf(w, "%s %s %s %s", ModTime(e.Start), mark, p.path.Sprint(e.Source), p.bold.Sprint(what))

		switch {
		case !e.Success:
			fmt.Fprintf(w, " → %s", p.bad.Sprint(e.Error))
		case e.Action == "search":
			fmt.Fprintf(w, " → %s %s", p.count.Sprint(e.Matches), plural(e.Matches, "match", "matches"))
		}
		if e.Root != "" {
			fmt.Fprintf(w, " %s", p.dim.Sprint("["+e.Root+"]"))
		}
		fmt.Fprintln(w)
	}
}
