// Package progress provides the CLI scan indicator. Output goes to stderr
// to keep stdout clean for piping, and nothing is drawn unless stderr is a
// terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Redraw intervals used by the search commands.
const (
	EveryFiles   = 50  // content search: redraw every 50 files scanned
	EveryEntries = 100 // name search: redraw every 100 entries visited
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows that a scan is running and how far it has got. It is safe
// for concurrent use: content search workers call Step from several
// goroutines.
type Spinner struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	every   int
	count   int
	frame   int
	width   int
	isTTY   bool
	running bool
}

// NewSpinner creates a spinner on stderr that redraws every n steps.
func NewSpinner(label string, every int) *Spinner {
	return newSpinner(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), label, every)
}

func newSpinner(w io.Writer, tty bool, label string, every int) *Spinner {
	if every < 1 {
		every = 1
	}
	return &Spinner{w: w, label: label, every: every, isTTY: tty}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	if s == nil || !s.isTTY {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.draw()
}

// Step records one unit of work and redraws on every n-th call.
func (s *Spinner) Step() {
	if s == nil || !s.isTTY {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.count++
	if s.count%s.every == 0 {
		s.frame = (s.frame + 1) % len(frames)
		s.draw()
	}
}

// Count returns the number of steps recorded.
func (s *Spinner) Count() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if s == nil || !s.isTTY {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
}

// draw must be called with mu held.
func (s *Spinner) draw() {
	line := fmt.Sprintf("%s %s... %d", frames[s.frame], s.label, s.count)
	if n := len([]rune(line)); n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.w, "\r%s", line)
}
