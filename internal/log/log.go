// Package log records an audit trail of ffind searches. Entries are stored
// in ~/.ffind/log/ffind-log.db and cover both CLI commands and MCP tool
// calls, across every directory ffind has searched.
//
// # Fluent API
//
// Build an entry with [Event], chain fields, then finish with
// [Builder.Write]:
//
//	log.Event("search:grep", "search").
//		Root(opts.Root).
//		Pattern(pattern).
//		Matches(len(res.Matches)).
//		Detail("scanned", res.Scanned).
//		Write(err)
//
// The source is "{extension}:{command}" for CLI commands or "mcp:{tool}" for
// MCP tools, e.g. "search:find", "mcp:ffind_grep".
//
// Logging is best effort. Nothing here returns an error to the search that
// produced the entry.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry is a single audit record.
type Entry struct {
	ID      string // uuid, assigned by Write when empty
	Source  string // e.g. "search:grep", "mcp:ffind_find"
	Action  string // search, config, serve
	Root    string // search root as given; stored hashed
	Pattern string

	// Matches is the number of results the operation produced.
	Matches int

	Start time.Time
	End   time.Time

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry.
type Builder struct {
	entry Entry
}

// Event starts an entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now(),
		},
	}
}

// Root sets the directory searched. Relative roots are made absolute so
// that the same directory hashes the same from anywhere.
func (b *Builder) Root(root string) *Builder {
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	b.entry.Root = root
	return b
}

// Pattern sets the search pattern.
func (b *Builder) Pattern(p string) *Builder {
	b.entry.Pattern = p
	return b
}

// Matches sets the result count.
func (b *Builder) Matches(n int) *Builder {
	b.entry.Matches = n
	return b
}

// Detail adds a key-value pair for data without a dedicated field:
// flags, extension filters, scanned file counts.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
//
//	res, err := grep.Run(ctx, w, pattern, opts)
//	log.Event("search:grep", "search").Pattern(pattern).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers usually ignore the error: a missing audit log never stops a search.
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
	// One writer; MCP tools may log from several goroutines.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. A no-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
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
