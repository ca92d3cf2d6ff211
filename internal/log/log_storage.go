// log_storage.go persists audit entries to SQLite.
//
// Search roots are stored as a short blake2b hash: entries for the same
// directory can be grouped without the log revealing where a user keeps
// their code.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db *sql.DB
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	var root *string
	if e.Root != "" {
		h := hash(e.Root)
		root = &h
	}

	_, err := l.db.Exec(`
		INSERT INTO log (id, start, end, source, action, root, pattern, matches,
		                 success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Start.UnixMilli(), e.End.UnixMilli(), e.Source, e.Action,
		root, nilIfEmpty(e.Pattern), e.Matches,
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ffind: audit log write failed: %v\n", err)
	}
}

// dbPathFunc returns the database path. Tests point it at a temp dir.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ffind", "log", "ffind-log.db")
	}
	return filepath.Join(home, ".ffind", "log", "ffind-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash returns a 64-bit blake2b digest of s as 16 hex characters.
func hash(s string) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      TEXT PRIMARY KEY,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			root    TEXT,
			pattern TEXT,
			matches INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_root ON log(root);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
