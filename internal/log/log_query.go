// log_query.go reads and trims the audit log for the history and vacuum
// commands. Roots come back as stored: hashed.

package log

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned by queries when the log is not open.
var ErrClosed = errors.New("audit log not open")

// Query selects entries for Recent.
type Query struct {
	Limit  int    // Maximum entries (0 = all)
	Source string // Only entries whose source starts with this, e.g. "mcp:"
	Failed bool   // Only failed operations
}

func current() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrClosed
	}
	return global, nil
}

// Recent returns entries newest first.
func Recent(ctx context.Context, q Query) ([]Entry, error) {
	l, err := current()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, start, end, source, action, root, pattern, matches,
	                 success, error, detail
	          FROM log WHERE source LIKE ? || '%'`
	args := []any{q.Source}
	if q.Failed {
		query += ` AND success = 0`
	}
	query += ` ORDER BY start DESC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e                     Entry
		start, end            int64
		root, pattern, errStr sql.NullString
		detail                sql.NullString
		success               int
	)
	if err := rows.Scan(&e.ID, &start, &end, &e.Source, &e.Action, &root, &pattern,
		&e.Matches, &success, &errStr, &detail); err != nil {
		return e, fmt.Errorf("scan audit entry: %w", err)
	}
	e.Start = time.UnixMilli(start)
	e.End = time.UnixMilli(end)
	e.Root = root.String
	e.Pattern = pattern.String
	e.Success = success == 1
	e.Error = errStr.String
	if detail.Valid {
		_ = json.Unmarshal([]byte(detail.String), &e.Detail)
	}
	return e, nil
}

// CountBefore returns how many entries started before t.
func CountBefore(ctx context.Context, t time.Time) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}
	var n int64
	err = l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log WHERE start < ?`, t.UnixMilli()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count audit entries: %w", err)
	}
	return n, nil
}

// PruneBefore deletes entries that started before t and returns how many
// were removed.
func PruneBefore(ctx context.Context, t time.Time) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}
	res, err := l.db.ExecContext(ctx, `DELETE FROM log WHERE start < ?`, t.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune audit log: %w", err)
	}
	return res.RowsAffected()
}
