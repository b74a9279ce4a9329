package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultListLimit bounds List when the caller passes a non-positive limit.
const DefaultListLimit = 20

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// connectionPragmas is appended to the database path as modernc.org/sqlite
// DSN parameters.
const connectionPragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// timestampLayout is fixed-width (times are stored in UTC) so created_at sorts
// as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const entryColumns = "id, run_id, input_path, template_path, output_path, title, status, groups_count, slides_count, bytes_written, duration_ms, error_kind, error_message, created_at"

// Store persists conversion history in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or connects to the history database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	db, err := sql.Open("sqlite", path+connectionPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends an entry and returns it with its assigned ID.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.InputPath) == "" {
		return Entry{}, errors.New("history entry requires an input path")
	}
	if entry.Status == "" {
		entry.Status = StatusSucceeded
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx,
			`INSERT INTO conversions (
                run_id, input_path, template_path, output_path, title, status,
                groups_count, slides_count, bytes_written, duration_ms,
                error_kind, error_message, created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.RunID,
			entry.InputPath,
			nullableString(entry.TemplatePath),
			nullableString(entry.OutputPath),
			nullableString(entry.Title),
			string(entry.Status),
			entry.Groups,
			entry.Slides,
			entry.Bytes,
			entry.Duration.Milliseconds(),
			nullableString(entry.ErrorKind),
			nullableString(entry.ErrorMessage),
			entry.CreatedAt.Format(timestampLayout),
		)
		return execErr
	})
	if err != nil {
		return Entry{}, fmt.Errorf("insert conversion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id
	entry.Duration = entry.Duration.Truncate(time.Millisecond)
	return entry, nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM conversions ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return entries, nil
}

// LastForOutput returns the latest successful conversion that wrote path.
func (s *Store) LastForOutput(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM conversions WHERE output_path = ? AND status = ?
         ORDER BY created_at DESC, id DESC LIMIT 1`, path, string(StatusSucceeded))
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last conversion for output: %w", err)
	}
	return &entry, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry        Entry
		templatePath sql.NullString
		outputPath   sql.NullString
		title        sql.NullString
		status       string
		durationMS   int64
		errorKind    sql.NullString
		errorMessage sql.NullString
		createdRaw   string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.RunID,
		&entry.InputPath,
		&templatePath,
		&outputPath,
		&title,
		&status,
		&entry.Groups,
		&entry.Slides,
		&entry.Bytes,
		&durationMS,
		&errorKind,
		&errorMessage,
		&createdRaw,
	); err != nil {
		return Entry{}, err
	}
	entry.TemplatePath = templatePath.String
	entry.OutputPath = outputPath.String
	entry.Title = title.String
	entry.Status = Status(status)
	entry.Duration = time.Duration(durationMS) * time.Millisecond
	entry.ErrorKind = errorKind.String
	entry.ErrorMessage = errorMessage.String
	if ts, err := time.Parse(timestampLayout, createdRaw); err == nil {
		entry.CreatedAt = ts
	}
	return entry, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
