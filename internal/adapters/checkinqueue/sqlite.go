package checkinqueue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"eventattendance/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS offline_checkins (
	seq    INTEGER PRIMARY KEY AUTOINCREMENT,
	record TEXT NOT NULL
)`

// SQLite keeps records in a local database file so they survive restarts.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the queue database at path.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", filepath.ToSlash(path))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLite{db: db, logger: logger}, nil
}

func (q *SQLite) Close() error {
	return q.db.Close()
}

func (q *SQLite) Append(ctx context.Context, rec domain.OfflineCheckIn) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode check-in: %w", err)
	}
	_, err = q.db.ExecContext(ctx, `INSERT INTO offline_checkins (record) VALUES (?)`, string(b))
	return err
}

func (q *SQLite) List(ctx context.Context) ([]domain.OfflineCheckIn, error) {
	out, corrupt, err := q.scan(ctx)
	if err != nil {
		return nil, err
	}
	// Removed so the positions Trim counts match the returned slice.
	for _, seq := range corrupt {
		if _, err := q.db.ExecContext(ctx, `DELETE FROM offline_checkins WHERE seq = ?`, seq); err != nil {
			return nil, fmt.Errorf("remove undecodable check-in: %w", err)
		}
	}
	return out, nil
}

// scan decodes every stored record and returns the sequence numbers of those
// that could not be decoded.
func (q *SQLite) scan(ctx context.Context) ([]domain.OfflineCheckIn, []int64, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT seq, record FROM offline_checkins ORDER BY seq`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var (
		out     []domain.OfflineCheckIn
		corrupt []int64
	)
	for rows.Next() {
		var (
			seq int64
			raw string
		)
		if err := rows.Scan(&seq, &raw); err != nil {
			return nil, nil, err
		}
		var rec domain.OfflineCheckIn
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			q.logger.Error("dropping undecodable check-in", "seq", seq, "err", err)
			corrupt = append(corrupt, seq)
			continue
		}
		out = append(out, rec)
	}
	return out, corrupt, rows.Err()
}

// Trim removes the n oldest records.
func (q *SQLite) Trim(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := q.db.ExecContext(ctx,
		`DELETE FROM offline_checkins WHERE seq IN (SELECT seq FROM offline_checkins ORDER BY seq LIMIT ?)`, n)
	return err
}

func (q *SQLite) Len(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM offline_checkins`).Scan(&n)
	return n, err
}
