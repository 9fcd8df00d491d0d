package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/plantimetable/calstream/errs"
)

// SQLite stores daily counts in a single table keyed by day.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA busy_timeout=5000;`,
		`CREATE TABLE IF NOT EXISTS daily_counts (
			day TEXT PRIMARY KEY,
			total INTEGER NOT NULL DEFAULT 0,
			updated_utc TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate sqlite db: %w", err)
		}
	}

	return nil
}

// Record adds n to the count of the UTC day containing day.
func (s *SQLite) Record(ctx context.Context, day time.Time, n int64) error {
	if n <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", errs.ErrInvalidRecord, n)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_counts (day, total, updated_utc)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET total=total+excluded.total, updated_utc=excluded.updated_utc
	`, day.UTC().Format(DayLayout), n, now); err != nil {
		return fmt.Errorf("record daily count: %w", err)
	}

	return nil
}

// Daily returns every stored day ordered by day.
func (s *SQLite) Daily(ctx context.Context) ([]DailyCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, total FROM daily_counts ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("query daily counts: %w", err)
	}
	defer rows.Close()

	var counts []DailyCount
	for rows.Next() {
		var (
			dayText string
			count   int64
		)
		if err := rows.Scan(&dayText, &count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}

		day, err := parseDay(dayText)
		if err != nil {
			return nil, fmt.Errorf("%w: stored day %q", errs.ErrInvalidRecord, dayText)
		}
		counts = append(counts, DailyCount{Day: day, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily counts: %w", err)
	}

	return counts, nil
}
