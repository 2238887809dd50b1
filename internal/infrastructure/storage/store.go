// Package storage keeps the ledger of finished matches in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

const defaultLimit = 10

// ErrInvalidResult is returned for results that cannot be stored
var ErrInvalidResult = errors.New("storage: invalid match result")

// MatchResult is the summary of one finished match
type MatchResult struct {
	ID         int64
	MatchID    string
	PlayerName string
	Outcome    string
	Score      int
	Ticks      uint64
	CreatedAt  time.Time
}

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// A single connection keeps SQLite writers from tripping over each other.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Store{db: db}, nil
}

// runMigrations applies all pending schema migrations.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished match and returns its row ID.
// A zero CreatedAt is stamped with the current time.
func (s *Store) SaveResult(ctx context.Context, r MatchResult) (int64, error) {
	if r.MatchID == "" || r.Outcome == "" {
		return 0, ErrInvalidResult
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO match_results (match_id, player_name, outcome, score, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.PlayerName, r.Outcome, r.Score, int64(r.Ticks), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestScores returns the highest scoring results, best first.
func (s *Store) BestScores(ctx context.Context, limit int) ([]MatchResult, error) {
	return s.query(ctx,
		`SELECT id, match_id, player_name, outcome, score, ticks, created_at
		 FROM match_results
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`, limit)
}

// RecentResults returns the latest results, newest first.
func (s *Store) RecentResults(ctx context.Context, limit int) ([]MatchResult, error) {
	return s.query(ctx,
		`SELECT id, match_id, player_name, outcome, score, ticks, created_at
		 FROM match_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
}

func (s *Store) query(ctx context.Context, q string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var (
			r       MatchResult
			ticks   int64
			created int64
		)
		if err := rows.Scan(&r.ID, &r.MatchID, &r.PlayerName, &r.Outcome, &r.Score, &ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = time.UnixMilli(created)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}
