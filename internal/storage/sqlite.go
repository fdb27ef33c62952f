// Package storage provides SQLite-based persistence for the run log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID              int64
	GameID          string
	EndReason       string // "hazard", "quit" or "host"
	Frames          int64
	BricksDestroyed int
	BricksTotal     int
	Duration        time.Duration // Sum of step durations, stored in milliseconds
	CreatedAt       time.Time
}

// RunStats aggregates the run log for one game.
type RunStats struct {
	Runs          int
	Hazard        int // Runs ended by the lava strip
	Quit          int // Runs ended by the quit key
	Host          int // Runs closed by the host
	BestDestroyed int
	TotalFrames   int64
	TotalDuration time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			end_reason TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			bricks_destroyed INTEGER NOT NULL DEFAULT 0,
			bricks_total INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, end_reason, frames, bricks_destroyed, bricks_total, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.GameID,
		run.EndReason,
		run.Frames,
		run.BricksDestroyed,
		run.BricksTotal,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs for the given game, newest first.
// An empty gameID returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, end_reason, frames, bricks_destroyed, bricks_total, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.EndReason, &r.Frames,
			&r.BricksDestroyed, &r.BricksTotal, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunStats aggregates all runs of the given game.
// Returns zero stats if no runs exist.
func (s *Store) RunStats(gameID string) (RunStats, error) {
	var (
		stats                RunStats
		hazard, quit, host   sql.NullInt64
		best, frames, millis sql.NullInt64
	)

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(CASE WHEN end_reason = 'hazard' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN end_reason = 'quit' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN end_reason = 'host' THEN 1 ELSE 0 END),
		        MAX(bricks_destroyed),
		        SUM(frames),
		        SUM(duration_ms)
		 FROM runs
		 WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &hazard, &quit, &host, &best, &frames, &millis)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot query run stats: %w", err)
	}

	stats.Hazard = int(hazard.Int64)
	stats.Quit = int(quit.Int64)
	stats.Host = int(host.Int64)
	stats.BestDestroyed = int(best.Int64)
	stats.TotalFrames = frames.Int64
	stats.TotalDuration = time.Duration(millis.Int64) * time.Millisecond

	return stats, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
