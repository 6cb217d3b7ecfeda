// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a match.
const (
	EndQuit       = "quit"       // A player left the table
	EndDisconnect = "disconnect" // SSH session dropped
	EndSimulated  = "simulated"  // Headless run reached its tick limit
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished match.
type MatchRecord struct {
	ID        string // UUID, assigned by SaveMatch when empty
	Player1   string // Controller ID of the left paddle
	Player2   string // Controller ID of the right paddle
	Score1    int
	Score2    int
	Ticks     uint64
	Duration  int    // Duration in seconds
	EndReason string // One of the End* constants
	CreatedAt time.Time
}

// Winner returns 1 or 2 for the player with more points, 0 for a draw.
func (m MatchRecord) Winner() int {
	switch {
	case m.Score1 > m.Score2:
		return 1
	case m.Score2 > m.Score1:
		return 2
	default:
		return 0
	}
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at DESC);
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

// SaveMatch records a finished match and returns its ID.
// A new UUID is generated when m.ID is empty.
func (s *Store) SaveMatch(m MatchRecord) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (id, player1, player2, score1, score2, ticks, duration_secs, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.Player1,
		m.Player2,
		m.Score1,
		m.Score2,
		int64(m.Ticks), //#nosec G115 -- tick counts stay far below 2^63
		m.Duration,
		m.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return m.ID, nil
}

// MatchByID retrieves a match by its ID. Returns nil if it does not exist.
func (s *Store) MatchByID(id string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, player1, player2, score1, score2, ticks, duration_secs, end_reason, created_at
		 FROM matches
		 WHERE id = ?`,
		id,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player1, player2, score1, score2, ticks, duration_secs, end_reason, created_at
		 FROM matches
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearMatches deletes the whole match history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all recorded matches.
type Stats struct {
	Matches     int
	Player1Wins int
	Player2Wins int
	Draws       int
	TotalPoints int64
	LongestRun  uint64 // Most ticks in a single match
	LastPlayed  time.Time
}

// Stats retrieves aggregated statistics for the match history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var longest int64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN score1 > score2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN score2 > score1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN score1 = score2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(score1 + score2), 0),
		        COALESCE(MAX(ticks), 0)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.Player1Wins, &stats.Player2Wins, &stats.Draws, &stats.TotalPoints, &longest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.LongestRun = uint64(longest) //#nosec G115 -- ticks are never negative

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchRecord, error) {
	var m MatchRecord
	var ticks int64
	var createdAt any

	if err := sc.Scan(
		&m.ID,
		&m.Player1,
		&m.Player2,
		&m.Score1,
		&m.Score2,
		&ticks,
		&m.Duration,
		&m.EndReason,
		&createdAt,
	); err != nil {
		return MatchRecord{}, err
	}

	m.Ticks = uint64(ticks) //#nosec G115 -- ticks are never negative
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
