// Package storage keeps the leaderboard for finished rounds.
// The database lives in memory: it is shared by every session of one process
// and gone when the process exits. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite leaderboard.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round as recorded on the leaderboard.
type RoundResult struct {
	ID        int64     `json:"id"`
	Player    string    `json:"player"`
	Host      string    `json:"host"` // "tui", "ssh" or "web"
	Score     int       `json:"score"`
	Catches   int       `json:"catches"`
	Penalties int       `json:"penalties"`
	Dropped   int       `json:"dropped"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats contains aggregated statistics over all recorded rounds.
type Stats struct {
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates an empty in-memory leaderboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			host TEXT NOT NULL,
			score INTEGER NOT NULL,
			catches INTEGER NOT NULL DEFAULT 0,
			penalties INTEGER NOT NULL DEFAULT 0,
			dropped INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	player := strings.TrimSpace(r.Player)
	if player == "" {
		player = "anonymous"
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (player, host, score, catches, penalties, dropped)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		player, r.Host, r.Score, r.Catches, r.Penalties, r.Dropped,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the best N rounds, highest score first.
// Ties go to the earlier round.
func (s *Store) TopRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, host, score, catches, penalties, dropped, created_at
		 FROM rounds
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// PlayerRounds retrieves the most recent rounds played under the given name.
func (s *Store) PlayerRounds(player string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, host, score, catches, penalties, dropped, created_at
		 FROM rounds
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]RoundResult, error) {
	var entries []RoundResult
	for rows.Next() {
		var e RoundResult
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Host, &e.Score, &e.Catches, &e.Penalties, &e.Dropped, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
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
	}
	return time.Time{}
}

// HighScore returns the highest recorded score.
// Returns 0 if no rounds exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GetStats retrieves aggregated statistics over all rounds.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
