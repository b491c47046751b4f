// internal/store/sqlite.go
//
// SQLite-backed ResultStore.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout,
//     foreign keys), creating the parent directory for relative paths.
//   - Applying the fixed schema at open (idempotent).
//   - Upserting high_scores and appending game_log per result.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
	player_id   TEXT PRIMARY KEY,
	nickname    TEXT NOT NULL,
	wins        INTEGER NOT NULL DEFAULT 0,
	losses      INTEGER NOT NULL DEFAULT 0,
	fastest_win INTEGER
);

CREATE TABLE IF NOT EXISTS game_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	room_id     TEXT NOT NULL,
	player_id   TEXT NOT NULL,
	nickname    TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	rounds_used INTEGER NOT NULL,
	was_creator INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_game_log_room   ON game_log(room_id);
CREATE INDEX IF NOT EXISTS idx_game_log_player ON game_log(player_id);
`

// SQLite implements ResultStore on a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at dsn and applies
// the schema.
func OpenSQLite(dsn string) (*SQLite, error) {
	// Ensure directory exists for ./data/wordle.db, etc.
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// RecordResult upserts the player's aggregate row and appends to the
// game log in one transaction. The nickname is refreshed to the latest
// value; fastest_win only ever decreases.
func (s *SQLite) RecordResult(ctx context.Context, r Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	wins, losses := 0, 1
	var fastest sql.NullInt64
	outcome := "loss"
	if r.Won {
		wins, losses = 1, 0
		fastest = sql.NullInt64{Int64: int64(r.RoundsUsed), Valid: true}
		outcome = "win"
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO high_scores (player_id, nickname, wins, losses, fastest_win)
		VALUES (?,?,?,?,?)
		ON CONFLICT(player_id) DO UPDATE SET
			nickname = excluded.nickname,
			wins     = wins + excluded.wins,
			losses   = losses + excluded.losses,
			fastest_win = CASE
				WHEN excluded.fastest_win IS NOT NULL
				     AND (fastest_win IS NULL OR excluded.fastest_win < fastest_win)
				THEN excluded.fastest_win
				ELSE fastest_win
			END`,
		r.PlayerID, r.Nickname, wins, losses, fastest); err != nil {
		return fmt.Errorf("upsert high_scores: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO game_log (room_id, player_id, nickname, outcome, rounds_used, was_creator)
		VALUES (?,?,?,?,?,?)`,
		r.RoomID, r.PlayerID, r.Nickname, outcome, r.RoundsUsed, r.WasCreator); err != nil {
		return fmt.Errorf("insert game_log: %w", err)
	}

	return tx.Commit()
}

// TopLeaderboard ranks players by wins, then fastest win (nulls last).
func (s *SQLite) TopLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, nickname, wins, losses, fastest_win
		FROM high_scores
		ORDER BY wins DESC, fastest_win IS NULL, fastest_win ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e LeaderboardEntry
		var fastest sql.NullInt64
		if err := rows.Scan(&e.PlayerID, &e.Nickname, &e.Wins, &e.Losses, &fastest); err != nil {
			return nil, err
		}
		if fastest.Valid {
			n := int(fastest.Int64)
			e.FastestWin = &n
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
