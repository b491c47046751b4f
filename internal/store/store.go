// internal/store/store.go
//
// Result persistence for finished games: per-player aggregate high
// scores plus an append-only game log. The engine never calls this
// directly; the transport layer records results as players reach
// terminal status.

package store

import "context"

// Result is one player's outcome for one game, recorded exactly once at
// the moment that player's status first becomes won or lost.
type Result struct {
	PlayerID   string
	Nickname   string
	Won        bool
	RoundsUsed int
	RoomID     string
	WasCreator bool
}

// LeaderboardEntry is one row of the ranked leaderboard.
type LeaderboardEntry struct {
	PlayerID   string `json:"player_id"`
	Nickname   string `json:"nickname"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	FastestWin *int   `json:"fastest_win"` // rounds; nil until the first win
}

// ResultStore persists results and serves the leaderboard.
// Implementations may be backed by SQLite (this package), Postgres, etc.
type ResultStore interface {
	// RecordResult updates the player's aggregate and appends a log row.
	RecordResult(ctx context.Context, r Result) error

	// TopLeaderboard returns up to limit players ranked by wins, ties
	// broken by fastest win.
	TopLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
