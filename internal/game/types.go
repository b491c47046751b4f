// internal/game/types.go
//
// Core type definitions for the multiplayer room engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Status: per-player lifecycle (playing/won/lost).
//   - GuessFeedback: one scored guess, immutable once appended.
//   - PlayerState: per-player progress, owned by the enclosing Room.

package game

import "time"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or is used up).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Status is a player's lifecycle state within a room.
// Transitions are one-way: playing → won, or playing → lost.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether s is an end state.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// GuessFeedback pairs a submitted guess with its per-letter marks.
// Feedback values are created once per guess and never mutated; a
// player's history is append-only.
type GuessFeedback struct {
	Guess string `json:"guess"`
	Marks []Mark `json:"marks"`
}

// PlayerState tracks one player's progress inside a room. Instances are
// owned exclusively by the Room and mutated only under its lock via
// SubmitGuess; callers only ever receive copies (PlayerSummary, PublicState).
type PlayerState struct {
	PlayerID    string
	Nickname    string
	Guesses     []GuessFeedback
	Status      Status
	RoundsUsed  int
	LastGuessAt time.Time
	IsSpectator bool
	WasCreator  bool
}

// PlayerSummary is a copy of the player fields callers need after a guess
// (result recording, "how am I doing" queries).
type PlayerSummary struct {
	PlayerID    string
	Nickname    string
	Status      Status
	RoundsUsed  int
	IsSpectator bool
	WasCreator  bool
}

func (p *PlayerState) summary() PlayerSummary {
	return PlayerSummary{
		PlayerID:    p.PlayerID,
		Nickname:    p.Nickname,
		Status:      p.Status,
		RoundsUsed:  p.RoundsUsed,
		IsSpectator: p.IsSpectator,
		WasCreator:  p.WasCreator,
	}
}
