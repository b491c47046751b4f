// internal/game/errors.go
//
// Domain error taxonomy. All are synchronous, non-retryable, and abort
// only the requested operation; callers match them with errors.Is.

package game

import "errors"

var (
	// ErrGameOver is returned for any guess submitted after the room ended.
	ErrGameOver = errors.New("game already over for this room")

	// ErrPlayerNotFound is returned when the player id is not a room member.
	ErrPlayerNotFound = errors.New("player not in room")

	// ErrSpectatorCannotGuess is returned when a spectator submits a guess.
	ErrSpectatorCannotGuess = errors.New("spectators cannot guess")

	// ErrAlreadyFinished is returned when a won/lost player guesses again.
	ErrAlreadyFinished = errors.New("player already finished")

	// ErrGameNotOver is returned when a reveal is requested for a room
	// that is still in play.
	ErrGameNotOver = errors.New("game not over yet")

	// ErrRoomNotFound is returned for lookups of unregistered room codes.
	ErrRoomNotFound = errors.New("room not found")

	// ErrSpectatorsDisabled is returned for spectate joins when the
	// deployment disables spectators.
	ErrSpectatorsDisabled = errors.New("spectators are disabled on this server")
)
