// internal/game/room.go
//
// One Room is one independent game session: a secret answer, a round
// limit, and a set of players racing to solve it.
// Responsibilities:
//   - Idempotent player registration (players and spectators).
//   - Guess submission: validation gates, scoring, round accounting.
//   - The game-over state machine: first all-hit guess wins and ends the
//     room for everyone immediately; a room with no winner ends once every
//     active player has exhausted their rounds.
//   - The public-state projection served to clients.
//
// Concurrency: every mutation and every read of room state goes through
// the room's mutex. Different rooms share nothing and never contend.

package game

import (
	"sync"
	"time"
)

// Room holds the state of a single game session. Construct with NewRoom;
// the zero value is not usable.
type Room struct {
	mu        sync.Mutex
	code      string
	answer    string
	maxRounds int
	players   map[string]*PlayerState
	order     []string // player ids in join order, for stable projections
	createdAt time.Time
	gameOver  bool
	winnerIDs []string
}

// NewRoom creates a room with a fixed answer and round limit. The caller
// (normally the Registry) is responsible for validating both.
func NewRoom(code, answer string, maxRounds int) *Room {
	return &Room{
		code:      code,
		answer:    answer,
		maxRounds: maxRounds,
		players:   make(map[string]*PlayerState),
		createdAt: time.Now(),
	}
}

// Code returns the room's join code.
func (r *Room) Code() string { return r.code }

// MaxRounds returns the per-player guess limit.
func (r *Room) MaxRounds() int { return r.maxRounds }

// GameOver reports whether the room has ended. The flag is monotonic:
// once true it never reverts.
func (r *Room) GameOver() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gameOver
}

// AddPlayer registers a player if the id is absent. Re-joining with an
// already-registered id is a no-op and never resets existing progress.
func (r *Room) AddPlayer(playerID, nickname string, isSpectator, wasCreator bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[playerID]; ok {
		return
	}
	r.players[playerID] = &PlayerState{
		PlayerID:    playerID,
		Nickname:    nickname,
		Guesses:     []GuessFeedback{},
		Status:      StatusPlaying,
		IsSpectator: isSpectator,
		WasCreator:  wasCreator,
	}
	r.order = append(r.order, playerID)
}

// Player returns a snapshot of one player's progress.
func (r *Room) Player(playerID string) (PlayerSummary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[playerID]
	if !ok {
		return PlayerSummary{}, false
	}
	return p.summary(), true
}

// GuessResult is what SubmitGuess hands back to the transport layer.
// Finished lists every player whose status became terminal during this
// submission — the submitter on a win or exhaustion, plus everyone
// force-lost when a win ends the room — so results can be recorded
// exactly once per player.
type GuessResult struct {
	Feedback GuessFeedback
	Status   Status // submitter's status after the guess
	GameOver bool
	Finished []PlayerSummary
}

// SubmitGuess validates, scores, and applies one guess for playerID.
// guess must already be a lowercase word from the allowed list; word
// membership is enforced a layer up.
//
// Failure modes (validation fully precedes mutation — a failed call
// leaves the room untouched):
//   - ErrGameOver            room already ended
//   - ErrPlayerNotFound      unknown player id
//   - ErrSpectatorCannotGuess spectator submission
//   - ErrAlreadyFinished     player already won or lost
//
// State transitions:
//   - All five marks hit → submitter wins, room ends immediately, every
//     other still-playing non-spectator is marked lost. Race-to-solve:
//     remaining rounds of other players are irrelevant.
//   - Otherwise, reaching maxRounds loses for this player only.
//   - If that leaves every non-spectator terminal, the room ends with
//     winnerIDs empty.
func (r *Room) SubmitGuess(playerID, guess string) (GuessResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gameOver {
		return GuessResult{}, ErrGameOver
	}
	p, ok := r.players[playerID]
	if !ok {
		return GuessResult{}, ErrPlayerNotFound
	}
	if p.IsSpectator {
		return GuessResult{}, ErrSpectatorCannotGuess
	}
	if p.Status != StatusPlaying {
		return GuessResult{}, ErrAlreadyFinished
	}

	marks := Score(r.answer, guess)
	fb := GuessFeedback{Guess: guess, Marks: marks}
	p.Guesses = append(p.Guesses, fb)
	p.RoundsUsed++
	p.LastGuessAt = time.Now()

	res := GuessResult{Feedback: fb}

	if allHit(marks) {
		p.Status = StatusWon
		if !contains(r.winnerIDs, playerID) {
			r.winnerIDs = append(r.winnerIDs, playerID)
		}
		r.gameOver = true
		res.Finished = append(res.Finished, p.summary())
		for _, id := range r.order {
			other := r.players[id]
			if id == playerID || other.IsSpectator {
				continue
			}
			if other.Status == StatusPlaying {
				other.Status = StatusLost
				res.Finished = append(res.Finished, other.summary())
			}
		}
		res.Status = p.Status
		res.GameOver = true
		return res, nil
	}

	if p.RoundsUsed >= r.maxRounds {
		p.Status = StatusLost
		res.Finished = append(res.Finished, p.summary())
	}

	// Attrition: the room also ends once no non-spectator is left playing.
	over := true
	active := 0
	for _, other := range r.players {
		if other.IsSpectator {
			continue
		}
		active++
		if !other.Status.Terminal() {
			over = false
		}
	}
	if active > 0 && over {
		r.gameOver = true
	}

	res.Status = p.Status
	res.GameOver = r.gameOver
	return res, nil
}

// RevealAnswer returns the secret answer once the room has ended.
func (r *Room) RevealAnswer() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.gameOver {
		return "", ErrGameNotOver
	}
	return r.answer, nil
}

// PublicPlayer is one player's entry in the public projection.
type PublicPlayer struct {
	PlayerID   string          `json:"player_id"`
	Nickname   string          `json:"nickname"`
	Guesses    []GuessFeedback `json:"guesses"`
	Status     Status          `json:"status"`
	RoundsUsed int             `json:"rounds_used"`
}

// PublicState is the projection of a room served to every participant.
// Spectators never appear in Players; the answer is included only once
// the game is over.
type PublicState struct {
	RoomID       string         `json:"room_id"`
	MaxRounds    int            `json:"max_rounds"`
	Players      []PublicPlayer `json:"players"`
	TotalPlayers int            `json:"total_players"`
	GameOver     bool           `json:"game_over"`
	WinnerIDs    []string       `json:"winner_ids"`
	RevealAnswer bool           `json:"reveal_answer"`
	Answer       string         `json:"answer,omitempty"`
}

// PublicState builds a consistent snapshot under the room lock. Players
// appear in join order so repeated snapshots are stable.
func (r *Room) PublicState() PublicState {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := PublicState{
		RoomID:    r.code,
		MaxRounds: r.maxRounds,
		Players:   []PublicPlayer{},
		WinnerIDs: append([]string{}, r.winnerIDs...),
		GameOver:  r.gameOver,
	}
	for _, id := range r.order {
		p := r.players[id]
		if p.IsSpectator {
			continue
		}
		st.Players = append(st.Players, PublicPlayer{
			PlayerID:   p.PlayerID,
			Nickname:   p.Nickname,
			Guesses:    append([]GuessFeedback{}, p.Guesses...),
			Status:     p.Status,
			RoundsUsed: p.RoundsUsed,
		})
		st.TotalPlayers++
	}
	if r.gameOver {
		st.RevealAnswer = true
		st.Answer = r.answer
	}
	return st
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
