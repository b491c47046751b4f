// internal/httpserver/routes_rooms.go
//
// Room/game API handlers: join (create or join a room), guess, state,
// reveal. Guess-word validation and token checks live here, one layer
// above the engine, so the engine only ever sees pre-validated input.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-rooms/internal/game"
	"github.com/robalobadob/wordle-rooms/internal/store"
	"github.com/robalobadob/wordle-rooms/internal/words"
)

const maxNicknameLen = 24

// ------------------------------- join --------------------------------------

type joinReq struct {
	RoomID    string `json:"room_id"`   // join an existing room; empty = create new
	PlayerID  string `json:"player_id"` // client-generated stable id; empty = server assigns
	Nickname  string `json:"nickname"`
	MaxRounds int    `json:"max_rounds"` // only used when creating
	Spectate  bool   `json:"spectate"`
}

type joinRes struct {
	RoomID    string `json:"room_id"`
	PlayerID  string `json:"player_id"`
	Token     string `json:"token"`
	MaxRounds int    `json:"max_rounds"`
	Accepted  bool   `json:"accepted"`
	Role      string `json:"role"` // "player" | "spectator"
	Message   string `json:"message"`
}

// handleJoin creates a room when no code is given, otherwise joins the
// named room. Joining is idempotent per player id.
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	if len(nickname) > maxNicknameLen {
		nickname = nickname[:maxNicknameLen]
	}
	if nickname == "" {
		nickname = "Player"
	}
	playerID := req.PlayerID
	if playerID == "" {
		playerID = uuid.NewString()
	}

	code := strings.ToUpper(strings.TrimSpace(req.RoomID))
	var (
		room *game.Room
		tok  string
		err  error
		role = "player"
		msg  string
	)
	if code == "" {
		room, tok, err = s.registry.CreateRoom(nickname, playerID, req.MaxRounds)
		msg = "Room created. Share the room code with friends!"
	} else {
		room, tok, err = s.registry.JoinRoom(code, nickname, playerID, req.Spectate)
		if req.Spectate {
			role = "spectator"
		}
		msg = "Joined room " + code + "."
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	log.Info().Str("room", room.Code()).Str("player", playerID).Str("role", role).Msg("join")
	_ = json.NewEncoder(w).Encode(joinRes{
		RoomID:    room.Code(),
		PlayerID:  playerID,
		Token:     tok,
		MaxRounds: room.MaxRounds(),
		Accepted:  true,
		Role:      role,
		Message:   msg,
	})
}

// ------------------------------- guess -------------------------------------

type guessReq struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Guess    string `json:"guess"`
	Token    string `json:"token"`
}

type guessRes struct {
	Feedback game.GuessFeedback `json:"feedback"`
	Status   game.Status        `json:"status"`
	GameOver bool               `json:"game_over"`
}

// handleGuess validates token and word, submits the guess to the room,
// and records results for every player the submission finished.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if req.Token == "" || !s.tokens.Verify(req.Token, req.RoomID, req.PlayerID) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return
	}
	room, err := s.registry.Room(req.RoomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if !game.IsValidWord(guess) {
		http.Error(w, `{"error":"guess must be a 5-letter word"}`, http.StatusBadRequest)
		return
	}
	if !words.IsAllowed(guess) {
		http.Error(w, `{"error":"guess is not in allowed words list"}`, http.StatusBadRequest)
		return
	}

	res, err := room.SubmitGuess(req.PlayerID, guess)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Record each player the submission just finished: the submitter on a
	// win or exhaustion, plus everyone force-lost when a win ends the room.
	for _, p := range res.Finished {
		rec := store.Result{
			PlayerID:   p.PlayerID,
			Nickname:   p.Nickname,
			Won:        p.Status == game.StatusWon,
			RoundsUsed: p.RoundsUsed,
			RoomID:     room.Code(),
			WasCreator: p.WasCreator,
		}
		if err := s.results.RecordResult(r.Context(), rec); err != nil {
			log.Warn().Err(err).Str("room", room.Code()).Str("player", p.PlayerID).Msg("record result")
		}
	}
	if res.GameOver {
		log.Info().Str("room", room.Code()).Strs("winners", winnersOf(res.Finished)).Msg("room over")
	}

	_ = json.NewEncoder(w).Encode(guessRes{Feedback: res.Feedback, Status: res.Status, GameOver: res.GameOver})
}

func winnersOf(finished []game.PlayerSummary) []string {
	var ids []string
	for _, p := range finished {
		if p.Status == game.StatusWon {
			ids = append(ids, p.PlayerID)
		}
	}
	return ids
}

// ------------------------------- state -------------------------------------

type stateRes struct {
	game.PublicState
	YourID        string                   `json:"your_id"`
	YouStatus     string                   `json:"you_status"` // playing|won|lost|spectating
	YouRoundsUsed int                      `json:"you_rounds_used"`
	Leaderboard   []store.LeaderboardEntry `json:"leaderboard,omitempty"`
}

// handleState returns the room's public projection for a token-holding
// participant, plus their own view fields and the leaderboard.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	playerID := r.URL.Query().Get("player_id")
	tok := r.URL.Query().Get("token")

	if tok == "" || !s.tokens.Verify(tok, roomID, playerID) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return
	}
	room, err := s.registry.Room(roomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := stateRes{PublicState: room.PublicState(), YourID: playerID, YouStatus: "spectating"}
	if you, ok := room.Player(playerID); ok && !you.IsSpectator {
		out.YouStatus = string(you.Status)
		out.YouRoundsUsed = you.RoundsUsed
	}

	if lb, err := s.results.TopLeaderboard(r.Context(), 10); err == nil {
		out.Leaderboard = lb
	} else {
		log.Warn().Err(err).Msg("leaderboard for state")
	}
	_ = json.NewEncoder(w).Encode(out)
}

// ------------------------------- reveal ------------------------------------

type revealReq struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
}

// handleReveal returns the answer once the room has ended.
func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	var req revealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
		return
	}
	if req.Token == "" || !s.tokens.Verify(req.Token, req.RoomID, req.PlayerID) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return
	}
	room, err := s.registry.Room(req.RoomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	answer, err := room.RevealAnswer()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"answer": answer})
}

// --------------------------- error mapping ---------------------------------

// writeDomainError maps engine sentinels to HTTP responses. Every domain
// error aborts only the requested operation; none are retryable.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrGameNotOver),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrSpectatorCannotGuess),
		errors.Is(err, game.ErrAlreadyFinished),
		errors.Is(err, game.ErrSpectatorsDisabled):
		status = http.StatusBadRequest
	default:
		log.Error().Err(err).Msg("internal error")
		http.Error(w, `{"error":"internal_error"}`, http.StatusInternalServerError)
		return
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, status)
}
