// internal/game/registry.go
//
// Process-wide room registry: the mapping from join code to *Room.
// Responsibilities:
//   - Room code generation (crypto-random, unambiguous alphabet).
//   - Room creation: answer selection, round-limit defaulting, creator
//     registration, membership token issuance.
//   - Join handling, including spectator gating.
//
// The registry has its own RWMutex, separate from any room's lock, so
// unrelated rooms never serialize behind registry contention. Rooms are
// added and never removed; teardown is process exit.

package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
)

// codeAlphabet excludes easily-confused characters (0/O, 1/I).
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// TokenIssuer mints membership proofs for (room code, player id) pairs.
// Implemented by the token package; kept as an interface here so the
// engine stays independent of the signing scheme.
type TokenIssuer interface {
	Issue(roomCode, playerID string) (string, error)
}

// RegistryConfig carries the knobs the registry needs at construction.
type RegistryConfig struct {
	DefaultMaxRounds int           // used when a request omits or exceeds the 1–10 range
	AllowSpectators  bool          // reject spectate joins when false
	PickAnswer       func() string // answer source, normally words.RandomAnswer
	Tokens           TokenIssuer
}

// Registry is the process-wide room service. Construct once at startup
// and hand to request handlers; tests build fresh instances for isolation.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	cfg   RegistryConfig
}

// NewRegistry builds an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	return &Registry{rooms: make(map[string]*Room), cfg: cfg}
}

// GenerateRoomCode produces a 6-character code from the unambiguous
// alphabet using crypto/rand. 32^6 codes make collisions astronomically
// unlikely; CreateRoom still retries defensively.
func GenerateRoomCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}

// CreateRoom allocates a fresh room, registers the creator as its first
// player, and issues a membership token.
//
// maxRounds outside [1,10] (including zero for "unset") silently falls
// back to the configured default — a deliberate leniency, not an error.
func (rg *Registry) CreateRoom(nickname, playerID string, maxRounds int) (*Room, string, error) {
	mr := maxRounds
	if mr < 1 || mr > 10 {
		mr = rg.cfg.DefaultMaxRounds
	}
	answer := rg.cfg.PickAnswer()

	rg.mu.Lock()
	code := GenerateRoomCode()
	for {
		if _, taken := rg.rooms[code]; !taken {
			break
		}
		code = GenerateRoomCode()
	}
	room := NewRoom(code, answer, mr)
	rg.rooms[code] = room
	rg.mu.Unlock()

	room.AddPlayer(playerID, nickname, false, true)

	tok, err := rg.cfg.Tokens.Issue(code, playerID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return room, tok, nil
}

// JoinRoom adds a player (idempotently) to an existing room and issues a
// membership token. Fails with ErrRoomNotFound for unknown codes and
// ErrSpectatorsDisabled when spectating is requested but disabled.
func (rg *Registry) JoinRoom(roomCode, nickname, playerID string, spectate bool) (*Room, string, error) {
	room, err := rg.Room(roomCode)
	if err != nil {
		return nil, "", err
	}
	if spectate && !rg.cfg.AllowSpectators {
		return nil, "", ErrSpectatorsDisabled
	}
	room.AddPlayer(playerID, nickname, spectate, false)

	tok, err := rg.cfg.Tokens.Issue(roomCode, playerID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return room, tok, nil
}

// Room looks up a room by code.
func (rg *Registry) Room(code string) (*Room, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	if r, ok := rg.rooms[code]; ok {
		return r, nil
	}
	return nil, ErrRoomNotFound
}

// Count returns the number of registered rooms.
func (rg *Registry) Count() int {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return len(rg.rooms)
}
