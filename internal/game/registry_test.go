package game

import (
	"errors"
	"strings"
	"testing"
)

// stubIssuer mints predictable tokens for registry tests.
type stubIssuer struct{}

func (stubIssuer) Issue(roomCode, playerID string) (string, error) {
	return roomCode + ":" + playerID, nil
}

func newTestRegistry(allowSpectators bool) *Registry {
	return NewRegistry(RegistryConfig{
		DefaultMaxRounds: 6,
		AllowSpectators:  allowSpectators,
		PickAnswer:       func() string { return "crane" },
		Tokens:           stubIssuer{},
	})
}

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateRoomCode()
		if len(code) != codeLength {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Fatalf("code %q contains %q outside alphabet", code, c)
			}
		}
		seen[code] = true
	}
	// 100 draws from 32^6 should never collide.
	if len(seen) != 100 {
		t.Errorf("unexpected collisions: %d unique of 100", len(seen))
	}
}

func TestCreateRoom(t *testing.T) {
	tests := []struct {
		name      string
		maxRounds int
		want      int
	}{
		{"in range", 3, 3},
		{"upper bound", 10, 10},
		{"lower bound", 1, 1},
		{"zero falls back to default", 0, 6},
		{"too large falls back to default", 11, 6},
		{"negative falls back to default", -2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rg := newTestRegistry(true)
			room, tok, err := rg.CreateRoom("alice", "p1", tt.maxRounds)
			if err != nil {
				t.Fatalf("CreateRoom: %v", err)
			}
			if room.MaxRounds() != tt.want {
				t.Errorf("max rounds = %d, want %d", room.MaxRounds(), tt.want)
			}
			if tok != room.Code()+":p1" {
				t.Errorf("token = %q", tok)
			}

			// The creator is registered as the first non-spectator player.
			p, ok := room.Player("p1")
			if !ok || p.IsSpectator || !p.WasCreator {
				t.Errorf("creator registration wrong: %+v ok=%v", p, ok)
			}

			// And the room is findable by its code.
			got, err := rg.Room(room.Code())
			if err != nil || got != room {
				t.Errorf("lookup returned %v, %v", got, err)
			}
		})
	}
}

func TestJoinRoom(t *testing.T) {
	rg := newTestRegistry(true)
	room, _, err := rg.CreateRoom("alice", "p1", 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := rg.JoinRoom("NOSUCH", "bob", "p2", false); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("unknown code: got %v, want ErrRoomNotFound", err)
	}

	joined, tok, err := rg.JoinRoom(room.Code(), "bob", "p2", false)
	if err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	if joined != room || tok == "" {
		t.Errorf("join returned %v token=%q", joined, tok)
	}
	if p, ok := room.Player("p2"); !ok || p.WasCreator || p.IsSpectator {
		t.Errorf("joiner registration wrong: %+v", p)
	}

	// Idempotent re-join.
	if _, _, err := rg.JoinRoom(room.Code(), "bob2", "p2", false); err != nil {
		t.Fatalf("re-join: %v", err)
	}
	if p, _ := room.Player("p2"); p.Nickname != "bob" {
		t.Errorf("re-join reset nickname to %q", p.Nickname)
	}

	// Spectator join is accepted when enabled.
	if _, _, err := rg.JoinRoom(room.Code(), "watcher", "p3", true); err != nil {
		t.Fatalf("spectate join: %v", err)
	}
	if p, _ := room.Player("p3"); !p.IsSpectator {
		t.Error("spectator flag not set")
	}
}

func TestJoinRoomSpectatorsDisabled(t *testing.T) {
	rg := newTestRegistry(false)
	room, _, err := rg.CreateRoom("alice", "p1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := rg.JoinRoom(room.Code(), "watcher", "p2", true); !errors.Is(err, ErrSpectatorsDisabled) {
		t.Errorf("got %v, want ErrSpectatorsDisabled", err)
	}
	// Non-spectating joins are unaffected.
	if _, _, err := rg.JoinRoom(room.Code(), "bob", "p3", false); err != nil {
		t.Errorf("player join failed: %v", err)
	}
}
