package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordResultUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	results := []Result{
		{PlayerID: "p1", Nickname: "alice", Won: true, RoundsUsed: 4, RoomID: "R1", WasCreator: true},
		{PlayerID: "p1", Nickname: "alice", Won: false, RoundsUsed: 6, RoomID: "R2"},
		{PlayerID: "p1", Nickname: "alicia", Won: true, RoundsUsed: 2, RoomID: "R3"},
	}
	for _, r := range results {
		if err := s.RecordResult(ctx, r); err != nil {
			t.Fatalf("RecordResult(%+v): %v", r, err)
		}
	}

	lb, err := s.TopLeaderboard(ctx, 10)
	if err != nil {
		t.Fatalf("TopLeaderboard: %v", err)
	}
	if len(lb) != 1 {
		t.Fatalf("rows = %d, want 1 (upsert)", len(lb))
	}
	e := lb[0]
	if e.Wins != 2 || e.Losses != 1 {
		t.Errorf("wins/losses = %d/%d, want 2/1", e.Wins, e.Losses)
	}
	if e.Nickname != "alicia" {
		t.Errorf("nickname = %q, want latest", e.Nickname)
	}
	if e.FastestWin == nil || *e.FastestWin != 2 {
		t.Errorf("fastest_win = %v, want 2", e.FastestWin)
	}
}

func TestFastestWinOnlyDecreases(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, rounds := range []int{3, 5} {
		if err := s.RecordResult(ctx, Result{PlayerID: "p1", Nickname: "a", Won: true, RoundsUsed: rounds, RoomID: "R"}); err != nil {
			t.Fatal(err)
		}
	}
	lb, err := s.TopLeaderboard(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if lb[0].FastestWin == nil || *lb[0].FastestWin != 3 {
		t.Errorf("fastest_win = %v, want 3", lb[0].FastestWin)
	}
}

func TestTopLeaderboardOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// p-loser: 0 wins. p-slow: 1 win in 6. p-fast: 1 win in 2. p-top: 2 wins.
	seed := []Result{
		{PlayerID: "p-loser", Nickname: "l", Won: false, RoundsUsed: 6, RoomID: "R"},
		{PlayerID: "p-slow", Nickname: "s", Won: true, RoundsUsed: 6, RoomID: "R"},
		{PlayerID: "p-fast", Nickname: "f", Won: true, RoundsUsed: 2, RoomID: "R"},
		{PlayerID: "p-top", Nickname: "t", Won: true, RoundsUsed: 5, RoomID: "R"},
		{PlayerID: "p-top", Nickname: "t", Won: true, RoundsUsed: 4, RoomID: "R2"},
	}
	for _, r := range seed {
		if err := s.RecordResult(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	lb, err := s.TopLeaderboard(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	var order []string
	for _, e := range lb {
		order = append(order, e.PlayerID)
	}
	want := []string{"p-top", "p-fast", "p-slow", "p-loser"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	// Limit is respected.
	lb, err = s.TopLeaderboard(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(lb) != 2 {
		t.Errorf("limit ignored: %d rows", len(lb))
	}
}
