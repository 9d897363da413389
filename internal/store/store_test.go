package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/SilentMalachite/gomoku/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "gomoku.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetAnalysis(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	board := [][]int{{0, 1, 0}, {0, 2, 0}, {0, 0, 0}}
	saved, err := s.SaveAnalysis(ctx, Analysis{
		BoardSize: 3,
		ToMove:    1,
		Board:     board,
		Found:     true,
		Move:      &engine.Move{Row: 2, Col: 2},
		Score:     -45,
		Source:    "search",
		Depth:     4,
		Nodes:     12,
		Leaves:    40,
		ElapsedMs: 3,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", saved)
	}
	got, err := s.GetAnalysis(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Move == nil || *got.Move != (engine.Move{Row: 2, Col: 2}) {
		t.Fatalf("unexpected move %v", got.Move)
	}
	if got.Score != -45 || got.Source != "search" || !got.Found || got.Leaves != 40 {
		t.Fatalf("unexpected analysis %+v", got)
	}
	if got.Board[1][1] != 2 || got.Board[0][1] != 1 {
		t.Fatalf("board did not round trip: %v", got.Board)
	}
	if got.CreatedAt.UnixMilli() != saved.CreatedAt.UnixMilli() {
		t.Fatalf("timestamp mismatch %v vs %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestAnalysisWithoutMove(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	saved, err := s.SaveAnalysis(ctx, Analysis{BoardSize: 15, ToMove: 2, Board: [][]int{}, Source: "none"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetAnalysis(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Found || got.Move != nil {
		t.Fatalf("expected no move, got %+v", got)
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetAnalysis(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAnalysesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := s.SaveAnalysis(ctx, Analysis{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Board:     [][]int{},
			Score:     i,
			Source:    "search",
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	got, err := s.ListAnalyses(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 analyses, got %d", len(got))
	}
	if got[0].ID != "e" || got[1].ID != "d" || got[2].ID != "c" {
		t.Fatalf("unexpected order %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSaveAndListGames(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Now().Add(-time.Minute)
	moves := []engine.Move{{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 8, Col: 8}}
	saved, err := s.SaveGame(ctx, GameRecord{
		StartedAt:   start,
		BoardSize:   15,
		Status:      "black_won",
		Winner:      1,
		Termination: "five",
		Moves:       moves,
	})
	if err != nil {
		t.Fatalf("save game: %v", err)
	}
	games, err := s.ListGames(ctx, 10)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 1 || games[0].ID != saved.ID {
		t.Fatalf("unexpected games %+v", games)
	}
	if len(games[0].Moves) != 3 || games[0].Moves[2] != moves[2] {
		t.Fatalf("moves did not round trip: %v", games[0].Moves)
	}
	if games[0].Winner != 1 || games[0].Status != "black_won" {
		t.Fatalf("unexpected result %+v", games[0])
	}
}
