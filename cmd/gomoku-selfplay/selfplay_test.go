package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/SilentMalachite/gomoku/engine"
	"github.com/SilentMalachite/gomoku/internal/store"
)

func newTestRunner(t *testing.T, st *store.Store) *runner {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.MaxDepth = 1
	return &runner{
		engine:       engine.New(cfg),
		store:        st,
		logger:       log.New(io.Discard, "", 0),
		rng:          rand.New(rand.NewSource(7)),
		boardSize:    9,
		openingPlies: 3,
	}
}

func TestOpeningIsDistinctNearCenter(t *testing.T) {
	r := newTestRunner(t, nil)
	for i := 0; i < 20; i++ {
		opening := r.opening()
		if len(opening) != 3 {
			t.Fatalf("expected 3 plies, got %d", len(opening))
		}
		seen := map[engine.Move]bool{}
		for _, m := range opening {
			if seen[m] {
				t.Fatalf("duplicate opening move %v", m)
			}
			seen[m] = true
			if m.DistanceToCenter(9) > 2 {
				t.Fatalf("opening move %v too far from center", m)
			}
		}
	}
}

func TestPlayGameFinishes(t *testing.T) {
	r := newTestRunner(t, nil)
	opening := r.opening()
	res, err := r.playGame(context.Background(), opening)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !res.Status.IsOver() {
		t.Fatalf("expected a finished game, got %v (%s)", res.Status, res.Termination)
	}
	for i, m := range opening {
		if res.Moves[i] != m {
			t.Fatalf("opening not preserved at %d: %v vs %v", i, res.Moves[i], m)
		}
	}
}

func TestPlayGameCanceled(t *testing.T) {
	r := newTestRunner(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.playGame(ctx, r.opening())
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Termination != "aborted" || len(res.Moves) != 3 {
		t.Fatalf("expected an aborted game after the opening, got %s with %d moves", res.Termination, len(res.Moves))
	}
}

func TestRunRecordsGames(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "selfplay.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	r := newTestRunner(t, st)

	sum, err := r.run(context.Background(), 2)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Games != 2 || sum.BlackWins+sum.WhiteWins+sum.Draws != 2 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	games, err := st.ListGames(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 stored games, got %d", len(games))
	}
	for _, g := range games {
		if g.BoardSize != 9 || len(g.Moves) < 5 {
			t.Fatalf("unexpected record %+v", g)
		}
	}
}

func TestOpeningIsCappedBySmallBoards(t *testing.T) {
	r := newTestRunner(t, nil)
	r.boardSize = 3
	r.openingPlies = 11
	opening := r.opening()
	if len(opening) != 9 {
		t.Fatalf("expected every cell of a 3x3 board, got %d plies", len(opening))
	}
	seen := map[engine.Move]bool{}
	for _, m := range opening {
		if !m.IsValid(3) || seen[m] {
			t.Fatalf("unexpected opening move %v in %v", m, opening)
		}
		seen[m] = true
	}

	r.openingPlies = -1
	if got := r.opening(); len(got) != 0 {
		t.Fatalf("expected no plies, got %v", got)
	}
}
