package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/SilentMalachite/gomoku/engine"
	"github.com/SilentMalachite/gomoku/game"
	"github.com/SilentMalachite/gomoku/internal/store"
)

type runner struct {
	engine       *engine.Engine
	store        *store.Store
	logger       *log.Logger
	rng          *rand.Rand
	boardSize    int
	openingPlies int
	moveTimeout  time.Duration
}

type result struct {
	Status      game.Status
	Termination string
	Moves       []engine.Move
	StartedAt   time.Time
	EndedAt     time.Time
}

type summary struct {
	Games     int
	BlackWins int
	WhiteWins int
	Draws     int
	Aborted   int
}

func buildLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(os.Stdout, "", log.LstdFlags), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags)
	return logger, func() { _ = f.Close() }, nil
}

func (r *runner) logf(format string, args ...any) {
	r.logger.Printf("[selfplay] %s", fmt.Sprintf(format, args...))
}

// opening picks distinct cells near the center for the first plies. It returns
// fewer plies when the board cannot hold that many.
func (r *runner) opening() []engine.Move {
	center := r.boardSize / 2
	offsets := []engine.Move{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: -1, Col: 0}, {Row: 0, Col: -1},
		{Row: 1, Col: 1}, {Row: -1, Col: -1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: 2, Col: 0}, {Row: 0, Col: 2},
	}
	cells := make([]engine.Move, 0, len(offsets))
	for _, off := range offsets {
		move := engine.Move{Row: center + off.Row, Col: center + off.Col}
		if move.IsValid(r.boardSize) {
			cells = append(cells, move)
		}
	}
	plies := max(0, min(r.openingPlies, len(cells)))
	out := make([]engine.Move, 0, plies)
	for _, i := range r.rng.Perm(len(cells))[:plies] {
		out = append(out, cells[i])
	}
	return out
}

func (r *runner) playGame(ctx context.Context, opening []engine.Move) (result, error) {
	g := game.New(r.boardSize)
	res := result{StartedAt: time.Now()}
	for _, move := range opening {
		if err := g.Play(move); err != nil {
			return res, fmt.Errorf("opening move %v: %w", move, err)
		}
	}
	for !g.Status().IsOver() {
		if ctx.Err() != nil {
			res.Termination = "aborted"
			break
		}
		moveCtx, cancel := ctx, context.CancelFunc(func() {})
		if r.moveTimeout > 0 {
			moveCtx, cancel = context.WithTimeout(ctx, r.moveTimeout)
		}
		decision := r.engine.ChooseMove(moveCtx, g)
		cancel()
		if !decision.Found {
			res.Termination = "no_move"
			break
		}
		entry := game.HistoryEntry{
			Move:      decision.Move,
			ElapsedMs: float64(decision.Stats.Elapsed.Milliseconds()),
			IsEngine:  true,
			Depth:     decision.Stats.Depth,
		}
		if err := g.PlayEntry(entry); err != nil {
			return res, fmt.Errorf("engine move %v: %w", decision.Move, err)
		}
	}
	res.Status = g.Status()
	res.Moves = g.History().Moves()
	res.EndedAt = time.Now()
	if res.Termination == "" {
		res.Termination = "five"
		if res.Status == game.StatusDraw {
			res.Termination = "draw"
		}
	}
	return res, nil
}

func (r *runner) run(ctx context.Context, games int) (summary, error) {
	sum := summary{}
	for i := 0; i < games; i++ {
		if ctx.Err() != nil {
			break
		}
		opening := r.opening()
		res, err := r.playGame(ctx, opening)
		if err != nil {
			return sum, err
		}
		sum.Games++
		switch {
		case res.Termination == "aborted" || res.Termination == "no_move":
			sum.Aborted++
		case res.Status == game.StatusBlackWon:
			sum.BlackWins++
		case res.Status == game.StatusWhiteWon:
			sum.WhiteWins++
		case res.Status == game.StatusDraw:
			sum.Draws++
		}
		r.logf("game %d/%d: %s after %d moves (%s)", i+1, games, res.Status, len(res.Moves), res.EndedAt.Sub(res.StartedAt).Round(time.Millisecond))
		if r.store != nil {
			record := store.GameRecord{
				StartedAt:   res.StartedAt,
				EndedAt:     res.EndedAt,
				BoardSize:   r.boardSize,
				Status:      res.Status.String(),
				Winner:      winnerCode(res.Status),
				Termination: res.Termination,
				Moves:       res.Moves,
			}
			if _, err := r.store.SaveGame(context.WithoutCancel(ctx), record); err != nil {
				return sum, err
			}
		}
	}
	return sum, nil
}

func winnerCode(status game.Status) int {
	switch status {
	case game.StatusBlackWon:
		return 1
	case game.StatusWhiteWon:
		return 2
	}
	return 0
}
