package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/SilentMalachite/gomoku/engine"
)

var ErrNotHumanTurn = errors.New("not human turn")

// Mover chooses a move for the side to move in a snapshot. FallbackMove answers
// without searching and is used when a search is canceled before finding a move.
type Mover interface {
	ChooseMove(ctx context.Context, src engine.Snapshot) engine.Decision
	FallbackMove(board engine.Board, toMove engine.Player) engine.Decision
}

// Controller serializes access to one game between a human and the engine.
type Controller struct {
	mu            sync.Mutex
	game          *Game
	mover         Mover
	human         engine.Player
	engineEnabled bool
	turnStart     time.Time
}

func NewController(boardSize int, mover Mover) *Controller {
	return &Controller{
		game:          New(boardSize),
		mover:         mover,
		human:         engine.PlayerBlack,
		engineEnabled: mover != nil,
		turnStart:     time.Now(),
	}
}

// Start resets the game. When the engine owns black it plays the first stone.
func (c *Controller) Start(ctx context.Context, boardSize int, human engine.Player, engineEnabled bool) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.game.Reset(boardSize)
	c.human = human
	c.engineEnabled = engineEnabled && c.mover != nil
	c.turnStart = time.Now()
	log.Printf("[game] new %dx%d game, human plays %s, engine=%v", c.game.Size(), c.game.Size(), human, c.engineEnabled)
	if c.engineTurn() {
		c.playEngine(ctx)
	}
	return c.stateLocked()
}

// ApplyHumanMove plays move for the human and lets the engine answer while
// the game is still running.
func (c *Controller) ApplyHumanMove(ctx context.Context, move engine.Move) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engineEnabled && c.game.ToMove() != c.human && !c.game.Status().IsOver() {
		return c.stateLocked(), ErrNotHumanTurn
	}
	entry := HistoryEntry{Move: move, ElapsedMs: c.elapsedMs()}
	if err := c.game.PlayEntry(entry); err != nil {
		return c.stateLocked(), err
	}
	c.turnStart = time.Now()
	if c.engineTurn() {
		c.playEngine(ctx)
	}
	return c.stateLocked(), nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) History() History {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.History()
}

func (c *Controller) LatestHistoryEntry() (HistoryEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.history.Last()
}

func (c *Controller) engineTurn() bool {
	return c.engineEnabled && !c.game.Status().IsOver() && c.game.ToMove() != c.human
}

func (c *Controller) playEngine(ctx context.Context) {
	decision := c.mover.ChooseMove(ctx, c.game)
	if !decision.Found && decision.Canceled {
		log.Printf("[game] engine search canceled before a move was found; using fallback selection")
		decision = c.mover.FallbackMove(c.game.Board(), c.game.ToMove())
	}
	if !decision.Found {
		log.Printf("[game] engine found no move (source=%s)", decision.Source)
		return
	}
	entry := HistoryEntry{
		Move:      decision.Move,
		ElapsedMs: c.elapsedMs(),
		IsEngine:  true,
		Depth:     decision.Stats.Depth,
	}
	if err := c.game.PlayEntry(entry); err != nil {
		log.Printf("[game] engine move %v rejected: %v", decision.Move, err)
		return
	}
	c.turnStart = time.Now()
}

func (c *Controller) elapsedMs() float64 {
	return float64(time.Since(c.turnStart).Milliseconds())
}

func (c *Controller) stateLocked() State {
	state := Snapshot(c.game)
	state.HumanPlayer = CellCode(engine.CellFromPlayer(c.human))
	state.EngineEnabled = c.engineEnabled
	return state
}
