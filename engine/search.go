package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

type Source int

const (
	SourceNone Source = iota
	SourceOpening
	SourceSearch
	SourceTactical
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceOpening:
		return "opening"
	case SourceSearch:
		return "search"
	case SourceTactical:
		return "tactical"
	case SourceFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Decision is the outcome of a move request. Found is false when no move is
// available; Recovered is set when the fallback replaced the search.
type Decision struct {
	Move      Move
	Found     bool
	Score     int
	Source    Source
	Canceled  bool
	Recovered error
	Stats     SearchStats
}

type Engine struct {
	config    Config
	evaluator *Evaluator
	observer  Observer
}

type Option func(*Engine)

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

func WithEvaluator(evaluator *Evaluator) Option {
	return func(e *Engine) {
		if evaluator != nil {
			e.evaluator = evaluator
		}
	}
}

func New(config Config, opts ...Option) *Engine {
	config = config.WithDefaults()
	e := &Engine{
		config:    config,
		evaluator: NewEvaluator(config.Weights),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Evaluator() *Evaluator {
	return e.evaluator
}

// ChooseMove picks a move for the side to move in src. src is copied and never
// modified. Cancelling ctx stops the search and returns the best move found so far.
func (e *Engine) ChooseMove(ctx context.Context, src Snapshot) Decision {
	start := time.Now()
	board := BoardFrom(src)
	decision := e.chooseMove(ctx, board, src.ToMove())
	decision.Stats.Start = start
	decision.Stats.Elapsed = time.Since(start)
	if e.config.LogSearchStats {
		logSearchStats("choose", decision.Stats, decision)
	}
	return decision
}

func (e *Engine) chooseMove(ctx context.Context, board Board, toMove Player) Decision {
	if board.Size() == 0 || board.CountEmpty() == 0 {
		e.progress("No move available", 0, 0)
		return Decision{Source: SourceNone}
	}
	if err := ValidateBoard(board); err != nil {
		log.Printf("[engine] %v; using fallback selection", err)
		decision := e.FallbackMove(board, toMove)
		decision.Recovered = err
		return decision
	}
	if black, white := board.CountStones(); black+white == 0 {
		e.progress("Opening at center", 0, 0)
		return Decision{Move: board.Center(), Found: true, Source: SourceOpening}
	}
	decision := e.search(ctx, board, toMove)
	if decision.Found || decision.Canceled {
		return decision
	}
	fallback := e.FallbackMove(board, toMove)
	fallback.Stats = decision.Stats
	return fallback
}

type searcher struct {
	ctx       context.Context
	evaluator *Evaluator
	observer  Observer
	player    Player
	radius    int
	stats     SearchStats
}

func (e *Engine) search(ctx context.Context, board Board, toMove Player) Decision {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &searcher{
		ctx:       ctx,
		evaluator: e.evaluator,
		observer:  e.observer,
		player:    toMove,
		radius:    e.config.SearchRadius,
	}
	depth := e.config.MaxDepth
	s.stats.Depth = depth

	source := SourceSearch
	candidates := OrderedMoves(board, s.radius)
	if e.config.TacticalRoot {
		if forced := forcedCandidates(board, toMove, s.radius); len(forced) > 0 {
			candidates = forced
			source = SourceTactical
		}
	}
	s.stats.Candidates = len(candidates)
	decision := Decision{Source: source}
	if len(candidates) == 0 {
		decision.Source = SourceNone
		decision.Stats = s.stats
		return decision
	}
	s.progress(fmt.Sprintf("Found %d candidate moves", len(candidates)), 0, 0)

	best := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt
	stone := CellFromPlayer(toMove)
	for i, move := range candidates {
		if s.canceled() {
			decision.Canceled = true
			break
		}
		child := board.Clone()
		child.Set(move.Row, move.Col, stone)
		s.progress(fmt.Sprintf("Evaluating move %d/%d", i+1, len(candidates)), s.stats.Leaves, 1)
		score := s.minimax(child, depth-1, false, alpha, beta, 1)
		if s.canceled() {
			// the subtree was cut short, its score is not trustworthy
			decision.Canceled = true
			break
		}
		if score > best {
			best = score
			decision.Move = move
			decision.Found = true
			decision.Score = score
			s.progress(fmt.Sprintf("Found better move at (%d, %d)", move.Row, move.Col), s.stats.Leaves, depth)
			alpha = max(alpha, best)
		}
	}
	if decision.Canceled {
		s.progress("Analysis canceled", s.stats.Leaves, depth)
	} else {
		s.progress("Analysis complete", s.stats.Leaves, depth)
	}
	decision.Stats = s.stats
	return decision
}

// minimax scores board from s.player's point of view at every leaf, whoever is to move.
func (s *searcher) minimax(board Board, depth int, maximizing bool, alpha, beta int, ply int) int {
	if depth <= 0 || IsGameOver(board) {
		s.stats.Leaves++
		return s.evaluator.ScoreBoard(board, s.player)
	}
	s.stats.Nodes++

	mover := s.player
	best := math.MinInt
	if !maximizing {
		mover = Opponent(s.player)
		best = math.MaxInt
	}
	stone := CellFromPlayer(mover)
	for _, move := range OrderedMoves(board, s.radius) {
		if s.canceled() {
			break
		}
		child := board.Clone()
		child.Set(move.Row, move.Col, stone)
		score := s.minimax(child, depth-1, !maximizing, alpha, beta, ply+1)
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if beta <= alpha {
			s.stats.Cutoffs++
			s.progress(fmt.Sprintf("Searching depth %d", ply), s.stats.Leaves, ply)
			break
		}
	}
	return best
}

func (s *searcher) canceled() bool {
	return s.ctx.Err() != nil
}

func (s *searcher) progress(status string, evaluated, depth int) {
	if s.observer != nil {
		s.observer.Progress(status, evaluated, depth)
	}
}

func (e *Engine) progress(status string, evaluated, depth int) {
	if e.observer != nil {
		e.observer.Progress(status, evaluated, depth)
	}
}

// forcedCandidates restricts the root to cells completing five for toMove,
// or failing that, to cells where the opponent would complete five.
func forcedCandidates(board Board, toMove Player, radius int) []Move {
	if wins := WinningCells(board, toMove, radius); len(wins) > 0 {
		return wins
	}
	return WinningCells(board, Opponent(toMove), radius)
}
