package game

import "github.com/SilentMalachite/gomoku/engine"

type Status int

const (
	StatusRunning Status = iota
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func (s Status) IsOver() bool {
	return s != StatusRunning
}

const winLength = 5

// Game is a single game of freestyle gomoku. Black moves first.
// It satisfies engine.Snapshot. Game is not safe for concurrent use.
type Game struct {
	board       engine.Board
	toMove      engine.Player
	status      Status
	hasLastMove bool
	lastMove    engine.Move
	winningLine []engine.Move
	history     History
}

func New(boardSize int) *Game {
	g := &Game{}
	g.Reset(boardSize)
	return g
}

func (g *Game) Reset(boardSize int) {
	if boardSize <= 0 {
		boardSize = engine.DefaultBoardSize
	}
	g.board = engine.NewBoard(boardSize)
	g.toMove = engine.PlayerBlack
	g.status = StatusRunning
	g.hasLastMove = false
	g.lastMove = engine.Move{Row: -1, Col: -1}
	g.winningLine = nil
	g.history.Clear()
}

func (g *Game) At(row, col int) engine.Cell { return g.board.At(row, col) }
func (g *Game) ToMove() engine.Player       { return g.toMove }
func (g *Game) Size() int                   { return g.board.Size() }

// Board returns a copy of the current grid.
func (g *Game) Board() engine.Board {
	return g.board.Clone()
}

func (g *Game) Status() Status {
	return g.status
}

// Winner reports the winning player once the game ended with five in a row.
func (g *Game) Winner() (engine.Player, bool) {
	switch g.status {
	case StatusBlackWon:
		return engine.PlayerBlack, true
	case StatusWhiteWon:
		return engine.PlayerWhite, true
	}
	return engine.PlayerBlack, false
}

// WinningLine lists the cells of the winning run from one end to the other.
func (g *Game) WinningLine() []engine.Move {
	return append([]engine.Move(nil), g.winningLine...)
}

func (g *Game) LastMove() (engine.Move, bool) {
	return g.lastMove, g.hasLastMove
}

func (g *Game) History() History {
	return History{entries: g.history.All()}
}

func (g *Game) IsEmpty() bool {
	return g.board.CountEmpty() == g.board.Size()*g.board.Size()
}

// Play places a stone for the side to move. On success the turn passes
// unless the move ended the game.
func (g *Game) Play(move engine.Move) error {
	return g.PlayEntry(HistoryEntry{Move: move})
}

// PlayEntry is Play with timing and origin recorded in the history.
func (g *Game) PlayEntry(entry HistoryEntry) error {
	move := entry.Move
	if !move.IsValid(g.board.Size()) {
		return &MoveError{Kind: ErrOutOfBounds, Row: move.Row, Col: move.Col}
	}
	if !g.board.IsEmpty(move.Row, move.Col) {
		return &MoveError{Kind: ErrPositionOccupied, Row: move.Row, Col: move.Col}
	}
	if g.status.IsOver() {
		return &MoveError{Kind: ErrGameOver, Row: move.Row, Col: move.Col}
	}

	player := g.toMove
	g.board.Set(move.Row, move.Col, engine.CellFromPlayer(player))
	g.lastMove = move
	g.hasLastMove = true
	entry.Player = player
	g.history.Push(entry)

	if line := collectLine(g.board, move); len(line) >= winLength {
		g.winningLine = line
		if player == engine.PlayerBlack {
			g.status = StatusBlackWon
		} else {
			g.status = StatusWhiteWon
		}
		return nil
	}
	if g.board.CountEmpty() == 0 {
		g.status = StatusDraw
		return nil
	}
	g.toMove = engine.Opponent(player)
	return nil
}

// collectLine returns the longest run through move, ordered from the
// negative end of its axis to the positive end.
func collectLine(board engine.Board, move engine.Move) []engine.Move {
	target := board.At(move.Row, move.Col)
	var best []engine.Move
	for _, dir := range engine.Directions {
		var back []engine.Move
		r, c := move.Row-dir.DRow, move.Col-dir.DCol
		for board.InBounds(r, c) && board.At(r, c) == target {
			back = append(back, engine.Move{Row: r, Col: c})
			r -= dir.DRow
			c -= dir.DCol
		}
		line := make([]engine.Move, 0, len(back)+5)
		for i := len(back) - 1; i >= 0; i-- {
			line = append(line, back[i])
		}
		line = append(line, move)
		r, c = move.Row+dir.DRow, move.Col+dir.DCol
		for board.InBounds(r, c) && board.At(r, c) == target {
			line = append(line, engine.Move{Row: r, Col: c})
			r += dir.DRow
			c += dir.DCol
		}
		if len(line) >= winLength {
			return line
		}
		if len(line) > len(best) {
			best = line
		}
	}
	return best
}
