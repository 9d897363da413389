package game

import "github.com/SilentMalachite/gomoku/engine"

// State is the JSON view of a game. Cells use 0 for empty, 1 for black and 2 for white.
type State struct {
	BoardSize     int           `json:"board_size"`
	Cells         [][]int       `json:"board"`
	ToMove        int           `json:"to_move"`
	Status        string        `json:"status"`
	Winner        int           `json:"winner"`
	WinningLine   []engine.Move `json:"winning_line"`
	LastMove      *engine.Move  `json:"last_move,omitempty"`
	Moves         int           `json:"moves"`
	HumanPlayer   int           `json:"human_player,omitempty"`
	EngineEnabled bool          `json:"engine_enabled"`
}

func CellCode(cell engine.Cell) int {
	return int(cell)
}

func Snapshot(g *Game) State {
	size := g.Size()
	cells := make([][]int, size)
	for row := 0; row < size; row++ {
		cells[row] = make([]int, size)
		for col := 0; col < size; col++ {
			cells[row][col] = CellCode(g.At(row, col))
		}
	}
	state := State{
		BoardSize:   size,
		Cells:       cells,
		ToMove:      CellCode(engine.CellFromPlayer(g.ToMove())),
		Status:      g.Status().String(),
		WinningLine: g.WinningLine(),
		Moves:       g.history.Size(),
	}
	if winner, ok := g.Winner(); ok {
		state.Winner = CellCode(engine.CellFromPlayer(winner))
	}
	if last, ok := g.LastMove(); ok {
		state.LastMove = &last
	}
	return state
}
