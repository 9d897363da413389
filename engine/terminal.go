package engine

const winLength = 5

// IsGameOver reports whether any player has five or more in a row, or the board is full.
func IsGameOver(board Board) bool {
	if _, ok := HasFive(board); ok {
		return true
	}
	return board.CountEmpty() == 0
}

// HasFive returns the owner of the first run of five or more found in row-major order.
func HasFive(board Board) (Player, bool) {
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := board.At(row, col)
			if cell == CellEmpty {
				continue
			}
			for _, dir := range Directions {
				if runLength(board, row, col, dir) >= winLength {
					player, _ := PlayerFromCell(cell)
					return player, true
				}
			}
		}
	}
	return PlayerBlack, false
}

// IsWinningMove reports whether the stone at move belongs to a run of five or more.
func IsWinningMove(board Board, move Move) bool {
	if !move.IsValid(board.Size()) || board.At(move.Row, move.Col) == CellEmpty {
		return false
	}
	for _, dir := range Directions {
		if runLength(board, move.Row, move.Col, dir) >= winLength {
			return true
		}
	}
	return false
}

// WinningCells returns the empty cells where player would complete five, ordered by
// distance to the center.
func WinningCells(board Board, player Player, radius int) []Move {
	if board.Size() == 0 || board.CountEmpty() == 0 {
		return nil
	}
	out := []Move{}
	for _, move := range RelevantMoves(board, radius) {
		if !board.IsEmpty(move.Row, move.Col) {
			continue
		}
		for _, dir := range Directions {
			if AnalyzeCandidateLine(board, move.Row, move.Col, dir, player).Count+1 >= winLength {
				out = append(out, move)
				break
			}
		}
	}
	sortByCenterDistance(out, board.Size())
	return out
}
