package engine

func boardWith(size int, black, white []Move) Board {
	board := NewBoard(size)
	for _, m := range black {
		board.Set(m.Row, m.Col, CellBlack)
	}
	for _, m := range white {
		board.Set(m.Row, m.Col, CellWhite)
	}
	return board
}

// fullDrawBoard fills the board without any run longer than two.
func fullDrawBoard(size int) Board {
	board := NewBoard(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if (col/2+row)%2 == 0 {
				board.Set(row, col, CellBlack)
			} else {
				board.Set(row, col, CellWhite)
			}
		}
	}
	return board
}

func moves(coords ...int) []Move {
	out := make([]Move, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, Move{Row: coords[i], Col: coords[i+1]})
	}
	return out
}
