package engine

import "fmt"

// InvalidBoardStateError reports a stone-count imbalance larger than one.
type InvalidBoardStateError struct {
	Black int
	White int
}

func (e *InvalidBoardStateError) Error() string {
	return fmt.Sprintf("invalid board state: black=%d white=%d", e.Black, e.White)
}

// ValidateBoard checks the near-alternating-turn invariant.
func ValidateBoard(board Board) error {
	black, white := board.CountStones()
	if absInt(black-white) > 1 {
		return &InvalidBoardStateError{Black: black, White: white}
	}
	return nil
}
