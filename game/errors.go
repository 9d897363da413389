package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrPositionOccupied = errors.New("position occupied")
	ErrGameOver         = errors.New("game already over")
)

// MoveError is returned by Play. Kind is one of the sentinel errors above.
type MoveError struct {
	Kind error
	Row  int
	Col  int
}

func (e *MoveError) Error() string {
	switch e.Kind {
	case ErrOutOfBounds:
		return fmt.Sprintf("position (%d, %d) is out of bounds", e.Row, e.Col)
	case ErrPositionOccupied:
		return fmt.Sprintf("position (%d, %d) is already occupied", e.Row, e.Col)
	case ErrGameOver:
		return "the game is already over"
	}
	return fmt.Sprintf("invalid move (%d, %d): %v", e.Row, e.Col, e.Kind)
}

func (e *MoveError) Unwrap() error {
	return e.Kind
}
