package engine

import "fmt"

// Move is a 0-indexed (row, column) cell. It is comparable and usable as a map key.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsValid(boardSize int) bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < boardSize && m.Col < boardSize
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

// DistanceToCenter is the Manhattan distance to (size/2, size/2).
func (m Move) DistanceToCenter(boardSize int) int {
	center := boardSize / 2
	return absInt(m.Row-center) + absInt(m.Col-center)
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
