package engine

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

type Player int

const (
	PlayerBlack Player = iota
	PlayerWhite
)

// Snapshot is the read-only view of a position the engine searches from.
type Snapshot interface {
	At(row, col int) Cell
	ToMove() Player
	Size() int
}

// Board is a row-major square grid. The zero value is an empty 0x0 board.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(boardSize int) Board {
	b := Board{}
	b.Reset(boardSize)
	return b
}

// BoardFrom copies the grid of any Snapshot into a Board the caller owns.
func BoardFrom(src Snapshot) Board {
	size := src.Size()
	b := NewBoard(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			b.cells[b.index(row, col)] = src.At(row, col)
		}
	}
	return b
}

func (b *Board) Reset(boardSize int) {
	if boardSize < 0 {
		boardSize = 0
	}
	b.size = boardSize
	b.cells = make([]Cell, boardSize*boardSize)
}

func (b Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b *Board) Set(row, col int, value Cell) {
	b.cells[b.index(row, col)] = value
}

func (b *Board) Remove(row, col int) {
	b.cells[b.index(row, col)] = CellEmpty
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// CountStones returns the number of black and white stones.
func (b Board) CountStones() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case CellBlack:
			black++
		case CellWhite:
			white++
		}
	}
	return black, white
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Center() Move {
	return Move{Row: b.size / 2, Col: b.size / 2}
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

// Equal reports whether both boards have the same size and occupancy.
func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	out := make([]byte, 0, b.size*(b.size+1))
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			switch b.At(row, col) {
			case CellBlack:
				out = append(out, 'X')
			case CellWhite:
				out = append(out, 'O')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

func (b Board) index(row, col int) int {
	return row*b.size + col
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func (p Player) String() string {
	if p == PlayerBlack {
		return "Black"
	}
	return "White"
}

func CellFromPlayer(player Player) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (Player, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}

func Opponent(player Player) Player {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Position pairs a board with the side to move. It satisfies Snapshot.
type Position struct {
	Board Board
	Next  Player
}

func (p Position) At(row, col int) Cell { return p.Board.At(row, col) }
func (p Position) ToMove() Player       { return p.Next }
func (p Position) Size() int            { return p.Board.Size() }
