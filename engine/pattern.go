package engine

type Direction struct {
	DRow int
	DCol int
}

// Directions are the four line axes: horizontal, vertical, diagonal and anti-diagonal.
var Directions = [4]Direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Line is the result of scanning a run through a cell along one axis.
type Line struct {
	Count    int
	OpenEnds int
}

func (l Line) IsOpenThree() bool {
	return l.Count == 3 && l.OpenEnds == 2
}

func (l Line) IsOpenFour() bool {
	return l.Count == 4 && l.OpenEnds == 2
}

// AnalyzeExistingStone scans the run through a stone of player at (row, col).
// The origin counts as one stone whether or not it is actually placed.
func AnalyzeExistingStone(board Board, row, col int, dir Direction, player Player) Line {
	line := scanLine(board, row, col, dir, CellFromPlayer(player))
	line.Count++
	return line
}

// AnalyzeCandidateLine scans the stones of player adjacent to an empty cell.
// The origin itself is not counted.
func AnalyzeCandidateLine(board Board, row, col int, dir Direction, player Player) Line {
	return scanLine(board, row, col, dir, CellFromPlayer(player))
}

func scanLine(board Board, row, col int, dir Direction, target Cell) Line {
	line := Line{}
	for _, sign := range [2]int{1, -1} {
		dr := dir.DRow * sign
		dc := dir.DCol * sign
		r := row + dr
		c := col + dc
		for board.InBounds(r, c) && board.At(r, c) == target {
			line.Count++
			r += dr
			c += dc
		}
		if board.IsEmpty(r, c) {
			line.OpenEnds++
		}
	}
	return line
}

// runLength counts contiguous stones through (row, col) ignoring open ends.
func runLength(board Board, row, col int, dir Direction) int {
	target := board.At(row, col)
	count := 1
	count += countDirection(board, row, col, dir.DRow, dir.DCol, target)
	count += countDirection(board, row, col, -dir.DRow, -dir.DCol, target)
	return count
}

func countDirection(board Board, row, col, dr, dc int, target Cell) int {
	r := row + dr
	c := col + dc
	count := 0
	for board.InBounds(r, c) && board.At(r, c) == target {
		count++
		r += dr
		c += dc
	}
	return count
}
