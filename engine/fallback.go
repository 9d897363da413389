package engine

import "math"

// FallbackMove picks the best single-ply cell by ScoreCandidateCell, scanning
// empty cells nearest the center first. A full board yields no move.
func (e *Engine) FallbackMove(board Board, toMove Player) Decision {
	size := board.Size()
	if size == 0 || board.CountEmpty() == 0 {
		return Decision{Source: SourceNone}
	}
	order := make([]Move, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			order = append(order, Move{Row: row, Col: col})
		}
	}
	sortByCenterDistance(order, size)

	decision := Decision{Source: SourceFallback}
	best := math.MinInt
	for _, move := range order {
		if !board.IsEmpty(move.Row, move.Col) {
			continue
		}
		score := e.evaluator.ScoreCandidateCell(board, move.Row, move.Col, toMove)
		if score > best {
			best = score
			decision.Move = move
			decision.Score = score
			decision.Found = true
		}
	}
	if !decision.Found {
		decision.Move = board.Center()
		decision.Found = true
	}
	return decision
}
