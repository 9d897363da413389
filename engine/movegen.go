package engine

import "sort"

// RelevantMoves returns every empty cell within a square radius of any stone,
// each exactly once, in row-major discovery order. An empty board yields the center.
func RelevantMoves(board Board, radius int) []Move {
	size := board.Size()
	if size == 0 {
		return nil
	}
	if radius <= 0 {
		radius = DefaultSearchRadius
	}
	seen := make([]bool, size*size)
	moves := make([]Move, 0, 64)
	hasStones := false
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.At(row, col) == CellEmpty {
				continue
			}
			hasStones = true
			for dr := -radius; dr <= radius; dr++ {
				for dc := -radius; dc <= radius; dc++ {
					nr := row + dr
					nc := col + dc
					if !board.IsEmpty(nr, nc) {
						continue
					}
					idx := board.index(nr, nc)
					if seen[idx] {
						continue
					}
					seen[idx] = true
					moves = append(moves, Move{Row: nr, Col: nc})
				}
			}
		}
	}
	if !hasStones {
		return []Move{board.Center()}
	}
	return moves
}

// OrderedMoves is RelevantMoves sorted by ascending distance to the center.
// Ties keep discovery order.
func OrderedMoves(board Board, radius int) []Move {
	moves := RelevantMoves(board, radius)
	sortByCenterDistance(moves, board.Size())
	return moves
}

func sortByCenterDistance(moves []Move, size int) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].DistanceToCenter(size) < moves[j].DistanceToCenter(size)
	})
}
