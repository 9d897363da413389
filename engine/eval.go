package engine

// Evaluator scores boards and cells with an injected weights table.
type Evaluator struct {
	weights Weights
}

func NewEvaluator(weights Weights) *Evaluator {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Evaluator{weights: weights}
}

func (e *Evaluator) Weights() Weights {
	return e.weights
}

// ScorePattern maps a run length and open-end count to a score.
func (e *Evaluator) ScorePattern(count, openEnds int) int {
	w := e.weights
	if count >= 5 {
		return w.Win
	}
	switch count {
	case 4:
		switch openEnds {
		case 2:
			return w.Four
		case 1:
			return w.Four / 2
		}
	case 3:
		switch openEnds {
		case 2:
			return w.Three
		case 1:
			return w.Three / 4
		}
	case 2:
		switch openEnds {
		case 2:
			return w.Two
		case 1:
			return w.Two / 4
		}
	case 1:
		if openEnds == 2 {
			return w.OpenEndBonus
		}
	}
	return 0
}

// ScoreOccupiedCell sums the pattern score of a stone over all axes plus
// the double open-three and double open-four bonuses.
func (e *Evaluator) ScoreOccupiedCell(board Board, row, col int, player Player) int {
	var lines [4]Line
	for i, dir := range Directions {
		lines[i] = AnalyzeExistingStone(board, row, col, dir, player)
	}
	return e.scoreLines(lines)
}

func (e *Evaluator) scoreLines(lines [4]Line) int {
	total := 0
	openThrees := 0
	openFours := 0
	for _, line := range lines {
		total += e.ScorePattern(line.Count, line.OpenEnds)
		if line.IsOpenThree() {
			openThrees++
		}
		if line.IsOpenFour() {
			openFours++
		}
	}
	total += e.synergyBonus(openThrees, openFours)
	return total
}

func (e *Evaluator) synergyBonus(openThrees, openFours int) int {
	bonus := 0
	if openThrees >= 2 {
		bonus += e.weights.DoubleThreeBonus
	}
	if openFours >= 2 {
		bonus += e.weights.DoubleFourBonus
	}
	return bonus
}

// ScoreBoard evaluates the whole board from player's point of view.
// Opponent stones weigh OpponentMultiplier times more than own stones and
// only half of the opponent's center control is subtracted.
func (e *Evaluator) ScoreBoard(board Board, player Player) int {
	own := CellFromPlayer(player)
	opponent := Opponent(player)
	score := 0
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := board.At(row, col)
			if cell == CellEmpty {
				continue
			}
			owner, _ := PlayerFromCell(cell)
			cellScore := e.ScoreOccupiedCell(board, row, col, owner)
			if cell == own {
				score += cellScore
			} else {
				score -= cellScore * e.weights.OpponentMultiplier
			}
		}
	}
	score += e.CenterControl(board, player)
	score -= e.CenterControl(board, opponent) / 2
	return score
}

// CenterControl rewards player stones inside the box of CenterControlRadius
// around the center, decreasing with Manhattan distance.
func (e *Evaluator) CenterControl(board Board, player Player) int {
	w := e.weights
	size := board.Size()
	center := size / 2
	radius := w.CenterControlRadius
	target := CellFromPlayer(player)
	score := 0
	for row := center - radius; row <= center+radius; row++ {
		for col := center - radius; col <= center+radius; col++ {
			if !board.InBounds(row, col) || board.At(row, col) != target {
				continue
			}
			distance := absInt(row-center) + absInt(col-center)
			score += w.CenterControlMaxBonus - distance*w.CenterControlDistancePenalty
		}
	}
	return score
}

// ScoreCandidateCell scores an empty cell for toMove without placing a stone:
// offense for toMove, defense against the opponent, and a flat center bonus.
func (e *Evaluator) ScoreCandidateCell(board Board, row, col int, toMove Player) int {
	w := e.weights
	score := e.candidateScore(board, row, col, toMove) * w.OffenseMultiplier
	score += e.candidateScore(board, row, col, Opponent(toMove)) * w.DefenseMultiplier
	center := board.Size() / 2
	if row == center && col == center {
		score += w.CenterBonus
	}
	return score
}

func (e *Evaluator) candidateScore(board Board, row, col int, player Player) int {
	var lines [4]Line
	for i, dir := range Directions {
		lines[i] = AnalyzeCandidateLine(board, row, col, dir, player)
	}
	return e.scoreLines(lines)
}
