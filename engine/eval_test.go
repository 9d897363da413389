package engine

import "testing"

func TestScorePatternTable(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	expected := map[[2]int]int{
		{5, 0}: 100000, {5, 1}: 100000, {5, 2}: 100000,
		{6, 0}: 100000, {6, 1}: 100000, {6, 2}: 100000,
		{4, 2}: 10000, {4, 1}: 5000, {4, 0}: 0,
		{3, 2}: 1000, {3, 1}: 250, {3, 0}: 0,
		{2, 2}: 100, {2, 1}: 25, {2, 0}: 0,
		{1, 2}: 5, {1, 1}: 0, {1, 0}: 0,
		{0, 2}: 0, {0, 1}: 0, {0, 0}: 0,
	}
	for count := 0; count <= 6; count++ {
		for openEnds := 0; openEnds <= 2; openEnds++ {
			want := expected[[2]int{count, openEnds}]
			if got := ev.ScorePattern(count, openEnds); got != want {
				t.Fatalf("ScorePattern(%d,%d) = %d, want %d", count, openEnds, got, want)
			}
		}
	}
}

func TestEvaluatorUsesInjectedWeights(t *testing.T) {
	weights := DefaultWeights()
	weights.Win = 7
	weights.Four = 40
	ev := NewEvaluator(weights)
	if got := ev.ScorePattern(5, 0); got != 7 {
		t.Fatalf("expected injected win weight 7, got %d", got)
	}
	if got := ev.ScorePattern(4, 1); got != 20 {
		t.Fatalf("expected half of injected four weight, got %d", got)
	}
	if got := NewEvaluator(Weights{}).ScorePattern(4, 2); got != 10000 {
		t.Fatalf("expected zero weights to resolve to defaults, got %d", got)
	}
}

func TestScoreOccupiedCellDoubleOpenThree(t *testing.T) {
	board := boardWith(15, moves(7, 6, 7, 7, 7, 8, 6, 7, 8, 7), nil)
	ev := NewEvaluator(DefaultWeights())
	// two open threes (1000 each), two lone diagonals (5 each), fork bonus 1500
	if got := ev.ScoreOccupiedCell(board, 7, 7, PlayerBlack); got != 3510 {
		t.Fatalf("expected 3510, got %d", got)
	}
}

func TestScoreOccupiedCellDoubleOpenFour(t *testing.T) {
	board := boardWith(15, moves(7, 5, 7, 6, 7, 7, 7, 8, 4, 7, 5, 7, 6, 7), nil)
	ev := NewEvaluator(DefaultWeights())
	// open four horizontally and vertically: 2*10000 + 2*5 + 5000
	if got := ev.ScoreOccupiedCell(board, 7, 7, PlayerBlack); got != 25010 {
		t.Fatalf("expected 25010, got %d", got)
	}
}

func TestCenterControlDecreasesWithDistance(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	cells := moves(7, 7, 7, 8, 7, 9, 8, 9, 9, 9)
	prev := int(^uint(0) >> 1)
	for _, cell := range cells {
		board := boardWith(15, []Move{cell}, nil)
		score := ev.CenterControl(board, PlayerBlack)
		if score >= prev {
			t.Fatalf("expected center control to decrease at %v, got %d after %d", cell, score, prev)
		}
		prev = score
	}
	if prev != 2 {
		t.Fatalf("expected 2 at distance 4, got %d", prev)
	}
	outside := boardWith(15, moves(7, 10), nil)
	if got := ev.CenterControl(outside, PlayerBlack); got > 0 {
		t.Fatalf("expected no bonus outside the radius box, got %d", got)
	}
}

func TestCenterControlIgnoresOpponent(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	board := boardWith(15, nil, moves(7, 7))
	if got := ev.CenterControl(board, PlayerBlack); got != 0 {
		t.Fatalf("expected 0 for black with only white stones, got %d", got)
	}
}

func TestScoreBoardAsymmetry(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	board := boardWith(15, moves(7, 7), nil)
	if got := ev.ScoreBoard(board, PlayerBlack); got != 30 {
		t.Fatalf("expected 30 for the owner, got %d", got)
	}
	// -(20*2) - 10/2
	if got := ev.ScoreBoard(board, PlayerWhite); got != -45 {
		t.Fatalf("expected -45 for the opponent, got %d", got)
	}
}

func TestScoreBoardFiveIsWin(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	board := boardWith(15, moves(0, 0, 0, 1, 0, 2, 0, 3, 0, 4), nil)
	if got := ev.ScoreBoard(board, PlayerBlack); got < 5*100000 {
		t.Fatalf("expected at least five win scores, got %d", got)
	}
	if got := ev.ScoreBoard(board, PlayerWhite); got > -10*100000 {
		t.Fatalf("expected doubled penalty for the opponent five, got %d", got)
	}
}

func TestScoreCandidateCell(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	empty := NewBoard(15)
	if got := ev.ScoreCandidateCell(empty, 7, 7, PlayerBlack); got != 10 {
		t.Fatalf("expected only the center bonus on an empty board, got %d", got)
	}
	if got := ev.ScoreCandidateCell(empty, 3, 3, PlayerBlack); got != 0 {
		t.Fatalf("expected 0 off center on an empty board, got %d", got)
	}

	board := boardWith(15, moves(7, 7, 7, 8, 7, 9, 7, 10), nil)
	// white to move: blocking the open four is weighted by the defense multiplier
	if got := ev.ScoreCandidateCell(board, 7, 11, PlayerWhite); got != 30000 {
		t.Fatalf("expected 30000 for the blocking cell, got %d", got)
	}
	// black to move: the four around the empty cell is scored as offense
	if got := ev.ScoreCandidateCell(board, 7, 11, PlayerBlack); got != 20000 {
		t.Fatalf("expected 20000 for extending the four, got %d", got)
	}
}

func TestScoreCandidateCellSynergy(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	board := boardWith(15, moves(7, 5, 7, 6, 5, 7, 6, 7), moves(0, 0, 0, 1, 0, 2, 0, 3))
	// two (2,2) lines for black at (7,7), no open threes counted: origin excluded
	got := ev.ScoreCandidateCell(board, 7, 7, PlayerWhite)
	want := (100+100)*3 + 10
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}
