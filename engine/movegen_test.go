package engine

import "testing"

func TestRelevantMovesEmptyBoardIsCenter(t *testing.T) {
	got := RelevantMoves(NewBoard(15), 2)
	if len(got) != 1 || got[0] != (Move{Row: 7, Col: 7}) {
		t.Fatalf("expected only the center, got %v", got)
	}
}

func TestRelevantMovesAroundCenterStone(t *testing.T) {
	board := boardWith(15, moves(7, 7), nil)
	got := RelevantMoves(board, 2)
	if len(got) != 24 {
		t.Fatalf("expected 24 moves, got %d", len(got))
	}
	for _, m := range got {
		if !m.IsValid(15) || !board.IsEmpty(m.Row, m.Col) {
			t.Fatalf("unexpected move %v", m)
		}
		if absInt(m.Row-7) > 2 || absInt(m.Col-7) > 2 {
			t.Fatalf("move %v outside the radius", m)
		}
	}
}

func TestRelevantMovesClipsAtCorner(t *testing.T) {
	board := boardWith(15, moves(0, 0), nil)
	if got := RelevantMoves(board, 1); len(got) != 3 {
		t.Fatalf("expected 3 moves at radius 1, got %d", len(got))
	}
	if got := RelevantMoves(board, 2); len(got) != 8 {
		t.Fatalf("expected 8 moves at radius 2, got %d", len(got))
	}
}

func TestRelevantMovesDeduplicates(t *testing.T) {
	board := boardWith(15, moves(7, 7), moves(7, 8))
	got := RelevantMoves(board, 2)
	seen := map[Move]bool{}
	for _, m := range got {
		if seen[m] {
			t.Fatalf("duplicate move %v", m)
		}
		seen[m] = true
	}
	if len(got) != 28 {
		t.Fatalf("expected 28 moves, got %d", len(got))
	}
}

func TestRelevantMovesFullBoard(t *testing.T) {
	if got := RelevantMoves(fullDrawBoard(15), 2); len(got) != 0 {
		t.Fatalf("expected no moves on a full board, got %d", len(got))
	}
}

func TestOrderedMovesByCenterDistance(t *testing.T) {
	board := boardWith(15, moves(3, 3, 7, 8), moves(11, 12))
	got := OrderedMoves(board, 2)
	if len(got) == 0 {
		t.Fatalf("expected moves")
	}
	if got[0] != (Move{Row: 7, Col: 7}) {
		t.Fatalf("expected the center first, got %v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DistanceToCenter(15) > got[i].DistanceToCenter(15) {
			t.Fatalf("moves out of order at %d: %v then %v", i, got[i-1], got[i])
		}
	}
}

func TestOrderedMovesTiesKeepRowMajorOrder(t *testing.T) {
	board := boardWith(15, moves(7, 7), nil)
	got := OrderedMoves(board, 1)
	want := moves(6, 7, 7, 6, 7, 8, 8, 7, 6, 6, 6, 8, 8, 6, 8, 8)
	if len(got) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("move %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
