package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SilentMalachite/gomoku/engine"
)

const maxBoardSize = 25

type suggestRequest struct {
	Board  [][]int `json:"board"`
	ToMove int     `json:"to_move"`
}

type statsDTO struct {
	Depth      int   `json:"depth"`
	Nodes      int   `json:"nodes"`
	Leaves     int   `json:"leaves"`
	Cutoffs    int   `json:"cutoffs"`
	Candidates int   `json:"candidates"`
	ElapsedMs  int64 `json:"elapsed_ms"`
}

type decisionResponse struct {
	ID        string       `json:"id"`
	Found     bool         `json:"found"`
	Move      *engine.Move `json:"move"`
	Score     int          `json:"score"`
	Source    string       `json:"source"`
	Canceled  bool         `json:"canceled"`
	Recovered string       `json:"recovered,omitempty"`
	Stats     statsDTO     `json:"stats"`
}

type gameStartRequest struct {
	BoardSize   int    `json:"board_size"`
	HumanPlayer int    `json:"human_player"`
	Mode        string `json:"mode"`
}

type gameMoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func intToCell(value int) (engine.Cell, error) {
	switch value {
	case 0:
		return engine.CellEmpty, nil
	case 1:
		return engine.CellBlack, nil
	case 2:
		return engine.CellWhite, nil
	}
	return engine.CellEmpty, fmt.Errorf("invalid cell value %d", value)
}

func intToPlayer(value int) (engine.Player, error) {
	switch value {
	case 1:
		return engine.PlayerBlack, nil
	case 2:
		return engine.PlayerWhite, nil
	}
	return engine.PlayerBlack, fmt.Errorf("invalid player %d", value)
}

// position converts the request into a snapshot the engine can search.
func (req suggestRequest) position() (engine.Position, error) {
	size := len(req.Board)
	if size == 0 || size > maxBoardSize {
		return engine.Position{}, fmt.Errorf("board size must be between 1 and %d", maxBoardSize)
	}
	toMove, err := intToPlayer(req.ToMove)
	if err != nil {
		return engine.Position{}, err
	}
	board := engine.NewBoard(size)
	for row, cells := range req.Board {
		if len(cells) != size {
			return engine.Position{}, fmt.Errorf("row %d has %d cells, want %d", row, len(cells), size)
		}
		for col, value := range cells {
			cell, err := intToCell(value)
			if err != nil {
				return engine.Position{}, fmt.Errorf("cell (%d, %d): %w", row, col, err)
			}
			board.Set(row, col, cell)
		}
	}
	return engine.Position{Board: board, Next: toMove}, nil
}

func decisionToDTO(id string, decision engine.Decision) decisionResponse {
	resp := decisionResponse{
		ID:       id,
		Found:    decision.Found,
		Score:    decision.Score,
		Source:   decision.Source.String(),
		Canceled: decision.Canceled,
		Stats: statsDTO{
			Depth:      decision.Stats.Depth,
			Nodes:      decision.Stats.Nodes,
			Leaves:     decision.Stats.Leaves,
			Cutoffs:    decision.Stats.Cutoffs,
			Candidates: decision.Stats.Candidates,
			ElapsedMs:  decision.Stats.Elapsed.Milliseconds(),
		},
	}
	if decision.Found {
		move := decision.Move
		resp.Move = &move
	}
	if decision.Recovered != nil {
		resp.Recovered = decision.Recovered.Error()
	}
	return resp
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
