package game

import (
	"encoding/json"

	"github.com/SilentMalachite/gomoku/engine"
)

type HistoryEntry struct {
	Move      engine.Move   `json:"move"`
	Player    engine.Player `json:"player"`
	ElapsedMs float64       `json:"elapsed_ms"`
	IsEngine  bool          `json:"is_engine"`
	Depth     int           `json:"depth"`
}

// MarshalJSON encodes Player with the board cell codes, 1 for black and 2 for white.
func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	type plain HistoryEntry
	return json.Marshal(struct {
		plain
		Player int `json:"player"`
	}{plain: plain(e), Player: CellCode(engine.CellFromPlayer(e.Player))})
}

type History struct {
	entries []HistoryEntry
}

func (h *History) Clear() {
	h.entries = nil
}

func (h *History) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h History) Size() int {
	return len(h.entries)
}

func (h History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h History) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// Moves returns the played cells in order.
func (h History) Moves() []engine.Move {
	out := make([]engine.Move, len(h.entries))
	for i, entry := range h.entries {
		out[i] = entry.Move
	}
	return out
}
