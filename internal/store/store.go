package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/SilentMalachite/gomoku/engine"
)

var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	board_size INTEGER NOT NULL,
	to_move INTEGER NOT NULL,
	board TEXT NOT NULL,
	found INTEGER NOT NULL,
	move_row INTEGER,
	move_col INTEGER,
	score INTEGER NOT NULL,
	source TEXT NOT NULL,
	canceled INTEGER NOT NULL,
	recovered TEXT NOT NULL DEFAULT '',
	depth INTEGER NOT NULL,
	nodes INTEGER NOT NULL,
	leaves INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_created_at ON analyses(created_at);
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL,
	ended_at INTEGER NOT NULL,
	board_size INTEGER NOT NULL,
	status TEXT NOT NULL,
	winner INTEGER NOT NULL,
	termination TEXT NOT NULL,
	moves TEXT NOT NULL
);
`

// Store persists analyses and finished games in SQLite.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	log.Printf("[store] database ready at %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Analysis is one served move suggestion.
type Analysis struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	BoardSize int          `json:"board_size"`
	ToMove    int          `json:"to_move"`
	Board     [][]int      `json:"board"`
	Found     bool         `json:"found"`
	Move      *engine.Move `json:"move,omitempty"`
	Score     int          `json:"score"`
	Source    string       `json:"source"`
	Canceled  bool         `json:"canceled"`
	Recovered string       `json:"recovered,omitempty"`
	Depth     int          `json:"depth"`
	Nodes     int          `json:"nodes"`
	Leaves    int          `json:"leaves"`
	ElapsedMs int64        `json:"elapsed_ms"`
}

// SaveAnalysis inserts a, assigning an ID and timestamp when missing.
func (s *Store) SaveAnalysis(ctx context.Context, a Analysis) (Analysis, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	board, err := json.Marshal(a.Board)
	if err != nil {
		return a, fmt.Errorf("encode board: %w", err)
	}
	var row, col sql.NullInt64
	if a.Move != nil {
		row = sql.NullInt64{Int64: int64(a.Move.Row), Valid: true}
		col = sql.NullInt64{Int64: int64(a.Move.Col), Valid: true}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, created_at, board_size, to_move, board, found, move_row, move_col,
			score, source, canceled, recovered, depth, nodes, leaves, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CreatedAt.UnixMilli(), a.BoardSize, a.ToMove, string(board), a.Found, row, col,
		a.Score, a.Source, a.Canceled, a.Recovered, a.Depth, a.Nodes, a.Leaves, a.ElapsedMs,
	)
	if err != nil {
		return a, fmt.Errorf("insert analysis: %w", err)
	}
	return a, nil
}

const analysisColumns = `id, created_at, board_size, to_move, board, found, move_row, move_col,
	score, source, canceled, recovered, depth, nodes, leaves, elapsed_ms`

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(sc scanner) (Analysis, error) {
	var a Analysis
	var createdAt int64
	var board string
	var row, col sql.NullInt64
	err := sc.Scan(&a.ID, &createdAt, &a.BoardSize, &a.ToMove, &board, &a.Found, &row, &col,
		&a.Score, &a.Source, &a.Canceled, &a.Recovered, &a.Depth, &a.Nodes, &a.Leaves, &a.ElapsedMs)
	if err != nil {
		return a, err
	}
	a.CreatedAt = time.UnixMilli(createdAt)
	if err := json.Unmarshal([]byte(board), &a.Board); err != nil {
		return a, fmt.Errorf("decode board: %w", err)
	}
	if row.Valid && col.Valid {
		a.Move = &engine.Move{Row: int(row.Int64), Col: int(col.Int64)}
	}
	return a, nil
}

func (s *Store) GetAnalysis(ctx context.Context, id string) (Analysis, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+analysisColumns+` FROM analyses WHERE id = ?`, id)
	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, fmt.Errorf("get analysis %s: %w", id, err)
	}
	return a, nil
}

// ListAnalyses returns the most recent analyses first.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+analysisColumns+` FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()
	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GameRecord is a finished game.
type GameRecord struct {
	ID          string        `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	EndedAt     time.Time     `json:"ended_at"`
	BoardSize   int           `json:"board_size"`
	Status      string        `json:"status"`
	Winner      int           `json:"winner"`
	Termination string        `json:"termination"`
	Moves       []engine.Move `json:"moves"`
}

func (s *Store) SaveGame(ctx context.Context, g GameRecord) (GameRecord, error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.EndedAt.IsZero() {
		g.EndedAt = time.Now()
	}
	moves, err := json.Marshal(g.Moves)
	if err != nil {
		return g, fmt.Errorf("encode moves: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, started_at, ended_at, board_size, status, winner, termination, moves)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.StartedAt.UnixMilli(), g.EndedAt.UnixMilli(), g.BoardSize, g.Status, g.Winner, g.Termination, string(moves),
	)
	if err != nil {
		return g, fmt.Errorf("insert game: %w", err)
	}
	return g, nil
}

func (s *Store) ListGames(ctx context.Context, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, board_size, status, winner, termination, moves
		FROM games ORDER BY ended_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()
	out := []GameRecord{}
	for rows.Next() {
		var g GameRecord
		var started, ended int64
		var moves string
		if err := rows.Scan(&g.ID, &started, &ended, &g.BoardSize, &g.Status, &g.Winner, &g.Termination, &moves); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.StartedAt = time.UnixMilli(started)
		g.EndedAt = time.UnixMilli(ended)
		if err := json.Unmarshal([]byte(moves), &g.Moves); err != nil {
			return nil, fmt.Errorf("decode moves: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
