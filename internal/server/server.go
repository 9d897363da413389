package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/SilentMalachite/gomoku/engine"
	"github.com/SilentMalachite/gomoku/game"
	"github.com/SilentMalachite/gomoku/internal/config"
	"github.com/SilentMalachite/gomoku/internal/store"
)

const maxSearchDepth = 8

// deepSearchTimeout bounds searches deeper than the default depth when no
// explicit timeout is configured.
const deepSearchTimeout = 10 * time.Second

// Server wires the engine, one interactive game, persistence and the progress stream.
type Server struct {
	configs       *config.Store
	store         *store.Store
	hub           *Hub
	controller    *game.Controller
	searchTimeout time.Duration
	pingInterval  time.Duration

	mu          sync.Mutex
	gameStarted time.Time
	gameSaved   bool
}

type Option func(*Server)

func WithStore(st *store.Store) Option {
	return func(s *Server) { s.store = st }
}

func WithSearchTimeout(d time.Duration) Option {
	return func(s *Server) { s.searchTimeout = d }
}

func WithPingInterval(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.pingInterval = d
		}
	}
}

func New(configs *config.Store, opts ...Option) *Server {
	s := &Server{
		configs:      configs,
		hub:          NewHub(),
		pingInterval: wsIdlePingInterval,
		gameStarted:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.controller = game.NewController(configs.Get().BoardSize, gameMover{s: s})
	return s
}

// Run drives the progress hub until ctx is done.
func (s *Server) Run(ctx context.Context) {
	s.hub.Run(ctx.Done())
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/api/config", s.handleGetConfig)
	r.Post("/api/config", s.handleUpdateConfig)
	r.Post("/api/suggest", s.handleSuggest)
	r.Get("/api/analyses", s.handleListAnalyses)
	r.Get("/api/analyses/{id}", s.handleGetAnalysis)
	r.Get("/api/games", s.handleListGames)
	r.Get("/api/game", s.handleGameState)
	r.Post("/api/game/start", s.handleGameStart)
	r.Post("/api/game/move", s.handleGameMove)
	r.Get("/ws/progress", s.serveProgressWS)
	return r
}

// newEngine builds an engine from the live config that reports progress to the hub.
func (s *Server) newEngine(requestID, origin string) *engine.Engine {
	observer := engine.ObserverFunc(func(status string, evaluated, depth int) {
		s.hub.Publish("progress", progressPayload{
			RequestID: requestID,
			Origin:    origin,
			Status:    status,
			Evaluated: evaluated,
			Depth:     depth,
		})
	})
	return engine.New(s.configs.Get(), engine.WithObserver(observer))
}

func (s *Server) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := s.searchTimeout
	if timeout <= 0 && s.configs.Get().MaxDepth > engine.DefaultMaxDepth {
		timeout = deepSearchTimeout
	}
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

type gameMover struct {
	s *Server
}

func (m gameMover) ChooseMove(ctx context.Context, src engine.Snapshot) engine.Decision {
	ctx, cancel := m.s.searchContext(ctx)
	defer cancel()
	return m.s.newEngine(uuid.New().String(), "game").ChooseMove(ctx, src)
}

func (m gameMover) FallbackMove(board engine.Board, toMove engine.Player) engine.Decision {
	return engine.New(m.s.configs.Get()).FallbackMove(board, toMove)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.configs.Get())
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	next := s.configs.Get()
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if next.MaxDepth > maxSearchDepth {
		writeError(w, http.StatusBadRequest, "max_depth too large")
		return
	}
	if next.BoardSize > maxBoardSize {
		writeError(w, http.StatusBadRequest, "board_size too large")
		return
	}
	updated := s.configs.Update(next)
	s.hub.Publish("config", updated)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	pos, err := req.position()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := uuid.New().String()
	ctx, cancel := s.searchContext(r.Context())
	defer cancel()
	decision := s.newEngine(id, "suggest").ChooseMove(ctx, pos)
	resp := decisionToDTO(id, decision)

	if s.store != nil {
		analysis := store.Analysis{
			ID:        id,
			CreatedAt: decision.Stats.Start,
			BoardSize: pos.Size(),
			ToMove:    req.ToMove,
			Board:     req.Board,
			Found:     resp.Found,
			Move:      resp.Move,
			Score:     resp.Score,
			Source:    resp.Source,
			Canceled:  resp.Canceled,
			Recovered: resp.Recovered,
			Depth:     resp.Stats.Depth,
			Nodes:     resp.Stats.Nodes,
			Leaves:    resp.Stats.Leaves,
			ElapsedMs: resp.Stats.ElapsedMs,
		}
		// the client may be gone already, the record is still kept
		if _, err := s.store.SaveAnalysis(context.WithoutCancel(r.Context()), analysis); err != nil {
			log.Printf("[store] save analysis %s: %v", id, err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage disabled")
		return
	}
	items, err := s.store.ListAnalyses(r.Context(), limitParam(r))
	if err != nil {
		log.Printf("[store] %v", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage disabled")
		return
	}
	item, err := s.store.GetAnalysis(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		log.Printf("[store] %v", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "storage disabled")
		return
	}
	items, err := s.store.ListGames(r.Context(), limitParam(r))
	if err != nil {
		log.Printf("[store] %v", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.gameStatus(s.controller.State()))
}

func (s *Server) handleGameStart(w http.ResponseWriter, r *http.Request) {
	var req gameStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.BoardSize == 0 {
		req.BoardSize = s.configs.Get().BoardSize
	}
	if req.BoardSize < 5 || req.BoardSize > maxBoardSize {
		writeError(w, http.StatusBadRequest, "board_size out of range")
		return
	}
	if req.HumanPlayer == 0 {
		req.HumanPlayer = 1
	}
	human, err := intToPlayer(req.HumanPlayer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	withEngine := req.Mode != "human_vs_human"

	s.mu.Lock()
	s.gameStarted = time.Now()
	s.gameSaved = false
	s.mu.Unlock()

	state := s.controller.Start(r.Context(), req.BoardSize, human, withEngine)
	s.hub.Publish("game", state)
	writeJSON(w, http.StatusOK, s.gameStatus(state))
}

func (s *Server) handleGameMove(w http.ResponseWriter, r *http.Request) {
	var req gameMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	state, err := s.controller.ApplyHumanMove(r.Context(), engine.Move{Row: req.Row, Col: req.Col})
	if errors.Is(err, game.ErrNotHumanTurn) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.hub.Publish("game", state)
	s.recordFinishedGame(r.Context(), state)
	writeJSON(w, http.StatusOK, s.gameStatus(state))
}

type gameStatusResponse struct {
	game.State
	History []game.HistoryEntry `json:"history"`
}

func (s *Server) gameStatus(state game.State) gameStatusResponse {
	return gameStatusResponse{State: state, History: s.controller.History().All()}
}

// recordFinishedGame stores the current game once, when it has just ended.
func (s *Server) recordFinishedGame(ctx context.Context, state game.State) {
	if s.store == nil || state.Status == game.StatusRunning.String() {
		return
	}
	s.mu.Lock()
	if s.gameSaved {
		s.mu.Unlock()
		return
	}
	s.gameSaved = true
	started := s.gameStarted
	s.mu.Unlock()

	termination := "five"
	if state.Status == game.StatusDraw.String() {
		termination = "draw"
	}
	record := store.GameRecord{
		StartedAt:   started,
		BoardSize:   state.BoardSize,
		Status:      state.Status,
		Winner:      state.Winner,
		Termination: termination,
		Moves:       s.controller.History().Moves(),
	}
	if _, err := s.store.SaveGame(context.WithoutCancel(ctx), record); err != nil {
		log.Printf("[store] save game: %v", err)
	}
}
