package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SilentMalachite/gomoku/engine"
)

// Config is the service configuration read from the environment at startup.
type Config struct {
	Addr          string
	DBPath        string
	SearchTimeout time.Duration
	Engine        engine.Config
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	eng := engine.DefaultConfig()
	eng.BoardSize = getenvInt("GOMOKU_BOARD_SIZE", eng.BoardSize)
	eng.MaxDepth = getenvInt("GOMOKU_MAX_DEPTH", eng.MaxDepth)
	eng.SearchRadius = getenvInt("GOMOKU_SEARCH_RADIUS", eng.SearchRadius)
	eng.TacticalRoot = getenvBool("GOMOKU_TACTICAL_ROOT", eng.TacticalRoot)
	eng.LogSearchStats = getenvBool("GOMOKU_LOG_SEARCH_STATS", eng.LogSearchStats)

	return Config{
		Addr:          getenv("GOMOKU_ADDR", ":8080"),
		DBPath:        getenv("GOMOKU_DB_PATH", "data/gomoku.db"),
		SearchTimeout: time.Duration(getenvInt("GOMOKU_SEARCH_TIMEOUT_MS", 0)) * time.Millisecond,
		Engine:        eng.WithDefaults(),
	}
}

// Store holds the live engine configuration shared by request handlers.
type Store struct {
	mu     sync.RWMutex
	config engine.Config
}

func NewStore(initial engine.Config) *Store {
	return &Store{config: initial.WithDefaults()}
}

func (s *Store) Get() engine.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Store) Update(next engine.Config) engine.Config {
	next = next.WithDefaults()
	s.mu.Lock()
	s.config = next
	s.mu.Unlock()
	return next
}
