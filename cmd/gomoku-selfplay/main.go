package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SilentMalachite/gomoku/engine"
	"github.com/SilentMalachite/gomoku/internal/config"
	"github.com/SilentMalachite/gomoku/internal/store"
)

func main() {
	cfg := config.Load()
	games := flag.Int("games", 4, "number of games to play")
	depth := flag.Int("depth", 2, "search depth for both sides")
	openingPlies := flag.Int("opening-plies", 2, "random plies near the center before the engine plays")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database for finished games, empty to skip")
	seed := flag.Int64("seed", 0, "random seed for openings, 0 uses the clock")
	logPath := flag.String("log", "", "also append log lines to this file")
	moveTimeout := flag.Duration("move-timeout", 0, "per-move search limit, 0 for none")
	flag.Parse()

	logger, closeLog, err := buildLogger(*logPath)
	if err != nil {
		log.Fatalf("[selfplay] failed to initialize logger: %v", err)
	}
	defer closeLog()

	engineCfg := cfg.Engine
	engineCfg.MaxDepth = *depth
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	r := &runner{
		engine:       engine.New(engineCfg),
		logger:       logger,
		rng:          rand.New(rand.NewSource(*seed)),
		boardSize:    engineCfg.WithDefaults().BoardSize,
		openingPlies: *openingPlies,
		moveTimeout:  *moveTimeout,
	}
	if *dbPath != "" {
		st, err := store.Open(*dbPath)
		if err != nil {
			logger.Fatalf("[selfplay] %v", err)
		}
		defer st.Close()
		r.store = st
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logf("starting %d games depth=%d opening_plies=%d seed=%d", *games, engineCfg.MaxDepth, *openingPlies, *seed)
	sum, err := r.run(ctx, *games)
	if err != nil {
		logger.Printf("[selfplay] stopped: %v", err)
	}
	r.logf("done: games=%d black=%d white=%d draws=%d aborted=%d", sum.Games, sum.BlackWins, sum.WhiteWins, sum.Draws, sum.Aborted)
}
