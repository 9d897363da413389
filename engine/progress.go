package engine

import (
	"log"
	"time"
)

// Observer receives synchronous progress updates during a search.
type Observer interface {
	Progress(status string, evaluated, depth int)
}

type ObserverFunc func(status string, evaluated, depth int)

func (f ObserverFunc) Progress(status string, evaluated, depth int) {
	f(status, evaluated, depth)
}

type SearchStats struct {
	Start      time.Time
	Elapsed    time.Duration
	Depth      int
	Nodes      int
	Leaves     int
	Cutoffs    int
	Candidates int
}

func logSearchStats(tag string, stats SearchStats, decision Decision) {
	avgBranch := 0.0
	if stats.Nodes > 0 {
		avgBranch = float64(stats.Leaves+stats.Nodes-1) / float64(stats.Nodes)
	}
	log.Printf("[engine:%s] t=%dms depth=%d nodes=%d leaves=%d cutoffs=%d root=%d avg_branch=%.2f source=%s move=%v score=%d",
		tag,
		stats.Elapsed.Milliseconds(),
		stats.Depth,
		stats.Nodes,
		stats.Leaves,
		stats.Cutoffs,
		stats.Candidates,
		avgBranch,
		decision.Source,
		decision.Move,
		decision.Score,
	)
}
