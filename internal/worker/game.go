package worker

import (
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// EndReason says why a simulated game stopped.
type EndReason int

const (
	// EndCheckmate means one side was checkmated.
	EndCheckmate EndReason = iota
	// EndNoLegalMoves means the side to move had no legal move without
	// being checkmated.
	EndNoLegalMoves
	// EndPlyLimit means the game reached the configured ply cap.
	EndPlyLimit
	// EndError means the game was aborted by an unexpected error.
	EndError
)

// String returns a short description of the reason.
func (r EndReason) String() string {
	switch r {
	case EndCheckmate:
		return "checkmate"
	case EndNoLegalMoves:
		return "no legal moves"
	case EndPlyLimit:
		return "ply limit"
	case EndError:
		return "error"
	}
	return "unknown"
}

// PlayRandomGame plays one game of random moves from the starting position
// until checkmate, until the side to move has no legal move, or until
// cfg.Simulation.MaxPlies moves have been played. The game's random source
// is seeded with seed; cfg is not modified.
func PlayRandomGame(cfg *config.Config, seed int64) ProcessResult {
	gameCfg := *cfg
	sim := *cfg.Simulation
	sim.Seed = seed
	gameCfg.Simulation = &sim

	b := engine.NewGame(&gameCfg)
	result := ProcessResult{Seed: seed, History: b.History()}
	maxPlies := sim.MaxPlies

	for {
		if b.Outcome().Over() {
			result.Reason = EndCheckmate
			break
		}
		if maxPlies > 0 && result.Plies >= maxPlies {
			result.Reason = EndPlyLimit
			break
		}
		if _, err := b.MakeRandomMove(b.ToMove()); err != nil {
			result.Reason = EndNoLegalMoves
			if !stderrors.Is(err, errors.ErrNoLegalMoves) {
				result.Reason = EndError
				result.Error = err
			}
			break
		}
		result.Plies++
	}

	result.Status = b.CheckGameProgress()
	result.Outcome = b.Outcome()
	return result
}

// Simulate plays cfg.Simulation.Games random games on cfg.Simulation.Workers
// goroutines. Game i is seeded with Seed+i and named after cfg.GameName.
// Results are returned in game order. One line per game is logged at
// verbosity 1.
//
// The run stops early once cfg.Simulation.StopAfter games have ended in
// checkmate, or as soon as a game is aborted by an error. Games still in
// flight at that point are discarded.
func Simulate(cfg *config.Config) ([]ProcessResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sim := cfg.Simulation

	bufferSize := sim.Games
	if bufferSize > 100 {
		bufferSize = 100
	}
	// Boards run concurrently, so their per-move events are not logged.
	gameCfg := *cfg
	gameCfg.Verbosity = 0
	pool := NewPool(func(item WorkItem) ProcessResult {
		r := PlayRandomGame(&gameCfg, item.Seed)
		r.Index = item.Index
		return r
	}, WithWorkers(sim.Workers), WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i := 0; i < sim.Games; i++ {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Index: i, Seed: sim.Seed + int64(i)})
		}
		pool.Close()
	}()

	// results and mates are only touched by this single consumer goroutine.
	results := make([]ProcessResult, 0, sim.Games)
	mates := 0
	for r := range pool.Results() {
		if pool.IsStopped() {
			continue
		}
		r.History.SetName(gameName(cfg.GameName, r.Index))
		logf(cfg, "Game %d (seed %d): %v after %d plies, %v",
			r.Index+1, r.Seed, r.Reason, r.Plies, r.Outcome)
		results = append(results, r)

		switch {
		case r.Reason == EndError:
			logf(cfg, "Stopping: game %d aborted", r.Index+1)
			pool.Stop()
		case r.Reason == EndCheckmate && sim.StopAfter > 0:
			mates++
			if mates >= sim.StopAfter {
				logf(cfg, "Stopping after %d checkmates", mates)
				pool.Stop()
			}
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, nil
}

// logf writes a run summary line at verbosity 1.
func logf(cfg *config.Config, format string, args ...interface{}) {
	if cfg.Verbosity < 1 || cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(cfg.LogFile, format+"\n", args...)
}

// gameName names the game at index for saving.
func gameName(base string, index int) string {
	if base == "" {
		base = "random"
	}
	return fmt.Sprintf("%s-%d", base, index+1)
}
