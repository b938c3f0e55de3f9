// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Simulation options
	seed      = flag.Int64("seed", 1, "Seed of the first game; game i uses seed+i")
	games     = flag.Int("games", 1, "Number of random games to play")
	workers   = flag.Int("workers", 1, "Number of games played in parallel")
	maxPly    = flag.Int("maxply", 500, "Stop a game after this many plies (0 = no limit)")
	stopAfter = flag.Int("stopafter", 0, "Stop after N games end in checkmate (0 = play all)")
	rule      = flag.String("rule", "full", "Checkmate rule: full, king")
	gameName  = flag.String("name", "", "Base name for saved games")

	// Save and replay options
	saveFile   = flag.String("o", "", "Save the played games to this JSON file")
	saveDir    = flag.String("savedir", "", "Also save each game to <name>.json in this directory")
	sortOrder  = flag.String("sort", "", "Order of saved or replayed games: name, date")
	replayFile = flag.String("replay", "", "Replay the games saved in this JSON file")
	replayGame = flag.String("game", "", "Replay only the game with this name")

	// Display options
	plain     = flag.Bool("plain", false, "Draw boards without colour")
	verbosity = flag.Int("v", 1, "Verbosity: 0 results only, 1 boards and game events, 2 rejected moves")
	quiet     = flag.Bool("s", false, "Silent mode: same as -v 0")
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	r, err := config.ParseCheckmateRule(*rule)
	if err != nil {
		return err
	}
	cfg.Rules.Checkmate = r

	applySimulationFlags(cfg)
	cfg.GameName = *gameName

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applySimulationFlags configures the random game settings.
func applySimulationFlags(cfg *config.Config) {
	cfg.Simulation.Seed = *seed
	cfg.Simulation.Games = *games
	cfg.Simulation.Workers = *workers
	cfg.Simulation.MaxPlies = *maxPly
	cfg.Simulation.StopAfter = *stopAfter
}
