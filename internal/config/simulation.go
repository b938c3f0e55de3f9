package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SimulationConfig holds settings for playing random games.
type SimulationConfig struct {
	// Seed seeds the first game; game i uses Seed+i.
	Seed int64

	// Games is the number of games to play.
	Games int

	// Workers is the number of games played in parallel.
	Workers int

	// MaxPlies stops a game that has not ended after this many moves (0 = no limit).
	MaxPlies int

	// StopAfter stops the run once this many games have ended in
	// checkmate (0 = play every game).
	StopAfter int
}

// NewSimulationConfig creates a SimulationConfig with default values.
func NewSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Seed:     1,
		Games:    1,
		Workers:  1,
		MaxPlies: 500,
	}
}

// Validate checks that the simulation configuration is valid.
func (s *SimulationConfig) Validate() error {
	if s.Games < 1 {
		return fmt.Errorf("games (%d) must be at least 1: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	if s.StopAfter < 0 {
		return fmt.Errorf("stop after (%d) must not be negative: %w", s.StopAfter, errors.ErrInvalidConfig)
	}
	return nil
}
