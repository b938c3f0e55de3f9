// Package config provides configuration for the chess rules engine and its tools.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics written to LogFile:
	// 0=nothing, 1=game events, 2=every rejected move with its reason.
	Verbosity int

	// GameName is the name stamped on saved games.
	GameName string

	// Rule variations
	Rules *RulesConfig

	// Random-game simulation
	Simulation *SimulationConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Rules:      NewRulesConfig(),
		Simulation: NewSimulationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Simulation.Validate()
}
