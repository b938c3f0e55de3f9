package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithCheckmateRule sets the checkmate test.
func (b *ConfigBuilder) WithCheckmateRule(rule CheckmateRule) *ConfigBuilder {
	b.cfg.Rules.Checkmate = rule
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Simulation.Seed = seed
	return b
}

// WithGames sets how many random games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Simulation.Games = n
	return b
}

// WithWorkers sets how many games run in parallel.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Simulation.Workers = n
	return b
}

// WithMaxPlies caps the length of a simulated game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Simulation.MaxPlies = n
	return b
}

// WithStopAfter ends a simulation once n games have ended in checkmate.
func (b *ConfigBuilder) WithStopAfter(n int) *ConfigBuilder {
	b.cfg.Simulation.StopAfter = n
	return b
}

// WithGameName sets the name stamped on saved games.
func (b *ConfigBuilder) WithGameName(name string) *ConfigBuilder {
	b.cfg.GameName = name
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
