package config

import (
	"io"
	"time"
)

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

// WithTimeBudget sets the wall-clock budget per engine move.
func (b *ConfigBuilder) WithTimeBudget(d time.Duration) *ConfigBuilder {
	b.cfg.Search.TimeBudget = d
	return b
}

// WithDepths sets the first search depth and how many deeper iterations may follow.
func (b *ConfigBuilder) WithDepths(base, maxExtra int) *ConfigBuilder {
	b.cfg.Search.BaseDepth = base
	b.cfg.Search.MaxExtraDepth = maxExtra
	return b
}

// WithWorkers sets the perft worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithVerify enables reference cross-checking of perft counts.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithFormat sets the report format.
func (b *ConfigBuilder) WithFormat(f OutputFormat) *ConfigBuilder {
	b.cfg.Format = f
	return b
}
