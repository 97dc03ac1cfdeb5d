// Package config provides configuration for the chess engine and its tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // game results and summaries
	Verbose = 2 // per-iteration search progress
)

// OutputFormat selects how reports are written to OutputFile.
type OutputFormat int

const (
	TextFormat OutputFormat = iota
	JSONFormat
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// Search settings for the automated opponent
	Search *SearchConfig

	// Perft settings for move-generation checks
	Perft *PerftConfig

	// Verbosity controls how much is written to LogFile
	Verbosity int

	// Format of reports written to OutputFile
	Format OutputFormat

	// Wrap text move lists at this many columns
	MaxLineLength int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:        NewSearchConfig(),
		Perft:         NewPerftConfig(),
		Verbosity:     Normal,
		Format:        TextFormat,
		MaxLineLength: 75,
		OutputFile:    os.Stdout,
		LogFile:       os.Stderr,
	}
}

// Validate checks every section and returns the first problem found,
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Search == nil || c.Perft == nil {
		return fmt.Errorf("missing section: %w", errors.ErrInvalidConfig)
	}
	if c.Verbosity < Quiet {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.MaxLineLength < 1 {
		return fmt.Errorf("line length %d: %w", c.MaxLineLength, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// Logf writes a line to LogFile when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
