package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PerftConfig holds settings for perft node counting.
type PerftConfig struct {
	// Workers is the number of goroutines used for a parallel divide
	Workers int

	// Verify cross-checks counts against the reference generator
	Verify bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate reports settings perft cannot run with.
func (c *PerftConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("perft workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
