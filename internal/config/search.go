package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// SearchConfig holds settings for the iterative-deepening search.
type SearchConfig struct {
	// TimeBudget is the wall-clock time allowed per engine move
	TimeBudget time.Duration

	// BaseDepth is the first iteration's depth in plies
	BaseDepth int

	// MaxExtraDepth is how many iterations beyond BaseDepth may run
	MaxExtraDepth int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		TimeBudget:    3 * time.Second,
		BaseDepth:     2,
		MaxExtraDepth: 3,
	}
}

// MaxDepth returns the deepest iteration the search may attempt.
func (c *SearchConfig) MaxDepth() int {
	return c.BaseDepth + c.MaxExtraDepth
}

// Validate reports settings the search cannot run with.
func (c *SearchConfig) Validate() error {
	if c.TimeBudget <= 0 {
		return fmt.Errorf("time budget %v: %w", c.TimeBudget, errors.ErrInvalidConfig)
	}
	if c.BaseDepth < 1 {
		return fmt.Errorf("base depth %d: %w", c.BaseDepth, errors.ErrInvalidConfig)
	}
	if c.MaxExtraDepth < 0 {
		return fmt.Errorf("max extra depth %d: %w", c.MaxExtraDepth, errors.ErrInvalidConfig)
	}
	return nil
}
