// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

var (
	// Mode and position
	mode    = flag.String("mode", "play", "Mode: play, perft, bestmove")
	fenFlag = flag.String("fen", "", "Start position in FEN (default: standard initial position)")

	// Play options
	humanSide = flag.String("human", "white", "Side(s) played from the keyboard: white, black, both, none")
	maxPlies  = flag.Int("maxply", 200, "Stop after N plies when no human is playing (0 = no limit)")

	// Search options
	budget     = flag.Duration("budget", 3*time.Second, "Time budget per engine move")
	baseDepth  = flag.Int("basedepth", 2, "Depth of the first search iteration")
	extraDepth = flag.Int("extradepth", 3, "Maximum number of deeper iterations after the first")

	// Perft options
	perftDepth = flag.Int("depth", 4, "Perft depth in plies")
	divide     = flag.Bool("divide", false, "Print the node count below each root move")
	verify     = flag.Bool("verify", false, "Cross-check perft counts against a reference move generator")
	workers    = flag.Int("workers", runtime.NumCPU(), "Perft worker goroutines")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	lineLength = flag.Int("w", 75, "Maximum line length of move lists")
	jsonOutput = flag.Bool("J", false, "Write reports in JSON format")

	// Logging
	logFile = flag.String("l", "", "Write log output to this file (default: stderr)")
	quiet   = flag.Bool("s", false, "Silent mode: only report errors")
	verbose = flag.Bool("v", false, "Log search progress after every iteration")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// applySearchFlags configures the automated opponent.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.TimeBudget = *budget
	cfg.Search.BaseDepth = *baseDepth
	cfg.Search.MaxExtraDepth = *extraDepth
}

// applyPerftFlags configures perft runs.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.MaxLineLength = *lineLength
	if *jsonOutput {
		cfg.Format = config.JSONFormat
	}
}

// startFEN returns the position selected by -fen.
func startFEN() string {
	if *fenFlag == "" {
		return engine.InitialFEN
	}
	return *fenFlag
}

// parseHumanSide maps the -human value to the colours played from the keyboard,
// indexed by chess.Colour.
func parseHumanSide(s string) ([2]bool, error) {
	var humans [2]bool
	switch strings.ToLower(s) {
	case "white", "w":
		humans[chess.White] = true
	case "black", "b":
		humans[chess.Black] = true
	case "both":
		humans[chess.White] = true
		humans[chess.Black] = true
	case "none":
	default:
		return humans, fmt.Errorf("-human %q: %w", s, errors.ErrInvalidConfig)
	}
	return humans, nil
}
