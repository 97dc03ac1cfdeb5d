package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// runPerft counts the move tree below fen and writes a perft report. With
// cfg.Perft.Verify set the count is checked against the reference generator;
// a mismatch is returned after the report is written.
func runPerft(ctx context.Context, cfg *config.Config, fen string, depth int, divide bool) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	start := time.Now()
	var (
		entries   []perft.Entry
		nodes     uint64
		reference uint64
		verifyErr error
	)
	switch {
	case divide:
		entries, err = perft.DivideParallel(ctx, board, depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		nodes = perft.Total(entries)
		if cfg.Perft.Verify {
			if reference, err = perft.Reference(fen, depth); err != nil {
				return err
			}
			if reference != nodes {
				verifyErr = fmt.Errorf("depth %d: %d nodes, reference %d: %w",
					depth, nodes, reference, errors.ErrReferenceMismatch)
			}
		}
	case cfg.Perft.Verify:
		var report perft.Report
		report, verifyErr = perft.Verify(ctx, fen, depth, cfg.Perft.Workers)
		if verifyErr != nil && !stderrors.Is(verifyErr, errors.ErrReferenceMismatch) {
			return verifyErr
		}
		nodes, reference = report.Nodes, report.Reference
	default:
		if nodes, err = perft.CountParallel(ctx, board, depth, cfg.Perft.Workers); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	cfg.Logf(config.Verbose, "perft %d: %d nodes in %s", depth, nodes, elapsed)

	w := output.NewWriter(cfg)
	if err := w.WritePerft(output.NewPerftReport(fen, depth, entries, nodes, reference, elapsed)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return verifyErr
}

// runBestMove searches fen for the configured budget and writes a search report.
func runBestMove(cfg *config.Config, fen string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	result := search.NewFromConfig(cfg).Search(board, cfg.Search.TimeBudget)
	if !result.Found {
		cfg.Logf(config.Normal, "no move found for %s", fen)
	}

	w := output.NewWriter(cfg)
	if err := w.WriteSearch(output.NewSearchReport(fen, result)); err != nil {
		return err
	}
	return w.Close()
}
