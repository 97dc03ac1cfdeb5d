package perft

import (
	"context"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Report pairs our perft count with the reference generator's.
type Report struct {
	FEN       string
	Depth     int
	Nodes     uint64
	Reference uint64
}

// Reference counts the same tree with dragontoothmg, an independent
// bitboard move generator. It implements en passant and under-promotion,
// so its counts only agree with ours on trees where neither can occur.
func Reference(fen string, depth int) (uint64, error) {
	if _, err := engine.NewBoardFromFEN(fen); err != nil {
		return 0, err
	}
	board := dragontoothmg.ParseFen(completeFEN(fen))
	return referenceCount(&board, depth), nil
}

func referenceCount(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		unapply := board.Apply(move)
		nodes += referenceCount(board, depth-1)
		unapply()
	}
	return nodes
}

// completeFEN fills in omitted trailing FEN fields with their defaults.
func completeFEN(fen string) string {
	fields := strings.Fields(fen)
	defaults := []string{"", "w", "-", "-", "0", "1"}
	for len(fields) < len(defaults) {
		fields = append(fields, defaults[len(fields)])
	}
	return strings.Join(fields, " ")
}

// Verify computes our count and the reference count concurrently and
// returns ErrReferenceMismatch if they differ.
func Verify(ctx context.Context, fen string, depth, workers int) (Report, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return Report{}, err
	}
	report := Report{FEN: fen, Depth: depth}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := CountParallel(ctx, board, depth, workers)
		report.Nodes = n
		return err
	})
	g.Go(func() error {
		n, err := Reference(fen, depth)
		report.Reference = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	if report.Nodes != report.Reference {
		return report, fmt.Errorf("depth %d: %d nodes, reference %d: %w",
			depth, report.Nodes, report.Reference, errors.ErrReferenceMismatch)
	}
	return report, nil
}
