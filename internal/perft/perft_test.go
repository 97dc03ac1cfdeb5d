package perft

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

const castlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	testutil.AssertNoError(t, err)
	return board
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 0", engine.InitialFEN, 0, 1},
		{"initial depth 1", engine.InitialFEN, 1, 20},
		{"initial depth 2", engine.InitialFEN, 2, 400},
		{"initial depth 3", engine.InitialFEN, 3, 8902},
		{"castling depth 1", castlingFEN, 1, 26},
		{"castling depth 2", castlingFEN, 2, 568},
		{"castling depth 3", castlingFEN, 3, 13744},
		{"checkmated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := board.Copy()
			testutil.AssertEqual(t, Count(board, tt.depth), tt.want)
			testutil.AssertBoardEqual(t, board, before)
		})
	}
}

func TestDivide(t *testing.T) {
	board := mustBoard(t, engine.InitialFEN)
	entries := Divide(board, 2)

	testutil.AssertEqual(t, len(entries), 20)
	testutil.AssertEqual(t, Total(entries), uint64(400))
	for _, e := range entries {
		testutil.AssertEqual(t, e.Nodes, uint64(20), "below %s", e.Move)
	}
	testutil.AssertEqual(t, entries[0].Move.Algebraic(), "a2a3")
	testutil.AssertEqual(t, len(Divide(board, 0)), 0)
}

func TestDivideParallel_MatchesDivide(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		board := mustBoard(t, castlingFEN)
		want := Divide(board.Copy(), 3)

		got, err := DivideParallel(context.Background(), board, 3, workers)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, testutil.MoveStrings(entryMoves(got)), testutil.MoveStrings(entryMoves(want)), "workers=%d", workers)
		testutil.AssertEqual(t, nodeCounts(got), nodeCounts(want), "workers=%d", workers)
		testutil.AssertEqual(t, len(board.History), 0)
	}
}

func TestCountParallel(t *testing.T) {
	board := mustBoard(t, engine.InitialFEN)
	for depth, want := range []uint64{1, 20, 400, 8902} {
		got, err := CountParallel(context.Background(), board, depth, 4)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, want, "depth %d", depth)
	}
}

func TestDivideParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := mustBoard(t, engine.InitialFEN)
	_, err := DivideParallel(ctx, board, 3, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestReference(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial", engine.InitialFEN, 3, 8902},
		{"castling", castlingFEN, 2, 568},
		{"short fen", "4k3/8/8/8/8/8/8/4K3", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reference(tt.fen, tt.depth)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}

	_, err := Reference("bogus", 1)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestVerify(t *testing.T) {
	report, err := Verify(context.Background(), castlingFEN, 3, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, report, Report{FEN: castlingFEN, Depth: 3, Nodes: 13744, Reference: 13744})
}

func TestVerify_DetectsMismatch(t *testing.T) {
	// White can capture en passant here; this generator never does.
	fen := "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2"
	report, err := Verify(context.Background(), fen, 1, 2)

	testutil.AssertErrorIs(t, err, errors.ErrReferenceMismatch)
	testutil.AssertEqual(t, report.Nodes, uint64(6))
	testutil.AssertEqual(t, report.Reference, uint64(7))
}

func TestCompleteFEN(t *testing.T) {
	testutil.AssertEqual(t, completeFEN("8/8/8/8/8/8/8/8"), "8/8/8/8/8/8/8/8 w - - 0 1")
	testutil.AssertEqual(t, completeFEN(engine.InitialFEN), engine.InitialFEN)
}

func entryMoves(entries []Entry) []chess.Move {
	moves := make([]chess.Move, len(entries))
	for i, e := range entries {
		moves[i] = e.Move
	}
	return moves
}

func nodeCounts(entries []Entry) []uint64 {
	counts := make([]uint64, len(entries))
	for i, e := range entries {
		counts[i] = e.Nodes
	}
	return counts
}
