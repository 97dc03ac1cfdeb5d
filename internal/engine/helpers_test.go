package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// mustBoard parses a FEN or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// mustFind returns the legal move with the given text or fails the test.
func mustFind(t testing.TB, board *chess.Board, text string) chess.Move {
	t.Helper()
	move, err := ParseMove(text, LegalMoves(board))
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", text, err)
	}
	return move
}

// countNodes walks the legal-move tree with MakeMove/UnmakeMove.
func countNodes(board *chess.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	total := 0
	for _, move := range LegalMoves(board) {
		MakeMove(board, move)
		total += countNodes(board, depth-1)
		UnmakeMove(board)
	}
	return total
}

func sq(text string) chess.Square {
	s, ok := chess.ParseSquare(text)
	if !ok {
		panic("bad square " + text)
	}
	return s
}
