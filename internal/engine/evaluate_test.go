package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestMaterial(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantWhite int
		wantBlack int
		wantScore int
	}{
		{"initial", InitialFEN, 138, 138, 0},
		{"white down a queen", "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", 100, 108, -8},
		{"same, black to move", "4k3/8/8/3q4/4P3/8/8/4K3 b - - 0 1", 100, 108, 8},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 99, 99, 0},
		{"minor pieces", "1n2k3/8/8/8/8/8/8/2B1K2R w - - 0 1", 107, 102, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := Material(board, chess.White); got != tt.wantWhite {
				t.Errorf("Material(White) = %d, want %d", got, tt.wantWhite)
			}
			if got := Material(board, chess.Black); got != tt.wantBlack {
				t.Errorf("Material(Black) = %d, want %d", got, tt.wantBlack)
			}
			if got := MaterialScore(board); got != tt.wantScore {
				t.Errorf("MaterialScore() = %d, want %d", got, tt.wantScore)
			}
		})
	}
}

func TestMaterialScore_FollowsCounts(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	MakeMove(board, mustFind(t, board, "e4d5"))

	// Black to move, a queen down.
	if got := MaterialScore(board); got != -1 {
		t.Errorf("MaterialScore() after capture = %d, want -1", got)
	}
	UnmakeMove(board)
	if got := MaterialScore(board); got != -8 {
		t.Errorf("MaterialScore() after undo = %d, want -8", got)
	}
}
