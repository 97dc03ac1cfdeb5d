package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	board := mustBoard(t, InitialFEN)

	testutil.AssertBoardEqual(t, board, NewInitialBoard())
	testutil.AssertEqual(t, board.ToMove, chess.White)
	testutil.AssertEqual(t, board.Castling, chess.AllCastlingRights())
	testutil.AssertEqual(t, board.KingSquare(chess.White), sq("e1"))
	testutil.AssertEqual(t, board.KingSquare(chess.Black), sq("e8"))
	testutil.AssertEqual(t, board.Count(chess.White, chess.Pawn), 8)
	testutil.AssertEqual(t, board.Count(chess.Black, chess.Knight), 2)
	testutil.AssertNoError(t, board.Validate())
}

func TestNewBoardFromFEN_OptionalFields(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/4K3")

	testutil.AssertEqual(t, board.ToMove, chess.White)
	testutil.AssertEqual(t, board.Castling, chess.CastlingRights{})
	testutil.AssertEqual(t, board.MoveNumber, uint(1))
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4K2X w - - 0 1"},
		{"too many files", "4k3/9/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank overflow", "4k3/ppppppppp/8/8/8/8/8/4K3 w - - 0 1"},
		{"short rank", "4k3/7/8/8/8/8/8/4K3 w - - 0 1"},
		{"missing rank", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KZ - 0 1"},
		{"bad move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 zero"},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			if board != nil {
				t.Errorf("NewBoardFromFEN(%q) returned a board with an error", tt.fen)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"initial", InitialFEN, InitialFEN},
		{"black to move", "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 12", "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 12"},
		{"en passant dropped", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
		{"halfmove clock dropped", "8/5k2/8/8/8/8/5K2/4R3 w - - 17 40", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 40"},
		{"defaults filled", "4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertEqual(t, BoardToFEN(board), tt.want)
		})
	}
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	board := NewInitialBoard()
	for _, text := range []string{"e2e4", "e7e5", "g1f3"} {
		MakeMove(board, mustFind(t, board, text))
	}
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2")
}

func TestConvertFENCharToPiece(t *testing.T) {
	tests := []struct {
		c    byte
		want chess.Piece
	}{
		{'K', chess.King}, {'q', chess.Queen}, {'R', chess.Rook},
		{'n', chess.Knight}, {'B', chess.Bishop}, {'p', chess.Pawn},
		{'x', chess.Empty}, {'1', chess.Empty},
	}
	for _, tt := range tests {
		if got := ConvertFENCharToPiece(tt.c); got != tt.want {
			t.Errorf("ConvertFENCharToPiece(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
