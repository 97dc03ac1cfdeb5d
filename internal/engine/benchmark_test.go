package engine

import "testing"

var benchFENs = map[string]string{
	"Initial":  InitialFEN,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen) //nolint:errcheck // benchmark
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board)
			}
		})
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := mustBoard(b, benchFENs["Midgame"])
	moves := LegalMoves(board)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MakeMove(board, moves[i%len(moves)])
		UnmakeMove(board)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	board := mustBoard(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsInCheck(board, board.ToMove)
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board := mustBoard(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
