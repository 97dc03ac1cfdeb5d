package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns the legal moves for the side to move, in generation
// order: board scan order, then each piece's rule order, then castles.
func LegalMoves(board *chess.Board) []chess.Move {
	moves, _ := Analyze(board)
	return moves
}

// Analyze returns the legal moves for the side to move together with the
// resulting outcome. With no legal moves the position is checkmate if the
// side to move is in check and stalemate otherwise.
func Analyze(board *chess.Board) ([]chess.Move, Outcome) {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)

	moves := GeneratePseudoLegal(board)
	moves = castleMoves(board, moves)

	// Walk backwards so removal does not disturb unvisited indices.
	for i := len(moves) - 1; i >= 0; i-- {
		MakeMove(board, moves[i])
		exposed := IsInCheck(board, colour)
		UnmakeMove(board)
		if exposed {
			moves = append(moves[:i], moves[i+1:]...)
		}
	}

	if len(moves) == 0 {
		if inCheck {
			return moves, Checkmate
		}
		return moves, Stalemate
	}
	return moves, InProgress
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. It stops at the first one found.
func HasLegalMoves(board *chess.Board) bool {
	colour := board.ToMove
	moves := GeneratePseudoLegal(board)
	// Castling never rescues a position with no other legal move: a king
	// that can castle can also step to the square beside it.
	for _, move := range moves {
		if tryMove(board, move, colour) {
			return true
		}
	}
	return false
}

// tryMove makes a move and checks whether it leaves the mover's king safe.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	MakeMove(board, move)
	safe := !IsInCheck(board, colour)
	UnmakeMove(board)
	return safe
}
