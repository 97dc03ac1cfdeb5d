package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Outcome classifies a position by whether the side to move can continue.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "InProgress"
	}
}

// IsTerminal returns true for checkmate and stalemate.
func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
