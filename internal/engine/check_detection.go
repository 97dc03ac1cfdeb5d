package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	if board.Count(colour, chess.King) == 0 {
		return false // No king on the board
	}
	return IsSquareAttacked(board, board.KingSquare(colour), colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to or
// capture on sq by its movement rule. The attacker's own king safety is
// not considered. Pawn advances are not attacks.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one row behind sq from
	// the attacker's point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRow := sq.Row - chess.PawnDirection(byColour)
	for _, dc := range [...]int{-1, 1} {
		if board.Get(chess.Square{Row: pawnRow, Col: sq.Col + dc}) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.MakeColouredPiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.MakeColouredPiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if attackedByRay(board, sq, chess.MakeColouredPiece(byColour, chess.Bishop), queen, diagonalOffsets) {
		return true
	}
	return attackedByRay(board, sq, chess.MakeColouredPiece(byColour, chess.Rook), queen, straightOffsets)
}

// attackedByStep checks the fixed offsets around sq for the given piece.
func attackedByStep(board *chess.Board, sq chess.Square, piece chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if board.Get(sq.Offset(offset[0], offset[1])) == piece {
			return true
		}
	}
	return false
}

// attackedByRay walks outward from sq and reports whether the first piece
// met along any ray is one of the two sliders.
func attackedByRay(board *chess.Board, sq chess.Square, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		to := sq.Offset(dir[0], dir[1])
		for to.OnBoard() {
			piece := board.Get(to)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return false
}
