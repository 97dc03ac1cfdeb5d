package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// PieceWeights holds the material value of each piece type.
var PieceWeights = [chess.NumPieceValues]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   99,
}

// Material returns the weighted piece total of one colour, read from the
// board's live piece counts.
func Material(board *chess.Board, colour chess.Colour) int {
	total := 0
	for piece := chess.Pawn; piece <= chess.King; piece++ {
		total += board.Count(colour, piece) * PieceWeights[piece]
	}
	return total
}

// MaterialScore returns the material balance from the point of view of the
// side to move, as negamax requires.
func MaterialScore(board *chess.Board) int {
	us := board.ToMove
	return Material(board, us) - Material(board, us.Opposite())
}
