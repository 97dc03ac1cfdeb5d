package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

const (
	kingStartCol     = 4
	kingsideRookCol  = chess.BoardSize - 1
	queensideRookCol = 0
)

// castleMoves appends the castling moves available to the side to move.
// A castle needs the right, the rook on its corner, an empty path, a king
// not in check and no attacked square on the king's route.
func castleMoves(board *chess.Board, moves []chess.Move) []chess.Move {
	colour := board.ToMove
	row := chess.HomeRow(colour)
	king := board.KingSquare(colour)
	if king != (chess.Square{Row: row, Col: kingStartCol}) {
		return moves
	}
	if !board.Castling.Kingside(colour) && !board.Castling.Queenside(colour) {
		return moves
	}
	enemy := colour.Opposite()
	if IsSquareAttacked(board, king, enemy) {
		return moves
	}

	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if board.Castling.Kingside(colour) &&
		board.Get(chess.Square{Row: row, Col: kingsideRookCol}) == rook &&
		pathEmpty(board, row, 5, 6) &&
		!pathAttacked(board, row, enemy, 5, 6) {
		moves = append(moves, castleMove(board, king, 6))
	}
	if board.Castling.Queenside(colour) &&
		board.Get(chess.Square{Row: row, Col: queensideRookCol}) == rook &&
		pathEmpty(board, row, 1, 2, 3) &&
		!pathAttacked(board, row, enemy, 3, 2) {
		moves = append(moves, castleMove(board, king, 2))
	}
	return moves
}

func castleMove(board *chess.Board, king chess.Square, toCol int) chess.Move {
	m := chess.NewMove(king, chess.Square{Row: king.Row, Col: toCol}, board)
	m.Castle = true
	return m
}

func pathEmpty(board *chess.Board, row int, cols ...int) bool {
	for _, col := range cols {
		if board.Get(chess.Square{Row: row, Col: col}) != chess.Empty {
			return false
		}
	}
	return true
}

func pathAttacked(board *chess.Board, row int, enemy chess.Colour, cols ...int) bool {
	for _, col := range cols {
		if IsSquareAttacked(board, chess.Square{Row: row, Col: col}, enemy) {
			return true
		}
	}
	return false
}

// castleRookSquares returns where the rook starts and ends for a castle move.
func castleRookSquares(move chess.Move) (from, to chess.Square) {
	row := move.From.Row
	if move.To.Col > move.From.Col {
		return chess.Square{Row: row, Col: kingsideRookCol}, chess.Square{Row: row, Col: 5}
	}
	return chess.Square{Row: row, Col: queensideRookCol}, chess.Square{Row: row, Col: 3}
}

// updateCastlingRights revokes rights after a move: a king move clears
// both of its colour's rights, and a rook leaving or being captured on its
// original corner clears that wing. Rights are never granted here.
func updateCastlingRights(board *chess.Board, move chess.Move) {
	colour := chess.ExtractColour(move.Piece)
	switch chess.ExtractPiece(move.Piece) {
	case chess.King:
		board.Castling.ClearAll(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, move.From)
	}
	if chess.IsOccupied(move.Captured) && chess.ExtractPiece(move.Captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(move.Captured), move.To)
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.HomeRow(colour) {
		return
	}
	switch sq.Col {
	case kingsideRookCol:
		board.Castling.ClearKingside(colour)
	case queensideRookCol:
		board.Castling.ClearQueenside(colour)
	}
}
