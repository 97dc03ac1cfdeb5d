package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// MakeMove applies a move to the board in place and pushes it onto the
// history together with the castling rights in force before it.
// The move is expected to come from the latest LegalMoves result; it is
// not re-validated.
//
// The same MakeMove/UnmakeMove pair serves real play, the legality filter
// and the search, so every caller sees identical state transitions.
func MakeMove(board *chess.Board, move chess.Move) {
	colour := chess.ExtractColour(move.Piece)
	pieceType := chess.ExtractPiece(move.Piece)

	// Record what is really on the destination so undo restores it exactly.
	move.Captured = board.Get(move.To)

	board.History = append(board.History, move)
	board.CastlingHistory = append(board.CastlingHistory, board.Castling)

	placed := move.Piece
	if move.Promotion {
		placed = chess.MakeColouredPiece(colour, chess.Queen)
		board.Counts[colour][chess.Pawn]--
		board.Counts[colour][chess.Queen]++
	}
	if chess.IsOccupied(move.Captured) {
		board.Counts[chess.ExtractColour(move.Captured)][chess.ExtractPiece(move.Captured)]--
	}

	board.Set(move.From, chess.Empty)
	board.Set(move.To, placed)

	if pieceType == chess.King {
		board.SetKingSquare(colour, move.To)
	}

	if move.Castle {
		rookFrom, rookTo := castleRookSquares(move)
		rook := board.Get(rookFrom)
		board.Set(rookFrom, chess.Empty)
		board.Set(rookTo, rook)
	}

	updateCastlingRights(board, move)

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// UnmakeMove pops the most recent move and restores the grid, side to
// move, king location, piece counts and castling rights to what they were
// before it. It returns false, changing nothing, if the history is empty.
func UnmakeMove(board *chess.Board) bool {
	n := len(board.History)
	if n == 0 {
		return false
	}
	move := board.History[n-1]
	rights := board.CastlingHistory[n-1]
	board.History = board.History[:n-1]
	board.CastlingHistory = board.CastlingHistory[:n-1]

	colour := chess.ExtractColour(move.Piece)

	if move.Castle {
		rookFrom, rookTo := castleRookSquares(move)
		rook := board.Get(rookTo)
		board.Set(rookTo, chess.Empty)
		board.Set(rookFrom, rook)
	}

	board.Set(move.From, move.Piece)
	board.Set(move.To, move.Captured)

	if move.Promotion {
		board.Counts[colour][chess.Pawn]++
		board.Counts[colour][chess.Queen]--
	}
	if chess.IsOccupied(move.Captured) {
		board.Counts[chess.ExtractColour(move.Captured)][chess.ExtractPiece(move.Captured)]++
	}

	if chess.ExtractPiece(move.Piece) == chess.King {
		board.SetKingSquare(colour, move.From)
	}

	board.Castling = rights
	if colour == chess.Black {
		board.MoveNumber--
	}
	board.ToMove = colour
	return true
}
