package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Movement offsets as {row delta, col delta}.
var (
	knightOffsets   = [][2]int{{-2, -1}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}}
	kingOffsets     = [][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}}
	straightOffsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	diagonalOffsets = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// pieceGenerator appends the pseudo-legal moves of the piece on from.
type pieceGenerator func(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move

// generators is indexed by piece type.
var generators = [chess.NumPieceValues]pieceGenerator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// GeneratePseudoLegal returns every move the side to move could make by
// its pieces' movement rules, ignoring whether its own king is left in
// check. Castling is not included. Squares are scanned row by row.
func GeneratePseudoLegal(board *chess.Board) []chess.Move {
	return generatePseudoLegal(board, board.ToMove, make([]chess.Move, 0, 48))
}

func generatePseudoLegal(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.GetByIndex(row, col)
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			gen := generators[chess.ExtractPiece(piece)]
			if gen == nil {
				continue
			}
			moves = gen(board, chess.Square{Row: row, Col: col}, colour, moves)
		}
	}
	return moves
}

// pawnMoves generates single and double advances and diagonal captures.
// En passant is not supported.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.PawnDirection(colour)

	one := from.Offset(dir, 0)
	if one.OnBoard() && board.Get(one) == chess.Empty {
		moves = append(moves, chess.NewMove(from, one, board))
		if from.Row == chess.PawnStartRow(colour) {
			two := from.Offset(2*dir, 0)
			if board.Get(two) == chess.Empty {
				moves = append(moves, chess.NewMove(from, two, board))
			}
		}
	}

	for _, dc := range [...]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if chess.IsOccupied(target) && chess.ExtractColour(target) != colour {
			moves = append(moves, chess.NewMove(from, to, board))
		}
	}
	return moves
}

func knightMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return stepMoves(board, from, colour, knightOffsets, moves)
}

func kingMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return stepMoves(board, from, colour, kingOffsets, moves)
}

func bishopMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slidingMoves(board, from, colour, diagonalOffsets, moves)
}

func rookMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slidingMoves(board, from, colour, straightOffsets, moves)
}

func queenMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	moves = rookMoves(board, from, colour, moves)
	return bishopMoves(board, from, colour, moves)
}

// stepMoves handles fixed-offset pieces: a destination is accepted if it is
// on the board and not occupied by a friendly piece.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, chess.NewMove(from, to, board))
		}
	}
	return moves
}

// slidingMoves casts a ray in each direction until it leaves the board,
// hits a friendly piece (excluded) or hits an enemy piece (included).
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.Get(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.NewMove(from, to, board))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to, board))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
