package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [row][col]. Row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Castling eligibility for both colours and wings.
	Castling CastlingRights

	// Live piece counts indexed [colour][piece], maintained as moves are
	// made and unmade rather than by rescanning the grid.
	Counts [2][NumPieceValues]int

	// Applied moves, most recent last.
	History []Move

	// Castling rights in force before each entry of History.
	CastlingHistory []CastlingRights
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Empty
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = *NewBoard()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Place(Square{Row: 0, Col: col}, B(backRank[col]))
		b.Place(Square{Row: 1, Col: col}, B(Pawn))
		b.Place(Square{Row: 6, Col: col}, W(Pawn))
		b.Place(Square{Row: 7, Col: col}, W(backRank[col]))
	}
	b.Castling = AllCastlingRights()
}

// Get returns the piece at the given square, or Off if it is not on the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Off
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set stores a piece at the given square without touching counts or king
// locations. Move application keeps those in step itself.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Place puts a piece on a square for position setup, keeping piece counts
// and king locations consistent with the grid.
func (b *Board) Place(sq Square, piece Piece) {
	if !sq.OnBoard() {
		return
	}
	if old := b.Get(sq); IsOccupied(old) {
		b.Counts[ExtractColour(old)][ExtractPiece(old)]--
	}
	b.Set(sq, piece)
	if !IsOccupied(piece) {
		return
	}
	colour := ExtractColour(piece)
	b.Counts[colour][ExtractPiece(piece)]++
	if ExtractPiece(piece) == King {
		b.SetKingSquare(colour, sq)
	}
}

// GetByIndex returns the piece at the given row and column.
func (b *Board) GetByIndex(row, col int) Piece {
	return b.Squares[row][col]
}

// KingSquare returns the tracked location of the colour's king.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// SetKingSquare records a new location for the colour's king.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// Count returns the number of pieces of the given type and colour.
func (b *Board) Count(colour Colour, piece Piece) int {
	return b.Counts[colour][piece]
}

// Ply returns the number of moves in the history.
func (b *Board) Ply() int {
	return len(b.History)
}

// LastMove returns the most recently applied move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.History) == 0 {
		return NoMove, false
	}
	return b.History[len(b.History)-1], true
}

// Copy creates a deep copy of the board, including its history.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.History = append([]Move(nil), b.History...)
	newBoard.CastlingHistory = append([]CastlingRights(nil), b.CastlingHistory...)
	return newBoard
}

// Validate checks that the tracked king locations and piece counts agree
// with the grid.
func (b *Board) Validate() error {
	var counts [2][NumPieceValues]int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if !IsOccupied(piece) {
				continue
			}
			counts[ExtractColour(piece)][ExtractPiece(piece)]++
		}
	}
	if counts != b.Counts {
		return fmt.Errorf("piece counts out of step with grid: %w", errors.ErrCorruptBoard)
	}
	for _, colour := range []Colour{White, Black} {
		if counts[colour][King] == 0 {
			continue
		}
		sq := b.KingSquare(colour)
		if b.Get(sq) != MakeColouredPiece(colour, King) {
			return fmt.Errorf("%s king not on %s: %w", colour, sq, errors.ErrCorruptBoard)
		}
	}
	if len(b.History) != len(b.CastlingHistory) {
		return fmt.Errorf("history stacks differ in length: %w", errors.ErrCorruptBoard)
	}
	return nil
}

// String renders the board as eight lines from rank 8 down to rank 1,
// using '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(PieceSymbol(b.Squares[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// PieceSymbol returns the FEN letter of a coloured piece, '.' when empty.
func PieceSymbol(colouredPiece Piece) byte {
	if !IsOccupied(colouredPiece) {
		return '.'
	}
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// BoardState captures the mutable position for save/restore and comparison.
// It excludes the history stacks.
type BoardState struct {
	Squares    [BoardSize][BoardSize]Piece
	ToMove     Colour
	MoveNumber uint
	WKing      Square
	BKing      Square
	Castling   CastlingRights
	Counts     [2][NumPieceValues]int
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:    b.Squares,
		ToMove:     b.ToMove,
		MoveNumber: b.MoveNumber,
		WKing:      b.WKing,
		BKing:      b.BKing,
		Castling:   b.Castling,
		Counts:     b.Counts,
	}
}

// RestoreState restores the board to a previously saved state.
// History is left untouched.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.WKing = s.WKing
	b.BKing = s.BKing
	b.Castling = s.Castling
	b.Counts = s.Counts
}
