// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Not a square; zero value of an unset Move
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty and Off.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupied reports whether a square value holds a coloured piece.
func IsOccupied(p Piece) bool {
	return p != Empty && p != Off
}

// Square addresses one cell of the grid. Row 0 is Black's back rank and
// row 7 is White's back rank; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// OnBoard returns true if the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// File returns the file letter ('a'-'h') of the square.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit ('1'-'8') of the square.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "--"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts algebraic coordinates such as "e4" to a Square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return Square{}, false
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, true
}

// PawnDirection returns the row delta of a pawn advance: -1 for White, +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the row from which pawns of the colour may double-advance.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the farthest row for pawns of the colour.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
