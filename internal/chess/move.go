package chess

// Move is a value describing one ply. It records enough to be undone exactly.
type Move struct {
	From Square
	To   Square

	// The coloured piece being moved.
	Piece Piece

	// Content of the destination square before the move (Empty if no capture).
	Captured Piece

	// Promotion is true iff a pawn reaches the farthest rank. The pawn
	// always becomes a queen.
	Promotion bool

	// Castle is true iff the move was generated by the castling rule.
	Castle bool
}

// NoMove is the zero Move; it never appears in a move list.
var NoMove Move

// NewMove builds a move from the board's current contents.
func NewMove(from, to Square, board *Board) Move {
	piece := board.Get(from)
	m := Move{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
	}
	if ExtractPiece(piece) == Pawn && to.Row == PromotionRow(ExtractColour(piece)) {
		m.Promotion = true
	}
	return m
}

// IsZero returns true for NoMove.
func (m Move) IsZero() bool {
	return m.Piece == Off
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return IsOccupied(m.Captured)
}

// Equal compares moves by start and end squares only, which is how a
// user's from/to selection is matched against the legal-move list.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// Algebraic renders the move as <file><rank><file><rank>, e.g. "e2e4".
func (m Move) Algebraic() string {
	return m.From.String() + m.To.String()
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.Algebraic()
}
