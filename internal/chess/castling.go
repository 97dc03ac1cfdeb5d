package chess

// CastlingRights holds the four independent castling flags.
// Rights are only ever cleared during play; undo restores them from history.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights held in the initial position.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside reports whether the colour may still castle kingside.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports whether the colour may still castle queenside.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// ClearKingside revokes the kingside right of the colour.
func (c *CastlingRights) ClearKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// ClearQueenside revokes the queenside right of the colour.
func (c *CastlingRights) ClearQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// ClearAll revokes both rights of the colour.
func (c *CastlingRights) ClearAll(colour Colour) {
	c.ClearKingside(colour)
	c.ClearQueenside(colour)
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var buf []byte
	if c.WhiteKingside {
		buf = append(buf, 'K')
	}
	if c.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if c.BlackKingside {
		buf = append(buf, 'k')
	}
	if c.BlackQueenside {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}
