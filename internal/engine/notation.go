package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseSquares reads move text of the form e2e4. A trailing promotion
// letter is accepted and ignored since pawns always promote to a queen.
func ParseSquares(text string) (from, to chess.Square, err error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) == 5 && strings.IndexByte("qrbn", text[4]) >= 0 {
		text = text[:4]
	}
	if len(text) != 4 {
		return from, to, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    text,
			Expected: "four characters like e2e4",
		}
	}
	var ok bool
	if from, ok = chess.ParseSquare(text[:2]); !ok {
		return from, to, &errors.ParseError{
			Err: errors.ErrInvalidMoveText, Input: text, Column: 1, Expected: "square", Got: text[:2],
		}
	}
	if to, ok = chess.ParseSquare(text[2:]); !ok {
		return from, to, &errors.ParseError{
			Err: errors.ErrInvalidMoveText, Input: text, Column: 3, Expected: "square", Got: text[2:],
		}
	}
	return from, to, nil
}

// ParseMove resolves move text against a legal-move list by start and end
// square. It returns ErrIllegalMove if no legal move matches.
func ParseMove(text string, legal []chess.Move) (chess.Move, error) {
	from, to, err := ParseSquares(text)
	if err != nil {
		return chess.NoMove, err
	}
	if move, ok := FindMove(legal, chess.Move{From: from, To: to}); ok {
		return move, nil
	}
	return chess.NoMove, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
}

// FindMove returns the member of moves equal to want.
func FindMove(moves []chess.Move, want chess.Move) (chess.Move, bool) {
	for _, m := range moves {
		if m.Equal(want) {
			return m, true
		}
	}
	return chess.NoMove, false
}
