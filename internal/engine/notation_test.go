package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestParseSquares(t *testing.T) {
	tests := []struct {
		text     string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{"e2e4", "e2", "e4", false},
		{" G1F3 ", "g1", "f3", false},
		{"a7a8q", "a7", "a8", false},
		{"a7a8n", "a7", "a8", false},
		{"e2", "", "", true},
		{"e2e4e5", "", "", true},
		{"i2e4", "", "", true},
		{"e2e9", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			from, to, err := ParseSquares(tt.text)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidMoveText)
				var pe *errors.ParseError
				testutil.AssertTrue(t, stderrors.As(err, &pe), "want *ParseError")
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, from, sq(tt.wantFrom))
			testutil.AssertEqual(t, to, sq(tt.wantTo))
		})
	}
}

func TestParseMove(t *testing.T) {
	legal := LegalMoves(NewInitialBoard())

	move, err := ParseMove("b1c3", legal)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.Algebraic(), "b1c3")
	testutil.AssertFalse(t, move.IsZero())

	_, err = ParseMove("e2e5", legal)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	var me *errors.MoveError
	testutil.AssertTrue(t, stderrors.As(err, &me))
	testutil.AssertEqual(t, me.MoveText, "e2e5")

	_, err = ParseMove("nonsense", legal)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMoveText)
}
