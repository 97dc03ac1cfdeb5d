package testutil

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Square{Row: 6, Col: 4}, chess.Square{Row: 6, Col: 4}, "square %s", "e2")
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, sentinel, sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "should be false")
}

func TestAssertMoveSet_IgnoresOrder(t *testing.T) {
	moves := []chess.Move{
		{From: chess.Square{Row: 6, Col: 4}, To: chess.Square{Row: 4, Col: 4}},
		{From: chess.Square{Row: 7, Col: 6}, To: chess.Square{Row: 5, Col: 5}},
	}
	AssertMoveSet(t, moves, []string{"g1f3", "e2e4"})
	AssertMoveSet(t, nil, []string{})
}

func TestAssertBoardEqual_EmptyHistory(t *testing.T) {
	a := chess.NewBoard()
	b := chess.NewBoard()
	b.History = make([]chess.Move, 0, 4)
	AssertBoardEqual(t, a, b)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string single", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSortedMoveStrings(t *testing.T) {
	moves := []chess.Move{
		{From: chess.Square{Row: 7, Col: 6}, To: chess.Square{Row: 5, Col: 5}},
		{From: chess.Square{Row: 6, Col: 0}, To: chess.Square{Row: 5, Col: 0}},
	}
	AssertEqual(t, SortedMoveStrings(moves), []string{"a2a3", "g1f3"})
}
