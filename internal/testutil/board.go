package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MoveStrings returns the algebraic form of each move, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Algebraic()
	}
	return out
}

// AssertMoveSet compares the moves with the wanted algebraic strings,
// ignoring order.
func AssertMoveSet(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, MoveStrings(got), sorted, cmpopts.EquateEmpty()); diff != "" {
		fail(t, "move set mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// AssertBoardEqual compares two boards field by field, including history.
// Nil and empty history slices are treated as equal, as is history capacity.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		fail(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// SortedMoveStrings returns MoveStrings sorted lexically.
func SortedMoveStrings(moves []chess.Move) []string {
	out := MoveStrings(moves)
	sort.Strings(out)
	return out
}
