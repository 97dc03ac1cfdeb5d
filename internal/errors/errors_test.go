package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidMoveText", ErrInvalidMoveText, ErrInvalidMoveText},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrCorruptBoard", ErrCorruptBoard, ErrCorruptBoard},
		{"ErrReferenceMismatch", ErrReferenceMismatch, ErrReferenceMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrGameOver) {
		t.Error("errors.Is(ErrIllegalMove, ErrGameOver) = true, want false")
	}
	if errors.Is(ErrInvalidFEN, ErrInvalidMoveText) {
		t.Error("errors.Is(ErrInvalidFEN, ErrInvalidMoveText) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				PlyNum:   12,
				MoveText: "e1g1",
				FEN:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			},
			contains: []string{"ply 12", "e1g1", "r3k2r", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{MoveText: "a2a5"},
			contains: []string{"a2a5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		PlyNum:   24,
		MoveText: "e8c8",
	}

	wrapped := fmt.Errorf("human turn: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidMoveText,
		Input:    "e2x4",
		Column:   3,
		Expected: "square",
		Got:      "x4",
	}

	msg := err.Error()
	for _, want := range []string{"e2x4", "at 3", "expected square, got x4", "invalid move text"} {
		if !containsIgnoreCase(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}
	if !errors.Is(err, ErrInvalidMoveText) {
		t.Error("errors.Is(parseErr, ErrInvalidMoveText) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "base depth %d", -1)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "base depth -1") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
