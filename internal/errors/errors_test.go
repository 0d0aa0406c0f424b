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
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrOffBoard", ErrOffBoard, ErrOffBoard},
		{"ErrSquareOccupied", ErrSquareOccupied, ErrSquareOccupied},
		{"ErrUnknownPiece", ErrUnknownPiece, ErrUnknownPiece},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrBoardNotFound", ErrBoardNotFound, ErrBoardNotFound},
		{"ErrStalePosition", ErrStalePosition, ErrStalePosition},
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
	if errors.Is(ErrNoPiece, ErrOffBoard) {
		t.Error("errors.Is(ErrNoPiece, ErrOffBoard) = true, want false")
	}
	if errors.Is(ErrBoardNotFound, ErrStalePosition) {
		t.Error("errors.Is(ErrBoardNotFound, ErrStalePosition) = true, want false")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrNoPiece,
				From:  "e3",
				To:    "e4",
				Piece: "own pawn",
				Board: "abc",
			},
			contains: []string{"board abc", "own pawn", "move e3-e4", "no piece"},
		},
		{
			name: "origin only",
			err: &MoveError{
				Err:  ErrOffBoard,
				From: "a1",
			},
			contains: []string{"from a1", "off board"},
		},
		{
			name: "destination only",
			err: &MoveError{
				Err: ErrOffBoard,
				To:  "h8",
			},
			contains: []string{"to h8", "off board"},
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

func TestMoveError_NoContext(t *testing.T) {
	if got := (&MoveError{Err: ErrNoPiece}).Error(); got != "no piece on origin square" {
		t.Errorf("Error() = %q, want %q", got, "no piece on origin square")
	}
	if got := (&MoveError{}).Error(); got != "move error" {
		t.Errorf("Error() = %q, want %q", got, "move error")
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrNoPiece,
		From: "d4",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrNoPiece) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrNoPiece)
	}

	if !errors.Is(moveErr, ErrNoPiece) {
		t.Error("errors.Is(moveErr, ErrNoPiece) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrOffBoard,
		From: "a1",
		To:   "a9",
	}

	wrapped := fmt.Errorf("applying move: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.To != "a9" {
		t.Errorf("extractedErr.To = %q, want %q", extractedErr.To, "a9")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrBoardNotFound, "board %q", "1234")

	if !errors.Is(wrapped, ErrBoardNotFound) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, `board "1234"`) {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
