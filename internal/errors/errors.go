// Package errors provides sentinel errors and error types for the chessboard.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPiece indicates a move was requested from an empty square.
	ErrNoPiece = errors.New("no piece on origin square")

	// ErrOffBoard indicates a square outside the 8x8 board.
	ErrOffBoard = errors.New("square off board")

	// ErrSquareOccupied indicates two pieces were placed on the same square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrUnknownPiece indicates a piece kind or team outside the known set.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBoardNotFound indicates an unknown board id.
	ErrBoardNotFound = errors.New("board not found")

	// ErrStalePosition indicates a proposal made against an outdated board.
	ErrStalePosition = errors.New("stale position")
)

// MoveError wraps errors with move context: the squares involved and the
// piece that was asked to move. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	From  string // Origin square in algebraic form (if known)
	To    string // Destination square in algebraic form (if known)
	Piece string // Description of the moving piece (if known)
	Board string // Board id (if the move was made against a stored board)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Board != "" {
		parts = append(parts, fmt.Sprintf("board %s", e.Board))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
