package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Move is a proposed relocation from one square to another.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a move in long algebraic form. The squares may be
// written together ("e2e4") or separated by a space or hyphen ("e2-e4").
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	text = strings.NewReplacer("-", "", " ", "", "\t", "").Replace(text)
	if len(text) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
