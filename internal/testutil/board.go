package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// MustBoard builds a board from piece specs of the form "<letter><square>",
// e.g. "Ra1" for an Own rook on a1 or "pe7" for an Opponent pawn on e7.
// It calls t.Fatal on a malformed spec or an invalid position.
func MustBoard(t *testing.T, specs ...string) chess.Board {
	t.Helper()
	pieces := make([]chess.Piece, 0, len(specs))
	for _, spec := range specs {
		pieces = append(pieces, MustPiece(t, spec))
	}
	board, err := chess.NewBoard(pieces...)
	if err != nil {
		t.Fatalf("building board from %v: %v", specs, err)
	}
	return board
}

// MustPiece parses a single "<letter><square>" piece spec.
func MustPiece(t *testing.T, spec string) chess.Piece {
	t.Helper()
	if len(spec) != 3 {
		t.Fatalf("bad piece spec %q", spec)
	}
	kind := chess.KindFromLetter(spec[0])
	if kind == chess.NoKind {
		t.Fatalf("bad piece letter in %q", spec)
	}
	team := chess.Own
	if spec[0] >= 'a' && spec[0] <= 'z' {
		team = chess.Opponent
	}
	return chess.Piece{Kind: kind, Team: team, Position: MustSquare(t, spec[1:])}
}

// MustSquare parses an algebraic square name.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustSquares parses a list of algebraic square names.
func MustSquares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	if len(names) == 0 {
		return nil
	}
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

// AssertBoard fails when got does not hold exactly the pieces of want,
// reporting the difference piece by piece.
func AssertBoard(t *testing.T, got, want chess.Board) {
	t.Helper()
	if diff := cmp.Diff(want.Pieces(), got.Pieces()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

// AssertInvariants checks the board invariants: at most one piece per
// square and every piece on the board.
func AssertInvariants(t *testing.T, board chess.Board) {
	t.Helper()
	seen := make(map[chess.Square]bool)
	pieces := board.Pieces()
	if len(pieces) != board.Len() {
		t.Errorf("len(Pieces()) = %d, Len() = %d", len(pieces), board.Len())
	}
	for _, p := range pieces {
		if !p.Position.InBounds() {
			t.Errorf("piece %v is off the board", p)
		}
		if seen[p.Position] {
			t.Errorf("square %v holds more than one piece", p.Position)
		}
		seen[p.Position] = true
	}
}
