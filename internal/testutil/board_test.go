package testutil

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

func TestMustBoard(t *testing.T) {
	board := MustBoard(t, "Ra1", "pe7", "Kd5")

	AssertEqual(t, board.Len(), 3)
	AssertInvariants(t, board)

	p, ok := board.OccupantAt(chess.Sq(0, 0))
	AssertTrue(t, ok, "a1 occupied")
	AssertEqual(t, p.Kind, chess.Rook)
	AssertEqual(t, p.Team, chess.Own)

	p, ok = board.OccupantAt(chess.Sq(4, 6))
	AssertTrue(t, ok, "e7 occupied")
	AssertEqual(t, p.Kind, chess.Pawn)
	AssertEqual(t, p.Team, chess.Opponent)
}

func TestMustSquares(t *testing.T) {
	AssertEqual(t, MustSquares(t, "a1", "h8"), []chess.Square{chess.Sq(0, 0), chess.Sq(7, 7)})
	AssertEqual(t, len(MustSquares(t)), 0)
}

func TestAssertBoard(t *testing.T) {
	AssertBoard(t, MustBoard(t, "Ra1", "pe7"), MustBoard(t, "pe7", "Ra1"))
	AssertInvariants(t, chess.InitialLayout())
}
