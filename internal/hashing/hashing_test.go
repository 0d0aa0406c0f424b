package hashing

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestFingerprint(t *testing.T) {
	initial := chess.InitialLayout()
	fromFEN := engine.MustBoardFromFEN(engine.InitialFEN)

	testutil.AssertEqual(t, Fingerprint(initial), Fingerprint(fromFEN), "equal boards")
	testutil.AssertTrue(t, Fingerprint(initial) != 0, "fingerprint is never zero")
	testutil.AssertTrue(t, Fingerprint(chess.Board{}) != 0, "empty board fingerprint is never zero")

	moved := initial.MustApplyMove(chess.Sq(4, 1), chess.Sq(4, 3))
	testutil.AssertTrue(t, Fingerprint(initial) != Fingerprint(moved), "move changes fingerprint")

	back := moved.MustApplyMove(chess.Sq(4, 3), chess.Sq(4, 1))
	testutil.AssertEqual(t, Fingerprint(back), Fingerprint(initial), "returning restores fingerprint")
}

func TestFingerprint_TeamMatters(t *testing.T) {
	own := testutil.MustBoard(t, "Qd4")
	opp := testutil.MustBoard(t, "qd4")
	testutil.AssertTrue(t, Fingerprint(own) != Fingerprint(opp))
}

func TestFingerprintString(t *testing.T) {
	board := chess.InitialLayout()
	s := FingerprintString(board)
	testutil.AssertEqual(t, len(s), 16)

	fp, err := ParseFingerprint(s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fp, Fingerprint(board))

	testutil.AssertEqual(t, FormatFingerprint(0xab), "00000000000000ab")

	zero, err := ParseFingerprint("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, zero, uint64(0))

	_, err = ParseFingerprint("not-hex")
	testutil.AssertTrue(t, err != nil, "invalid hex")
}

func TestPositionCounter(t *testing.T) {
	c := NewPositionCounter(0)
	board := chess.InitialLayout()
	moved := board.MustApplyMove(chess.Sq(6, 0), chess.Sq(5, 2))

	testutil.AssertEqual(t, c.Record(board), 1)
	testutil.AssertEqual(t, c.Record(moved), 1)
	testutil.AssertEqual(t, c.Record(board), 2)
	testutil.AssertEqual(t, c.Count(board), 2)
	testutil.AssertEqual(t, c.Count(chess.Board{}), 0)
	testutil.AssertEqual(t, c.UniqueCount(), 2)
	testutil.AssertEqual(t, c.RepeatCount(), 1)

	c.Reset()
	testutil.AssertEqual(t, c.UniqueCount(), 0)
	testutil.AssertEqual(t, c.RepeatCount(), 0)
}

func TestPositionCounter_Capacity(t *testing.T) {
	c := NewPositionCounter(1)
	board := chess.InitialLayout()
	other := testutil.MustBoard(t, "Ke1")

	c.Record(board)
	testutil.AssertTrue(t, c.IsFull())
	testutil.AssertEqual(t, c.Record(other), 1)
	testutil.AssertEqual(t, c.Count(other), 0, "not stored once full")
	testutil.AssertEqual(t, c.Record(board), 2, "known placements still counted")
}
