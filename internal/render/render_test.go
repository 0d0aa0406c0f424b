package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestBoard_Plain(t *testing.T) {
	var buf bytes.Buffer
	err := Board(&buf, chess.InitialLayout(), Options{})
	testutil.AssertNoError(t, err)

	want := strings.Join([]string{
		"8  r n b q k b n r",
		"7  p p p p p p p p",
		"6  . . . . . . . .",
		"5  . . . . . . . .",
		"4  . . . . . . . .",
		"3  . . . . . . . .",
		"2  P P P P P P P P",
		"1  R N B Q K B N R",
		"   a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestBoard_Highlight(t *testing.T) {
	var buf bytes.Buffer
	board := testutil.MustBoard(t, "Nb1", "pd2")
	err := Board(&buf, board, Options{Highlight: testutil.MustSquares(t, "a3", "c3", "d2")})
	testutil.AssertNoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[5], "3 *. .*. . . . . .")
	testutil.AssertEqual(t, lines[6], "2  . . .*p . . . .")
	testutil.AssertEqual(t, lines[7], "1  . N . . . . . .")
}

func TestBoard_Flip(t *testing.T) {
	var buf bytes.Buffer
	board := testutil.MustBoard(t, "Ka1", "kh8")
	err := Board(&buf, board, Options{Flip: true})
	testutil.AssertNoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], "1  . . . . . . . K")
	testutil.AssertEqual(t, lines[7], "8  k . . . . . . .")
	testutil.AssertEqual(t, lines[8], "   h g f e d c b a")
}

func TestBoard_Color(t *testing.T) {
	var buf bytes.Buffer
	err := Board(&buf, chess.InitialLayout(), Options{Color: true, Highlight: testutil.MustSquares(t, "e4")})
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertTrue(t, strings.Contains(out, "\x1b["), "ANSI escapes present")
	testutil.AssertTrue(t, strings.Contains(out, " K "), "king letter")
	testutil.AssertTrue(t, strings.HasSuffix(out, "   a  b  c  d  e  f  g  h \n"), "file labels")
	testutil.AssertEqual(t, len(strings.Split(strings.TrimSuffix(out, "\n"), "\n")), 9)
}
