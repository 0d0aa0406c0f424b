package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestBetween(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from, to string
		want     []string
	}{
		{"a1", "a4", []string{"a2", "a3"}},
		{"a4", "a1", []string{"a3", "a2"}},
		{"a1", "h1", []string{"b1", "c1", "d1", "e1", "f1", "g1"}},
		{"c1", "f4", []string{"d2", "e3"}},
		{"h8", "e5", []string{"g7", "f6"}},
		{"a1", "a2", nil},
		{"a1", "b2", nil},
		{"b1", "c3", nil},
		{"a1", "c2", nil},
		{"d4", "d4", nil},
	}

	for _, tt := range tests {
		tt := tt
		got := Between(testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to))
		testutil.AssertEqual(t, got, testutil.MustSquares(t, tt.want...), "%s-%s", tt.from, tt.to)
	}
}

func TestIsPathClear(t *testing.T) {
	t.Parallel()
	board := testutil.MustBoard(t, "Ra1", "pa4", "Bc1")

	testutil.AssertTrue(t, isPathClear(board, chess.Sq(0, 0), chess.Sq(0, 3)), "a1-a4 stops on blocker")
	testutil.AssertFalse(t, isPathClear(board, chess.Sq(0, 0), chess.Sq(0, 5)), "a1-a6 through blocker")
	testutil.AssertTrue(t, isPathClear(board, chess.Sq(2, 0), chess.Sq(7, 5)), "c1-h6")
	testutil.AssertFalse(t, isPathClear(board, chess.Sq(0, 0), chess.Sq(3, 0)), "a1-d1 through c1")
}

func TestPawnGeometryFor(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, PawnGeometryFor(chess.Own), PawnGeometry{Direction: 1, StartRank: 1})
	testutil.AssertEqual(t, PawnGeometryFor(chess.Opponent), PawnGeometry{Direction: -1, StartRank: 6})
}

func TestPawnRule(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		pieces []string
		from   string
		to     string
		team   chess.Team
		want   bool
	}{
		{"single advance", []string{"Pe2"}, "e2", "e3", chess.Own, true},
		{"double advance", []string{"Pe2"}, "e2", "e4", chess.Own, true},
		{"double blocked near", []string{"Pe2", "ne3"}, "e2", "e4", chess.Own, false},
		{"double blocked far", []string{"Pe2", "ne4"}, "e2", "e4", chess.Own, false},
		{"double off start rank", []string{"Pe3"}, "e3", "e5", chess.Own, false},
		{"single blocked", []string{"Pe2", "pe3"}, "e2", "e3", chess.Own, false},
		{"backward", []string{"Pe3"}, "e3", "e2", chess.Own, false},
		{"sideways", []string{"Pe3"}, "e3", "f3", chess.Own, false},
		{"diagonal empty", []string{"Pe2"}, "e2", "f3", chess.Own, false},
		{"diagonal capture", []string{"Pe2", "pf3"}, "e2", "f3", chess.Own, true},
		{"diagonal own piece", []string{"Pe2", "Nd3"}, "e2", "d3", chess.Own, true},
		{"diagonal two files", []string{"Pe2", "pg3"}, "e2", "g3", chess.Own, false},
		{"opponent single", []string{"pd7"}, "d7", "d6", chess.Opponent, true},
		{"opponent double", []string{"pd7"}, "d7", "d5", chess.Opponent, true},
		{"opponent wrong way", []string{"pd7"}, "d7", "d8", chess.Opponent, false},
		{"opponent capture", []string{"pd5", "Pe4"}, "d5", "e4", chess.Opponent, true},
		{"opponent double off start", []string{"pd5"}, "d5", "d3", chess.Opponent, false},
		{"triple advance", []string{"Pe2"}, "e2", "e5", chess.Own, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBoard(t, tt.pieces...)
			from := testutil.MustSquare(t, tt.from)
			to := testutil.MustSquare(t, tt.to)
			testutil.AssertEqual(t, IsLegal(board, from, to, chess.Pawn, tt.team), tt.want)
		})
	}
}
