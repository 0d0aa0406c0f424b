package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// distance returns the absolute file and rank differences between two squares.
func distance(from, to chess.Square) (fileDiff, rankDiff int) {
	return abs(to.File - from.File), abs(to.Rank - from.Rank)
}
