package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

func knightRule(_ chess.Board, from, to chess.Square, _ chess.Team) bool {
	fileDiff, rankDiff := distance(from, to)
	return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)
}

func bishopRule(board chess.Board, from, to chess.Square, _ chess.Team) bool {
	fileDiff, rankDiff := distance(from, to)
	if fileDiff != rankDiff || fileDiff == 0 {
		return false
	}
	return isPathClear(board, from, to)
}

func rookRule(board chess.Board, from, to chess.Square, _ chess.Team) bool {
	fileDiff, rankDiff := distance(from, to)
	if (fileDiff == 0) == (rankDiff == 0) {
		return false
	}
	return isPathClear(board, from, to)
}

func queenRule(board chess.Board, from, to chess.Square, team chess.Team) bool {
	return bishopRule(board, from, to, team) || rookRule(board, from, to, team)
}

// kingRule allows a single step in any direction. There is no castling.
func kingRule(_ chess.Board, from, to chess.Square, _ chess.Team) bool {
	fileDiff, rankDiff := distance(from, to)
	return fileDiff <= 1 && rankDiff <= 1 && fileDiff+rankDiff > 0
}
