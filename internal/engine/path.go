package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a file, a rank or a diagonal.
func isPathClear(board chess.Board, from, to chess.Square) bool {
	for _, sq := range Between(from, to) {
		if board.IsOccupied(sq) {
			return false
		}
	}
	return true
}

// Between returns the squares strictly between from and to along a file,
// rank or diagonal, ordered from origin to destination. It returns nil when
// the squares are not aligned or are adjacent.
func Between(from, to chess.Square) []chess.Square {
	fileDiff, rankDiff := distance(from, to)
	if fileDiff != 0 && rankDiff != 0 && fileDiff != rankDiff {
		return nil
	}

	steps := max(fileDiff, rankDiff) - 1
	if steps <= 0 {
		return nil
	}

	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	squares := make([]chess.Square, 0, steps)
	sq := from
	for i := 0; i < steps; i++ {
		sq = sq.Offset(fileDir, rankDir)
		squares = append(squares, sq)
	}
	return squares
}
