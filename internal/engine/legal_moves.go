package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// LegalDestinations returns every square the piece on from may move to, in
// square order. It returns nil when from is empty.
func LegalDestinations(board chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.OccupantAt(from)
	if !ok {
		return nil
	}

	var targets []chess.Square
	for i := 0; i < chess.NumSquares; i++ {
		to := chess.SquareAt(i)
		if IsLegal(board, from, to, piece.Kind, piece.Team) {
			targets = append(targets, to)
		}
	}
	return targets
}

// HasLegalMoves returns true if the piece on from has at least one legal
// destination.
func HasLegalMoves(board chess.Board, from chess.Square) bool {
	piece, ok := board.OccupantAt(from)
	if !ok {
		return false
	}
	for i := 0; i < chess.NumSquares; i++ {
		if IsLegal(board, from, chess.SquareAt(i), piece.Kind, piece.Team) {
			return true
		}
	}
	return false
}
