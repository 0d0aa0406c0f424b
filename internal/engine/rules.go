// Package engine provides chess move validation.
//
// The validator is a pure function of a board snapshot, a piece kind and
// team, an origin and a destination. It performs no turn enforcement and
// allows a piece to land on any occupied square, including one held by
// its own team.
package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Rule decides whether a piece of one kind may move from one square to
// another. Rules are only called with distinct, in-bounds squares.
type Rule func(board chess.Board, from, to chess.Square, team chess.Team) bool

// rules holds one Rule per piece kind. NoKind has no rule.
var rules = [chess.NumKinds]Rule{
	chess.Pawn:   pawnRule,
	chess.Bishop: bishopRule,
	chess.Knight: knightRule,
	chess.Rook:   rookRule,
	chess.Queen:  queenRule,
	chess.King:   kingRule,
}

// IsLegal reports whether a piece of the given kind and team may move
// from one square to another on board. It never modifies board and
// returns false for every malformed query.
func IsLegal(board chess.Board, from, to chess.Square, kind chess.PieceKind, team chess.Team) bool {
	if from == to {
		return false
	}
	if !to.InBounds() || !from.InBounds() {
		return false
	}
	if !kind.Valid() || !team.Valid() {
		return false
	}
	return rules[kind](board, from, to, team)
}

// IsLegalMove is IsLegal for the piece currently standing on m.From.
// It returns false when the origin is empty.
func IsLegalMove(board chess.Board, m chess.Move) bool {
	piece, ok := board.OccupantAt(m.From)
	if !ok {
		return false
	}
	return IsLegal(board, m.From, m.To, piece.Kind, piece.Team)
}
