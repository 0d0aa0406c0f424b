package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// PawnGeometry is the fixed forward direction and double-advance rank of a
// team's pawns.
type PawnGeometry struct {
	Direction int // +1 or -1 along the rank axis
	StartRank int
}

var pawnGeometries = [chess.NumTeams]PawnGeometry{
	chess.Own:      {Direction: 1, StartRank: chess.PawnRank(chess.Own)},
	chess.Opponent: {Direction: -1, StartRank: chess.PawnRank(chess.Opponent)},
}

// PawnGeometryFor returns the pawn geometry of team.
func PawnGeometryFor(team chess.Team) PawnGeometry {
	return pawnGeometries[team]
}

// pawnRule allows a single advance onto an empty square, a double advance
// from the start rank across two empty squares, or a diagonal step onto an
// occupied square. There is no en passant.
func pawnRule(board chess.Board, from, to chess.Square, team chess.Team) bool {
	geo := PawnGeometryFor(team)
	dx := to.File - from.File
	dy := to.Rank - from.Rank

	switch {
	case dx == 0 && dy == geo.Direction:
		return !board.IsOccupied(to)
	case dx == 0 && dy == 2*geo.Direction:
		if from.Rank != geo.StartRank {
			return false
		}
		return !board.IsOccupied(from.Offset(0, geo.Direction)) && !board.IsOccupied(to)
	case abs(dx) == 1 && dy == geo.Direction:
		return board.IsOccupied(to)
	}
	return false
}
