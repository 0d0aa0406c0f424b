package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// cell is the occupancy of one square. A zero cell is empty.
type cell struct {
	kind PieceKind
	team Team
}

// Board is an immutable snapshot of which piece occupies which square.
// Board is a value: copies are independent, and every operation that
// changes the position returns a new Board.
type Board struct {
	cells [NumSquares]cell
	count int
}

// backRank lists the initial back rank pieces from the a-file to the h-file.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialLayout returns the standard starting position.
func InitialLayout() Board {
	var b Board
	for _, team := range []Team{Own, Opponent} {
		for file := 0; file < BoardSize; file++ {
			b.put(Sq(file, HomeRank(team)), backRank[file], team)
			b.put(Sq(file, PawnRank(team)), Pawn, team)
		}
	}
	return b
}

// NewBoard builds a board holding exactly the given pieces.
func NewBoard(pieces ...Piece) (Board, error) {
	var b Board
	for _, p := range pieces {
		if !p.Kind.Valid() || !p.Team.Valid() {
			return Board{}, &errors.MoveError{Err: errors.ErrUnknownPiece, To: p.Position.String(), Piece: p.Describe()}
		}
		if !p.Position.InBounds() {
			return Board{}, &errors.MoveError{Err: errors.ErrOffBoard, To: p.Position.String(), Piece: p.Describe()}
		}
		if b.IsOccupied(p.Position) {
			return Board{}, &errors.MoveError{Err: errors.ErrSquareOccupied, To: p.Position.String(), Piece: p.Describe()}
		}
		b.put(p.Position, p.Kind, p.Team)
	}
	return b, nil
}

// MustNewBoard is like NewBoard but panics on error.
func MustNewBoard(pieces ...Piece) Board {
	b, err := NewBoard(pieces...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) put(sq Square, kind PieceKind, team Team) {
	if b.cells[sq.Index()].kind == NoKind {
		b.count++
	}
	b.cells[sq.Index()] = cell{kind: kind, team: team}
}

func (b *Board) clear(sq Square) {
	if b.cells[sq.Index()].kind != NoKind {
		b.count--
	}
	b.cells[sq.Index()] = cell{}
}

// OccupantAt returns the piece on sq. The boolean is false when the square
// is empty or off the board.
func (b Board) OccupantAt(sq Square) (Piece, bool) {
	if !sq.InBounds() {
		return Piece{}, false
	}
	c := b.cells[sq.Index()]
	if c.kind == NoKind {
		return Piece{}, false
	}
	return Piece{Kind: c.kind, Team: c.team, Position: sq}, true
}

// IsOccupied reports whether a piece stands on sq.
func (b Board) IsOccupied(sq Square) bool {
	return sq.InBounds() && b.cells[sq.Index()].kind != NoKind
}

// Len returns the number of pieces on the board.
func (b Board) Len() int {
	return b.count
}

// Pieces returns every piece on the board in square order (a1, b1, ... h8).
func (b Board) Pieces() []Piece {
	pieces := make([]Piece, 0, b.count)
	for i, c := range b.cells {
		if c.kind != NoKind {
			pieces = append(pieces, Piece{Kind: c.kind, Team: c.team, Position: SquareAt(i)})
		}
	}
	return pieces
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b Board) Equal(other Board) bool {
	return b == other
}

// ApplyMove relocates the piece on from to to, removing any piece already
// standing on to. It performs no legality checking. The receiver is left
// unchanged and the resulting position is returned.
func (b Board) ApplyMove(from, to Square) (Board, error) {
	if !from.InBounds() || !to.InBounds() {
		return b, &errors.MoveError{Err: errors.ErrOffBoard, From: from.String(), To: to.String()}
	}
	mover, ok := b.OccupantAt(from)
	if !ok {
		return b, &errors.MoveError{Err: errors.ErrNoPiece, From: from.String(), To: to.String()}
	}
	if from == to {
		return b, nil
	}

	next := b
	next.clear(to)
	next.clear(from)
	next.put(to, mover.Kind, mover.Team)
	return next, nil
}

// MustApplyMove is like ApplyMove but panics on a precondition violation.
func (b Board) MustApplyMove(from, to Square) Board {
	next, err := b.ApplyMove(from, to)
	if err != nil {
		panic(fmt.Sprintf("chess: %v", err))
	}
	return next
}
