// Package chess provides the board model: squares, pieces and immutable
// board snapshots.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Team identifies one of the two sides. No side-to-move is tracked.
type Team uint8

const (
	Opponent Team = iota
	Own
	NumTeams
)

var teamNames = [NumTeams]string{"opponent", "own"}

// String returns the lower-case name of the team.
func (t Team) String() string {
	if t < NumTeams {
		return teamNames[t]
	}
	return fmt.Sprintf("Team(%d)", t)
}

// Valid reports whether t is one of the two known teams.
func (t Team) Valid() bool {
	return t < NumTeams
}

// ParseTeam converts a team name ("own" or "opponent") to a Team.
func ParseTeam(s string) (Team, error) {
	for t, name := range teamNames {
		if strings.EqualFold(s, name) {
			return Team(t), nil
		}
	}
	return 0, fmt.Errorf("team %q: %w", s, errors.ErrUnknownPiece)
}

// MarshalText implements encoding.TextMarshaler.
func (t Team) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("team %d: %w", t, errors.ErrUnknownPiece)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Team) UnmarshalText(text []byte) error {
	parsed, err := ParseTeam(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PieceKind represents a chess piece type. The zero value NoKind marks an
// empty square and is never a valid kind for a piece.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"none", "pawn", "bishop", "knight", "rook", "queen", "king"}

// String returns the lower-case name of the piece kind.
func (k PieceKind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("PieceKind(%d)", k)
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k > NoKind && k < NumKinds
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := [NumKinds]byte{' ', 'P', 'B', 'N', 'R', 'Q', 'K'}
	if k < NumKinds {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a PieceKind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// ParseKind converts a piece name ("knight") or letter ("N") to a PieceKind.
func ParseKind(s string) (PieceKind, error) {
	if len(s) == 1 {
		if k := KindFromLetter(s[0]); k != NoKind {
			return k, nil
		}
	}
	for k := Pawn; k < NumKinds; k++ {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("piece kind %q: %w", s, errors.ErrUnknownPiece)
}

// MarshalText implements encoding.TextMarshaler.
func (k PieceKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("piece kind %d: %w", k, errors.ErrUnknownPiece)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PieceKind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Constants for board dimensions and algebraic coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square addresses one of the 64 board positions. File 0 is the a-file and
// rank 0 is rank 1, the Own team's back rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// SquareAt converts an index in [0, NumSquares) back to a Square.
func SquareAt(index int) Square {
	return Square{File: index % BoardSize, Rank: index / BoardSize}
}

// InBounds reports whether the square lies within [0,7]x[0,7].
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns rank*8+file. Only meaningful for in-bounds squares.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// Offset returns the square shifted by the given file and rank deltas.
func (s Square) Offset(dFile, dRank int) Square {
	return Square{File: s.File + dFile, Rank: s.Rank + dRank}
}

// String returns the algebraic name ("e4"), or the raw coordinates for an
// off-board square.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts an algebraic square name ("e4") to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file := int(name[0]) - FileBase
	if name[0] >= 'A' && name[0] <= 'H' {
		file = int(name[0]) - 'A'
	}
	sq := Square{File: file, Rank: int(name[1]) - RankBase}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MarshalText implements encoding.TextMarshaler using algebraic notation.
func (s Square) MarshalText() ([]byte, error) {
	if !s.InBounds() {
		return nil, fmt.Errorf("%s: %w", s, errors.ErrOffBoard)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Square) UnmarshalText(text []byte) error {
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// HomeRank returns the rank holding a team's major and minor pieces in the
// initial layout.
func HomeRank(team Team) int {
	if team == Own {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank holding a team's pawns in the initial layout.
func PawnRank(team Team) int {
	if team == Own {
		return 1
	}
	return BoardSize - 2
}

// Piece is a piece of a given kind and team standing on a square.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	Team     Team      `json:"team"`
	Position Square    `json:"square"`
}

// Letter returns the piece letter, uppercase for Own and lowercase for
// Opponent pieces.
func (p Piece) Letter() byte {
	c := p.Kind.Letter()
	if p.Team == Opponent && c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// Describe returns "<team> <kind>", e.g. "own knight".
func (p Piece) Describe() string {
	return p.Team.String() + " " + p.Kind.String()
}

// String returns e.g. "own knight on b1".
func (p Piece) String() string {
	return p.Describe() + " on " + p.Position.String()
}
