package session

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/hashing"
)

// Snapshot is an immutable view of one managed board.
type Snapshot struct {
	ID          string        `json:"id"`
	FEN         string        `json:"fen"`
	Fingerprint string        `json:"fingerprint"`
	Pieces      []chess.Piece `json:"pieces"`
	Repetitions int           `json:"repetitions"`
	Board       chess.Board   `json:"-"`
}

// Proposal is a drop gesture: move the piece on From to To. A non-zero
// Fingerprint must match the board's current placement.
type Proposal struct {
	From        chess.Square
	To          chess.Square
	Fingerprint uint64
}

// Verdict is the outcome of a proposal. When Legal is false the board is
// unchanged and the piece snaps back.
type Verdict struct {
	Legal    bool         `json:"legal"`
	Move     chess.Move   `json:"move"`
	Piece    chess.Piece  `json:"piece"`
	Captured *chess.Piece `json:"captured,omitempty"`
	Board    Snapshot     `json:"board"`
}

func newSnapshot(id string, board chess.Board, repetitions int) Snapshot {
	pieces := board.Pieces()
	if pieces == nil {
		pieces = []chess.Piece{}
	}
	return Snapshot{
		ID:          id,
		FEN:         engine.BoardToFEN(board),
		Fingerprint: hashing.FingerprintString(board),
		Pieces:      pieces,
		Repetitions: repetitions,
		Board:       board,
	}
}
