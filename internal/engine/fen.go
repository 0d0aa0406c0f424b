package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// InitialFEN is the piece placement field of the standard starting position.
// Uppercase letters are Own pieces and lowercase letters Opponent pieces.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement field is read; side to move, castling, en passant and clock
// fields are accepted and ignored.
func NewBoardFromFEN(fen string) (chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Board{}, err
	}

	board, err := chess.NewBoard(pieces...)
	if err != nil {
		return chess.Board{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]chess.Piece, error) {
	var pieces []chess.Piece
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return nil, fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return nil, fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
		default:
			kind := chess.NoKind
			if c < 0x80 {
				kind = chess.KindFromLetter(byte(c))
			}
			if kind == chess.NoKind {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank < 0 {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			team := chess.Own
			if c >= 'a' && c <= 'z' {
				team = chess.Opponent
			}
			pieces = append(pieces, chess.Piece{Kind: kind, Team: team, Position: chess.Sq(file, rank)})
			file++
		}
	}

	if rank != 0 {
		return nil, fmt.Errorf("placement covers %d ranks: %w", chess.BoardSize-rank, errors.ErrInvalidFEN)
	}
	if file != chess.BoardSize {
		return nil, fmt.Errorf("rank 1 has %d files: %w", file, errors.ErrInvalidFEN)
	}
	return pieces, nil
}

// BoardToFEN converts a board to the piece placement field of a FEN string.
func BoardToFEN(board chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.OccupantAt(chess.Sq(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
