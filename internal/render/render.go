// Package render draws boards for terminals.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Options controls how a board is drawn.
type Options struct {
	// Color enables ANSI colours. Without it, squares are plain text and
	// highlighted squares carry a '*' marker.
	Color bool

	// Highlight marks squares, typically the legal targets of a piece.
	Highlight []chess.Square

	// Flip draws the board as seen from the Opponent side: rank 1 at
	// the top and the h-file on the left.
	Flip bool
}

// Square backgrounds and piece foregrounds.
var (
	lightSquare  = color.BgHiWhite
	darkSquare   = color.BgGreen
	markedSquare = color.BgYellow
	ownPiece     = color.FgHiBlue
	enemyPiece   = color.FgRed
)

// Board writes board to w, rank labels on the left and file labels below.
func Board(w io.Writer, board chess.Board, opts Options) error {
	bw := bufio.NewWriter(w)

	marked := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		marked[sq] = true
	}

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if opts.Flip {
			rank = row
		}
		bw.WriteByte(byte(chess.RankBase + rank))
		bw.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(fileAt(col, opts.Flip), rank)
			if opts.Color {
				bw.WriteString(colorCell(board, sq, marked[sq]))
			} else {
				bw.WriteString(plainCell(board, sq, marked[sq]))
			}
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		bw.WriteByte(' ')
		bw.WriteByte(byte(chess.FileBase + fileAt(col, opts.Flip)))
		if opts.Color {
			bw.WriteByte(' ')
		}
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func fileAt(col int, flip bool) int {
	if flip {
		return chess.BoardSize - 1 - col
	}
	return col
}

// plainCell is two characters wide: a marker and the piece letter.
func plainCell(board chess.Board, sq chess.Square, marked bool) string {
	cell := []byte{' ', '.'}
	if marked {
		cell[0] = '*'
	}
	if p, ok := board.OccupantAt(sq); ok {
		cell[1] = p.Letter()
	}
	return string(cell)
}

// colorCell is three characters wide on a coloured background.
func colorCell(board chess.Board, sq chess.Square, marked bool) string {
	bg := darkSquare
	if (sq.File+sq.Rank)%2 == 1 {
		bg = lightSquare
	}
	if marked {
		bg = markedSquare
	}

	c := color.New(bg)
	text := "   "
	if p, ok := board.OccupantAt(sq); ok {
		fg := enemyPiece
		if p.Team == chess.Own {
			fg = ownPiece
		}
		c.Add(fg, color.Bold)
		text = " " + string(p.Letter()) + " "
	}
	c.EnableColor()
	return c.Sprint(text)
}
