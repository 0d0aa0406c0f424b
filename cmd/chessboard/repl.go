package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/render"
)

// errQuit ends the command loop.
var errQuit = stderrors.New("quit")

// Terminal is the interactive collaborator: it owns the board, asks the
// validator about each typed move and applies the accepted ones.
type Terminal struct {
	cfg    *config.Config
	board  chess.Board
	start  chess.Board
	flip   bool
	out    io.Writer
	logger *log.Logger

	accepted int
	rejected int
}

// NewTerminal creates a terminal on the configured start position.
func NewTerminal(cfg *config.Config, logger *log.Logger) (*Terminal, error) {
	start := chess.InitialLayout()
	if cfg.StartFEN != "" {
		var err error
		if start, err = engine.NewBoardFromFEN(cfg.StartFEN); err != nil {
			return nil, err
		}
	}
	return &Terminal{
		cfg:    cfg,
		board:  start,
		start:  start,
		out:    cfg.Output,
		logger: logger,
	}, nil
}

// Board returns the current snapshot.
func (t *Terminal) Board() chess.Board {
	return t.board
}

// Run reads commands from r until EOF or quit.
func (t *Terminal) Run(r io.Reader) error {
	if err := t.draw(nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(t.out, "> ")
		if !scanner.Scan() {
			break
		}
		err := t.Execute(scanner.Text())
		if stderrors.Is(err, errQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(t.out, "error: %v\n", err)
		}
	}

	if t.cfg.Verbosity > 0 {
		t.logger.Printf("%d moves accepted, %d rejected", t.accepted, t.rejected)
	}
	return scanner.Err()
}

// Execute runs one command line.
func (t *Terminal) Execute(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		t.usage()
		return nil
	case "fen":
		fmt.Fprintln(t.out, engine.BoardToFEN(t.board))
		return nil
	case "board", "show":
		return t.draw(nil)
	case "reset":
		t.board = t.start
		return t.draw(nil)
	case "moves":
		if len(fields) != 2 {
			return fmt.Errorf("usage: moves <square>: %w", errors.ErrInvalidSquare)
		}
		return t.showMoves(fields[1])
	}

	m, err := chess.ParseMove(line)
	if err != nil {
		return err
	}
	return t.move(m)
}

func (t *Terminal) move(m chess.Move) error {
	piece, ok := t.board.OccupantAt(m.From)
	if !ok {
		return &errors.MoveError{Err: errors.ErrNoPiece, From: m.From.String()}
	}

	if !engine.IsLegalMove(t.board, m) {
		t.rejected++
		if t.cfg.Verbosity > 1 {
			t.logger.Printf("rejected %s %v", piece.Describe(), m)
		}
		fmt.Fprintf(t.out, "illegal: %s cannot move %v, it stays on %v\n", piece.Describe(), m, m.From)
		return nil
	}

	captured, took := t.board.OccupantAt(m.To)
	next, err := t.board.ApplyMove(m.From, m.To)
	if err != nil {
		return err
	}
	t.board = next
	t.accepted++
	if t.cfg.Verbosity > 1 {
		t.logger.Printf("applied %s %v", piece.Describe(), m)
	}

	if took {
		fmt.Fprintf(t.out, "%s takes %s on %v\n", piece.Describe(), captured.Describe(), m.To)
	}
	return t.draw(nil)
}

func (t *Terminal) showMoves(name string) error {
	from, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	piece, ok := t.board.OccupantAt(from)
	if !ok {
		return &errors.MoveError{Err: errors.ErrNoPiece, From: from.String()}
	}

	if !engine.HasLegalMoves(t.board, from) {
		fmt.Fprintf(t.out, "%s has no legal moves\n", piece)
		return nil
	}

	targets := engine.LegalDestinations(t.board, from)
	if err := t.draw(targets); err != nil {
		return err
	}
	names := make([]string, len(targets))
	for i, sq := range targets {
		names[i] = sq.String()
	}
	fmt.Fprintf(t.out, "%s: %s\n", piece, strings.Join(names, " "))
	return nil
}

func (t *Terminal) draw(highlight []chess.Square) error {
	return render.Board(t.out, t.board, render.Options{
		Color:     t.cfg.Color,
		Highlight: highlight,
		Flip:      t.flip,
	})
}

func (t *Terminal) usage() {
	fmt.Fprint(t.out, `Commands:
  e2e4, e2 e4, e2-e4   move the piece on e2 to e4
  moves <square>       show where the piece on <square> may go
  fen                  print the position
  board                redraw the board
  reset                return to the starting position
  quit                 leave
`)
}
