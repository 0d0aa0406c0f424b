package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/hashing"
	"github.com/lgbarn/chessboard-go/internal/processing"
	"github.com/lgbarn/chessboard-go/internal/session"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	From        chess.Square `json:"from"`
	To          chess.Square `json:"to"`
	Fingerprint string       `json:"fingerprint"`
}

// legalRequest fields other than fen are required; pointers tell a
// missing field apart from a1 or the zero team.
type legalRequest struct {
	FEN  string           `json:"fen"`
	From *chess.Square    `json:"from"`
	To   *chess.Square    `json:"to"`
	Kind *chess.PieceKind `json:"kind"`
	Team *chess.Team      `json:"team"`
}

func (r legalRequest) missing() string {
	switch {
	case r.From == nil:
		return "from"
	case r.To == nil:
		return "to"
	case r.Kind == nil:
		return "kind"
	case r.Team == nil:
		return "team"
	}
	return ""
}

func badRequest(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func (r moveRequest) proposal() (session.Proposal, error) {
	fp, err := hashing.ParseFingerprint(r.Fingerprint)
	if err != nil {
		return session.Proposal{}, badRequest(err)
	}
	return session.Proposal{From: r.From, To: r.To, Fingerprint: fp}, nil
}

func (s *Server) createBoard(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(err)
		}
	}

	snap, err := s.manager.Create(req.FEN)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

func (s *Server) getBoard(c *fiber.Ctx) error {
	snap, err := s.manager.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

func (s *Server) deleteBoard(c *fiber.Ctx) error {
	if err := s.manager.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listMoves returns the destinations of one piece when ?from= is given,
// otherwise the target map of every piece on the board.
func (s *Server) listMoves(c *fiber.Ctx) error {
	snap, err := s.manager.Get(c.Params("id"))
	if err != nil {
		return err
	}

	if from := c.Query("from"); from != "" {
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return err
		}
		targets := engine.LegalDestinations(snap.Board, sq)
		if targets == nil {
			targets = []chess.Square{}
		}
		return c.JSON(fiber.Map{
			"from":    sq,
			"targets": targets,
		})
	}

	targets, err := processing.LegalTargets(c.UserContext(), snap.Board, processing.Options{
		Workers:    s.cfg.Workers,
		BufferSize: s.cfg.BufferSize,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"fingerprint": snap.Fingerprint,
		"count":       targets.Count(),
		"targets":     targets,
	})
}

func (s *Server) proposeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	p, err := req.proposal()
	if err != nil {
		return err
	}

	verdict, err := s.manager.Propose(c.Params("id"), p)
	if err != nil {
		return err
	}
	return c.JSON(verdict)
}

// checkLegal answers a single stateless legality query.
func (s *Server) checkLegal(c *fiber.Ctx) error {
	var req legalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if field := req.missing(); field != "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing field: "+field)
	}

	board := chess.InitialLayout()
	if req.FEN != "" {
		var err error
		if board, err = engine.NewBoardFromFEN(req.FEN); err != nil {
			return err
		}
	}
	return c.JSON(fiber.Map{
		"legal": engine.IsLegal(board, *req.From, *req.To, *req.Kind, *req.Team),
	})
}
