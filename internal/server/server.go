// Package server exposes managed boards over HTTP and websockets.
package server

import (
	stderrors "errors"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/session"
)

// Server wires a session.Manager to a fiber application.
type Server struct {
	app     *fiber.App
	cfg     *config.Config
	manager *session.Manager
	logger  *log.Logger
}

// New builds the application and registers every route.
func New(cfg *config.Config, manager *session.Manager, l *log.Logger) *Server {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s := &Server{
		cfg:     cfg,
		manager: manager,
		logger:  l,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "chessboard",
		DisableStartupMessage: cfg.Verbosity < 2,
		ErrorHandler:          errorHandler,
	})

	s.app.Use(recover.New())
	if cfg.Verbosity > 0 {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Post("/legal", s.checkLegal)

	boards := api.Group("/boards")
	boards.Post("/", s.createBoard)
	boards.Get("/:id", s.getBoard)
	boards.Delete("/:id", s.deleteBoard)
	boards.Get("/:id/moves", s.listMoves)
	boards.Post("/:id/moves", s.proposeMove)

	s.app.Use("/ws", upgradeOnly)
	s.app.Get("/ws/boards/:id", websocket.New(s.handleConnection, websocket.Config{
		ReadBufferSize:  s.cfg.Server.ReadBufferSize,
		WriteBufferSize: s.cfg.Server.WriteBufferSize,
		Origins:         splitOrigins(s.cfg.Server.AllowOrigins),
	}))
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.logger.Printf("listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the listener and waits for active requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// upgradeOnly rejects plain HTTP requests to websocket routes.
func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrBoardNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrStalePosition):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrNoPiece), stderrors.Is(err, errors.ErrOffBoard):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidSquare),
		stderrors.Is(err, errors.ErrUnknownPiece):
		return fiber.StatusBadRequest
	}
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
