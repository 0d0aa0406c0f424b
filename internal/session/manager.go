// Package session owns the authoritative boards of connected clients and
// serializes propose, validate and apply on each of them.
package session

import (
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/hashing"
)

// subscriberBuffer is the number of snapshots a slow subscriber may lag
// behind before updates to it are dropped.
const subscriberBuffer = 8

// Manager holds boards by id.
type Manager struct {
	boards       map[string]*managedBoard
	mu           sync.RWMutex
	startFEN     string
	maxPositions int
	logger       *log.Logger
}

type managedBoard struct {
	id          string
	mu          sync.Mutex
	board       chess.Board
	positions   *hashing.ThreadSafePositionCounter
	repetitions int // occurrences of board, as reported when it was recorded
	subscribers map[int]chan Snapshot
	nextSub     int
}

// Option configures a Manager.
type Option func(*Manager)

// WithStartFEN sets the position used when Create is given no FEN.
func WithStartFEN(fen string) Option {
	return func(m *Manager) {
		m.startFEN = fen
	}
}

// WithMaxPositions caps the distinct placements remembered per board.
func WithMaxPositions(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.maxPositions = n
		}
	}
}

// WithLogger sets the logger for board lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		boards: make(map[string]*managedBoard),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) parse(fen string) (chess.Board, error) {
	if fen == "" {
		fen = m.startFEN
	}
	if fen == "" {
		return chess.InitialLayout(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// Create registers a new board. An empty fen yields the configured start
// position, or the standard layout when none is configured.
func (m *Manager) Create(fen string) (Snapshot, error) {
	board, err := m.parse(fen)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "create board")
	}

	mb := &managedBoard{
		id:          uuid.New().String(),
		board:       board,
		positions:   hashing.NewThreadSafePositionCounter(m.maxPositions),
		subscribers: make(map[int]chan Snapshot),
	}
	mb.repetitions = mb.positions.Record(board)

	m.mu.Lock()
	m.boards[mb.id] = mb
	m.mu.Unlock()

	m.logger.Printf("board %s created with %d pieces", mb.id, board.Len())
	return newSnapshot(mb.id, board, mb.repetitions), nil
}

func (m *Manager) lookup(id string) (*managedBoard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mb, ok := m.boards[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrBoardNotFound, "board %q", id)
	}
	return mb, nil
}

// Get returns the current snapshot of a board.
func (m *Manager) Get(id string) (Snapshot, error) {
	mb, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.snapshot(), nil
}

// Delete removes a board and closes its subscriptions.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	mb, ok := m.boards[id]
	delete(m.boards, id)
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(errors.ErrBoardNotFound, "board %q", id)
	}

	mb.mu.Lock()
	for key, ch := range mb.subscribers {
		delete(mb.subscribers, key)
		close(ch)
	}
	mb.mu.Unlock()

	m.logger.Printf("board %s deleted after %d positions, %d repeated",
		id, mb.positions.UniqueCount(), mb.positions.RepeatCount())
	return nil
}

// Len returns the number of managed boards.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.boards)
}

// Propose validates a move against the board's current snapshot and, when
// legal, replaces the snapshot with the moved one. An illegal move is not
// an error; the verdict reports it and the board is unchanged. Errors are
// reserved for an unknown board, a stale fingerprint or an empty origin.
func (m *Manager) Propose(id string, p Proposal) (Verdict, error) {
	mb, err := m.lookup(id)
	if err != nil {
		return Verdict{}, err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	move := chess.Move{From: p.From, To: p.To}
	if p.Fingerprint != 0 && p.Fingerprint != hashing.Fingerprint(mb.board) {
		return Verdict{}, &errors.MoveError{
			Err:   errors.ErrStalePosition,
			From:  p.From.String(),
			To:    p.To.String(),
			Board: id,
		}
	}

	piece, ok := mb.board.OccupantAt(p.From)
	if !ok {
		sentinel := errors.ErrNoPiece
		if !p.From.InBounds() {
			sentinel = errors.ErrOffBoard
		}
		return Verdict{}, &errors.MoveError{Err: sentinel, From: p.From.String(), Board: id}
	}

	if !engine.IsLegalMove(mb.board, move) {
		m.logger.Printf("board %s: %s %v rejected", id, piece.Describe(), move)
		return Verdict{Move: move, Piece: piece, Board: mb.snapshot()}, nil
	}

	var captured *chess.Piece
	if occupant, ok := mb.board.OccupantAt(p.To); ok {
		captured = &occupant
	}
	next, err := mb.board.ApplyMove(p.From, p.To)
	if err != nil {
		return Verdict{}, err
	}
	mb.board = next
	mb.repetitions = mb.positions.Record(next)

	snap := mb.snapshot()
	mb.publish(snap)
	m.logger.Printf("board %s: %s %v", id, piece.Describe(), move)
	return Verdict{Legal: true, Move: move, Piece: piece, Captured: captured, Board: snap}, nil
}

// Reset replaces a board's position. An empty fen behaves as in Create.
func (m *Manager) Reset(id, fen string) (Snapshot, error) {
	mb, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	board, err := m.parse(fen)
	if err != nil {
		return Snapshot{}, err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()
	m.logger.Printf("board %s reset, leaving a placement seen %d times", id, mb.positions.Count(mb.board))
	mb.board = board
	mb.positions.Reset()
	mb.repetitions = mb.positions.Record(board)

	snap := mb.snapshot()
	mb.publish(snap)
	return snap, nil
}

// Subscribe returns a channel receiving the snapshot after every accepted
// move or reset of the board, and a function ending the subscription. The
// channel is closed when the subscription ends or the board is deleted.
func (m *Manager) Subscribe(id string) (<-chan Snapshot, func(), error) {
	mb, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()
	key := mb.nextSub
	mb.nextSub++
	ch := make(chan Snapshot, subscriberBuffer)
	mb.subscribers[key] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			mb.mu.Lock()
			defer mb.mu.Unlock()
			if ch, ok := mb.subscribers[key]; ok {
				delete(mb.subscribers, key)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

// snapshot must be called with mb.mu held.
func (mb *managedBoard) snapshot() Snapshot {
	return newSnapshot(mb.id, mb.board, mb.repetitions)
}

// publish must be called with mb.mu held. Subscribers that are full miss
// the update rather than block the board.
func (mb *managedBoard) publish(snap Snapshot) {
	for _, ch := range mb.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
}
