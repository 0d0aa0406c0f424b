// Package worker provides a worker pool for evaluating legality queries in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// Query asks whether a piece of Kind and Team may move From one square To another.
type Query struct {
	Index int // Original index for tracking
	From  chess.Square
	To    chess.Square
	Kind  chess.PieceKind
	Team  chess.Team
}

// Verdict is the answer to one Query.
type Verdict struct {
	Query
	Legal bool
}

// ProcessFunc is the function signature for answering a query.
type ProcessFunc func(q Query) Verdict

// Evaluate returns a ProcessFunc answering queries against one board
// snapshot with engine.IsLegal. The snapshot is copied, so workers never
// share it with the caller.
func Evaluate(board chess.Board) ProcessFunc {
	return func(q Query) Verdict {
		return Verdict{Query: q, Legal: engine.IsLegal(board, q.From, q.To, q.Kind, q.Team)}
	}
}

// Pool manages a pool of workers for parallel query evaluation.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Query
	resultChan  chan Verdict
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan Query, p.bufferSize)
	p.resultChan = make(chan Verdict, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for q := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(q)
	}
}

// Submit submits a query for evaluation.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(q Query) {
	p.workChan <- q
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of verdicts.
func (p *Pool) Results() <-chan Verdict {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// BufferSize returns the capacity of the work and result channels.
func (p *Pool) BufferSize() int {
	return p.bufferSize
}
