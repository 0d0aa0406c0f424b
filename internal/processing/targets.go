// Package processing evaluates whole boards with the legality worker pool.
package processing

import (
	"context"
	"slices"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/worker"
)

// Targets maps each occupied origin to its legal destinations.
type Targets map[chess.Square][]chess.Square

// Options sizes the pool behind LegalTargets. Values below 1 fall back to
// the pool defaults.
type Options struct {
	Workers    int
	BufferSize int
}

func newPool(board chess.Board, opts Options) *worker.Pool {
	return worker.NewPoolWithOptions(worker.Evaluate(board),
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(opts.BufferSize))
}

// LegalTargets asks the validator about every (occupied origin, square)
// pair on board, spread across the pool's workers. Each origin maps to its
// legal destinations in square order; pieces with none map to an empty
// slice. The result matches engine.LegalDestinations for every origin.
// Cancelling ctx stops the pool and returns ctx.Err().
func LegalTargets(ctx context.Context, board chess.Board, opts Options) (Targets, error) {
	pieces := board.Pieces()
	targets := make(Targets, len(pieces))
	if len(pieces) == 0 {
		return targets, ctx.Err()
	}

	pool := newPool(board, opts)
	pool.Start()
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	go func() {
		defer pool.Close()
		i := 0
		for _, p := range pieces {
			for to := 0; to < chess.NumSquares; to++ {
				if pool.IsStopped() {
					return
				}
				pool.Submit(worker.Query{
					Index: i,
					From:  p.Position,
					To:    chess.SquareAt(to),
					Kind:  p.Kind,
					Team:  p.Team,
				})
				i++
			}
		}
	}()

	found := make(map[chess.Square][]chess.Square, len(pieces))
	for v := range pool.Results() {
		if v.Legal {
			found[v.From] = append(found[v.From], v.To)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, p := range pieces {
		dests := found[p.Position]
		slices.SortFunc(dests, func(a, b chess.Square) int { return a.Index() - b.Index() })
		if dests == nil {
			dests = []chess.Square{}
		}
		targets[p.Position] = dests
	}
	return targets, nil
}

// Count returns the total number of legal moves in t.
func (t Targets) Count() int {
	n := 0
	for _, dests := range t {
		n += len(dests)
	}
	return n
}
