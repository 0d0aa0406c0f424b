package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestThreadSafePositionCounter_Concurrent(t *testing.T) {
	counter := NewThreadSafePositionCounter(0)
	board := chess.InitialLayout()

	const numRecords = 100
	const numWorkers = 10

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numRecords/numWorkers; j++ {
				counter.Record(board)
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, counter.Count(board), numRecords)
	testutil.AssertEqual(t, counter.RepeatCount(), numRecords-1)
	testutil.AssertEqual(t, counter.UniqueCount(), 1)
}

func TestThreadSafePositionCounter_DifferentPositions(t *testing.T) {
	counter := NewThreadSafePositionCounter(0)

	var wg sync.WaitGroup
	for file := 0; file < chess.BoardSize; file++ {
		wg.Add(1)
		go func(file int) {
			defer wg.Done()
			board := chess.MustNewBoard(chess.Piece{Kind: chess.King, Team: chess.Own, Position: chess.Sq(file, 0)})
			counter.Record(board)
		}(file)
	}
	wg.Wait()

	testutil.AssertEqual(t, counter.UniqueCount(), chess.BoardSize)
	testutil.AssertEqual(t, counter.RepeatCount(), 0)

	counter.Reset()
	testutil.AssertEqual(t, counter.UniqueCount(), 0)
}
