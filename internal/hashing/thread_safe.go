package hashing

import (
	"sync"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// ThreadSafePositionCounter wraps PositionCounter with mutex protection for concurrent access.
type ThreadSafePositionCounter struct {
	counter *PositionCounter
	mu      sync.RWMutex
}

// NewThreadSafePositionCounter creates a new thread-safe counter.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionCounter(maxCapacity int) *ThreadSafePositionCounter {
	return &ThreadSafePositionCounter{
		counter: NewPositionCounter(maxCapacity),
	}
}

// Record atomically notes one occurrence of board.
func (c *ThreadSafePositionCounter) Record(board chess.Board) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter.Record(board)
}

// Count returns how many times board has been recorded.
func (c *ThreadSafePositionCounter) Count(board chess.Board) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.Count(board)
}

// RepeatCount returns the number of records that hit a known placement.
func (c *ThreadSafePositionCounter) RepeatCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.RepeatCount()
}

// UniqueCount returns the number of distinct placements stored.
func (c *ThreadSafePositionCounter) UniqueCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.UniqueCount()
}

// Reset clears all recorded placements.
func (c *ThreadSafePositionCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counter.Reset()
}
