// Package hashing fingerprints board placements and counts how often a
// placement recurs.
package hashing

import (
	"hash/fnv"
	"strconv"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Fingerprint returns a 64-bit FNV-1a hash of the piece placement. Equal
// boards always share a fingerprint. The result is never zero, so zero can
// stand for "no fingerprint" in requests.
func Fingerprint(board chess.Board) uint64 {
	var buf [chess.NumSquares]byte
	for i := range buf {
		if p, ok := board.OccupantAt(chess.SquareAt(i)); ok {
			buf[i] = byte(p.Kind)<<1 | byte(p.Team)
		}
	}

	h := fnv.New64a()
	h.Write(buf[:])
	if sum := h.Sum64(); sum != 0 {
		return sum
	}
	return 1
}

// FingerprintString returns the fingerprint as 16 lowercase hex digits.
func FingerprintString(board chess.Board) string {
	return FormatFingerprint(Fingerprint(board))
}

// FormatFingerprint renders a fingerprint as 16 lowercase hex digits.
func FormatFingerprint(fp uint64) string {
	s := strconv.FormatUint(fp, 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}

// ParseFingerprint parses the hex form produced by FormatFingerprint.
// The empty string parses as zero.
func ParseFingerprint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 16, 64)
}

// PositionCounter tracks how many times each placement has been seen.
type PositionCounter struct {
	// counts maps a fingerprint to its occurrence count
	counts map[uint64]int
	// maxCapacity limits distinct placements (0 = unlimited)
	maxCapacity int
	// repeats counts records of an already seen placement
	repeats int
}

// NewPositionCounter creates a counter. maxCapacity of 0 means unlimited.
func NewPositionCounter(maxCapacity int) *PositionCounter {
	return &PositionCounter{
		counts:      make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// Record notes one occurrence of board and returns how many times the
// placement has now been seen. Once the counter is full, new placements
// are reported as seen once but not stored.
func (c *PositionCounter) Record(board chess.Board) int {
	fp := Fingerprint(board)
	n, ok := c.counts[fp]
	if ok {
		c.repeats++
	} else if c.IsFull() {
		return 1
	}
	c.counts[fp] = n + 1
	return n + 1
}

// Count returns how many times board has been recorded.
func (c *PositionCounter) Count(board chess.Board) int {
	return c.counts[Fingerprint(board)]
}

// RepeatCount returns the number of records that hit a known placement.
func (c *PositionCounter) RepeatCount() int {
	return c.repeats
}

// UniqueCount returns the number of distinct placements stored.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}

// IsFull returns true if the counter has reached its capacity limit.
func (c *PositionCounter) IsFull() bool {
	return c.maxCapacity > 0 && len(c.counts) >= c.maxCapacity
}

// Reset clears all recorded placements.
func (c *PositionCounter) Reset() {
	c.counts = make(map[uint64]int)
	c.repeats = 0
}
