package hashing

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

func BenchmarkFingerprint(b *testing.B) {
	board := chess.InitialLayout()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Fingerprint(board)
	}
}

func BenchmarkPositionCounter_Record(b *testing.B) {
	c := NewPositionCounter(0)
	board := chess.InitialLayout()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Record(board)
	}
}
