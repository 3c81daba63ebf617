package engine

import (
	"crypto/rand"
)

// FloatSource produces floats in [0, 1). Wheel spins draw from a source so
// tests and replays can substitute a deterministic stream.
type FloatSource interface {
	NextFloat() float64
}

// SeededSource is a deterministic FloatSource: the same seeds and nonce
// always replay the same float sequence.
type SeededSource struct {
	gen *ByteGenerator
}

// NewSeededSource creates a source positioned at the start of the stream.
func NewSeededSource(serverSeed, clientSeed string, nonce uint64) *SeededSource {
	return &SeededSource{gen: NewByteGenerator(serverSeed, clientSeed, nonce, 0)}
}

// NextFloat returns the next float of the seeded stream.
func (s *SeededSource) NextFloat() float64 {
	return s.gen.NextFloat()
}

// EntropySource draws from crypto/rand. Non-reproducible; the production
// default for live play.
type EntropySource struct{}

// NewEntropySource creates an entropy-backed source.
func NewEntropySource() *EntropySource {
	return &EntropySource{}
}

// NextFloat reads 4 random bytes and maps them into [0, 1).
func (EntropySource) NextFloat() float64 {
	var quad [4]byte
	if _, err := rand.Read(quad[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return bytesToFloat(quad)
}
