package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"
)

// ByteGenerator streams HMAC-SHA256 output for a (serverSeed, clientSeed,
// nonce) triple. Each round hashes "clientSeed:nonce:round" keyed by the
// server seed and yields 32 bytes; floats consume 4 bytes each.
type ByteGenerator struct {
	serverSeed string
	clientSeed string
	nonce      uint64
	round      uint64
	pos        int
	buf        [32]byte
}

// NewByteGenerator creates a generator positioned at the given byte cursor.
func NewByteGenerator(serverSeed, clientSeed string, nonce, cursor uint64) *ByteGenerator {
	g := &ByteGenerator{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
		round:      cursor / 32,
		pos:        int(cursor % 32),
	}
	g.fill()
	return g
}

// Next returns the next byte, advancing to a fresh HMAC round as needed.
func (g *ByteGenerator) Next() byte {
	if g.pos >= 32 {
		g.round++
		g.pos = 0
		g.fill()
	}
	b := g.buf[g.pos]
	g.pos++
	return b
}

// NextFloat consumes exactly 4 bytes and maps them into [0, 1).
func (g *ByteGenerator) NextFloat() float64 {
	var quad [4]byte
	for i := range quad {
		quad[i] = g.Next()
	}
	return bytesToFloat(quad)
}

func (g *ByteGenerator) fill() {
	h := hmac.New(sha256.New, []byte(g.serverSeed))
	fmt.Fprintf(h, "%s:%d:%d", g.clientSeed, g.nonce, g.round)
	copy(g.buf[:], h.Sum(nil))
}

// bytesToFloat maps 4 bytes into [0, 1): sum of b[i] / 256^(i+1).
func bytesToFloat(b [4]byte) float64 {
	f := 0.0
	for i, v := range b {
		f += float64(v) / math.Pow(256, float64(i+1))
	}
	return f
}

// Floats generates count floats starting at the given cursor.
func Floats(serverSeed, clientSeed string, nonce, cursor uint64, count int) []float64 {
	g := NewByteGenerator(serverSeed, clientSeed, nonce, cursor)
	out := make([]float64, count)
	for i := range out {
		out[i] = g.NextFloat()
	}
	return out
}
