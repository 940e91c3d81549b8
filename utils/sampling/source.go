// Package sampling implements the sources of randomness used by the polynomial samplers.
package sampling

import (
	"encoding/binary"
	"math/bits"
)

// Source is a stream of uniformly distributed 64-bit words.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// Uint64 returns a uniform value in [0, 2^64).
	Uint64() uint64
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// float64FromUint64 maps the 53 most significant bits of x to [0, 1).
func float64FromUint64(x uint64) float64 {
	return float64(x>>11) * 0x1.0p-53
}

// ReaderSource is a Source reading its words from a PRNG.
type ReaderSource struct {
	prng   PRNG
	buffer []byte
	ptr    int
}

// NewSource returns a Source drawing from the given PRNG.
// The returned Source buffers the bytes it reads: two sources built on the
// same PRNG interleave their reads and are not deterministic.
func NewSource(prng PRNG) *ReaderSource {
	return &ReaderSource{
		prng:   prng,
		buffer: make([]byte, 1024),
		ptr:    1024,
	}
}

// Uint64 returns the next 8 bytes of the underlying PRNG as a little endian word.
func (s *ReaderSource) Uint64() uint64 {
	if s.ptr == len(s.buffer) {
		if _, err := s.prng.Read(s.buffer); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		s.ptr = 0
	}
	x := binary.LittleEndian.Uint64(s.buffer[s.ptr : s.ptr+8])
	s.ptr += 8
	return x
}

// Float64 returns a uniform value in [0, 1).
func (s *ReaderSource) Float64() float64 {
	return float64FromUint64(s.Uint64())
}

const (
	wyp0 = 0xa0761d6478bd642f
	wyp1 = 0xe7037ed1a0b428db
)

// WyRand is a fast, seeded, non-cryptographic generator (wyrand).
// It is meant for simulations and reproducible tests, and must be replaced
// by a PRNG backed Source when sampling secret material.
type WyRand struct {
	state uint64
}

// NewWyRand returns a WyRand generator seeded with seed.
func NewWyRand(seed uint64) *WyRand {
	return &WyRand{state: seed}
}

// Uint64 returns the next word of the stream.
func (w *WyRand) Uint64() uint64 {
	w.state += wyp0
	hi, lo := bits.Mul64(w.state, w.state^wyp1)
	return hi ^ lo
}

// Float64 returns a uniform value in [0, 1).
func (w *WyRand) Float64() float64 {
	return float64FromUint64(w.Uint64())
}
