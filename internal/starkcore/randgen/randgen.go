// Package randgen provides the process-wide cryptographic RNG used for
// trace randomization and randomizer polynomials (spec §5, §9): a source
// kept strictly isolated from the sponge, which is the only source of
// verifier-observable Fiat-Shamir randomness. Mixing the two is exactly the
// entanglement bug spec §9's design notes warn against.
package randgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// Element draws one uniform B element from crypto/rand, rejecting samples
// outside [0, floor(2^64/p)*p) to avoid modulo bias, then reducing.
func Element() bfield.Element {
	for {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			panic(fmt.Sprintf("randgen: crypto/rand failure: %v", err))
		}
		v := binary.LittleEndian.Uint64(buf[:])
		limit := (^uint64(0) / bfield.Modulus) * bfield.Modulus
		if v < limit {
			return bfield.New(v)
		}
	}
}

// Elements draws n uniform B elements.
func Elements(n int) []bfield.Element {
	out := make([]bfield.Element, n)
	for i := range out {
		out[i] = Element()
	}
	return out
}

// XElement draws one uniform X element (three independent B coordinates).
func XElement() xfield.Element {
	return xfield.New(Element(), Element(), Element())
}

// XElements draws n uniform X elements.
func XElements(n int) []xfield.Element {
	out := make([]xfield.Element, n)
	for i := range out {
		out[i] = XElement()
	}
	return out
}

// DeterministicStream is a seeded, reproducible expansion used only where
// determinism is legitimately wanted — replaying randomizer columns in
// tests — never for production trace randomization. Grounded on the
// teacher's deterministicRNG idiom in protocols/master_table.go (a seed plus
// a counter), with each output computed by a small FNV-1a mix of the seed
// and counter (fnvMix) rather than SHA-256 or the sponge. Using this in
// place of Element/Elements for
// actual proving would reintroduce the entanglement spec §5 forbids; it
// exists purely as a test fixture.
type DeterministicStream struct {
	seed    [8]byte
	counter uint64
}

// NewDeterministicStream seeds a reproducible stream from a fixed value.
func NewDeterministicStream(seed uint64) *DeterministicStream {
	var s DeterministicStream
	binary.LittleEndian.PutUint64(s.seed[:], seed)
	return &s
}

// Next returns the stream's next pseudo-random B element.
func (s *DeterministicStream) Next() bfield.Element {
	var buf [16]byte
	copy(buf[:8], s.seed[:])
	binary.LittleEndian.PutUint64(buf[8:], s.counter)
	s.counter++
	h := fnvMix(buf[:])
	return bfield.New(h)
}

// fnvMix is a small, fixed, non-cryptographic mixing function sufficient for
// reproducible test fixtures; it is never used on the production randomness
// path (see DeterministicStream's doc comment).
func fnvMix(data []byte) uint64 {
	const offset = uint64(14695981039346656037)
	const prime = uint64(1099511628211)
	h := offset
	for _, b := range data {
		h ^= uint64(b)
		h *= prime
	}
	return h
}
