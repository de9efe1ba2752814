// Package sponge implements a tip5-shaped sponge permutation over the B
// field: width 16, rate 10, capacity 6, squeezing 5-element digests. Round
// constants and the MDS matrix are derived deterministically from
// golang.org/x/crypto/sha3, following the teacher's Grain-LFSR-style
// from-scratch parameter generation (core/poseidon_enhanced.go) but reusing
// a real hash primitive instead of a hand-rolled LFSR.
package sponge

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

const (
	// Width is the permutation's state size in B elements.
	Width = 16
	// Rate is the number of elements absorbed/squeezed per permutation call.
	Rate = 10
	// Capacity is Width - Rate, the hidden part of the state.
	Capacity = Width - Rate
	// NumRounds is the number of full permutation rounds.
	NumRounds = 8
	sboxPower = 7
)

var (
	roundConstants [NumRounds][Width]bfield.Element
	mdsMatrix      [Width][Width]bfield.Element
)

func init() {
	roundConstants = generateRoundConstants()
	mdsMatrix = generateMDSMatrix()
}

// generateRoundConstants derives NumRounds*Width field elements by expanding
// a fixed domain-separated seed through SHA3-256, matching the teacher's
// seeded-expansion idiom (utils/channel.go, core/poseidon_enhanced.go's
// GrainLFSR) but grounded on a real primitive from the teacher's own
// go.mod (golang.org/x/crypto/sha3) instead of a hand-rolled LFSR.
func generateRoundConstants() [NumRounds][Width]bfield.Element {
	var out [NumRounds][Width]bfield.Element
	state := sha3.Sum256([]byte("starkcore/sponge/tip5/round-constants/v1"))
	for r := 0; r < NumRounds; r++ {
		for w := 0; w < Width; w++ {
			h := sha3.New256()
			h.Write(state[:])
			var counter [8]byte
			binary.LittleEndian.PutUint64(counter[:], uint64(r)*uint64(Width)+uint64(w))
			h.Write(counter[:])
			digestBytes := h.Sum(nil)
			v := binary.LittleEndian.Uint64(digestBytes[:8])
			out[r][w] = bfield.New(v)
		}
	}
	return out
}

// generateMDSMatrix builds a Cauchy-style maximum-distance-separable matrix
// M[i][j] = 1/(x_i - y_j) over distinct seed points, matching the teacher's
// generateMDSMatrix (core/poseidon_enhanced.go) in structure.
func generateMDSMatrix() [Width][Width]bfield.Element {
	var xs, ys [Width]bfield.Element
	base := sha3.Sum256([]byte("starkcore/sponge/tip5/mds/v1"))
	for i := 0; i < Width; i++ {
		xs[i] = bfield.New(binary.LittleEndian.Uint64(base[:8]) + uint64(i))
		ys[i] = bfield.New(binary.LittleEndian.Uint64(base[8:16]) + uint64(i) + uint64(Width))
	}
	var m [Width][Width]bfield.Element
	for i := 0; i < Width; i++ {
		for j := 0; j < Width; j++ {
			diff := xs[i].Sub(ys[j])
			m[i][j] = diff.Inv()
		}
	}
	return m
}

func sbox(a bfield.Element) bfield.Element {
	return a.Exp(sboxPower)
}

func applyMDS(state [Width]bfield.Element) [Width]bfield.Element {
	var out [Width]bfield.Element
	for i := 0; i < Width; i++ {
		acc := bfield.Zero
		for j := 0; j < Width; j++ {
			acc = acc.Add(mdsMatrix[i][j].Mul(state[j]))
		}
		out[i] = acc
	}
	return out
}

func permute(state [Width]bfield.Element) [Width]bfield.Element {
	for r := 0; r < NumRounds; r++ {
		for i := 0; i < Width; i++ {
			state[i] = state[i].Add(roundConstants[r][i])
		}
		for i := 0; i < Width; i++ {
			state[i] = sbox(state[i])
		}
		state = applyMDS(state)
	}
	return state
}

// Sponge absorbs B-field elements and squeezes B-field elements or derived
// digests/indices/scalars, the sole source of Fiat-Shamir randomness.
type Sponge struct {
	state    [Width]bfield.Element
	squeezed int // number of valid, not-yet-consumed elements at state[:squeezed]
}

// New returns a sponge in its initial all-zero state.
func New() *Sponge {
	return &Sponge{}
}

// Clone returns an independent copy of the sponge's state.
func (s *Sponge) Clone() *Sponge {
	clone := &Sponge{state: s.state, squeezed: s.squeezed}
	return clone
}

// State returns the current raw state, for test checkpointing (spec §4.3).
func (s *Sponge) State() [Width]bfield.Element {
	return s.state
}

// Absorb absorbs exactly Rate elements, permuting after XORing (additively,
// over the field) them into the rate portion of the state.
func (s *Sponge) Absorb(block [Rate]bfield.Element) {
	for i := 0; i < Rate; i++ {
		s.state[i] = s.state[i].Add(block[i])
	}
	s.state = permute(s.state)
	s.squeezed = 0
}

// PadAndAbsorbAll absorbs an arbitrary-length sequence using the padding
// rule from spec §4.3/§6: append a single 1, then zeros until the total
// length is a multiple of Rate, then absorb in Rate-sized blocks.
func (s *Sponge) PadAndAbsorbAll(elements []bfield.Element) {
	padded := make([]bfield.Element, len(elements), len(elements)+Rate)
	copy(padded, elements)
	padded = append(padded, bfield.One)
	for len(padded)%Rate != 0 {
		padded = append(padded, bfield.Zero)
	}
	for i := 0; i < len(padded); i += Rate {
		var block [Rate]bfield.Element
		copy(block[:], padded[i:i+Rate])
		s.Absorb(block)
	}
}

// Squeeze returns the next Rate elements of output, permuting the state
// first if the current squeeze buffer has been exhausted.
func (s *Sponge) Squeeze() [Rate]bfield.Element {
	if s.squeezed == 0 {
		s.state = permute(s.state)
		s.squeezed = Rate
	}
	var out [Rate]bfield.Element
	copy(out[:], s.state[:Rate])
	s.squeezed = 0 // force a fresh permutation on next call, tip5-style single-use blocks
	return out
}

// SqueezeDigest squeezes a Length-element Digest.
func (s *Sponge) SqueezeDigest() digest.Digest {
	block := s.Squeeze()
	var d digest.Digest
	copy(d[:], block[:digest.Length])
	return d
}

// SampleIndices draws `count` uniform indices in [0, upperBound). upperBound
// must be a power of two and representable without bias modulo bfield's
// modulus; violating either is a programming error per spec §7 class 1.
func (s *Sponge) SampleIndices(upperBound uint32, count int) []uint32 {
	if upperBound == 0 || (upperBound&(upperBound-1)) != 0 {
		panic("sponge: upperBound must be a power of two")
	}
	if uint64(upperBound) > bfield.Modulus {
		panic("sponge: upperBound exceeds the field's modulus")
	}
	mask := uint64(upperBound) - 1
	out := make([]uint32, 0, count)
	for len(out) < count {
		block := s.Squeeze()
		for _, e := range block {
			if len(out) == count {
				break
			}
			out = append(out, uint32(e.Value()&mask))
		}
	}
	return out
}

// SampleScalars draws `count` uniform X-field elements.
func (s *Sponge) SampleScalars(count int) []xfield.Element {
	out := make([]xfield.Element, 0, count)
	for len(out) < count {
		block := s.Squeeze()
		for i := 0; i+2 < Rate && len(out) < count; i += 3 {
			out = append(out, xfield.New(block[i], block[i+1], block[i+2]))
		}
	}
	return out
}

// HashRow hashes a row of B elements (base-table row) to a Digest.
func HashRow(row []bfield.Element) digest.Digest {
	s := New()
	s.PadAndAbsorbAll(row)
	return s.SqueezeDigest()
}

// HashExtRow hashes a row of X elements (ext-table row) by reinterpreting
// each X as its three B coefficients, concatenated, per spec §4.8.
func HashExtRow(row []xfield.Element) digest.Digest {
	flat := make([]bfield.Element, 0, len(row)*3)
	for _, x := range row {
		flat = append(flat, x.Coefficients[0], x.Coefficients[1], x.Coefficients[2])
	}
	return HashRow(flat)
}
