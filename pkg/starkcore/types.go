// Package starkcore is the public facade over the Master Table pipeline and
// Fiat-Shamir proof stream: the internal packages under internal/starkcore
// do the work, and this package re-exports the handful of types an external
// caller (a VM's prover/verifier binary) needs, following the teacher's
// type-aliasing convention (pkg/vybium-starks-vm/types.go).
package starkcore

import (
	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/config"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/proofstream"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// BFieldElement is the base field B.
type BFieldElement = bfield.Element

// XFieldElement is the degree-3 extension field X.
type XFieldElement = xfield.Element

// Digest is the tip5-shaped hash output.
type Digest = digest.Digest

// ProverConfig controls the Master Table pipeline's shape.
type ProverConfig = config.ProverConfig

// Proof is the serialized Fiat-Shamir transcript.
type Proof = proofstream.Proof

// ProofStream is the live, sponge-backed transcript the prover writes to
// and the verifier reads from.
type ProofStream = proofstream.Stream

// DefaultProverConfig returns the teacher-style modest default
// configuration.
func DefaultProverConfig() ProverConfig {
	return config.DefaultProverConfig()
}

// NewProofStream returns an empty ProofStream.
func NewProofStream() *ProofStream {
	return proofstream.New()
}
