// Package starkcore implements the core of a zero-knowledge STARK proving
// system: the Master Table pipeline and the Fiat-Shamir proof stream that
// together turn an Algebraic Execution Trace into low-degree-extended,
// Merkle-committed polynomial data and a non-interactive transcript.
//
// # Features
//
// - Column-major Master matrix shared by ten logical sub-tables
// - Trace padding, trace randomization, and low-degree extension
// - Tip5-shaped sponge-backed Fiat-Shamir proof stream with binary codec
// - Zerofier-inverse quotient engine (initial/consistency/transition/terminal)
//
// # Quick Start
//
//	cfg := starkcore.DefaultProverConfig()
//	trace := vm.NewToyTrace(64)
//	base := master.NewBaseTable(trace, cfg.NumTraceRandomizers, quotientLen, friLen)
//	base.Fill(trace)
//	base.Pad(padder, degreeLowering)
//	base.RandomizeTrace()
//	base.LowDegreeExtendAllColumns()
//	baseRoot := base.MerkleTree().Root()
//
//	stream := starkcore.NewProofStream()
//	stream.Enqueue(proofstream.NewMerkleRoot(baseRoot))
//
// # Architecture
//
// - pkg/starkcore/: public facade (this package)
// - internal/starkcore/: field arithmetic, sponge, Merkle tree, polynomial,
//   arithmetic domains, the Master matrix/tables/quotient engine, and the
//   proof stream codec (not importable outside this module)
//
// Implementation details in internal/ can be refactored without breaking
// this package's surface.
//
// # Non-goals
//
// No on-disk persistence; no distributed execution; no wire-protocol
// versioning. The VM instruction set, per-table AIR constraint generators,
// the FRI low-degree test, and the sponge permutation's cryptographic
// security are external concerns this package consumes interfaces for.
//
// # References
//
// - STARK paper: https://eprint.iacr.org/2018/046
// - FRI paper: https://eccc.weizmann.ac.il/report/2017/134/
package starkcore
