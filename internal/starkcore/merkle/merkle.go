// Package merkle implements the commitment scheme used to bind each
// FRI-domain row of a Master table to a single root, grounded on
// core/merkle.go's level-by-level tree but keyed to Digest leaves and the
// sponge's own hash instead of a SHA-256 fallback.
package merkle

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
)

// Tree is a binary Merkle tree over a power-of-two number of Digest leaves.
type Tree struct {
	leaves []digest.Digest
	levels [][]digest.Digest // levels[0] == leaves, levels[last] == {root}
}

// New builds a tree from already-hashed leaves. Panics if the leaf count is
// not a power of two or is zero, per spec §7 class 1 (a malformed FRI-domain
// row count is a contract violation, not a recoverable error).
func New(leaves []digest.Digest) *Tree {
	n := len(leaves)
	if n == 0 || (n&(n-1)) != 0 {
		panic(fmt.Sprintf("merkle: leaf count %d is not a positive power of two", n))
	}
	levels := [][]digest.Digest{append([]digest.Digest(nil), leaves...)}
	current := levels[0]
	for len(current) > 1 {
		next := make([]digest.Digest, len(current)/2)
		for i := range next {
			next[i] = hashPair(current[2*i], current[2*i+1])
		}
		levels = append(levels, next)
		current = next
	}
	return &Tree{leaves: levels[0], levels: levels}
}

func hashPair(left, right digest.Digest) digest.Digest {
	combined := make([]bfield.Element, 0, digest.Length*2)
	combined = append(combined, left[:]...)
	combined = append(combined, right[:]...)
	return sponge.HashRow(combined)
}

// Root returns the tree's root digest.
func (t *Tree) Root() digest.Digest {
	return t.levels[len(t.levels)-1][0]
}

// AuthenticationStructure returns the sibling digests from leaf to root for
// the given index, excluding the root itself — the minimal data a verifier
// needs to recompute the root from a revealed leaf.
func (t *Tree) AuthenticationStructure(index int) ([]digest.Digest, error) {
	if index < 0 || index >= len(t.leaves) {
		return nil, fmt.Errorf("merkle: index %d out of range [0, %d)", index, len(t.leaves))
	}
	path := make([]digest.Digest, 0, len(t.levels)-1)
	cur := index
	for level := 0; level < len(t.levels)-1; level++ {
		siblingIndex := cur ^ 1
		path = append(path, t.levels[level][siblingIndex])
		cur /= 2
	}
	return path, nil
}

// VerifyAuthenticationStructure recomputes the root from a leaf, its index,
// and the sibling path, and reports whether it matches root.
func VerifyAuthenticationStructure(root digest.Digest, leaf digest.Digest, index int, path []digest.Digest) bool {
	hash := leaf
	cur := index
	for _, sibling := range path {
		if cur%2 == 0 {
			hash = hashPair(hash, sibling)
		} else {
			hash = hashPair(sibling, hash)
		}
		cur /= 2
	}
	return hash.Equal(root)
}

// VerifyBatch verifies authentication structures for multiple (index, leaf)
// pairs against the same root, sharing no computation across entries
// (kept simple; the teacher's own core/merkle.go has no batched variant).
func VerifyBatch(root digest.Digest, indices []int, leaves []digest.Digest, paths [][]digest.Digest) bool {
	if len(indices) != len(leaves) || len(leaves) != len(paths) {
		return false
	}
	for i := range indices {
		if !VerifyAuthenticationStructure(root, leaves[i], indices[i], paths[i]) {
			return false
		}
	}
	return true
}
