package merkle

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
)

func leaves(n int) []digest.Digest {
	out := make([]digest.Digest, n)
	for i := range out {
		out[i] = sponge.HashRow([]bfield.Element{bfield.New(uint64(i))})
	}
	return out
}

func TestAuthenticationStructureVerifies(t *testing.T) {
	ls := leaves(8)
	tree := New(ls)
	root := tree.Root()

	for i, leaf := range ls {
		path, err := tree.AuthenticationStructure(i)
		if err != nil {
			t.Fatalf("AuthenticationStructure(%d): %v", i, err)
		}
		if !VerifyAuthenticationStructure(root, leaf, i, path) {
			t.Errorf("leaf %d failed to verify against the root", i)
		}
	}
}

func TestVerificationRejectsWrongLeaf(t *testing.T) {
	ls := leaves(8)
	tree := New(ls)
	root := tree.Root()

	path, err := tree.AuthenticationStructure(2)
	if err != nil {
		t.Fatalf("AuthenticationStructure: %v", err)
	}
	wrong := sponge.HashRow([]bfield.Element{bfield.New(999)})
	if VerifyAuthenticationStructure(root, wrong, 2, path) {
		t.Error("verification succeeded for a tampered leaf")
	}
}

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing a tree with a non-power-of-two leaf count")
		}
	}()
	New(leaves(5))
}

func TestNewRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing a tree with zero leaves")
		}
	}()
	New(nil)
}

func TestVerifyBatch(t *testing.T) {
	ls := leaves(16)
	tree := New(ls)
	root := tree.Root()

	indices := []int{0, 3, 15}
	revealed := make([]digest.Digest, len(indices))
	paths := make([][]digest.Digest, len(indices))
	for i, idx := range indices {
		revealed[i] = ls[idx]
		path, err := tree.AuthenticationStructure(idx)
		if err != nil {
			t.Fatalf("AuthenticationStructure(%d): %v", idx, err)
		}
		paths[i] = path
	}

	if !VerifyBatch(root, indices, revealed, paths) {
		t.Error("VerifyBatch rejected a genuine batch")
	}
}
