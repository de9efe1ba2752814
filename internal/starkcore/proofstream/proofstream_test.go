package proofstream

import (
	"errors"
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

func sampleDigest(v uint64) digest.Digest {
	return sponge.HashRow([]bfield.Element{bfield.New(v)})
}

// TestFriResponseRoundTrip covers the FriResponse item's encode/decode
// round trip through a full Stream -> Proof -> Stream cycle.
func TestFriResponseRoundTrip(t *testing.T) {
	auth := []digest.Digest{sampleDigest(1), sampleDigest(2)}
	leaves := []xfield.Element{xfield.New(bfield.New(3), bfield.New(4), bfield.New(5))}

	stream := New()
	stream.Enqueue(NewFriResponse(auth, leaves))
	proof := stream.ToProof()

	rebuilt := FromProof(proof)
	item, err := rebuilt.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	got, err := item.AsFriResponse()
	if err != nil {
		t.Fatalf("AsFriResponse: %v", err)
	}
	if len(got.AuthStructure) != len(auth) || got.AuthStructure[0] != auth[0] {
		t.Error("FriResponse auth structure did not survive round trip")
	}
	if len(got.RevealedLeaves) != 1 || !got.RevealedLeaves[0].Equal(leaves[0]) {
		t.Error("FriResponse revealed leaves did not survive round trip")
	}
}

func TestEveryVariantEncodeDecodeRoundTrips(t *testing.T) {
	items := []Item{
		NewAuthenticationStructure([]digest.Digest{sampleDigest(1)}),
		NewMasterBaseTableRows([][]bfield.Element{{bfield.New(1), bfield.New(2)}}),
		NewMasterExtTableRows([][]xfield.Element{{xfield.FromB(bfield.New(9))}}),
		NewOutOfDomainBaseRow([]xfield.Element{xfield.FromB(bfield.New(3))}),
		NewOutOfDomainExtRow([]xfield.Element{xfield.FromB(bfield.New(4))}),
		NewOutOfDomainQuotientSegments([]xfield.Element{xfield.FromB(bfield.New(5))}),
		NewMerkleRoot(sampleDigest(2)),
		NewLog2PaddedHeight(5),
		NewQuotientSegmentsElements([][]xfield.Element{{xfield.FromB(bfield.New(6))}}),
		NewFriCodeword([]xfield.Element{xfield.FromB(bfield.New(7))}),
		NewFriResponse([]digest.Digest{sampleDigest(3)}, []xfield.Element{xfield.FromB(bfield.New(8))}),
	}

	for _, it := range items {
		encoded := it.Encode()
		decoded, used, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%s): %v", it.Type, err)
		}
		if used != len(encoded) {
			t.Errorf("%s: decode consumed %d elements, encoding had %d", it.Type, used, len(encoded))
		}
		if decoded.Type != it.Type {
			t.Errorf("round trip changed type: got %s want %s", decoded.Type, it.Type)
		}
	}
}

// TestVariantMismatchReturnsUnexpectedItemError covers calling the wrong
// As* extractor on an item.
func TestVariantMismatchReturnsUnexpectedItemError(t *testing.T) {
	item := NewMerkleRoot(sampleDigest(1))
	_, err := item.AsLog2PaddedHeight()
	if err == nil {
		t.Fatal("expected an error extracting the wrong variant")
	}
	var mismatch *UnexpectedItemError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *UnexpectedItemError, got %T", err)
	}
	if mismatch.Expected != "Log2PaddedHeight" || mismatch.Actual != MerkleRoot {
		t.Errorf("unexpected mismatch fields: %+v", mismatch)
	}
}

// TestDequeueEmptyQueueFails covers dequeuing past the end of the stream.
func TestDequeueEmptyQueueFails(t *testing.T) {
	stream := New()
	_, err := stream.Dequeue()
	if !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}
}

// TestSpongeLockStepBetweenEnqueueAndDequeue covers spec's requirement that
// the sponge state after enqueuing an item on the prover side matches the
// sponge state after dequeuing that same item on the verifier side.
func TestSpongeLockStepBetweenEnqueueAndDequeue(t *testing.T) {
	prover := New()
	var afterEnqueue [][sponge.Width]bfield.Element

	prover.Enqueue(NewMerkleRoot(sampleDigest(1)))
	afterEnqueue = append(afterEnqueue, prover.SpongeState())
	prover.Enqueue(NewOutOfDomainBaseRow([]xfield.Element{xfield.FromB(bfield.New(42))}))
	afterEnqueue = append(afterEnqueue, prover.SpongeState())
	proof := prover.ToProof()

	verifier := FromProof(proof)
	for i := range proof.Items {
		_, err := verifier.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if verifier.SpongeState() != afterEnqueue[i] {
			t.Errorf("item %d: sponge state after dequeue does not match prover's state after the matching enqueue", i)
		}
	}
	if verifier.SpongeState() != prover.SpongeState() {
		t.Error("verifier sponge state after dequeuing every item does not match prover's after enqueuing")
	}
}

func TestNonFiatShamirItemsDoNotChangeSpongeState(t *testing.T) {
	stream := New()
	before := stream.SpongeState()
	stream.Enqueue(NewLog2PaddedHeight(3))
	after := stream.SpongeState()
	if before != after {
		t.Error("enqueuing a non-Fiat-Shamir item changed the sponge state")
	}
}

func TestTranscriptLengthSumsItemEncodings(t *testing.T) {
	stream := New()
	stream.Enqueue(NewLog2PaddedHeight(3))
	stream.Enqueue(NewMerkleRoot(sampleDigest(1)))
	want := len(NewLog2PaddedHeight(3).Encode()) + len(NewMerkleRoot(sampleDigest(1)).Encode())
	if stream.TranscriptLength() != want {
		t.Errorf("expected transcript length %d, got %d", want, stream.TranscriptLength())
	}
}
