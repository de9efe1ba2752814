package proofstream

import (
	"errors"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/sponge"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// ErrEmptyQueue is returned by Dequeue once the read cursor has passed the
// end of the item list (spec §4.3, §6, §7 kind 2).
var ErrEmptyQueue = errors.New("proofstream: empty queue")

// Stream is (items, items_index, sponge_state) (spec §3). The prover-side
// instance always keeps itemsIndex at 0; the verifier-side advances it on
// every Dequeue.
type Stream struct {
	Items      []Item
	itemsIndex int
	sponge     *sponge.Sponge
}

// New returns an empty ProofStream with a freshly initialized sponge.
func New() *Stream {
	return &Stream{sponge: sponge.New()}
}

// Enqueue implements spec §4.3: absorb the item's padded encoding into the
// sponge iff IncludeInFiatShamirHeuristic, then append it to Items.
func (s *Stream) Enqueue(item Item) {
	if item.IncludeInFiatShamirHeuristic() {
		s.sponge.PadAndAbsorbAll(item.Encode())
	}
	s.Items = append(s.Items, item)
}

// Dequeue implements spec §4.3: fail with ErrEmptyQueue past the end;
// otherwise read the item, absorb identically to Enqueue if included,
// advance the cursor, and return it.
func (s *Stream) Dequeue() (Item, error) {
	if s.itemsIndex >= len(s.Items) {
		return Item{}, ErrEmptyQueue
	}
	item := s.Items[s.itemsIndex]
	if item.IncludeInFiatShamirHeuristic() {
		s.sponge.PadAndAbsorbAll(item.Encode())
	}
	s.itemsIndex++
	return item, nil
}

// AlterFiatShamirStateWith absorbs x's padded encoding without touching
// Items, for values known to both parties that must still bind the
// transcript (spec §4.3), e.g. the public claim.
func (s *Stream) AlterFiatShamirStateWith(x []bfield.Element) {
	s.sponge.PadAndAbsorbAll(x)
}

// SampleIndices delegates to the sponge's uniform index sampling.
func (s *Stream) SampleIndices(upperBound uint32, count int) []uint32 {
	return s.sponge.SampleIndices(upperBound, count)
}

// SampleScalars delegates to the sponge's uniform X sampling.
func (s *Stream) SampleScalars(count int) []xfield.Element {
	return s.sponge.SampleScalars(count)
}

// TranscriptLength returns the encoded B-element length of the full proof
// (every item's Encode length, summed; spec §4.3).
func (s *Stream) TranscriptLength() int {
	total := 0
	for _, it := range s.Items {
		total += len(it.Encode())
	}
	return total
}

// SpongeState exposes the raw sponge state for test checkpointing (spec
// §4.3: "A test suite must checkpoint sponge state after each enqueue and
// compare after each dequeue").
func (s *Stream) SpongeState() [sponge.Width]bfield.Element {
	return s.sponge.State()
}

// Proof is the serialized form: only Items is encoded (spec §3: "the
// serialized form... encodes only items").
type Proof struct {
	Items []Item
}

// ToProof converts the stream to its serialized form.
func (s *Stream) ToProof() Proof {
	return Proof{Items: append([]Item(nil), s.Items...)}
}

// FromProof reconstructs a Stream with a fresh, unabsorbed sponge and the
// read cursor at 0. Absorption happens lazily in Dequeue, exactly mirroring
// Enqueue's timing on the prover side, so that after the k-th enqueue or
// dequeue the two sponge states are bit-identical (spec §4.3, §8).
func FromProof(p Proof) *Stream {
	s := New()
	s.Items = append([]Item(nil), p.Items...)
	return s
}

// Encode serializes a Proof to its flat B-element encoding: a length
// prefix (item count) followed by each item's own discriminant+body
// encoding, in order (spec §6).
func (p Proof) Encode() []bfield.Element {
	out := []bfield.Element{bfield.New(uint64(len(p.Items)))}
	for _, it := range p.Items {
		out = append(out, it.Encode()...)
	}
	return out
}

// DecodeProof parses a Proof from its flat B-element encoding.
func DecodeProof(data []bfield.Element) (Proof, error) {
	if len(data) < 1 {
		return Proof{}, errors.New("proofstream: truncated proof length prefix")
	}
	n := int(data[0].Value())
	cursor := data[1:]
	items := make([]Item, n)
	for i := 0; i < n; i++ {
		item, used, err := Decode(cursor)
		if err != nil {
			return Proof{}, err
		}
		items[i] = item
		cursor = cursor[used:]
	}
	return Proof{Items: items}, nil
}
