// Package proofstream implements the Fiat-Shamir transcript: the eleven-
// variant ProofItem tagged union, its canonical binary codec, and the
// ProofStream/Proof types built on top of it (spec §3, §4.2-§4.3, §6),
// grounded on protocols/proof.go and protocols/proof_stream.go.
package proofstream

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// ItemType is the ProofItem discriminant. Values start at 1 (spec §6: "the
// discriminant... index in declaration order starting at 1"), in exactly
// the declaration order spec §3 lists.
type ItemType int

const (
	AuthenticationStructure ItemType = iota + 1
	MasterBaseTableRows
	MasterExtTableRows
	OutOfDomainBaseRow
	OutOfDomainExtRow
	OutOfDomainQuotientSegments
	MerkleRoot
	Log2PaddedHeight
	QuotientSegmentsElements
	FriCodeword
	FriResponse
)

func (t ItemType) String() string {
	switch t {
	case AuthenticationStructure:
		return "AuthenticationStructure"
	case MasterBaseTableRows:
		return "MasterBaseTableRows"
	case MasterExtTableRows:
		return "MasterExtTableRows"
	case OutOfDomainBaseRow:
		return "OutOfDomainBaseRow"
	case OutOfDomainExtRow:
		return "OutOfDomainExtRow"
	case OutOfDomainQuotientSegments:
		return "OutOfDomainQuotientSegments"
	case MerkleRoot:
		return "MerkleRoot"
	case Log2PaddedHeight:
		return "Log2PaddedHeight"
	case QuotientSegmentsElements:
		return "QuotientSegmentsElements"
	case FriCodeword:
		return "FriCodeword"
	case FriResponse:
		return "FriResponse"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// FriResponseData is (authentication structure, revealed leaf values),
// spec §3's FriResponse = (auth structure, revealed leaves as X).
type FriResponseData struct {
	AuthStructure  []digest.Digest
	RevealedLeaves []xfield.Element
}

// Item is one tagged entry of the transcript. Data holds the variant's
// payload with the Go type named in each constructor below.
type Item struct {
	Type ItemType
	Data interface{}
}

// Constructors, one per variant, matching the teacher's Add*/typed-literal
// convenience pattern (protocols/proof.go).

func NewAuthenticationStructure(path []digest.Digest) Item {
	return Item{Type: AuthenticationStructure, Data: path}
}
func NewMasterBaseTableRows(rows [][]bfield.Element) Item {
	return Item{Type: MasterBaseTableRows, Data: rows}
}
func NewMasterExtTableRows(rows [][]xfield.Element) Item {
	return Item{Type: MasterExtTableRows, Data: rows}
}
func NewOutOfDomainBaseRow(row []xfield.Element) Item {
	return Item{Type: OutOfDomainBaseRow, Data: row}
}
func NewOutOfDomainExtRow(row []xfield.Element) Item {
	return Item{Type: OutOfDomainExtRow, Data: row}
}
func NewOutOfDomainQuotientSegments(segments []xfield.Element) Item {
	return Item{Type: OutOfDomainQuotientSegments, Data: segments}
}
func NewMerkleRoot(d digest.Digest) Item {
	return Item{Type: MerkleRoot, Data: d}
}
func NewLog2PaddedHeight(h uint32) Item {
	return Item{Type: Log2PaddedHeight, Data: h}
}
func NewQuotientSegmentsElements(segments [][]xfield.Element) Item {
	return Item{Type: QuotientSegmentsElements, Data: segments}
}
func NewFriCodeword(codeword []xfield.Element) Item {
	return Item{Type: FriCodeword, Data: codeword}
}
func NewFriResponse(authStructure []digest.Digest, revealedLeaves []xfield.Element) Item {
	return Item{Type: FriResponse, Data: FriResponseData{AuthStructure: authStructure, RevealedLeaves: revealedLeaves}}
}

// IncludeInFiatShamirHeuristic implements spec §4.2's predicate: true
// exactly for {MerkleRoot, OutOfDomainBaseRow, OutOfDomainExtRow,
// OutOfDomainQuotientSegments}.
func (it Item) IncludeInFiatShamirHeuristic() bool {
	switch it.Type {
	case MerkleRoot, OutOfDomainBaseRow, OutOfDomainExtRow, OutOfDomainQuotientSegments:
		return true
	default:
		return false
	}
}

// UnexpectedItemError is returned by the as_<variant> extractors when the
// tag doesn't match (spec §4.2, §6).
type UnexpectedItemError struct {
	Expected string
	Actual   ItemType
}

func (e *UnexpectedItemError) Error() string {
	return fmt.Sprintf("proofstream: expected %s, got %s", e.Expected, e.Actual)
}

func (it Item) AsAuthenticationStructure() ([]digest.Digest, error) {
	v, ok := it.Data.([]digest.Digest)
	if it.Type != AuthenticationStructure || !ok {
		return nil, &UnexpectedItemError{Expected: "AuthenticationStructure", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsMasterBaseTableRows() ([][]bfield.Element, error) {
	v, ok := it.Data.([][]bfield.Element)
	if it.Type != MasterBaseTableRows || !ok {
		return nil, &UnexpectedItemError{Expected: "MasterBaseTableRows", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsMasterExtTableRows() ([][]xfield.Element, error) {
	v, ok := it.Data.([][]xfield.Element)
	if it.Type != MasterExtTableRows || !ok {
		return nil, &UnexpectedItemError{Expected: "MasterExtTableRows", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsOutOfDomainBaseRow() ([]xfield.Element, error) {
	v, ok := it.Data.([]xfield.Element)
	if it.Type != OutOfDomainBaseRow || !ok {
		return nil, &UnexpectedItemError{Expected: "OutOfDomainBaseRow", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsOutOfDomainExtRow() ([]xfield.Element, error) {
	v, ok := it.Data.([]xfield.Element)
	if it.Type != OutOfDomainExtRow || !ok {
		return nil, &UnexpectedItemError{Expected: "OutOfDomainExtRow", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsOutOfDomainQuotientSegments() ([]xfield.Element, error) {
	v, ok := it.Data.([]xfield.Element)
	if it.Type != OutOfDomainQuotientSegments || !ok {
		return nil, &UnexpectedItemError{Expected: "OutOfDomainQuotientSegments", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsMerkleRoot() (digest.Digest, error) {
	v, ok := it.Data.(digest.Digest)
	if it.Type != MerkleRoot || !ok {
		return digest.Digest{}, &UnexpectedItemError{Expected: "MerkleRoot", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsLog2PaddedHeight() (uint32, error) {
	v, ok := it.Data.(uint32)
	if it.Type != Log2PaddedHeight || !ok {
		return 0, &UnexpectedItemError{Expected: "Log2PaddedHeight", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsQuotientSegmentsElements() ([][]xfield.Element, error) {
	v, ok := it.Data.([][]xfield.Element)
	if it.Type != QuotientSegmentsElements || !ok {
		return nil, &UnexpectedItemError{Expected: "QuotientSegmentsElements", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsFriCodeword() ([]xfield.Element, error) {
	v, ok := it.Data.([]xfield.Element)
	if it.Type != FriCodeword || !ok {
		return nil, &UnexpectedItemError{Expected: "FriCodeword", Actual: it.Type}
	}
	return v, nil
}

func (it Item) AsFriResponse() (FriResponseData, error) {
	v, ok := it.Data.(FriResponseData)
	if it.Type != FriResponse || !ok {
		return FriResponseData{}, &UnexpectedItemError{Expected: "FriResponse", Actual: it.Type}
	}
	return v, nil
}
