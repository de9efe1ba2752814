package proofstream

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
	"github.com/vybium/starkcore/internal/starkcore/digest"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// Encode implements spec §6's canonical binary encoding: a discriminant B
// element (declaration order, 1-based) followed by the variant's body.
// Variable-length bodies are length-prefixed; nested variable-length
// fields apply the same rule recursively; fixed-length bodies (MerkleRoot,
// Log2PaddedHeight) have no prefix.
func (it Item) Encode() []bfield.Element {
	out := []bfield.Element{bfield.New(uint64(it.Type))}
	switch it.Type {
	case AuthenticationStructure:
		v := it.Data.([]digest.Digest)
		out = append(out, encodeDigestList(v)...)
	case MasterBaseTableRows:
		v := it.Data.([][]bfield.Element)
		out = append(out, encodeBRowList(v)...)
	case MasterExtTableRows:
		v := it.Data.([][]xfield.Element)
		out = append(out, encodeXRowList(v)...)
	case OutOfDomainBaseRow:
		v := it.Data.([]xfield.Element)
		out = append(out, encodeXList(v)...)
	case OutOfDomainExtRow:
		v := it.Data.([]xfield.Element)
		out = append(out, encodeXList(v)...)
	case OutOfDomainQuotientSegments:
		v := it.Data.([]xfield.Element)
		out = append(out, encodeXList(v)...)
	case MerkleRoot:
		v := it.Data.(digest.Digest)
		out = append(out, v[:]...)
	case Log2PaddedHeight:
		v := it.Data.(uint32)
		out = append(out, bfield.New(uint64(v)))
	case QuotientSegmentsElements:
		v := it.Data.([][]xfield.Element)
		out = append(out, encodeXRowList(v)...)
	case FriCodeword:
		v := it.Data.([]xfield.Element)
		out = append(out, encodeXList(v)...)
	case FriResponse:
		v := it.Data.(FriResponseData)
		out = append(out, encodeDigestList(v.AuthStructure)...)
		out = append(out, encodeXList(v.RevealedLeaves)...)
	default:
		panic(fmt.Sprintf("proofstream: unknown ItemType %d", it.Type))
	}
	return out
}

// Decode reads one Item (discriminant + body) from the front of data,
// returning the item and the number of elements consumed.
func Decode(data []bfield.Element) (Item, int, error) {
	if len(data) == 0 {
		return Item{}, 0, fmt.Errorf("proofstream: cannot decode from empty buffer")
	}
	tag := ItemType(data[0].Value())
	rest := data[1:]
	consumed := 1

	readDigestList := func() ([]digest.Digest, int, error) {
		v, n, err := decodeDigestList(rest)
		return v, n, err
	}
	readBRowList := func() ([][]bfield.Element, int, error) {
		return decodeBRowList(rest)
	}
	readXRowList := func() ([][]xfield.Element, int, error) {
		return decodeXRowList(rest)
	}
	readXList := func() ([]xfield.Element, int, error) {
		return decodeXList(rest)
	}

	switch tag {
	case AuthenticationStructure:
		v, n, err := readDigestList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewAuthenticationStructure(v), consumed + n, nil
	case MasterBaseTableRows:
		v, n, err := readBRowList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewMasterBaseTableRows(v), consumed + n, nil
	case MasterExtTableRows:
		v, n, err := readXRowList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewMasterExtTableRows(v), consumed + n, nil
	case OutOfDomainBaseRow:
		v, n, err := readXList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewOutOfDomainBaseRow(v), consumed + n, nil
	case OutOfDomainExtRow:
		v, n, err := readXList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewOutOfDomainExtRow(v), consumed + n, nil
	case OutOfDomainQuotientSegments:
		v, n, err := readXList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewOutOfDomainQuotientSegments(v), consumed + n, nil
	case MerkleRoot:
		if len(rest) < digest.Length {
			return Item{}, 0, fmt.Errorf("proofstream: truncated MerkleRoot")
		}
		var d digest.Digest
		copy(d[:], rest[:digest.Length])
		return NewMerkleRoot(d), consumed + digest.Length, nil
	case Log2PaddedHeight:
		if len(rest) < 1 {
			return Item{}, 0, fmt.Errorf("proofstream: truncated Log2PaddedHeight")
		}
		return NewLog2PaddedHeight(uint32(rest[0].Value())), consumed + 1, nil
	case QuotientSegmentsElements:
		v, n, err := readXRowList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewQuotientSegmentsElements(v), consumed + n, nil
	case FriCodeword:
		v, n, err := readXList()
		if err != nil {
			return Item{}, 0, err
		}
		return NewFriCodeword(v), consumed + n, nil
	case FriResponse:
		auth, n1, err := decodeDigestList(rest)
		if err != nil {
			return Item{}, 0, err
		}
		leaves, n2, err := decodeXList(rest[n1:])
		if err != nil {
			return Item{}, 0, err
		}
		return NewFriResponse(auth, leaves), consumed + n1 + n2, nil
	default:
		return Item{}, 0, fmt.Errorf("proofstream: unknown ItemType %d", tag)
	}
}

// --- shared variable-length primitives ---

func encodeXElement(x xfield.Element) []bfield.Element {
	return []bfield.Element{x.Coefficients[0], x.Coefficients[1], x.Coefficients[2]}
}

func decodeXElement(data []bfield.Element) (xfield.Element, error) {
	if len(data) < 3 {
		return xfield.Element{}, fmt.Errorf("proofstream: truncated X element")
	}
	return xfield.New(data[0], data[1], data[2]), nil
}

func encodeXList(xs []xfield.Element) []bfield.Element {
	out := []bfield.Element{bfield.New(uint64(len(xs)))}
	for _, x := range xs {
		out = append(out, encodeXElement(x)...)
	}
	return out
}

func decodeXList(data []bfield.Element) ([]xfield.Element, int, error) {
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("proofstream: truncated X list length prefix")
	}
	n := int(data[0].Value())
	consumed := 1
	out := make([]xfield.Element, n)
	for i := 0; i < n; i++ {
		x, err := decodeXElement(data[consumed:])
		if err != nil {
			return nil, 0, err
		}
		out[i] = x
		consumed += 3
	}
	return out, consumed, nil
}

func encodeXRowList(rows [][]xfield.Element) []bfield.Element {
	out := []bfield.Element{bfield.New(uint64(len(rows)))}
	for _, row := range rows {
		out = append(out, encodeXList(row)...)
	}
	return out
}

func decodeXRowList(data []bfield.Element) ([][]xfield.Element, int, error) {
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("proofstream: truncated X row-list length prefix")
	}
	n := int(data[0].Value())
	consumed := 1
	out := make([][]xfield.Element, n)
	for i := 0; i < n; i++ {
		row, used, err := decodeXList(data[consumed:])
		if err != nil {
			return nil, 0, err
		}
		out[i] = row
		consumed += used
	}
	return out, consumed, nil
}

func encodeBRowList(rows [][]bfield.Element) []bfield.Element {
	out := []bfield.Element{bfield.New(uint64(len(rows)))}
	for _, row := range rows {
		out = append(out, bfield.New(uint64(len(row))))
		out = append(out, row...)
	}
	return out
}

func decodeBRowList(data []bfield.Element) ([][]bfield.Element, int, error) {
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("proofstream: truncated B row-list length prefix")
	}
	n := int(data[0].Value())
	consumed := 1
	out := make([][]bfield.Element, n)
	for i := 0; i < n; i++ {
		if consumed >= len(data) {
			return nil, 0, fmt.Errorf("proofstream: truncated B row-list entry")
		}
		width := int(data[consumed].Value())
		consumed++
		if consumed+width > len(data) {
			return nil, 0, fmt.Errorf("proofstream: truncated B row")
		}
		out[i] = append([]bfield.Element(nil), data[consumed:consumed+width]...)
		consumed += width
	}
	return out, consumed, nil
}

func encodeDigestList(ds []digest.Digest) []bfield.Element {
	out := []bfield.Element{bfield.New(uint64(len(ds)))}
	for _, d := range ds {
		out = append(out, d[:]...)
	}
	return out
}

func decodeDigestList(data []bfield.Element) ([]digest.Digest, int, error) {
	if len(data) < 1 {
		return nil, 0, fmt.Errorf("proofstream: truncated digest-list length prefix")
	}
	n := int(data[0].Value())
	consumed := 1
	out := make([]digest.Digest, n)
	for i := 0; i < n; i++ {
		if consumed+digest.Length > len(data) {
			return nil, 0, fmt.Errorf("proofstream: truncated digest entry")
		}
		var d digest.Digest
		copy(d[:], data[consumed:consumed+digest.Length])
		out[i] = d
		consumed += digest.Length
	}
	return out, consumed, nil
}
