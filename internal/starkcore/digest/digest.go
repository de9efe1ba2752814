// Package digest defines the fixed-width hash output shared by the sponge
// and the Merkle tree.
package digest

import (
	"encoding/hex"

	"github.com/vybium/starkcore/internal/starkcore/bfield"
)

// Length is the tip5 output width in B elements.
const Length = 5

// Digest is a fixed-width tuple of B elements.
type Digest [Length]bfield.Element

// Zero is the all-zero digest, used as the default/placeholder value.
var Zero = Digest{}

// Equal reports value equality.
func (d Digest) Equal(other Digest) bool {
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Bytes returns the 40-byte little-endian encoding (8 bytes per B element).
func (d Digest) Bytes() []byte {
	out := make([]byte, 0, Length*8)
	for _, e := range d {
		b := e.Bytes()
		out = append(out, b[:]...)
	}
	return out
}

// String renders the digest as a hex string.
func (d Digest) String() string {
	return hex.EncodeToString(d.Bytes())
}
