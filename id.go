package ident

import (
	"bytes"
	"fmt"
)

// Size is the length of an ID in bytes.
const Size = 16

// ID is an opaque 128-bit identifier. IDs compare byte-wise, so == and
// Compare agree with lexicographic order over the 16 bytes.
type ID [Size]byte

// unset marks identifier fields that were never assigned.
var unset = ID{'U', 'N', 'S', 'E', 'T', '_', 'U', 'U', 'I', 'D', '_', '_', '_', '_', '_', 0}

// Nil returns the all-zero identifier, the explicit "no identifier" value.
func Nil() ID { return ID{} }

// Unset returns the sentinel used for identifier fields that have not been
// assigned yet. It is distinct from Nil.
func Unset() ID { return unset }

// IsNil reports whether all bytes are zero.
func (id ID) IsNil() bool { return id == ID{} }

// IsUnset reports whether id is the Unset sentinel.
func (id ID) IsUnset() bool { return id == unset }

// Equal reports whether id and other hold the same bytes.
func (id ID) Equal(other ID) bool { return id == other }

// Compare returns -1, 0 or 1 based on lexicographic byte comparison.
func (id ID) Compare(other ID) int { return bytes.Compare(id[:], other[:]) }

// Less reports whether id orders before other.
func (id ID) Less(other ID) bool { return id.Compare(other) < 0 }

// Bytes returns a copy of the raw 16-byte representation.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// FromBytes builds an ID from exactly Size bytes.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != Size {
		return id, fmt.Errorf("invalid identifier length: %d, expected %d", len(b), Size)
	}
	copy(id[:], b)
	return id, nil
}
