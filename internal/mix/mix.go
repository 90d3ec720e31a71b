package mix

import (
	"crypto/sha1"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// BlockSize is the size of blocks consumed and produced by a Func.
const BlockSize = 16

// Digest names recognised by Lookup.
const (
	SHA1    = "sha1"
	BLAKE2b = "blake2b"
	SHA3    = "sha3"
)

// Func maps a counter block to a decorrelated block of the same size.
type Func func(block [BlockSize]byte) [BlockSize]byte

// Sha1 keeps the leading 16 bytes of the SHA-1 sum of block.
func Sha1(block [BlockSize]byte) [BlockSize]byte {
	sum := sha1.Sum(block[:])
	return leading(sum[:])
}

// Blake2b keeps the leading 16 bytes of the BLAKE2b-256 sum of block.
func Blake2b(block [BlockSize]byte) [BlockSize]byte {
	sum := blake2b.Sum256(block[:])
	return leading(sum[:])
}

// Sha3 keeps the leading 16 bytes of the SHA3-256 sum of block.
func Sha3(block [BlockSize]byte) [BlockSize]byte {
	sum := sha3.Sum256(block[:])
	return leading(sum[:])
}

// Lookup returns the digest registered under name (case-insensitive).
// An empty name selects SHA1.
func Lookup(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SHA1:
		return Sha1, nil
	case BLAKE2b:
		return Blake2b, nil
	case SHA3:
		return Sha3, nil
	}
	return nil, fmt.Errorf("unsupported digest %q", name)
}

func leading(sum []byte) [BlockSize]byte {
	var out [BlockSize]byte
	copy(out[:], sum)
	return out
}
