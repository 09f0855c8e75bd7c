package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// HashSize is the size of a SHA-256 hash in bytes.
	HashSize = sha256.Size // 32 bytes
)

// Hash is a 32-byte SHA-256 digest.
type Hash [HashSize]byte

// ZeroHash is the all-zero hash. It is the root of an empty merkle
// leaf sequence and the parent reference of chains with no ancestry.
var ZeroHash = Hash{}

// Sum computes the SHA-256 hash of arbitrary bytes.
func Sum(data []byte) Hash {
	return sha256.Sum256(data)
}

// HashConcat computes the SHA-256 hash of the concatenation of two hashes.
// This is the node combining rule for merkle trees.
func HashConcat(left, right Hash) Hash {
	h := sha256.New()
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Bytes returns the hash as a byte slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// Hex returns the lowercase hex encoding of the hash, without a 0x prefix.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	return h.Hex()
}

// IsZero returns true if the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// ParseHash parses a hex-encoded 32-byte hash. An optional "0x" or "0X"
// prefix is accepted. Invalid hex or a decoded length other than 32 bytes
// returns ErrMalformedHex.
func ParseHash(s string) (Hash, error) {
	trimmed := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		trimmed = s[2:]
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return Hash{}, fmt.Errorf("%q: %w", s, ErrMalformedHex)
	}
	if len(raw) != HashSize {
		return Hash{}, fmt.Errorf("%q: decoded to %d bytes, want %d: %w", s, len(raw), HashSize, ErrMalformedHex)
	}
	var h Hash
	copy(h[:], raw)
	return h, nil
}

// HashFromBytes converts a byte slice into a Hash. The slice must be
// exactly 32 bytes.
func HashFromBytes(b []byte) (Hash, error) {
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}
