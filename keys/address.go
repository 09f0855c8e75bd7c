// Package keys implements the checksummed base58 address encoding.
//
// A raw address is 21 bytes: a one-byte network prefix followed by a
// 20-byte account identifier. The textual form appends the first 4 bytes
// of SHA-256(SHA-256(raw)) as a checksum before base58 encoding.
package keys

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/wangbaolong/gotron/types"
)

const (
	// AddressLength is the raw address length in bytes.
	AddressLength = 21

	// AddressPrefix is the mainnet address prefix byte.
	AddressPrefix = 0x41

	checksumLength = 4
)

// Address is a raw 21-byte account address.
type Address [AddressLength]byte

// Decode parses a base58check address string. It returns
// types.ErrInvalidAddress when the string is not valid base58, the
// checksum does not match, or the decoded payload is not 21 bytes.
func Decode(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("%q: %w", s, types.ErrInvalidAddress)
	}
	if len(raw) < checksumLength+1 {
		return Address{}, fmt.Errorf("%q: too short: %w", s, types.ErrInvalidAddress)
	}

	payload := raw[:len(raw)-checksumLength]
	check := raw[len(raw)-checksumLength:]
	if !bytes.Equal(check, checksum(payload)) {
		return Address{}, fmt.Errorf("%q: checksum mismatch: %w", s, types.ErrInvalidAddress)
	}
	if len(payload) != AddressLength {
		return Address{}, fmt.Errorf("%q: decoded to %d bytes, want %d: %w",
			s, len(payload), AddressLength, types.ErrInvalidAddress)
	}

	var addr Address
	copy(addr[:], payload)
	return addr, nil
}

// FromBytes converts raw bytes into an Address. The slice must be exactly
// 21 bytes.
func FromBytes(b []byte) (Address, error) {
	if len(b) != AddressLength {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d: %w",
			AddressLength, len(b), types.ErrInvalidAddress)
	}
	var addr Address
	copy(addr[:], b)
	return addr, nil
}

// Bytes returns the raw address bytes.
func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the base58check encoding of the address.
func (a Address) String() string {
	payload := a[:]
	buf := make([]byte, 0, AddressLength+checksumLength)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload)...)
	return base58.Encode(buf)
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}
