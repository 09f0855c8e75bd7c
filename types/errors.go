// Package types provides common types used throughout gotron.
package types

import "errors"

// Address-related errors.
var (
	// ErrInvalidAddress is returned when a base58check address string
	// fails checksum validation or decodes to the wrong length.
	ErrInvalidAddress = errors.New("invalid address")
)

// Encoding-related errors.
var (
	// ErrMalformedHex is returned when a hex string cannot be decoded
	// or decodes to an unexpected length.
	ErrMalformedHex = errors.New("malformed hex")
)

// Block-related errors.
var (
	// ErrBlockNotFound is returned when a block cannot be found.
	ErrBlockNotFound = errors.New("block not found")

	// ErrBlockAlreadyExists is returned when attempting to store a block
	// that already exists.
	ErrBlockAlreadyExists = errors.New("block already exists")

	// ErrChainInitialized is returned when attempting to initialize a
	// chain in a store that already holds one.
	ErrChainInitialized = errors.New("chain already initialized")
)
