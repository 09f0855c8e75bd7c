// Package blockstore provides persistence for assembled blocks.
package blockstore

import (
	"github.com/wangbaolong/gotron/types"
)

// Store defines the interface for block persistence.
// Implementations must be safe for concurrent use.
type Store interface {
	// SaveBlock persists canonical block bytes under the given number and id.
	// Returns types.ErrBlockAlreadyExists if a block is already stored at
	// that number.
	SaveBlock(number int64, id types.Hash, data []byte) error

	// LoadBlock retrieves a block by number.
	// Returns types.ErrBlockNotFound if no block is stored there.
	LoadBlock(number int64) (id types.Hash, data []byte, err error)

	// LoadBlockByID retrieves a block by its identifier.
	// Returns types.ErrBlockNotFound if the block does not exist.
	LoadBlockByID(id types.Hash) (number int64, data []byte, err error)

	// HasBlock checks if a block exists at the given number.
	HasBlock(number int64) bool

	// Height returns the highest stored block number, or -1 when the
	// store is empty. Genesis lives at number 0.
	Height() int64

	// Meta returns the chain metadata record, or (nil, nil) when the
	// store holds no chain yet.
	Meta() (*ChainMeta, error)

	// SaveMeta writes the chain metadata record.
	SaveMeta(meta *ChainMeta) error

	// Close closes the store and releases resources.
	Close() error
}

// ChainMeta describes the chain held by a store. It is a local record,
// serialized with cramberry; it never crosses the wire and is not part of
// any consensus encoding.
type ChainMeta struct {
	ChainID   string `cramberry:"1"`
	GenesisID []byte `cramberry:"2"`
	Mantra    string `cramberry:"3"`
	CreatedAt int64  `cramberry:"4"`
}
