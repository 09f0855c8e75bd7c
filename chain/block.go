// Package chain defines the canonical chain records (transactions,
// contracts, block headers) and the derivation of their content-addressed
// identifiers.
package chain

import (
	"encoding/binary"

	"github.com/wangbaolong/gotron/canon"
	"github.com/wangbaolong/gotron/types"
)

// BlockHeaderRaw is the identity-bearing body of a block header.
type BlockHeaderRaw struct {
	Timestamp        int64
	TxTrieRoot       []byte
	ParentHash       []byte
	Number           int64
	WitnessID        int64
	WitnessAddress   []byte
	Version          int32
	AccountStateRoot []byte
}

func (r *BlockHeaderRaw) EncodeFields(e *canon.Encoder) {
	e.Int64(1, r.Timestamp)
	e.Bytes(2, r.TxTrieRoot)
	e.Bytes(3, r.ParentHash)
	e.Int64(7, r.Number)
	e.Int64(8, r.WitnessID)
	e.Bytes(9, r.WitnessAddress)
	e.Int32(10, r.Version)
	e.Bytes(11, r.AccountStateRoot)
}

// BlockHeader is a raw header body plus the producer's signature.
type BlockHeader struct {
	RawData          *BlockHeaderRaw
	WitnessSignature []byte
}

func (h *BlockHeader) EncodeFields(e *canon.Encoder) {
	if h.RawData != nil {
		e.Embedded(1, h.RawData)
	}
	e.Bytes(2, h.WitnessSignature)
}

// Block is a header plus its ordered transaction list. The header's
// TxTrieRoot commits to the transactions: it is the merkle root of their
// identifiers in list order.
type Block struct {
	Transactions []Transaction
	Header       *BlockHeader
}

func (b *Block) EncodeFields(e *canon.Encoder) {
	for i := range b.Transactions {
		e.Embedded(1, &b.Transactions[i])
	}
	if b.Header != nil {
		e.Embedded(2, b.Header)
	}
}

// Bytes returns the canonical encoding of the whole block.
func (b *Block) Bytes() []byte {
	return canon.Marshal(b)
}

// Number returns the block height from the header, or 0 when the header
// is absent.
func (b *Block) Number() int64 {
	if b.Header == nil || b.Header.RawData == nil {
		return 0
	}
	return b.Header.RawData.Number
}

// ID returns the block identifier: the digest of the raw header's
// canonical encoding with its first 8 bytes overwritten by the big-endian
// block number. Consumers recover a block's height from its id without a
// lookup.
func (b *Block) ID() types.Hash {
	var raw *BlockHeaderRaw
	if b.Header != nil {
		raw = b.Header.RawData
	}
	var id types.Hash
	if raw == nil {
		id = types.Sum(nil)
	} else {
		id = types.Sum(canon.Marshal(raw))
	}
	binary.BigEndian.PutUint64(id[:8], uint64(b.Number()))
	return id
}
