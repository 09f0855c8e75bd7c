// Package genesis builds a network's first block from its genesis
// configuration.
//
// The pipeline is pure and single-pass: configuration to transactions,
// transactions to identifiers, identifiers to a merkle root, root to a
// header, header to a block. Any failure aborts the whole build; no
// partial block is ever produced. Independent builds share no state and
// may run concurrently without synchronization.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wangbaolong/gotron/chain"
	"github.com/wangbaolong/gotron/keys"
	"github.com/wangbaolong/gotron/merkle"
	"github.com/wangbaolong/gotron/types"
)

// Witness is a genesis validator entry. Witnesses are informational for
// block assembly: they seed the validator set but contribute no bytes to
// the genesis block itself.
type Witness struct {
	Address string `json:"address"`
	URL     string `json:"url"`
	Votes   int64  `json:"votes"`
}

// Alloc is an initial balance allocation. Each allocation becomes one
// transfer transaction in the genesis block, in list order.
type Alloc struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// Config is a genesis document.
type Config struct {
	Timestamp  int64     `json:"timestamp"`
	ParentHash string    `json:"parentHash"`
	Witnesses  []Witness `json:"witnesses"`
	Allocs     []Alloc   `json:"allocs"`
	Mantra     string    `json:"mantra"`
	Creator    string    `json:"creator"`
}

// Parse decodes a genesis document from JSON bytes.
func Parse(data []byte) (*Config, error) {
	conf := &Config{}
	if err := json.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing genesis config: %w", err)
	}
	return conf, nil
}

// Load reads and parses a genesis document from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading genesis file: %w", err)
	}
	return Parse(data)
}

// Build assembles the genesis block. The creator address funds every
// allocation; allocation order fixes transaction order and therefore the
// merkle root. The header carries block number 0, the configured
// timestamp, the mantra's bytes verbatim as the producer identity, and
// the parsed parent hash.
func (c *Config) Build() (*chain.Block, error) {
	creator, err := keys.Decode(c.Creator)
	if err != nil {
		return nil, fmt.Errorf("decoding creator address: %w", err)
	}

	txs := make([]chain.Transaction, 0, len(c.Allocs))
	for i, alloc := range c.Allocs {
		tx, err := alloc.transaction(creator)
		if err != nil {
			return nil, fmt.Errorf("alloc %d (%s): %w", i, alloc.Name, err)
		}
		txs = append(txs, tx)
	}

	ids := make([]types.Hash, len(txs))
	for i := range txs {
		ids[i] = txs[i].Hash()
	}
	root := merkle.Root(ids)

	parent, err := types.ParseHash(c.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("parsing parentHash: %w", err)
	}

	raw := &chain.BlockHeaderRaw{
		Number:         0,
		Timestamp:      c.Timestamp,
		WitnessAddress: []byte(c.Mantra),
		ParentHash:     parent.Bytes(),
		TxTrieRoot:     root.Bytes(),
	}

	return &chain.Block{
		Header:       &chain.BlockHeader{RawData: raw},
		Transactions: txs,
	}, nil
}

// transaction converts one allocation into a transfer from the creator.
func (a *Alloc) transaction(creator keys.Address) (chain.Transaction, error) {
	to, err := keys.Decode(a.Address)
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("decoding address: %w", err)
	}

	contract := chain.Contract{
		Transfer: &chain.TransferContract{
			OwnerAddress: creator.Bytes(),
			ToAddress:    to.Bytes(),
			Amount:       a.Balance,
		},
	}
	return chain.Transaction{
		RawData: &chain.TransactionRaw{
			Contracts: []chain.Contract{contract},
		},
	}, nil
}
