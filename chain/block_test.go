package chain

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/wangbaolong/gotron/canon"
	"github.com/wangbaolong/gotron/types"
)

func testHeaderRaw(number int64) *BlockHeaderRaw {
	root := make([]byte, 32)
	root[0] = 0xaa
	parent := make([]byte, 32)
	parent[0] = 0xbb
	return &BlockHeaderRaw{
		Number:         number,
		Timestamp:      1565913600000,
		WitnessAddress: []byte("genesis mantra"),
		ParentHash:     parent,
		TxTrieRoot:     root,
	}
}

func TestBlockHeaderRaw_GoldenEncoding(t *testing.T) {
	raw := testHeaderRaw(0)

	// timestamp (1), txTrieRoot (2), parentHash (3), witness_address (9);
	// number 0 is absent. Field 9 tag = 0x4a.
	var want []byte
	want = protowire.AppendTag(want, 1, protowire.VarintType)
	want = protowire.AppendVarint(want, uint64(raw.Timestamp))
	want = append(want, 0x12, 0x20)
	want = append(want, raw.TxTrieRoot...)
	want = append(want, 0x1a, 0x20)
	want = append(want, raw.ParentHash...)
	want = append(want, 0x4a, byte(len(raw.WitnessAddress)))
	want = append(want, raw.WitnessAddress...)

	assert.Equal(t, want, canon.Marshal(raw))
}

func TestBlock_IDEmbedsNumber(t *testing.T) {
	for _, number := range []int64{0, 1, 42, 4094631} {
		block := &Block{Header: &BlockHeader{RawData: testHeaderRaw(number)}}
		id := block.ID()

		got := binary.BigEndian.Uint64(id[:8])
		require.Equal(t, uint64(number), got, "number %d", number)
	}
}

func TestBlock_IDTailFromHeaderDigest(t *testing.T) {
	raw := testHeaderRaw(7)
	block := &Block{Header: &BlockHeader{RawData: raw}}

	digest := types.Sum(canon.Marshal(raw))
	id := block.ID()

	// Bytes past the embedded number come from the raw header digest.
	assert.Equal(t, digest[8:], id[8:])
	assert.NotEqual(t, digest[:8], id[:8])
}

func TestBlock_IDDependsOnHeader(t *testing.T) {
	a := &Block{Header: &BlockHeader{RawData: testHeaderRaw(0)}}

	changed := testHeaderRaw(0)
	changed.Timestamp++
	b := &Block{Header: &BlockHeader{RawData: changed}}

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestBlock_IDIgnoresSignatureAndTransactions(t *testing.T) {
	raw := testHeaderRaw(0)
	bare := &Block{Header: &BlockHeader{RawData: raw}}

	full := &Block{
		Header: &BlockHeader{
			RawData:          raw,
			WitnessSignature: make([]byte, 65),
		},
		Transactions: []Transaction{testTransaction(100)},
	}

	// The id derives from the raw header only; the commitment to the
	// transactions is the merkle root inside it.
	assert.Equal(t, bare.ID(), full.ID())
}

func TestBlock_GoldenEncoding(t *testing.T) {
	tx := testTransaction(100)
	header := &BlockHeader{RawData: testHeaderRaw(0)}
	block := &Block{Transactions: []Transaction{tx}, Header: header}

	txBytes := canon.Marshal(&tx)
	headerBytes := canon.Marshal(header)

	want := []byte{0x0a, byte(len(txBytes))}
	want = append(want, txBytes...)
	want = append(want, 0x12, byte(len(headerBytes)))
	want = append(want, headerBytes...)

	assert.Equal(t, want, block.Bytes())
}

func TestBlock_Number(t *testing.T) {
	assert.Equal(t, int64(0), (&Block{}).Number())
	assert.Equal(t, int64(9), (&Block{Header: &BlockHeader{RawData: testHeaderRaw(9)}}).Number())
}
