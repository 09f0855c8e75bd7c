package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangbaolong/gotron/canon"
)

func testTransfer(amount int64) *TransferContract {
	owner := make([]byte, 21)
	owner[0] = 0x41
	owner[20] = 0x01
	to := make([]byte, 21)
	to[0] = 0x41
	to[20] = 0x02
	return &TransferContract{
		OwnerAddress: owner,
		ToAddress:    to,
		Amount:       amount,
	}
}

func testTransaction(amount int64) Transaction {
	return Transaction{
		RawData: &TransactionRaw{
			Contracts: []Contract{{Transfer: testTransfer(amount)}},
		},
	}
}

func TestTransferContract_GoldenEncoding(t *testing.T) {
	transfer := testTransfer(100)

	// owner_address (1), to_address (2), amount (3), laid out by hand.
	want := []byte{0x0a, 0x15}
	want = append(want, transfer.OwnerAddress...)
	want = append(want, 0x12, 0x15)
	want = append(want, transfer.ToAddress...)
	want = append(want, 0x18, 0x64)

	assert.Equal(t, want, canon.Marshal(transfer))
}

func TestTransferContract_ZeroAmountOmitted(t *testing.T) {
	withAmount := canon.Marshal(testTransfer(1))
	without := canon.Marshal(testTransfer(0))
	assert.Equal(t, len(withAmount)-2, len(without))
}

func TestContract_GoldenEncoding(t *testing.T) {
	transfer := testTransfer(100)
	transferBytes := canon.Marshal(transfer)
	contract := &Contract{Transfer: transfer}

	// Envelope value: type_url (1) + payload bytes (2).
	envelope := []byte{0x0a, byte(len(TypeURLTransfer))}
	envelope = append(envelope, TypeURLTransfer...)
	envelope = append(envelope, 0x12, byte(len(transferBytes)))
	envelope = append(envelope, transferBytes...)

	// Contract: type tag (1) = 1, parameter (2) = envelope.
	want := []byte{0x08, 0x01, 0x12, byte(len(envelope))}
	want = append(want, envelope...)

	assert.Equal(t, want, canon.Marshal(contract))
	assert.Equal(t, ContractTypeTransfer, contract.Type())
}

func TestTransactionRaw_GoldenEncoding(t *testing.T) {
	tx := testTransaction(100)
	contractBytes := canon.Marshal(&tx.RawData.Contracts[0])

	// Only the contract list (11) is set; all ancillary fields sit at
	// their defaults and contribute no bytes. Field 11 tag = 0x5a.
	want := []byte{0x5a, byte(len(contractBytes))}
	want = append(want, contractBytes...)

	assert.Equal(t, want, canon.Marshal(tx.RawData))
}

func TestTransaction_HashDeterministic(t *testing.T) {
	a := testTransaction(100)
	b := testTransaction(100)
	require.Equal(t, a.Hash(), b.Hash())

	c := testTransaction(101)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestTransaction_HashIgnoresResultsAndSignatures(t *testing.T) {
	plain := testTransaction(100)
	id := plain.Hash()

	executed := testTransaction(100)
	executed.Signatures = [][]byte{make([]byte, 65)}
	executed.Results = []Result{{
		Fee:            10,
		Code:           ResultSuccess,
		ContractResult: ContractResultSuccess,
	}}

	// Identity is a digest over raw data only: attaching results or
	// signatures later never changes it.
	assert.Equal(t, id, executed.Hash())
	assert.NotEqual(t, plain.Bytes(), executed.Bytes())
}

func TestTransaction_BandwidthEstimate(t *testing.T) {
	tx := testTransaction(100)
	tx.Signatures = [][]byte{make([]byte, 65)}

	stripped := Transaction{RawData: tx.RawData, Signatures: tx.Signatures}
	want := len(canon.Marshal(&stripped)) + MaxResultSizeInTx
	assert.Equal(t, want, tx.BandwidthEstimate())

	// Results must not inflate the estimate.
	tx.Results = []Result{{Fee: 100000}}
	assert.Equal(t, want, tx.BandwidthEstimate())
}

func TestContractType_Values(t *testing.T) {
	// Wire tags fixed by the protocol.
	assert.Equal(t, ContractType(0), ContractTypeAccountCreate)
	assert.Equal(t, ContractType(1), ContractTypeTransfer)
	assert.Equal(t, ContractType(31), ContractTypeTriggerSmartContract)
}
