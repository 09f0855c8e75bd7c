package chain

import (
	"github.com/wangbaolong/gotron/canon"
	"github.com/wangbaolong/gotron/types"
)

// MaxResultSizeInTx is the fixed allowance, in bytes, reserved for the
// result list when estimating a transaction's bandwidth cost. Results are
// excluded from the size itself because they are attached after the
// transaction is built.
const MaxResultSizeInTx = 64

// ResultCode is the outcome code of an executed transaction.
type ResultCode int32

const (
	ResultSuccess ResultCode = 0
	ResultFailed  ResultCode = 1
)

// ContractResult is the detailed execution status of a contract call.
// The values are fixed by the network protocol.
type ContractResult int32

const (
	ContractResultDefault             ContractResult = 0
	ContractResultSuccess             ContractResult = 1
	ContractResultRevert              ContractResult = 2
	ContractResultBadJumpDestination  ContractResult = 3
	ContractResultOutOfMemory         ContractResult = 4
	ContractResultPrecompiledContract ContractResult = 5
	ContractResultStackTooSmall       ContractResult = 6
	ContractResultStackTooLarge       ContractResult = 7
	ContractResultIllegalOperation    ContractResult = 8
	ContractResultStackOverflow       ContractResult = 9
	ContractResultOutOfEnergy         ContractResult = 10
	ContractResultOutOfTime           ContractResult = 11
	ContractResultJVMStackOverFlow    ContractResult = 12
	ContractResultUnknown             ContractResult = 13
	ContractResultTransferFailed      ContractResult = 14
)

// Result is the execution result attached to a transaction after it has
// run. It lives outside the raw data, so attaching one never changes the
// transaction's identity.
type Result struct {
	Fee            int64
	Code           ResultCode
	ContractResult ContractResult
}

func (r *Result) EncodeFields(e *canon.Encoder) {
	e.Int64(1, r.Fee)
	e.Int32(2, int32(r.Code))
	e.Int32(3, int32(r.ContractResult))
}

// TransactionRaw is the identity-bearing body of a transaction: the
// ordered contract list plus ancillary scheduling fields. Fields left at
// zero are absent from the canonical encoding.
type TransactionRaw struct {
	RefBlockBytes []byte
	RefBlockNum   int64
	RefBlockHash  []byte
	Expiration    int64
	Data          []byte
	Contracts     []Contract
	Timestamp     int64
	FeeLimit      int64
}

func (r *TransactionRaw) EncodeFields(e *canon.Encoder) {
	e.Bytes(1, r.RefBlockBytes)
	e.Int64(3, r.RefBlockNum)
	e.Bytes(4, r.RefBlockHash)
	e.Int64(8, r.Expiration)
	e.Bytes(10, r.Data)
	for i := range r.Contracts {
		e.Embedded(11, &r.Contracts[i])
	}
	e.Int64(14, r.Timestamp)
	e.Int64(18, r.FeeLimit)
}

// Transaction is a raw body plus signatures and, once executed, results.
type Transaction struct {
	RawData    *TransactionRaw
	Signatures [][]byte
	Results    []Result
}

func (tx *Transaction) EncodeFields(e *canon.Encoder) {
	if tx.RawData != nil {
		e.Embedded(1, tx.RawData)
	}
	for _, sig := range tx.Signatures {
		e.BytesElement(2, sig)
	}
	for i := range tx.Results {
		e.Embedded(5, &tx.Results[i])
	}
}

// Bytes returns the canonical encoding of the whole transaction.
func (tx *Transaction) Bytes() []byte {
	return canon.Marshal(tx)
}

// Hash returns the transaction identifier: the digest of the raw data's
// canonical encoding. Signatures and results are outside the raw data, so
// the identifier is stable across signing and execution.
func (tx *Transaction) Hash() types.Hash {
	if tx.RawData == nil {
		return types.Sum(nil)
	}
	return types.Sum(canon.Marshal(tx.RawData))
}

// BandwidthEstimate returns the bandwidth cost of the transaction: its
// canonical size with results stripped, plus the fixed result allowance.
func (tx *Transaction) BandwidthEstimate() int {
	stripped := Transaction{
		RawData:    tx.RawData,
		Signatures: tx.Signatures,
	}
	return len(canon.Marshal(&stripped)) + MaxResultSizeInTx
}
