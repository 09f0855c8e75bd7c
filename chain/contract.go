package chain

import (
	"github.com/wangbaolong/gotron/canon"
)

// ContractType enumerates the operation kinds a transaction contract can
// carry. The values are fixed by the network protocol.
type ContractType int32

const (
	ContractTypeAccountCreate        ContractType = 0
	ContractTypeTransfer             ContractType = 1
	ContractTypeTransferAsset        ContractType = 2
	ContractTypeVoteAsset            ContractType = 3
	ContractTypeVoteWitness          ContractType = 4
	ContractTypeWitnessCreate        ContractType = 5
	ContractTypeAssetIssue           ContractType = 6
	ContractTypeWitnessUpdate        ContractType = 8
	ContractTypeParticipateAsset     ContractType = 9
	ContractTypeAccountUpdate        ContractType = 10
	ContractTypeFreezeBalance        ContractType = 11
	ContractTypeUnfreezeBalance      ContractType = 12
	ContractTypeWithdrawBalance      ContractType = 13
	ContractTypeUnfreezeAsset        ContractType = 14
	ContractTypeUpdateAsset          ContractType = 15
	ContractTypeProposalCreate       ContractType = 16
	ContractTypeProposalApprove      ContractType = 17
	ContractTypeProposalDelete       ContractType = 18
	ContractTypeSetAccountID         ContractType = 19
	ContractTypeCustom               ContractType = 20
	ContractTypeCreateSmartContract  ContractType = 30
	ContractTypeTriggerSmartContract ContractType = 31
)

// TypeURLTransfer is the envelope type URL for transfer payloads.
const TypeURLTransfer = "type.googleapis.com/protocol.TransferContract"

// TransferContract moves an amount of the base currency, in its smallest
// unit, from owner to recipient.
type TransferContract struct {
	OwnerAddress []byte
	ToAddress    []byte
	Amount       int64
}

func (c *TransferContract) EncodeFields(e *canon.Encoder) {
	e.Bytes(1, c.OwnerAddress)
	e.Bytes(2, c.ToAddress)
	e.Int64(3, c.Amount)
}

// anyEnvelope is the wire-level type-tagged wrapper around a contract
// payload. It exists only at the encoding boundary: in-memory contracts
// hold their payload directly.
type anyEnvelope struct {
	TypeURL string
	Value   []byte
}

func (a *anyEnvelope) EncodeFields(e *canon.Encoder) {
	e.String(1, a.TypeURL)
	e.Bytes(2, a.Value)
}

// Contract is one operation inside a transaction. It is a closed sum:
// exactly one payload variant is set. The network declares many variants;
// this module models the transfer variant, the representative case for
// genesis allocations.
type Contract struct {
	Transfer *TransferContract
}

// Type returns the contract-type tag of the active variant.
func (c *Contract) Type() ContractType {
	if c.Transfer != nil {
		return ContractTypeTransfer
	}
	return ContractTypeAccountCreate
}

func (c *Contract) EncodeFields(e *canon.Encoder) {
	if c.Transfer != nil {
		e.Int32(1, int32(ContractTypeTransfer))
		e.Embedded(2, &anyEnvelope{
			TypeURL: TypeURLTransfer,
			Value:   canon.Marshal(c.Transfer),
		})
	}
}
