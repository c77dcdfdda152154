package governance

import (
	"meridian_protocol/sdk"
)

// TxKind tags the queued transaction variants. The numeric order is part of
// the stored format, append only.
type TxKind uint8

const (
	KindUnpause TxKind = iota
	KindBlacklist
	KindNoSellLimit
	KindRestrict
	KindPair
	KindSetRequiredApprovals
	KindSetCooldownPeriod
	KindSetBridgeAddress
	KindSetBondAddress
	KindSetTreasuryAddress
	KindWithdrawToTreasury
)

type TxStatus uint8

const (
	StatusPending TxStatus = iota
	StatusRejected
	StatusExecuted
)

const (
	MinRequiredApprovals = 2
	MinCooldownSeconds   = int64(1800)
	MaxCooldownSeconds   = int64(2592000) // 30 days
	MaxSigners           = 10
	MaxRejectionReason   = 256
)

// GovernanceState - stored once at gov:state
type GovernanceState struct {
	Authority         sdk.Address   `json:"authority"`
	RequiredApprovals uint8         `json:"required_approvals"`
	CooldownPeriod    int64         `json:"cooldown_period"`
	NextTransactionId uint64        `json:"next_transaction_id"`
	TokenProgram      sdk.Address   `json:"token_program"`
	TokenProgramSet   bool          `json:"token_program_set"`
	PresaleProgram    sdk.Address   `json:"presale_program"`
	PresaleProgramSet bool          `json:"presale_program_set"`
	Signers           []sdk.Address `json:"signers"`
}

// isSigner is a linear scan, the list is capped at ten entries.
func (st *GovernanceState) isSigner(addr sdk.Address) bool {
	for _, s := range st.Signers {
		if s == addr {
			return true
		}
	}
	return false
}

// Transaction - stored separately at gov:tx:<id>. Data holds the flat
// payload bytes (hex); the typed view lives in payload and is rebuilt by
// decodePayload on every load so handlers never touch raw offsets. Target
// is the queued account for address-bearing kinds, zero otherwise.
type Transaction struct {
	Id              uint64        `json:"id"`
	Kind            TxKind        `json:"kind"`
	Status          TxStatus      `json:"status"`
	Initiator       sdk.Address   `json:"initiator"`
	Target          sdk.Address   `json:"target"`
	Data            string        `json:"data"`
	Timestamp       int64         `json:"timestamp"`
	ExecuteAfter    int64         `json:"execute_after"`
	ApprovalCount   uint8         `json:"approval_count"`
	Approvals       []sdk.Address `json:"approvals"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	Rejector        sdk.Address   `json:"rejector,omitempty"`

	payload Payload
}

func (tx *Transaction) hasApproved(addr sdk.Address) bool {
	for _, a := range tx.Approvals {
		if a == addr {
			return true
		}
	}
	return false
}

// Payload is the tagged union behind Transaction.Data. Each variant carries
// exactly the typed fields its kind needs.
type Payload interface {
	isPayload()
}

type EmptyPayload struct{}

type AddressPayload struct {
	Account sdk.Address
}

type AddressFlagPayload struct {
	Account sdk.Address
	Flag    bool
}

type ApprovalsPayload struct {
	Value uint8
}

type CooldownPayload struct {
	Seconds int64
}

type AmountPayload struct {
	Amount uint64
}

func (EmptyPayload) isPayload()       {}
func (AddressPayload) isPayload()     {}
func (AddressFlagPayload) isPayload() {}
func (ApprovalsPayload) isPayload()   {}
func (CooldownPayload) isPayload()    {}
func (AmountPayload) isPayload()      {}

// Role - stored at gov:role:<account>, a loose capability flag outside the
// signer quorum.
type Role struct {
	Account sdk.Address `json:"account"`
	Role    uint8       `json:"role"`
	HasRole bool        `json:"has_role"`
}
