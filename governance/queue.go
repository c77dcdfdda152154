package governance

import (
	"encoding/hex"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Queue operations - one export per transaction kind
// -----------------------------------------------------------------------------

// queueTransaction is the shared tail of every queue_* export: allocate the
// next id, snapshot the cooldown into execute_after, flatten the payload and
// persist. Later cooldown changes never touch already queued entries.
func queueTransaction(st *GovernanceState, kind TxKind, payload Payload) *string {
	caller := requireSigner(st)
	now := contract.NowUnix()

	id := st.NextTransactionId
	next, ok := contract.CheckedAddU64(id, 1)
	if !ok {
		contract.Fail(contract.ErrOverflow, "transaction id counter exhausted")
	}

	tx := &Transaction{
		Id:           id,
		Kind:         kind,
		Status:       StatusPending,
		Initiator:    caller,
		Target:       payloadTarget(payload),
		Data:         hex.EncodeToString(encodePayload(payload)),
		Timestamp:    now,
		ExecuteAfter: now + st.CooldownPeriod,
		Approvals:    []sdk.Address{},
		payload:      payload,
	}
	saveTransaction(tx)

	st.NextTransactionId = next
	saveState(st)

	emitQueuedEvent(id, kind, caller.String())
	return respond(map[string]any{"id": id})
}

// payloadTarget pulls the queued account out of address-bearing payloads so
// the record carries it as a first-class field.
func payloadTarget(p Payload) sdk.Address {
	switch v := p.(type) {
	case AddressPayload:
		return v.Account
	case AddressFlagPayload:
		return v.Account
	default:
		return sdk.ZeroAddress
	}
}

// requireTokenProgram gates every token-engine kind.
func requireTokenProgram(st *GovernanceState) {
	if !st.TokenProgramSet {
		contract.Fail(contract.ErrTokenProgramNotSet, "token program not configured")
	}
}

// requirePresaleProgram gates treasury kinds.
func requirePresaleProgram(st *GovernanceState) {
	if !st.PresaleProgramSet {
		contract.Fail(contract.ErrPresaleProgramNotSet, "presale program not configured")
	}
}

type AddressArgs struct {
	Account string `json:"account"`
}

type AddressFlagArgs struct {
	Account string `json:"account"`
	Flag    bool   `json:"flag"`
}

type AmountArgs struct {
	Amount uint64 `json:"amount"`
}

// decodeAddressFlagArgs rejects the zero address for every target-bearing kind.
func decodeAddressFlagArgs(payload *string) AddressFlagPayload {
	args := contract.FromJSON[AddressFlagArgs](*payload, "address+flag args")
	addr := mustAddr(args.Account, "target account")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "target cannot be the zero address")
	}
	return AddressFlagPayload{Account: addr, Flag: args.Flag}
}

func decodeAddressArgs(payload *string) AddressPayload {
	args := contract.FromJSON[AddressArgs](*payload, "address args")
	addr := mustAddr(args.Account, "target account")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "target cannot be the zero address")
	}
	return AddressPayload{Account: addr}
}

// QueueUnpause queues lifting the token pause. Payload: {}
//
//go:wasmexport queue_unpause
func QueueUnpause(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindUnpause, EmptyPayload{})
}

// QueueSetBlacklist queues a blacklist flag change.
// Payload: {"account":"<base58>","flag":true}
//
//go:wasmexport queue_set_blacklist
func QueueSetBlacklist(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindBlacklist, decodeAddressFlagArgs(payload))
}

//go:wasmexport queue_set_no_sell_limit
func QueueSetNoSellLimit(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindNoSellLimit, decodeAddressFlagArgs(payload))
}

//go:wasmexport queue_set_restricted
func QueueSetRestricted(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindRestrict, decodeAddressFlagArgs(payload))
}

//go:wasmexport queue_set_liquidity_pool
func QueueSetLiquidityPool(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindPair, decodeAddressFlagArgs(payload))
}

//go:wasmexport queue_set_bridge_address
func QueueSetBridgeAddress(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindSetBridgeAddress, decodeAddressArgs(payload))
}

//go:wasmexport queue_set_bond_address
func QueueSetBondAddress(payload *string) *string {
	st := loadState()
	requireTokenProgram(st)
	return queueTransaction(st, KindSetBondAddress, decodeAddressArgs(payload))
}

//go:wasmexport queue_set_treasury_address
func QueueSetTreasuryAddress(payload *string) *string {
	st := loadState()
	requirePresaleProgram(st)
	return queueTransaction(st, KindSetTreasuryAddress, decodeAddressArgs(payload))
}

// QueueWithdrawToTreasury queues moving raised funds out of the presale
// vaults. Payload: {"amount":1000000}
//
//go:wasmexport queue_withdraw_to_treasury
func QueueWithdrawToTreasury(payload *string) *string {
	st := loadState()
	requirePresaleProgram(st)
	args := contract.FromJSON[AmountArgs](*payload, "amount args")
	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "withdraw amount must be positive")
	}
	return queueTransaction(st, KindWithdrawToTreasury, AmountPayload{Amount: args.Amount})
}

// QueueSetRequiredApprovals validates bounds at queue time, they are checked
// again against the live signer count at execute time.
// Payload: {"value":3}
//
//go:wasmexport queue_set_required_approvals
func QueueSetRequiredApprovals(payload *string) *string {
	st := loadState()
	args := contract.FromJSON[SetRequiredApprovalsArgs](*payload, "set required approvals args")
	validateApprovals(args.Value, len(st.Signers))
	return queueTransaction(st, KindSetRequiredApprovals, ApprovalsPayload{Value: args.Value})
}

// QueueSetCooldownPeriod queues a timelock change. Payload: {"seconds":3600}
//
//go:wasmexport queue_set_cooldown_period
func QueueSetCooldownPeriod(payload *string) *string {
	st := loadState()
	args := contract.FromJSON[SetCooldownPeriodArgs](*payload, "set cooldown args")
	validateCooldown(args.Seconds)
	return queueTransaction(st, KindSetCooldownPeriod, CooldownPayload{Seconds: args.Seconds})
}
