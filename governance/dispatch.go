package governance

import (
	"strconv"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// CPI dispatch
// -----------------------------------------------------------------------------

// checkTarget cross-checks the queued address against the account the caller
// supplied to execute. This blocks substituting a different target than what
// the quorum approved.
func checkTarget(queued sdk.Address, supplied string) {
	if supplied == "" {
		contract.Fail(contract.ErrInvalidAccount, "target account required")
	}
	addr := mustAddr(supplied, "target account")
	if addr != queued {
		contract.Fail(contract.ErrInvalidAccount, "target %s does not match queued %s", addr, queued)
	}
}

// dispatch applies the queued effect. Config kinds mutate governance state
// directly after re-validating against the live bounds; everything else goes
// out as a signed call into the configured collaborator.
func dispatch(st *GovernanceState, tx *Transaction, target string) {
	switch tx.Kind {
	case KindSetRequiredApprovals:
		p := tx.payload.(ApprovalsPayload)
		validateApprovals(p.Value, len(st.Signers))
		old := st.RequiredApprovals
		st.RequiredApprovals = p.Value
		saveState(st)
		emitConfigChangedEvent("required_approvals", strconv.Itoa(int(old)), strconv.Itoa(int(p.Value)))

	case KindSetCooldownPeriod:
		p := tx.payload.(CooldownPayload)
		validateCooldown(p.Seconds)
		old := st.CooldownPeriod
		st.CooldownPeriod = p.Seconds
		saveState(st)
		emitConfigChangedEvent("cooldown_period", strconv.FormatInt(old, 10), strconv.FormatInt(p.Seconds, 10))

	case KindUnpause:
		contract.Call(st.TokenProgram, "set_pause",
			contract.ToJSON(map[string]any{"flag": false}, "cpi payload"))

	case KindBlacklist, KindNoSellLimit, KindRestrict, KindPair:
		p := tx.payload.(AddressFlagPayload)
		checkTarget(tx.Target, target)
		contract.Call(st.TokenProgram, flagMethod(tx.Kind),
			contract.ToJSON(map[string]any{"account": p.Account.String(), "flag": p.Flag}, "cpi payload"))

	case KindSetBridgeAddress, KindSetBondAddress:
		p := tx.payload.(AddressPayload)
		checkTarget(tx.Target, target)
		contract.Call(st.TokenProgram, addressMethod(tx.Kind),
			contract.ToJSON(map[string]any{"account": p.Account.String()}, "cpi payload"))

	case KindSetTreasuryAddress:
		p := tx.payload.(AddressPayload)
		checkTarget(tx.Target, target)
		contract.Call(st.PresaleProgram, "set_treasury_address",
			contract.ToJSON(map[string]any{"account": p.Account.String()}, "cpi payload"))

	case KindWithdrawToTreasury:
		p := tx.payload.(AmountPayload)
		contract.Call(st.PresaleProgram, "withdraw_to_treasury",
			contract.ToJSON(map[string]any{"amount": p.Amount}, "cpi payload"))

	default:
		sdk.Abort("unknown transaction kind")
	}
}

func flagMethod(kind TxKind) string {
	switch kind {
	case KindBlacklist:
		return "set_blacklist"
	case KindNoSellLimit:
		return "set_no_sell_limit"
	case KindRestrict:
		return "set_restricted"
	default:
		return "set_liquidity_pool"
	}
}

func addressMethod(kind TxKind) string {
	if kind == KindSetBridgeAddress {
		return "set_bridge_address"
	}
	return "set_bond_address"
}

// EmergencyPause is the single-signer fast path: no queue, no cooldown, it
// only ever flips the emergency bit on, never off. Unpausing goes through
// the full quorum.
// Payload: {}
//
//go:wasmexport emergency_pause
func EmergencyPause(payload *string) *string {
	st := loadState()
	caller := requireSigner(st)
	requireTokenProgram(st)

	contract.Call(st.TokenProgram, "set_emergency_pause",
		contract.ToJSON(map[string]any{"flag": true}, "cpi payload"))

	emitEmergencyPauseEvent(caller.String())
	return respond(map[string]any{"paused": true})
}
