package governance

import (
	"strconv"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Program Initialization & Config
// -----------------------------------------------------------------------------

type InitializeArgs struct {
	RequiredApprovals uint8    `json:"required_approvals"`
	CooldownPeriod    int64    `json:"cooldown_period"`
	Signers           []string `json:"signers"`
}

// Initialize creates the singleton governance state with the caller as
// authority. Must be called before any other function.
// Payload: {"required_approvals":2,"cooldown_period":1800,"signers":["...", "..."]}
//
//go:wasmexport governance_init
func Initialize(payload *string) *string {
	if isInitialized() {
		contract.Fail(contract.ErrAlreadyInitialized, "governance already initialized")
	}
	args := contract.FromJSON[InitializeArgs](*payload, "initialize args")

	if len(args.Signers) == 0 {
		contract.Fail(contract.ErrInvalidAccount, "signer list is empty")
	}
	if len(args.Signers) > MaxSigners {
		contract.Fail(contract.ErrTooManySigners, "%d signers above maximum %d", len(args.Signers), MaxSigners)
	}
	signers := make([]sdk.Address, 0, len(args.Signers))
	seen := map[sdk.Address]struct{}{}
	for _, s := range args.Signers {
		addr := mustAddr(s, "signer")
		if addr.IsZero() {
			contract.Fail(contract.ErrInvalidAccount, "signer cannot be the zero address")
		}
		if _, ok := seen[addr]; ok {
			contract.Fail(contract.ErrDuplicateSigners, "signer %s listed twice", addr)
		}
		seen[addr] = struct{}{}
		signers = append(signers, addr)
	}
	validateApprovals(args.RequiredApprovals, len(signers))
	validateCooldown(args.CooldownPeriod)

	st := &GovernanceState{
		Authority:         contract.SenderAddress(),
		RequiredApprovals: args.RequiredApprovals,
		CooldownPeriod:    args.CooldownPeriod,
		NextTransactionId: 1,
		Signers:           signers,
	}
	saveState(st)
	emitConfigChangedEvent("init", "", strconv.Itoa(len(signers))+" signers")
	return respond(map[string]any{"ok": true})
}

type SetProgramArgs struct {
	Program string `json:"program"`
}

// SetTokenProgram wires the token collaborator, once, authority only.
// Payload: {"program":"<base58>"}
//
//go:wasmexport set_token_program
func SetTokenProgram(payload *string) *string {
	st := loadState()
	requireAuthority(st)
	if st.TokenProgramSet {
		contract.Fail(contract.ErrAlreadyInitialized, "token program already set")
	}
	args := contract.FromJSON[SetProgramArgs](*payload, "set program args")
	addr := mustAddr(args.Program, "token program")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "token program cannot be the zero address")
	}
	st.TokenProgram = addr
	st.TokenProgramSet = true
	saveState(st)
	emitConfigChangedEvent("token_program", "", addr.String())
	return respond(map[string]any{"ok": true})
}

// SetPresaleProgram wires the presale collaborator, once, authority only.
//
//go:wasmexport set_presale_program
func SetPresaleProgram(payload *string) *string {
	st := loadState()
	requireAuthority(st)
	if st.PresaleProgramSet {
		contract.Fail(contract.ErrAlreadyInitialized, "presale program already set")
	}
	args := contract.FromJSON[SetProgramArgs](*payload, "set program args")
	addr := mustAddr(args.Program, "presale program")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "presale program cannot be the zero address")
	}
	st.PresaleProgram = addr
	st.PresaleProgramSet = true
	saveState(st)
	emitConfigChangedEvent("presale_program", "", addr.String())
	return respond(map[string]any{"ok": true})
}

type SetRequiredApprovalsArgs struct {
	Value uint8 `json:"value"`
}

// SetRequiredApprovals changes the quorum floor without going through the
// queue.
//
// Deprecated: bypasses the quorum entirely, gated on the deploying authority
// only. Use queue_set_required_approvals instead.
//
//go:wasmexport set_required_approvals
func SetRequiredApprovals(payload *string) *string {
	st := loadState()
	requireAuthority(st)
	args := contract.FromJSON[SetRequiredApprovalsArgs](*payload, "set required approvals args")
	validateApprovals(args.Value, len(st.Signers))
	old := st.RequiredApprovals
	st.RequiredApprovals = args.Value
	saveState(st)
	emitConfigChangedEvent("required_approvals", strconv.Itoa(int(old)), strconv.Itoa(int(args.Value)))
	return respond(map[string]any{"ok": true})
}

type SetCooldownPeriodArgs struct {
	Seconds int64 `json:"seconds"`
}

// SetCooldownPeriod changes the timelock without going through the queue.
//
// Deprecated: bypasses the quorum entirely, gated on the deploying authority
// only. Use queue_set_cooldown_period instead.
//
//go:wasmexport set_cooldown_period
func SetCooldownPeriod(payload *string) *string {
	st := loadState()
	requireAuthority(st)
	args := contract.FromJSON[SetCooldownPeriodArgs](*payload, "set cooldown args")
	validateCooldown(args.Seconds)
	old := st.CooldownPeriod
	st.CooldownPeriod = args.Seconds
	saveState(st)
	emitConfigChangedEvent("cooldown_period", strconv.FormatInt(old, 10), strconv.FormatInt(args.Seconds, 10))
	return respond(map[string]any{"ok": true})
}

// Dispatch routes a method name to its handler. The wasm host calls exports
// directly; the in-process test router goes through here.
func Dispatch(method string, payload string) *string {
	switch method {
	case "governance_init":
		return Initialize(&payload)
	case "set_token_program":
		return SetTokenProgram(&payload)
	case "set_presale_program":
		return SetPresaleProgram(&payload)
	case "set_required_approvals":
		return SetRequiredApprovals(&payload)
	case "set_cooldown_period":
		return SetCooldownPeriod(&payload)
	case "queue_unpause":
		return QueueUnpause(&payload)
	case "queue_set_blacklist":
		return QueueSetBlacklist(&payload)
	case "queue_set_no_sell_limit":
		return QueueSetNoSellLimit(&payload)
	case "queue_set_restricted":
		return QueueSetRestricted(&payload)
	case "queue_set_liquidity_pool":
		return QueueSetLiquidityPool(&payload)
	case "queue_set_bridge_address":
		return QueueSetBridgeAddress(&payload)
	case "queue_set_bond_address":
		return QueueSetBondAddress(&payload)
	case "queue_set_treasury_address":
		return QueueSetTreasuryAddress(&payload)
	case "queue_withdraw_to_treasury":
		return QueueWithdrawToTreasury(&payload)
	case "queue_set_required_approvals":
		return QueueSetRequiredApprovals(&payload)
	case "queue_set_cooldown_period":
		return QueueSetCooldownPeriod(&payload)
	case "approve_transaction":
		return ApproveTransaction(&payload)
	case "reject_transaction":
		return RejectTransaction(&payload)
	case "execute_transaction":
		return ExecuteTransaction(&payload)
	case "grant_role":
		return GrantRole(&payload)
	case "revoke_role":
		return RevokeRole(&payload)
	case "emergency_pause":
		return EmergencyPause(&payload)
	default:
		sdk.Abort("unknown method: " + method)
		return nil
	}
}
