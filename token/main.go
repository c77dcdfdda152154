package token

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Program Initialization & Config
// -----------------------------------------------------------------------------

func strptr(s string) *string { return &s }

func respond(v any) *string {
	return strptr(contract.ToJSON(v, "response"))
}

func mustAddr(s string, field string) sdk.Address {
	addr, err := sdk.AddressFromBase58(s)
	if err != nil {
		contract.Fail(contract.ErrInvalidAccount, "invalid %s: %v", field, err)
	}
	return addr
}

// requireGovernance gates the admin surface on the configured governance
// contract. In a signed cross-contract call the sender is the calling
// contract's id, so only governance passes.
func requireGovernance(st *TokenState) sdk.Address {
	caller := contract.SenderAddress()
	if caller != st.Governance {
		contract.Fail(contract.ErrUnauthorized, "%s is not the governance program", caller)
	}
	return caller
}

// checkVersion refuses to run against state written by a newer incompatible
// deployment.
func checkVersion(st *TokenState) {
	if st.MinCompatibleVersion > CurrentVersion {
		contract.Fail(contract.ErrVersionMismatch, "state requires version >= %d, running %d", st.MinCompatibleVersion, CurrentVersion)
	}
}

type InitTokenArgs struct {
	Governance       string  `json:"governance"`
	Mint             string  `json:"mint"`
	MaxSupply        *uint64 `json:"max_supply,omitempty"`
	SellLimitPercent *uint64 `json:"sell_limit_percent,omitempty"`
	SellLimitPeriod  *int64  `json:"sell_limit_period,omitempty"`
	WhitelistMode    bool    `json:"whitelist_mode,omitempty"`
}

// Initialize creates the singleton token state. Must be called before any
// other function. The governance address is fixed here and can only move
// through the two-step transfer.
// Payload: {"governance":"<base58>","mint":"<base58>","max_supply":1000000}
//
//go:wasmexport token_init
func Initialize(payload *string) *string {
	if isInitialized() {
		contract.Fail(contract.ErrAlreadyInitialized, "token already initialized")
	}
	args := contract.FromJSON[InitTokenArgs](*payload, "token init args")

	governance := mustAddr(args.Governance, "governance")
	if governance.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "governance cannot be the zero address")
	}
	mint := mustAddr(args.Mint, "mint")
	if mint.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "mint cannot be the zero address")
	}

	st := &TokenState{
		Governance:           governance,
		Mint:                 mint,
		MaxSupply:            args.MaxSupply,
		SellLimitPercent:     DefaultSellLimitPercent,
		SellLimitPeriod:      DefaultSellLimitPeriod,
		WhitelistMode:        args.WhitelistMode,
		Version:              CurrentVersion,
		MinCompatibleVersion: CurrentVersion,
	}
	if args.SellLimitPercent != nil {
		if *args.SellLimitPercent == 0 || *args.SellLimitPercent > 100 {
			contract.Fail(contract.ErrInvalidAmount, "sell limit percent %d out of range", *args.SellLimitPercent)
		}
		st.SellLimitPercent = *args.SellLimitPercent
	}
	if args.SellLimitPeriod != nil {
		if *args.SellLimitPeriod <= 0 {
			contract.Fail(contract.ErrInvalidAmount, "sell limit period must be positive")
		}
		st.SellLimitPeriod = *args.SellLimitPeriod
	}
	saveState(st)
	emitConfigEvent("init", "", governance.String())
	return respond(map[string]any{"ok": true})
}

type BalanceArgs struct {
	Account string `json:"account"`
}

// GetBalance is a view returning the holder balance, zero when no account
// record exists.
//
//go:wasmexport balance_of
func GetBalance(payload *string) *string {
	args := contract.FromJSON[BalanceArgs](*payload, "balance args")
	addr := mustAddr(args.Account, "account")
	var amount uint64
	if acct := loadAccount(addr); acct != nil {
		amount = acct.Amount
	}
	return respond(map[string]any{"account": addr.String(), "balance": amount})
}

// TokenInfo is a view over the live token state.
//
//go:wasmexport token_info
func TokenInfo(payload *string) *string {
	st := loadState()
	return strptr(contract.ToJSON(st, "token state"))
}

// Dispatch routes a method name to its handler. The wasm host calls exports
// directly; the in-process test router goes through here.
func Dispatch(method string, payload string) *string {
	switch method {
	case "token_init":
		return Initialize(&payload)
	case "balance_of":
		return GetBalance(&payload)
	case "token_info":
		return TokenInfo(&payload)
	case "set_pause":
		return SetPause(&payload)
	case "set_emergency_pause":
		return SetEmergencyPause(&payload)
	case "set_blacklist":
		return SetBlacklist(&payload)
	case "set_whitelist_enabled":
		return SetWhitelistEnabled(&payload)
	case "set_whitelist":
		return SetWhitelist(&payload)
	case "set_no_sell_limit":
		return SetNoSellLimit(&payload)
	case "set_restricted":
		return SetRestricted(&payload)
	case "set_liquidity_pool":
		return SetLiquidityPool(&payload)
	case "set_bridge_address":
		return SetBridgeAddress(&payload)
	case "set_bond_address":
		return SetBondAddress(&payload)
	case "set_sell_limit":
		return SetSellLimit(&payload)
	case "transfer_tokens":
		return Transfer(&payload)
	case "mint_tokens":
		return Mint(&payload)
	case "burn_tokens":
		return Burn(&payload)
	case "revoke_mint_authority":
		return RevokeMintAuthority(&payload)
	case "propose_governance_change":
		return ProposeGovernanceChange(&payload)
	case "accept_governance":
		return AcceptGovernance(&payload)
	default:
		sdk.Abort("unknown token method: " + method)
		return nil
	}
}
