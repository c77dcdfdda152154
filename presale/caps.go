package presale

import (
	"strconv"

	"meridian_protocol/contract"
)

// -----------------------------------------------------------------------------
// Caps and pricing config, admin-or-governance
// -----------------------------------------------------------------------------

type PriceArgs struct {
	TokenPriceUsdMicro uint64 `json:"token_price_usd_micro"`
}

// SetTokenPriceUsd repins the fixed USD price used by the sol leg.
// Payload: {"token_price_usd_micro":250000}
//
//go:wasmexport set_token_price_usd
func SetTokenPriceUsd(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	requireNotStopped(st)
	args := contract.FromJSON[PriceArgs](*payload, "price args")
	if args.TokenPriceUsdMicro == 0 {
		contract.Fail(contract.ErrInvalidPrice, "token price must be positive")
	}
	old := st.TokenPriceUsdMicro
	st.TokenPriceUsdMicro = args.TokenPriceUsdMicro
	saveState(st)
	emitConfigEvent("token_price_usd_micro", strconv.FormatUint(old, 10), strconv.FormatUint(args.TokenPriceUsdMicro, 10))
	return respond(map[string]any{"token_price_usd_micro": args.TokenPriceUsdMicro})
}

type AllowTokenArgs struct {
	Mint    string `json:"mint"`
	Enabled bool   `json:"enabled"`
}

// AddAllowedToken allow-lists (or disables) a payment mint for the stable
// leg.
// Payload: {"mint":"<base58>","enabled":true}
//
//go:wasmexport add_allowed_token
func AddAllowedToken(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	requireNotStopped(st)
	args := contract.FromJSON[AllowTokenArgs](*payload, "allow token args")
	mint := mustNonZero(args.Mint, "payment mint")
	saveAllowedToken(&AllowedToken{Mint: mint, Enabled: args.Enabled})
	emitConfigEvent("allowed_token", mint.String(), strconv.FormatBool(args.Enabled))
	return respond(map[string]any{"mint": mint.String(), "enabled": args.Enabled})
}

type TreasuryArgs struct {
	Account string `json:"account"`
}

// SetTreasuryAddress points withdrawals at the treasury. This is the target
// of the quorum-approved governance dispatch.
// Payload: {"account":"<base58>"}
//
//go:wasmexport set_treasury_address
func SetTreasuryAddress(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	args := contract.FromJSON[TreasuryArgs](*payload, "treasury args")
	addr := mustNonZero(args.Account, "treasury")
	old := st.Treasury
	st.Treasury = addr
	st.TreasurySet = true
	saveState(st)
	emitConfigEvent("treasury", old.String(), addr.String())
	return respond(map[string]any{"treasury": addr.String()})
}

// validateCaps applies the shared cap invariants: a nonzero cap must cover
// the amount already raised, and a nonzero per-user limit must fit under a
// nonzero cap.
func validateCaps(st *PresaleState, cap, perUser uint64) {
	if cap > 0 && cap < st.TotalRaisedUsd {
		contract.Fail(contract.ErrCapBelowRaised, "cap %d below amount already raised %d", cap, st.TotalRaisedUsd)
	}
	if cap > 0 && perUser > 0 && perUser > cap {
		contract.Fail(contract.ErrPerUserAboveCap, "per-user cap %d above presale cap %d", perUser, cap)
	}
}

type CapArgs struct {
	PresaleCap uint64 `json:"presale_cap"`
}

// UpdatePresaleCap changes the global cap on tokens sold. Zero removes it.
//
//go:wasmexport update_presale_cap
func UpdatePresaleCap(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	requireNotStopped(st)
	args := contract.FromJSON[CapArgs](*payload, "cap args")
	validateCaps(st, args.PresaleCap, st.MaxPerUser)
	old := st.PresaleCap
	st.PresaleCap = args.PresaleCap
	saveState(st)
	emitConfigEvent("presale_cap", strconv.FormatUint(old, 10), strconv.FormatUint(args.PresaleCap, 10))
	return respond(map[string]any{"presale_cap": args.PresaleCap})
}

type PerUserArgs struct {
	MaxPerUser uint64 `json:"max_per_user"`
}

// UpdateMaxPerUser changes the per-buyer limit. Zero removes it.
//
//go:wasmexport update_max_per_user
func UpdateMaxPerUser(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	requireNotStopped(st)
	args := contract.FromJSON[PerUserArgs](*payload, "per user args")
	validateCaps(st, st.PresaleCap, args.MaxPerUser)
	old := st.MaxPerUser
	st.MaxPerUser = args.MaxPerUser
	saveState(st)
	emitConfigEvent("max_per_user", strconv.FormatUint(old, 10), strconv.FormatUint(args.MaxPerUser, 10))
	return respond(map[string]any{"max_per_user": args.MaxPerUser})
}

type LimitsArgs struct {
	PresaleCap uint64 `json:"presale_cap"`
	MaxPerUser uint64 `json:"max_per_user"`
}

// UpdatePresaleLimits changes both limits atomically so the pair invariant
// is checked against the new values together.
//
//go:wasmexport update_presale_limits
func UpdatePresaleLimits(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	requireNotStopped(st)
	args := contract.FromJSON[LimitsArgs](*payload, "limits args")
	validateCaps(st, args.PresaleCap, args.MaxPerUser)
	st.PresaleCap = args.PresaleCap
	st.MaxPerUser = args.MaxPerUser
	saveState(st)
	emitConfigEvent("limits", "", strconv.FormatUint(args.PresaleCap, 10)+"/"+strconv.FormatUint(args.MaxPerUser, 10))
	return respond(map[string]any{"presale_cap": args.PresaleCap, "max_per_user": args.MaxPerUser})
}
