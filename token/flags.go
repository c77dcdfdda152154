package token

import (
	"strconv"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Compliance flags and pause bits, governance calls only
// -----------------------------------------------------------------------------

type FlagArgs struct {
	Flag bool `json:"flag"`
}

type AccountFlagArgs struct {
	Account string `json:"account"`
	Flag    bool   `json:"flag"`
}

type AccountArgs struct {
	Account string `json:"account"`
}

// SetPause flips the regular pause bit. Unpausing also clears the emergency
// bit, so one approved unpause recovers from both.
// Payload: {"flag":false}
//
//go:wasmexport set_pause
func SetPause(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[FlagArgs](*payload, "pause args")
	st.Paused = args.Flag
	if !args.Flag {
		st.EmergencyPaused = false
	}
	saveState(st)
	emitPauseEvent("pause", args.Flag)
	return respond(map[string]any{"paused": st.Paused})
}

// SetEmergencyPause sets the emergency bit. Governance only ever sends true
// here; clearing goes through the quorum-approved unpause.
//
//go:wasmexport set_emergency_pause
func SetEmergencyPause(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[FlagArgs](*payload, "emergency pause args")
	st.EmergencyPaused = args.Flag
	saveState(st)
	emitPauseEvent("emergency", args.Flag)
	return respond(map[string]any{"emergency_paused": st.EmergencyPaused})
}

// setAccountFlag is the shared tail for all per-address flag records.
// Re-setting a flag to its current value is rejected so a stale queued
// transaction cannot masquerade as a fresh change.
func setAccountFlag(payload *string, kind string, disc uint64, key func(sdk.Address) string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[AccountFlagArgs](*payload, "account flag args")
	addr := mustAddr(args.Account, "account")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "account cannot be the zero address")
	}
	if flagIsSet(key(addr)) == args.Flag {
		contract.Fail(contract.ErrInvalidAccount, "%s flag for %s already %t", kind, addr, args.Flag)
	}
	saveFlag(key(addr), disc, addr, args.Flag)
	emitFlagEvent(kind, addr, args.Flag)
	return respond(map[string]any{"account": addr.String(), "flag": args.Flag})
}

// SetBlacklist bars an address from sending and receiving.
// Payload: {"account":"<base58>","flag":true}
//
//go:wasmexport set_blacklist
func SetBlacklist(payload *string) *string {
	return setAccountFlag(payload, "blacklist", discBlacklist, blacklistKey)
}

// SetWhitelist marks an address as allowed while whitelist mode is on.
//
//go:wasmexport set_whitelist
func SetWhitelist(payload *string) *string {
	return setAccountFlag(payload, "whitelist", discWhitelist, whitelistKey)
}

// SetNoSellLimit exempts an address from the rolling sell window.
//
//go:wasmexport set_no_sell_limit
func SetNoSellLimit(payload *string) *string {
	return setAccountFlag(payload, "no_sell_limit", discNoSellLimit, noSellLimitKey)
}

// SetRestricted blocks an address from transfers in either direction.
//
//go:wasmexport set_restricted
func SetRestricted(payload *string) *string {
	return setAccountFlag(payload, "restricted", discRestricted, restrictedKey)
}

// SetLiquidityPool marks an address as a trading pair. Transfers into a pool
// count against the sender's sell window.
//
//go:wasmexport set_liquidity_pool
func SetLiquidityPool(payload *string) *string {
	return setAccountFlag(payload, "liquidity_pool", discLiquidityPool, liquidityPoolKey)
}

// SetWhitelistEnabled toggles whitelist mode for the whole token.
// Payload: {"flag":true}
//
//go:wasmexport set_whitelist_enabled
func SetWhitelistEnabled(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[FlagArgs](*payload, "whitelist mode args")
	old := st.WhitelistMode
	st.WhitelistMode = args.Flag
	saveState(st)
	emitConfigEvent("whitelist_mode", strconv.FormatBool(old), strconv.FormatBool(args.Flag))
	return respond(map[string]any{"whitelist_mode": st.WhitelistMode})
}

// SetBridgeAddress points at the bridge endpoint address.
// Payload: {"account":"<base58>"}
//
//go:wasmexport set_bridge_address
func SetBridgeAddress(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[AccountArgs](*payload, "bridge address args")
	addr := mustAddr(args.Account, "bridge address")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "bridge address cannot be the zero address")
	}
	old := st.BridgeAddress
	st.BridgeAddress = addr
	saveState(st)
	emitConfigEvent("bridge_address", old.String(), addr.String())
	return respond(map[string]any{"bridge_address": addr.String()})
}

// SetBondAddress points at the bond contract address.
//
//go:wasmexport set_bond_address
func SetBondAddress(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[AccountArgs](*payload, "bond address args")
	addr := mustAddr(args.Account, "bond address")
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "bond address cannot be the zero address")
	}
	old := st.BondAddress
	st.BondAddress = addr
	saveState(st)
	emitConfigEvent("bond_address", old.String(), addr.String())
	return respond(map[string]any{"bond_address": addr.String()})
}

type SellLimitArgs struct {
	Percent uint64 `json:"percent"`
	Period  int64  `json:"period"`
}

// SetSellLimit reconfigures the rolling window parameters.
// Payload: {"percent":10,"period":86400}
//
//go:wasmexport set_sell_limit
func SetSellLimit(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[SellLimitArgs](*payload, "sell limit args")
	if args.Percent == 0 || args.Percent > 100 {
		contract.Fail(contract.ErrInvalidAmount, "sell limit percent %d out of range", args.Percent)
	}
	if args.Period <= 0 {
		contract.Fail(contract.ErrInvalidAmount, "sell limit period must be positive")
	}
	st.SellLimitPercent = args.Percent
	st.SellLimitPeriod = args.Period
	saveState(st)
	emitConfigEvent("sell_limit", "", strconv.FormatUint(args.Percent, 10))
	return respond(map[string]any{"percent": args.Percent, "period": args.Period})
}
