package presale

import (
	"encoding/base64"
	"testing"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// =============================================================================
// Shared test fixtures
// =============================================================================

func fillAddr(fill byte) sdk.Address {
	var a sdk.Address
	for i := range a {
		a[i] = fill
	}
	return a
}

var (
	admin         = fillAddr(0xAD)
	govProgram    = fillAddr(0xF1)
	tokenProgram  = fillAddr(0xF2)
	oracleProgram = fillAddr(0xF4)
	vaultOwner    = fillAddr(0xA0)
	tokenMint     = fillAddr(0x4D)
	paymentMint   = fillAddr(0x5D)
	solVault      = fillAddr(0x61)
	tokenVault    = fillAddr(0x62)
	paymentVault  = fillAddr(0x63)
	treasuryAddr  = fillAddr(0x77)
	feedAddr      = fillAddr(0x88)
	buyer         = fillAddr(0xB1)
)

const startTime = int64(1_700_000_000)

// defaultPrice is $0.25 per token in USD micro.
const defaultPrice = uint64(250_000)

func setupPresale(t *testing.T, cap, perUser uint64) {
	t.Helper()
	contract.InitAll(true)
	env := contract.MockEnv()
	env.ContractId = fillAddr(0xF3)
	env.Sender = admin
	env.SetNow(startTime)

	call(t, "presale_init", map[string]any{
		"authority":             vaultOwner.String(),
		"governance":            govProgram.String(),
		"token_program":         tokenProgram.String(),
		"oracle_program":        oracleProgram.String(),
		"token_mint":            tokenMint.String(),
		"payment_mint":          paymentMint.String(),
		"sol_vault":             solVault.String(),
		"token_vault":           tokenVault.String(),
		"payment_vault":         paymentVault.String(),
		"token_price_usd_micro": defaultPrice,
		"presale_cap":           cap,
		"max_per_user":          perUser,
	})
}

func activate(t *testing.T) {
	t.Helper()
	as(admin)
	call(t, "set_presale_status", map[string]any{"status": uint8(StatusActive)})
}

func as(sender sdk.Address) {
	contract.MockEnv().Sender = sender
}

func advance(seconds int64) {
	env := contract.MockEnv()
	env.SetNow(contract.NowUnix() + seconds)
}

func call(t *testing.T, method string, args any) *string {
	t.Helper()
	var out *string
	symbol := contract.Catch(func() {
		out = Dispatch(method, contract.ToJSON(args, "test payload"))
	})
	if symbol != "" {
		t.Fatalf("%s reverted with %s", method, symbol)
	}
	return out
}

func mustFail(t *testing.T, method string, args any, want string) {
	t.Helper()
	symbol := contract.Catch(func() {
		Dispatch(method, contract.ToJSON(args, "test payload"))
	})
	if symbol != want {
		t.Fatalf("%s: expected revert %s, got %q", method, want, symbol)
	}
}

// installFeed publishes an oracle round as a raw ledger account.
func installFeed(t *testing.T, owner sdk.Address, decimals uint8, answer int64, updatedAt int64) {
	t.Helper()
	raw := contract.EncodeRecord(contract.PriceFeed{
		Owner:     owner,
		Decimals:  decimals,
		Answer:    answer,
		UpdatedAt: updatedAt,
	})
	contract.MockAccounts().SetAccountRaw(feedAddr, raw)
}

// installVault publishes a raw token account image for a vault.
func installVault(t *testing.T, vault, mint, owner sdk.Address, amount uint64) {
	t.Helper()
	raw := contract.EncodeRecord(contract.TokenAccount{Mint: mint, Owner: owner, Amount: amount})
	contract.MockAccounts().SetAccountRaw(vault, raw)
}

// pauseTokenEngine writes the collaborator's raw state header the way the
// token program maintains it.
func pauseTokenEngine(t *testing.T, paused, emergency bool) {
	t.Helper()
	raw := contract.EncodeRecord(contract.TokenStateHeader{
		Discriminator:   7,
		Governance:      govProgram,
		Paused:          paused,
		EmergencyPaused: emergency,
	})
	contract.GetState().Set("tok:state:raw", base64.StdEncoding.EncodeToString(raw))
}

// blacklistBuyer writes the collaborator's flag record for the buyer.
func blacklistBuyer(t *testing.T, addr sdk.Address, flag bool) {
	t.Helper()
	raw := contract.EncodeRecord(contract.FlagRecord{Discriminator: 1, Address: addr, Flag: flag})
	contract.GetState().Set("tok:bl:"+addr.String(), base64.StdEncoding.EncodeToString(raw))
}

func buyStable(t *testing.T, sender sdk.Address, amount uint64) {
	t.Helper()
	as(sender)
	call(t, "buy", map[string]any{"amount": amount, "payment_mint": paymentMint.String()})
}

func buyStableFails(t *testing.T, sender sdk.Address, amount uint64, want string) {
	t.Helper()
	as(sender)
	mustFail(t, "buy", map[string]any{"amount": amount, "payment_mint": paymentMint.String()}, want)
}
