package token

import (
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
	govProgram = fillAddr(0xF1)
	mintAddr   = fillAddr(0x4D)
	alice      = fillAddr(0xA1)
	bob        = fillAddr(0xB2)
	pool       = fillAddr(0xCC)
)

const startTime = int64(1_700_000_000)

// setupToken boots the mock runtime and initializes the token with an
// uncapped supply unless maxSupply is nonzero.
func setupToken(t *testing.T, maxSupply uint64) {
	t.Helper()
	contract.InitAll(true)
	env := contract.MockEnv()
	env.ContractId = fillAddr(0xF2)
	env.Sender = govProgram
	env.SetNow(startTime)

	args := map[string]any{
		"governance": govProgram.String(),
		"mint":       mintAddr.String(),
	}
	if maxSupply > 0 {
		args["max_supply"] = maxSupply
	}
	call(t, "token_init", args)
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

// mintTo funds an account as governance and restores no particular sender.
func mintTo(t *testing.T, owner sdk.Address, amount uint64) {
	t.Helper()
	as(govProgram)
	call(t, "mint_tokens", map[string]any{"to": owner.String(), "amount": amount})
}

func balance(owner sdk.Address) uint64 {
	acct := loadAccount(owner)
	if acct == nil {
		return 0
	}
	return acct.Amount
}

// flag helpers as governance
func setFlag(t *testing.T, method string, account sdk.Address, value bool) {
	t.Helper()
	as(govProgram)
	call(t, method, map[string]any{"account": account.String(), "flag": value})
}

func transfer(t *testing.T, from, to sdk.Address, amount uint64) {
	t.Helper()
	as(from)
	call(t, "transfer_tokens", map[string]any{"to": to.String(), "amount": amount})
}

func transferFails(t *testing.T, from, to sdk.Address, amount uint64, want string) {
	t.Helper()
	as(from)
	mustFail(t, "transfer_tokens", map[string]any{"to": to.String(), "amount": amount}, want)
}
