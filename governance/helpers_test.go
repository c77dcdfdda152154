package governance

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
	authority   = fillAddr(0x0A)
	signerOne   = fillAddr(0x01)
	signerTwo   = fillAddr(0x02)
	signerThree = fillAddr(0x03)
	outsider    = fillAddr(0xEE)

	govProgram     = fillAddr(0xF1)
	tokenProgram   = fillAddr(0xF2)
	presaleProgram = fillAddr(0xF3)
)

const startTime = int64(1_700_000_000)

// setupGovernance boots the mock runtime and initializes the program with
// three signers, quorum two and the minimum cooldown. The authority is also
// a signer so it can queue without switching identities.
func setupGovernance(t *testing.T) {
	t.Helper()
	contract.InitAll(true)
	env := contract.MockEnv()
	env.ContractId = govProgram
	env.Sender = authority
	env.SetNow(startTime)

	call(t, "governance_init", map[string]any{
		"required_approvals": 2,
		"cooldown_period":    MinCooldownSeconds,
		"signers":            []string{authority.String(), signerOne.String(), signerTwo.String(), signerThree.String()},
	})
}

// wirePrograms registers the collaborator addresses, authority only.
func wirePrograms(t *testing.T) {
	t.Helper()
	as(authority)
	call(t, "set_token_program", map[string]any{"program": tokenProgram.String()})
	call(t, "set_presale_program", map[string]any{"program": presaleProgram.String()})
}

func as(sender sdk.Address) {
	contract.MockEnv().Sender = sender
}

func advance(seconds int64) {
	env := contract.MockEnv()
	env.SetNow(contract.NowUnix() + seconds)
}

// call dispatches a method and fails the test on any revert.
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

// mustFail dispatches a method and asserts the revert symbol.
func mustFail(t *testing.T, method string, args any, want string) {
	t.Helper()
	symbol := contract.Catch(func() {
		Dispatch(method, contract.ToJSON(args, "test payload"))
	})
	if symbol != want {
		t.Fatalf("%s: expected revert %s, got %q", method, want, symbol)
	}
}

// queueBlacklist is the default fixture transaction, returns its id.
func queueBlacklist(t *testing.T, sender sdk.Address, target sdk.Address) uint64 {
	t.Helper()
	as(sender)
	res := call(t, "queue_set_blacklist", map[string]any{"account": target.String(), "flag": true})
	return parseId(t, res)
}

func parseId(t *testing.T, res *string) uint64 {
	t.Helper()
	if res == nil {
		t.Fatal("expected a response body")
	}
	out := contract.FromJSON[struct {
		Id uint64 `json:"id"`
	}](*res, "queue response")
	return out.Id
}

func approveBy(t *testing.T, id uint64, signers ...sdk.Address) {
	t.Helper()
	for _, s := range signers {
		as(s)
		call(t, "approve_transaction", map[string]any{"id": id})
	}
}

func mockState(t *testing.T) *contract.MockState {
	t.Helper()
	ms, ok := contract.GetState().(*contract.MockState)
	if !ok {
		t.Fatal("state is not mocked")
	}
	return ms
}
