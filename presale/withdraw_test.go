package presale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meridian_protocol/contract"
)

// =============================================================================
// Withdrawal tests
// =============================================================================

func wireTreasury(t *testing.T) {
	t.Helper()
	as(govProgram)
	call(t, "set_treasury_address", map[string]any{"account": treasuryAddr.String()})
}

func TestWithdrawRequiresTreasury(t *testing.T) {
	setupPresale(t, 0, 0)
	installVault(t, paymentVault, paymentMint, vaultOwner, 1_000_000)

	as(govProgram)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 100}, contract.ErrTreasuryNotSet)
}

func TestWithdrawToTreasury(t *testing.T) {
	setupPresale(t, 0, 0)
	wireTreasury(t)
	installVault(t, paymentVault, paymentMint, vaultOwner, 1_000_000)

	as(admin)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 100}, contract.ErrUnauthorized)

	as(govProgram)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 0}, contract.ErrInvalidAmount)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 1_000_001}, contract.ErrInsufficientVaultFunds)
	call(t, "withdraw_to_treasury", map[string]any{"amount": 1_000_000})
}

// TestWithdrawVaultSubstitution pins the raw-offset defense: a vault with
// the wrong mint or owner word is rejected even though it parses cleanly.
func TestWithdrawVaultSubstitution(t *testing.T) {
	setupPresale(t, 0, 0)
	wireTreasury(t)

	as(govProgram)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 100}, contract.ErrInvalidVault)

	installVault(t, paymentVault, fillAddr(0x99), vaultOwner, 1_000_000)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 100}, contract.ErrInvalidVault)

	installVault(t, paymentVault, paymentMint, fillAddr(0x99), 1_000_000)
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 100}, contract.ErrInvalidVault)

	// truncated image
	contract.MockAccounts().SetAccountRaw(paymentVault, make([]byte, 40))
	mustFail(t, "withdraw_to_treasury", map[string]any{"amount": 100}, contract.ErrInvalidVault)

	installVault(t, paymentVault, paymentMint, vaultOwner, 1_000_000)
	call(t, "withdraw_to_treasury", map[string]any{"amount": 100})
}

func TestWithdrawUnsoldOnlyAfterStop(t *testing.T) {
	setupPresale(t, 0, 0)
	wireTreasury(t)
	installVault(t, tokenVault, tokenMint, vaultOwner, 500_000)

	as(admin)
	mustFail(t, "withdraw_unsold_tokens", map[string]any{"amount": 100}, contract.ErrInvalidStatusTransition)

	setStatus(t, StatusStopped)
	as(admin)
	mustFail(t, "withdraw_unsold_tokens", map[string]any{"amount": 500_001}, contract.ErrInsufficientVaultFunds)
	call(t, "withdraw_unsold_tokens", map[string]any{"amount": 500_000})
}

func TestWithdrawSolChecksHoldings(t *testing.T) {
	setupPresale(t, 0, 0)
	wireTreasury(t)

	// the mock host reports a zero native balance
	as(admin)
	mustFail(t, "withdraw_sol_to_treasury", map[string]any{"amount": 1}, contract.ErrInsufficientVaultFunds)
	require.NotNil(t, loadState())
}
