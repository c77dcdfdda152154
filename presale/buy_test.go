package presale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meridian_protocol/contract"
)

// =============================================================================
// Stable-leg purchase tests
// =============================================================================

func TestBuyUpdatesTotals(t *testing.T) {
	setupPresale(t, 0, 0)
	activate(t)

	buyStable(t, buyer, 1_000_000)
	st := loadState()
	require.Equal(t, uint64(1_000_000), st.TotalTokensSold)
	require.Equal(t, uint64(1_000_000), st.TotalRaisedUsd)
	require.Equal(t, uint64(1_000_000), loadUser(buyer).TotalPurchased)

	buyStable(t, buyer, 500_000)
	require.Equal(t, uint64(1_500_000), loadState().TotalTokensSold)
	require.Equal(t, uint64(1_500_000), loadUser(buyer).TotalPurchased)
}

func TestBuyOnlyWhileActive(t *testing.T) {
	setupPresale(t, 0, 0)
	buyStableFails(t, buyer, 100, contract.ErrPresaleNotActive)

	activate(t)
	setStatus(t, StatusPaused)
	buyStableFails(t, buyer, 100, contract.ErrPresaleNotActive)

	setStatus(t, StatusActive)
	buyStable(t, buyer, 100)
}

func TestBuyRejectsUnlistedPaymentMint(t *testing.T) {
	setupPresale(t, 0, 0)
	activate(t)

	other := fillAddr(0x99)
	as(buyer)
	mustFail(t, "buy", map[string]any{"amount": 100, "payment_mint": other.String()}, contract.ErrTokenNotAllowed)

	as(admin)
	call(t, "add_allowed_token", map[string]any{"mint": other.String(), "enabled": true})
	as(buyer)
	call(t, "buy", map[string]any{"amount": 100, "payment_mint": other.String()})

	// disabling an entry closes the leg again
	as(admin)
	call(t, "add_allowed_token", map[string]any{"mint": other.String(), "enabled": false})
	as(buyer)
	mustFail(t, "buy", map[string]any{"amount": 100, "payment_mint": other.String()}, contract.ErrTokenNotAllowed)
}

func TestBuyHonorsTokenEnginePause(t *testing.T) {
	setupPresale(t, 0, 0)
	activate(t)

	pauseTokenEngine(t, true, false)
	buyStableFails(t, buyer, 100, contract.ErrTokenPaused)

	pauseTokenEngine(t, false, true)
	buyStableFails(t, buyer, 100, contract.ErrTokenPaused)

	pauseTokenEngine(t, false, false)
	buyStable(t, buyer, 100)
}

func TestBuyHonorsTokenBlacklist(t *testing.T) {
	setupPresale(t, 0, 0)
	activate(t)

	blacklistBuyer(t, buyer, true)
	buyStableFails(t, buyer, 100, contract.ErrBlacklisted)

	blacklistBuyer(t, buyer, false)
	buyStable(t, buyer, 100)
}

func TestBuyGlobalCapBoundary(t *testing.T) {
	setupPresale(t, 100, 0)
	activate(t)

	buyStable(t, buyer, 100)
	buyStableFails(t, fillAddr(0xB2), 1, contract.ErrPresaleCapExceeded)
}

func TestBuyPerUserCapBoundary(t *testing.T) {
	setupPresale(t, 0, 100)
	activate(t)

	buyStable(t, buyer, 60)
	buyStableFails(t, buyer, 50, contract.ErrPerUserLimitExceeded)
	buyStable(t, buyer, 40)

	// the limit is per buyer, a fresh account still has headroom
	buyStable(t, fillAddr(0xB2), 100)
}

func TestBuyZeroAmount(t *testing.T) {
	setupPresale(t, 0, 0)
	activate(t)
	buyStableFails(t, buyer, 0, contract.ErrInvalidAmount)
}
