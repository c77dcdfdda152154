package presale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meridian_protocol/contract"
)

// =============================================================================
// Cap and config update tests
// =============================================================================

func TestCapCannotDropBelowRaised(t *testing.T) {
	setupPresale(t, 1000, 0)
	activate(t)
	buyStable(t, buyer, 500)

	as(admin)
	mustFail(t, "update_presale_cap", map[string]any{"presale_cap": 499}, contract.ErrCapBelowRaised)
	call(t, "update_presale_cap", map[string]any{"presale_cap": 500})
	call(t, "update_presale_cap", map[string]any{"presale_cap": 0}) // zero removes the cap
	require.Equal(t, uint64(0), loadState().PresaleCap)
}

// Raised and sold diverge whenever the token price is not $1. At $200 per
// token and $150 per SOL, one SOL buys 75,000,000 base units but raises
// 150,000,000 USD-micro; the cap floor must follow the raised side.
func TestCapFloorTracksRaisedNotSold(t *testing.T) {
	setupPresale(t, 0, 0)

	as(admin)
	call(t, "set_token_price_usd", map[string]any{"token_price_usd_micro": 200_000_000})
	activate(t)
	installFeed(t, oracleProgram, 8, solPrice, startTime)
	buySol(t, 1_000_000_000)

	st := loadState()
	require.Equal(t, uint64(75_000_000), st.TotalTokensSold)
	require.Equal(t, uint64(150_000_000), st.TotalRaisedUsd)

	as(admin)
	mustFail(t, "update_presale_cap", map[string]any{"presale_cap": 100_000_000}, contract.ErrCapBelowRaised)
	mustFail(t, "update_presale_limits",
		map[string]any{"presale_cap": 100_000_000, "max_per_user": 0}, contract.ErrCapBelowRaised)
	call(t, "update_presale_cap", map[string]any{"presale_cap": 150_000_000})
	require.Equal(t, uint64(150_000_000), loadState().PresaleCap)
}

func TestPerUserMustFitUnderCap(t *testing.T) {
	setupPresale(t, 1000, 0)

	as(admin)
	mustFail(t, "update_max_per_user", map[string]any{"max_per_user": 1001}, contract.ErrPerUserAboveCap)
	call(t, "update_max_per_user", map[string]any{"max_per_user": 1000})

	mustFail(t, "update_presale_limits",
		map[string]any{"presale_cap": 100, "max_per_user": 200}, contract.ErrPerUserAboveCap)
	call(t, "update_presale_limits", map[string]any{"presale_cap": 200, "max_per_user": 200})

	st := loadState()
	require.Equal(t, uint64(200), st.PresaleCap)
	require.Equal(t, uint64(200), st.MaxPerUser)
}

func TestNoUpdatesOnceStopped(t *testing.T) {
	setupPresale(t, 1000, 0)
	setStatus(t, StatusStopped)

	as(admin)
	mustFail(t, "update_presale_cap", map[string]any{"presale_cap": 2000}, contract.ErrPresaleStopped)
	mustFail(t, "update_max_per_user", map[string]any{"max_per_user": 10}, contract.ErrPresaleStopped)
	mustFail(t, "update_presale_limits", map[string]any{"presale_cap": 2000, "max_per_user": 10}, contract.ErrPresaleStopped)
	mustFail(t, "set_token_price_usd", map[string]any{"token_price_usd_micro": 1}, contract.ErrPresaleStopped)
	mustFail(t, "add_allowed_token", map[string]any{"mint": fillAddr(0x99).String(), "enabled": true}, contract.ErrPresaleStopped)
}

func TestConfigGates(t *testing.T) {
	setupPresale(t, 0, 0)

	as(buyer)
	mustFail(t, "update_presale_cap", map[string]any{"presale_cap": 1}, contract.ErrUnauthorized)
	mustFail(t, "set_token_price_usd", map[string]any{"token_price_usd_micro": 1}, contract.ErrUnauthorized)

	as(admin)
	mustFail(t, "set_token_price_usd", map[string]any{"token_price_usd_micro": 0}, contract.ErrInvalidPrice)
	call(t, "set_token_price_usd", map[string]any{"token_price_usd_micro": 300_000})
	require.Equal(t, uint64(300_000), loadState().TokenPriceUsdMicro)

	// governance passes the same gate
	as(govProgram)
	call(t, "update_presale_cap", map[string]any{"presale_cap": 5000})
}

func TestSetTreasuryIsGovernanceOnly(t *testing.T) {
	setupPresale(t, 0, 0)

	as(admin)
	mustFail(t, "set_treasury_address", map[string]any{"account": treasuryAddr.String()}, contract.ErrUnauthorized)

	as(govProgram)
	call(t, "set_treasury_address", map[string]any{"account": treasuryAddr.String()})
	st := loadState()
	require.True(t, st.TreasurySet)
	require.Equal(t, treasuryAddr, st.Treasury)
}
