package presale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meridian_protocol/contract"
)

func TestPresaleInfoFormatsUsdFigures(t *testing.T) {
	setupPresale(t, 1_000_000, 0)
	activate(t)
	buyStable(t, buyer, 250_000)

	res := Dispatch("presale_info", "{}")
	require.NotNil(t, res)
	view := contract.FromJSON[PresaleInfoView](*res, "presale info")

	require.Equal(t, "active", view.Status)
	require.Equal(t, "0.25", view.TokenPriceUsd)
	require.Equal(t, uint64(250_000), view.TotalTokensSold)
	require.Equal(t, "0.25", view.TotalRaisedUsd)
	require.Equal(t, "25", view.ProgressPercent)
	require.Equal(t, uint8(CurrentVersion), view.Version)
}

func TestPresaleInfoWithoutCap(t *testing.T) {
	setupPresale(t, 0, 0)

	res := Dispatch("presale_info", "{}")
	view := contract.FromJSON[PresaleInfoView](*res, "presale info")
	require.Equal(t, "not_started", view.Status)
	require.Equal(t, "0", view.ProgressPercent)
}
