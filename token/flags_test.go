package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"meridian_protocol/contract"
)

// =============================================================================
// Flag and state header tests
// =============================================================================

func TestFlagsRequireGovernance(t *testing.T) {
	setupToken(t, 0)
	as(alice)
	for _, method := range []string{
		"set_pause", "set_emergency_pause", "set_whitelist_enabled",
	} {
		mustFail(t, method, map[string]any{"flag": true}, contract.ErrUnauthorized)
	}
	for _, method := range []string{
		"set_blacklist", "set_whitelist", "set_no_sell_limit", "set_restricted", "set_liquidity_pool",
	} {
		mustFail(t, method, map[string]any{"account": bob.String(), "flag": true}, contract.ErrUnauthorized)
	}
	mustFail(t, "set_bridge_address", map[string]any{"account": bob.String()}, contract.ErrUnauthorized)
	mustFail(t, "set_bond_address", map[string]any{"account": bob.String()}, contract.ErrUnauthorized)
}

func TestFlagRedundantWriteRejected(t *testing.T) {
	setupToken(t, 0)

	setFlag(t, "set_blacklist", bob, true)
	as(govProgram)
	mustFail(t, "set_blacklist", map[string]any{"account": bob.String(), "flag": true}, contract.ErrInvalidAccount)

	setFlag(t, "set_blacklist", bob, false)
	as(govProgram)
	mustFail(t, "set_blacklist", map[string]any{"account": bob.String(), "flag": false}, contract.ErrInvalidAccount)
}

func TestFlagRecordLayout(t *testing.T) {
	setupToken(t, 0)
	setFlag(t, "set_blacklist", bob, true)

	ptr := contract.GetState().Get(blacklistKey(bob))
	require.NotNil(t, ptr)
	raw, err := base64.StdEncoding.DecodeString(*ptr)
	require.NoError(t, err)
	require.Len(t, raw, contract.FlagRecordLen)
	require.Equal(t, bob.Bytes(), raw[contract.FlagRecordAddressOffset:contract.FlagRecordAddressOffset+32])
	require.Equal(t, byte(1), raw[contract.FlagRecordFlagOffset])
}

// TestStateHeaderMirror pins the raw header collaborators peek at.
func TestStateHeaderMirror(t *testing.T) {
	setupToken(t, 0)

	as(govProgram)
	call(t, "set_emergency_pause", map[string]any{"flag": true})

	ptr := contract.GetState().Get(stateRawKey)
	require.NotNil(t, ptr)
	raw, err := base64.StdEncoding.DecodeString(*ptr)
	require.NoError(t, err)
	require.Len(t, raw, contract.TokenStateHeaderLen)
	require.Equal(t, govProgram.Bytes(), raw[contract.TokenStateGovernanceOffset:contract.TokenStateGovernanceOffset+32])
	require.Equal(t, byte(0), raw[contract.TokenStatePausedOffset])
	require.Equal(t, byte(1), raw[contract.TokenStateEmergencyPausedOffset])

	hdr, err := contract.ParseTokenStateHeader(raw)
	require.NoError(t, err)
	require.True(t, hdr.EmergencyPaused)
	require.False(t, hdr.Paused)
}

func TestBridgeAndBondAddresses(t *testing.T) {
	setupToken(t, 0)
	bridge := fillAddr(0x66)
	bond := fillAddr(0x67)

	as(govProgram)
	call(t, "set_bridge_address", map[string]any{"account": bridge.String()})
	call(t, "set_bond_address", map[string]any{"account": bond.String()})
	mustFail(t, "set_bridge_address", map[string]any{"account": fillAddr(0).String()}, contract.ErrInvalidAccount)

	st := loadState()
	require.Equal(t, bridge, st.BridgeAddress)
	require.Equal(t, bond, st.BondAddress)
}

func TestVersionGate(t *testing.T) {
	setupToken(t, 0)
	mintTo(t, alice, 100)

	st := loadState()
	st.MinCompatibleVersion = CurrentVersion + 1
	saveState(st)

	transferFails(t, alice, bob, 1, contract.ErrVersionMismatch)
	as(govProgram)
	mustFail(t, "set_pause", map[string]any{"flag": true}, contract.ErrVersionMismatch)
}
