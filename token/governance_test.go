package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meridian_protocol/contract"
)

// =============================================================================
// Two-step governance handover tests
// =============================================================================

func TestGovernanceHandover(t *testing.T) {
	setupToken(t, 0)
	next := fillAddr(0xF9)

	as(govProgram)
	call(t, "propose_governance_change", map[string]any{"new_governance": next.String()})
	st := loadState()
	require.Equal(t, govProgram, st.Governance, "handover must not apply before accept")
	require.Equal(t, next, *st.PendingGovernance)

	as(next)
	mustFail(t, "accept_governance", map[string]any{}, contract.ErrGovernanceCooldown)

	advance(GovernanceCooldownSeconds - 1)
	mustFail(t, "accept_governance", map[string]any{}, contract.ErrGovernanceCooldown)

	advance(1)
	call(t, "accept_governance", map[string]any{})
	st = loadState()
	require.Equal(t, next, st.Governance)
	require.Nil(t, st.PendingGovernance)
	require.Nil(t, st.GovernanceChangeTime)

	// old governance lost the admin surface
	as(govProgram)
	mustFail(t, "set_pause", map[string]any{"flag": true}, contract.ErrUnauthorized)
	as(next)
	call(t, "set_pause", map[string]any{"flag": true})
}

func TestGovernanceHandoverGates(t *testing.T) {
	setupToken(t, 0)
	next := fillAddr(0xF9)

	as(alice)
	mustFail(t, "accept_governance", map[string]any{}, contract.ErrNoPendingGovernance)
	mustFail(t, "propose_governance_change", map[string]any{"new_governance": next.String()}, contract.ErrUnauthorized)

	as(govProgram)
	mustFail(t, "propose_governance_change", map[string]any{"new_governance": govProgram.String()}, contract.ErrInvalidAccount)
	mustFail(t, "propose_governance_change", map[string]any{"new_governance": fillAddr(0).String()}, contract.ErrInvalidAccount)

	call(t, "propose_governance_change", map[string]any{"new_governance": next.String()})
	advance(GovernanceCooldownSeconds + 1)
	as(alice)
	mustFail(t, "accept_governance", map[string]any{}, contract.ErrUnauthorized)
}

func TestProposeAgainRestartsCooldown(t *testing.T) {
	setupToken(t, 0)
	next := fillAddr(0xF9)

	as(govProgram)
	call(t, "propose_governance_change", map[string]any{"new_governance": next.String()})
	advance(GovernanceCooldownSeconds)

	// re-proposing moves the clock
	call(t, "propose_governance_change", map[string]any{"new_governance": next.String()})
	as(next)
	mustFail(t, "accept_governance", map[string]any{}, contract.ErrGovernanceCooldown)
}
