package token

import (
	"meridian_protocol/contract"
)

// -----------------------------------------------------------------------------
// Two-step governance transfer
// -----------------------------------------------------------------------------

type ProposeGovernanceArgs struct {
	NewGovernance string `json:"new_governance"`
}

// ProposeGovernanceChange starts the two-step handover. The current
// governance nominates a successor; nothing changes until the successor
// accepts after the cooldown.
// Payload: {"new_governance":"<base58>"}
//
//go:wasmexport propose_governance_change
func ProposeGovernanceChange(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[ProposeGovernanceArgs](*payload, "propose governance args")

	next := mustAddr(args.NewGovernance, "new governance")
	if next.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "new governance cannot be the zero address")
	}
	if next == st.Governance {
		contract.Fail(contract.ErrInvalidAccount, "new governance matches the current one")
	}

	now := contract.NowUnix()
	st.PendingGovernance = &next
	st.GovernanceChangeTime = &now
	saveState(st)

	emitGovernanceEvent("proposed", next)
	return respond(map[string]any{"pending_governance": next.String()})
}

// AcceptGovernance completes the handover. Only the nominated successor may
// call, and only after the cooldown elapsed in full.
// Payload: {}
//
//go:wasmexport accept_governance
func AcceptGovernance(payload *string) *string {
	st := loadState()
	checkVersion(st)

	if st.PendingGovernance == nil || st.GovernanceChangeTime == nil {
		contract.Fail(contract.ErrNoPendingGovernance, "no governance change pending")
	}
	caller := contract.SenderAddress()
	if caller != *st.PendingGovernance {
		contract.Fail(contract.ErrUnauthorized, "%s is not the pending governance", caller)
	}
	now := contract.NowUnix()
	elapsed := now - *st.GovernanceChangeTime
	if elapsed < GovernanceCooldownSeconds {
		contract.Fail(contract.ErrGovernanceCooldown, "cooldown not expired: %d < %d", elapsed, GovernanceCooldownSeconds)
	}

	st.Governance = caller
	st.PendingGovernance = nil
	st.GovernanceChangeTime = nil
	saveState(st)

	emitGovernanceEvent("accepted", caller)
	return respond(map[string]any{"governance": caller.String()})
}
