package presale

import (
	"meridian_protocol/contract"
)

type SetStatusArgs struct {
	Status uint8 `json:"status"`
}

// legalTransition is the lifecycle edge set. Stopped has no outgoing edges.
func legalTransition(from, to PresaleStatus) bool {
	switch from {
	case StatusNotStarted:
		return to == StatusActive || to == StatusStopped
	case StatusActive:
		return to == StatusPaused || to == StatusStopped
	case StatusPaused:
		return to == StatusActive || to == StatusStopped
	default:
		return false
	}
}

// SetPresaleStatus moves the lifecycle along a legal edge. Stopping is
// irreversible.
// Payload: {"status":1}
//
//go:wasmexport set_presale_status
func SetPresaleStatus(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	args := contract.FromJSON[SetStatusArgs](*payload, "set status args")

	next := PresaleStatus(args.Status)
	if next > StatusStopped {
		contract.Fail(contract.ErrInvalidStatusTransition, "unknown status %d", args.Status)
	}
	if st.Status == StatusStopped {
		contract.Fail(contract.ErrPresaleStopped, "presale is stopped")
	}
	if next == st.Status {
		contract.Fail(contract.ErrInvalidStatusTransition, "already %s", st.Status)
	}
	if !legalTransition(st.Status, next) {
		contract.Fail(contract.ErrInvalidStatusTransition, "%s -> %s is not a legal transition", st.Status, next)
	}

	old := st.Status
	st.Status = next
	saveState(st)
	emitStatusEvent(old, next)
	return respond(map[string]any{"status": next.String()})
}
