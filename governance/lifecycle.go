package governance

import (
	"meridian_protocol/contract"
)

// -----------------------------------------------------------------------------
// Approve / Reject / Execute
// -----------------------------------------------------------------------------

type TxIdArgs struct {
	Id uint64 `json:"id"`
}

type RejectArgs struct {
	Id     uint64 `json:"id"`
	Reason string `json:"reason"`
}

type ExecuteArgs struct {
	Id     uint64 `json:"id"`
	Target string `json:"target,omitempty"`
}

// ApproveTransaction records one signer's approval. Approval is a side
// effect only, execution always goes through execute_transaction.
// Payload: {"id":1}
//
//go:wasmexport approve_transaction
func ApproveTransaction(payload *string) *string {
	st := loadState()
	caller := requireSigner(st)
	args := contract.FromJSON[TxIdArgs](*payload, "approve args")

	tx := loadTransaction(args.Id)
	if tx.Id != args.Id {
		contract.Fail(contract.ErrInvalidTransactionId, "id mismatch: %d != %d", tx.Id, args.Id)
	}
	if tx.Status != StatusPending {
		contract.Fail(contract.ErrTransactionNotPending, "transaction %d is not pending", tx.Id)
	}
	if tx.hasApproved(caller) {
		contract.Fail(contract.ErrAlreadyApproved, "%s already approved transaction %d", caller, tx.Id)
	}

	tx.Approvals = append(tx.Approvals, caller)
	tx.ApprovalCount = uint8(len(tx.Approvals))
	saveTransaction(tx)

	emitApprovedEvent(tx.Id, caller.String(), tx.ApprovalCount)
	return respond(map[string]any{"id": tx.Id, "approvals": tx.ApprovalCount})
}

// RejectTransaction terminally aborts a pending entry with a bounded reason.
// Payload: {"id":1,"reason":"wrong target"}
//
//go:wasmexport reject_transaction
func RejectTransaction(payload *string) *string {
	st := loadState()
	caller := requireSigner(st)
	args := contract.FromJSON[RejectArgs](*payload, "reject args")

	tx := loadTransaction(args.Id)
	if tx.Status != StatusPending {
		contract.Fail(contract.ErrTransactionNotPending, "transaction %d is not pending", tx.Id)
	}
	if len(args.Reason) == 0 {
		contract.Fail(contract.ErrEmptyRejectionReason, "rejection reason required")
	}
	if len(args.Reason) > MaxRejectionReason {
		contract.Fail(contract.ErrRejectionReasonTooLong, "reason exceeds %d bytes", MaxRejectionReason)
	}

	tx.Status = StatusRejected
	tx.RejectionReason = args.Reason
	tx.Rejector = caller
	saveTransaction(tx)

	emitRejectedEvent(tx.Id, caller.String())
	return respond(map[string]any{"id": tx.Id, "rejected": true})
}

// ExecuteTransaction claims the entry first, then checks the timelock and
// quorum, then dispatches. The claim write is the re-entrancy guard: a
// second execute in the same atomic unit sees a non-pending record, and a
// failed dispatch aborts the whole unit so the host rolls the claim back.
// Payload: {"id":1,"target":"<base58, required for address kinds>"}
//
//go:wasmexport execute_transaction
func ExecuteTransaction(payload *string) *string {
	st := loadState()
	caller := requireSigner(st)
	args := contract.FromJSON[ExecuteArgs](*payload, "execute args")

	tx := loadTransaction(args.Id)
	if tx.Status != StatusPending {
		contract.Fail(contract.ErrTransactionNotPending, "transaction %d is not pending", tx.Id)
	}

	// claim before any further checks
	tx.Status = StatusExecuted
	saveTransaction(tx)

	now := contract.NowUnix()
	if now < tx.ExecuteAfter {
		contract.Fail(contract.ErrCooldownNotExpired, "%d < %d", now, tx.ExecuteAfter)
	}
	if tx.ApprovalCount < st.RequiredApprovals {
		contract.Fail(contract.ErrInsufficientApprovals, "%d of %d approvals", tx.ApprovalCount, st.RequiredApprovals)
	}

	dispatch(st, tx, args.Target)

	emitExecutedEvent(tx.Id, tx.Kind, caller.String())
	return respond(map[string]any{"id": tx.Id, "executed": true})
}
