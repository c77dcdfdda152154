package governance

import (
	"meridian_protocol/contract"
)

// Roles are loose capability flags next to the signer quorum, used by
// off-chain tooling and collaborators for soft checks.

type RoleArgs struct {
	Role    uint8  `json:"role"`
	Account string `json:"account"`
}

// GrantRole flags an account with a role tag. Any quorum signer may grant;
// granting a role to yourself is denied.
// Payload: {"role":1,"account":"<base58>"}
//
//go:wasmexport grant_role
func GrantRole(payload *string) *string {
	st := loadState()
	caller := requireSigner(st)
	args := contract.FromJSON[RoleArgs](*payload, "role args")
	account := mustAddr(args.Account, "role account")
	if account.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "role account cannot be the zero address")
	}
	if account == caller {
		contract.Fail(contract.ErrInvalidAccount, "cannot grant a role to yourself")
	}
	saveRole(&Role{Account: account, Role: args.Role, HasRole: true})
	emitRoleEvent(account.String(), args.Role, true)
	return respond(map[string]any{"ok": true})
}

// RevokeRole clears the flag, keeping the record as an audit trail. The
// requested role must match the stored one.
//
//go:wasmexport revoke_role
func RevokeRole(payload *string) *string {
	st := loadState()
	requireSigner(st)
	args := contract.FromJSON[RoleArgs](*payload, "role args")
	account := mustAddr(args.Account, "role account")
	rec := loadRole(account)
	if rec == nil {
		contract.Fail(contract.ErrInvalidAccount, "no role record for %s", account)
	}
	if rec.Role != args.Role {
		contract.Fail(contract.ErrInvalidRole, "stored role %d does not match %d", rec.Role, args.Role)
	}
	rec.HasRole = false
	saveRole(rec)
	emitRoleEvent(account.String(), args.Role, false)
	return respond(map[string]any{"ok": true})
}

// HasRole is the read path used by collaborators.
func HasRole(account string) bool {
	addr := mustAddr(account, "role account")
	rec := loadRole(addr)
	return rec != nil && rec.HasRole
}
