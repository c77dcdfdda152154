package governance

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

func strptr(s string) *string { return &s }

func respond(v any) *string {
	return strptr(contract.ToJSON(v, "response"))
}

// mustAddr parses a base58 address out of a payload field.
func mustAddr(s string, field string) sdk.Address {
	addr, err := sdk.AddressFromBase58(s)
	if err != nil {
		contract.Fail(contract.ErrInvalidAccount, "invalid %s: %v", field, err)
	}
	return addr
}

// requireSigner loads the caller and insists on quorum membership.
func requireSigner(st *GovernanceState) sdk.Address {
	caller := contract.SenderAddress()
	if !st.isSigner(caller) {
		contract.Fail(contract.ErrNotAuthorizedSigner, "%s is not an authorized signer", caller)
	}
	return caller
}

// requireAuthority gates the one-time setters and the deprecated bypass path.
func requireAuthority(st *GovernanceState) sdk.Address {
	caller := contract.SenderAddress()
	if caller != st.Authority {
		contract.Fail(contract.ErrUnauthorized, "%s is not the authority", caller)
	}
	return caller
}

// validateApprovals checks the quorum floor against the live signer count.
func validateApprovals(value uint8, signerCount int) {
	if value < MinRequiredApprovals {
		contract.Fail(contract.ErrRequiredApprovalsTooLow, "required approvals %d below minimum %d", value, MinRequiredApprovals)
	}
	if int(value) > signerCount {
		contract.Fail(contract.ErrRequiredApprovalsTooHigh, "required approvals %d above signer count %d", value, signerCount)
	}
}

// validateCooldown checks the timelock bounds.
func validateCooldown(seconds int64) {
	if seconds < MinCooldownSeconds {
		contract.Fail(contract.ErrCooldownPeriodTooLow, "cooldown %d below minimum %d", seconds, MinCooldownSeconds)
	}
	if seconds > MaxCooldownSeconds {
		contract.Fail(contract.ErrCooldownPeriodTooHigh, "cooldown %d above maximum %d", seconds, MaxCooldownSeconds)
	}
}
