package presale

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Treasury withdrawals
// -----------------------------------------------------------------------------

// validateVault inspects the vault's raw account image instead of trusting a
// typed decode: the mint and owner words are checked at their pinned offsets
// so a substituted account with a compatible prefix still fails.
func validateVault(vault sdk.Address, wantMint sdk.Address, wantOwner sdk.Address, amount uint64) {
	raw := contract.AccountRaw(vault)
	if raw == nil {
		contract.Fail(contract.ErrInvalidVault, "vault %s does not exist", vault)
	}
	acct, err := contract.ParseTokenAccount(raw)
	if err != nil {
		contract.Fail(contract.ErrInvalidVault, "vault %s: %v", vault, err)
	}
	if acct.Mint != wantMint {
		contract.Fail(contract.ErrInvalidVault, "vault mint %s, expected %s", acct.Mint, wantMint)
	}
	if acct.Owner != wantOwner {
		contract.Fail(contract.ErrInvalidVault, "vault owner %s, expected %s", acct.Owner, wantOwner)
	}
	if acct.Amount < amount {
		contract.Fail(contract.ErrInsufficientVaultFunds, "vault holds %d, need %d", acct.Amount, amount)
	}
}

func requireTreasury(st *PresaleState) sdk.Address {
	if !st.TreasurySet || st.Treasury.IsZero() {
		contract.Fail(contract.ErrTreasuryNotSet, "treasury address not configured")
	}
	return st.Treasury
}

type WithdrawArgs struct {
	Amount uint64 `json:"amount"`
}

// WithdrawToTreasury moves raised stable funds from the payment vault to the
// treasury. This is the target of the quorum-approved governance dispatch.
// Payload: {"amount":1000000}
//
//go:wasmexport withdraw_to_treasury
func WithdrawToTreasury(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	args := contract.FromJSON[WithdrawArgs](*payload, "withdraw args")
	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "amount must be positive")
	}
	treasury := requireTreasury(st)
	validateVault(st.PaymentVault, st.PaymentMint, st.Authority, args.Amount)

	sdk.AssetTransfer(treasury, args.Amount, st.PaymentMint.String())

	emitWithdrawEvent("stable", treasury, args.Amount)
	return respond(map[string]any{"treasury": treasury.String(), "amount": args.Amount})
}

// WithdrawSolToTreasury moves the native leg's proceeds out.
// Payload: {"amount":1000000000}
//
//go:wasmexport withdraw_sol_to_treasury
func WithdrawSolToTreasury(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	args := contract.FromJSON[WithdrawArgs](*payload, "withdraw args")
	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "amount must be positive")
	}
	treasury := requireTreasury(st)

	balance := sdk.GetAssetBalance(contract.SelfAddress(), nativeToken)
	if balance < args.Amount {
		contract.Fail(contract.ErrInsufficientVaultFunds, "holding %d lamports, need %d", balance, args.Amount)
	}
	sdk.AssetTransfer(treasury, args.Amount, nativeToken)

	emitWithdrawEvent("sol", treasury, args.Amount)
	return respond(map[string]any{"treasury": treasury.String(), "amount": args.Amount})
}

// WithdrawUnsoldTokens returns leftover presale inventory to the treasury.
// Only after the sale stopped, so it cannot drain tokens a live sale still
// owes to buyers.
// Payload: {"amount":500000}
//
//go:wasmexport withdraw_unsold_tokens
func WithdrawUnsoldTokens(payload *string) *string {
	st := loadState()
	requireAdminOrGovernance(st)
	args := contract.FromJSON[WithdrawArgs](*payload, "withdraw args")
	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "amount must be positive")
	}
	if st.Status != StatusStopped {
		contract.Fail(contract.ErrInvalidStatusTransition, "unsold tokens withdraw only after stop, status is %s", st.Status)
	}
	treasury := requireTreasury(st)
	validateVault(st.TokenVault, st.TokenMint, st.Authority, args.Amount)

	sdk.AssetTransfer(treasury, args.Amount, st.TokenMint.String())

	emitWithdrawEvent("unsold", treasury, args.Amount)
	return respond(map[string]any{"treasury": treasury.String(), "amount": args.Amount})
}
