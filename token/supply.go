package token

import (
	"meridian_protocol/contract"
)

// -----------------------------------------------------------------------------
// Supply management, governance calls only
// -----------------------------------------------------------------------------

type MintArgs struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// Mint creates new supply into a recipient account. Gated on governance,
// refused while paused, against a blacklisted recipient, after the mint
// authority was revoked, or past the supply cap.
// Payload: {"to":"<base58>","amount":1000}
//
//go:wasmexport mint_tokens
func Mint(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	args := contract.FromJSON[MintArgs](*payload, "mint args")

	to := mustAddr(args.To, "recipient")
	if to.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "recipient cannot be the zero address")
	}
	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "mint amount must be positive")
	}
	if st.Paused || st.EmergencyPaused {
		contract.Fail(contract.ErrTokenPaused, "minting is paused")
	}
	if flagIsSet(blacklistKey(to)) {
		contract.Fail(contract.ErrBlacklisted, "recipient %s is blacklisted", to)
	}
	if st.MintAuthorityRevoked {
		contract.Fail(contract.ErrMintAuthorityRevoked, "mint authority was revoked")
	}

	supply, ok := contract.CheckedAddU64(st.TotalSupply, args.Amount)
	if !ok {
		contract.Fail(contract.ErrOverflow, "total supply overflow")
	}
	if st.MaxSupply != nil && supply > *st.MaxSupply {
		contract.Fail(contract.ErrSupplyCapExceeded, "supply %d above cap %d", supply, *st.MaxSupply)
	}

	st.TotalSupply = supply
	saveState(st)
	creditAccount(st, to, args.Amount)

	emitMintEvent(to, args.Amount, supply)
	return respond(map[string]any{"to": to.String(), "amount": args.Amount, "total_supply": supply})
}

type BurnArgs struct {
	Amount uint64 `json:"amount"`
}

// Burn destroys tokens out of the caller's own balance.
// Payload: {"amount":500}
//
//go:wasmexport burn_tokens
func Burn(payload *string) *string {
	st := loadState()
	checkVersion(st)
	args := contract.FromJSON[BurnArgs](*payload, "burn args")

	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "burn amount must be positive")
	}
	if st.Paused || st.EmergencyPaused {
		contract.Fail(contract.ErrTokenPaused, "burning is paused")
	}

	from := contract.SenderAddress()
	acct := loadAccount(from)
	if acct == nil {
		contract.Fail(contract.ErrInvalidAmount, "caller %s holds no tokens", from)
	}
	remaining, ok := contract.CheckedSubU64(acct.Amount, args.Amount)
	if !ok {
		contract.Fail(contract.ErrInvalidAmount, "amount %d above balance %d", args.Amount, acct.Amount)
	}
	supply, ok := contract.CheckedSubU64(st.TotalSupply, args.Amount)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "burn below total supply")
	}

	acct.Amount = remaining
	saveAccount(acct)
	st.TotalSupply = supply
	saveState(st)

	emitBurnEvent(from, args.Amount, supply)
	return respond(map[string]any{"from": from.String(), "amount": args.Amount, "total_supply": supply})
}

// RevokeMintAuthority permanently disables minting. One-way, there is no
// re-enable path.
// Payload: {}
//
//go:wasmexport revoke_mint_authority
func RevokeMintAuthority(payload *string) *string {
	st := loadState()
	requireGovernance(st)
	checkVersion(st)
	if st.MintAuthorityRevoked {
		contract.Fail(contract.ErrMintAuthorityRevoked, "mint authority already revoked")
	}
	st.MintAuthorityRevoked = true
	saveState(st)
	emitConfigEvent("mint_authority", "active", "revoked")
	return respond(map[string]any{"mint_authority_revoked": true})
}
