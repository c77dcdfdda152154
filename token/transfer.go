package token

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Transfers
// -----------------------------------------------------------------------------

type TransferArgs struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// Transfer moves tokens from the sender to a recipient after running the
// full compliance gauntlet. Check order is part of the caller contract:
// pause, blacklist, restriction, whitelist mode, then the sell window.
// Payload: {"to":"<base58>","amount":100}
//
//go:wasmexport transfer_tokens
func Transfer(payload *string) *string {
	st := loadState()
	checkVersion(st)
	args := contract.FromJSON[TransferArgs](*payload, "transfer args")

	from := contract.SenderAddress()
	to := mustAddr(args.To, "recipient")
	if to.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "recipient cannot be the zero address")
	}
	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "transfer amount must be positive")
	}

	if st.Paused || st.EmergencyPaused {
		contract.Fail(contract.ErrTokenPaused, "token transfers are paused")
	}
	if flagIsSet(blacklistKey(from)) {
		contract.Fail(contract.ErrBlacklisted, "sender %s is blacklisted", from)
	}
	if flagIsSet(blacklistKey(to)) {
		contract.Fail(contract.ErrBlacklisted, "recipient %s is blacklisted", to)
	}
	if flagIsSet(restrictedKey(from)) {
		contract.Fail(contract.ErrRestricted, "sender %s is restricted", from)
	}
	if flagIsSet(restrictedKey(to)) {
		contract.Fail(contract.ErrRestricted, "recipient %s is restricted", to)
	}
	if st.WhitelistMode {
		if !flagIsSet(whitelistKey(from)) {
			contract.Fail(contract.ErrNotWhitelisted, "sender %s is not whitelisted", from)
		}
		if !flagIsSet(whitelistKey(to)) {
			contract.Fail(contract.ErrNotWhitelisted, "recipient %s is not whitelisted", to)
		}
	}

	sender := loadAccount(from)
	if sender == nil {
		contract.Fail(contract.ErrInvalidAmount, "sender %s holds no tokens", from)
	}
	remaining, ok := contract.CheckedSubU64(sender.Amount, args.Amount)
	if !ok {
		contract.Fail(contract.ErrInvalidAmount, "amount %d above balance %d", args.Amount, sender.Amount)
	}

	// transfers into a pool are sells and count against the rolling window
	if flagIsSet(liquidityPoolKey(to)) && !flagIsSet(noSellLimitKey(from)) {
		enforceSellLimit(st, from, sender.Amount, args.Amount)
	}

	sender.Amount = remaining
	saveAccount(sender)
	creditAccount(st, to, args.Amount)

	emitTransferEvent(from, to, args.Amount)
	return respond(map[string]any{"from": from.String(), "to": to.String(), "amount": args.Amount})
}

// enforceSellLimit applies the rolling window: at most SellLimitPercent of
// the seller's pre-transfer balance may be sold per period. The tracker
// resets when a full period passed since the last reset.
func enforceSellLimit(st *TokenState, seller sdk.Address, balance uint64, amount uint64) {
	now := contract.NowUnix()
	tr := loadSellTracker(seller)
	if tr == nil {
		tr = &SellTracker{Discriminator: discSellTracker, Seller: seller, LastReset: now}
	} else if now-tr.LastReset > st.SellLimitPeriod {
		tr.AmountSold = 0
		tr.LastReset = now
	}

	wide, ok := contract.U128From(balance).MulU64(st.SellLimitPercent)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "sell limit numerator overflow")
	}
	wide, ok = wide.DivU64(100)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "sell limit division failed")
	}
	maxSell, ok := wide.ToU64()
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "sell limit does not fit u64")
	}

	sold, ok := contract.CheckedAddU64(tr.AmountSold, amount)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "sell tracker overflow")
	}
	if sold > maxSell {
		contract.Fail(contract.ErrSellLimitExceeded, "sold %d above window maximum %d", sold, maxSell)
	}

	tr.AmountSold = sold
	saveSellTracker(tr)
}

// creditAccount adds to a holder balance, creating the record on first use.
func creditAccount(st *TokenState, owner sdk.Address, amount uint64) {
	acct := loadAccount(owner)
	if acct == nil {
		acct = &contract.TokenAccount{Mint: st.Mint, Owner: owner}
	}
	sum, ok := contract.CheckedAddU64(acct.Amount, amount)
	if !ok {
		contract.Fail(contract.ErrOverflow, "balance overflow for %s", owner)
	}
	acct.Amount = sum
	saveAccount(acct)
}
