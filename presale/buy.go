package presale

import (
	"encoding/base64"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Purchases
// -----------------------------------------------------------------------------

// preflightBuyer runs the checks shared by both purchase legs: sale active,
// token engine not paused, buyer clean. The token program's pause bits and
// blacklist records are read raw across the contract boundary at their
// pinned offsets.
func preflightBuyer(st *PresaleState, buyer sdk.Address) {
	if st.Status != StatusActive {
		contract.Fail(contract.ErrPresaleNotActive, "presale status is %s", st.Status)
	}

	if hdrPtr := contract.ReadForeign(st.TokenProgram, "tok:state:raw"); hdrPtr != nil {
		raw, err := base64.StdEncoding.DecodeString(*hdrPtr)
		if err != nil {
			contract.Fail(contract.ErrInvalidAccount, "corrupt token state header")
		}
		hdr, err := contract.ParseTokenStateHeader(raw)
		if err != nil {
			contract.Fail(contract.ErrInvalidAccount, "corrupt token state header: %v", err)
		}
		if hdr.Paused || hdr.EmergencyPaused {
			contract.Fail(contract.ErrTokenPaused, "token engine is paused")
		}
	}

	if flagPtr := contract.ReadForeign(st.TokenProgram, "tok:bl:"+buyer.String()); flagPtr != nil {
		raw, err := base64.StdEncoding.DecodeString(*flagPtr)
		if err != nil {
			contract.Fail(contract.ErrInvalidAccount, "corrupt blacklist record")
		}
		rec, err := contract.ParseFlagRecord(raw)
		if err != nil {
			contract.Fail(contract.ErrInvalidAccount, "corrupt blacklist record: %v", err)
		}
		if rec.Flag {
			contract.Fail(contract.ErrBlacklisted, "buyer %s is blacklisted", buyer)
		}
	}
}

// checkCaps enforces the global and per-user limits before funds move.
// A zero cap means unlimited.
func checkCaps(st *PresaleState, user *UserPurchase, tokens uint64) (soldAfter, userAfter uint64) {
	soldAfter, ok := contract.CheckedAddU64(st.TotalTokensSold, tokens)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "total sold overflow")
	}
	if st.PresaleCap > 0 && soldAfter > st.PresaleCap {
		contract.Fail(contract.ErrPresaleCapExceeded, "sold %d above cap %d", soldAfter, st.PresaleCap)
	}
	userAfter, ok = contract.CheckedAddU64(user.TotalPurchased, tokens)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "user total overflow")
	}
	if st.MaxPerUser > 0 && userAfter > st.MaxPerUser {
		contract.Fail(contract.ErrPerUserLimitExceeded, "user total %d above limit %d", userAfter, st.MaxPerUser)
	}
	return soldAfter, userAfter
}

type BuyArgs struct {
	Amount      uint64 `json:"amount"`
	PaymentMint string `json:"payment_mint"`
}

// Buy is the stable leg: one payment base unit buys one token base unit.
// Payload: {"amount":1000000,"payment_mint":"<base58>"}
//
//go:wasmexport buy
func Buy(payload *string) *string {
	st := loadState()
	args := contract.FromJSON[BuyArgs](*payload, "buy args")
	buyer := contract.SenderAddress()

	if args.Amount == 0 {
		contract.Fail(contract.ErrInvalidAmount, "amount must be positive")
	}
	mint := mustAddr(args.PaymentMint, "payment mint")
	if !isTokenAllowed(mint) {
		contract.Fail(contract.ErrTokenNotAllowed, "payment mint %s is not allow-listed", mint)
	}
	preflightBuyer(st, buyer)

	user := loadUser(buyer)
	soldAfter, userAfter := checkCaps(st, user, args.Amount)
	raisedAfter, ok := contract.CheckedAddU64(st.TotalRaisedUsd, args.Amount)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "total raised overflow")
	}

	// payment in, presale token out
	sdk.AssetDraw(args.Amount, mint.String())
	sdk.AssetTransfer(buyer, args.Amount, st.TokenMint.String())

	st.TotalTokensSold = soldAfter
	st.TotalRaisedUsd = raisedAfter
	saveState(st)
	user.TotalPurchased = userAfter
	saveUser(user)

	emitBuyEvent("stable", buyer, args.Amount, args.Amount)
	return respond(map[string]any{"buyer": buyer.String(), "tokens": args.Amount})
}

type BuyWithSolArgs struct {
	Lamports  uint64 `json:"lamports"`
	PriceFeed string `json:"price_feed"`
}

// BuyWithSol is the native leg. The token amount comes out of the oracle
// price with 128-bit intermediates:
//
//	tokens = lamports * answer * 10^6 * 10^8 / (price_usd_micro * 10^9 * 10^8)
//
// Truncation is intentional, the buyer never receives rounding in their
// favor.
// Payload: {"lamports":1000000000,"price_feed":"<base58>"}
//
//go:wasmexport buy_with_sol
func BuyWithSol(payload *string) *string {
	st := loadState()
	args := contract.FromJSON[BuyWithSolArgs](*payload, "buy with sol args")
	buyer := contract.SenderAddress()

	if args.Lamports == 0 {
		contract.Fail(contract.ErrInvalidAmount, "lamports must be positive")
	}
	preflightBuyer(st, buyer)
	feed := readPriceFeed(st, mustAddr(args.PriceFeed, "price feed"))

	tokens := solToTokens(args.Lamports, uint64(feed.Answer), st.TokenPriceUsdMicro)
	if tokens == 0 {
		contract.Fail(contract.ErrInvalidAmount, "lamports too small for one token base unit")
	}
	usdMicro := lamportsToUsdMicro(args.Lamports, uint64(feed.Answer))

	user := loadUser(buyer)
	soldAfter, userAfter := checkCaps(st, user, tokens)
	raisedAfter, ok := contract.CheckedAddU64(st.TotalRaisedUsd, usdMicro)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "total raised overflow")
	}
	solAfter, ok := contract.CheckedAddU64(user.SolContributed, args.Lamports)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "sol contribution overflow")
	}

	sdk.AssetDraw(args.Lamports, nativeToken)
	sdk.AssetTransfer(buyer, tokens, st.TokenMint.String())

	st.TotalTokensSold = soldAfter
	st.TotalRaisedUsd = raisedAfter
	saveState(st)
	user.TotalPurchased = userAfter
	user.SolContributed = solAfter
	saveUser(user)

	emitBuyEvent("sol", buyer, args.Lamports, tokens)
	return respond(map[string]any{"buyer": buyer.String(), "tokens": tokens})
}

// solToTokens runs the pricing formula in the 128-bit domain, mapping every
// overflow and the narrowing to MathOverflow.
func solToTokens(lamports, answer, priceUsdMicro uint64) uint64 {
	num, ok := contract.U128From(lamports).MulU64(answer)
	if ok {
		num, ok = num.MulU64(usdMicroScale)
	}
	if ok {
		num, ok = num.MulU64(tokenScale)
	}
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "pricing numerator overflow")
	}
	den, ok := contract.U128From(priceUsdMicro).MulU64(nativeScale)
	if ok {
		den, ok = den.MulU64(oracleScale)
	}
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "pricing denominator overflow")
	}
	out, ok := num.Div(den)
	if !ok {
		contract.Fail(contract.ErrInvalidPrice, "token price is zero")
	}
	tokens, ok := out.ToU64()
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "token amount does not fit u64")
	}
	return tokens
}

// lamportsToUsdMicro values a native payment in USD micro for the raised
// totals: lamports * answer / 10^(9+8-6).
func lamportsToUsdMicro(lamports, answer uint64) uint64 {
	wide, ok := contract.U128From(lamports).MulU64(answer)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "usd valuation overflow")
	}
	wide, ok = wide.DivU64(nativeScale * oracleScale / usdMicroScale)
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "usd valuation division failed")
	}
	usd, ok := wide.ToU64()
	if !ok {
		contract.Fail(contract.ErrMathOverflow, "usd valuation does not fit u64")
	}
	return usd
}
