package presale

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// readPriceFeed loads and validates the oracle round for the sol leg. Every
// rejection maps to its own symbol so clients can tell a stale feed from a
// substituted one.
func readPriceFeed(st *PresaleState, feedAddr sdk.Address) contract.PriceFeed {
	raw := contract.AccountRaw(feedAddr)
	if raw == nil {
		contract.Fail(contract.ErrInvalidPriceFeed, "feed account %s does not exist", feedAddr)
	}
	feed, err := contract.ParsePriceFeed(raw)
	if err != nil {
		contract.Fail(contract.ErrInvalidPriceFeed, "feed account %s: %v", feedAddr, err)
	}
	if feed.Owner != st.OracleProgram {
		contract.Fail(contract.ErrInvalidPriceFeed, "feed owner %s is not the oracle program", feed.Owner)
	}
	if feed.Decimals != ExpectedOracleDecimals {
		contract.Fail(contract.ErrInvalidPriceFeed, "feed has %d decimals, expected %d", feed.Decimals, ExpectedOracleDecimals)
	}
	if feed.Answer <= 0 {
		contract.Fail(contract.ErrInvalidPrice, "feed answer %d is not positive", feed.Answer)
	}
	age := contract.NowUnix() - feed.UpdatedAt
	if age > MaxPriceAgeSeconds {
		contract.Fail(contract.ErrStalePrice, "feed is %ds old, maximum %ds", age, MaxPriceAgeSeconds)
	}
	return feed
}
