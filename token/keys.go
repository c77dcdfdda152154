package token

import "meridian_protocol/sdk"

const (
	stateKey    = "tok:state"
	stateRawKey = "tok:state:raw"
)

func acctKey(owner sdk.Address) string {
	return "tok:acct:" + owner.String()
}

func blacklistKey(addr sdk.Address) string {
	return "tok:bl:" + addr.String()
}

func whitelistKey(addr sdk.Address) string {
	return "tok:wl:" + addr.String()
}

func noSellLimitKey(addr sdk.Address) string {
	return "tok:nsl:" + addr.String()
}

func restrictedKey(addr sdk.Address) string {
	return "tok:rst:" + addr.String()
}

func liquidityPoolKey(addr sdk.Address) string {
	return "tok:lp:" + addr.String()
}

func sellTrackerKey(addr sdk.Address) string {
	return "tok:sell:" + addr.String()
}
