package presale

import "meridian_protocol/sdk"

const stateKey = "ps:state"

func userKey(buyer sdk.Address) string {
	return "ps:user:" + buyer.String()
}

func allowedKey(mint sdk.Address) string {
	return "ps:tok:" + mint.String()
}
