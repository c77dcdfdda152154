package governance

import (
	"strconv"

	"meridian_protocol/sdk"
)

const stateKey = "gov:state"

func txKey(id uint64) string {
	return "gov:tx:" + strconv.FormatUint(id, 10)
}

func roleKey(account sdk.Address) string {
	return "gov:role:" + account.String()
}
