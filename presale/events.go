package presale

import (
	"fmt"

	"meridian_protocol/sdk"
)

func emitBuyEvent(leg string, buyer sdk.Address, paid uint64, tokens uint64) {
	sdk.Log(fmt.Sprintf("psb|l:%s|by:%s|in:%d|out:%d", leg, buyer, paid, tokens))
}

func emitStatusEvent(old, new PresaleStatus) {
	sdk.Log(fmt.Sprintf("pss|old:%s|new:%s", old, new))
}

func emitConfigEvent(field string, old string, new string) {
	sdk.Log(fmt.Sprintf("psc|f:%s|old:%s|new:%s", field, old, new))
}

func emitWithdrawEvent(kind string, to sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("psw|k:%s|to:%s|amt:%d", kind, to, amount))
}

func emitMigrateEvent(from uint8, to uint8) {
	sdk.Log(fmt.Sprintf("psm|from:%d|to:%d", from, to))
}
