package token

import (
	"fmt"

	"meridian_protocol/sdk"
)

func emitTransferEvent(from, to sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("tkx|from:%s|to:%s|amt:%d", from, to, amount))
}

func emitMintEvent(to sdk.Address, amount uint64, supply uint64) {
	sdk.Log(fmt.Sprintf("tkm|to:%s|amt:%d|sup:%d", to, amount, supply))
}

func emitBurnEvent(from sdk.Address, amount uint64, supply uint64) {
	sdk.Log(fmt.Sprintf("tkb|from:%s|amt:%d|sup:%d", from, amount, supply))
}

func emitFlagEvent(kind string, account sdk.Address, flag bool) {
	sdk.Log(fmt.Sprintf("tkf|k:%s|acct:%s|v:%t", kind, account, flag))
}

func emitPauseEvent(kind string, flag bool) {
	sdk.Log(fmt.Sprintf("tkp|k:%s|v:%t", kind, flag))
}

func emitConfigEvent(field string, old string, new string) {
	sdk.Log(fmt.Sprintf("tkc|f:%s|old:%s|new:%s", field, old, new))
}

func emitGovernanceEvent(stage string, addr sdk.Address) {
	sdk.Log(fmt.Sprintf("tkg|s:%s|a:%s", stage, addr))
}
