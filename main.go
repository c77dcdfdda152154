////////////////////////////////////////////////////////////////////////////////
// Meridian Protocol: multisig governance, compliance token and presale suite
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"meridian_protocol/contract"

	_ "meridian_protocol/governance"
	_ "meridian_protocol/presale"
	_ "meridian_protocol/token"
)

func main() {
	debug := true
	contract.InitAll(debug) // true = in-memory state, env, cpi and ledger
}
