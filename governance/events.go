package governance

import (
	"fmt"

	"meridian_protocol/sdk"
)

// emitQueuedEvent leaves a short ping so indexers see new queue entries without state diffs.
func emitQueuedEvent(id uint64, kind TxKind, by string) {
	sdk.Log(fmt.Sprintf("txq|id:%d|k:%d|by:%s", id, kind, by))
}

// emitApprovedEvent includes the running count so quorum can be replayed from logs only.
func emitApprovedEvent(id uint64, by string, count uint8) {
	sdk.Log(fmt.Sprintf("txa|id:%d|by:%s|n:%d", id, by, count))
}

func emitRejectedEvent(id uint64, by string) {
	sdk.Log(fmt.Sprintf("txr|id:%d|by:%s", id, by))
}

func emitExecutedEvent(id uint64, kind TxKind, by string) {
	sdk.Log(fmt.Sprintf("txx|id:%d|k:%d|by:%s", id, kind, by))
}

// emitConfigChangedEvent spells out the diff so auditors can track sensitive flips.
func emitConfigChangedEvent(field string, old string, new string) {
	sdk.Log(fmt.Sprintf("gc|f:%s|old:%s|new:%s", field, old, new))
}

func emitRoleEvent(account string, role uint8, has bool) {
	sdk.Log(fmt.Sprintf("rl|acct:%s|r:%d|has:%t", account, role, has))
}

func emitEmergencyPauseEvent(by string) {
	sdk.Log(fmt.Sprintf("ep|by:%s", by))
}
