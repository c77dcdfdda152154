package contract

import "meridian_protocol/sdk"

type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// singleton state used everywhere
var state State

func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = WasmState{}
	}
}

func GetState() State {
	return state
}

// WasmState is the production binding that forwards straight to the host kv.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}
