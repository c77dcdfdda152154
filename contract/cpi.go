package contract

import (
	"meridian_protocol/sdk"
)

// CPI abstracts cross-contract calls and reads so the dispatcher can be
// exercised in-process. The mock keeps a router of registered contracts and
// replays the host's caller semantics: during a routed call the sender seen
// by the callee is the calling contract's own id.
type CPI interface {
	Call(target sdk.Address, method string, payload string) *string
	Read(target sdk.Address, key string) *string
}

var cpiInterface CPI

func InitCPI(mock bool) {
	if mock {
		cpiInterface = &MockCPI{router: map[sdk.Address]func(method, payload string) *string{}}
	} else {
		cpiInterface = &RealCPI{}
	}
}

// Call invokes method on the target contract with a JSON payload.
func Call(target sdk.Address, method string, payload string) *string {
	return cpiInterface.Call(target, method, payload)
}

// ReadForeign reads a state key of another contract (view-only).
func ReadForeign(target sdk.Address, key string) *string {
	return cpiInterface.Read(target, key)
}

type RealCPI struct{}

func (r *RealCPI) Call(target sdk.Address, method string, payload string) *string {
	return sdk.ContractCall(target.String(), method, payload, nil)
}

func (r *RealCPI) Read(target sdk.Address, key string) *string {
	return sdk.ContractStateGet(target.String(), key)
}

// CPICall is one recorded outbound call, kept for test assertions.
type CPICall struct {
	Target  sdk.Address
	Method  string
	Payload string
}

type MockCPI struct {
	router map[sdk.Address]func(method, payload string) *string
	Calls  []CPICall
}

// MockCalls returns the mock handle so tests can inspect recorded calls.
func MockCalls() *MockCPI {
	m, ok := cpiInterface.(*MockCPI)
	if !ok {
		sdk.Abort("cpi is not mocked")
	}
	return m
}

// Register wires a contract id to an in-process dispatch function.
func (m *MockCPI) Register(addr sdk.Address, dispatch func(method, payload string) *string) {
	m.router[addr] = dispatch
}

func (m *MockCPI) Call(target sdk.Address, method string, payload string) *string {
	m.Calls = append(m.Calls, CPICall{Target: target, Method: method, Payload: payload})
	dispatch, ok := m.router[target]
	if !ok {
		// unrouted targets are record-only, dispatcher tests assert on Calls
		return nil
	}
	env := MockEnv()
	prevSender, prevSelf := env.Sender, env.ContractId
	env.Sender = prevSelf
	env.ContractId = target
	defer func() {
		env.Sender, env.ContractId = prevSender, prevSelf
	}()
	return dispatch(method, payload)
}

func (m *MockCPI) Read(target sdk.Address, key string) *string {
	return GetState().Get(key)
}
