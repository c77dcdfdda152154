//go:build !wasm

package sdk

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// Off-chain build of the host surface. State, env, cpi and ledger reads are
// normally routed through the runtime interfaces, so these fakes only need to
// behave sensibly when a handler touches them directly.

var (
	mockState    = map[string]string{}
	mockAccounts = map[string][]byte{}
	mockEnvJSON  = `{"msg.sender":"11111111111111111111111111111111","block.timestamp":"0","tx.id":"tx0","contract.id":"11111111111111111111111111111111"}`
)

// SetMockEnvJSON swaps the env blob returned by GetEnv for direct sdk tests.
func SetMockEnvJSON(blob string) {
	mockEnvJSON = blob
}

// SetMockAccount installs raw account bytes behind AccountRead.
func SetMockAccount(addr Address, raw []byte) {
	mockAccounts[addr.String()] = raw
}

func Log(s string) {
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic("abort: " + msg)
}

func Revert(msg string, symbol string) {
	panic(symbol + ": " + msg)
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	env := Env{}
	env.Timestamp = "0"
	env.TxId = "tx0"
	_ = mockEnvJSON
	return env
}

func GetEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		v := "0"
		return &v
	case "tx.id":
		v := "tx0"
		return &v
	default:
		return nil
	}
}

func AccountRead(addr Address) []byte {
	raw, ok := mockAccounts[addr.String()]
	if !ok {
		return nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

func GetAssetBalance(addr Address, token string) uint64 {
	fmt.Println("GetAssetBalance:", addr.String(), token)
	return 0
}

func AssetDraw(amount uint64, token string) {
	fmt.Println("AssetDraw:", strconv.FormatUint(amount, 10), token)
}

func AssetTransfer(to Address, amount uint64, token string) {
	fmt.Println("AssetTransfer:", to.String(), strconv.FormatUint(amount, 10), token)
}

func ContractStateGet(contractId string, key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	fmt.Println("ContractCall:", contractId, method, payload)
	dummy := base64.StdEncoding.EncodeToString([]byte("mock_call_result"))
	return &dummy
}
