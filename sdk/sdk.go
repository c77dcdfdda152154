//go:build wasm

package sdk

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("queued tx 7")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk accounts.read
func accountRead(addr *string) *string

//go:wasmimport sdk asset.get_balance
func assetGetBalance(addr *string, token *string) *string

//go:wasmimport sdk asset.draw
func assetDraw(amount *string, token *string) *string

//go:wasmimport sdk asset.transfer
func assetTransfer(to *string, amount *string, token *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("state corrupted")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short stable symbol.
// Example payload: sdk.Revert("cooldown not expired", "CooldownNotExpired")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(symbol + ": " + msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if senderStr, ok := envMap["msg.sender"].(string); ok {
		if addr, err := AddressFromBase58(senderStr); err == nil {
			env.Sender.Address = addr
		}
	}
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if s, ok := auth.(string); ok {
				if addr, err := AddressFromBase58(s); err == nil {
					env.Sender.RequiredAuths = append(env.Sender.RequiredAuths, addr)
				}
			}
		}
	}
	return env
}

// GetEnvKey pulls a single env key (like block.timestamp) to avoid parsing the whole struct.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// AccountRead fetches the raw byte image of an external chain account
// (token accounts, oracle feeds). The host hands it over base64 encoded.
// Example payload: sdk.AccountRead(vault)
func AccountRead(addr Address) []byte {
	a := addr.String()
	ptr := accountRead(&a)
	if ptr == nil || *ptr == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(*ptr)
	if err != nil {
		Abort("host returned malformed account bytes")
	}
	return raw
}

// GetAssetBalance queries the host-side balance for addr in the given token
// ("sol" or a mint address in base58).
func GetAssetBalance(addr Address, token string) uint64 {
	a := addr.String()
	balStr := *assetGetBalance(&a, &token)
	bal, err := strconv.ParseUint(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// AssetDraw pulls base units from the caller to the contract within the
// transfer.allow intent limit.
// Example payload: sdk.AssetDraw(1_000_000, "sol")
func AssetDraw(amount uint64, token string) {
	amt := strconv.FormatUint(amount, 10)
	assetDraw(&amt, &token)
}

// AssetTransfer sends base units from the contract towards a user address.
// Example payload: sdk.AssetTransfer(treasury, 500, mint.String())
func AssetTransfer(to Address, amount uint64, token string) {
	toaddr := to.String()
	amt := strconv.FormatUint(amount, 10)
	assetTransfer(&toaddr, &amt, &token)
}

// ContractStateGet reads another contract's state key (view-only).
func ContractStateGet(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Example payload: sdk.ContractCall(tokenProgram.String(), "set_pause", "{}", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Revert("could not serialize options", "SdkError")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr)
}
