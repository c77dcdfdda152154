package governance

import (
	"encoding/hex"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

func saveState(st *GovernanceState) {
	contract.GetState().Set(stateKey, contract.ToJSON(st, "governance state"))
}

func loadState() *GovernanceState {
	ptr := contract.GetState().Get(stateKey)
	if ptr == nil {
		contract.Fail(contract.ErrNotInitialized, "governance state missing")
	}
	return contract.FromJSON[GovernanceState](*ptr, "governance state")
}

func isInitialized() bool {
	return contract.GetState().Get(stateKey) != nil
}

func saveTransaction(tx *Transaction) {
	contract.GetState().Set(txKey(tx.Id), contract.ToJSON(tx, "transaction"))
}

// loadTransaction restores the record and immediately rebuilds the typed
// payload view, so corrupt or truncated data surfaces here and nowhere else.
func loadTransaction(id uint64) *Transaction {
	ptr := contract.GetState().Get(txKey(id))
	if ptr == nil {
		contract.Fail(contract.ErrInvalidTransactionId, "transaction %d not found", id)
	}
	tx := contract.FromJSON[Transaction](*ptr, "transaction")
	raw, err := hex.DecodeString(tx.Data)
	if err != nil {
		contract.Fail(contract.ErrInvalidDataLength, "transaction %d data is not hex", id)
	}
	payload, err := decodePayload(tx.Kind, raw)
	if err != nil {
		contract.Fail(contract.ErrInvalidDataLength, "transaction %d: %v", id, err)
	}
	tx.payload = payload
	return tx
}

func saveRole(role *Role) {
	contract.GetState().Set(roleKey(role.Account), contract.ToJSON(role, "role"))
}

func loadRole(account sdk.Address) *Role {
	ptr := contract.GetState().Get(roleKey(account))
	if ptr == nil {
		return nil
	}
	return contract.FromJSON[Role](*ptr, "role")
}
