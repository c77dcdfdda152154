package token

import (
	"encoding/base64"

	bin "github.com/gagliardetto/binary"

	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

func saveState(st *TokenState) {
	contract.GetState().Set(stateKey, contract.ToJSON(st, "token state"))

	// keep the raw header mirror in sync, collaborators peek at it by offset
	hdr := contract.TokenStateHeader{
		Discriminator:   discStateHeader,
		Governance:      st.Governance,
		Paused:          st.Paused,
		EmergencyPaused: st.EmergencyPaused,
	}
	contract.GetState().Set(stateRawKey, base64.StdEncoding.EncodeToString(contract.EncodeRecord(hdr)))
}

func loadState() *TokenState {
	ptr := contract.GetState().Get(stateKey)
	if ptr == nil {
		contract.Fail(contract.ErrNotInitialized, "token state missing")
	}
	return contract.FromJSON[TokenState](*ptr, "token state")
}

func isInitialized() bool {
	return contract.GetState().Get(stateKey) != nil
}

// holder accounts are stored as raw 72-byte images, same layout external
// token accounts use, so one parser covers both.

func saveAccount(acct *contract.TokenAccount) {
	contract.GetState().Set(acctKey(acct.Owner), base64.StdEncoding.EncodeToString(contract.EncodeRecord(*acct)))
}

func loadAccount(owner sdk.Address) *contract.TokenAccount {
	ptr := contract.GetState().Get(acctKey(owner))
	if ptr == nil {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(*ptr)
	if err != nil {
		sdk.Abort("corrupt token account record")
	}
	acct, err := contract.ParseTokenAccount(raw)
	if err != nil {
		sdk.Abort("corrupt token account record: " + err.Error())
	}
	return &acct
}

func saveFlag(key string, disc uint64, addr sdk.Address, flag bool) {
	rec := contract.FlagRecord{Discriminator: disc, Address: addr, Flag: flag}
	contract.GetState().Set(key, base64.StdEncoding.EncodeToString(contract.EncodeRecord(rec)))
}

func loadFlag(key string) *contract.FlagRecord {
	ptr := contract.GetState().Get(key)
	if ptr == nil {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(*ptr)
	if err != nil {
		sdk.Abort("corrupt flag record")
	}
	rec, err := contract.ParseFlagRecord(raw)
	if err != nil {
		sdk.Abort("corrupt flag record: " + err.Error())
	}
	return &rec
}

// flagIsSet folds the missing-record case into false.
func flagIsSet(key string) bool {
	rec := loadFlag(key)
	return rec != nil && rec.Flag
}

func saveSellTracker(tr *SellTracker) {
	raw := contract.EncodeRecord(*tr)
	contract.GetState().Set(sellTrackerKey(tr.Seller), base64.StdEncoding.EncodeToString(raw))
}

func loadSellTracker(seller sdk.Address) *SellTracker {
	ptr := contract.GetState().Get(sellTrackerKey(seller))
	if ptr == nil {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(*ptr)
	if err != nil {
		sdk.Abort("corrupt sell tracker record")
	}
	var tr SellTracker
	if err := bin.NewBorshDecoder(raw).Decode(&tr); err != nil {
		sdk.Abort("corrupt sell tracker record: " + err.Error())
	}
	return &tr
}
