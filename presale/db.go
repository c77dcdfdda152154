package presale

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

func saveState(st *PresaleState) {
	contract.GetState().Set(stateKey, contract.ToJSON(st, "presale state"))
}

func loadState() *PresaleState {
	ptr := contract.GetState().Get(stateKey)
	if ptr == nil {
		contract.Fail(contract.ErrNotInitialized, "presale state missing")
	}
	return contract.FromJSON[PresaleState](*ptr, "presale state")
}

func isInitialized() bool {
	return contract.GetState().Get(stateKey) != nil
}

func saveUser(u *UserPurchase) {
	contract.GetState().Set(userKey(u.Buyer), contract.ToJSON(u, "user purchase"))
}

// loadUser returns a zeroed record for first-time buyers.
func loadUser(buyer sdk.Address) *UserPurchase {
	ptr := contract.GetState().Get(userKey(buyer))
	if ptr == nil {
		return &UserPurchase{Buyer: buyer}
	}
	return contract.FromJSON[UserPurchase](*ptr, "user purchase")
}

func saveAllowedToken(t *AllowedToken) {
	contract.GetState().Set(allowedKey(t.Mint), contract.ToJSON(t, "allowed token"))
}

func isTokenAllowed(mint sdk.Address) bool {
	ptr := contract.GetState().Get(allowedKey(mint))
	if ptr == nil {
		return false
	}
	return contract.FromJSON[AllowedToken](*ptr, "allowed token").Enabled
}
