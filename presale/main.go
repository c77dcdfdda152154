package presale

import (
	"meridian_protocol/contract"
	"meridian_protocol/sdk"
)

// -----------------------------------------------------------------------------
// Program Initialization & Config
// -----------------------------------------------------------------------------

func strptr(s string) *string { return &s }

func respond(v any) *string {
	return strptr(contract.ToJSON(v, "response"))
}

func mustAddr(s string, field string) sdk.Address {
	addr, err := sdk.AddressFromBase58(s)
	if err != nil {
		contract.Fail(contract.ErrInvalidAccount, "invalid %s: %v", field, err)
	}
	return addr
}

// requireAdminOrGovernance gates the config surface. The deploying admin
// keeps access so the presale can be operated before governance is wired.
func requireAdminOrGovernance(st *PresaleState) sdk.Address {
	caller := contract.SenderAddress()
	if caller == st.Admin {
		return caller
	}
	if st.GovernanceSet && caller == st.Governance {
		return caller
	}
	contract.Fail(contract.ErrUnauthorized, "%s is neither admin nor governance", caller)
	return sdk.ZeroAddress
}

// requireGovernance gates the two endpoints governance dispatches into.
func requireGovernance(st *PresaleState) sdk.Address {
	caller := contract.SenderAddress()
	if !st.GovernanceSet || caller != st.Governance {
		contract.Fail(contract.ErrUnauthorized, "%s is not the governance program", caller)
	}
	return caller
}

func requireNotStopped(st *PresaleState) {
	if st.Status == StatusStopped {
		contract.Fail(contract.ErrPresaleStopped, "presale is stopped")
	}
}

type InitPresaleArgs struct {
	Authority          string `json:"authority"`
	Governance         string `json:"governance,omitempty"`
	TokenProgram       string `json:"token_program"`
	OracleProgram      string `json:"oracle_program"`
	TokenMint          string `json:"token_mint"`
	PaymentMint        string `json:"payment_mint"`
	SolVault           string `json:"sol_vault"`
	TokenVault         string `json:"token_vault"`
	PaymentVault       string `json:"payment_vault"`
	TokenPriceUsdMicro uint64 `json:"token_price_usd_micro"`
	PresaleCap         uint64 `json:"presale_cap"`
	MaxPerUser         uint64 `json:"max_per_user"`
}

// Initialize creates the singleton presale state with the caller as admin
// and status NotStarted. The stable payment mint is allow-listed right away.
//
//go:wasmexport presale_init
func Initialize(payload *string) *string {
	if isInitialized() {
		contract.Fail(contract.ErrAlreadyInitialized, "presale already initialized")
	}
	args := contract.FromJSON[InitPresaleArgs](*payload, "presale init args")

	if args.TokenPriceUsdMicro == 0 {
		contract.Fail(contract.ErrInvalidPrice, "token price must be positive")
	}
	st := &PresaleState{
		Admin:              contract.SenderAddress(),
		Authority:          mustNonZero(args.Authority, "authority"),
		TokenProgram:       mustNonZero(args.TokenProgram, "token program"),
		OracleProgram:      mustNonZero(args.OracleProgram, "oracle program"),
		TokenMint:          mustNonZero(args.TokenMint, "token mint"),
		PaymentMint:        mustNonZero(args.PaymentMint, "payment mint"),
		SolVault:           mustNonZero(args.SolVault, "sol vault"),
		TokenVault:         mustNonZero(args.TokenVault, "token vault"),
		PaymentVault:       mustNonZero(args.PaymentVault, "payment vault"),
		TokenPriceUsdMicro: args.TokenPriceUsdMicro,
		Status:             StatusNotStarted,
		PresaleCap:         args.PresaleCap,
		MaxPerUser:         args.MaxPerUser,
		Version:            CurrentVersion,
	}
	if args.MaxPerUser > 0 && args.PresaleCap > 0 && args.MaxPerUser > args.PresaleCap {
		contract.Fail(contract.ErrPerUserAboveCap, "per-user cap %d above presale cap %d", args.MaxPerUser, args.PresaleCap)
	}
	if args.Governance != "" {
		st.Governance = mustNonZero(args.Governance, "governance")
		st.GovernanceSet = true
	}
	saveState(st)
	saveAllowedToken(&AllowedToken{Mint: st.PaymentMint, Enabled: true})
	emitConfigEvent("init", "", st.Admin.String())
	return respond(map[string]any{"ok": true})
}

func mustNonZero(s string, field string) sdk.Address {
	addr := mustAddr(s, field)
	if addr.IsZero() {
		contract.Fail(contract.ErrInvalidAccount, "%s cannot be the zero address", field)
	}
	return addr
}

// Dispatch routes a method name to its handler. The wasm host calls exports
// directly; the in-process test router goes through here.
func Dispatch(method string, payload string) *string {
	switch method {
	case "presale_init":
		return Initialize(&payload)
	case "set_presale_status":
		return SetPresaleStatus(&payload)
	case "set_token_price_usd":
		return SetTokenPriceUsd(&payload)
	case "add_allowed_token":
		return AddAllowedToken(&payload)
	case "set_treasury_address":
		return SetTreasuryAddress(&payload)
	case "update_presale_cap":
		return UpdatePresaleCap(&payload)
	case "update_max_per_user":
		return UpdateMaxPerUser(&payload)
	case "update_presale_limits":
		return UpdatePresaleLimits(&payload)
	case "buy":
		return Buy(&payload)
	case "buy_with_sol":
		return BuyWithSol(&payload)
	case "withdraw_to_treasury":
		return WithdrawToTreasury(&payload)
	case "withdraw_sol_to_treasury":
		return WithdrawSolToTreasury(&payload)
	case "withdraw_unsold_tokens":
		return WithdrawUnsoldTokens(&payload)
	case "migrate_presale_state":
		return MigratePresaleState(&payload)
	case "presale_info":
		return PresaleInfo(&payload)
	default:
		sdk.Abort("unknown presale method: " + method)
		return nil
	}
}
