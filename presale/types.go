package presale

import (
	"meridian_protocol/sdk"
)

const (
	CurrentVersion = 2
	LegacyVersion  = 1

	// oracle feed acceptance
	ExpectedOracleDecimals = uint8(8)
	MaxPriceAgeSeconds     = int64(3600)

	// decimal scales used in the sol pricing formula
	usdMicroScale = uint64(1_000_000)     // 10^6
	tokenScale    = uint64(100_000_000)   // 10^8
	nativeScale   = uint64(1_000_000_000) // 10^9
	oracleScale   = uint64(100_000_000)   // 10^8

	nativeToken = "sol"
)

// PresaleStatus is the lifecycle state machine. Stopped is terminal.
type PresaleStatus uint8

const (
	StatusNotStarted PresaleStatus = iota
	StatusActive
	StatusPaused
	StatusStopped
)

func (s PresaleStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PresaleState - stored once at ps:state.
type PresaleState struct {
	Admin              sdk.Address   `json:"admin"`
	Authority          sdk.Address   `json:"authority"`
	Governance         sdk.Address   `json:"governance"`
	GovernanceSet      bool          `json:"governance_set"`
	TokenProgram       sdk.Address   `json:"token_program"`
	OracleProgram      sdk.Address   `json:"oracle_program"`
	TokenMint          sdk.Address   `json:"token_mint"`
	PaymentMint        sdk.Address   `json:"payment_mint"`
	SolVault           sdk.Address   `json:"sol_vault"`
	TokenVault         sdk.Address   `json:"token_vault"`
	PaymentVault       sdk.Address   `json:"payment_vault"`
	Treasury           sdk.Address   `json:"treasury"`
	TreasurySet        bool          `json:"treasury_set"`
	TokenPriceUsdMicro uint64        `json:"token_price_usd_micro"`
	Status             PresaleStatus `json:"status"`
	TotalTokensSold    uint64        `json:"total_tokens_sold"`
	TotalRaisedUsd     uint64        `json:"total_raised_usd"`
	PresaleCap         uint64        `json:"presale_cap"`
	MaxPerUser         uint64        `json:"max_per_user"`
	Version            uint8         `json:"version"`
}

// UserPurchase - running per-buyer totals at ps:user:<addr>.
type UserPurchase struct {
	Buyer          sdk.Address `json:"buyer"`
	TotalPurchased uint64      `json:"total_purchased"`
	SolContributed uint64      `json:"sol_contributed"`
}

// AllowedToken - one allow-listed payment mint at ps:tok:<mint>.
type AllowedToken struct {
	Mint    sdk.Address `json:"mint"`
	Enabled bool        `json:"enabled"`
}
