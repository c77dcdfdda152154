package token

import (
	"meridian_protocol/sdk"
)

const (
	CurrentVersion = 1

	DefaultSellLimitPercent = uint64(10)
	DefaultSellLimitPeriod  = int64(86400)

	// two-step authority transfer timelock
	GovernanceCooldownSeconds = int64(604800)
)

// record discriminators, part of the stored layout
const (
	discBlacklist     = uint64(0x01)
	discWhitelist     = uint64(0x02)
	discNoSellLimit   = uint64(0x03)
	discRestricted    = uint64(0x04)
	discLiquidityPool = uint64(0x05)
	discSellTracker   = uint64(0x06)
	discStateHeader   = uint64(0x07)
)

// TokenState - stored once at tok:state. A compact raw header mirror lives
// at tok:state:raw so collaborators can check the pause bits by offset.
type TokenState struct {
	Governance           sdk.Address  `json:"governance"`
	PendingGovernance    *sdk.Address `json:"pending_governance,omitempty"`
	GovernanceChangeTime *int64       `json:"governance_change_time,omitempty"`
	Mint                 sdk.Address  `json:"mint"`
	Paused               bool         `json:"paused"`
	EmergencyPaused      bool         `json:"emergency_paused"`
	WhitelistMode        bool         `json:"whitelist_mode"`
	BridgeAddress        sdk.Address  `json:"bridge_address"`
	BondAddress          sdk.Address  `json:"bond_address"`
	MintAuthorityRevoked bool         `json:"mint_authority_revoked"`
	MaxSupply            *uint64      `json:"max_supply,omitempty"`
	TotalSupply          uint64       `json:"total_supply"`
	SellLimitPercent     uint64       `json:"sell_limit_percent"`
	SellLimitPeriod      int64        `json:"sell_limit_period"`
	Version              uint8        `json:"version"`
	MinCompatibleVersion uint8        `json:"min_compatible_version"`
}

// SellTracker - rolling sell window per seller, stored raw at tok:sell:<addr>.
type SellTracker struct {
	Discriminator uint64
	Seller        sdk.Address
	AmountSold    uint64
	LastReset     int64
}
