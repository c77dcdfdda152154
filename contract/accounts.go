package contract

import (
	"errors"

	bin "github.com/gagliardetto/binary"

	"meridian_protocol/sdk"
)

// Byte layouts of accounts shared between the programs. Offsets are a wire
// contract: collaborators read each other's records at these positions
// instead of trusting typed deserialization. Changing any field order is a
// breaking change and must bump the layout tests.

const (
	// token account image: mint | owner | amount
	TokenAccountMintOffset   = 0
	TokenAccountOwnerOffset  = 32
	TokenAccountAmountOffset = 64
	TokenAccountLen          = 72

	// flag record: discriminator | address | flag
	FlagRecordAddressOffset = 8
	FlagRecordFlagOffset    = 40
	FlagRecordLen           = 41

	// token state header: discriminator | governance | paused | emergency_paused
	TokenStateGovernanceOffset      = 8
	TokenStatePausedOffset          = 40
	TokenStateEmergencyPausedOffset = 41
	TokenStateHeaderLen             = 42

	// price feed: owner | decimals | answer | updated_at
	FeedOwnerOffset     = 0
	FeedDecimalsOffset  = 32
	FeedAnswerOffset    = 33
	FeedUpdatedAtOffset = 41
	FeedLen             = 49
)

// TokenAccount is the parsed image of a holder account on the token ledger.
type TokenAccount struct {
	Mint   sdk.Address
	Owner  sdk.Address
	Amount uint64
}

// FlagRecord is one per-address compliance flag (blacklist, restricted, ...).
type FlagRecord struct {
	Discriminator uint64
	Address       sdk.Address
	Flag          bool
}

// TokenStateHeader is the compact raw header the token program maintains so
// collaborators can check pause bits without a full state decode.
type TokenStateHeader struct {
	Discriminator   uint64
	Governance      sdk.Address
	Paused          bool
	EmergencyPaused bool
}

// PriceFeed is the oracle round image read from the feed account.
type PriceFeed struct {
	Owner     sdk.Address
	Decimals  uint8
	Answer    int64
	UpdatedAt int64
}

// EncodeRecord serializes any of the fixed-layout records with borsh rules
// (little-endian fixed-width ints, bools as one byte).
func EncodeRecord(v interface{}) []byte {
	raw, err := bin.MarshalBorsh(v)
	if err != nil {
		sdk.Abort("failed to encode record: " + err.Error())
	}
	return raw
}

// ParseTokenAccount decodes a holder account image, rejecting short buffers.
func ParseTokenAccount(raw []byte) (TokenAccount, error) {
	var acct TokenAccount
	if len(raw) < TokenAccountLen {
		return acct, errors.New("token account too short")
	}
	if err := bin.NewBorshDecoder(raw).Decode(&acct); err != nil {
		return acct, err
	}
	return acct, nil
}

// ParseFlagRecord decodes a compliance flag record.
func ParseFlagRecord(raw []byte) (FlagRecord, error) {
	var rec FlagRecord
	if len(raw) < FlagRecordLen {
		return rec, errors.New("flag record too short")
	}
	if err := bin.NewBorshDecoder(raw).Decode(&rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// ParseTokenStateHeader decodes the token program's raw header.
func ParseTokenStateHeader(raw []byte) (TokenStateHeader, error) {
	var hdr TokenStateHeader
	if len(raw) < TokenStateHeaderLen {
		return hdr, errors.New("token state header too short")
	}
	if err := bin.NewBorshDecoder(raw).Decode(&hdr); err != nil {
		return hdr, err
	}
	return hdr, nil
}

// ParsePriceFeed decodes an oracle feed round.
func ParsePriceFeed(raw []byte) (PriceFeed, error) {
	var feed PriceFeed
	if len(raw) < FeedLen {
		return feed, errors.New("price feed too short")
	}
	if err := bin.NewBorshDecoder(raw).Decode(&feed); err != nil {
		return feed, err
	}
	return feed, nil
}
