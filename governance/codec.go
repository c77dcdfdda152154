package governance

import (
	"encoding/binary"
	"errors"

	"meridian_protocol/sdk"
)

// Flat payload layout per kind, offsets relative to the start of the data
// bytes. This is a wire contract, pinned by tests:
//   address kinds          bytes[0..32] = address
//   address+flag kinds     bytes[32]    = 0/1
//   SetRequiredApprovals   bytes[0]     = u8
//   SetCooldownPeriod      bytes[0..8]  = i64 little endian
//   WithdrawToTreasury     bytes[0..8]  = u64 little endian
//   Unpause                empty

const (
	payloadAddressOffset = 0
	payloadFlagOffset    = 32
	payloadIntOffset     = 0
)

// encodePayload flattens the typed payload for storage.
func encodePayload(p Payload) []byte {
	switch v := p.(type) {
	case EmptyPayload:
		return []byte{}
	case AddressPayload:
		return v.Account.Bytes()
	case AddressFlagPayload:
		out := make([]byte, 33)
		copy(out[payloadAddressOffset:], v.Account[:])
		if v.Flag {
			out[payloadFlagOffset] = 1
		}
		return out
	case ApprovalsPayload:
		return []byte{v.Value}
	case CooldownPayload:
		out := make([]byte, 8)
		binary.LittleEndian.PutUint64(out[payloadIntOffset:], uint64(v.Seconds))
		return out
	case AmountPayload:
		out := make([]byte, 8)
		binary.LittleEndian.PutUint64(out[payloadIntOffset:], v.Amount)
		return out
	default:
		sdk.Abort("unknown payload variant")
		return nil
	}
}

// decodePayload rebuilds the typed view, rejecting short buffers so no
// handler ever reads past the data.
func decodePayload(kind TxKind, data []byte) (Payload, error) {
	switch kind {
	case KindUnpause:
		return EmptyPayload{}, nil
	case KindSetBridgeAddress, KindSetBondAddress, KindSetTreasuryAddress:
		if len(data) < 32 {
			return nil, errors.New("address payload too short")
		}
		addr, err := sdk.AddressFromBytes(data[payloadAddressOffset : payloadAddressOffset+32])
		if err != nil {
			return nil, err
		}
		return AddressPayload{Account: addr}, nil
	case KindBlacklist, KindNoSellLimit, KindRestrict, KindPair:
		if len(data) < 33 {
			return nil, errors.New("address+flag payload too short")
		}
		addr, err := sdk.AddressFromBytes(data[payloadAddressOffset : payloadAddressOffset+32])
		if err != nil {
			return nil, err
		}
		return AddressFlagPayload{Account: addr, Flag: data[payloadFlagOffset] == 1}, nil
	case KindSetRequiredApprovals:
		if len(data) < 1 {
			return nil, errors.New("approvals payload too short")
		}
		return ApprovalsPayload{Value: data[payloadIntOffset]}, nil
	case KindSetCooldownPeriod:
		if len(data) < 8 {
			return nil, errors.New("cooldown payload too short")
		}
		return CooldownPayload{Seconds: int64(binary.LittleEndian.Uint64(data[payloadIntOffset : payloadIntOffset+8]))}, nil
	case KindWithdrawToTreasury:
		if len(data) < 8 {
			return nil, errors.New("amount payload too short")
		}
		return AmountPayload{Amount: binary.LittleEndian.Uint64(data[payloadIntOffset : payloadIntOffset+8])}, nil
	default:
		return nil, errors.New("unknown transaction kind")
	}
}
