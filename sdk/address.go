package sdk

import (
	"errors"

	"github.com/mr-tron/base58"
)

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// Address is a raw 32-byte account key. The text form is base58, like
// every explorer and wallet renders it.
type Address [32]byte

// ZeroAddress is the all-zero key, used as the "unset" sentinel in state.
var ZeroAddress Address

// String renders the canonical base58 form of the key.
// Example payload: addr.String()
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes hands out a fresh copy so callers cant scribble on the array.
func (a Address) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, a[:])
	return out
}

// IsZero reports whether the key is the unset sentinel.
// Example payload: cfg.Treasury.IsZero()
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// MarshalText lets addresses travel through JSON as base58 strings.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses the base58 text form back into raw bytes.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := AddressFromBase58(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AddressFromBase58 decodes a base58 string and insists on exactly 32 bytes.
// Example payload: sdk.AddressFromBase58("11111111111111111111111111111111")
func AddressFromBase58(s string) (Address, error) {
	var a Address
	if s == "" {
		return a, errors.New("empty address")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return a, err
	}
	if len(raw) != 32 {
		return a, errors.New("address must be 32 bytes")
	}
	copy(a[:], raw)
	return a, nil
}

// MustAddress is the test/tooling shortcut that panics on bad input.
// Example payload: sdk.MustAddress("So11111111111111111111111111111111111111112")
func MustAddress(s string) Address {
	a, err := AddressFromBase58(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddressFromBytes copies an arbitrary 32-byte slice into an Address.
func AddressFromBytes(raw []byte) (Address, error) {
	var a Address
	if len(raw) != 32 {
		return a, errors.New("address must be 32 bytes")
	}
	copy(a[:], raw)
	return a, nil
}
