package contract

import "meridian_protocol/sdk"

// Ledger abstracts raw reads of external chain accounts (token accounts,
// oracle feeds). These are byte images parsed at pinned offsets, never
// trusted typed data.
type Ledger interface {
	AccountRaw(addr sdk.Address) []byte
}

var ledgerInterface Ledger

func InitLedger(mock bool) {
	if mock {
		ledgerInterface = &MockLedger{accounts: map[sdk.Address][]byte{}}
	} else {
		ledgerInterface = &RealLedger{}
	}
}

// AccountRaw returns the raw bytes of addr, or nil when the account is missing.
func AccountRaw(addr sdk.Address) []byte {
	return ledgerInterface.AccountRaw(addr)
}

type RealLedger struct{}

func (r *RealLedger) AccountRaw(addr sdk.Address) []byte {
	return sdk.AccountRead(addr)
}

type MockLedger struct {
	accounts map[sdk.Address][]byte
}

// MockAccounts returns the mock handle so tests can install account images.
func MockAccounts() *MockLedger {
	m, ok := ledgerInterface.(*MockLedger)
	if !ok {
		sdk.Abort("ledger is not mocked")
	}
	return m
}

func (m *MockLedger) SetAccountRaw(addr sdk.Address, raw []byte) {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	m.accounts[addr] = cp
}

func (m *MockLedger) AccountRaw(addr sdk.Address) []byte {
	raw, ok := m.accounts[addr]
	if !ok {
		return nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}
