package contract

import (
	"strconv"
	"time"

	"meridian_protocol/sdk"
)

// ENV abstracts the execution environment so tests can pin sender and clock.
type ENV interface {
	Env() sdk.Env
	EnvKey(key string) *string
}

var envInterface ENV

func InitEnv(mock bool) {
	if mock {
		envInterface = &MockENV{Timestamp: "0"}
	} else {
		envInterface = &RealENV{}
	}
}

// MockEnv returns the mock handle so tests can steer sender/time. Aborts when
// the runtime was initialized against the real host.
func MockEnv() *MockENV {
	m, ok := envInterface.(*MockENV)
	if !ok {
		sdk.Abort("env is not mocked")
	}
	return m
}

type RealENV struct{}

func (r *RealENV) Env() sdk.Env {
	return sdk.GetEnv()
}

func (r *RealENV) EnvKey(key string) *string {
	return sdk.GetEnvKey(key)
}

// MockENV is a configurable env snapshot for in-process tests.
type MockENV struct {
	Sender     sdk.Address
	ContractId sdk.Address
	Timestamp  string
	TxId       string
	Intents    []sdk.Intent
}

func (m *MockENV) Env() sdk.Env {
	return sdk.Env{
		ContractId: m.ContractId.String(),
		TxId:       m.TxId,
		Timestamp:  m.Timestamp,
		Sender:     sdk.Sender{Address: m.Sender},
		Intents:    m.Intents,
	}
}

func (m *MockENV) EnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return &m.Timestamp
	case "tx.id":
		return &m.TxId
	case "contract.id":
		id := m.ContractId.String()
		return &id
	default:
		return nil
	}
}

// SetNow pins the mock clock to unix seconds.
func (m *MockENV) SetNow(unix int64) {
	m.Timestamp = strconv.FormatInt(unix, 10)
}

// SenderAddress returns the address of the current instruction sender.
func SenderAddress() sdk.Address {
	return envInterface.Env().Sender.Address
}

// SelfAddress returns the executing contract's own id.
func SelfAddress() sdk.Address {
	ptr := envInterface.EnvKey("contract.id")
	if ptr == nil || *ptr == "" {
		return sdk.ZeroAddress
	}
	addr, err := sdk.AddressFromBase58(*ptr)
	if err != nil {
		sdk.Abort("host returned malformed contract id")
	}
	return addr
}

// Intents returns the transfer intents attached to the current call.
func Intents() []sdk.Intent {
	return envInterface.Env().Intents
}

// NowUnix reads the block timestamp, accepting unix seconds or RFC3339.
func NowUnix() int64 {
	if tsPtr := envInterface.EnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, err := strconv.ParseInt(*tsPtr, 10, 64); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, *tsPtr); err == nil {
			return t.Unix()
		}
	}
	return time.Now().Unix()
}
