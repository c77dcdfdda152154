package contract

import (
	"encoding/json"
	"fmt"
	"strings"

	"meridian_protocol/sdk"
)

///////////////////////////////////////////////////
// Conversions from/to json strings
///////////////////////////////////////////////////

func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal %s\nInput data:%+v\nError: %v:", objectType, v, err))
	}
	return string(b)
}

func FromJSON[T any](data string, objectType string) *T {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		sdk.Abort(fmt.Sprintf(
			"failed to unmarshal %s\nInput data:%s\nError: %v:", objectType, data, err))
	}
	return &v
}

// InitAll is the one-call bootstrap used by main and every test setup.
func InitAll(mock bool) {
	InitState(mock)
	InitEnv(mock)
	InitCPI(mock)
	InitLedger(mock)
}
