package presale

import (
	"github.com/shopspring/decimal"

	"meridian_protocol/contract"
)

// PresaleInfoView is the read model: raw counters plus human-readable USD
// figures and sale progress.
type PresaleInfoView struct {
	Status          string `json:"status"`
	TokenPriceUsd   string `json:"token_price_usd"`
	TotalTokensSold uint64 `json:"total_tokens_sold"`
	TotalRaisedUsd  string `json:"total_raised_usd"`
	PresaleCap      uint64 `json:"presale_cap"`
	MaxPerUser      uint64 `json:"max_per_user"`
	ProgressPercent string `json:"progress_percent"`
	Version         uint8  `json:"version"`
}

// PresaleInfo is the public read path.
// Payload: {}
//
//go:wasmexport presale_info
func PresaleInfo(payload *string) *string {
	st := loadState()

	micro := decimal.New(1, 6)
	view := PresaleInfoView{
		Status:          st.Status.String(),
		TokenPriceUsd:   decimal.NewFromUint64(st.TokenPriceUsdMicro).Div(micro).String(),
		TotalTokensSold: st.TotalTokensSold,
		TotalRaisedUsd:  decimal.NewFromUint64(st.TotalRaisedUsd).Div(micro).String(),
		PresaleCap:      st.PresaleCap,
		MaxPerUser:      st.MaxPerUser,
		ProgressPercent: "0",
		Version:         st.Version,
	}
	if st.PresaleCap > 0 {
		view.ProgressPercent = decimal.NewFromUint64(st.TotalTokensSold).
			Mul(decimal.New(100, 0)).
			Div(decimal.NewFromUint64(st.PresaleCap)).
			Round(2).String()
	}
	return strptr(contract.ToJSON(view, "presale info"))
}
