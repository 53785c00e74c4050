package presenter

import (
	"io"
	"time"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/model"
)

type jsonResult struct {
	Success        bool      `json:"success"`
	Timestamp      time.Time `json:"timestamp"`
	FromCurrency   string    `json:"from_currency"`
	ToCurrency     string    `json:"to_currency"`
	Amount         float64   `json:"amount"`
	Result         float64   `json:"result"`
	ExchangeRate   float64   `json:"exchange_rate"`
	RateUpdateTime time.Time `json:"rate_update_time"`
}

type jsonError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type JSONPresenter struct {
	w   io.Writer
	now func() time.Time
}

func (p *JSONPresenter) Header() {}

func (p *JSONPresenter) Result(result model.ConversionResult) error {
	return commons.WriteJSON(p.w, jsonResult{
		Success:        true,
		Timestamp:      p.now(),
		FromCurrency:   result.Request.From,
		ToCurrency:     result.Request.To,
		Amount:         rounded(result.Request.Amount, commons.AmountPrecision),
		Result:         rounded(result.Amount, commons.AmountPrecision),
		ExchangeRate:   rounded(result.Rate, commons.CSVRatePrecision),
		RateUpdateTime: result.RatesUpdatedAt,
	})
}

func (p *JSONPresenter) Error(err error) error {
	return commons.WriteJSON(p.w, jsonError{Success: false, Error: err.Error()})
}
