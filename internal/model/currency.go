package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversionRequest struct {
	From   string  `json:"from" validate:"len=3,alpha"`
	To     string  `json:"to" validate:"len=3,alpha"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

// RatesSnapshot is one fetched rate table. It is never cached or mutated.
type RatesSnapshot struct {
	Base      string
	Rates     map[string]float64
	UpdatedAt time.Time
}

type ConversionResult struct {
	Request        ConversionRequest
	Rate           float64
	Amount         float64
	RatesUpdatedAt time.Time
}

type HistoryRecord struct {
	ID             uuid.UUID `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	FromCurrency   string    `json:"from_currency"`
	ToCurrency     string    `json:"to_currency"`
	Amount         float64   `json:"amount"`
	Result         float64   `json:"result"`
	ExchangeRate   float64   `json:"exchange_rate"`
	RateUpdateTime time.Time `json:"rate_update_time"`
}

func NewHistoryRecord(result ConversionResult, at time.Time) HistoryRecord {
	return HistoryRecord{
		ID:             uuid.New(),
		Timestamp:      at,
		FromCurrency:   result.Request.From,
		ToCurrency:     result.Request.To,
		Amount:         result.Request.Amount,
		Result:         result.Amount,
		ExchangeRate:   result.Rate,
		RateUpdateTime: result.RatesUpdatedAt,
	}
}
