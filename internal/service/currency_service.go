package service

import (
	"context"
	"fmt"

	"github.com/Lutefd/curconv/internal/model"
	"github.com/Lutefd/curconv/internal/rates"
)

type CurrencyService struct {
	rates rates.Client
}

func NewCurrencyService(client rates.Client) *CurrencyService {
	return &CurrencyService{
		rates: client,
	}
}

func (s *CurrencyService) Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error) {
	snapshot, err := s.rates.FetchRates(ctx, req.From)
	if err != nil {
		return model.ConversionResult{}, err
	}

	rate, amount, err := Convert(req.Amount, req.To, snapshot)
	if err != nil {
		return model.ConversionResult{}, err
	}

	return model.ConversionResult{
		Request:        req,
		Rate:           rate,
		Amount:         amount,
		RatesUpdatedAt: snapshot.UpdatedAt,
	}, nil
}

// Convert multiplies amount by the snapshot rate for to. The product is not rounded.
func Convert(amount float64, to string, snapshot *model.RatesSnapshot) (rate, result float64, err error) {
	rate, ok := snapshot.Rates[to]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", model.ErrUnknownCurrency, to)
	}
	return rate, amount * rate, nil
}
