package service

import (
	"context"

	"github.com/Lutefd/curconv/internal/model"
)

type CurrencyServiceInterface interface {
	Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error)
}
