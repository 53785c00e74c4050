package rates

import (
	"context"

	"github.com/Lutefd/curconv/internal/model"
)

type Client interface {
	FetchRates(ctx context.Context, base string) (*model.RatesSnapshot, error)
}
