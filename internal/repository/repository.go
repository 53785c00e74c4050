package repository

import (
	"context"

	"github.com/Lutefd/curconv/internal/model"
)

type HistoryRepository interface {
	Append(ctx context.Context, record model.HistoryRecord) error
	List(ctx context.Context) ([]model.HistoryRecord, error)
}
