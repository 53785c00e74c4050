package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/logger"
	"github.com/Lutefd/curconv/internal/model"
)

// JSONHistoryRepository keeps the history as one JSON array that is rewritten
// in full on every append. There is no locking between processes.
type JSONHistoryRepository struct {
	path string
}

func NewJSONHistoryRepository(path string) *JSONHistoryRepository {
	return &JSONHistoryRepository{path: path}
}

func (r *JSONHistoryRepository) Append(ctx context.Context, record model.HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	history, err := r.List(ctx)
	if err != nil && !errors.Is(err, model.ErrHistoryNotFound) {
		logger.Debugf("discarding unreadable history %s: %v", r.path, err)
		history = nil
	}
	history = append(history, record)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.WriteFile(r.path, data, commons.HistoryFileMode); err != nil {
		return fmt.Errorf("failed to write history %s: %w", r.path, err)
	}
	return nil
}

// List returns records in insertion order. A missing file yields
// model.ErrHistoryNotFound; an empty file yields no records.
func (r *JSONHistoryRepository) List(ctx context.Context) ([]model.HistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrHistoryNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read history %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var history []model.HistoryRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history %s: %w", r.path, err)
	}
	return history, nil
}
