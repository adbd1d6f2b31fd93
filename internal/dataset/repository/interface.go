package repository

import (
	"context"

	"github.com/StefanSilver/dtlpy/internal/model"
)

// DatasetRepository is the interface for dataset operations against the platform.
type DatasetRepository interface {
	Create(ctx context.Context, opt CreateDatasetOptions) (model.Dataset, error)
	GetOne(ctx context.Context, opt GetOneDatasetOptions) (model.Dataset, error)
	List(ctx context.Context, projectID string) ([]model.Dataset, error)
	Delete(ctx context.Context, id string) error
}
