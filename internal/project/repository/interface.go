package repository

import (
	"context"

	"github.com/StefanSilver/dtlpy/internal/model"
)

// ProjectRepository is the interface for project operations against the platform.
type ProjectRepository interface {
	Create(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	GetOne(ctx context.Context, opt GetOneProjectOptions) (model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id string) error
}
