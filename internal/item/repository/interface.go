package repository

import (
	"context"

	"github.com/StefanSilver/dtlpy/internal/model"
)

// ItemRepository is the interface for item operations within a single
// bound dataset. Delete targets that do not exist surface ErrNotFound
// and leave the item set unchanged.
type ItemRepository interface {
	List(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	Get(ctx context.Context, id string) (model.Item, error)
	Upload(ctx context.Context, opt UploadItemOptions) (model.Item, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByName(ctx context.Context, name string) error
}
