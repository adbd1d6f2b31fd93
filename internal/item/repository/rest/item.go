package rest

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/StefanSilver/dtlpy/internal/item/repository"
	"github.com/StefanSilver/dtlpy/internal/model"
	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	if opt.Limit > 0 {
		page, err := r.listPage(ctx, opt.Name, opt.Limit, opt.Offset)
		if err != nil {
			return nil, err
		}
		return page.toModels(r.datasetID), nil
	}

	// Full listing: walk pages until the platform runs dry.
	var items []model.Item
	offset := opt.Offset
	for {
		page, err := r.listPage(ctx, opt.Name, pageSize, offset)
		if err != nil {
			return nil, err
		}
		items = append(items, page.toModels(r.datasetID)...)
		if len(page.Items) < pageSize || len(items) >= page.Total {
			return items, nil
		}
		offset += pageSize
	}
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Item, error) {
	var it itemJSON
	path := fmt.Sprintf("/datasets/%s/items/%s", r.datasetID, id)
	if err := r.client.GetJSON(ctx, path, nil, &it); err != nil {
		return model.Item{}, err
	}
	return it.toModel(r.datasetID), nil
}

func (r *implRepository) Upload(ctx context.Context, opt repository.UploadItemOptions) (model.Item, error) {
	name := opt.RemoteName
	if name == "" {
		name = filepath.Base(opt.LocalPath)
	}

	f, err := os.Open(opt.LocalPath)
	if err != nil {
		return model.Item{}, fmt.Errorf("%w: open %s: %v", pkgErrors.ErrTransfer, opt.LocalPath, err)
	}
	defer f.Close()

	var it itemJSON
	path := fmt.Sprintf("/datasets/%s/items", r.datasetID)
	if err := r.client.PostMultipart(ctx, path, "file", name, f, &it); err != nil {
		r.l.Errorf(ctx, "item repository: failed to upload %q to dataset %s: %v", name, r.datasetID, err)
		return model.Item{}, err
	}
	return it.toModel(r.datasetID), nil
}

func (r *implRepository) DeleteByID(ctx context.Context, id string) error {
	path := fmt.Sprintf("/datasets/%s/items/%s", r.datasetID, id)
	if err := r.client.Delete(ctx, path); err != nil {
		r.l.Errorf(ctx, "item repository: failed to delete item %s: %v", id, err)
		return err
	}
	return nil
}

// DeleteByName resolves the name through a filtered listing and removes
// every live match. Duplicate names therefore all go; zero matches is
// ErrNotFound with nothing deleted.
func (r *implRepository) DeleteByName(ctx context.Context, name string) error {
	matches, err := r.List(ctx, repository.ListItemsOptions{Name: name})
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: item name %q", pkgErrors.ErrNotFound, name)
	}

	for _, item := range matches {
		if err := r.DeleteByID(ctx, item.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *implRepository) listPage(ctx context.Context, name string, limit, offset int) (itemsPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	if name != "" {
		query.Set("name", name)
	}

	var page itemsPage
	path := fmt.Sprintf("/datasets/%s/items", r.datasetID)
	if err := r.client.GetJSON(ctx, path, query, &page); err != nil {
		return itemsPage{}, err
	}
	return page, nil
}

// ---- Wire types scoped to this package ----

type itemsPage struct {
	Items  []itemJSON `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (p itemsPage) toModels(datasetID string) []model.Item {
	items := make([]model.Item, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, it.toModel(datasetID))
	}
	return items
}

type itemJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DatasetID string `json:"datasetId"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

func (it itemJSON) toModel(datasetID string) model.Item {
	if it.DatasetID == "" {
		it.DatasetID = datasetID
	}
	return model.Item{
		ID:        it.ID,
		Name:      it.Name,
		DatasetID: it.DatasetID,
		Size:      it.Size,
		MimeType:  it.MimeType,
		CreatedAt: it.CreatedAt,
	}
}
