package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/StefanSilver/dtlpy/internal/dataset/repository"
	"github.com/StefanSilver/dtlpy/internal/model"
	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateDatasetOptions) (model.Dataset, error) {
	req := createDatasetRequest{Name: opt.Name}

	var d datasetJSON
	path := fmt.Sprintf("/projects/%s/datasets", opt.ProjectID)
	if err := r.client.PostJSON(ctx, path, req, &d); err != nil {
		r.l.Errorf(ctx, "dataset repository: failed to create dataset %q: %v", opt.Name, err)
		return model.Dataset{}, err
	}

	dataset := d.toModel()
	r.cache.Add(cacheKey(dataset.ProjectID, dataset.Name), dataset)
	return dataset, nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repository.GetOneDatasetOptions) (model.Dataset, error) {
	if opt.ID != "" {
		var d datasetJSON
		if err := r.client.GetJSON(ctx, "/datasets/"+opt.ID, nil, &d); err != nil {
			return model.Dataset{}, err
		}
		return d.toModel(), nil
	}

	if cached, ok := r.cache.Get(cacheKey(opt.ProjectID, opt.Name)); ok {
		return cached, nil
	}

	query := url.Values{}
	query.Set("name", opt.Name)

	var datasets []datasetJSON
	path := fmt.Sprintf("/projects/%s/datasets", opt.ProjectID)
	if err := r.client.GetJSON(ctx, path, query, &datasets); err != nil {
		return model.Dataset{}, err
	}
	if len(datasets) == 0 {
		return model.Dataset{}, fmt.Errorf("%w: dataset %q", pkgErrors.ErrNotFound, opt.Name)
	}

	dataset := datasets[0].toModel()
	r.cache.Add(cacheKey(dataset.ProjectID, dataset.Name), dataset)
	return dataset, nil
}

func (r *implRepository) List(ctx context.Context, projectID string) ([]model.Dataset, error) {
	var raw []datasetJSON
	path := fmt.Sprintf("/projects/%s/datasets", projectID)
	if err := r.client.GetJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}

	datasets := make([]model.Dataset, 0, len(raw))
	for _, d := range raw {
		datasets = append(datasets, d.toModel())
	}
	return datasets, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/datasets/"+id); err != nil {
		r.l.Errorf(ctx, "dataset repository: failed to delete dataset %s: %v", id, err)
		return err
	}
	// The cache is keyed by name; purge rather than reverse-map the id.
	r.cache.Purge()
	return nil
}

// ---- Wire types scoped to this package ----

type createDatasetRequest struct {
	Name string `json:"name"`
}

type datasetJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProjectID  string `json:"projectId"`
	ItemsCount int    `json:"itemsCount"`
	CreatedAt  string `json:"createdAt"`
}

func (d datasetJSON) toModel() model.Dataset {
	return model.Dataset{
		ID:         d.ID,
		Name:       d.Name,
		ProjectID:  d.ProjectID,
		ItemsCount: d.ItemsCount,
		CreatedAt:  d.CreatedAt,
	}
}
