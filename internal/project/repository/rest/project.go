package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/StefanSilver/dtlpy/internal/model"
	"github.com/StefanSilver/dtlpy/internal/project/repository"
	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
)

func (r *implRepository) Create(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	req := createProjectRequest{Name: opt.Name}

	var p projectJSON
	if err := r.client.PostJSON(ctx, "/projects", req, &p); err != nil {
		r.l.Errorf(ctx, "project repository: failed to create project %q: %v", opt.Name, err)
		return model.Project{}, err
	}
	return p.toModel(), nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repository.GetOneProjectOptions) (model.Project, error) {
	if opt.ID != "" {
		var p projectJSON
		if err := r.client.GetJSON(ctx, "/projects/"+opt.ID, nil, &p); err != nil {
			return model.Project{}, err
		}
		return p.toModel(), nil
	}

	query := url.Values{}
	query.Set("name", opt.Name)

	var projects []projectJSON
	if err := r.client.GetJSON(ctx, "/projects", query, &projects); err != nil {
		return model.Project{}, err
	}
	if len(projects) == 0 {
		return model.Project{}, fmt.Errorf("%w: project %q", pkgErrors.ErrNotFound, opt.Name)
	}
	return projects[0].toModel(), nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Project, error) {
	var raw []projectJSON
	if err := r.client.GetJSON(ctx, "/projects", nil, &raw); err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(raw))
	for _, p := range raw {
		projects = append(projects, p.toModel())
	}
	return projects, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/projects/"+id); err != nil {
		r.l.Errorf(ctx, "project repository: failed to delete project %s: %v", id, err)
		return err
	}
	return nil
}

// ---- Wire types scoped to this package ----

type createProjectRequest struct {
	Name string `json:"name"`
}

type projectJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func (p projectJSON) toModel() model.Project {
	return model.Project{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
