package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	datasetRepo "github.com/StefanSilver/dtlpy/internal/dataset/repository"
	datasetRest "github.com/StefanSilver/dtlpy/internal/dataset/repository/rest"
	"github.com/StefanSilver/dtlpy/internal/platform"
	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

type datasetJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
}

func TestDatasetRepository(t *testing.T) {
	var listCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("/projects/p-1/datasets", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(datasetJSON{ID: "d-1", Name: req["name"], ProjectID: "p-1"})
			return
		}

		listCalls++
		name := r.URL.Query().Get("name")
		if name == "ghost" {
			json.NewEncoder(w).Encode([]datasetJSON{})
			return
		}
		json.NewEncoder(w).Encode([]datasetJSON{{ID: "d-1", Name: name, ProjectID: "p-1"}})
	})
	mux.HandleFunc("/datasets/d-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			return
		}
		json.NewEncoder(w).Encode(datasetJSON{ID: "d-1", Name: "Dataset", ProjectID: "p-1"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := platform.NewClient(platform.Options{BaseURL: ts.URL}, log.NewNop())
	repo := datasetRest.New(client, log.NewNop())
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		d, err := repo.Create(ctx, datasetRepo.CreateDatasetOptions{ProjectID: "p-1", Name: "Dataset"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "d-1" || d.ProjectID != "p-1" {
			t.Errorf("unexpected dataset: %+v", d)
		}
	})

	t.Run("GetOneByNameUsesCache", func(t *testing.T) {
		// Create already cached "Dataset"; the lookup must not hit the server.
		before := listCalls
		d, err := repo.GetOne(ctx, datasetRepo.GetOneDatasetOptions{ProjectID: "p-1", Name: "Dataset"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "d-1" {
			t.Errorf("unexpected dataset: %+v", d)
		}
		if listCalls != before {
			t.Errorf("expected cache hit, server saw %d extra calls", listCalls-before)
		}
	})

	t.Run("GetOneByNameMiss", func(t *testing.T) {
		_, err := repo.GetOne(ctx, datasetRepo.GetOneDatasetOptions{ProjectID: "p-1", Name: "ghost"})
		if !errors.Is(err, pkgErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got: %v", err)
		}
	})

	t.Run("DeleteInvalidatesCache", func(t *testing.T) {
		if err := repo.Delete(ctx, "d-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		before := listCalls
		if _, err := repo.GetOne(ctx, datasetRepo.GetOneDatasetOptions{ProjectID: "p-1", Name: "Dataset"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if listCalls != before+1 {
			t.Errorf("expected server lookup after cache purge, got %d calls", listCalls-before)
		}
	})

	t.Run("GetOneByID", func(t *testing.T) {
		d, err := repo.GetOne(ctx, datasetRepo.GetOneDatasetOptions{ID: "d-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Name != "Dataset" {
			t.Errorf("unexpected dataset: %+v", d)
		}
	})
}
