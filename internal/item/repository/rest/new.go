package rest

import (
	"github.com/StefanSilver/dtlpy/internal/item/repository"
	"github.com/StefanSilver/dtlpy/internal/platform"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

// pageSize is the platform page size used when aggregating full listings.
const pageSize = 100

type implRepository struct {
	client    *platform.Client
	datasetID string
	l         log.Logger
}

// New creates a new REST-backed item repository bound to one dataset.
func New(client *platform.Client, datasetID string, l log.Logger) repository.ItemRepository {
	if client == nil {
		panic("item/repository/rest: client is required")
	}
	if datasetID == "" {
		panic("item/repository/rest: datasetID is required")
	}
	return &implRepository{client: client, datasetID: datasetID, l: l}
}
