package rest

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/StefanSilver/dtlpy/internal/dataset/repository"
	"github.com/StefanSilver/dtlpy/internal/model"
	"github.com/StefanSilver/dtlpy/internal/platform"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

// cacheSize bounds the name->dataset lookup cache. Name resolution is
// on the hot path of every item operation bound by dataset name.
const cacheSize = 128

type implRepository struct {
	client *platform.Client
	cache  *lru.Cache[string, model.Dataset] // key: projectID + "/" + name
	l      log.Logger
}

// New creates a new REST-backed dataset repository.
func New(client *platform.Client, l log.Logger) repository.DatasetRepository {
	if client == nil {
		panic("dataset/repository/rest: client is required")
	}

	cache, err := lru.New[string, model.Dataset](cacheSize)
	if err != nil {
		panic(err)
	}

	return &implRepository{client: client, cache: cache, l: l}
}

func cacheKey(projectID, name string) string {
	return projectID + "/" + name
}
