package rest

import (
	"github.com/StefanSilver/dtlpy/internal/platform"
	"github.com/StefanSilver/dtlpy/internal/project/repository"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

type implRepository struct {
	client *platform.Client
	l      log.Logger
}

// New creates a new REST-backed project repository.
func New(client *platform.Client, l log.Logger) repository.ProjectRepository {
	if client == nil {
		panic("project/repository/rest: client is required")
	}
	return &implRepository{client: client, l: l}
}
