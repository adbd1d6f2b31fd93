package fakeplatform

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/StefanSilver/dtlpy/pkg/log"
)

// Server is an in-memory implementation of the platform REST API. The
// test suite mounts it over httptest; cmd/fakeplatform runs it locally
// so the CLI can be exercised without platform credentials.
type Server struct {
	engine *gin.Engine
	store  *Store
	l      log.Logger
	port   int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Port   int
	Mode   string // gin mode: debug | release | test
}

// New creates a new fake platform server.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	srv := &Server{
		engine: engine,
		store:  NewStore(),
		l:      cfg.Logger,
		port:   cfg.Port,
	}
	srv.registerRoutes()
	return srv, nil
}

// Engine exposes the gin engine so tests can mount it on httptest.
func (srv *Server) Engine() *gin.Engine {
	return srv.engine
}

// Store exposes backing state for test assertions.
func (srv *Server) Store() *Store {
	return srv.store
}

// Run starts the server on the configured port and blocks.
func (srv *Server) Run() error {
	return srv.engine.Run(fmt.Sprintf(":%d", srv.port))
}
