package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"item-service/internal/item/repository"
	"item-service/internal/middleware"
	"item-service/internal/model"
	"item-service/pkg/log"
)

const defaultShutdownTimeout = 5 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	appMode         model.Mode
	shutdownTimeout time.Duration

	// Middleware inputs
	allowOrigins    []string
	rateLimitPerMin int

	// Item domain
	storage  middleware.StorageChecker
	itemRepo repository.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	AppMode         model.Mode
	ShutdownTimeout time.Duration

	AllowOrigins    []string
	RateLimitPerMin int

	// Storage gates every /item route; ItemRepository serves them.
	Storage        middleware.StorageChecker
	ItemRepository repository.Repository
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		appMode:         cfg.AppMode,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowOrigins:    cfg.AllowOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		storage:         cfg.Storage,
		itemRepo:        cfg.ItemRepository,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	return nil
}
