package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	conciergeHTTP "layover-os/internal/concierge/delivery/http"
	"layover-os/internal/middleware"
	"layover-os/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw               middleware.Middleware
	conciergeHandler conciergeHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware       middleware.Middleware
	ConciergeHandler conciergeHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		conciergeHandler: cfg.ConciergeHandler,
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
	if srv.conciergeHandler == nil {
		return errors.New("concierge handler is required")
	}
	return nil
}
