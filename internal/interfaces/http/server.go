// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/database/redis"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/storage"
	"github.com/your-org/hardware-store-backend/internal/interfaces/http/middleware"
	"github.com/your-org/hardware-store-backend/internal/interfaces/http/routes"
)

// Server is the HTTP server for the store API
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	db         *postgres.Database
	cache      *redis.Client
}

// NewServer creates and wires the HTTP server. The redis client may be
// nil, which disables rate limiting and the catalog cache.
func NewServer(cfg *config.Config, db *postgres.Database, cache *redis.Client) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
		}
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimit(cache, cfg))
	router.Use(middleware.RequestSizeLimit(cfg.Upload.MaxSize))
	router.Use(middleware.Timeout(cfg.Server.WriteTimeout))

	files, err := storage.NewLocal(cfg)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config: cfg,
		router: router,
		db:     db,
		cache:  cache,
	}

	s.registerHealthRoutes()
	router.Static(cfg.Storage.URLPrefix, cfg.Storage.UploadDir)

	if err := routes.Setup(router, db.GetDB(), cache, files, cfg); err != nil {
		return nil, err
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s, nil
}

// Router exposes the gin engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until it is shut down
func (s *Server) Start() error {
	logrus.WithField("port", s.config.Server.Port).Info("Starting HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops the server, draining in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerHealthRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    s.config.App.Name,
			"version": s.config.App.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		checks := gin.H{}
		healthy := true

		if err := s.db.Health(); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}

		if s.cache != nil {
			if err := s.cache.Health(c.Request.Context()); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			} else {
				checks["redis"] = "ok"
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": checks})
	})
}
