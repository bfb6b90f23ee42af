// Package http serves the dashboard page and its chart-spec API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/config"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dashboard"
)

// Server bundles router and dependencies for the dashboard.
type Server struct {
	cfg     config.Config
	catalog *dashboard.Catalog
	engine  *gin.Engine
}

// New constructs a server with routes and middleware.
func New(cfg config.Config, catalog *dashboard.Catalog) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(corsMiddleware())

	server := &Server{cfg: cfg, catalog: catalog, engine: engine}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/options", s.handleOptions)

		charts := v1.Group("/charts")
		{
			charts.GET("/borough-bar", s.handleBoroughBar)
			charts.GET("/borough-pie", s.handleBoroughPie)
			charts.GET("/yearly", s.handleYearly)
			charts.GET("/seasonal", s.handleSeasonal)
			charts.GET("/comparison", s.handleComparison)
		}

		v1.GET("/stats", s.handleStats)
		v1.GET("/map", s.handleMap)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
