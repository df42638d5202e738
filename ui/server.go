// Package ui exposes the estimator over a JSON API. It is presentation
// glue only: every handler validates the request, calls into the core, and
// returns the result untouched.
package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"settei/internal/tally"
	"settei/ports"
)

// Server represents the JSON API server
type Server struct {
	router    *gin.Engine
	estimator ports.Estimator
	exporter  ports.ReportExporter
	tallies   *tally.Registry
}

// NewServer creates the API server around the core services.
func NewServer(estimator ports.Estimator, exporter ports.ReportExporter, tallies *tally.Registry) *Server {
	s := &Server{
		router:    gin.New(),
		estimator: estimator,
		exporter:  exporter,
		tallies:   tallies,
	}
	s.router.Use(gin.Recovery(), requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.GET("/settings", s.handleSettings)
		api.POST("/estimate", s.handleEstimate)
		api.GET("/estimate/export", s.handleEstimateExport)

		api.POST("/tally", s.handleTallyCreate)
		api.GET("/tally/:id", s.handleTallyGet)
		api.POST("/tally/:id/add", s.handleTallyAdd)
		api.GET("/tally/:id/estimate", s.handleTallyEstimate)
		api.DELETE("/tally/:id", s.handleTallyDelete)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
