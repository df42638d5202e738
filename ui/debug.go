package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewDebugRouter builds the pprof/debug listener mounted on its own port
// when profiling is enabled.
func NewDebugRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/debug", middleware.Profiler())
	return r
}
