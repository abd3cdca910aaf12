package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/machgame/internal/api/handler"
	"github.com/mcoot/machgame/internal/api/middleware"
	sharedmiddleware "github.com/mcoot/machgame/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Dispatcher handler.Dispatcher
	SiteDir    string // Root of the site assets; files are served from SiteDir/static
}

// NewRouter creates a new router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	// Static paths are cleaned by the static handler; mux would answer dirty paths
	// with a redirect instead of a 404
	r := mux.NewRouter().SkipClean(true)

	// Create handlers
	gameCallHandler := handler.NewGameCallHandler(cfg.Dispatcher, cfg.Logger)
	staticHandler := handler.NewStaticHandler(cfg.SiteDir)

	// Create middleware
	loggingMiddleware := sharedmiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Site assets
	r.HandleFunc("/", staticHandler.Index).Methods(http.MethodGet)
	r.PathPrefix("/static/").HandlerFunc(staticHandler.File).Methods(http.MethodGet)

	// Client actions
	r.HandleFunc("/game_call", gameCallHandler.Call).Methods(http.MethodPost)

	// Unknown paths and wrong methods are both plain 404s. mux skips r.Use
	// middleware for these handlers, so wrap them here.
	notFound := recoveryMiddleware(loggingMiddleware(http.HandlerFunc(handler.NotFound)))
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return r
}
