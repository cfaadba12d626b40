// Package api assembles the Echo router: middleware, huma-registered
// operations, and the operational endpoints.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/filamvp/card-tracker/internal/api/handlers"
	"github.com/filamvp/card-tracker/internal/api/middleware"
	"github.com/filamvp/card-tracker/internal/extract"
	"github.com/filamvp/card-tracker/internal/store"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Store    store.Store
	Importer handlers.BulkImporter
	// Limiter may be nil when the queue processor is disabled.
	Limiter *extract.RateLimiter
	Log     *slog.Logger

	// USDRate is the default EUR to USD rate for the eBay CSV export.
	USDRate float64
}

// NewRouter builds the Echo instance with all routes and middleware
// attached. The OpenAPI document is served by huma at /openapi.json.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(deps.Log))
	e.Use(middleware.RequestLog(deps.Log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(deps.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("card-tracker API", "1.0.0"))

	handlers.RegisterCardRoutes(api, handlers.NewCardsHandler(deps.Store))
	handlers.RegisterImportRoutes(api, handlers.NewImportHandler(deps.Importer))
	handlers.RegisterParseRoutes(api, handlers.NewParseHandler())
	handlers.RegisterExportRoutes(api, handlers.NewExportHandler(deps.Store, deps.USDRate))
	handlers.RegisterIngestRoutes(api, handlers.NewIngestHandler(deps.Store))
	handlers.RegisterQueueRoutes(api, handlers.NewQueueHandler(deps.Store, deps.Limiter))

	return e
}
