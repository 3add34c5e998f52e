package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orca-backend/internal/export"
	"orca-backend/internal/previews"
	"orca-backend/internal/shared/config"
	"orca-backend/internal/shared/metrics"
	"orca-backend/internal/shared/server/middleware"
	"orca-backend/internal/shared/server/respond"
	"orca-backend/internal/validation"
)

// RouterDeps carries the handlers the router wires up. Construction happens
// in bootstrap so the router stays a pure wiring concern.
type RouterDeps struct {
	Config            config.Config
	PreviewHandler    *previews.Handler
	ValidationHandler *validation.Handler
	ExportHandler     *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("")
	authed.Use(middleware.Auth(deps.Config.Env))
	authed.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet &&
				c.FullPath() == "/api/v1/projects/:projectId/export/jobs/:jobId" {
				return "POLLING"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 10, Burst: 30},
			"POLLING": {Rate: 60, Burst: 120},
		},
	}))
	registerMeRoutes(authed)
	if deps.PreviewHandler != nil {
		deps.PreviewHandler.RegisterRoutes(authed)
	}
	if deps.ValidationHandler != nil {
		deps.ValidationHandler.RegisterRoutes(authed)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(authed)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
