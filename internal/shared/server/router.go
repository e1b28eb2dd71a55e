package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartats-backend/internal/analyses"
	"smartats-backend/internal/services/health"
	"smartats-backend/internal/shared/config"
	"smartats-backend/internal/shared/metrics"
	"smartats-backend/internal/shared/server/middleware"
	"smartats-backend/internal/shared/server/respond"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
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

	healthSvc := health.NewService()
	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	deps.AnalysisHandler.RegisterRoutes(api)

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
