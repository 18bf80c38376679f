package http

import (
	"imposter_server/internal/config"
	"imposter_server/internal/http/handlers"
	"imposter_server/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the game API. No auth anywhere: a game is
// addressable by anyone holding its id, which is the whole pass-the-phone
// model.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, health *handlers.HealthHandler, cfg *config.Config) {
	// Health checks (no rate limiting)
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)

	api := r.Group("/")
	api.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	api.GET("/categories", h.ListCategories)

	api.POST("/games", h.CreateGame)
	api.POST("/games/:gameId/reveal", h.Reveal)
	api.GET("/games/:gameId/solution", h.Solution)
}
