package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basepost.app/server/internal/http/handler"
	"basepost.app/server/internal/http/middleware"
	"basepost.app/server/internal/service"
)

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(r *gin.Engine, services *service.Services, adminAPIKey string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sponsorHandler := handler.NewSponsorHandler(services.Sponsors(), adminAPIKey)
	SponsorRouter(r, sponsorHandler, middleware.RequireIdentity(services.Identity()))
}
