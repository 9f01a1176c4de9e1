package router

import (
	"github.com/gin-gonic/gin"

	"basepost.app/server/internal/http/handler"
)

// SponsorRouter wires the sponsor workflow endpoints. Family-facing routes
// require a valid session; sponsor management routes require the admin key.
func SponsorRouter(r *gin.Engine, h *handler.SponsorHandler, requireIdentity gin.HandlerFunc) {
	sponsor := r.Group("/sponsor")
	{
		sponsor.POST("/request", requireIdentity, h.Request)

		admin := sponsor.Group("")
		admin.Use(h.RequireAdminAPIKey())
		{
			admin.GET("/requests", h.Dashboard)
			admin.POST("/approve", h.Approve)
			admin.POST("/deny", h.Deny)
			admin.POST("/revoke", h.Revoke)
			admin.GET("/audit", h.Audit)
		}
	}
}
