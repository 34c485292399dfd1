package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes.
// The per-apartment ranges endpoint is public; everything else requires auth.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/apartments/:id/bookings", h.ListByApartment)
	g.GET("/apartments/:id/availability", authMiddleware, h.CheckAvailability)

	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("/my", h.ListMine)
		group.POST("", h.Create)
		group.POST("/:id/cancel", h.Cancel)
	}
}
