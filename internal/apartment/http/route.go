package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers apartment catalog routes.
// Mutations are admin-only; reads require authentication.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/apartments")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)

		admin := group.Group("")
		admin.Use(adminMiddleware)
		{
			admin.POST("", h.Create)
			admin.PATCH("/:id", h.Update)
			admin.POST("/:id/publish", h.Publish)
			admin.POST("/:id/unpublish", h.Unpublish)
		}
	}
}
