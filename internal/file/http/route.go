package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers file routes.
// Serving is public (image URLs are embedded in listings); mutation is admin-only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/files")

	group.GET("/:id", h.ServeFile)
	group.GET("/:id/thumbnail", h.ServeThumbnail)

	group.POST("", authMiddleware, adminMiddleware, h.Upload)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
