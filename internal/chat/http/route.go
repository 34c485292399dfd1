package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the chat proxy route. Authenticated and rate
// limited: every request costs upstream tokens.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, rateLimitMiddleware gin.HandlerFunc) {
	group := g.Group("/chat")
	group.Use(authMiddleware, rateLimitMiddleware)
	{
		group.POST("/stream", h.Stream)
	}
}
