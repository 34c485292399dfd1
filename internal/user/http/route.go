package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers auth and profile routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, rateLimitMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	authGroup.Use(rateLimitMiddleware)
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	me := g.Group("/me")
	me.Use(authMiddleware)
	{
		me.GET("", h.Me)
	}
}
