package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-bot/internal/middleware"
)

// RegisterRoutes maps the chat API under rg. Every route resolves the client
// identity first and is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.ClientIdentity(), mw.RateLimit())

	rg.POST("/chat", h.Chat)
	rg.POST("/set_algo", h.SetAlgo)
	rg.GET("/algorithms", h.Algorithms)
	rg.POST("/reset", h.Reset)
}
