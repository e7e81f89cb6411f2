package http

import "github.com/gin-gonic/gin"

// Register registers the application routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/stats/summary", h.Stats)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
}
