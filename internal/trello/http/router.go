package http

import "github.com/gin-gonic/gin"

// Register registers the board routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/boards", h.ListBoards)
	rg.GET("/boards/:id", h.GetBoard)
	rg.GET("/boards/:id/summary", h.GetBoardSummary)
	rg.GET("/boards/:id/recent", h.GetRecentCards)
}
