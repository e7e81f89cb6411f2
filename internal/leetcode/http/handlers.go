package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail-backend/internal/leetcode/domain"
	"github.com/jobtrail/jobtrail-backend/internal/logging"
)

// ProblemService is what the handlers need from the service layer.
type ProblemService interface {
	Log(ctx context.Context, req *domain.LogProblemRequest) (int64, error)
	List(ctx context.Context, difficulty string, limit int) ([]domain.Problem, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type Handler struct {
	svc ProblemService
}

func New(svc ProblemService) *Handler {
	return &Handler{svc: svc}
}

// Register registers the leetcode routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Log)
	rg.GET("", h.List)
	rg.GET("/stats/summary", h.Stats)
}

type logRequest struct {
	ProblemName      string   `json:"problemName" binding:"required"`
	ProblemNumber    *int     `json:"problemNumber" binding:"omitempty,min=1"`
	Difficulty       *string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Topics           []string `json:"topics"`
	TimeMinutes      *int     `json:"timeMinutes" binding:"omitempty,min=0"`
	Notes            *string  `json:"notes"`
	SolutionApproach *string  `json:"solutionApproach"`
}

func (h *Handler) Log(c *gin.Context) {
	var body logRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.Log(c.Request.Context(), &domain.LogProblemRequest{
		ProblemName:      body.ProblemName,
		ProblemNumber:    body.ProblemNumber,
		Difficulty:       body.Difficulty,
		Topics:           body.Topics,
		TimeMinutes:      body.TimeMinutes,
		Notes:            body.Notes,
		SolutionApproach: body.SolutionApproach,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDifficulty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "log problem", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Problem logged", "id": id})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	problems, err := h.svc.List(c.Request.Context(), c.Query("difficulty"), limit)
	if err != nil {
		h.internalError(c, "list problems", err)
		return
	}
	c.JSON(http.StatusOK, problems)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.internalError(c, "load leetcode stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) internalError(c *gin.Context, operation string, err error) {
	logging.FromContext(c.Request.Context()).WithError(err).WithField("operation", operation).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + operation})
}
