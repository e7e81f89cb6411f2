package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail-backend/internal/logging"
	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
	"github.com/jobtrail/jobtrail-backend/internal/trello/summary"
)

// ListBoards returns the open boards of the authenticated Trello member
func (h *Handler) ListBoards(c *gin.Context) {
	boards, err := h.boards.ListBoards(c.Request.Context())
	if err != nil {
		h.fail(c, "list boards", err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// GetBoard returns one board with its open lists and all cards
func (h *Handler) GetBoard(c *gin.Context) {
	board, err := h.boards.FetchBoardDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get board", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetBoardSummary returns the board as plain-text markdown
func (h *Handler) GetBoardSummary(c *gin.Context) {
	board, err := h.boards.FetchBoardDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "board summary", err)
		return
	}
	c.String(http.StatusOK, summary.FormatBoardSummary(board))
}

// GetRecentCards returns cards active within the last ?days= days (default
// 7), as JSON when the client accepts it and as markdown otherwise.
func (h *Handler) GetRecentCards(c *gin.Context) {
	days, err := parseDays(c.Query("days"))
	if err != nil {
		h.fail(c, "recent cards", err)
		return
	}

	recent, err := h.boards.FetchRecentActivity(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		h.fail(c, "recent cards", err)
		return
	}

	if strings.Contains(strings.ToLower(c.GetHeader("Accept")), "application/json") {
		c.JSON(http.StatusOK, recent)
		return
	}
	c.String(http.StatusOK, summary.FormatRecentCardsSummary(recent.BoardName, recent.Cards, recent.Days))
}

func parseDays(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultRecentDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0, domain.NewValidationError("days must be a non-negative integer")
	}
	return days, nil
}

// fail is the single place board errors become responses. Upstream status
// codes are not forwarded; only validation errors are the caller's fault.
func (h *Handler) fail(c *gin.Context, operation string, err error) {
	status := http.StatusInternalServerError
	if domain.IsKind(err, domain.KindValidation) {
		status = http.StatusBadRequest
	}

	logging.FromContext(c.Request.Context()).
		WithError(err).
		WithField("operation", operation).
		WithField("board_id", c.Param("id")).
		Warn("trello request failed")

	c.JSON(status, gin.H{"error": err.Error()})
}
