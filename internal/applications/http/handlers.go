package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail-backend/internal/applications/domain"
	"github.com/jobtrail/jobtrail-backend/internal/logging"
)

// Create logs a new application
func (h *Handler) Create(c *gin.Context) {
	var body createRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &domain.CreateApplicationRequest{
		Company:     body.Company,
		Role:        body.Role,
		URL:         body.URL,
		Status:      body.Status,
		SalaryRange: body.SalaryRange,
		Location:    body.Location,
		Notes:       body.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		h.internalError(c, "create application", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application added", "id": id})
}

// List lists applications, optionally filtered by ?status= and capped by ?limit=
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	apps, err := h.svc.List(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		h.internalError(c, "list applications", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Stats returns total and per-status counts
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.internalError(c, "load application stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get retrieves a single application
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	app, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		h.internalError(c, "get application", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Update changes status, last contact, notes or salary range
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body updateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.svc.Update(c.Request.Context(), id, &domain.UpdateApplicationRequest{
		Status:      body.Status,
		LastContact: body.LastContact,
		Notes:       body.Notes,
		SalaryRange: body.SalaryRange,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		default:
			h.internalError(c, "update application", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated", "application": app})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) internalError(c *gin.Context, operation string, err error) {
	logging.FromContext(c.Request.Context()).WithError(err).WithField("operation", operation).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + operation})
}
