package http

import (
	"context"

	"github.com/jobtrail/jobtrail-backend/internal/applications/domain"
	"github.com/jobtrail/jobtrail-backend/internal/datetime"
)

// ApplicationService is what the handlers need from the service layer.
type ApplicationService interface {
	Create(ctx context.Context, req *domain.CreateApplicationRequest) (int64, error)
	List(ctx context.Context, status string, limit int) ([]domain.Application, error)
	Get(ctx context.Context, id int64) (*domain.Application, error)
	Update(ctx context.Context, id int64, req *domain.UpdateApplicationRequest) (*domain.Application, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Handler handles HTTP requests for job applications
type Handler struct {
	svc ApplicationService
}

// New creates a new Handler
func New(svc ApplicationService) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Company     string  `json:"company" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Status      string  `json:"status" binding:"omitempty,oneof=applied interviewing rejected offer accepted"`
	SalaryRange *string `json:"salaryRange"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

type updateRequest struct {
	Status      *string        `json:"status" binding:"omitempty,oneof=applied interviewing rejected offer accepted"`
	LastContact *datetime.Date `json:"lastContact"`
	Notes       *string        `json:"notes"`
	SalaryRange *string        `json:"salaryRange"`
}
