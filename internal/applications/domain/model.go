package domain

import (
	"time"

	"github.com/jobtrail/jobtrail-backend/internal/datetime"
)

// Application status values, in pipeline order.
const (
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusRejected     = "rejected"
	StatusOffer        = "offer"
	StatusAccepted     = "accepted"
)

// Statuses lists every valid status.
var Statuses = []string{StatusApplied, StatusInterviewing, StatusRejected, StatusOffer, StatusAccepted}

// IsValidStatus reports whether s is a known application status.
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Application is one tracked job application.
type Application struct {
	ID          int64          `json:"id"`
	Company     string         `json:"company"`
	Role        string         `json:"role"`
	URL         *string        `json:"url"`
	Status      *string        `json:"status"`
	AppliedDate *datetime.Date `json:"appliedDate"`
	LastContact *datetime.Date `json:"lastContact"`
	Notes       *string        `json:"notes"`
	SalaryRange *string        `json:"salaryRange"`
	Location    *string        `json:"location"`
	CreatedAt   *time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt"`
}

// CreateApplicationRequest holds the fields accepted when logging a new application.
type CreateApplicationRequest struct {
	Company     string
	Role        string
	URL         *string
	Status      string
	SalaryRange *string
	Location    *string
	Notes       *string
}

// UpdateApplicationRequest holds optional changes; nil fields are left as they are.
type UpdateApplicationRequest struct {
	Status      *string
	LastContact *datetime.Date
	Notes       *string
	SalaryRange *string
}

// Stats summarises applications by status.
type Stats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
