package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobtrail/jobtrail-backend/internal/applications/domain"
)

const applicationColumns = `id, company, role, url, status, applied_date, last_contact,
	notes, salary_range, location, created_at, updated_at`

// ApplicationRepository provides persistence operations for applications
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts an application and returns its id.
func (r *ApplicationRepository) Create(ctx context.Context, req *domain.CreateApplicationRequest) (int64, error) {
	const q = `
INSERT INTO applications (company, role, url, status, salary_range, location, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		req.Company, req.Role, req.URL, req.Status, req.SalaryRange, req.Location, req.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// List returns up to limit applications, newest applied first. An empty
// status matches every application.
func (r *ApplicationRepository) List(ctx context.Context, status string, limit int) ([]domain.Application, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status != "" {
		q := `SELECT ` + applicationColumns + `
FROM applications
WHERE status = $1
ORDER BY applied_date DESC
LIMIT $2;`
		rows, err = r.db.QueryContext(ctx, q, status, limit)
	} else {
		q := `SELECT ` + applicationColumns + `
FROM applications
ORDER BY applied_date DESC
LIMIT $1;`
		rows, err = r.db.QueryContext(ctx, q, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Application, 0, limit)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one application or domain.ErrNotFound.
func (r *ApplicationRepository) Get(ctx context.Context, id int64) (*domain.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1;`

	a, err := scanApplication(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update applies the non-nil fields of req and bumps updated_at.
func (r *ApplicationRepository) Update(ctx context.Context, id int64, req *domain.UpdateApplicationRequest) (*domain.Application, error) {
	q := `
UPDATE applications
SET status       = COALESCE($2::application_status, status),
    last_contact = COALESCE($3::date, last_contact),
    notes        = COALESCE($4, notes),
    salary_range = COALESCE($5, salary_range),
    updated_at   = now()
WHERE id = $1
RETURNING ` + applicationColumns + `;`

	a, err := scanApplication(r.db.QueryRowContext(ctx, q,
		id, req.Status, req.LastContact, req.Notes, req.SalaryRange,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return a, nil
}

// Stats counts applications overall and per status.
func (r *ApplicationRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{ByStatus: map[string]int64{}}

	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM applications;`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM applications GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to group applications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status sql.NullString
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		key := "null"
		if status.Valid {
			key = status.String
		}
		stats.ByStatus[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Nullable columns scan into pointer fields and stay nil on NULL.
func scanApplication(s rowScanner) (*domain.Application, error) {
	var a domain.Application
	err := s.Scan(
		&a.ID, &a.Company, &a.Role, &a.URL, &a.Status, &a.AppliedDate, &a.LastContact,
		&a.Notes, &a.SalaryRange, &a.Location, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
