package service

import (
	"context"

	"github.com/jobtrail/jobtrail-backend/internal/applications/domain"
	"github.com/jobtrail/jobtrail-backend/internal/logging"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500

	statsCacheKey = "applications"
)

// Repository is the persistence the service relies on.
type Repository interface {
	Create(ctx context.Context, req *domain.CreateApplicationRequest) (int64, error)
	List(ctx context.Context, status string, limit int) ([]domain.Application, error)
	Get(ctx context.Context, id int64) (*domain.Application, error)
	Update(ctx context.Context, id int64, req *domain.UpdateApplicationRequest) (*domain.Application, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// StatsCache is a best-effort store for stats snapshots.
type StatsCache interface {
	Get(ctx context.Context, name string, dest any) (bool, error)
	Set(ctx context.Context, name string, value any) error
	Invalidate(ctx context.Context, name string) error
}

// ApplicationService handles business logic for job applications
type ApplicationService struct {
	repo  Repository
	cache StatsCache
}

// NewApplicationService creates a new ApplicationService. cache may be nil.
func NewApplicationService(repo Repository, cache StatsCache) *ApplicationService {
	return &ApplicationService{repo: repo, cache: cache}
}

// Create logs a new application, defaulting its status to applied.
func (s *ApplicationService) Create(ctx context.Context, req *domain.CreateApplicationRequest) (int64, error) {
	if req.Status == "" {
		req.Status = domain.StatusApplied
	}
	if !domain.IsValidStatus(req.Status) {
		return 0, domain.ErrInvalidStatus
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	s.invalidateStats(ctx)
	return id, nil
}

// List returns applications, optionally filtered by status. Unknown
// statuses are ignored rather than rejected.
func (s *ApplicationService) List(ctx context.Context, status string, limit int) ([]domain.Application, error) {
	if !domain.IsValidStatus(status) {
		status = ""
	}
	return s.repo.List(ctx, status, NormalizeLimit(limit))
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	return s.repo.Get(ctx, id)
}

func (s *ApplicationService) Update(ctx context.Context, id int64, req *domain.UpdateApplicationRequest) (*domain.Application, error) {
	if req.Status != nil && !domain.IsValidStatus(*req.Status) {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return app, nil
}

// Stats returns the per-status counts, served from the cache when fresh.
func (s *ApplicationService) Stats(ctx context.Context) (*domain.Stats, error) {
	logger := logging.FromContext(ctx)

	if s.cache != nil {
		var cached domain.Stats
		found, err := s.cache.Get(ctx, statsCacheKey, &cached)
		if err != nil {
			logger.WithError(err).Warn("stats cache read failed")
		}
		if found {
			return &cached, nil
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats); err != nil {
			logger.WithError(err).Warn("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *ApplicationService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, statsCacheKey); err != nil {
		logging.FromContext(ctx).WithError(err).Warn("stats cache invalidation failed")
	}
}

// NormalizeLimit maps a missing or out-of-range limit onto 1..MaxListLimit.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
