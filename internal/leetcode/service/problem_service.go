package service

import (
	"context"
	"strings"

	"github.com/jobtrail/jobtrail-backend/internal/leetcode/domain"
	"github.com/jobtrail/jobtrail-backend/internal/logging"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500

	statsCacheKey = "leetcode"
)

type Repository interface {
	Create(ctx context.Context, req *domain.LogProblemRequest) (int64, error)
	List(ctx context.Context, difficulty string, limit int) ([]domain.Problem, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// StatsCache is a best-effort store for stats snapshots.
type StatsCache interface {
	Get(ctx context.Context, name string, dest any) (bool, error)
	Set(ctx context.Context, name string, value any) error
	Invalidate(ctx context.Context, name string) error
}

// ProblemService handles the LeetCode practice log
type ProblemService struct {
	repo  Repository
	cache StatsCache
}

// NewProblemService creates a ProblemService. cache may be nil.
func NewProblemService(repo Repository, cache StatsCache) *ProblemService {
	return &ProblemService{repo: repo, cache: cache}
}

// Log records a solved problem. Topics are trimmed and blanks dropped.
func (s *ProblemService) Log(ctx context.Context, req *domain.LogProblemRequest) (int64, error) {
	if req.Difficulty != nil && !domain.IsValidDifficulty(*req.Difficulty) {
		return 0, domain.ErrInvalidDifficulty
	}
	req.Topics = cleanTopics(req.Topics)

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, statsCacheKey); err != nil {
			logging.FromContext(ctx).WithError(err).Warn("stats cache invalidation failed")
		}
	}
	return id, nil
}

func (s *ProblemService) List(ctx context.Context, difficulty string, limit int) ([]domain.Problem, error) {
	if !domain.IsValidDifficulty(difficulty) {
		difficulty = ""
	}
	if limit <= 0 {
		limit = DefaultListLimit
	} else if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.List(ctx, difficulty, limit)
}

func (s *ProblemService) Stats(ctx context.Context) (*domain.Stats, error) {
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

func cleanTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
