package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrail/jobtrail-backend/internal/applications/domain"
)

type fakeRepo struct {
	created    *domain.CreateApplicationRequest
	listStatus string
	listLimit  int
	stats      *domain.Stats
	statsCalls int
	err        error
}

func (f *fakeRepo) Create(ctx context.Context, req *domain.CreateApplicationRequest) (int64, error) {
	f.created = req
	return 1, f.err
}

func (f *fakeRepo) List(ctx context.Context, status string, limit int) ([]domain.Application, error) {
	f.listStatus, f.listLimit = status, limit
	return []domain.Application{}, f.err
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (*domain.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Application{ID: id}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *domain.UpdateApplicationRequest) (*domain.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Application{ID: id, Status: req.Status}, nil
}

func (f *fakeRepo) Stats(ctx context.Context) (*domain.Stats, error) {
	f.statsCalls++
	return f.stats, f.err
}

type memCache struct {
	entries     map[string]*domain.Stats
	invalidated []string
	getErr      error
}

func newMemCache() *memCache { return &memCache{entries: map[string]*domain.Stats{}} }

func (m *memCache) Get(ctx context.Context, name string, dest any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	s, ok := m.entries[name]
	if !ok {
		return false, nil
	}
	*dest.(*domain.Stats) = *s
	return true, nil
}

func (m *memCache) Set(ctx context.Context, name string, value any) error {
	m.entries[name] = value.(*domain.Stats)
	return nil
}

func (m *memCache) Invalidate(ctx context.Context, name string) error {
	delete(m.entries, name)
	m.invalidated = append(m.invalidated, name)
	return nil
}

func TestCreate_DefaultsStatus(t *testing.T) {
	repo := &fakeRepo{}
	cache := newMemCache()
	svc := NewApplicationService(repo, cache)

	_, err := svc.Create(context.Background(), &domain.CreateApplicationRequest{Company: "Acme", Role: "SWE"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, repo.created.Status)
	assert.Equal(t, []string{statsCacheKey}, cache.invalidated)
}

func TestCreate_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{}
	_, err := NewApplicationService(repo, nil).Create(context.Background(),
		&domain.CreateApplicationRequest{Company: "Acme", Role: "SWE", Status: "ghosted"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Nil(t, repo.created)
}

func TestList_NormalizesArguments(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewApplicationService(repo, nil)

	_, err := svc.List(context.Background(), "bogus", 0)
	require.NoError(t, err)
	assert.Equal(t, "", repo.listStatus)
	assert.Equal(t, DefaultListLimit, repo.listLimit)

	_, err = svc.List(context.Background(), "offer", 10000)
	require.NoError(t, err)
	assert.Equal(t, "offer", repo.listStatus)
	assert.Equal(t, MaxListLimit, repo.listLimit)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	bad := "ghosted"
	_, err := NewApplicationService(&fakeRepo{}, nil).Update(context.Background(), 1,
		&domain.UpdateApplicationRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdate_NotFoundKeepsCache(t *testing.T) {
	cache := newMemCache()
	svc := NewApplicationService(&fakeRepo{err: domain.ErrNotFound}, cache)

	_, err := svc.Update(context.Background(), 1, &domain.UpdateApplicationRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, cache.invalidated)
}

func TestStats_UsesCache(t *testing.T) {
	repo := &fakeRepo{stats: &domain.Stats{Total: 2, ByStatus: map[string]int64{"applied": 2}}}
	svc := NewApplicationService(repo, newMemCache())

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	second, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.statsCalls)
}

func TestStats_CacheErrorFallsBackToRepo(t *testing.T) {
	repo := &fakeRepo{stats: &domain.Stats{Total: 1}}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")

	stats, err := NewApplicationService(repo, cache).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, NormalizeLimit(-3))
	assert.Equal(t, 1, NormalizeLimit(1))
	assert.Equal(t, MaxListLimit, NormalizeLimit(MaxListLimit))
	assert.Equal(t, MaxListLimit, NormalizeLimit(MaxListLimit+1))
}
