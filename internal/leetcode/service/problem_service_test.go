package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrail/jobtrail-backend/internal/cache"
	"github.com/jobtrail/jobtrail-backend/internal/leetcode/domain"
)

type fakeRepo struct {
	logged     *domain.LogProblemRequest
	difficulty string
	limit      int
	statsCalls int
}

func (f *fakeRepo) Create(ctx context.Context, req *domain.LogProblemRequest) (int64, error) {
	f.logged = req
	return 1, nil
}

func (f *fakeRepo) List(ctx context.Context, difficulty string, limit int) ([]domain.Problem, error) {
	f.difficulty, f.limit = difficulty, limit
	return []domain.Problem{}, nil
}

func (f *fakeRepo) Stats(ctx context.Context) (*domain.Stats, error) {
	f.statsCalls++
	return &domain.Stats{Total: int64(f.statsCalls), ByDifficulty: map[string]int64{"easy": int64(f.statsCalls)}}, nil
}

func newRedisCache(t *testing.T) *cache.StatsCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewStatsCache(client, 0)
}

func TestLog_CleansTopics(t *testing.T) {
	repo := &fakeRepo{}
	_, err := NewProblemService(repo, nil).Log(context.Background(), &domain.LogProblemRequest{
		ProblemName: "Two Sum",
		Topics:      []string{" arrays ", "", "hash table"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"arrays", "hash table"}, repo.logged.Topics)
}

func TestLog_InvalidDifficulty(t *testing.T) {
	repo := &fakeRepo{}
	insane := "insane"
	_, err := NewProblemService(repo, nil).Log(context.Background(),
		&domain.LogProblemRequest{ProblemName: "x", Difficulty: &insane})
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
	assert.Nil(t, repo.logged)
}

func TestList_Normalizes(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProblemService(repo, nil)

	_, err := svc.List(context.Background(), "impossible", -1)
	require.NoError(t, err)
	assert.Equal(t, "", repo.difficulty)
	assert.Equal(t, DefaultListLimit, repo.limit)

	_, err = svc.List(context.Background(), "hard", 9999)
	require.NoError(t, err)
	assert.Equal(t, "hard", repo.difficulty)
	assert.Equal(t, MaxListLimit, repo.limit)
}

func TestStats_CachedUntilNextLog(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProblemService(repo, newRedisCache(t))
	ctx := context.Background()

	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	again, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, repo.statsCalls)

	_, err = svc.Log(ctx, &domain.LogProblemRequest{ProblemName: "Two Sum"})
	require.NoError(t, err)

	fresh, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.Total)
	assert.Equal(t, 2, repo.statsCalls)
}
