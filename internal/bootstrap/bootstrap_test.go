package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrail/jobtrail-backend/config"
	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
)

type stubBoards struct{}

func (stubBoards) ListBoards(ctx context.Context) ([]domain.Board, error) {
	return []domain.Board{{ID: "b1", Name: "Job Hunt"}}, nil
}

func (stubBoards) FetchBoardDetails(ctx context.Context, boardID string) (*domain.BoardWithDetails, error) {
	return &domain.BoardWithDetails{Board: domain.Board{ID: boardID}}, nil
}

func (stubBoards) FetchRecentActivity(ctx context.Context, boardID string, days int) (*domain.RecentCards, error) {
	return &domain.RecentCards{BoardID: boardID, Days: days, Cards: []domain.Card{}}, nil
}

func newTestRouter(t *testing.T, apiKey string) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := BuildRouter(RouterDeps{
		ServiceName:    "jobtrail-backend",
		Version:        "test",
		APIKey:         apiKey,
		AllowedOrigins: []string{"http://localhost:3000"},
		DB:             db,
		Boards:         stubBoards{},
	})
	return r, mock
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestBuildRouter_Health(t *testing.T) {
	r, mock := newTestRouter(t, "secret")
	mock.ExpectPing()

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "up", body["db"])
	assert.Equal(t, "disabled", body["cache"])
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestBuildRouter_RequiresBearerToken(t *testing.T) {
	r, _ := newTestRouter(t, "secret")

	for _, path := range []string{"/applications", "/leetcode", "/trello/boards"} {
		rr := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/trello/boards", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := serve(r, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Job Hunt")
}

func TestBuildRouter_ApplicationsHitDatabase(t *testing.T) {
	r, mock := newTestRouter(t, "")
	mock.ExpectQuery(`SELECT count\(\*\) FROM applications`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/applications/stats/summary", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total":0,"byStatus":{}}`, rr.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildRouter_CORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodOptions, "/applications", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := serve(r, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfig_Wildcard(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"https://jobtrail.dev"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://jobtrail.dev"}, cfg.AllowOrigins)
}

func TestOpenStatsCache(t *testing.T) {
	assert.Nil(t, OpenStatsCache(context.Background(), config.RedisConfig{}))

	mr := miniredis.RunT(t)
	c := OpenStatsCache(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NotNil(t, c)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestOpenStatsCache_Unreachable(t *testing.T) {
	assert.Nil(t, OpenStatsCache(context.Background(), config.RedisConfig{Addr: "127.0.0.1:0"}))
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	SetGinMode("test")
	assert.Equal(t, gin.TestMode, gin.Mode())
}
