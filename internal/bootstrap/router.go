package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/jobtrail/jobtrail-backend/internal/api/http"
	"github.com/jobtrail/jobtrail-backend/internal/api/http/middleware"
	apphttp "github.com/jobtrail/jobtrail-backend/internal/applications/http"
	apprepo "github.com/jobtrail/jobtrail-backend/internal/applications/repository"
	appsvc "github.com/jobtrail/jobtrail-backend/internal/applications/service"
	"github.com/jobtrail/jobtrail-backend/internal/cache"
	lchttp "github.com/jobtrail/jobtrail-backend/internal/leetcode/http"
	lcrepo "github.com/jobtrail/jobtrail-backend/internal/leetcode/repository"
	lcsvc "github.com/jobtrail/jobtrail-backend/internal/leetcode/service"
	trellohttp "github.com/jobtrail/jobtrail-backend/internal/trello/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	APIKey         string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	DB     *sql.DB
	Cache  *cache.StatsCache // nil disables stats caching
	Boards trellohttp.BoardService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	r.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	var cachePinger httpapi.CachePinger
	if dep.Cache != nil {
		cachePinger = dep.Cache
	}
	var dbPinger httpapi.Pinger
	if dep.DB != nil {
		dbPinger = dep.DB
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dbPinger, cachePinger).RegisterRoutes(r)

	api := r.Group("")
	api.Use(middleware.BearerAuth(dep.APIKey))

	appService := appsvc.NewApplicationService(apprepo.NewApplicationRepository(dep.DB), dep.Cache)
	apphttp.New(appService).Register(api.Group("/applications"))

	problemService := lcsvc.NewProblemService(lcrepo.NewProblemRepository(dep.DB), dep.Cache)
	lchttp.New(problemService).Register(api.Group("/leetcode"))

	trellohttp.New(dep.Boards).Register(api.Group("/trello"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
