package handler

import (
	"net/http"

	"github.com/socialpulse/engagement-analytics-api/internal/api/handler/router"
	"github.com/socialpulse/engagement-analytics-api/internal/usecases/analyzing"
	"github.com/socialpulse/engagement-analytics-api/internal/usecases/authenticating"
	"github.com/socialpulse/engagement-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/posts/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetPostPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/optimal-times",
			Method:      http.MethodGet,
			Handler:     GetOptimalPostingTimes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/trends",
			Method:      http.MethodGet,
			Handler:     GetEngagementTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/platforms",
			Method:      http.MethodGet,
			Handler:     GetPlatformPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/top-posts",
			Method:      http.MethodGet,
			Handler:     GetTopPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/comparison",
			Method:      http.MethodGet,
			Handler:     GetPeriodComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
