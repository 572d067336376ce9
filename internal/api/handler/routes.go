package handler

import (
	"net/http"

	"github.com/vfg2006/sales-compliance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-compliance-api/internal/settings"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/allocating"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/attributing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/budgeting"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/novelty"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/progressing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
	"github.com/vfg2006/sales-compliance-api/pkg/middleware"
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Novelties(store novelty.Store, orchestrator recomputing.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/novelties",
			Method:      http.MethodGet,
			Handler:     ListNovelties(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/novelties",
			Method:      http.MethodPost,
			Handler:     CreateNovelty(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersAndUp()},
		},
		{
			Path:        "/v1/novelties/:id",
			Method:      http.MethodPut,
			Handler:     UpdateNovelty(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersAndUp()},
		},
		{
			Path:        "/v1/novelties/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteNovelty(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersAndUp()},
		},
	}
}

func Budgets(store budgeting.Store, orchestrator recomputing.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budgets",
			Method:      http.MethodGet,
			Handler:     ListBudgets(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersAndUp()},
		},
		{
			Path:        "/v1/budgets/batch",
			Method:      http.MethodPost,
			Handler:     UpsertBudgetBatch(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRegional()},
		},
		{
			Path:        "/v1/budgets/copy-previous",
			Method:      http.MethodPost,
			Handler:     CopyBudgetsFromPreviousPeriod(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRegional()},
		},
		{
			Path:        "/v1/budgets/tree",
			Method:      http.MethodGet,
			Handler:     GetBudgetTree(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersAndUp()},
		},
		{
			Path:        "/v1/budgets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBudget(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRegional()},
		},
	}
}

func PersonInsights(calculator allocating.Calculator, aggregator progressing.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/people/:id/allocations",
			Method:      http.MethodGet,
			Handler:     GetPersonAllocation(calculator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/people/:id/progress",
			Method:      http.MethodGet,
			Handler:     GetPersonProgress(aggregator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Compliance(attributor attributing.Attributor, settingsService *settings.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/compliance/unmatched",
			Method:      http.MethodGet,
			Handler:     GetUnmatchedSales(attributor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRegional()},
		},
		{
			Path:        "/v1/settings/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSettings(settingsService, attributor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func RecomputeJobs(services RecomputeJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/recompute/:type/run",
			Method:      http.MethodPost,
			Handler:     RunRecomputeJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/recompute/status",
			Method:      http.MethodGet,
			Handler:     GetRecomputeStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
