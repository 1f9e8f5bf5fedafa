package handler

import (
	"net/http"

	"github.com/duarte550/crmCRIback/internal/api/handler/router"
	"github.com/duarte550/crmCRIback/internal/usecases/aggregating"
	"github.com/duarte550/crmCRIback/internal/usecases/cataloging"
	"github.com/duarte550/crmCRIback/internal/usecases/registering"
	"github.com/duarte550/crmCRIback/internal/usecases/searching"
	"github.com/duarte550/crmCRIback/internal/usecases/watchlisting"
	"github.com/duarte550/crmCRIback/pkg/metrics"
)

const apiPrefix = "/api"

func Healthcheck(gauge GaugeStatus) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(gauge),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Todas as rotas de grupo usam o curinga :id, o httprouter não aceita nomes diferentes na mesma posição
func EconomicGroups(
	catalog cataloging.Cataloger,
	aggregator aggregating.Aggregator,
	registrar registering.Registrar,
	watchlist watchlisting.WatchlistService,
) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/economic-groups",
			Method:  http.MethodGet,
			Handler: ListEconomicGroups(catalog),
		},
		{
			Path:    apiPrefix + "/economic-groups/:id/details",
			Method:  http.MethodGet,
			Handler: GetGroupDetails(aggregator),
		},
		{
			Path:    apiPrefix + "/economic-groups/:id/timeline-events",
			Method:  http.MethodPost,
			Handler: CreateTimelineEvent(registrar),
		},
		{
			Path:    apiPrefix + "/economic-groups/:id/watchlist-event",
			Method:  http.MethodPost,
			Handler: CreateWatchlistEvent(watchlist),
		},
	}
}

func Dashboard(aggregator aggregating.Aggregator, catalog cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(aggregator),
		},
		{
			Path:    apiPrefix + "/reports/volume-by-rating",
			Method:  http.MethodGet,
			Handler: GetVolumeByRating(catalog),
		},
	}
}

func Events(aggregator aggregating.Aggregator, registrar registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/events",
			Method:  http.MethodGet,
			Handler: GetEventsFeed(aggregator),
		},
		{
			Path:    apiPrefix + "/events/tasks",
			Method:  http.MethodPost,
			Handler: CreateTask(registrar),
		},
	}
}

func Monitoring(catalog cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/reviews",
			Method:  http.MethodGet,
			Handler: ListReviews(catalog),
		},
		{
			Path:    apiPrefix + "/visits",
			Method:  http.MethodGet,
			Handler: ListVisits(catalog),
		},
		{
			Path:    apiPrefix + "/insurances",
			Method:  http.MethodGet,
			Handler: ListInsurances(catalog),
		},
		{
			Path:    apiPrefix + "/appraisals",
			Method:  http.MethodGet,
			Handler: ListAppraisals(catalog),
		},
		{
			Path:    apiPrefix + "/rules",
			Method:  http.MethodGet,
			Handler: ListRules(catalog),
		},
	}
}

func Watchlist(service watchlisting.WatchlistService) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/watchlist",
			Method:  http.MethodGet,
			Handler: ListWatchlist(service),
		},
		{
			Path:    apiPrefix + "/watchlist/summary",
			Method:  http.MethodGet,
			Handler: GetWatchlistSummary(service),
		},
	}
}

func Search(service searching.Searcher) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/search",
			Method:  http.MethodGet,
			Handler: SearchHandler(service),
		},
	}
}
