package handler

import (
	"net/http"

	"github.com/vfg2006/fashion-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/fashion-forecast-api/internal/config"
	"github.com/vfg2006/fashion-forecast-api/internal/usecases/rendering"
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

func Dashboard(service rendering.Renderer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodPost,
			Handler: RenderDashboard(service, cfg),
		},
		{
			Path:    "/v1/dashboard/categories",
			Method:  http.MethodPost,
			Handler: DiscoverCategories(service, cfg),
		},
	}
}
