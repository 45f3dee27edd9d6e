package handler

import (
	"net/http"

	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter"
	"github.com/vfg2006/ads-diagnostics-api/internal/api/handler/router"
	"github.com/vfg2006/ads-diagnostics-api/internal/usecases/snapshotting"
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

func Snapshots(service snapshotting.Snapshotter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers/:id/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(service),
		},
		{
			Path:    "/v1/customers/:id/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshotHistory(service),
		},
	}
}

func Feed(service merchantcenter.MerchantIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/feed/health",
			Method:  http.MethodGet,
			Handler: GetFeedHealth(service),
		},
	}
}
