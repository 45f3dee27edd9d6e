package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter"
	"github.com/vfg2006/ads-diagnostics-api/pkg/log"
)

func GetFeedHealth(service merchantcenter.MerchantIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("feed: fetching product feed health")

		health, err := service.GetFeedHealth(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("feed: failed to get feed health")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"total_products": health.TotalProducts,
			"approval_rate":  health.ApprovalRate,
		}).Info("feed: successfully retrieved feed health")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(health); err != nil {
			logger.WithField("error", err.Error()).Error("feed: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
