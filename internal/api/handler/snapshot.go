package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-diagnostics-api/internal/usecases/snapshotting"
	"github.com/vfg2006/ads-diagnostics-api/pkg/apiErrors"
	"github.com/vfg2006/ads-diagnostics-api/pkg/log"
	"github.com/vfg2006/ads-diagnostics-api/pkg/utils"
)

const defaultHistoryLimit = 20

func GetSnapshot(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", customerID).Info("snapshot: building account snapshot")

		dateRange := r.URL.Query().Get("date_range")
		if dateRange == "" {
			dateRange = utils.DefaultDateRange
		}

		if !utils.IsValidDateRange(dateRange) {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"date_range":  dateRange,
			}).Warn("snapshot: invalid date_range parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "date_range deve ser 7d, 30d ou 90d", nil)
			return
		}

		snapshot := service.BuildSnapshot(r.Context(), customerID, dateRange)

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"date_range":  dateRange,
			"issues":      len(snapshot.TopIssues),
			"actions":     len(snapshot.RecommendedActions),
		}).Info("snapshot: successfully built account snapshot")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("snapshot: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func ListSnapshotHistory(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithFields(log.Fields{
					"customer_id": customerID,
					"limit":       raw,
				}).Warn("snapshot: invalid limit parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.History(r.Context(), customerID, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("snapshot: failed to list snapshot history")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"entries":     len(entries),
		}).Debug("snapshot: successfully listed snapshot history")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("snapshot: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
