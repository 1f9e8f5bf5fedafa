package handler

import (
	"net/http"

	"github.com/duarte550/crmCRIback/internal/usecases/aggregating"
	"github.com/duarte550/crmCRIback/internal/usecases/cataloging"
)

func GetDashboard(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.DashboardMetrics(r.Context())
		if err != nil {
			respondError(w, r, err, "Server error while fetching dashboard data")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetVolumeByRating(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		volumes, err := service.VolumeByRating(r.Context())
		if err != nil {
			respondError(w, r, err, "Server error while fetching reports")
			return
		}

		writeJSON(w, r, http.StatusOK, volumes)
	})
}
