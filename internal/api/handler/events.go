package handler

import (
	"net/http"

	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/internal/usecases/aggregating"
	"github.com/duarte550/crmCRIback/internal/usecases/registering"
)

func GetEventsFeed(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events, err := service.EventsFeed(r.Context())
		if err != nil {
			respondError(w, r, err, "Server error while fetching events")
			return
		}

		writeJSON(w, r, http.StatusOK, events)
	})
}

func CreateTask(service registering.Registrar) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.TaskRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		task, err := service.CreateTask(r.Context(), request)
		if err != nil {
			respondError(w, r, err, "Server error while creating task.")
			return
		}

		writeJSON(w, r, http.StatusCreated, task)
	})
}
