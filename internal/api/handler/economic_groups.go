package handler

import (
	"net/http"

	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/internal/usecases/aggregating"
	"github.com/duarte550/crmCRIback/internal/usecases/cataloging"
	"github.com/duarte550/crmCRIback/internal/usecases/registering"
	"github.com/duarte550/crmCRIback/internal/usecases/watchlisting"
)

func ListEconomicGroups(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groups, err := service.ListEconomicGroups(r.Context())
		if err != nil {
			respondError(w, r, err, "Server error while fetching economic groups")
			return
		}

		writeJSON(w, r, http.StatusOK, groups)
	})
}

func GetGroupDetails(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := pathID(w, r)
		if !ok {
			return
		}

		detail, err := service.GroupDetail(r.Context(), groupID)
		if err != nil {
			respondError(w, r, err, "Server error while fetching group details")
			return
		}

		writeJSON(w, r, http.StatusOK, detail)
	})
}

func CreateTimelineEvent(service registering.Registrar) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := pathID(w, r)
		if !ok {
			return
		}

		var request domain.TimelineEventRequest
		if !decodeJSON(w, r, &request) {
			return
		}
		request.GroupID = groupID

		event, err := service.CreateTimelineEvent(r.Context(), request)
		if err != nil {
			respondError(w, r, err, "Server error while creating timeline event.")
			return
		}

		writeJSON(w, r, http.StatusCreated, event)
	})
}

// CreateWatchlistEvent muda o status de watchlist do grupo e devolve o evento de timeline gravado
func CreateWatchlistEvent(service watchlisting.WatchlistService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := pathID(w, r)
		if !ok {
			return
		}

		var request domain.WatchlistEventRequest
		if !decodeJSON(w, r, &request) {
			return
		}
		request.GroupID = groupID

		event, err := service.SetWatchlistStatus(r.Context(), request)
		if err != nil {
			respondError(w, r, err, "Server error during watchlist event creation.")
			return
		}

		writeJSON(w, r, http.StatusCreated, event)
	})
}
