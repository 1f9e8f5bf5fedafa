package handler

import (
	"net/http"

	"github.com/duarte550/crmCRIback/internal/usecases/watchlisting"
)

func ListWatchlist(service watchlisting.WatchlistService) http.Handler {
	return listHandler(service.ListWatchlist, "Server error while fetching watchlist groups")
}

func GetWatchlistSummary(service watchlisting.WatchlistService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			respondError(w, r, err, "Server error while fetching watchlist summary")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}
