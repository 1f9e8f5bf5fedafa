package handler

import (
	"net/http"

	"github.com/duarte550/crmCRIback/internal/usecases/searching"
)

func SearchHandler(service searching.Searcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Search(r.Context(), r.URL.Query().Get("term"))
		if err != nil {
			respondError(w, r, err, "Server error while performing search")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
