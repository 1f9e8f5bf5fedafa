package handler

import (
	"context"
	"net/http"

	"github.com/duarte550/crmCRIback/internal/usecases/cataloging"
)

// listHandler serve as listagens planas, que só diferem na consulta e na mensagem de erro
func listHandler[T any](fetch func(context.Context) ([]T, error), serverMessage string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context())
		if err != nil {
			respondError(w, r, err, serverMessage)
			return
		}

		writeJSON(w, r, http.StatusOK, items)
	})
}

func ListReviews(service cataloging.Cataloger) http.Handler {
	return listHandler(service.ListReviews, "Server error while fetching reviews")
}

func ListVisits(service cataloging.Cataloger) http.Handler {
	return listHandler(service.ListVisits, "Server error while fetching visits")
}

func ListInsurances(service cataloging.Cataloger) http.Handler {
	return listHandler(service.ListInsurances, "Server error while fetching insurances")
}

func ListAppraisals(service cataloging.Cataloger) http.Handler {
	return listHandler(service.ListAppraisals, "Server error while fetching appraisals")
}

func ListRules(service cataloging.Cataloger) http.Handler {
	return listHandler(service.ListRules, "Server error while fetching rules")
}
