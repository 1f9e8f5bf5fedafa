package handler

import (
	"net/http"
	"time"

	"github.com/duarte550/crmCRIback/pkg/apiErrors"
	"github.com/duarte550/crmCRIback/pkg/log"
)

// GaugeStatus expõe o resultado da última atualização das métricas da watchlist
type GaugeStatus interface {
	Status() (lastRefreshedAt time.Time, lastRefreshFailed bool)
}

type healthcheckResponse struct {
	Time           time.Time             `json:"time"`
	WatchlistGauge *watchlistGaugeStatus `json:"watchlistGauge,omitempty"`
}

type watchlistGaugeStatus struct {
	LastRefreshedAt   *time.Time `json:"lastRefreshedAt"`
	LastRefreshFailed bool       `json:"lastRefreshFailed"`
}

// HealthcheckHandler responde 200 enquanto o processo estiver no ar; gauge pode ser nil
func HealthcheckHandler(gauge GaugeStatus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{Time: time.Now()}

		if gauge != nil {
			refreshedAt, failed := gauge.Status()
			status := &watchlistGaugeStatus{LastRefreshFailed: failed}
			if !refreshedAt.IsZero() {
				status.LastRefreshedAt = &refreshedAt
			}
			response.WatchlistGauge = status
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// RootHandler responde na raiz para quem só quer saber se a API está no ar
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("CRM CRI API is running")); err != nil {
			log.L.WithError(err).Warn("Erro ao responder a raiz")
		}
	})
}

// NotFoundHandler responde rotas inexistentes no mesmo formato dos demais erros 4xx
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Route not found", nil)
	})
}
