package middleware

import (
	"net/http"
	"time"

	"github.com/duarte550/crmCRIback/pkg/metrics"
)

// Metrics mede as requisições de uma rota. path é o padrão da rota
// (ex.: /api/economic-groups/:id/details), não a URL concreta.
func Metrics(method, path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := newStatusResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(srw, r)

			metrics.RecordHTTPRequest(method, path, srw.statusCode, time.Since(start))
		})
	}
}
