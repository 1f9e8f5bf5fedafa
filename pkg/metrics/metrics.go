package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry guarda os coletores da aplicação
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crm_cri",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crm_cri",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crm_cri",
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Duração das consultas por operação.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"op", "backend"},
	)

	queryErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crm_cri",
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total de consultas com erro por operação.",
		},
		[]string{"op", "backend"},
	)

	connectionAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crm_cri",
			Subsystem: "database",
			Name:      "connection_attempts_total",
			Help:      "Tentativas de abertura do pool por resultado.",
		},
		[]string{"result"},
	)

	watchlistGroups = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "crm_cri",
			Subsystem: "watchlist",
			Name:      "groups",
			Help:      "Quantidade de grupos econômicos por status de watchlist.",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		queryDuration,
		queryErrors,
		connectionAttempts,
		watchlistGroups,
	)
}

// Handler expõe o registry no formato do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordQuery(op, backend string, duration time.Duration, err error) {
	queryDuration.WithLabelValues(op, backend).Observe(duration.Seconds())
	if err != nil {
		queryErrors.WithLabelValues(op, backend).Inc()
	}
}

func RecordConnectionAttempt(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	connectionAttempts.WithLabelValues(result).Inc()
}

func SetWatchlistGroups(status string, count int64) {
	watchlistGroups.WithLabelValues(status).Set(float64(count))
}
