package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordQuery(t *testing.T) {
	before := testutil.ToFloat64(queryErrors.WithLabelValues("grupos.listar", "postgres"))

	RecordQuery("grupos.listar", "postgres", 12*time.Millisecond, nil)
	RecordQuery("grupos.listar", "postgres", 30*time.Millisecond, errors.New("timeout"))

	assert.Equal(t, before+1, testutil.ToFloat64(queryErrors.WithLabelValues("grupos.listar", "postgres")))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := httpRequests.WithLabelValues(http.MethodGet, "/api/dashboard", "200")
	before := testutil.ToFloat64(counter)

	RecordHTTPRequest(http.MethodGet, "/api/dashboard", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordConnectionAttempt(t *testing.T) {
	failures := connectionAttempts.WithLabelValues("failure")
	before := testutil.ToFloat64(failures)

	RecordConnectionAttempt(errors.New("dial tcp: connection refused"))
	RecordConnectionAttempt(nil)

	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestHandler(t *testing.T) {
	SetWatchlistGroups("critical", 2)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crm_cri_watchlist_groups{status="critical"} 2`)
}
