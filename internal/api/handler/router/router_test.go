package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var instrumented []string
	instrument := func(method, path string) Middleware {
		instrumented = append(instrumented, method+" "+path)
		return tag("instrument")
	}

	var gotID string
	rt := New(
		WithInstrumentation(instrument),
		WithRoutes(Route{
			Path:   "/api/economic-groups/:id/details",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID = httprouter.ParamsFromContext(r.Context()).ByName("id")
				order = append(order, "handler")
			}),
			Middlewares: []Middleware{tag("first"), tag("second")},
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/economic-groups/42/details", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", gotID)
	assert.Equal(t, []string{"instrument", "first", "second", "handler"}, order)
	assert.Equal(t, []string{"GET /api/economic-groups/:id/details"}, instrumented)
}

func TestRouter_NotFound(t *testing.T) {
	rt := New(WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
