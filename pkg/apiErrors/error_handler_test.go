package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duarte550/crmCRIback/internal/domain"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantJSON      bool
		wantBody      string
		wantNotInBody string
	}{
		{
			name:       "validação vira 400 com msg",
			err:        domain.NewValidationError("title", "Please provide all required fields."),
			wantStatus: http.StatusBadRequest,
			wantJSON:   true,
			wantBody:   `"msg":"Please provide all required fields."`,
		},
		{
			name:       "não encontrado vira 404",
			err:        &domain.NotFoundError{Entity: "economic group", ID: int64(9)},
			wantStatus: http.StatusNotFound,
			wantJSON:   true,
			wantBody:   `"msg":"economic group 9 not found"`,
		},
		{
			name:          "erro de consulta não vaza detalhes",
			err:           &domain.QueryError{Op: "grupos.listar", Err: errors.New(`relation "crm_cri.EconomicGroups" does not exist`)},
			wantStatus:    http.StatusInternalServerError,
			wantBody:      "Server error while fetching economic groups",
			wantNotInBody: "crm_cri",
		},
		{
			name:          "erro de conexão envolvido",
			err:           pkgerrors.Wrap(&domain.ConnectionError{Err: errors.New("password authentication failed")}, "acquire"),
			wantStatus:    http.StatusInternalServerError,
			wantBody:      "Server error while fetching economic groups",
			wantNotInBody: "password",
		},
		{
			name:       "erro de transação",
			err:        &domain.TransactionError{Op: "watchlist.definir_status", Err: errors.New("boom"), RolledBack: true},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Server error while fetching economic groups",
		},
		{
			name:       "erro desconhecido",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Server error while fetching economic groups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteDomainError(rec, tt.err, "Server error while fetching economic groups")

			require.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.wantBody)
			if tt.wantNotInBody != "" {
				assert.NotContains(t, body, tt.wantNotInBody)
			}
			if tt.wantJSON {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			} else {
				assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
			}
		})
	}
}
