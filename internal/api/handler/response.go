package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/pkg/apiErrors"
	"github.com/duarte550/crmCRIback/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever resposta")
	}
}

// decodeJSON lê o corpo da requisição em dst; responde 400 e devolve false quando o JSON é inválido
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body.", nil)
		return false
	}
	return true
}

// pathID lê o parâmetro :id da rota; responde 400 e devolve false quando não é um inteiro positivo
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "id must be a positive integer.", map[string]string{"field": "id"})
		return 0, false
	}
	return id, true
}

// respondError registra o erro com o contexto da requisição e traduz para o status HTTP
func respondError(w http.ResponseWriter, r *http.Request, err error, serverMessage string) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path)

	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &notFoundErr):
		logger.Warn("Requisição recusada")
	default:
		logger.Error(serverMessage)
	}

	apiErrors.WriteDomainError(w, err, serverMessage)
}
