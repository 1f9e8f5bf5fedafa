package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/duarte550/crmCRIback/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao frontend
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recurso (4000-4999)
	ErrNotFound = "RES_001" // Entidade não encontrada

	// Erros do servidor (5000-5999)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation  = "SRV_002" // Erro de operação de banco de dados
	ErrDatabaseConnection = "SRV_003" // Banco de dados indisponível
	ErrTransaction        = "SRV_004" // Escrita composta desfeita
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrDatabaseConnection:  http.StatusInternalServerError,
	ErrTransaction:         http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"msg"`               // Mensagem descritiva
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP.
// Erros 4xx levam o corpo JSON; erros 5xx respondem apenas com a mensagem em texto.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		http.Error(w, message, status)
		return
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}

// WriteDomainError traduz os erros tipados do domínio para o status HTTP.
// serverMessage é a descrição curta usada nas respostas 500; o detalhe do
// erro original nunca vai para o corpo da resposta.
func WriteDomainError(w http.ResponseWriter, err error, serverMessage string) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		connErr       *domain.ConnectionError
		txErr         *domain.TransactionError
		queryErr      *domain.QueryError
	)

	switch {
	case errors.As(err, &validationErr):
		var details any
		if validationErr.Field != "" {
			details = map[string]string{"field": validationErr.Field}
		}
		WriteError(w, ErrMissingRequiredData, validationErr.Message, details)
	case errors.As(err, &notFoundErr):
		WriteError(w, ErrNotFound, notFoundErr.Error(), nil)
	case errors.As(err, &connErr):
		WriteError(w, ErrDatabaseConnection, serverMessage, nil)
	case errors.As(err, &txErr):
		WriteError(w, ErrTransaction, serverMessage, nil)
	case errors.As(err, &queryErr):
		WriteError(w, ErrDatabaseOperation, serverMessage, nil)
	default:
		WriteError(w, ErrInternalServer, serverMessage, nil)
	}
}
