package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTransactionsUnsupported = errors.New("backend does not support native transactions")
	ErrNoRowReturned           = errors.New("statement returned no row")

	// ErrInsertNotReread marca um INSERT já gravado cuja releitura falhou
	ErrInsertNotReread = errors.New("row inserted but could not be read back")
)

// NewRereadError indica que a linha foi gravada e só a releitura falhou
func NewRereadError(op string, err error) *QueryError {
	return &QueryError{Op: op, Err: errors.Join(ErrInsertNotReread, err)}
}

// ValidationError indica um campo obrigatório ausente ou inválido
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indica que a entidade referenciada não existe
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ConnectionError indica que o banco não pôde ser alcançado ou autenticado
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError carrega apenas o nome da operação; o texto SQL fica no log do servidor
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// TransactionError indica falha parcial em uma escrita composta.
// RolledBack informa se a compensação deixou o estado anterior intacto.
type TransactionError struct {
	Op         string
	Err        error
	RolledBack bool
}

func (e *TransactionError) Error() string {
	if e.RolledBack {
		return fmt.Sprintf("transaction %s rolled back: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transaction %s failed without rollback: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
