package database

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/pkg/metrics"
)

const defaultQueryTimeout = 15 * time.Second

// Record é uma linha plana de resultado: nome da coluna (minúsculo) para valor
type Record map[string]interface{}

// Executor executa instruções parametrizadas e devolve sempre uma lista de
// Records, independente do formato nativo do driver. op descreve a intenção da
// consulta e é o único dado que acompanha o erro devolvido ao chamador.
type Executor interface {
	Query(ctx context.Context, op, statement string, args ...interface{}) ([]Record, error)
	Exec(ctx context.Context, op, statement string, args ...interface{}) (int64, error)
	Dialect() Dialect
}

// TxExecutor é um Executor capaz de abrir transações nativas
type TxExecutor interface {
	Executor
	RunInTransaction(ctx context.Context, op string, fn func(Executor) error) error
}

type SQLExecutor struct {
	conns   Acquirer
	dialect Dialect
	timeout time.Duration
}

func NewExecutor(conns Acquirer, queryTimeout time.Duration) *SQLExecutor {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}

	return &SQLExecutor{
		conns:   conns,
		dialect: conns.Dialect(),
		timeout: queryTimeout,
	}
}

func (e *SQLExecutor) Dialect() Dialect {
	return e.dialect
}

func (e *SQLExecutor) Query(ctx context.Context, op, statement string, args ...interface{}) ([]Record, error) {
	db, err := e.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return e.query(ctx, db, op, statement, args...)
}

func (e *SQLExecutor) Exec(ctx context.Context, op, statement string, args ...interface{}) (int64, error) {
	db, err := e.conns.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	return e.exec(ctx, db, op, statement, args...)
}

// RunInTransaction executa fn dentro de uma transação nativa.
// Se fn falhar a transação é desfeita e o erro de fn é devolvido como está;
// se o próprio rollback falhar o retorno é um TransactionError sem rollback.
func (e *SQLExecutor) RunInTransaction(ctx context.Context, op string, fn func(Executor) error) error {
	if !e.dialect.NativeTransactions {
		return domain.ErrTransactionsUnsupported
	}

	db, err := e.conns.Acquire(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return e.fail(op+".begin", "BEGIN", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&txExecutor{parent: e, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).WithField("op", op).Error("Erro ao desfazer transação")
			return &domain.TransactionError{Op: op, Err: errors.Wrap(err, rbErr.Error()), RolledBack: false}
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).WithField("op", op).Error("Erro ao confirmar transação")
		return &domain.TransactionError{Op: op, Err: err, RolledBack: false}
	}

	return nil
}

func (e *SQLExecutor) query(ctx context.Context, q sqlx.QueryerContext, op, statement string, args ...interface{}) ([]Record, error) {
	bound, err := e.dialect.Rebind(statement)
	if err != nil {
		return nil, e.fail(op, statement, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	rows, err := q.QueryxContext(ctx, bound, args...)
	if err != nil {
		metrics.RecordQuery(op, e.dialect.Name, time.Since(start), err)
		return nil, e.fail(op, bound, err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			metrics.RecordQuery(op, e.dialect.Name, time.Since(start), err)
			return nil, e.fail(op, bound, err)
		}
		records = append(records, normalize(row))
	}

	if err := rows.Err(); err != nil {
		metrics.RecordQuery(op, e.dialect.Name, time.Since(start), err)
		return nil, e.fail(op, bound, err)
	}

	metrics.RecordQuery(op, e.dialect.Name, time.Since(start), nil)
	return records, nil
}

func (e *SQLExecutor) exec(ctx context.Context, x sqlx.ExecerContext, op, statement string, args ...interface{}) (int64, error) {
	bound, err := e.dialect.Rebind(statement)
	if err != nil {
		return 0, e.fail(op, statement, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	result, err := x.ExecContext(ctx, bound, args...)
	metrics.RecordQuery(op, e.dialect.Name, time.Since(start), err)
	if err != nil {
		return 0, e.fail(op, bound, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		// Nem todo driver informa linhas afetadas
		return -1, nil
	}

	return affected, nil
}

// fail registra os detalhes no log do servidor e devolve um QueryError genérico
func (e *SQLExecutor) fail(op, statement string, err error) error {
	logrus.WithFields(logrus.Fields{
		"op":        op,
		"backend":   e.dialect.Name,
		"statement": compact(statement),
	}).WithError(err).Error("Erro ao executar consulta")

	return &domain.QueryError{Op: op, Err: err}
}

type txExecutor struct {
	parent *SQLExecutor
	tx     *sqlx.Tx
}

func (t *txExecutor) Query(ctx context.Context, op, statement string, args ...interface{}) ([]Record, error) {
	return t.parent.query(ctx, t.tx, op, statement, args...)
}

func (t *txExecutor) Exec(ctx context.Context, op, statement string, args ...interface{}) (int64, error) {
	return t.parent.exec(ctx, t.tx, op, statement, args...)
}

func (t *txExecutor) Dialect() Dialect {
	return t.parent.dialect
}

func normalize(row map[string]interface{}) Record {
	record := make(Record, len(row))
	for key, value := range row {
		if b, ok := value.([]byte); ok {
			value = string(b)
		}
		record[strings.ToLower(key)] = value
	}
	return record
}

func compact(statement string) string {
	return strings.Join(strings.Fields(statement), " ")
}
