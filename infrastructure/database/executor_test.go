package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/domain"
)

func newTestExecutor(t *testing.T, backend string) (*SQLExecutor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	manager, err := NewManager(config.Database{Backend: backend}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			return db, nil
		},
	))
	require.NoError(t, err)

	return NewExecutor(manager, 0), mock
}

func TestSQLExecutor_QueryNormalizesRecords(t *testing.T) {
	executor, mock := newTestExecutor(t, config.BackendPostgres)

	rows := sqlmock.NewRows([]string{"ID", "Name", "current_volume", "description"}).
		AddRow(int64(7), "Grupo Alfa", []byte("1500.50"), nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM crm_cri.EconomicGroups WHERE id = $1 AND name = $2`)).
		WithArgs(7, "Grupo Alfa").
		WillReturnRows(rows)

	records, err := executor.Query(context.Background(), "grupos.buscar",
		`SELECT id, name FROM crm_cri.EconomicGroups WHERE id = ? AND name = ?`, 7, "Grupo Alfa")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, int64(7), records[0]["id"])
	assert.Equal(t, "Grupo Alfa", records[0]["name"])
	assert.Equal(t, "1500.50", records[0]["current_volume"])
	assert.Nil(t, records[0]["description"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLExecutor_QueryReturnsEmptySlice(t *testing.T) {
	executor, mock := newTestExecutor(t, config.BackendDatabricks)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM crm_cri.Rules WHERE priority = ?`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := executor.Query(context.Background(), "regras.listar",
		`SELECT id FROM crm_cri.Rules WHERE priority = ?`, 1)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLExecutor_QueryErrorHidesStatement(t *testing.T) {
	executor, mock := newTestExecutor(t, config.BackendPostgres)

	mock.ExpectQuery(".*").WillReturnError(errors.New("syntax error at or near FROM"))

	_, err := executor.Query(context.Background(), "grupos.listar", `SELECT * FROM crm_cri.EconomicGroups`)

	var queryErr *domain.QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "grupos.listar", queryErr.Op)
	assert.NotContains(t, err.Error(), "crm_cri.EconomicGroups")
}

func TestSQLExecutor_ExecReturnsAffectedRows(t *testing.T) {
	executor, mock := newTestExecutor(t, config.BackendPostgres)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE crm_cri.EconomicGroups SET watchlistStatus = $1 WHERE id = $2`)).
		WithArgs("critical", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := executor.Exec(context.Background(), "grupos.status",
		`UPDATE crm_cri.EconomicGroups SET watchlistStatus = ? WHERE id = ?`, "critical", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLExecutor_RunInTransactionCommits(t *testing.T) {
	executor, mock := newTestExecutor(t, config.BackendPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE crm_cri.EconomicGroups SET watchlistStatus = $1 WHERE id = $2`)).
		WithArgs("attention", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := executor.RunInTransaction(context.Background(), "watchlist", func(tx Executor) error {
		_, err := tx.Exec(context.Background(), "grupos.status",
			`UPDATE crm_cri.EconomicGroups SET watchlistStatus = ? WHERE id = ?`, "attention", 1)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLExecutor_RunInTransactionRollsBackOnError(t *testing.T) {
	executor, mock := newTestExecutor(t, config.BackendPostgres)

	insertErr := errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := executor.RunInTransaction(context.Background(), "watchlist", func(tx Executor) error {
		if _, err := tx.Exec(context.Background(), "grupos.status", `UPDATE x SET y = ?`, 1); err != nil {
			return err
		}
		return insertErr
	})
	assert.ErrorIs(t, err, insertErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLExecutor_RunInTransactionUnsupported(t *testing.T) {
	executor, _ := newTestExecutor(t, config.BackendDatabricks)

	called := false
	err := executor.RunInTransaction(context.Background(), "watchlist", func(tx Executor) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrTransactionsUnsupported)
	assert.False(t, called)
}

func TestSQLExecutor_ConnectionFailure(t *testing.T) {
	manager, err := NewManager(config.Database{Backend: config.BackendPostgres}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			return nil, errors.New("no route to host")
		},
	))
	require.NoError(t, err)

	_, err = NewExecutor(manager, 0).Query(context.Background(), "grupos.listar", `SELECT 1`)

	var connErr *domain.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}
