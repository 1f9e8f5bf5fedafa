package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func TestNewManager_UnknownBackend(t *testing.T) {
	_, err := NewManager(config.Database{Backend: "oracle"})
	assert.Error(t, err)
}

func TestNewManager_DialectCarriesSchema(t *testing.T) {
	manager, err := NewManager(config.Database{Backend: config.BackendDatabricks, Schema: "crm_cri_hml"})
	require.NoError(t, err)

	assert.Equal(t, "crm_cri_hml", manager.Dialect().Schema)
	assert.Equal(t, "crm_cri_hml.EconomicGroups", manager.Dialect().Table("EconomicGroups"))
}

func TestDialect_Table(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		expected string
	}{
		{name: "com schema", schema: "crm_cri", expected: "crm_cri.TimelineEvents"},
		{name: "sem schema", schema: "", expected: "TimelineEvents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect := Postgres
			dialect.Schema = tt.schema
			assert.Equal(t, tt.expected, dialect.Table("TimelineEvents"))
		})
	}
}

func TestManager_AcquireMemoizesPool(t *testing.T) {
	db, _ := newMockDB(t)

	var calls int32
	manager, err := NewManager(config.Database{Backend: config.BackendPostgres}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			atomic.AddInt32(&calls, 1)
			return db, nil
		},
	))
	require.NoError(t, err)

	first, err := manager.Acquire(context.Background())
	require.NoError(t, err)
	second, err := manager.Acquire(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, Postgres.Name, manager.Dialect().Name)
}

func TestManager_ConcurrentAcquireSharesAttempt(t *testing.T) {
	db, _ := newMockDB(t)

	release := make(chan struct{})
	var calls int32
	manager, err := NewManager(config.Database{Backend: config.BackendPostgres}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return db, nil
		},
	))
	require.NoError(t, err)

	const callers = 20
	results := make([]*sqlx.DB, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = manager.Acquire(context.Background())
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, db, results[i])
	}
}

func TestManager_FailureClearsStateAndRetries(t *testing.T) {
	db, _ := newMockDB(t)

	var calls int32
	manager, err := NewManager(config.Database{Backend: config.BackendPostgres}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("password authentication failed")
			}
			return db, nil
		},
	))
	require.NoError(t, err)

	_, err = manager.Acquire(context.Background())
	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)

	got, err := manager.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestManager_FailurePropagatesToAllWaiters(t *testing.T) {
	release := make(chan struct{})
	manager, err := NewManager(config.Database{Backend: config.BackendPostgres}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			<-release
			return nil, errors.New("dial tcp: connection refused")
		},
	))
	require.NoError(t, err)

	const callers = 5
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = manager.Acquire(context.Background())
		}(i)
	}

	close(release)
	wg.Wait()

	for _, err := range errs {
		var connErr *domain.ConnectionError
		assert.ErrorAs(t, err, &connErr)
	}
}

func TestManager_CloseAllowsReopen(t *testing.T) {
	var calls int32
	manager, err := NewManager(config.Database{Backend: config.BackendDatabricks}, WithOpener(
		func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
			atomic.AddInt32(&calls, 1)
			db, mock, err := sqlmock.New()
			if err != nil {
				return nil, err
			}
			mock.ExpectClose()
			return sqlx.NewDb(db, "databricks"), nil
		},
	))
	require.NoError(t, err)

	_, err = manager.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())

	_, err = manager.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, Databricks.Name, manager.Dialect().Name)
}
