package database

import (
	"context"
	"sync"
	"time"

	_ "github.com/databricks/databricks-sql-go"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/pkg/metrics"
)

const (
	connectKey            = "connect"
	defaultConnectTimeout = 10 * time.Second
)

// Opener abre e valida um pool para o dialeto informado
type Opener func(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error)

// Acquirer entrega o pool compartilhado do processo
type Acquirer interface {
	Acquire(ctx context.Context) (*sqlx.DB, error)
	Dialect() Dialect
}

// Manager é o único dono do pool de conexões do processo.
// É criado uma vez no início do processo e fechado no desligamento.
// A primeira chamada a Acquire abre o pool; chamadas concorrentes durante a
// abertura aguardam a mesma tentativa. Se a abertura falhar nada fica
// memorizado e a próxima chamada tenta do zero.
type Manager struct {
	cfg     config.Database
	dialect Dialect
	open    Opener

	group singleflight.Group
	mu    sync.RWMutex
	db    *sqlx.DB
}

type Option func(*Manager)

// WithOpener substitui a abertura padrão do pool (usado em testes)
func WithOpener(open Opener) Option {
	return func(m *Manager) {
		m.open = open
	}
}

func NewManager(cfg config.Database, opts ...Option) (*Manager, error) {
	dialect, err := DialectFor(cfg.Backend)
	if err != nil {
		return nil, err
	}
	dialect.Schema = cfg.Schema

	m := &Manager{
		cfg:     cfg,
		dialect: dialect,
		open:    openPool,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Manager) Dialect() Dialect {
	return m.dialect
}

func (m *Manager) Acquire(ctx context.Context) (*sqlx.DB, error) {
	if db := m.current(); db != nil {
		return db, nil
	}

	ch := m.group.DoChan(connectKey, func() (interface{}, error) {
		if db := m.current(); db != nil {
			return db, nil
		}

		// A tentativa é compartilhada: o cancelamento de um chamador não derruba os demais
		connectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.connectTimeout())
		defer cancel()

		db, err := m.open(connectCtx, m.cfg, m.dialect)
		metrics.RecordConnectionAttempt(err)
		if err != nil {
			logrus.WithError(err).WithField("backend", m.dialect.Name).Error("Falha ao conectar ao banco de dados")
			return nil, &domain.ConnectionError{Err: err}
		}

		m.mu.Lock()
		m.db = db
		m.mu.Unlock()

		logrus.WithField("backend", m.dialect.Name).Info("Conexão com o banco de dados estabelecida")
		return db, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sqlx.DB), nil
	case <-ctx.Done():
		return nil, &domain.ConnectionError{Err: ctx.Err()}
	}
}

// Close fecha o pool; um Acquire posterior abre um novo
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Manager) current() *sqlx.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

func (m *Manager) connectTimeout() time.Duration {
	if m.cfg.ConnectTimeout > 0 {
		return m.cfg.ConnectTimeout
	}
	return defaultConnectTimeout
}

func openPool(ctx context.Context, cfg config.Database, dialect Dialect) (*sqlx.DB, error) {
	db, err := sqlx.Open(dialect.DriverName, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir pool")
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão")
	}

	return db, nil
}
