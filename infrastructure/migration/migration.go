// Package migration aplica o schema crm_cri no backend transacional (Postgres).
// O backend analítico tem o schema gerenciado fora da aplicação.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/duarte550/crmCRIback/pkg/log"
)

// Schema é o schema criado pelas migrações embutidas
const Schema = "crm_cri"

//go:embed sql/*.sql
var migrations embed.FS

// Source devolve as migrações embutidas no binário
func Source() (source.Driver, error) {
	return iofs.New(migrations, "sql")
}

type Migrator struct {
	m *migrate.Migrate
}

func New(db *sql.DB) (*Migrator, error) {
	src, err := Source()
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações embutidas: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrador: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up aplica todas as migrações pendentes; não ter nada a aplicar não é erro
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	mg.logVersion()
	return nil
}

// Down desfaz as últimas steps migrações
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps deve ser positivo, recebido %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	mg.logVersion()
	return nil
}

func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	return errors.Join(sourceErr, dbErr)
}

func (mg *Migrator) logVersion() {
	version, dirty, err := mg.Version()
	if err != nil {
		log.L.WithError(err).Warn("Não foi possível ler a versão do schema")
		return
	}
	log.L.WithFields(log.Fields{"version": version, "dirty": dirty}).Info("Schema na versão")
}
