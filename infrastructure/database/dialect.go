package database

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/duarte550/crmCRIback/internal/config"
)

// Dialect isola o que muda entre o backend transacional e o analítico.
// Os repositórios escrevem sempre com placeholders "?"; o executor reescreve
// para o formato do backend antes de enviar a consulta.
// Schema qualifica os nomes de tabela (DATABASE_SCHEMA).
type Dialect struct {
	Name               string
	Schema             string
	DriverName         string
	Placeholder        squirrel.PlaceholderFormat
	NativeTransactions bool
	ReturningInserts   bool
}

var (
	Postgres = Dialect{
		Name:               config.BackendPostgres,
		DriverName:         "postgres",
		Placeholder:        squirrel.Dollar,
		NativeTransactions: true,
		ReturningInserts:   true,
	}

	Databricks = Dialect{
		Name:               config.BackendDatabricks,
		DriverName:         "databricks",
		Placeholder:        squirrel.Question,
		NativeTransactions: false,
		ReturningInserts:   false,
	}
)

func DialectFor(backend string) (Dialect, error) {
	switch strings.ToLower(backend) {
	case config.BackendPostgres:
		return Postgres, nil
	case config.BackendDatabricks:
		return Databricks, nil
	}
	return Dialect{}, fmt.Errorf("backend de banco desconhecido: %q", backend)
}

// Rebind converte placeholders "?" para o formato do backend
func (d Dialect) Rebind(statement string) (string, error) {
	if d.Placeholder == nil {
		return statement, nil
	}
	return d.Placeholder.ReplacePlaceholders(statement)
}

// Table qualifica name com o schema configurado
func (d Dialect) Table(name string) string {
	if d.Schema == "" {
		return name
	}
	return d.Schema + "." + name
}
