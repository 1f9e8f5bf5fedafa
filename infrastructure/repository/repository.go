// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/duarte550/crmCRIback/infrastructure/database"
)

// Identificadores do schema crm_cri, iguais nos dois backends. As colunas
// camelCase são lidas com alias snake_case, que é a chave usada na decodificação.
const (
	dateLayout = "2006-01-02"

	economicGroupsTable     = "EconomicGroups"
	operationsTable         = "Operations"
	titulosTable            = "Titulos"
	timelineEventsTable     = "TimelineEvents"
	propertyGuaranteesTable = "PropertyGuarantees"
	reviewsTable            = "Reviews"
	visitsTable             = "Visits"
	rulesTable              = "Rules"
	tasksTable              = "Tasks"
	insurancesTable         = "Insurances"
	appraisalsTable         = "Appraisals"
)

// table qualifica name com o schema do backend (DATABASE_SCHEMA)
func table(conn database.Executor, name string) string {
	return conn.Dialect().Table(name)
}

// queryInto constrói a consulta, executa e converte o resultado em out
func queryInto(ctx context.Context, conn database.Executor, op string, query squirrel.Sqlizer, out interface{}) error {
	statement, args, err := query.ToSql()
	if err != nil {
		return errors.Wrapf(err, "erro ao construir a query %s", op)
	}

	records, err := conn.Query(ctx, op, statement, args...)
	if err != nil {
		return err
	}

	return database.Decode(records, out)
}

// queryFirst é como queryInto para uma única linha; devolve false se não houver linhas
func queryFirst(ctx context.Context, conn database.Executor, op string, query squirrel.Sqlizer, out interface{}) (bool, error) {
	statement, args, err := query.ToSql()
	if err != nil {
		return false, errors.Wrapf(err, "erro ao construir a query %s", op)
	}

	records, err := conn.Query(ctx, op, statement, args...)
	if err != nil {
		return false, err
	}

	if len(records) == 0 {
		return false, nil
	}

	return true, database.Decode(records[0], out)
}

func execBuilt(ctx context.Context, conn database.Executor, op string, query squirrel.Sqlizer) (int64, error) {
	statement, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao construir a query %s", op)
	}

	return conn.Exec(ctx, op, statement, args...)
}
