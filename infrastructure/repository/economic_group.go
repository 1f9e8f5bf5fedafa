package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

var economicGroupColumns = []string{"id", "name", "description", "currentVolume AS current_volume", "watchlistStatus AS watchlist_status"}

type EconomicGroupRepository interface {
	List(ctx context.Context) ([]domain.EconomicGroup, error)
	GetByID(ctx context.Context, groupID int64) (*domain.EconomicGroup, error)
	ListOperationRows(ctx context.Context, groupID int64) ([]domain.OperationRow, error)
	ListPropertyGuarantees(ctx context.Context, groupID int64) ([]domain.PropertyGuarantee, error)
	VolumeByRating(ctx context.Context) ([]domain.RatingVolume, error)
}

type economicGroupRepository struct {
	conn database.Executor
}

func NewEconomicGroupRepository(conn database.Executor) EconomicGroupRepository {
	return &economicGroupRepository{
		conn: conn,
	}
}

func (r *economicGroupRepository) List(ctx context.Context) ([]domain.EconomicGroup, error) {
	query := squirrel.
		Select(economicGroupColumns...).
		From(table(r.conn, economicGroupsTable)).
		OrderBy("name")

	groups := make([]domain.EconomicGroup, 0)
	if err := queryInto(ctx, r.conn, "grupos.listar", query, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// GetByID devolve nil quando o grupo não existe
func (r *economicGroupRepository) GetByID(ctx context.Context, groupID int64) (*domain.EconomicGroup, error) {
	query := squirrel.
		Select(economicGroupColumns...).
		From(table(r.conn, economicGroupsTable)).
		Where(squirrel.Eq{"id": groupID})

	group := &domain.EconomicGroup{}
	found, err := queryFirst(ctx, r.conn, "grupos.buscar", query, group)
	if err != nil || !found {
		return nil, err
	}

	return group, nil
}

// ListOperationRows devolve o LEFT JOIN plano de operações e títulos do grupo,
// com as linhas de uma mesma operação na ordem dos títulos
func (r *economicGroupRepository) ListOperationRows(ctx context.Context, groupID int64) ([]domain.OperationRow, error) {
	query := squirrel.
		Select(
			"o.id",
			"o.groupId AS group_id",
			"o.description",
			"o.volume",
			"o.rating",
			"o.dueDate AS due_date",
			"o.nextPmt AS next_pmt",
			"o.guarantees",
			"t.id AS titulo_id",
			"t.operationId AS titulo_operation_id",
			"t.codigo_cetip",
			"t.indexador",
			"t.taxa",
			"t.rating AS titulo_rating",
			"t.vencimento",
			"t.nextPmt AS titulo_next_pmt",
			"t.securitizadora",
			"t.agente_fiduciario",
			"t.volume_total",
		).
		From(table(r.conn, operationsTable)+" o").
		LeftJoin(table(r.conn, titulosTable)+" t ON o.id = t.operationId").
		Where(squirrel.Eq{"o.groupId": groupID}).
		OrderBy("o.dueDate DESC", "o.id", "t.id")

	rows := make([]domain.OperationRow, 0)
	if err := queryInto(ctx, r.conn, "operacoes.listar_por_grupo", query, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *economicGroupRepository) ListPropertyGuarantees(ctx context.Context, groupID int64) ([]domain.PropertyGuarantee, error) {
	query := squirrel.
		Select("id", "groupId AS group_id", "description", "registration", "location", "value").
		From(table(r.conn, propertyGuaranteesTable)).
		Where(squirrel.Eq{"groupId": groupID}).
		OrderBy("id")

	properties := make([]domain.PropertyGuarantee, 0)
	if err := queryInto(ctx, r.conn, "garantias.listar_por_grupo", query, &properties); err != nil {
		return nil, err
	}

	return properties, nil
}

func (r *economicGroupRepository) VolumeByRating(ctx context.Context) ([]domain.RatingVolume, error) {
	query := squirrel.
		Select("rating", "SUM(volume) AS total_volume").
		From(table(r.conn, operationsTable)).
		GroupBy("rating").
		OrderBy("total_volume DESC")

	volumes := make([]domain.RatingVolume, 0)
	if err := queryInto(ctx, r.conn, "relatorios.volume_por_rating", query, &volumes); err != nil {
		return nil, err
	}

	return volumes, nil
}
