package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

// SearchRepository recebe o padrão LIKE já escapado e envolto em "%"
type SearchRepository interface {
	SearchGroups(ctx context.Context, pattern string) ([]domain.SearchHit, error)
	SearchEvents(ctx context.Context, pattern string) ([]domain.SearchHit, error)
}

type searchRepository struct {
	conn database.Executor
}

func NewSearchRepository(conn database.Executor) SearchRepository {
	return &searchRepository{
		conn: conn,
	}
}

func (r *searchRepository) SearchGroups(ctx context.Context, pattern string) ([]domain.SearchHit, error) {
	query := squirrel.
		Select("id", "name AS title", "'Grupo Econômico' AS type", "description AS snippet", "id AS group_id").
		From(table(r.conn, economicGroupsTable)).
		Where(squirrel.Or{
			squirrel.Expr("LOWER(name) LIKE LOWER(?)", pattern),
			squirrel.Expr("LOWER(description) LIKE LOWER(?)", pattern),
		}).
		OrderBy("name")

	hits := make([]domain.SearchHit, 0)
	if err := queryInto(ctx, r.conn, "busca.grupos", query, &hits); err != nil {
		return nil, err
	}

	return hits, nil
}

func (r *searchRepository) SearchEvents(ctx context.Context, pattern string) ([]domain.SearchHit, error) {
	query := squirrel.
		Select("e.id", "e.title", "'Evento' AS type", "g.name AS snippet", "e.groupId AS group_id").
		From(table(r.conn, timelineEventsTable)+" e").
		Join(table(r.conn, economicGroupsTable)+" g ON e.groupId = g.id").
		Where(squirrel.Or{
			squirrel.Expr("LOWER(e.title) LIKE LOWER(?)", pattern),
			squirrel.Expr("LOWER(e.summary) LIKE LOWER(?)", pattern),
		}).
		OrderBy("e.date DESC", "e.id DESC")

	hits := make([]domain.SearchHit, 0)
	if err := queryInto(ctx, r.conn, "busca.eventos", query, &hits); err != nil {
		return nil, err
	}

	return hits, nil
}
