package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

// EventSourceRepository lê cada fonte da agenda já filtrada a partir de uma data
type EventSourceRepository interface {
	UpcomingReviews(ctx context.Context, from time.Time) ([]domain.EventRow, error)
	UpcomingVisits(ctx context.Context, from time.Time) ([]domain.EventRow, error)
	UpcomingRules(ctx context.Context, from time.Time) ([]domain.EventRow, error)
	PendingTasks(ctx context.Context, from time.Time) ([]domain.EventRow, error)
}

type eventSourceRepository struct {
	conn database.Executor
}

func NewEventSourceRepository(conn database.Executor) EventSourceRepository {
	return &eventSourceRepository{
		conn: conn,
	}
}

func (r *eventSourceRepository) UpcomingReviews(ctx context.Context, from time.Time) ([]domain.EventRow, error) {
	query := squirrel.
		Select("r.id", "r.nextReviewDate AS date", "g.name AS group_name", "g.id AS group_id").
		From(table(r.conn, reviewsTable) + " r").
		Join(table(r.conn, economicGroupsTable) + " g ON r.groupId = g.id").
		Where(squirrel.GtOrEq{"r.nextReviewDate": from.Format(dateLayout)}).
		OrderBy("r.nextReviewDate ASC")

	return r.rows(ctx, "agenda.revisoes", query)
}

func (r *eventSourceRepository) UpcomingVisits(ctx context.Context, from time.Time) ([]domain.EventRow, error) {
	query := squirrel.
		Select("v.id", "v.nextVisitDate AS date", "g.name AS group_name", "g.id AS group_id").
		From(table(r.conn, visitsTable) + " v").
		Join(table(r.conn, economicGroupsTable) + " g ON v.groupId = g.id").
		Where(squirrel.GtOrEq{"v.nextVisitDate": from.Format(dateLayout)}).
		OrderBy("v.nextVisitDate ASC")

	return r.rows(ctx, "agenda.visitas", query)
}

func (r *eventSourceRepository) UpcomingRules(ctx context.Context, from time.Time) ([]domain.EventRow, error) {
	query := squirrel.
		Select("id", "nextExecution AS date", "name AS title").
		From(table(r.conn, rulesTable)).
		Where(squirrel.GtOrEq{"nextExecution": from.Format(dateLayout)}).
		OrderBy("nextExecution ASC")

	return r.rows(ctx, "agenda.regras", query)
}

func (r *eventSourceRepository) PendingTasks(ctx context.Context, from time.Time) ([]domain.EventRow, error) {
	query := squirrel.
		Select("t.id", "t.date", "t.title", "g.name AS group_name", "g.id AS group_id").
		From(table(r.conn, tasksTable) + " t").
		Join(table(r.conn, economicGroupsTable) + " g ON t.groupId = g.id").
		Where(squirrel.GtOrEq{"t.date": from.Format(dateLayout)}).
		Where(squirrel.Eq{"t.status": domain.TaskStatusPending}).
		OrderBy("t.date ASC")

	return r.rows(ctx, "agenda.tarefas", query)
}

func (r *eventSourceRepository) rows(ctx context.Context, op string, query squirrel.Sqlizer) ([]domain.EventRow, error) {
	rows := make([]domain.EventRow, 0)
	if err := queryInto(ctx, r.conn, op, query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
