package repository

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

var timelineColumns = []string{"id", "groupId AS group_id", "date", "title", "summary", "fullDescription AS full_description", "responsible", "type"}

type TimelineRepository interface {
	ListByGroup(ctx context.Context, groupID int64) ([]domain.TimelineEvent, error)
	Insert(ctx context.Context, event domain.TimelineEvent) (*domain.TimelineEvent, error)
	WithExecutor(conn database.Executor) TimelineRepository
}

type timelineRepository struct {
	conn database.Executor
}

func NewTimelineRepository(conn database.Executor) TimelineRepository {
	return &timelineRepository{
		conn: conn,
	}
}

// WithExecutor devolve uma cópia do repositório que usa conn (ex.: uma transação)
func (r *timelineRepository) WithExecutor(conn database.Executor) TimelineRepository {
	return &timelineRepository{
		conn: conn,
	}
}

func (r *timelineRepository) ListByGroup(ctx context.Context, groupID int64) ([]domain.TimelineEvent, error) {
	query := squirrel.
		Select(timelineColumns...).
		From(table(r.conn, timelineEventsTable)).
		Where(squirrel.Eq{"groupId": groupID}).
		OrderBy("date DESC", "id DESC")

	events := make([]domain.TimelineEvent, 0)
	if err := queryInto(ctx, r.conn, "timeline.listar_por_grupo", query, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// Insert grava o evento e devolve a linha inserida. Sem RETURNING no backend,
// relê o evento mais recente do grupo com o mesmo tipo (maior id); se só a
// releitura falhar, o erro carrega domain.ErrInsertNotReread.
func (r *timelineRepository) Insert(ctx context.Context, event domain.TimelineEvent) (*domain.TimelineEvent, error) {
	insert := squirrel.
		Insert(table(r.conn, timelineEventsTable)).
		Columns("groupId", "date", "title", "summary", "fullDescription", "responsible", "type").
		Values(
			event.GroupID,
			event.Date.Format(dateLayout),
			event.Title,
			event.Summary,
			event.FullDescription,
			event.Responsible,
			event.Type,
		)

	created := &domain.TimelineEvent{}

	if r.conn.Dialect().ReturningInserts {
		insert = insert.Suffix("RETURNING " + strings.Join(timelineColumns, ", "))

		found, err := queryFirst(ctx, r.conn, "timeline.inserir", insert, created)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.QueryError{Op: "timeline.inserir", Err: domain.ErrNoRowReturned}
		}
		return created, nil
	}

	if _, err := execBuilt(ctx, r.conn, "timeline.inserir", insert); err != nil {
		return nil, err
	}

	latest := squirrel.
		Select(timelineColumns...).
		From(table(r.conn, timelineEventsTable)).
		Where(squirrel.Eq{"groupId": event.GroupID, "type": event.Type}).
		OrderBy("id DESC").
		Limit(1)

	found, err := queryFirst(ctx, r.conn, "timeline.reler_inserido", latest, created)
	if err != nil {
		return nil, domain.NewRereadError("timeline.reler_inserido", err)
	}
	if !found {
		return nil, domain.NewRereadError("timeline.reler_inserido", domain.ErrNoRowReturned)
	}

	return created, nil
}
