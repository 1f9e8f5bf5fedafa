package repository

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

var taskColumns = []string{"id", "groupId AS group_id", "date", "title", "priority", "type", "responsible", "status"}

type TaskRepository interface {
	Insert(ctx context.Context, task domain.Task) (*domain.Task, error)
}

type taskRepository struct {
	conn database.Executor
}

func NewTaskRepository(conn database.Executor) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) Insert(ctx context.Context, task domain.Task) (*domain.Task, error) {
	insert := squirrel.
		Insert(table(r.conn, tasksTable)).
		Columns("date", "groupId", "priority", "type", "responsible", "title", "status").
		Values(
			task.Date.Format(dateLayout),
			task.GroupID,
			task.Priority,
			task.Type,
			task.Responsible,
			task.Title,
			task.Status,
		)

	created := &domain.Task{}

	if r.conn.Dialect().ReturningInserts {
		insert = insert.Suffix("RETURNING " + strings.Join(taskColumns, ", "))

		found, err := queryFirst(ctx, r.conn, "tarefas.inserir", insert, created)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.QueryError{Op: "tarefas.inserir", Err: domain.ErrNoRowReturned}
		}
		return created, nil
	}

	if _, err := execBuilt(ctx, r.conn, "tarefas.inserir", insert); err != nil {
		return nil, err
	}

	latest := squirrel.
		Select(taskColumns...).
		From(table(r.conn, tasksTable)).
		Where(squirrel.Eq{"groupId": task.GroupID, "title": task.Title}).
		OrderBy("id DESC").
		Limit(1)

	found, err := queryFirst(ctx, r.conn, "tarefas.reler_inserida", latest, created)
	if err != nil {
		return nil, domain.NewRereadError("tarefas.reler_inserida", err)
	}
	if !found {
		return nil, domain.NewRereadError("tarefas.reler_inserida", domain.ErrNoRowReturned)
	}

	return created, nil
}
