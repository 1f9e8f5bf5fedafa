package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

type WatchlistRepository interface {
	// CurrentStatus devolve found=false quando o grupo não existe
	CurrentStatus(ctx context.Context, groupID int64) (status domain.WatchlistStatus, found bool, err error)
	UpdateStatus(ctx context.Context, groupID int64, status domain.WatchlistStatus) (int64, error)
	ListGroups(ctx context.Context) ([]domain.WatchlistGroup, error)
	Summary(ctx context.Context) (*domain.WatchlistSummary, error)
	WithExecutor(conn database.Executor) WatchlistRepository
}

type watchlistRepository struct {
	conn database.Executor
}

func NewWatchlistRepository(conn database.Executor) WatchlistRepository {
	return &watchlistRepository{
		conn: conn,
	}
}

func (r *watchlistRepository) WithExecutor(conn database.Executor) WatchlistRepository {
	return &watchlistRepository{
		conn: conn,
	}
}

func (r *watchlistRepository) CurrentStatus(ctx context.Context, groupID int64) (domain.WatchlistStatus, bool, error) {
	query := squirrel.
		Select("watchlistStatus AS watchlist_status").
		From(table(r.conn, economicGroupsTable)).
		Where(squirrel.Eq{"id": groupID})

	var row struct {
		Status domain.WatchlistStatus `mapstructure:"watchlist_status"`
	}

	found, err := queryFirst(ctx, r.conn, "watchlist.status_atual", query, &row)
	if err != nil || !found {
		return "", false, err
	}

	return row.Status, true, nil
}

func (r *watchlistRepository) UpdateStatus(ctx context.Context, groupID int64, status domain.WatchlistStatus) (int64, error) {
	update := squirrel.
		Update(table(r.conn, economicGroupsTable)).
		Set("watchlistStatus", string(status)).
		Where(squirrel.Eq{"id": groupID})

	return execBuilt(ctx, r.conn, "watchlist.atualizar_status", update)
}

func (r *watchlistRepository) ListGroups(ctx context.Context) ([]domain.WatchlistGroup, error) {
	statuses := make([]string, 0, len(domain.WatchlistStatuses))
	for _, status := range domain.WatchlistStatuses {
		statuses = append(statuses, string(status))
	}

	query := squirrel.
		Select("id", "name", "watchlistStatus AS watchlist_status", "currentVolume AS current_volume").
		From(table(r.conn, economicGroupsTable)).
		Where(squirrel.Eq{"watchlistStatus": statuses}).
		OrderBy("name")

	groups := make([]domain.WatchlistGroup, 0)
	if err := queryInto(ctx, r.conn, "watchlist.listar", query, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *watchlistRepository) Summary(ctx context.Context) (*domain.WatchlistSummary, error) {
	query := squirrel.
		Select(
			"COALESCE(SUM(CASE WHEN watchlistStatus = 'ok' THEN 1 ELSE 0 END), 0) AS ok",
			"COALESCE(SUM(CASE WHEN watchlistStatus IN ('attention', 'problem') THEN 1 ELSE 0 END), 0) AS attention",
			"COALESCE(SUM(CASE WHEN watchlistStatus = 'critical' THEN 1 ELSE 0 END), 0) AS critical",
		).
		From(table(r.conn, economicGroupsTable))

	summary := &domain.WatchlistSummary{}
	if _, err := queryFirst(ctx, r.conn, "watchlist.resumo", query, summary); err != nil {
		return nil, err
	}

	return summary, nil
}
