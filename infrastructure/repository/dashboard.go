package repository

import (
	"context"
	"time"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/internal/domain"
)

// Os quatro agregados saem em uma única ida ao banco
func dashboardTotalsQuery(dialect database.Dialect) string {
	return `
	SELECT
		(SELECT COUNT(*) FROM ` + dialect.Table(operationsTable) + `) AS total_operations,
		(SELECT COUNT(*) FROM ` + dialect.Table(tasksTable) + ` WHERE status = ? AND date < ?) AS overdue_tasks,
		(SELECT SUM(currentVolume) FROM ` + dialect.Table(economicGroupsTable) + ` WHERE watchlistStatus = ?) AS healthy_volume,
		(SELECT SUM(currentVolume) FROM ` + dialect.Table(economicGroupsTable) + ` WHERE watchlistStatus IN (?, ?, ?)) AS watchlist_volume
`
}

type DashboardRepository interface {
	Totals(ctx context.Context, today time.Time) (*domain.DashboardTotals, error)
}

type dashboardRepository struct {
	conn database.Executor
}

func NewDashboardRepository(conn database.Executor) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) Totals(ctx context.Context, today time.Time) (*domain.DashboardTotals, error) {
	records, err := r.conn.Query(ctx, "dashboard.totais", dashboardTotalsQuery(r.conn.Dialect()),
		domain.TaskStatusPending,
		today.Format(dateLayout),
		string(domain.WatchlistStatusOK),
		string(domain.WatchlistStatusAttention),
		string(domain.WatchlistStatusProblem),
		string(domain.WatchlistStatusCritical),
	)
	if err != nil {
		return nil, err
	}

	totals := &domain.DashboardTotals{}
	if len(records) == 0 {
		return totals, nil
	}

	if err := database.Decode(records[0], totals); err != nil {
		return nil, err
	}

	return totals, nil
}
