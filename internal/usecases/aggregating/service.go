package aggregating

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/duarte550/crmCRIback/infrastructure/repository"
	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/domain"
)

const defaultUpcomingLimit = 3

// Aggregator monta as visões compostas que exigem juntar várias consultas em memória
type Aggregator interface {
	// GroupDetail devolve NotFoundError quando o grupo não existe
	GroupDetail(ctx context.Context, groupID int64) (*domain.GroupDetail, error)

	// UpcomingEvents devolve os próximos eventos em ordem crescente de data; limit <= 0 não corta a lista
	UpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error)

	// EventsFeed é a agenda completa, sem limite
	EventsFeed(ctx context.Context) ([]domain.Event, error)

	DashboardMetrics(ctx context.Context) (*domain.MetricsView, error)
}

type Service struct {
	groupRepository       repository.EconomicGroupRepository
	timelineRepository    repository.TimelineRepository
	monitoringRepository  repository.MonitoringRepository
	eventSourceRepository repository.EventSourceRepository
	dashboardRepository   repository.DashboardRepository
	formatter             *VolumeFormatter
	upcomingLimit         int
	now                   func() time.Time
}

type Option func(*Service)

// WithClock substitui o relógio usado para definir "hoje"
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	cfg *config.Config,
	groupRepository repository.EconomicGroupRepository,
	timelineRepository repository.TimelineRepository,
	monitoringRepository repository.MonitoringRepository,
	eventSourceRepository repository.EventSourceRepository,
	dashboardRepository repository.DashboardRepository,
	opts ...Option,
) Aggregator {
	limit := cfg.Dashboard.UpcomingLimit
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	s := &Service{
		groupRepository:       groupRepository,
		timelineRepository:    timelineRepository,
		monitoringRepository:  monitoringRepository,
		eventSourceRepository: eventSourceRepository,
		dashboardRepository:   dashboardRepository,
		formatter:             NewVolumeFormatter(cfg.Dashboard.Locale, cfg.Dashboard.CurrencySymbol),
		upcomingLimit:         limit,
		now:                   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) GroupDetail(ctx context.Context, groupID int64) (*domain.GroupDetail, error) {
	var (
		group      *domain.EconomicGroup
		rows       []domain.OperationRow
		timeline   []domain.TimelineEvent
		properties []domain.PropertyGuarantee
		review     *domain.ReviewStatus
	)

	// As cinco consultas rodam em paralelo; a primeira falha cancela as demais
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		group, err = s.groupRepository.GetByID(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		rows, err = s.groupRepository.ListOperationRows(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		timeline, err = s.timelineRepository.ListByGroup(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		properties, err = s.groupRepository.ListPropertyGuarantees(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		review, err = s.monitoringRepository.GetReviewStatus(gctx, groupID)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("groupID", groupID).Error("Erro ao montar detalhes do grupo econômico")
		return nil, err
	}

	if group == nil {
		return nil, &domain.NotFoundError{Entity: "economic group", ID: groupID}
	}

	detail := &domain.GroupDetail{
		Group:      *group,
		Operations: FoldOperations(rows),
		Timeline:   nonNil(timeline),
		Properties: nonNil(properties),
		Review:     domain.ReviewStatus{Status: "ok"},
	}

	if review != nil {
		detail.Review = *review
	}

	return detail, nil
}

func (s *Service) UpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	events, err := s.collectEvents(ctx, s.today())
	if err != nil {
		return nil, err
	}

	return truncate(events, limit), nil
}

func (s *Service) EventsFeed(ctx context.Context) ([]domain.Event, error) {
	return s.collectEvents(ctx, s.today())
}

func (s *Service) DashboardMetrics(ctx context.Context) (*domain.MetricsView, error) {
	today := s.today()

	var (
		totals *domain.DashboardTotals
		feed   []domain.Event
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		totals, err = s.dashboardRepository.Totals(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		feed, err = s.collectEvents(gctx, today)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Erro ao calcular métricas do dashboard")
		return nil, err
	}

	return &domain.MetricsView{
		Metrics: []domain.Metric{
			{Title: "Volume total de operações saudáveis", Value: s.formatter.Format(totals.HealthyVolume)},
			{Title: "Volume total de operações watchlist", Value: s.formatter.Format(totals.WatchlistVolume)},
			{Title: "Total de operações", Value: strconv.FormatInt(totals.TotalOperations, 10)},
			{Title: "Eventos do mês", Value: strconv.Itoa(countInMonth(feed, today))},
			{Title: "Tarefas em atraso", Value: strconv.FormatInt(totals.OverdueTasks, 10)},
		},
		UpcomingEvents: truncate(feed, s.upcomingLimit),
	}, nil
}

// today é a data corrente à meia-noite, no fuso do processo
func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func countInMonth(events []domain.Event, today time.Time) int {
	count := 0
	for _, event := range events {
		if event.Date.Year() == today.Year() && event.Date.Month() == today.Month() {
			count++
		}
	}
	return count
}

func truncate(events []domain.Event, limit int) []domain.Event {
	if limit > 0 && len(events) > limit {
		return events[:limit]
	}
	return events
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
