package watchlisting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/infrastructure/repository"
	"github.com/duarte550/crmCRIback/internal/domain"
)

const (
	opSetStatus = "watchlist.definir_status"

	missingFieldsMessage = "Please provide all required fields for the watchlist event."
	invalidStatusMessage = "newStatus must be one of ok, attention, problem, critical."

	criticalObservation = "Atraso recorrente no envio de covenants."
	defaultObservation  = "Queda de 15% no faturamento do último trimestre."
)

type WatchlistService interface {
	// SetWatchlistStatus atualiza o status do grupo e registra o evento "watchlist"
	// correspondente como uma única unidade: ou as duas escritas ficam visíveis ou nenhuma.
	SetWatchlistStatus(ctx context.Context, request domain.WatchlistEventRequest) (*domain.TimelineEvent, error)
	ListWatchlist(ctx context.Context) ([]domain.WatchlistGroup, error)
	Summary(ctx context.Context) (*domain.WatchlistSummary, error)
}

type Service struct {
	conn                database.Executor
	watchlistRepository repository.WatchlistRepository
	timelineRepository  repository.TimelineRepository
	now                 func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	conn database.Executor,
	watchlistRepository repository.WatchlistRepository,
	timelineRepository repository.TimelineRepository,
	opts ...Option,
) WatchlistService {
	s := &Service{
		conn:                conn,
		watchlistRepository: watchlistRepository,
		timelineRepository:  timelineRepository,
		now:                 time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) SetWatchlistStatus(ctx context.Context, request domain.WatchlistEventRequest) (*domain.TimelineEvent, error) {
	request.NewStatus = domain.WatchlistStatus(strings.ToLower(strings.TrimSpace(string(request.NewStatus))))

	if err := validate(request); err != nil {
		return nil, err
	}

	event := domain.TimelineEvent{
		GroupID:         request.GroupID,
		Date:            s.now(),
		Title:           request.Title,
		Summary:         fmt.Sprintf("Status de watchlist atualizado para: %s. Motivo: %s", strings.ToUpper(string(request.NewStatus)), request.Title),
		FullDescription: request.FullDescription,
		Responsible:     request.Responsible,
		Type:            domain.TimelineTypeWatchlist,
	}

	logger := logrus.WithFields(logrus.Fields{
		"groupID":   request.GroupID,
		"newStatus": request.NewStatus,
	})

	if txConn, ok := s.conn.(database.TxExecutor); ok && s.conn.Dialect().NativeTransactions {
		created, err := s.setInTransaction(ctx, txConn, request, event)
		if err != nil {
			logger.WithError(err).Error("Erro ao atualizar status de watchlist")
			return nil, err
		}
		logger.Info("Status de watchlist atualizado")
		return created, nil
	}

	created, err := s.setWithCompensation(ctx, request, event)
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar status de watchlist")
		return nil, err
	}

	logger.Info("Status de watchlist atualizado")
	return created, nil
}

// setInTransaction usa a transação nativa do backend para as duas escritas
func (s *Service) setInTransaction(ctx context.Context, txConn database.TxExecutor, request domain.WatchlistEventRequest, event domain.TimelineEvent) (*domain.TimelineEvent, error) {
	var created *domain.TimelineEvent

	err := txConn.RunInTransaction(ctx, opSetStatus, func(conn database.Executor) error {
		affected, err := s.watchlistRepository.WithExecutor(conn).UpdateStatus(ctx, request.GroupID, request.NewStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &domain.NotFoundError{Entity: "economic group", ID: request.GroupID}
		}

		created, err = s.timelineRepository.WithExecutor(conn).Insert(ctx, event)
		return err
	})
	if err == nil {
		return created, nil
	}

	var (
		notFound *domain.NotFoundError
		txErr    *domain.TransactionError
		connErr  *domain.ConnectionError
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &txErr), errors.As(err, &connErr):
		return nil, err
	}

	return nil, &domain.TransactionError{Op: opSetStatus, Err: err, RolledBack: true}
}

// setWithCompensation executa as escritas em sequência e, se o evento não puder
// ser gravado, restaura o status anterior antes de devolver o erro. Um evento
// gravado cuja releitura falhou conta como escrita concluída.
func (s *Service) setWithCompensation(ctx context.Context, request domain.WatchlistEventRequest, event domain.TimelineEvent) (*domain.TimelineEvent, error) {
	previous, found, err := s.watchlistRepository.CurrentStatus(ctx, request.GroupID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Entity: "economic group", ID: request.GroupID}
	}

	if _, err := s.watchlistRepository.UpdateStatus(ctx, request.GroupID, request.NewStatus); err != nil {
		return nil, &domain.TransactionError{Op: opSetStatus, Err: err, RolledBack: true}
	}

	created, err := s.timelineRepository.Insert(ctx, event)
	if err == nil {
		return created, nil
	}

	if errors.Is(err, domain.ErrInsertNotReread) {
		logrus.WithError(err).WithField("groupID", request.GroupID).
			Warn("Evento de watchlist gravado, mas não relido; devolvendo o evento montado")
		return &event, nil
	}

	// A compensação precisa rodar mesmo que a requisição já tenha sido cancelada
	if _, rbErr := s.watchlistRepository.UpdateStatus(context.WithoutCancel(ctx), request.GroupID, previous); rbErr != nil {
		logrus.WithError(rbErr).WithFields(logrus.Fields{
			"groupID":        request.GroupID,
			"previousStatus": previous,
		}).Error("Erro ao restaurar status de watchlist anterior")
		return nil, &domain.TransactionError{Op: opSetStatus, Err: err, RolledBack: false}
	}

	return nil, &domain.TransactionError{Op: opSetStatus, Err: err, RolledBack: true}
}

func (s *Service) ListWatchlist(ctx context.Context) ([]domain.WatchlistGroup, error) {
	groups, err := s.watchlistRepository.ListGroups(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar grupos em watchlist")
		return nil, err
	}

	for i := range groups {
		groups[i].LastObservation = lastObservation(groups[i].WatchlistStatus)
	}

	return groups, nil
}

func (s *Service) Summary(ctx context.Context) (*domain.WatchlistSummary, error) {
	summary, err := s.watchlistRepository.Summary(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular resumo da watchlist")
		return nil, err
	}

	return summary, nil
}

func lastObservation(status domain.WatchlistStatus) string {
	if status == domain.WatchlistStatusCritical {
		return criticalObservation
	}
	return defaultObservation
}

func validate(request domain.WatchlistEventRequest) error {
	switch {
	case request.GroupID <= 0:
		return domain.NewValidationError("groupId", missingFieldsMessage)
	case strings.TrimSpace(request.Title) == "":
		return domain.NewValidationError("title", missingFieldsMessage)
	case strings.TrimSpace(request.FullDescription) == "":
		return domain.NewValidationError("fullDescription", missingFieldsMessage)
	case strings.TrimSpace(request.Responsible) == "":
		return domain.NewValidationError("responsible", missingFieldsMessage)
	case strings.TrimSpace(string(request.NewStatus)) == "":
		return domain.NewValidationError("newStatus", missingFieldsMessage)
	case !request.NewStatus.IsValid():
		return domain.NewValidationError("newStatus", invalidStatusMessage)
	}
	return nil
}
