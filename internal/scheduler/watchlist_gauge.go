package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/domain"
	"github.com/duarte550/crmCRIback/pkg/log"
	"github.com/duarte550/crmCRIback/pkg/metrics"
)

const refreshTimeout = 30 * time.Second

// SummaryProvider é a parte do serviço de watchlist usada pelo agendador
type SummaryProvider interface {
	Summary(ctx context.Context) (*domain.WatchlistSummary, error)
}

// WatchlistGaugeService atualiza periodicamente o gauge de grupos por status de watchlist
type WatchlistGaugeService struct {
	scheduler         *gocron.Scheduler
	config            config.WatchlistGauge
	provider          SummaryProvider
	running           bool
	mutex             sync.Mutex
	lastRefreshedAt   time.Time
	lastRefreshFailed bool
}

func NewWatchlistGaugeService(provider SummaryProvider, appConfig *config.Config) *WatchlistGaugeService {
	log.L.WithFields(log.Fields{
		"cron_schedule": appConfig.WatchlistGauge.CronSchedule,
		"enabled":       appConfig.WatchlistGauge.Enabled,
	}).Info("Configuração do agendador do gauge de watchlist carregada")

	return &WatchlistGaugeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.WatchlistGauge,
		provider:  provider,
	}
}

// Start agenda a atualização e para o agendador quando ctx é cancelado
func (s *WatchlistGaugeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Gauge de watchlist desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do gauge de watchlist: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador do gauge de watchlist")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh consulta o resumo da watchlist e publica as contagens. Execuções
// sobrepostas são ignoradas.
func (s *WatchlistGaugeService) Refresh(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.L.Info("Atualização do gauge de watchlist já em andamento, ignorando")
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	summary, err := s.provider.Summary(ctx)
	if err != nil {
		log.L.WithError(err).Error("Erro ao consultar resumo da watchlist")
		s.setResult(false)
		return
	}

	metrics.SetWatchlistGroups(string(domain.WatchlistStatusOK), summary.OK)
	metrics.SetWatchlistGroups(string(domain.WatchlistStatusAttention), summary.Attention)
	metrics.SetWatchlistGroups(string(domain.WatchlistStatusCritical), summary.Critical)

	log.L.WithFields(log.Fields{
		"ok":        summary.OK,
		"attention": summary.Attention,
		"critical":  summary.Critical,
	}).Debug("Gauge de watchlist atualizado")

	s.setResult(true)
}

func (s *WatchlistGaugeService) setResult(ok bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastRefreshFailed = !ok
	if ok {
		s.lastRefreshedAt = time.Now()
	}
}

// Status devolve o horário da última atualização bem-sucedida e se a última tentativa falhou
func (s *WatchlistGaugeService) Status() (time.Time, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastRefreshedAt, s.lastRefreshFailed
}
