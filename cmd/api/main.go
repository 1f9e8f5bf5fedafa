package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/infrastructure/repository"
	"github.com/duarte550/crmCRIback/internal/api"
	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/scheduler"
	"github.com/duarte550/crmCRIback/internal/usecases/aggregating"
	"github.com/duarte550/crmCRIback/internal/usecases/cataloging"
	"github.com/duarte550/crmCRIback/internal/usecases/registering"
	"github.com/duarte550/crmCRIback/internal/usecases/searching"
	"github.com/duarte550/crmCRIback/internal/usecases/watchlisting"
	"github.com/duarte550/crmCRIback/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Configure(cfg.App.LogLevel)

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager, err := database.NewManager(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de banco inválida")
	}
	defer func() {
		if err := manager.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o pool de conexões")
		}
	}()

	// A abertura é preguiçosa; aqui só antecipamos a primeira tentativa para o log de inicialização
	if _, err := manager.Acquire(ctx); err != nil {
		logrus.WithError(err).Warn("Banco indisponível na inicialização; nova tentativa na primeira requisição")
	} else {
		logrus.WithField("backend", cfg.Database.Backend).Info("Conexão com o banco estabelecida com sucesso")
	}

	conn := database.NewExecutor(manager, cfg.Database.QueryTimeout)

	groupRepo := repository.NewEconomicGroupRepository(conn)
	monitoringRepo := repository.NewMonitoringRepository(conn)
	timelineRepo := repository.NewTimelineRepository(conn)
	taskRepo := repository.NewTaskRepository(conn)
	watchlistRepo := repository.NewWatchlistRepository(conn)
	eventSourceRepo := repository.NewEventSourceRepository(conn)
	dashboardRepo := repository.NewDashboardRepository(conn)
	searchRepo := repository.NewSearchRepository(conn)

	catalog := cataloging.NewService(groupRepo, monitoringRepo)
	aggregator := aggregating.NewService(cfg, groupRepo, timelineRepo, monitoringRepo, eventSourceRepo, dashboardRepo)
	registrar := registering.NewService(timelineRepo, taskRepo)
	watchlist := watchlisting.NewService(conn, watchlistRepo, timelineRepo)
	searcher := searching.NewService(searchRepo)

	watchlistGaugeService := scheduler.NewWatchlistGaugeService(watchlist, cfg)
	if err := watchlistGaugeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do gauge de watchlist")
	}

	server, err := api.New(cfg, catalog, aggregator, registrar, watchlist, searcher, watchlistGaugeService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
