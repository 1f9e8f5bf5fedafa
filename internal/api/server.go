package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/duarte550/crmCRIback/internal/api/handler"
	"github.com/duarte550/crmCRIback/internal/api/handler/router"
	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/internal/usecases/aggregating"
	"github.com/duarte550/crmCRIback/internal/usecases/cataloging"
	"github.com/duarte550/crmCRIback/internal/usecases/registering"
	"github.com/duarte550/crmCRIback/internal/usecases/searching"
	"github.com/duarte550/crmCRIback/internal/usecases/watchlisting"
	"github.com/duarte550/crmCRIback/pkg/log"
	"github.com/duarte550/crmCRIback/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	catalog cataloging.Cataloger,
	aggregator aggregating.Aggregator,
	registrar registering.Registrar,
	watchlist watchlisting.WatchlistService,
	searcher searching.Searcher,
	gauge handler.GaugeStatus,
) (*Server, error) {
	rt := router.New(
		router.WithNotFound(handler.NotFoundHandler()),
		router.WithRoutes(handler.Healthcheck(gauge)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithInstrumentation(middleware.Metrics),
		router.WithRoutes(handler.EconomicGroups(catalog, aggregator, registrar, watchlist)...),
		router.WithRoutes(handler.Dashboard(aggregator, catalog)...),
		router.WithRoutes(handler.Events(aggregator, registrar)...),
		router.WithRoutes(handler.Monitoring(catalog)...),
		router.WithRoutes(handler.Watchlist(watchlist)...),
		router.WithRoutes(handler.Search(searcher)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
