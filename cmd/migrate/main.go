package main

import (
	"context"
	"flag"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/duarte550/crmCRIback/infrastructure/database"
	"github.com/duarte550/crmCRIback/infrastructure/migration"
	"github.com/duarte550/crmCRIback/internal/config"
	"github.com/duarte550/crmCRIback/pkg/log"
)

func main() {
	direction := flag.String("direction", "up", "up aplica as migrações pendentes, down desfaz -steps migrações")
	steps := flag.Int("steps", 1, "quantidade de migrações desfeitas com -direction=down")
	flag.Parse()

	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !strings.EqualFold(cfg.Database.Backend, config.BackendPostgres) {
		logrus.Fatalf("migrações só se aplicam ao backend %s (configurado: %s)", config.BackendPostgres, cfg.Database.Backend)
	}

	if cfg.Database.Schema != migration.Schema {
		logrus.Fatalf("as migrações criam o schema %s (DATABASE_SCHEMA configurado: %s)", migration.Schema, cfg.Database.Schema)
	}

	manager, err := database.NewManager(cfg.Database)
	if err != nil {
		logrus.Fatal(err)
	}
	defer manager.Close()

	db, err := manager.Acquire(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	migrator, err := migration.New(db.DB)
	if err != nil {
		logrus.Fatal(err)
	}
	defer migrator.Close()

	switch *direction {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down(*steps)
	default:
		logrus.Fatalf("direction inválida: %q", *direction)
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
}
