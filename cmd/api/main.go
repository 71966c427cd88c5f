package main

import (
	"context"
	"io"
	"os"

	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository/memory"
	"github.com/vfg2006/transaction-dashboard-api/internal/api"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat, os.Stdout)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transactionRepo, closer := transactionRepository(ctx, cfg.Database)
	defer closer.Close()

	feedClient := feedclient.NewClient(cfg.Feed)
	feedIntegrator := feed.New(cfg.Feed, feedClient)

	seeder := seeding.NewService(feedIntegrator, transactionRepo)
	reporter := reporting.NewService(cfg.Pagination, transactionRepo)

	feedSyncService := scheduler.NewFeedSyncService(seeder, cfg.FeedSync)
	if err := feedSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de recarga do feed")
	}

	server, err := api.New(cfg, reporter, feedSyncService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// transactionRepository escolhe o armazenamento conforme DATABASE_DRIVER
func transactionRepository(ctx context.Context, dbConfig config.Database) (repository.TransactionRepository, io.Closer) {
	switch dbConfig.Driver {
	case config.DriverMongoDB:
		conn, err := mongodb.NewConnection(ctx, dbConfig)
		if err != nil {
			log.L.WithError(err).Fatal("Erro ao conectar ao MongoDB")
		}
		if err := conn.EnsureIndexes(ctx); err != nil {
			log.L.WithError(err).Warn("Erro ao criar índices no MongoDB")
		}

		log.L.Info("Conexão com MongoDB estabelecida com sucesso")
		return repository.NewMongoTransactionRepository(conn), conn

	case config.DriverMemory:
		log.L.Warn("Usando armazenamento em memória: os dados não sobrevivem a reinicializações")
		return memory.NewTransactionStore(), nopCloser{}

	default:
		conn := pgconn(ctx, dbConfig)
		if err := migration.Run(conn.DB); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		return repository.NewTransactionRepository(conn), conn
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
