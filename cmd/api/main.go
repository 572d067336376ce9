package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-compliance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/api"
	"github.com/vfg2006/sales-compliance-api/internal/config"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/scheduler"
	"github.com/vfg2006/sales-compliance-api/internal/settings"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/allocating"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/attributing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/budgeting"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/novelty"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/progressing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/visibility"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	personRepo := repository.NewPersonRepository(pgConn)
	orgUnitRepo := repository.NewOrgUnitRepository(pgConn)
	noveltyRepo := repository.NewNoveltyRepository(pgConn)
	budgetRepo := repository.NewBudgetRepository(pgConn)
	allocationRepo := repository.NewAllocationRepository(pgConn)
	progressRepo := repository.NewProgressRepository(pgConn)
	salesRecordRepo := repository.NewSalesRecordRepository(pgConn)
	territoryAliasRepo := repository.NewTerritoryAliasRepository(pgConn)
	settingRepo := repository.NewSettingRepository(pgConn)
	recomputeJobRepo := repository.NewRecomputeJobRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	policy := visibility.NewPolicy(personRepo)
	settingsService := settings.NewService(settingRepo, cfg.Settings.CacheTTL)
	attributor := attributing.NewService(salesRecordRepo, territoryAliasRepo)

	noveltyStore := novelty.NewService(noveltyRepo, personRepo, policy)
	budgetStore := budgeting.NewService(budgetRepo, personRepo, orgUnitRepo)
	calculator := allocating.NewService(
		noveltyRepo,
		budgetRepo,
		allocationRepo,
		domain.BudgetScopeSales,
		cfg.Allocation.FallbackBase,
	)
	aggregator := progressing.NewService(
		personRepo,
		allocationRepo,
		progressRepo,
		attributor,
		settingsService,
	)

	orchestrator := recomputing.NewService(
		pgConn,
		noveltyStore,
		budgetStore,
		calculator,
		aggregator,
		recomputeJobRepo,
		policy,
	)

	// Inicializa os agendadores
	retryService := scheduler.NewRecomputeRetryService(orchestrator, cfg)
	rolloverService := scheduler.NewBudgetRolloverService(orchestrator, cfg)

	if err := retryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o varredor de recálculos pendentes")
	} else {
		logrus.Info("Varredor de recálculos pendentes iniciado com sucesso")
	}

	if err := rolloverService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a virada mensal de orçamentos")
	} else {
		logrus.Info("Virada mensal de orçamentos iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		noveltyStore,
		budgetStore,
		calculator,
		aggregator,
		attributor,
		orchestrator,
		settingsService,
		retryService,
		rolloverService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
