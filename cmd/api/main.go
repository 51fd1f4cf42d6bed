package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole"
	"github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/gscclient"
	"github.com/vfg2006/seo-campaign-api/infrastructure/repository"
	"github.com/vfg2006/seo-campaign-api/internal/api"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/scheduler"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/reporting"
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

	campaignRepo := repository.NewCampaignRepository(pgConn)
	accountRepo := repository.NewGoogleAccountRepository(pgConn)
	analyticsRepo := repository.NewKeywordAnalyticsRepository(pgConn)
	trafficRepo := repository.NewTrafficRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := gscclient.NewTokenManager(cfg, accountRepo)
	gscClient := gscclient.NewClient(cfg, tokenManager)
	searchConsoleIntegrator := searchconsole.New(cfg, gscClient)

	analyzingService := analyzing.NewService(
		cfg,
		searchConsoleIntegrator,
		campaignRepo,
		accountRepo,
		analyticsRepo,
		trafficRepo,
	)

	reportingService := reporting.NewService(campaignRepo, analyticsRepo, trafficRepo)

	// Inicializa os agendadores de sincronização separados
	monthlySyncService := scheduler.NewMonthlyAnalyticsSyncService(analyzingService, cfg)
	dailyPositionSyncService := scheduler.NewDailyPositionSyncService(campaignRepo, analyzingService, cfg)
	dailyTrafficSyncService := scheduler.NewDailyTrafficSyncService(campaignRepo, analyzingService, cfg)

	// Inicia os agendadores em background
	if err := monthlySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização mensal de analytics")
	} else {
		logrus.Info("Agendador de sincronização mensal de analytics iniciado com sucesso")
	}

	if err := dailyPositionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de posições diárias")
	} else {
		logrus.Info("Agendador de posições diárias iniciado com sucesso")
	}

	if err := dailyTrafficSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de tráfego diário")
	} else {
		logrus.Info("Agendador de tráfego diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		authenticator,
		monthlySyncService,
		dailyPositionSyncService,
		dailyTrafficSyncService,
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
