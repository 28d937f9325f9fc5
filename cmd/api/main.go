package main

import (
	"context"
	"math/rand"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/database/postgres"
	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository"
	"github.com/socialpulse/engagement-analytics-api/internal/api"
	"github.com/socialpulse/engagement-analytics-api/internal/cache"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
	"github.com/socialpulse/engagement-analytics-api/internal/scheduler"
	"github.com/socialpulse/engagement-analytics-api/internal/usecases/analyzing"
	"github.com/socialpulse/engagement-analytics-api/internal/usecases/authenticating"
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
	postRepo := repository.NewPostRepository(pgConn)
	engagementRepo := repository.NewEngagementRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Cache em memória compartilhado entre o motor de análise e os agendadores
	analyticsCache := cache.New()

	analyticsService := analyzing.NewService(cfg, analyticsCache, engagementRepo, postRepo)

	// Inicializa os agendadores de geração e retenção
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	generatorService := scheduler.NewEngagementGeneratorService(
		postRepo,
		engagementRepo,
		analyticsService,
		cfg,
		rng,
	)

	retentionService := scheduler.NewRetentionSyncService(
		engagementRepo,
		analyticsCache,
		cfg,
	)

	// Inicia os agendadores em background
	if err := generatorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o gerador de engajamento")
	} else {
		logrus.Info("Gerador de engajamento iniciado com sucesso")
	}

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de eventos")
	} else {
		logrus.Info("Agendador de retenção de eventos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		authenticator,
		generatorService,
		retentionService,
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
