package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/integrator/merchantcenter/mcclient"
	"github.com/vfg2006/ads-diagnostics-api/infrastructure/repository"
	"github.com/vfg2006/ads-diagnostics-api/internal/api"
	"github.com/vfg2006/ads-diagnostics-api/internal/config"
	"github.com/vfg2006/ads-diagnostics-api/internal/scheduler"
	"github.com/vfg2006/ads-diagnostics-api/internal/usecases/snapshotting"
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

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	merchantClient := mcclient.NewClient(cfg)
	merchantIntegrator := merchantcenter.New(cfg, merchantClient)

	snapshotService := snapshotting.NewService(cfg, adsIntegrator, merchantIntegrator)

	// O histórico de snapshots é opcional: sem ele o serviço dispensa o banco
	if cfg.Database.HistoryEnabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo := repository.NewSnapshotRepository(pgConn)
		snapshotService = snapshotService.WithHistory(snapshotRepo)
	} else {
		logrus.Info("Histórico de snapshots desabilitado, iniciando sem PostgreSQL")
	}

	// Inicializa o agendador de snapshots diários
	snapshotSyncService := scheduler.NewSnapshotSyncService(snapshotService, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots")
	} else {
		logrus.Info("Agendador de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		snapshotService,
		merchantIntegrator,
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
