package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/migrations"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/sink/sinkclient"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/api"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/ads-sync-api/internal/usecases/discovering"
	"github.com/vfg2006/ads-sync-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-sync-api/internal/usecases/upserting"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renderClient := config.NewRenderClient(cfg)
	if err := config.LoadSecrets(ctx, cfg, renderClient); err != nil {
		logrus.WithError(err).Warn("Seguindo apenas com as variáveis de ambiente")
	}
	if err := cfg.ValidateAuthSecret(); err != nil {
		logrus.Fatal(err)
	}

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Run(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	credentialRepo := repository.NewCredentialRepository(conn)
	runRepo := repository.NewIngestionRunRepository(conn)
	accountRepo := repository.NewAdAccountRepository(conn)
	campaignRepo := repository.NewCampaignRepository(conn)
	metricRepo := repository.NewMetricRepository(conn, cfg)
	clientLinkRepo := repository.NewClientLinkRepository(conn)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	sink := upserting.NewService(cfg, sinkWriters(cfg, accountRepo, campaignRepo, metricRepo, clientLinkRepo))

	tokenManager := credentialing.NewService(cfg, credentialRepo, adsIntegrator)
	discoverer := discovering.NewService(cfg, tokenManager, adsIntegrator, sink, credentialRepo, accountRepo)
	orchestrator := ingesting.NewService(
		cfg,
		credentialRepo,
		runRepo,
		tokenManager,
		adsIntegrator, // Implementa HierarchyValidator
		adsIntegrator, // Implementa MetricsFetcher
		sink,
	)

	adsSyncService := scheduler.NewAdsInsightSyncService(credentialRepo, orchestrator, sink, cfg)
	if err := adsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão")
	} else {
		logrus.Info("Agendador de ingestão iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Orchestrator:   orchestrator,
		Discoverer:     discoverer,
		TokenManager:   tokenManager,
		Authenticator:  authenticating.NewService(cfg),
		AdsSyncService: adsSyncService,
		Database:       conn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// sinkWriters escolhe o destino das gravações de acordo com SINK_MODE.
// No modo http o vínculo com o cliente interno continua vindo do banco local.
func sinkWriters(
	cfg *config.Config,
	accountRepo repository.AdAccountRepository,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.MetricRepository,
	clientLinkRepo repository.ClientLinkRepository,
) upserting.Writers {
	if cfg.Sink.Mode == config.SinkModeHTTP {
		client := sinkclient.NewClient(cfg)
		logrus.WithField("sink_url", cfg.Sink.URL).Info("Sink HTTP configurado")

		return upserting.Writers{
			Metrics:   client.Metrics(),
			Accounts:  client.Accounts(),
			Campaigns: client.Campaigns(),
			Links:     clientLinkRepo,
		}
	}

	return upserting.Writers{
		Metrics:    metricRepo,
		Accounts:   accountRepo,
		Campaigns:  campaignRepo,
		Links:      clientLinkRepo,
		Backfiller: metricRepo,
	}
}

// chdirToSource permite que o .env seja encontrado ao rodar com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// dbconn cria uma conexão com o banco de dados
func dbconn(ctx context.Context, dbConfig config.Database) *sqldb.Connection {
	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
