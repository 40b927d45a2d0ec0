package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-sync-api/internal/usecases/upserting"
)

// AdsInsightSyncConfig representa a configuração do agendador de ingestão
type AdsInsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AdsInsightSyncService reprocessa periodicamente as métricas de todos os usuários com conta vinculada
type AdsInsightSyncService struct {
	scheduler            *gocron.Scheduler
	config               AdsInsightSyncConfig
	appConfig            *config.Config
	credentialRepository repository.CredentialRepository
	orchestrator         ingesting.Orchestrator
	sink                 upserting.Sink
	now                  func() time.Time
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSyncStartedAt    time.Time
	lastSyncCompletedAt  time.Time
	lastSyncSucceeded    int
	lastSyncFailed       int
}

func NewAdsInsightSyncService(
	credentialRepository repository.CredentialRepository,
	orchestrator ingesting.Orchestrator,
	sink upserting.Sink,
	appConfig *config.Config,
) *AdsInsightSyncService {
	syncConfig := AdsInsightSyncConfig{
		CronSchedule:        appConfig.IngestionSync.CronSchedule,
		LookbackDays:        appConfig.IngestionSync.LookbackDays,
		RequestDelaySeconds: appConfig.IngestionSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.IngestionSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.IngestionSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão carregada")

	return &AdsInsightSyncService{
		scheduler:            scheduler,
		config:               syncConfig,
		appConfig:            appConfig,
		credentialRepository: credentialRepository,
		orchestrator:         orchestrator,
		sink:                 sink,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

// Start inicia o agendador
func (s *AdsInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts roda uma ingestão por usuário com conta vinculada e depois preenche vínculos de cliente
func (s *AdsInsightSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	succeeded, failed := 0, 0

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncSucceeded = succeeded
		s.lastSyncFailed = failed
		s.syncMutex.Unlock()
	}()

	credentials, err := s.credentialRepository.ListLinkedCredentials(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais para sincronização de métricas")
		return
	}

	if len(credentials) == 0 {
		logrus.Info("Nenhum usuário com conta vinculada para sincronizar")
		return
	}

	dateRange := domain.DefaultDateRange(s.now(), s.config.LookbackDays)
	logrus.WithFields(logrus.Fields{
		"users":      len(credentials),
		"start_date": dateRange.StartString(),
		"end_date":   dateRange.EndString(),
	}).Info("Iniciando sincronização de métricas")

	succeeded, failed = s.processCredentials(ctx, credentials, dateRange)

	filled, err := s.sink.BackfillClientLinks(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao preencher vínculos de cliente")
	}

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"succeeded":    succeeded,
		"failed":       failed,
		"links_filled": filled,
	}).Info("Sincronização de métricas concluída")
}

// processCredentials limita a concorrência pelo semáforo. Falha de um usuário não interrompe os demais.
func (s *AdsInsightSyncService) processCredentials(ctx context.Context, credentials []*domain.Credential, dateRange domain.DateRange) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, failed := 0, 0

	for _, credential := range credentials {
		if credential.LinkedAccountID == nil || *credential.LinkedAccountID == "" {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(cred *domain.Credential) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			ok := s.processCredential(ctx, cred, dateRange)

			mu.Lock()
			if ok {
				succeeded++
			} else {
				failed++
			}
			mu.Unlock()

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(credential)
	}

	wg.Wait()

	return succeeded, failed
}

func (s *AdsInsightSyncService) processCredential(ctx context.Context, credential *domain.Credential, dateRange domain.DateRange) bool {
	fields := logrus.Fields{
		"user_id":           credential.UserID,
		"target_account_id": *credential.LinkedAccountID,
	}

	response, err := s.orchestrator.Run(ctx, domain.IngestionRequest{
		UserID:          credential.UserID,
		TargetAccountID: *credential.LinkedAccountID,
		StartDate:       dateRange.StartString(),
		EndDate:         dateRange.EndString(),
	})
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro na ingestão agendada")
		return false
	}

	fields["run_id"] = response.RunID
	fields["records"] = response.RecordsProcessed
	fields["fallback_used"] = response.FallbackUsed
	logrus.WithFields(fields).Info("Ingestão agendada concluída")

	return true
}

// TriggerManualSync inicia manualmente uma sincronização. Devolve false se já houver uma em andamento.
func (s *AdsInsightSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas")
	go s.syncAllAccounts(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *AdsInsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_succeeded":    s.lastSyncSucceeded,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
