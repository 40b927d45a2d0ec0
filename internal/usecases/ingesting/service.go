package ingesting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/ads-sync-api/internal/usecases/upserting"
	"github.com/vfg2006/ads-sync-api/pkg/log"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const finalizeTimeout = 10 * time.Second

type Service struct {
	cfg                  *config.Config
	credentialRepository repository.CredentialRepository
	runRepository        repository.IngestionRunRepository
	tokenManager         credentialing.TokenManager
	validator            HierarchyValidator
	fetcher              MetricsFetcher
	sink                 upserting.Sink
	now                  func() time.Time
}

func NewService(
	cfg *config.Config,
	credentialRepository repository.CredentialRepository,
	runRepository repository.IngestionRunRepository,
	tokenManager credentialing.TokenManager,
	validator HierarchyValidator,
	fetcher MetricsFetcher,
	sink upserting.Sink,
) *Service {
	return &Service{
		cfg:                  cfg,
		credentialRepository: credentialRepository,
		runRepository:        runRepository,
		tokenManager:         tokenManager,
		validator:            validator,
		fetcher:              fetcher,
		sink:                 sink,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run executa uma ingestão completa. Depois que o run é criado ele sempre termina
// em completed ou failed, e o erro da etapa que falhou é devolvido junto da resposta.
func (s *Service) Run(ctx context.Context, request domain.IngestionRequest) (*domain.IngestionResponse, error) {
	logger := log.ForContext(ctx).WithField("user_id", request.UserID)

	if strings.TrimSpace(request.UserID) == "" {
		return nil, fmt.Errorf("%w: user_id é obrigatório", domain.ErrInvalidRequest)
	}

	dateRange, err := domain.ParseDateRange(request.StartDate, request.EndDate, s.now(), s.cfg.Ingestion.LookbackDays)
	if err != nil {
		return nil, err
	}

	targetAccountID, err := s.resolveTarget(ctx, request)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID: %w", err)
	}

	run := &domain.IngestionRun{
		ID:               runID,
		UserID:           request.UserID,
		TargetAccountID:  targetAccountID,
		DateRange:        dateRange,
		Status:           domain.RunStatusRunning,
		HierarchyVerdict: domain.VerdictStatusSkipped,
		CreatedAt:        s.now(),
	}

	if err := s.runRepository.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("erro ao criar ingestion run: %w", err)
	}

	logger = logger.WithFields(log.Fields{
		"run_id":            run.ID,
		"target_account_id": targetAccountID,
	})
	logger.WithField("date_range", dateRange.String()).Info("Ingestão iniciada")

	processed, runErr := s.execute(ctx, run, s.allowFallback(request))

	if runErr != nil {
		_ = run.Fail(runErr, s.now())
	} else {
		_ = run.Complete(processed, s.now())
	}

	if err := s.finalize(ctx, run); err != nil {
		logger.WithError(err).Error("Erro ao finalizar ingestion run")
		if runErr == nil {
			runErr = err
		}
	}

	response := &domain.IngestionResponse{
		OK:               runErr == nil,
		RunID:            run.ID,
		RecordsProcessed: run.RecordsProcessed,
		DateRange:        &dateRange,
		FallbackUsed:     run.FallbackUsed,
		HierarchyVerdict: run.HierarchyVerdict,
	}

	if runErr != nil {
		response.Error = runErr.Error()
		logger.WithError(runErr).Error("Ingestão falhou")
		return response, runErr
	}

	logger.WithField("records", processed).Info("Ingestão concluída")

	return response, nil
}

// finalize grava o estado terminal mesmo que ctx já tenha sido cancelado
func (s *Service) finalize(ctx context.Context, run *domain.IngestionRun) error {
	finalizeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	return s.runRepository.Finalize(finalizeCtx, run)
}

// execute roda as etapas do pipeline e atualiza fallback e veredicto no run
func (s *Service) execute(ctx context.Context, run *domain.IngestionRun, allowFallback bool) (int, error) {
	logger := log.ForContext(ctx).WithField("run_id", run.ID)

	grant, err := s.tokenManager.EnsureAccessToken(ctx, run.UserID)
	if err != nil {
		return 0, err
	}

	aggregatorID := grant.AggregatorID
	if aggregatorID != "" {
		verdict := s.validator.ValidateHierarchy(ctx, grant.AccessToken, aggregatorID, run.TargetAccountID)
		run.HierarchyVerdict = verdict.Status

		if !verdict.OK() {
			if !allowFallback {
				return 0, &domain.HierarchyDeniedError{
					AggregatorID:    aggregatorID,
					TargetAccountID: run.TargetAccountID,
					Verdict:         verdict,
				}
			}

			logger.WithFields(log.Fields{
				"aggregator_id": aggregatorID,
				"verdict":       verdict.Status,
				"reason":        verdict.Reason,
			}).Warn("Hierarquia não validada, consultando sem agregador")

			run.FallbackUsed = true
			aggregatorID = ""
		}
	}

	records, err := s.fetcher.FetchMetrics(ctx, domain.MetricsQuery{
		AccessToken:     grant.AccessToken,
		TargetAccountID: run.TargetAccountID,
		AggregatorID:    aggregatorID,
		DateRange:       run.DateRange,
		Platform:        s.cfg.Ingestion.Platform,
	})
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		logger.Info("Nenhuma métrica no intervalo")
		return 0, nil
	}

	processed, err := s.sink.UpsertMetrics(ctx, records)
	if err != nil {
		return 0, err
	}

	if err := s.sink.UpsertCampaigns(ctx, domain.CampaignsFromMetrics(records)); err != nil {
		logger.WithError(err).Warn("Erro ao gravar campanhas, seguindo com as métricas gravadas")
	}

	return processed, nil
}

// resolveTarget usa a conta do request ou, na falta dela, a conta vinculada à credencial
func (s *Service) resolveTarget(ctx context.Context, request domain.IngestionRequest) (string, error) {
	if request.TargetAccountID != "" {
		return domain.NormalizeAccountID(request.TargetAccountID)
	}

	credential, err := s.credentialRepository.GetLatestCredential(ctx, request.UserID)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar credencial: %w", err)
	}
	if credential == nil {
		return "", &domain.NoCredentialError{UserID: request.UserID}
	}
	if credential.LinkedAccountID == nil || *credential.LinkedAccountID == "" {
		return "", fmt.Errorf("%w: nenhuma conta alvo informada e nenhuma conta vinculada ao usuário %s", domain.ErrInvalidRequest, request.UserID)
	}

	return *credential.LinkedAccountID, nil
}

func (s *Service) allowFallback(request domain.IngestionRequest) bool {
	if request.AllowFallback != nil {
		return *request.AllowFallback
	}
	return s.cfg.Ingestion.AllowFallback
}

func (s *Service) GetRun(ctx context.Context, runID string) (*domain.IngestionRun, error) {
	run, err := s.runRepository.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, runID)
	}
	return run, nil
}

func (s *Service) ListRuns(ctx context.Context, userID string, limit int) ([]*domain.IngestionRun, error) {
	return s.runRepository.ListByUser(ctx, userID, limit)
}
