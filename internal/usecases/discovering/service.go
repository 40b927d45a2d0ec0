package discovering

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/ads-sync-api/internal/usecases/upserting"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

type Service struct {
	cfg                  *config.Config
	tokenManager         credentialing.TokenManager
	directory            AccountDirectory
	sink                 upserting.Sink
	credentialRepository repository.CredentialRepository
	accountRepository    repository.AdAccountRepository
}

func NewService(
	cfg *config.Config,
	tokenManager credentialing.TokenManager,
	directory AccountDirectory,
	sink upserting.Sink,
	credentialRepository repository.CredentialRepository,
	accountRepository repository.AdAccountRepository,
) Discoverer {
	return &Service{
		cfg:                  cfg,
		tokenManager:         tokenManager,
		directory:            directory,
		sink:                 sink,
		credentialRepository: credentialRepository,
		accountRepository:    accountRepository,
	}
}

// DiscoverAccounts enumera as contas visíveis pela credencial do usuário, enriquece com
// metadados, expande os filhos do agregador quando não há conta cliente real e persiste.
func (s *Service) DiscoverAccounts(ctx context.Context, userID string) (*domain.DiscoveryResult, error) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	grant, err := s.tokenManager.EnsureAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids, err := s.directory.ListAccessibleAccounts(ctx, grant.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas acessíveis: %w", err)
	}

	result := &domain.DiscoveryResult{
		AccessibleCount: len(ids),
		AggregatorID:    grant.AggregatorID,
	}

	accounts, placeholders := s.lookupDetails(ctx, grant, ids)
	result.PlaceholderCount = placeholders

	if len(realCandidates(accounts)) == 0 && s.cfg.Discovery.ExpandChildren && grant.AggregatorID != "" {
		children, err := s.directory.ListChildAccounts(ctx, grant.AccessToken, grant.AggregatorID)
		if err != nil {
			logger.WithField("aggregator_id", grant.AggregatorID).
				WithError(err).
				Warn("Erro ao listar contas filhas do agregador, seguindo sem expansão")
		} else {
			for _, child := range children {
				if !child.IsManager {
					accounts = append(accounts, child)
				}
			}
			result.ExpandedChildren = true
		}
	}

	merged := domain.MergeAccounts(accounts)
	result.Accounts = merged

	if len(merged) == 0 {
		logger.Warn("Nenhuma conta encontrada para a credencial")
		return result, nil
	}

	if err := s.sink.UpsertAccounts(ctx, merged); err != nil {
		return nil, err
	}

	linked := merged[0]
	if candidates := realCandidates(merged); len(candidates) > 0 {
		linked = candidates[0]
	}
	result.LinkedAccountID = linked.ID

	if err := s.credentialRepository.UpdateLinkedAccount(ctx, grant.CredentialID, linked.ID, grant.AggregatorID); err != nil {
		return nil, fmt.Errorf("erro ao vincular conta à credencial: %w", err)
	}

	logger.WithFields(log.Fields{
		"records":           len(merged),
		"target_account_id": linked.ID,
		"aggregator_id":     grant.AggregatorID,
	}).Info("Descoberta de contas concluída")

	return result, nil
}

// lookupDetails busca os metadados em paralelo, limitado pelo semáforo.
// Falha numa conta vira placeholder e não interrompe as demais.
func (s *Service) lookupDetails(ctx context.Context, grant *domain.AccessGrant, ids []string) ([]*domain.AdAccount, int) {
	accounts := make([]*domain.AdAccount, len(ids))
	failures := make([]bool, len(ids))

	concurrency := s.cfg.Discovery.MaxConcurrentLookups
	if concurrency <= 0 {
		concurrency = 1
	}

	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, id string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			account, err := s.directory.GetAccountDetails(ctx, grant.AccessToken, grant.AggregatorID, id)
			if err != nil || account == nil {
				if err == nil {
					err = &domain.PartialMetadataFailure{AccountID: id, Err: fmt.Errorf("conta sem metadados")}
				}
				log.ForContext(ctx).
					WithField("account_id", id).
					WithError(err).
					Warn("Metadados indisponíveis, usando nome placeholder")

				accounts[i] = domain.NewPlaceholderAccount(id, s.cfg.Ingestion.Platform)
				failures[i] = true
				return
			}

			accounts[i] = account
		}(i, id)
	}

	wg.Wait()

	placeholders := 0
	for _, failed := range failures {
		if failed {
			placeholders++
		}
	}

	return accounts, placeholders
}

// realCandidates são contas não gerenciadoras com nome real
func realCandidates(accounts []*domain.AdAccount) []*domain.AdAccount {
	candidates := make([]*domain.AdAccount, 0)
	for _, acc := range accounts {
		if acc != nil && !acc.IsManager && acc.HasRealName() {
			candidates = append(candidates, acc)
		}
	}
	return candidates
}

func (s *Service) ListAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	accounts, err := s.accountRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas: %w", err)
	}
	return accounts, nil
}
