package credentialing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/log"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

type Service struct {
	cfg                  *config.Config
	credentialRepository repository.CredentialRepository
	refresher            TokenRefresher
	now                  func() time.Time
}

func NewService(
	cfg *config.Config,
	credentialRepository repository.CredentialRepository,
	refresher TokenRefresher,
) *Service {
	return &Service{
		cfg:                  cfg,
		credentialRepository: credentialRepository,
		refresher:            refresher,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock substitui o relógio usado para decidir a expiração
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// EnsureAccessToken devolve o access token armazenado ou renova quando now >= expiração.
// A renovação é persistida antes de retornar.
func (s *Service) EnsureAccessToken(ctx context.Context, userID string) (*domain.AccessGrant, error) {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	credential, err := s.credentialRepository.GetLatestCredential(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar credencial: %w", err)
	}
	if credential == nil {
		return nil, &domain.NoCredentialError{UserID: userID}
	}

	grant := &domain.AccessGrant{
		CredentialID: credential.ID,
		AccessToken:  credential.AccessToken,
		AggregatorID: s.aggregatorFor(credential),
		ExpiresAt:    credential.ExpiresAt,
	}
	if credential.LinkedAccountID != nil {
		grant.LinkedAccountID = *credential.LinkedAccountID
	}

	now := s.now()
	if !credential.IsExpired(now) {
		return grant, nil
	}

	logger.Info("Access token expirado, renovando")

	accessToken, ttl, err := s.refresher.RefreshAccessToken(ctx, userID, credential.RefreshToken)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(ttl)
	if err := s.credentialRepository.UpdateAccessToken(ctx, credential.ID, accessToken, expiresAt); err != nil {
		return nil, fmt.Errorf("erro ao salvar access token renovado: %w", err)
	}

	grant.AccessToken = accessToken
	grant.ExpiresAt = expiresAt
	grant.Refreshed = true

	logger.WithField("expires_at", expiresAt.Format(time.RFC3339)).Debug("Access token renovado")

	return grant, nil
}

// RegisterCredential grava um refresh token novo. O access token nasce expirado
// para que a primeira chamada já renove.
func (s *Service) RegisterCredential(ctx context.Context, request *domain.RegisterCredentialRequest) (*domain.Credential, error) {
	if strings.TrimSpace(request.UserID) == "" {
		return nil, fmt.Errorf("%w: user_id é obrigatório", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(request.RefreshToken) == "" {
		return nil, fmt.Errorf("%w: refresh_token é obrigatório", domain.ErrInvalidRequest)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID: %w", err)
	}

	now := s.now()
	credential := &domain.Credential{
		ID:           id,
		UserID:       request.UserID,
		RefreshToken: request.RefreshToken,
		ExpiresAt:    now,
		CreatedAt:    now,
	}

	if request.LoginCustomerID != "" {
		aggregatorID, err := domain.NormalizeAccountID(request.LoginCustomerID)
		if err != nil {
			return nil, err
		}
		credential.LoginCustomerID = &aggregatorID
	}

	if err := s.credentialRepository.Create(ctx, credential); err != nil {
		return nil, fmt.Errorf("erro ao salvar credencial: %w", err)
	}

	log.ForContext(ctx).WithField("user_id", request.UserID).Info("Credencial registrada")

	return credential, nil
}

func (s *Service) aggregatorFor(credential *domain.Credential) string {
	if credential.LoginCustomerID != nil && *credential.LoginCustomerID != "" {
		return *credential.LoginCustomerID
	}
	return s.cfg.GoogleAds.LoginCustomerID
}
