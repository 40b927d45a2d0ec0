package credentialing

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_credentialing.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// TokenRefresher troca um refresh token por um access token novo e sua validade
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, userID, refreshToken string) (string, time.Duration, error)
}

// TokenManager garante um access token válido antes de qualquer chamada externa
type TokenManager interface {
	EnsureAccessToken(ctx context.Context, userID string) (*domain.AccessGrant, error)
	RegisterCredential(ctx context.Context, request *domain.RegisterCredentialRequest) (*domain.Credential, error)
}
