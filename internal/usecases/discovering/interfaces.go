package discovering

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_discovering.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// AccountDirectory lista e detalha as contas visíveis para um access token
type AccountDirectory interface {
	ListAccessibleAccounts(ctx context.Context, accessToken string) ([]string, error)
	GetAccountDetails(ctx context.Context, accessToken, aggregatorID, accountID string) (*domain.AdAccount, error)
	ListChildAccounts(ctx context.Context, accessToken, aggregatorID string) ([]*domain.AdAccount, error)
}

type Discoverer interface {
	DiscoverAccounts(ctx context.Context, userID string) (*domain.DiscoveryResult, error)
	ListAccounts(ctx context.Context) ([]*domain.AdAccount, error)
}
