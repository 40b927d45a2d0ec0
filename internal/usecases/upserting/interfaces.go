package upserting

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_upserting.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// Os writers são implementados pelos repositórios SQL ou pelo cliente HTTP do sink.

type MetricWriter interface {
	UpsertBatch(ctx context.Context, records []*domain.MetricRecord) (int, error)
}

type AccountWriter interface {
	UpsertBatch(ctx context.Context, accounts []*domain.AdAccount) error
}

type CampaignWriter interface {
	UpsertBatch(ctx context.Context, campaigns []*domain.Campaign) error
}

// ClientLinkResolver devolve nil quando a conta ainda não tem cliente interno
type ClientLinkResolver interface {
	GetClientIDByAccountID(ctx context.Context, accountID string) (*string, error)
}

type ClientLinkBackfiller interface {
	BackfillClientLinks(ctx context.Context) (int64, error)
}

// Sink grava métricas, contas e campanhas de forma idempotente
type Sink interface {
	UpsertMetrics(ctx context.Context, records []*domain.MetricRecord) (int, error)
	UpsertAccounts(ctx context.Context, accounts []*domain.AdAccount) error
	UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error
	BackfillClientLinks(ctx context.Context) (int64, error)
}
