package ingesting

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_ingesting.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// HierarchyValidator nunca falha: devolve um veredicto
type HierarchyValidator interface {
	ValidateHierarchy(ctx context.Context, accessToken, aggregatorID, targetAccountID string) domain.HierarchyVerdict
}

type MetricsFetcher interface {
	FetchMetrics(ctx context.Context, query domain.MetricsQuery) ([]*domain.MetricRecord, error)
}

// Orchestrator executa e consulta ingestões
type Orchestrator interface {
	Run(ctx context.Context, request domain.IngestionRequest) (*domain.IngestionResponse, error)
	GetRun(ctx context.Context, runID string) (*domain.IngestionRun, error)
	ListRuns(ctx context.Context, userID string, limit int) ([]*domain.IngestionRun, error)
}
