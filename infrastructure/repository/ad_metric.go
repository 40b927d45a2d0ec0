package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	adMetricsTable = "ad_metrics"

	adMetricColumns = "identity_key, metric_date, account_id, client_id, campaign_id, campaign_name, platform, " +
		"impressions, clicks, spend, leads, revenue, cpa, ctr, conversion_rate, created_at, updated_at"

	defaultMetricBatchSize = 500
)

// Colunas de dimensão (data, conta, campanha, plataforma) nunca mudam num conflito.
// client_id só é preenchido, nunca apagado.
const adMetricUpsertSuffix = `ON CONFLICT (identity_key) DO UPDATE SET
	campaign_name = excluded.campaign_name,
	impressions = excluded.impressions,
	clicks = excluded.clicks,
	spend = excluded.spend,
	leads = excluded.leads,
	revenue = excluded.revenue,
	cpa = excluded.cpa,
	ctr = excluded.ctr,
	conversion_rate = excluded.conversion_rate,
	client_id = COALESCE(excluded.client_id, ad_metrics.client_id),
	updated_at = excluded.updated_at`

const backfillClientLinksQuery = `UPDATE ad_metrics
SET client_id = (SELECT l.client_id FROM client_account_links l WHERE l.account_id = ad_metrics.account_id)
WHERE client_id IS NULL
AND EXISTS (SELECT 1 FROM client_account_links l WHERE l.account_id = ad_metrics.account_id)`

type MetricRepository interface {
	UpsertBatch(ctx context.Context, records []*domain.MetricRecord) (int, error)
	GetByIdentityKey(ctx context.Context, identityKey string) (*domain.MetricRecord, error)
	ListByAccountAndRange(ctx context.Context, accountID string, dateRange domain.DateRange) ([]*domain.MetricRecord, error)
	BackfillClientLinks(ctx context.Context) (int64, error)
}

type metricRepository struct {
	conn      sqldb.Conn
	batchSize int
}

func NewMetricRepository(conn sqldb.Conn, cfg *config.Config) MetricRepository {
	batchSize := cfg.Sink.BatchSize
	if batchSize <= 0 {
		batchSize = defaultMetricBatchSize
	}

	return &metricRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// UpsertBatch grava os registros em lotes dentro de uma única transação.
// As chaves de identidade precisam estar calculadas e únicas no lote.
func (r *metricRepository) UpsertBatch(ctx context.Context, records []*domain.MetricRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()

	err := r.conn.RunInTransaction(ctx, func(q sqldb.Queryer) error {
		for start := 0; start < len(records); start += r.batchSize {
			end := min(start+r.batchSize, len(records))

			builder := r.conn.Builder().
				Insert(adMetricsTable).
				Columns(adMetricColumns)

			for _, rec := range records[start:end] {
				if rec.IdentityKey == "" {
					return fmt.Errorf("registro sem identity_key para conta %s em %s", rec.AccountID, rec.DateString())
				}
				builder = builder.Values(
					rec.IdentityKey,
					rec.DateString(),
					rec.AccountID,
					rec.ClientID,
					rec.CampaignOrNone(),
					rec.CampaignName,
					rec.Platform,
					rec.Impressions,
					rec.Clicks,
					rec.Spend,
					rec.Leads,
					rec.Revenue,
					rec.CPA,
					rec.CTR,
					rec.ConversionRate,
					now,
					now,
				)
			}

			query, args, err := builder.Suffix(adMetricUpsertSuffix).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := q.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao salvar métricas: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func (r *metricRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*domain.MetricRecord, error) {
	query, args, err := r.conn.Builder().
		Select(adMetricColumns).
		From(adMetricsTable).
		Where(squirrel.Eq{"identity_key": identityKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanMetric(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
	}

	return record, nil
}

func (r *metricRepository) ListByAccountAndRange(ctx context.Context, accountID string, dateRange domain.DateRange) ([]*domain.MetricRecord, error) {
	query, args, err := r.conn.Builder().
		Select(adMetricColumns).
		From(adMetricsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"metric_date": dateRange.StartString()}).
		Where(squirrel.LtOrEq{"metric_date": dateRange.EndString()}).
		OrderBy("metric_date DESC", "campaign_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.MetricRecord, 0)
	for rows.Next() {
		record, err := scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// BackfillClientLinks preenche client_id nas métricas gravadas antes do vínculo existir
func (r *metricRepository) BackfillClientLinks(ctx context.Context) (int64, error) {
	result, err := r.conn.Exec(ctx, backfillClientLinksQuery)
	if err != nil {
		return 0, fmt.Errorf("erro ao preencher client_id: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected, nil
}

func scanMetric(row scanner) (*domain.MetricRecord, error) {
	record := &domain.MetricRecord{}

	var date string
	if err := row.Scan(
		&record.IdentityKey,
		&date,
		&record.AccountID,
		&record.ClientID,
		&record.CampaignID,
		&record.CampaignName,
		&record.Platform,
		&record.Impressions,
		&record.Clicks,
		&record.Spend,
		&record.Leads,
		&record.Revenue,
		&record.CPA,
		&record.CTR,
		&record.ConversionRate,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil, fmt.Errorf("metric_date inválida %q: %w", date, err)
	}
	record.Date = parsed

	return record, nil
}
