package googleads

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const operationFetchMetrics = "fetch metrics"

// FetchMetrics extrai as métricas diárias por campanha da conta alvo.
// Zero linhas devolve slice vazio sem erro.
func (s *GoogleAdsIntegrator) FetchMetrics(ctx context.Context, query domain.MetricsQuery) ([]*domain.MetricRecord, error) {
	platform := query.Platform
	if platform == "" {
		platform = s.platform()
	}

	fields := logrus.Fields{
		"account_id":    query.TargetAccountID,
		"aggregator_id": query.AggregatorID,
		"date_range":    query.DateRange.String(),
	}

	rows, err := s.Client.SearchStream(ctx, adsclient.QueryRequest{
		AccessToken:     query.AccessToken,
		CustomerID:      query.TargetAccountID,
		LoginCustomerID: query.AggregatorID,
		Query:           buildMetricsQuery(query.DateRange),
	})
	if err != nil {
		classified := classifyQueryError(err, operationFetchMetrics, query.TargetAccountID, query.AggregatorID)
		logrus.WithFields(fields).WithError(classified).Error("googleads: failed to fetch metrics")
		return nil, classified
	}

	records := make([]*domain.MetricRecord, 0, len(rows))
	for _, row := range rows {
		record := FactoryMetricRecord(row, query.TargetAccountID, platform)
		if record == nil {
			continue
		}
		records = append(records, record)
	}

	fields["rows"] = len(rows)
	fields["records"] = len(records)
	logrus.WithFields(fields).Info("googleads: metrics fetched")

	return records, nil
}
