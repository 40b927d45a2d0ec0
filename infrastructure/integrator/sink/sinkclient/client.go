package sinkclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	secretHeader = "X-Sink-Secret"

	resolutionMerge  = "resolution=merge-duplicates"
	resolutionIgnore = "resolution=ignore-duplicates"

	defaultBatchSize = 500
	maxErrorBody     = 1024
)

// Client envia lotes para um endpoint HTTP compatível com upsert por tabela
// (POST {SINK_URL}/{tabela}?on_conflict={chave}).
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.Sink.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (c *Client) batchSize() int {
	if c.cfg.Sink.BatchSize <= 0 {
		return defaultBatchSize
	}
	return c.cfg.Sink.BatchSize
}

// post envia um lote e devolve SinkError para qualquer falha
func (c *Client) post(ctx context.Context, table, conflictKey, resolution string, rows any, count int) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return &domain.SinkError{Target: table, Records: count, Err: fmt.Errorf("erro ao serializar lote: %w", err)}
	}

	endpoint := strings.TrimRight(c.cfg.Sink.URL, "/") + "/" + table + "?on_conflict=" + url.QueryEscape(conflictKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &domain.SinkError{Target: table, Records: count, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", resolution)
	req.Header.Set(secretHeader, c.cfg.Sink.SharedSecret)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.SinkError{Target: table, Records: count, Err: err}
	}
	defer resp.Body.Close()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"target_table": table,
		"records":      count,
		"status_code":  resp.StatusCode,
		"duration_ms":  time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Error("Sink recusou o lote")
		return &domain.SinkError{
			Target:     table,
			Records:    count,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(data))),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	logger.Debug("Lote enviado ao sink")

	return nil
}

// MetricWriter grava métricas no sink HTTP. Linhas sem vínculo local não enviam
// client_id, então um client_id já preenchido no destino é mantido.
type MetricWriter struct{ client *Client }

func (c *Client) Metrics() *MetricWriter { return &MetricWriter{client: c} }

func (w *MetricWriter) UpsertBatch(ctx context.Context, records []*domain.MetricRecord) (int, error) {
	now := w.client.now()
	size := w.client.batchSize()
	written := 0

	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))

		linked := make([]metricRow, 0, end-start)
		unlinked := make([]metricRow, 0)
		for _, rec := range records[start:end] {
			row := toMetricRow(rec, now)
			if row.ClientID == nil {
				unlinked = append(unlinked, row)
				continue
			}
			linked = append(linked, row)
		}

		// Cada POST leva as mesmas colunas em todas as linhas
		for _, rows := range [][]metricRow{linked, unlinked} {
			if len(rows) == 0 {
				continue
			}
			if err := w.client.post(ctx, "ad_metrics", "identity_key", resolutionMerge, rows, len(rows)); err != nil {
				return written, err
			}
			written += len(rows)
		}
	}

	return written, nil
}

// AccountWriter separa placeholders para que nunca sobrescrevam um nome real
type AccountWriter struct{ client *Client }

func (c *Client) Accounts() *AccountWriter { return &AccountWriter{client: c} }

func (w *AccountWriter) UpsertBatch(ctx context.Context, accounts []*domain.AdAccount) error {
	now := w.client.now()
	named := make([]accountRow, 0, len(accounts))
	placeholders := make([]accountRow, 0)

	for _, acc := range accounts {
		if acc.NameIsPlaceholder {
			placeholders = append(placeholders, toAccountRow(acc, now))
			continue
		}
		named = append(named, toAccountRow(acc, now))
	}

	if len(named) > 0 {
		if err := w.client.post(ctx, "ad_accounts", "account_id", resolutionMerge, named, len(named)); err != nil {
			return err
		}
	}

	if len(placeholders) > 0 {
		if err := w.client.post(ctx, "ad_accounts", "account_id", resolutionIgnore, placeholders, len(placeholders)); err != nil {
			return err
		}
	}

	return nil
}

type CampaignWriter struct{ client *Client }

func (c *Client) Campaigns() *CampaignWriter { return &CampaignWriter{client: c} }

func (w *CampaignWriter) UpsertBatch(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	now := w.client.now()
	rows := make([]campaignRow, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, toCampaignRow(c, now))
	}

	return w.client.post(ctx, "ad_campaigns", "identity_key", resolutionMerge, rows, len(rows))
}
