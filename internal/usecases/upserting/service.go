package upserting

import (
	"context"
	"errors"

	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/idhash"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

const (
	targetMetrics   = "ad_metrics"
	targetAccounts  = "ad_accounts"
	targetCampaigns = "ad_campaigns"
)

// Writers agrupa os destinos do sink. Backfiller é opcional.
type Writers struct {
	Metrics    MetricWriter
	Accounts   AccountWriter
	Campaigns  CampaignWriter
	Links      ClientLinkResolver
	Backfiller ClientLinkBackfiller
}

type Service struct {
	cfg     *config.Config
	writers Writers
}

func NewService(cfg *config.Config, writers Writers) Sink {
	return &Service{
		cfg:     cfg,
		writers: writers,
	}
}

// UpsertMetrics normaliza, calcula a chave de identidade e grava o lote.
// Chaves repetidas no mesmo lote ficam com o último registro.
func (s *Service) UpsertMetrics(ctx context.Context, records []*domain.MetricRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	logger := log.ForContext(ctx)
	links := make(map[string]*string)
	position := make(map[string]int, len(records))
	batch := make([]*domain.MetricRecord, 0, len(records))

	for _, rec := range records {
		if rec == nil {
			continue
		}

		rec.CampaignID = rec.CampaignOrNone()
		if rec.Platform == "" {
			rec.Platform = s.platform()
		}
		rec.IdentityKey = idhash.MetricKey(rec.AccountID, rec.DateString(), rec.CampaignID, rec.Platform)
		rec.ComputeDerivedRates()
		rec.ClientID = s.resolveClientLink(ctx, links, rec.AccountID)

		if idx, seen := position[rec.IdentityKey]; seen {
			batch[idx] = rec
			continue
		}
		position[rec.IdentityKey] = len(batch)
		batch = append(batch, rec)
	}

	if len(batch) < len(records) {
		logger.WithFields(log.Fields{
			"records":    len(records),
			"unique_key": len(batch),
		}).Debug("Registros duplicados colapsados no lote")
	}

	written, err := s.writers.Metrics.UpsertBatch(ctx, batch)
	if err != nil {
		return 0, asSinkError(targetMetrics, len(batch), err)
	}

	logger.WithField("records", written).Info("Métricas gravadas")

	return written, nil
}

func (s *Service) resolveClientLink(ctx context.Context, cache map[string]*string, accountID string) *string {
	if clientID, ok := cache[accountID]; ok {
		return clientID
	}

	var clientID *string
	if s.writers.Links != nil {
		found, err := s.writers.Links.GetClientIDByAccountID(ctx, accountID)
		if err != nil {
			log.ForContext(ctx).
				WithField("account_id", accountID).
				WithError(err).
				Warn("Erro ao buscar vínculo de cliente, gravando sem client_id")
		} else {
			clientID = found
		}
	}

	cache[accountID] = clientID
	return clientID
}

// UpsertAccounts grava as contas preferindo sempre o nome real ao placeholder
func (s *Service) UpsertAccounts(ctx context.Context, accounts []*domain.AdAccount) error {
	merged := domain.MergeAccounts(accounts)
	if len(merged) == 0 {
		return nil
	}

	for _, acc := range merged {
		if acc.Platform == "" {
			acc.Platform = s.platform()
		}
	}

	if err := s.writers.Accounts.UpsertBatch(ctx, merged); err != nil {
		return asSinkError(targetAccounts, len(merged), err)
	}

	log.ForContext(ctx).WithField("records", len(merged)).Info("Contas gravadas")

	return nil
}

func (s *Service) UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error {
	position := make(map[string]int, len(campaigns))
	batch := make([]*domain.Campaign, 0, len(campaigns))

	for _, c := range campaigns {
		if c == nil || c.CampaignID == "" {
			continue
		}
		if c.Platform == "" {
			c.Platform = s.platform()
		}
		c.IdentityKey = idhash.CampaignKey(c.AccountID, c.CampaignID, c.Platform)

		if idx, seen := position[c.IdentityKey]; seen {
			batch[idx] = c
			continue
		}
		position[c.IdentityKey] = len(batch)
		batch = append(batch, c)
	}

	if len(batch) == 0 {
		return nil
	}

	if err := s.writers.Campaigns.UpsertBatch(ctx, batch); err != nil {
		return asSinkError(targetCampaigns, len(batch), err)
	}

	return nil
}

// BackfillClientLinks não faz nada quando o destino não suporta backfill
func (s *Service) BackfillClientLinks(ctx context.Context) (int64, error) {
	if s.writers.Backfiller == nil {
		return 0, nil
	}

	filled, err := s.writers.Backfiller.BackfillClientLinks(ctx)
	if err != nil {
		return 0, asSinkError(targetMetrics, 0, err)
	}

	if filled > 0 {
		log.ForContext(ctx).WithField("records", filled).Info("client_id preenchido em métricas antigas")
	}

	return filled, nil
}

func (s *Service) platform() string {
	if s.cfg.Ingestion.Platform == "" {
		return "google_ads"
	}
	return s.cfg.Ingestion.Platform
}

func asSinkError(target string, records int, err error) error {
	var sinkErr *domain.SinkError
	if errors.As(err, &sinkErr) {
		return err
	}
	return &domain.SinkError{Target: target, Records: records, Err: err}
}
