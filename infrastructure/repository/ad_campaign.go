package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	adCampaignsTable = "ad_campaigns"

	adCampaignColumns = "identity_key, account_id, campaign_id, name, status, channel_type, platform, last_seen_date, created_at, updated_at"
)

// last_seen_date só avança
const adCampaignUpsertSuffix = `ON CONFLICT (identity_key) DO UPDATE SET
	name = excluded.name,
	status = excluded.status,
	channel_type = excluded.channel_type,
	last_seen_date = CASE WHEN excluded.last_seen_date > ad_campaigns.last_seen_date
		THEN excluded.last_seen_date ELSE ad_campaigns.last_seen_date END,
	updated_at = excluded.updated_at`

type CampaignRepository interface {
	UpsertBatch(ctx context.Context, campaigns []*domain.Campaign) error
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn sqldb.Conn
}

func NewCampaignRepository(conn sqldb.Conn) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) UpsertBatch(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	now := time.Now().UTC()
	builder := r.conn.Builder().
		Insert(adCampaignsTable).
		Columns(adCampaignColumns)

	for _, c := range campaigns {
		if c.IdentityKey == "" {
			return fmt.Errorf("campanha %s sem identity_key", c.CampaignID)
		}
		builder = builder.Values(
			c.IdentityKey,
			c.AccountID,
			c.CampaignID,
			c.Name,
			string(c.Status),
			c.ChannelType,
			c.Platform,
			c.LastSeenDate.Format(time.DateOnly),
			now,
			now,
		)
	}

	query, args, err := builder.Suffix(adCampaignUpsertSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar campanhas: %w", err)
	}

	return nil
}

func (r *campaignRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	query, args, err := r.conn.Builder().
		Select("identity_key, account_id, campaign_id, name, status, channel_type, platform, last_seen_date").
		From(adCampaignsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		c := &domain.Campaign{}
		var status, lastSeen string
		if err := rows.Scan(&c.IdentityKey, &c.AccountID, &c.CampaignID, &c.Name, &status, &c.ChannelType, &c.Platform, &lastSeen); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}

		c.Status = domain.CampaignStatus(status)
		if c.LastSeenDate, err = time.Parse(time.DateOnly, lastSeen); err != nil {
			return nil, fmt.Errorf("last_seen_date inválida %q: %w", lastSeen, err)
		}

		campaigns = append(campaigns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
