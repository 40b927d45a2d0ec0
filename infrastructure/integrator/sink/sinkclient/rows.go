package sinkclient

import (
	"time"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// As linhas espelham as colunas das tabelas de destino

type metricRow struct {
	IdentityKey    string  `json:"identity_key"`
	MetricDate     string  `json:"metric_date"`
	AccountID      string  `json:"account_id"`
	ClientID       *string `json:"client_id,omitempty"`
	CampaignID     string  `json:"campaign_id"`
	CampaignName   string  `json:"campaign_name"`
	Platform       string  `json:"platform"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Spend          float64 `json:"spend"`
	Leads          float64 `json:"leads"`
	Revenue        float64 `json:"revenue"`
	CPA            float64 `json:"cpa"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	UpdatedAt      string  `json:"updated_at"`
}

type accountRow struct {
	AccountID         string `json:"account_id"`
	Name              string `json:"name"`
	NameIsPlaceholder bool   `json:"name_is_placeholder"`
	CurrencyCode      string `json:"currency_code,omitempty"`
	TimeZone          string `json:"time_zone,omitempty"`
	IsManager         bool   `json:"is_manager"`
	Status            string `json:"status"`
	AccountType       string `json:"account_type"`
	Platform          string `json:"platform"`
	UpdatedAt         string `json:"updated_at"`
}

type campaignRow struct {
	IdentityKey  string `json:"identity_key"`
	AccountID    string `json:"account_id"`
	CampaignID   string `json:"campaign_id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ChannelType  string `json:"channel_type,omitempty"`
	Platform     string `json:"platform"`
	LastSeenDate string `json:"last_seen_date"`
	UpdatedAt    string `json:"updated_at"`
}

func toMetricRow(rec *domain.MetricRecord, now time.Time) metricRow {
	return metricRow{
		IdentityKey:    rec.IdentityKey,
		MetricDate:     rec.DateString(),
		AccountID:      rec.AccountID,
		ClientID:       rec.ClientID,
		CampaignID:     rec.CampaignOrNone(),
		CampaignName:   rec.CampaignName,
		Platform:       rec.Platform,
		Impressions:    rec.Impressions,
		Clicks:         rec.Clicks,
		Spend:          rec.Spend,
		Leads:          rec.Leads,
		Revenue:        rec.Revenue,
		CPA:            rec.CPA,
		CTR:            rec.CTR,
		ConversionRate: rec.ConversionRate,
		UpdatedAt:      now.Format(time.RFC3339),
	}
}

func toAccountRow(acc *domain.AdAccount, now time.Time) accountRow {
	return accountRow{
		AccountID:         acc.ID,
		Name:              acc.Name,
		NameIsPlaceholder: acc.NameIsPlaceholder,
		CurrencyCode:      acc.CurrencyCode,
		TimeZone:          acc.TimeZone,
		IsManager:         acc.IsManager,
		Status:            string(acc.Status),
		AccountType:       string(acc.Type),
		Platform:          acc.Platform,
		UpdatedAt:         now.Format(time.RFC3339),
	}
}

func toCampaignRow(c *domain.Campaign, now time.Time) campaignRow {
	return campaignRow{
		IdentityKey:  c.IdentityKey,
		AccountID:    c.AccountID,
		CampaignID:   c.CampaignID,
		Name:         c.Name,
		Status:       string(c.Status),
		ChannelType:  c.ChannelType,
		Platform:     c.Platform,
		LastSeenDate: c.LastSeenDate.Format(time.DateOnly),
		UpdatedAt:    now.Format(time.RFC3339),
	}
}
