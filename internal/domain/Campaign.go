package domain

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "enabled"
	CampaignStatusPaused  CampaignStatus = "paused"
	CampaignStatusRemoved CampaignStatus = "removed"
)

type Campaign struct {
	IdentityKey  string         `json:"identity_key"`
	AccountID    string         `json:"account_id"`
	CampaignID   string         `json:"campaign_id"`
	Name         string         `json:"name"`
	Status       CampaignStatus `json:"status"`
	ChannelType  string         `json:"channel_type,omitempty"`
	Platform     string         `json:"platform"`
	LastSeenDate time.Time      `json:"last_seen_date"`
}

// NormalizeCampaignStatus assume "enabled" quando a origem não informa o status
func NormalizeCampaignStatus(raw string) CampaignStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paused":
		return CampaignStatusPaused
	case "removed":
		return CampaignStatusRemoved
	default:
		return CampaignStatusEnabled
	}
}

// CampaignsFromMetrics deriva uma campanha por ID distinto, guardando a data mais recente vista.
func CampaignsFromMetrics(records []*MetricRecord) []*Campaign {
	campaigns := make([]*Campaign, 0)
	byID := make(map[string]*Campaign)

	for _, rec := range records {
		if rec == nil || rec.CampaignID == "" || rec.CampaignID == NoCampaignID {
			continue
		}

		key := rec.AccountID + "|" + rec.CampaignID
		if existing, ok := byID[key]; ok {
			if rec.Date.After(existing.LastSeenDate) {
				existing.LastSeenDate = rec.Date
				existing.Name = rec.CampaignName
				existing.Status = NormalizeCampaignStatus(rec.CampaignStatus)
			}
			continue
		}

		c := &Campaign{
			AccountID:    rec.AccountID,
			CampaignID:   rec.CampaignID,
			Name:         rec.CampaignName,
			Status:       NormalizeCampaignStatus(rec.CampaignStatus),
			ChannelType:  rec.ChannelType,
			Platform:     rec.Platform,
			LastSeenDate: rec.Date,
		}
		byID[key] = c
		campaigns = append(campaigns, c)
	}

	return campaigns
}
