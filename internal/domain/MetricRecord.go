package domain

import (
	"time"

	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

// NoCampaignID identifica métricas sem campanha associada
const NoCampaignID = "none"

// MetricRecord é a linha canônica de performance diária por conta e campanha
type MetricRecord struct {
	IdentityKey    string    `json:"identity_key"`
	Date           time.Time `json:"date"`
	AccountID      string    `json:"account_id"`
	ClientID       *string   `json:"client_id"`
	CampaignID     string    `json:"campaign_id"`
	CampaignName   string    `json:"campaign_name"`
	CampaignStatus string    `json:"-"`
	ChannelType    string    `json:"-"`
	Platform       string    `json:"platform"`
	Impressions    int64     `json:"impressions"`
	Clicks         int64     `json:"clicks"`
	Spend          float64   `json:"spend"`
	Leads          float64   `json:"leads"`
	Revenue        float64   `json:"revenue"`
	CPA            float64   `json:"cpa"`
	CTR            float64   `json:"ctr"`
	ConversionRate float64   `json:"conversion_rate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ComputeDerivedRates recalcula CTR, CPA e taxa de conversão a partir dos valores base.
// Denominador zero resulta em 0.
func (m *MetricRecord) ComputeDerivedRates() {
	m.CTR = 0
	if m.Impressions > 0 {
		m.CTR = utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
	}

	m.CPA = 0
	if m.Leads > 0 {
		m.CPA = utils.RoundWithTwoDecimalPlace(m.Spend / m.Leads)
	}

	m.ConversionRate = 0
	if m.Clicks > 0 {
		m.ConversionRate = utils.RoundWithTwoDecimalPlace(m.Leads / float64(m.Clicks) * 100)
	}
}

// DateString retorna a data no formato usado na chave de identidade e no banco
func (m *MetricRecord) DateString() string {
	return m.Date.Format(time.DateOnly)
}

func (m *MetricRecord) CampaignOrNone() string {
	if m.CampaignID == "" {
		return NoCampaignID
	}
	return m.CampaignID
}
