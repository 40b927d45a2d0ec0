package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricKey(t *testing.T) {
	tests := []struct {
		name       string
		accountID  string
		date       string
		campaignID string
		platform   string
	}{
		{name: "com campanha", accountID: "4445556666", date: "2024-01-01", campaignID: "123", platform: "google_ads"},
		{name: "sem campanha", accountID: "4445556666", date: "2024-01-01", campaignID: "none", platform: "google_ads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetricKey(tt.accountID, tt.date, tt.campaignID, tt.platform)

			sum := sha256.Sum256([]byte(tt.accountID + "|" + tt.date + "|" + tt.campaignID + "|" + tt.platform))
			assert.Equal(t, hex.EncodeToString(sum[:]), got)
			assert.Len(t, got, 64)
			assert.Equal(t, got, MetricKey(tt.accountID, tt.date, tt.campaignID, tt.platform))
		})
	}
}

func TestMetricKey_DistinctTuples(t *testing.T) {
	base := MetricKey("1", "2024-01-01", "10", "google_ads")

	assert.NotEqual(t, base, MetricKey("1", "2024-01-02", "10", "google_ads"))
	assert.NotEqual(t, base, MetricKey("1", "2024-01-01", "11", "google_ads"))
	assert.NotEqual(t, base, MetricKey("2", "2024-01-01", "10", "google_ads"))
	assert.NotEqual(t, base, MetricKey("1", "2024-01-01", "10", "meta"))
	assert.NotEqual(t, base, CampaignKey("1", "10", "google_ads"))
}
