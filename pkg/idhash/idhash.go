package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// MetricKey identifica uma linha de métrica diária.
// Formula: SHA256(account|date|campaign|platform), hex com 64 caracteres.
func MetricKey(accountID, date, campaignID, platform string) string {
	return compute(accountID, date, campaignID, platform)
}

// CampaignKey identifica uma campanha: SHA256(account|campaign|platform)
func CampaignKey(accountID, campaignID, platform string) string {
	return compute(accountID, campaignID, platform)
}

func compute(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(hash[:])
}
