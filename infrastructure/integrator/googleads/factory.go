package googleads

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const microsPerUnit = 1_000_000

// FactoryMetricRecord converte uma linha do searchStream no formato canônico.
// Devolve nil quando a linha não tem data válida.
func FactoryMetricRecord(row adsdomain.GoogleAdsRow, targetAccountID, platform string) *domain.MetricRecord {
	if row.Segments == nil || row.Segments.Date == "" {
		logrus.WithField("account_id", targetAccountID).Warn("googleads: row without segments.date skipped")
		return nil
	}

	date, err := time.Parse(time.DateOnly, row.Segments.Date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": targetAccountID,
			"date_value": row.Segments.Date,
			"error":      err.Error(),
		}).Warn("googleads: error parsing segments.date")
		return nil
	}

	record := &domain.MetricRecord{
		Date:       date,
		AccountID:  targetAccountID,
		CampaignID: domain.NoCampaignID,
		Platform:   platform,
	}

	if row.Customer != nil && row.Customer.ID != "" {
		record.AccountID = row.Customer.ID
	}

	if row.Campaign != nil {
		if row.Campaign.ID != "" {
			record.CampaignID = row.Campaign.ID
		}
		record.CampaignName = row.Campaign.Name
		record.CampaignStatus = string(domain.NormalizeCampaignStatus(row.Campaign.Status))
		record.ChannelType = strings.ToLower(row.Campaign.AdvertisingChannelType)
	} else {
		record.CampaignStatus = string(domain.CampaignStatusEnabled)
	}

	if row.Metrics != nil {
		record.Impressions = parseInt64(row.Metrics.Impressions, "impressions", targetAccountID)
		record.Clicks = parseInt64(row.Metrics.Clicks, "clicks", targetAccountID)
		record.Spend = float64(parseInt64(row.Metrics.CostMicros, "cost_micros", targetAccountID)) / microsPerUnit
		record.Leads = row.Metrics.Conversions
		record.Revenue = row.Metrics.ConversionsValue
	}

	record.ComputeDerivedRates()

	return record
}

// FactoryAdAccount converte o resultado de "FROM customer" num AdAccount
func FactoryAdAccount(customer *adsdomain.Customer, accountID, platform string) *domain.AdAccount {
	if customer == nil {
		return domain.NewPlaceholderAccount(accountID, platform)
	}

	account := &domain.AdAccount{
		ID:           accountID,
		Name:         strings.TrimSpace(customer.DescriptiveName),
		CurrencyCode: customer.CurrencyCode,
		TimeZone:     customer.TimeZone,
		IsManager:    customer.Manager,
		Status:       domain.NormalizeAccountStatus(customer.Status),
		Type:         accountType(customer.Manager, customer.TestAccount),
		Platform:     platform,
	}

	if account.Name == "" {
		account.Name = domain.PlaceholderAccountName(accountID)
		account.NameIsPlaceholder = true
	}

	return account
}

func FactoryChildAccount(client *adsdomain.CustomerClient, platform string) *domain.AdAccount {
	id := client.ID
	if id == "" {
		id = strings.TrimPrefix(client.ClientCustomer, "customers/")
	}

	account := &domain.AdAccount{
		ID:           id,
		Name:         strings.TrimSpace(client.DescriptiveName),
		CurrencyCode: client.CurrencyCode,
		TimeZone:     client.TimeZone,
		IsManager:    client.Manager,
		Status:       domain.NormalizeAccountStatus(client.Status),
		Type:         accountType(client.Manager, client.TestAccount),
		Platform:     platform,
	}

	if account.Name == "" {
		account.Name = domain.PlaceholderAccountName(id)
		account.NameIsPlaceholder = true
	}

	return account
}

func accountType(manager, test bool) domain.AdAccountType {
	switch {
	case manager:
		return domain.AdAccountTypeManager
	case test:
		return domain.AdAccountTypeTest
	default:
		return domain.AdAccountTypeClient
	}
}

// parseInt64 trata ausência como 0 e registra valores malformados
func parseInt64(raw, field, accountID string) int64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"field":      field,
			"value":      raw,
			"error":      err.Error(),
		}).Warn("googleads: error converting metric to integer")
		return 0
	}

	return value
}
