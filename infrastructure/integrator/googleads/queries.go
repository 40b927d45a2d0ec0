package googleads

import (
	"fmt"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const campaignMetricsQuery = `SELECT segments.date, customer.id, customer.descriptive_name, customer.currency_code, ` +
	`campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, ` +
	`metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, metrics.conversions_value ` +
	`FROM campaign WHERE segments.date BETWEEN '%s' AND '%s' ORDER BY segments.date DESC`

const customerDetailsQuery = `SELECT customer.id, customer.descriptive_name, customer.currency_code, ` +
	`customer.time_zone, customer.manager, customer.status, customer.test_account FROM customer LIMIT 1`

const customerClientQuery = `SELECT customer_client.id, customer_client.manager, customer_client.level ` +
	`FROM customer_client WHERE customer_client.id = %s`

const childAccountsQuery = `SELECT customer_client.id, customer_client.client_customer, customer_client.descriptive_name, ` +
	`customer_client.currency_code, customer_client.time_zone, customer_client.manager, customer_client.test_account, ` +
	`customer_client.status, customer_client.level FROM customer_client WHERE customer_client.level = 1`

func buildMetricsQuery(dr domain.DateRange) string {
	return fmt.Sprintf(campaignMetricsQuery, dr.StartString(), dr.EndString())
}

func buildHierarchyQuery(targetAccountID string) string {
	return fmt.Sprintf(customerClientQuery, targetAccountID)
}
