package migrations

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
)

type migration struct {
	version int
	name    string
	up      string
}

// O schema usa apenas tipos aceitos por postgres e sqlite. Datas de
// métrica ficam em VARCHAR(10) no formato YYYY-MM-DD.
var migrations = []migration{
	{
		version: 1,
		name:    "credentials",
		up: `
			CREATE TABLE IF NOT EXISTS ads_credentials (
				id VARCHAR(32) PRIMARY KEY,
				user_id VARCHAR(64) NOT NULL,
				access_token TEXT NOT NULL DEFAULT '',
				refresh_token TEXT NOT NULL,
				expires_at TIMESTAMP NOT NULL,
				linked_account_id VARCHAR(32),
				login_customer_id VARCHAR(32),
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_ads_credentials_user_created ON ads_credentials(user_id, created_at);
		`,
	},
	{
		version: 2,
		name:    "accounts",
		up: `
			CREATE TABLE IF NOT EXISTS ad_accounts (
				account_id VARCHAR(32) PRIMARY KEY,
				name TEXT NOT NULL,
				name_is_placeholder BOOLEAN NOT NULL DEFAULT FALSE,
				currency_code VARCHAR(8) NOT NULL DEFAULT '',
				time_zone VARCHAR(64) NOT NULL DEFAULT '',
				is_manager BOOLEAN NOT NULL DEFAULT FALSE,
				status VARCHAR(16) NOT NULL DEFAULT 'unknown',
				account_type VARCHAR(16) NOT NULL DEFAULT 'client',
				platform VARCHAR(32) NOT NULL,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE TABLE IF NOT EXISTS client_account_links (
				account_id VARCHAR(32) PRIMARY KEY,
				client_id VARCHAR(64) NOT NULL,
				created_at TIMESTAMP NOT NULL
			);
		`,
	},
	{
		version: 3,
		name:    "metrics",
		up: `
			CREATE TABLE IF NOT EXISTS ad_metrics (
				identity_key VARCHAR(64) PRIMARY KEY,
				metric_date VARCHAR(10) NOT NULL,
				account_id VARCHAR(32) NOT NULL,
				client_id VARCHAR(64),
				campaign_id VARCHAR(32) NOT NULL,
				campaign_name TEXT NOT NULL DEFAULT '',
				platform VARCHAR(32) NOT NULL,
				impressions BIGINT NOT NULL DEFAULT 0,
				clicks BIGINT NOT NULL DEFAULT 0,
				spend DOUBLE PRECISION NOT NULL DEFAULT 0,
				leads DOUBLE PRECISION NOT NULL DEFAULT 0,
				revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
				cpa DOUBLE PRECISION NOT NULL DEFAULT 0,
				ctr DOUBLE PRECISION NOT NULL DEFAULT 0,
				conversion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_ad_metrics_account_date ON ad_metrics(account_id, metric_date);

			CREATE TABLE IF NOT EXISTS ad_campaigns (
				identity_key VARCHAR(64) PRIMARY KEY,
				account_id VARCHAR(32) NOT NULL,
				campaign_id VARCHAR(32) NOT NULL,
				name TEXT NOT NULL DEFAULT '',
				status VARCHAR(16) NOT NULL DEFAULT 'enabled',
				channel_type VARCHAR(32) NOT NULL DEFAULT '',
				platform VARCHAR(32) NOT NULL,
				last_seen_date VARCHAR(10) NOT NULL,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_ad_campaigns_account ON ad_campaigns(account_id);
		`,
	},
	{
		version: 4,
		name:    "ingestion_runs",
		up: `
			CREATE TABLE IF NOT EXISTS ingestion_runs (
				id VARCHAR(32) PRIMARY KEY,
				user_id VARCHAR(64) NOT NULL,
				target_account_id VARCHAR(32) NOT NULL,
				start_date VARCHAR(10) NOT NULL,
				end_date VARCHAR(10) NOT NULL,
				status VARCHAR(16) NOT NULL,
				records_processed INTEGER NOT NULL DEFAULT 0,
				fallback_used BOOLEAN NOT NULL DEFAULT FALSE,
				hierarchy_verdict VARCHAR(16) NOT NULL DEFAULT '',
				error_message TEXT,
				created_at TIMESTAMP NOT NULL,
				completed_at TIMESTAMP
			);

			CREATE INDEX IF NOT EXISTS idx_ingestion_runs_user_created ON ingestion_runs(user_id, created_at);
		`,
	},
}

// Run aplica as migrations pendentes numa única transação.
func Run(ctx context.Context, conn sqldb.Conn) error {
	_, err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(64) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("migrations: erro ao criar tabela de controle: %w", err)
	}

	currentVersion, err := CurrentVersion(ctx, conn)
	if err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(q sqldb.Queryer) error {
		for _, m := range migrations {
			if m.version <= currentVersion {
				continue
			}

			if _, err := q.Exec(ctx, m.up); err != nil {
				return fmt.Errorf("migrations: erro na versão %d (%s): %w", m.version, m.name, err)
			}

			query, args, err := conn.Builder().
				Insert("schema_migrations").
				Columns("version", "name").
				Values(m.version, m.name).
				ToSql()
			if err != nil {
				return fmt.Errorf("migrations: erro ao construir a query: %w", err)
			}

			if _, err := q.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("migrations: erro ao registrar versão %d: %w", m.version, err)
			}

			logrus.WithFields(logrus.Fields{
				"version": m.version,
				"name":    m.name,
			}).Info("migrations: versão aplicada")
		}
		return nil
	})
}

func CurrentVersion(ctx context.Context, conn sqldb.Conn) (int, error) {
	var currentVersion int
	err := conn.QueryRow(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return 0, fmt.Errorf("migrations: erro ao obter versão atual: %w", err)
	}
	return currentVersion, nil
}

func LatestVersion() int {
	return migrations[len(migrations)-1].version
}
