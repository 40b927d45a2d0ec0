package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	adAccountsTable = "ad_accounts"

	adAccountColumns = "account_id, name, name_is_placeholder, currency_code, time_zone, is_manager, status, account_type, platform, created_at, updated_at"
)

// Placeholder nunca sobrescreve um nome real já gravado
const adAccountUpsertSuffix = `ON CONFLICT (account_id) DO UPDATE SET
	name = excluded.name,
	name_is_placeholder = excluded.name_is_placeholder,
	currency_code = excluded.currency_code,
	time_zone = excluded.time_zone,
	is_manager = excluded.is_manager,
	status = excluded.status,
	account_type = excluded.account_type,
	platform = excluded.platform,
	updated_at = excluded.updated_at
WHERE NOT excluded.name_is_placeholder OR ad_accounts.name_is_placeholder`

type AdAccountRepository interface {
	UpsertBatch(ctx context.Context, accounts []*domain.AdAccount) error
	GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error)
	List(ctx context.Context) ([]*domain.AdAccount, error)
}

type adAccountRepository struct {
	conn sqldb.Conn
}

func NewAdAccountRepository(conn sqldb.Conn) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) UpsertBatch(ctx context.Context, accounts []*domain.AdAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	now := time.Now().UTC()
	builder := r.conn.Builder().
		Insert(adAccountsTable).
		Columns(adAccountColumns)

	for _, acc := range domain.MergeAccounts(accounts) {
		builder = builder.Values(
			acc.ID,
			acc.Name,
			acc.NameIsPlaceholder,
			acc.CurrencyCode,
			acc.TimeZone,
			acc.IsManager,
			string(acc.Status),
			string(acc.Type),
			acc.Platform,
			now,
			now,
		)
	}

	query, args, err := builder.Suffix(adAccountUpsertSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar contas: %w", err)
	}

	logrus.WithField("total_accounts", len(accounts)).Debug("accounts: contas salvas")

	return nil
}

func (r *adAccountRepository) GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	query, args, err := r.conn.Builder().
		Select(adAccountColumns).
		From(adAccountsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc, err := scanAdAccount(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return acc, nil
}

func (r *adAccountRepository) List(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := r.conn.Builder().
		Select(adAccountColumns).
		From(adAccountsTable).
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAdAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func scanAdAccount(row scanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	var status, accountType string
	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.NameIsPlaceholder,
		&acc.CurrencyCode,
		&acc.TimeZone,
		&acc.IsManager,
		&status,
		&accountType,
		&acc.Platform,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.Status = domain.AdAccountStatus(status)
	acc.Type = domain.AdAccountType(accountType)

	return acc, nil
}
