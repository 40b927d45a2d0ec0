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
	credentialsTable = "ads_credentials"

	credentialColumns = "c.id, c.user_id, c.access_token, c.refresh_token, c.expires_at, c.linked_account_id, c.login_customer_id, c.created_at, c.updated_at"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vfg2006/ads-sync-api/infrastructure/repository CredentialRepository,AdAccountRepository,MetricRepository,CampaignRepository,ClientLinkRepository,IngestionRunRepository

type CredentialRepository interface {
	Create(ctx context.Context, credential *domain.Credential) error
	GetLatestCredential(ctx context.Context, userID string) (*domain.Credential, error)
	UpdateAccessToken(ctx context.Context, credentialID, accessToken string, expiresAt time.Time) error
	UpdateLinkedAccount(ctx context.Context, credentialID, linkedAccountID, aggregatorID string) error
	ListLinkedCredentials(ctx context.Context) ([]*domain.Credential, error)
}

type credentialRepository struct {
	conn sqldb.Conn
}

func NewCredentialRepository(conn sqldb.Conn) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

func (r *credentialRepository) Create(ctx context.Context, credential *domain.Credential) error {
	now := time.Now().UTC()
	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = now
	}
	credential.UpdatedAt = now

	query, args, err := r.conn.Builder().
		Insert(credentialsTable).
		Columns("id", "user_id", "access_token", "refresh_token", "expires_at", "linked_account_id", "login_customer_id", "created_at", "updated_at").
		Values(
			credential.ID,
			credential.UserID,
			credential.AccessToken,
			credential.RefreshToken,
			credential.ExpiresAt.UTC(),
			credential.LinkedAccountID,
			credential.LoginCustomerID,
			credential.CreatedAt.UTC(),
			credential.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir credencial: %w", err)
	}

	return nil
}

// GetLatestCredential devolve a credencial mais recente do usuário, ou nil quando não existe
func (r *credentialRepository) GetLatestCredential(ctx context.Context, userID string) (*domain.Credential, error) {
	query, args, err := r.conn.Builder().
		Select(credentialColumns).
		From(credentialsTable + " c").
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	credential, err := scanCredential(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
	}

	return credential, nil
}

func (r *credentialRepository) UpdateAccessToken(ctx context.Context, credentialID, accessToken string, expiresAt time.Time) error {
	query, args, err := r.conn.Builder().
		Update(credentialsTable).
		Set("access_token", accessToken).
		Set("expires_at", expiresAt.UTC()).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": credentialID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar access token: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("credencial %s não encontrada", credentialID)
	}

	return nil
}

// UpdateLinkedAccount grava a conta vinculada e o agregador resolvidos na descoberta.
// aggregatorID vazio preserva o valor atual.
func (r *credentialRepository) UpdateLinkedAccount(ctx context.Context, credentialID, linkedAccountID, aggregatorID string) error {
	builder := r.conn.Builder().
		Update(credentialsTable).
		Set("linked_account_id", linkedAccountID).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": credentialID})

	if aggregatorID != "" {
		builder = builder.Set("login_customer_id", aggregatorID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar conta vinculada: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"credential_id":     credentialID,
		"linked_account_id": linkedAccountID,
		"aggregator_id":     aggregatorID,
	}).Debug("credentials: conta vinculada atualizada")

	return nil
}

// ListLinkedCredentials devolve a credencial mais recente de cada usuário que já tem conta vinculada
func (r *credentialRepository) ListLinkedCredentials(ctx context.Context) ([]*domain.Credential, error) {
	query, args, err := r.conn.Builder().
		Select(credentialColumns).
		From(credentialsTable + " c").
		Where("c.created_at = (SELECT MAX(c2.created_at) FROM " + credentialsTable + " c2 WHERE c2.user_id = c.user_id)").
		Where(squirrel.NotEq{"c.linked_account_id": nil}).
		OrderBy("c.user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	credentials := make([]*domain.Credential, 0)
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
		}
		credentials = append(credentials, credential)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return credentials, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner) (*domain.Credential, error) {
	credential := &domain.Credential{}

	if err := row.Scan(
		&credential.ID,
		&credential.UserID,
		&credential.AccessToken,
		&credential.RefreshToken,
		&credential.ExpiresAt,
		&credential.LinkedAccountID,
		&credential.LoginCustomerID,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return credential, nil
}
