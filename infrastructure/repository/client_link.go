package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
)

const clientLinksTable = "client_account_links"

// ClientLinkRepository lê o vínculo conta -> cliente interno mantido por outro sistema
type ClientLinkRepository interface {
	GetClientIDByAccountID(ctx context.Context, accountID string) (*string, error)
	Upsert(ctx context.Context, accountID, clientID string) error
}

type clientLinkRepository struct {
	conn sqldb.Conn
}

func NewClientLinkRepository(conn sqldb.Conn) ClientLinkRepository {
	return &clientLinkRepository{
		conn: conn,
	}
}

// GetClientIDByAccountID devolve nil quando a conta ainda não tem cliente
func (r *clientLinkRepository) GetClientIDByAccountID(ctx context.Context, accountID string) (*string, error) {
	query, args, err := r.conn.Builder().
		Select("client_id").
		From(clientLinksTable).
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var clientID string
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&clientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar vínculo de cliente: %w", err)
	}

	return &clientID, nil
}

func (r *clientLinkRepository) Upsert(ctx context.Context, accountID, clientID string) error {
	query, args, err := r.conn.Builder().
		Insert(clientLinksTable).
		Columns("account_id", "client_id", "created_at").
		Values(accountID, clientID, time.Now().UTC()).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET client_id = excluded.client_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar vínculo de cliente: %w", err)
	}

	return nil
}
