package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	ingestionRunsTable = "ingestion_runs"

	ingestionRunColumns = "id, user_id, target_account_id, start_date, end_date, status, records_processed, " +
		"fallback_used, hierarchy_verdict, error_message, created_at, completed_at"

	defaultRunsLimit = 50
)

type IngestionRunRepository interface {
	Create(ctx context.Context, run *domain.IngestionRun) error
	Finalize(ctx context.Context, run *domain.IngestionRun) error
	GetByID(ctx context.Context, runID string) (*domain.IngestionRun, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.IngestionRun, error)
}

type ingestionRunRepository struct {
	conn sqldb.Conn
}

func NewIngestionRunRepository(conn sqldb.Conn) IngestionRunRepository {
	return &ingestionRunRepository{
		conn: conn,
	}
}

func (r *ingestionRunRepository) Create(ctx context.Context, run *domain.IngestionRun) error {
	query, args, err := r.conn.Builder().
		Insert(ingestionRunsTable).
		Columns(ingestionRunColumns).
		Values(
			run.ID,
			run.UserID,
			run.TargetAccountID,
			run.DateRange.StartString(),
			run.DateRange.EndString(),
			string(run.Status),
			run.RecordsProcessed,
			run.FallbackUsed,
			string(run.HierarchyVerdict),
			run.ErrorMessage,
			run.CreatedAt.UTC(),
			run.CompletedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar ingestion run: %w", err)
	}

	return nil
}

// Finalize grava a transição terminal. Só atualiza runs ainda em running;
// caso contrário devolve ErrRunFinalized.
func (r *ingestionRunRepository) Finalize(ctx context.Context, run *domain.IngestionRun) error {
	if !run.IsTerminal() {
		return fmt.Errorf("%w: run %s ainda está %s", domain.ErrInvalidRequest, run.ID, run.Status)
	}

	var completedAt any
	if run.CompletedAt != nil {
		completedAt = run.CompletedAt.UTC()
	}

	query, args, err := r.conn.Builder().
		Update(ingestionRunsTable).
		Set("status", string(run.Status)).
		Set("records_processed", run.RecordsProcessed).
		Set("fallback_used", run.FallbackUsed).
		Set("hierarchy_verdict", string(run.HierarchyVerdict)).
		Set("error_message", run.ErrorMessage).
		Set("completed_at", completedAt).
		Where(squirrel.Eq{"id": run.ID, "status": string(domain.RunStatusRunning)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar ingestion run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: run %s", domain.ErrRunFinalized, run.ID)
	}

	return nil
}

func (r *ingestionRunRepository) GetByID(ctx context.Context, runID string) (*domain.IngestionRun, error) {
	query, args, err := r.conn.Builder().
		Select(ingestionRunColumns).
		From(ingestionRunsTable).
		Where(squirrel.Eq{"id": runID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanIngestionRun(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ingestion run: %w", err)
	}

	return run, nil
}

func (r *ingestionRunRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.IngestionRun, error) {
	if limit <= 0 {
		limit = defaultRunsLimit
	}

	query, args, err := r.conn.Builder().
		Select(ingestionRunColumns).
		From(ingestionRunsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.IngestionRun, 0)
	for rows.Next() {
		run, err := scanIngestionRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ingestion run: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func scanIngestionRun(row scanner) (*domain.IngestionRun, error) {
	run := &domain.IngestionRun{}

	var start, end, status, verdict string
	var completedAt sql.NullTime
	if err := row.Scan(
		&run.ID,
		&run.UserID,
		&run.TargetAccountID,
		&start,
		&end,
		&status,
		&run.RecordsProcessed,
		&run.FallbackUsed,
		&verdict,
		&run.ErrorMessage,
		&run.CreatedAt,
		&completedAt,
	); err != nil {
		return nil, err
	}

	run.Status = domain.RunStatus(status)
	run.HierarchyVerdict = domain.VerdictStatus(verdict)
	if completedAt.Valid {
		t := completedAt.Time
		run.CompletedAt = &t
	}

	var err error
	if run.DateRange.Start, err = time.Parse(time.DateOnly, start); err != nil {
		return nil, fmt.Errorf("start_date inválida %q: %w", start, err)
	}
	if run.DateRange.End, err = time.Parse(time.DateOnly, end); err != nil {
		return nil, fmt.Errorf("end_date inválida %q: %w", end, err)
	}

	return run, nil
}
