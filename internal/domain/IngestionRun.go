package domain

import (
	"fmt"
	"time"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// IngestionRun é o registro de auditoria de uma execução.
// Nasce em running e transita uma única vez para completed ou failed.
type IngestionRun struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	TargetAccountID  string        `json:"target_account_id"`
	DateRange        DateRange     `json:"date_range"`
	Status           RunStatus     `json:"status"`
	RecordsProcessed int           `json:"records_processed"`
	FallbackUsed     bool          `json:"fallback_used"`
	HierarchyVerdict VerdictStatus `json:"hierarchy_verdict,omitempty"`
	ErrorMessage     *string       `json:"error_message"`
	CreatedAt        time.Time     `json:"created_at"`
	CompletedAt      *time.Time    `json:"completed_at"`
}

func (r *IngestionRun) IsTerminal() bool {
	return r.Status == RunStatusCompleted || r.Status == RunStatusFailed
}

func (r *IngestionRun) Complete(recordsProcessed int, now time.Time) error {
	if r.IsTerminal() {
		return fmt.Errorf("%w: run %s já está %s", ErrRunFinalized, r.ID, r.Status)
	}
	r.Status = RunStatusCompleted
	r.RecordsProcessed = recordsProcessed
	r.ErrorMessage = nil
	r.CompletedAt = &now
	return nil
}

func (r *IngestionRun) Fail(cause error, now time.Time) error {
	if r.IsTerminal() {
		return fmt.Errorf("%w: run %s já está %s", ErrRunFinalized, r.ID, r.Status)
	}
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	r.Status = RunStatusFailed
	r.ErrorMessage = &msg
	r.CompletedAt = &now
	return nil
}

type IngestionRequest struct {
	UserID          string `json:"user_id"`
	TargetAccountID string `json:"target_account_id,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	AllowFallback   *bool  `json:"allow_fallback,omitempty"`
}

type IngestionResponse struct {
	OK               bool          `json:"ok"`
	RunID            string        `json:"run_id,omitempty"`
	RecordsProcessed int           `json:"records_processed"`
	DateRange        *DateRange    `json:"date_range,omitempty"`
	FallbackUsed     bool          `json:"fallback_used"`
	HierarchyVerdict VerdictStatus `json:"hierarchy_verdict,omitempty"`
	Error            string        `json:"error,omitempty"`
}
