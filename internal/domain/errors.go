package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrNoCredential    = errors.New("no stored credential for user")
	ErrTokenRefresh    = errors.New("oauth token refresh rejected")
	ErrHierarchyDenied = errors.New("target account not reachable under aggregator")
	ErrAccessDenied    = errors.New("access denied by ads platform")
	ErrUpstream        = errors.New("ads platform request failed")
	ErrTransient       = errors.New("ads platform temporarily unavailable")
	ErrPartialMetadata = errors.New("account metadata unavailable")
	ErrSink            = errors.New("sink write failed")
	ErrRunNotFound     = errors.New("ingestion run not found")
	ErrRunFinalized    = errors.New("ingestion run already finalized")
)

func withCause(sentinels []error, cause error) []error {
	if cause == nil {
		return sentinels
	}
	return append(sentinels, cause)
}

// NoCredentialError indica que o usuário nunca autorizou a plataforma
type NoCredentialError struct {
	UserID string
}

func (e *NoCredentialError) Error() string {
	return fmt.Sprintf("%s: user %s", ErrNoCredential, e.UserID)
}

func (e *NoCredentialError) Unwrap() error {
	return ErrNoCredential
}

// RefreshError indica que o endpoint OAuth recusou o refresh token
type RefreshError struct {
	UserID     string
	StatusCode int
	Body       string
	Err        error
}

func (e *RefreshError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: user %s status %d: %s", ErrTokenRefresh, e.UserID, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: user %s: %v", ErrTokenRefresh, e.UserID, e.Err)
}

func (e *RefreshError) Unwrap() []error {
	return withCause([]error{ErrTokenRefresh}, e.Err)
}

type HierarchyDeniedError struct {
	AggregatorID    string
	TargetAccountID string
	Verdict         HierarchyVerdict
}

func (e *HierarchyDeniedError) Error() string {
	return fmt.Sprintf("%s: account %s under aggregator %s (%s): %s",
		ErrHierarchyDenied, e.TargetAccountID, e.AggregatorID, e.Verdict.Status, e.Verdict.Reason)
}

func (e *HierarchyDeniedError) Unwrap() error {
	return ErrHierarchyDenied
}

// AccessDeniedError é a recusa de permissão na consulta de métricas
type AccessDeniedError struct {
	TargetAccountID string
	AggregatorID    string
	Message         string
}

func (e *AccessDeniedError) Error() string {
	if e.AggregatorID != "" {
		return fmt.Sprintf("%s: account %s via aggregator %s: %s", ErrAccessDenied, e.TargetAccountID, e.AggregatorID, e.Message)
	}
	return fmt.Sprintf("%s: account %s: %s", ErrAccessDenied, e.TargetAccountID, e.Message)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// UpstreamError cobre status não-2xx, timeouts e respostas malformadas
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s status %d: %s", ErrUpstream, e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUpstream, e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return withCause([]error{ErrUpstream}, e.Err)
}

// TransientError é um UpstreamError que pode ter sucesso se repetido (429, 5xx)
type TransientError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s status %d: %s", ErrTransient, e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s: %v", ErrTransient, e.Operation, e.Err)
}

func (e *TransientError) Unwrap() []error {
	return withCause([]error{ErrTransient, ErrUpstream}, e.Err)
}

// PartialMetadataFailure é a falha de leitura de metadados de uma única conta
type PartialMetadataFailure struct {
	AccountID string
	Err       error
}

func (e *PartialMetadataFailure) Error() string {
	return fmt.Sprintf("%s: account %s: %v", ErrPartialMetadata, e.AccountID, e.Err)
}

func (e *PartialMetadataFailure) Unwrap() []error {
	return withCause([]error{ErrPartialMetadata}, e.Err)
}

// SinkError é a falha de escrita de um lote inteiro
type SinkError struct {
	Target     string
	Records    int
	StatusCode int
	Err        error
}

func (e *SinkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (%d records) status %d: %v", ErrSink, e.Target, e.Records, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s (%d records): %v", ErrSink, e.Target, e.Records, e.Err)
}

func (e *SinkError) Unwrap() []error {
	return withCause([]error{ErrSink}, e.Err)
}
