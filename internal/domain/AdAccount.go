package domain

import (
	"fmt"
	"strings"
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusEnabled AdAccountStatus = "enabled"
	AdAccountStatusPaused  AdAccountStatus = "paused"
	AdAccountStatusRemoved AdAccountStatus = "removed"
	AdAccountStatusUnknown AdAccountStatus = "unknown"
)

type AdAccountType string

const (
	AdAccountTypeClient  AdAccountType = "client"
	AdAccountTypeManager AdAccountType = "manager"
	AdAccountTypeTest    AdAccountType = "test"
)

type AdAccount struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	NameIsPlaceholder bool            `json:"name_is_placeholder"`
	CurrencyCode      string          `json:"currency_code,omitempty"`
	TimeZone          string          `json:"time_zone,omitempty"`
	IsManager         bool            `json:"is_manager"`
	Status            AdAccountStatus `json:"status"`
	Type              AdAccountType   `json:"account_type"`
	Platform          string          `json:"platform"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PlaceholderAccountName é o nome usado quando os metadados da conta não puderam ser lidos
func PlaceholderAccountName(accountID string) string {
	return fmt.Sprintf("Account %s", accountID)
}

func NewPlaceholderAccount(accountID, platform string) *AdAccount {
	return &AdAccount{
		ID:                accountID,
		Name:              PlaceholderAccountName(accountID),
		NameIsPlaceholder: true,
		Status:            AdAccountStatusUnknown,
		Type:              AdAccountTypeClient,
		Platform:          platform,
	}
}

func (a *AdAccount) HasRealName() bool {
	return a != nil && !a.NameIsPlaceholder && strings.TrimSpace(a.Name) != ""
}

// MergeAccounts deduplica por ID mantendo a ordem da primeira aparição.
// Um registro com nome real sempre substitui um placeholder.
func MergeAccounts(accounts []*AdAccount) []*AdAccount {
	merged := make([]*AdAccount, 0, len(accounts))
	position := make(map[string]int, len(accounts))

	for _, acc := range accounts {
		if acc == nil || acc.ID == "" {
			continue
		}

		idx, seen := position[acc.ID]
		if !seen {
			position[acc.ID] = len(merged)
			merged = append(merged, acc)
			continue
		}

		if !merged[idx].HasRealName() && acc.HasRealName() {
			merged[idx] = acc
		}
	}

	return merged
}

// NormalizeAccountID aceita "123-456-7890", "1234567890" ou "customers/1234567890".
func NormalizeAccountID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	id = strings.TrimPrefix(id, "customers/")
	id = strings.ReplaceAll(id, "-", "")

	if id == "" {
		return "", fmt.Errorf("%w: account id vazio", ErrInvalidRequest)
	}

	for _, r := range id {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: account id inválido %q", ErrInvalidRequest, raw)
		}
	}

	return id, nil
}

// NormalizeAccountStatus converte o CustomerStatus do Google Ads no ciclo de vida da conta.
// SUSPENDED vira paused; CANCELED e CLOSED viram removed.
func NormalizeAccountStatus(raw string) AdAccountStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "enabled":
		return AdAccountStatusEnabled
	case "suspended", "paused":
		return AdAccountStatusPaused
	case "canceled", "cancelled", "closed", "removed":
		return AdAccountStatusRemoved
	default:
		return AdAccountStatusUnknown
	}
}
