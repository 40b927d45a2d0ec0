package domain

import "time"

// Credential é a autorização delegada de um usuário na plataforma de anúncios.
// O refresh token nunca muda; apenas access token e expiração são renovados.
type Credential struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AccessToken     string    `json:"-"`
	RefreshToken    string    `json:"-"`
	ExpiresAt       time.Time `json:"expires_at"`
	LinkedAccountID *string   `json:"linked_account_id"`
	LoginCustomerID *string   `json:"login_customer_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsExpired considera expirado quando now >= expiração
func (c *Credential) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// AccessGrant é o resultado de EnsureAccessToken
type AccessGrant struct {
	CredentialID    string
	AccessToken     string
	AggregatorID    string
	LinkedAccountID string
	ExpiresAt       time.Time
	Refreshed       bool
}

type RegisterCredentialRequest struct {
	UserID          string `json:"-"`
	RefreshToken    string `json:"refresh_token"`
	LoginCustomerID string `json:"login_customer_id,omitempty"`
}
