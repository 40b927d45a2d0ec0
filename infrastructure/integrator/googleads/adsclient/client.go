package adsclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks
type Client interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (*adsdomain.TokenResponse, error)
	ListAccessibleCustomers(ctx context.Context, accessToken string) ([]string, error)
	Search(ctx context.Context, req QueryRequest) ([]adsdomain.GoogleAdsRow, error)
	SearchStream(ctx context.Context, req QueryRequest) ([]adsdomain.GoogleAdsRow, error)
}

// QueryRequest é uma consulta GAQL contra um customer.
// LoginCustomerID vazio omite o cabeçalho login-customer-id.
type QueryRequest struct {
	AccessToken     string
	CustomerID      string
	LoginCustomerID string
	Query           string
}

type AdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.GoogleAds.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AdsClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *AdsClient) newRequest(ctx context.Context, method, url, accessToken, loginCustomerID string, payload any) (*http.Request, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}

	return req, nil
}

func (c *AdsClient) do(operation string, req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Operation: operation, Err: err}
	}
	return resp, nil
}
