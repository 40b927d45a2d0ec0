package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos secret files lidos do Render
const (
	SecretDeveloperToken    = "google_ads_developer_token"
	SecretOAuthClientID     = "google_ads_client_id"
	SecretOAuthClientSecret = "google_ads_client_secret"
	SecretSinkSharedSecret  = "sink_shared_secret"
	SecretAuthSecret        = "auth_secret"
)

// SecretStorage lista os secret files de um serviço (nome -> conteúdo)
type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

const renderPageSize = 100

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    strings.TrimRight(config.Render.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type renderSecretFile struct {
	SecretFile struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

// ListSecrets percorre as páginas da API do Render seguindo o cursor do último item
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	secrets := make(map[string]string)
	cursor := ""

	for {
		page, err := c.listSecretsPage(ctx, serviceID, cursor)
		if err != nil {
			return nil, err
		}

		for _, sf := range page {
			secrets[sf.SecretFile.Name] = sf.SecretFile.Content
		}

		if len(page) < renderPageSize || page[len(page)-1].Cursor == "" {
			return secrets, nil
		}
		cursor = page[len(page)-1].Cursor
	}
}

func (c *RenderClient) listSecretsPage(ctx context.Context, serviceID, cursor string) ([]renderSecretFile, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(renderPageSize))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("config: render respondeu %d: %s", resp.StatusCode, body)
	}

	var page []renderSecretFile
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("config: resposta inválida do render: %w", err)
	}

	return page, nil
}

// LoadSecrets completa a configuração com os secret files do serviço.
// Valores já definidos por variável de ambiente têm precedência.
func LoadSecrets(ctx context.Context, cfg *Config, storage SecretStorage) error {
	if cfg.Render.ServiceID == "" {
		return nil
	}

	secretsByCode, err := storage.ListSecrets(ctx, cfg.Render.ServiceID)
	if err != nil {
		return fmt.Errorf("config: erro ao obter secrets do Render: %w", err)
	}

	fill := func(target *string, name string) {
		if value, ok := secretsByCode[name]; ok && *target == "" {
			*target = value
		}
	}

	fill(&cfg.GoogleAds.DeveloperToken, SecretDeveloperToken)
	fill(&cfg.GoogleAds.ClientID, SecretOAuthClientID)
	fill(&cfg.GoogleAds.ClientSecret, SecretOAuthClientSecret)
	fill(&cfg.Sink.SharedSecret, SecretSinkSharedSecret)
	fill(&cfg.Auth.Secret, SecretAuthSecret)

	logrus.WithField("secrets", len(secretsByCode)).Info("Secrets do Render carregados")

	return nil
}
