package config

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		cfg     Config
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "postgres monta DSN e URL da API",
			cfg: Config{
				Database:  Database{Driver: DriverPostgres, User: "u", Password: "p", URL: "db:5432/ads"},
				GoogleAds: GoogleAds{BaseURL: "https://googleads.googleapis.com/", Version: "v17", LoginCustomerID: "123-456-7890"},
				Sink:      Sink{Mode: SinkModeDatabase},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "postgres://u:p@db:5432/ads", cfg.Database.DSN)
				assert.Equal(t, "https://googleads.googleapis.com/v17", cfg.GoogleAds.URL)
				assert.Equal(t, "1234567890", cfg.GoogleAds.LoginCustomerID)
				assert.Equal(t, 7, cfg.Ingestion.LookbackDays)
				assert.Equal(t, 1, cfg.Discovery.MaxConcurrentLookups)
			},
		},
		{
			name: "sqlite usa o caminho como DSN",
			cfg: Config{
				Database: Database{Driver: DriverSQLite, URL: "/tmp/ads.db"},
				Sink:     Sink{Mode: SinkModeDatabase},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/tmp/ads.db", cfg.Database.DSN)
			},
		},
		{
			name: "driver desconhecido",
			cfg: Config{
				Database: Database{Driver: "mysql"},
				Sink:     Sink{Mode: SinkModeDatabase},
			},
			wantErr: true,
		},
		{
			name: "desenvolvimento recebe o secret local",
			env:  "development",
			cfg: Config{
				Database: Database{Driver: DriverSQLite},
				Sink:     Sink{Mode: SinkModeDatabase},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DevAuthSecret, cfg.Auth.Secret)
			},
		},
		{
			name: "produção sem AUTH_SECRET",
			env:  "production",
			cfg: Config{
				Database: Database{Driver: DriverSQLite},
				Sink:     Sink{Mode: SinkModeDatabase},
			},
			wantErr: true,
		},
		{
			name: "produção com o secret de desenvolvimento",
			env:  "production",
			cfg: Config{
				Database: Database{Driver: DriverSQLite},
				Sink:     Sink{Mode: SinkModeDatabase},
				Auth:     Auth{Secret: DevAuthSecret},
			},
			wantErr: true,
		},
		{
			name: "produção com secret próprio",
			env:  "production",
			cfg: Config{
				Database: Database{Driver: DriverSQLite},
				Sink:     Sink{Mode: SinkModeDatabase},
				Auth:     Auth{Secret: "s3cret"},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "s3cret", cfg.Auth.Secret)
			},
		},
		{
			name: "produção com Render valida depois de LoadSecrets",
			env:  "production",
			cfg: Config{
				Database: Database{Driver: DriverSQLite},
				Sink:     Sink{Mode: SinkModeDatabase},
				Render:   Render{ServiceID: "srv-1"},
			},
			check: func(t *testing.T, cfg Config) {
				assert.Error(t, cfg.ValidateAuthSecret())
			},
		},
		{
			name: "sink http sem URL",
			cfg: Config{
				Database: Database{Driver: DriverSQLite},
				Sink:     Sink{Mode: SinkModeHTTP},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)

			cfg := tt.cfg
			err := cfg.Normalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"secretFile": {"name": "google_ads_developer_token", "content": "dev-token"}},
			{"secretFile": {"name": "google_ads_client_secret", "content": "from-render"}},
			{"secretFile": {"name": "auth_secret", "content": "jwt-secret"}}
		]`))
	}))
	defer server.Close()

	cfg := &Config{
		Render:    Render{APIKey: "render-key", ServiceID: "srv-1", BaseURL: server.URL},
		GoogleAds: GoogleAds{ClientSecret: "from-env"},
	}

	err := LoadSecrets(context.Background(), cfg, NewRenderClient(cfg))
	require.NoError(t, err)

	assert.Equal(t, "dev-token", cfg.GoogleAds.DeveloperToken)
	assert.Equal(t, "from-env", cfg.GoogleAds.ClientSecret)
	assert.Equal(t, "jwt-secret", cfg.Auth.Secret)
}

func TestLoadSecrets_WithoutServiceID(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, LoadSecrets(context.Background(), cfg, nil))
}

func TestRenderClient_ListSecretsPaginates(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("cursor") == "" {
			page := make([]map[string]any, 0, renderPageSize)
			for i := 0; i < renderPageSize; i++ {
				page = append(page, map[string]any{
					"secretFile": map[string]string{"name": fmt.Sprintf("s%d", i), "content": "x"},
					"cursor":     fmt.Sprintf("c%d", i),
				})
			}
			json.NewEncoder(w).Encode(page)
			return
		}

		assert.Equal(t, fmt.Sprintf("c%d", renderPageSize-1), r.URL.Query().Get("cursor"))
		w.Write([]byte(`[{"secretFile": {"name": "auth_secret", "content": "jwt"}, "cursor": "last"}]`))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{APIKey: "k", BaseURL: server.URL + "/"}})
	secrets, err := client.ListSecrets(context.Background(), "srv-1")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Len(t, secrets, renderPageSize+1)
	assert.Equal(t, "jwt", secrets[SecretAuthSecret])
}

func TestRenderClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"unauthorized"}`))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{BaseURL: server.URL}})
	_, err := client.ListSecrets(context.Background(), "srv-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
