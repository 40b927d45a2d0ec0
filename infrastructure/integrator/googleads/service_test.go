package googleads

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIntegrator(t *testing.T) (*GoogleAdsIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Ingestion.Platform = "google_ads"

	return New(cfg, client), client
}

func permissionDenied() error {
	return &adsclient.ResponseError{
		Operation:  "googleAds:searchStream",
		StatusCode: http.StatusForbidden,
		Body:       "PERMISSION_DENIED",
		Parsed: &adsdomain.ErrorResponse{Error: adsdomain.ErrorDetails{
			Code:    403,
			Status:  "PERMISSION_DENIED",
			Message: "User doesn't have permission to access customer.",
		}},
	}
}

func TestRefreshAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("sucesso", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().RefreshAccessToken(ctx, "rt-1").Return(&adsdomain.TokenResponse{AccessToken: "at-1", ExpiresIn: 3600}, nil)

		token, ttl, err := integrator.RefreshAccessToken(ctx, "u1", "rt-1")
		require.NoError(t, err)
		assert.Equal(t, "at-1", token)
		assert.Equal(t, time.Hour, ttl)
	})

	t.Run("recusa vira RefreshError com status e corpo", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().RefreshAccessToken(ctx, "rt-1").Return(nil, &adsclient.ResponseError{
			StatusCode: http.StatusBadRequest,
			Body:       `{"error":"invalid_grant"}`,
		})

		_, _, err := integrator.RefreshAccessToken(ctx, "u1", "rt-1")
		require.ErrorIs(t, err, domain.ErrTokenRefresh)

		var refreshErr *domain.RefreshError
		require.True(t, errors.As(err, &refreshErr))
		assert.Equal(t, "u1", refreshErr.UserID)
		assert.Equal(t, http.StatusBadRequest, refreshErr.StatusCode)
		assert.Contains(t, refreshErr.Body, "invalid_grant")
	})
}

func TestValidateHierarchy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		rows   []adsdomain.GoogleAdsRow
		err    error
		status domain.VerdictStatus
	}{
		{
			name:   "conta filha encontrada",
			rows:   []adsdomain.GoogleAdsRow{{CustomerClient: &adsdomain.CustomerClient{ID: "4445556666", Level: "1"}}},
			status: domain.VerdictStatusOK,
		},
		{
			name:   "resultado vazio",
			rows:   []adsdomain.GoogleAdsRow{},
			status: domain.VerdictStatusDenied,
		},
		{
			name:   "permissão negada",
			err:    permissionDenied(),
			status: domain.VerdictStatusDenied,
		},
		{
			name:   "erro de requisição não transitório",
			err:    &adsclient.ResponseError{StatusCode: http.StatusBadRequest, Body: "bad"},
			status: domain.VerdictStatusDenied,
		},
		{
			name:   "cota excedida",
			err:    &adsclient.ResponseError{StatusCode: http.StatusTooManyRequests},
			status: domain.VerdictStatusTransient,
		},
		{
			name:   "falha de rede",
			err:    &domain.UpstreamError{Operation: "googleAds:search", Err: errors.New("connection reset")},
			status: domain.VerdictStatusTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)

			client.EXPECT().
				Search(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, req adsclient.QueryRequest) ([]adsdomain.GoogleAdsRow, error) {
					assert.Equal(t, "9990001111", req.CustomerID)
					assert.Equal(t, "9990001111", req.LoginCustomerID)
					assert.Contains(t, req.Query, "customer_client.id = 4445556666")
					return tt.rows, tt.err
				})

			verdict := integrator.ValidateHierarchy(ctx, "at-1", "9990001111", "4445556666")
			assert.Equal(t, tt.status, verdict.Status)
			if tt.status != domain.VerdictStatusOK {
				assert.Contains(t, verdict.Reason, "4445556666")
				assert.Contains(t, verdict.Reason, "9990001111")
			}
		})
	}
}

func TestFetchMetrics(t *testing.T) {
	ctx := context.Background()
	query := domain.MetricsQuery{
		AccessToken:     "at-1",
		TargetAccountID: "4445556666",
		DateRange: domain.DateRange{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	}

	t.Run("converte linhas e omite agregador vazio", func(t *testing.T) {
		integrator, client := newIntegrator(t)

		client.EXPECT().
			SearchStream(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req adsclient.QueryRequest) ([]adsdomain.GoogleAdsRow, error) {
				assert.Equal(t, "4445556666", req.CustomerID)
				assert.Empty(t, req.LoginCustomerID)
				assert.Contains(t, req.Query, "segments.date BETWEEN '2024-01-01' AND '2024-01-07'")
				assert.Contains(t, req.Query, "ORDER BY segments.date DESC")

				return []adsdomain.GoogleAdsRow{
					{
						Segments: &adsdomain.Segments{Date: "2024-01-07"},
						Customer: &adsdomain.Customer{ID: "4445556666"},
						Campaign: &adsdomain.Campaign{ID: "10", Name: "Search", Status: "PAUSED", AdvertisingChannelType: "SEARCH"},
						Metrics:  &adsdomain.Metrics{Impressions: "1000", Clicks: "20", CostMicros: "50000000", Conversions: 5, ConversionsValue: 300},
					},
					{
						Segments: &adsdomain.Segments{Date: "2024-01-06"},
						Metrics:  &adsdomain.Metrics{Impressions: "abc"},
					},
					{
						Metrics: &adsdomain.Metrics{Impressions: "1"},
					},
				}, nil
			})

		records, err := integrator.FetchMetrics(ctx, query)
		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "2024-01-07", first.DateString())
		assert.Equal(t, "10", first.CampaignID)
		assert.Equal(t, "paused", first.CampaignStatus)
		assert.Equal(t, "search", first.ChannelType)
		assert.Equal(t, int64(1000), first.Impressions)
		assert.Equal(t, 50.0, first.Spend)
		assert.Equal(t, 5.0, first.Leads)
		assert.Equal(t, 300.0, first.Revenue)
		assert.Equal(t, 2.0, first.CTR)
		assert.Equal(t, 10.0, first.CPA)
		assert.Equal(t, 25.0, first.ConversionRate)
		assert.Equal(t, "google_ads", first.Platform)

		second := records[1]
		assert.Equal(t, domain.NoCampaignID, second.CampaignID)
		assert.Equal(t, "enabled", second.CampaignStatus)
		assert.Equal(t, "4445556666", second.AccountID)
		assert.Zero(t, second.Impressions)
	})

	t.Run("envia agregador quando informado", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		q := query
		q.AggregatorID = "9990001111"

		client.EXPECT().
			SearchStream(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req adsclient.QueryRequest) ([]adsdomain.GoogleAdsRow, error) {
				assert.Equal(t, "9990001111", req.LoginCustomerID)
				return nil, nil
			})

		records, err := integrator.FetchMetrics(ctx, q)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("classificação de erros", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			sentinel error
		}{
			{name: "permissão negada", err: permissionDenied(), sentinel: domain.ErrAccessDenied},
			{name: "5xx", err: &adsclient.ResponseError{StatusCode: http.StatusServiceUnavailable}, sentinel: domain.ErrTransient},
			{name: "400", err: &adsclient.ResponseError{StatusCode: http.StatusBadRequest}, sentinel: domain.ErrUpstream},
			{name: "rede", err: &domain.UpstreamError{Operation: "x", Err: errors.New("timeout")}, sentinel: domain.ErrUpstream},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				integrator, client := newIntegrator(t)
				q := query
				q.AggregatorID = "9990001111"
				client.EXPECT().SearchStream(ctx, gomock.Any()).Return(nil, tt.err)

				_, err := integrator.FetchMetrics(ctx, q)
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.sentinel)

				var denied *domain.AccessDeniedError
				if errors.As(err, &denied) {
					assert.Equal(t, "4445556666", denied.TargetAccountID)
					assert.Equal(t, "9990001111", denied.AggregatorID)
				}
			})
		}
	})
}

func TestAccountLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("lista contas acessíveis", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().ListAccessibleCustomers(ctx, "at-1").Return([]string{"111", "222"}, nil)

		ids, err := integrator.ListAccessibleAccounts(ctx, "at-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"111", "222"}, ids)
	})

	t.Run("detalhes da conta", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().Search(ctx, gomock.Any()).Return([]adsdomain.GoogleAdsRow{{
			Customer: &adsdomain.Customer{ID: "111", DescriptiveName: " Loja Centro ", CurrencyCode: "BRL", TimeZone: "America/Sao_Paulo", Status: "ENABLED"},
		}}, nil)

		acc, err := integrator.GetAccountDetails(ctx, "at-1", "", "111")
		require.NoError(t, err)
		assert.Equal(t, "Loja Centro", acc.Name)
		assert.False(t, acc.NameIsPlaceholder)
		assert.Equal(t, domain.AdAccountStatusEnabled, acc.Status)
		assert.Equal(t, domain.AdAccountTypeClient, acc.Type)
	})

	t.Run("detalhes vazios são falha parcial", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().Search(ctx, gomock.Any()).Return([]adsdomain.GoogleAdsRow{}, nil)

		_, err := integrator.GetAccountDetails(ctx, "at-1", "", "111")
		assert.ErrorIs(t, err, domain.ErrPartialMetadata)
	})

	t.Run("filhos do agregador", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			Search(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req adsclient.QueryRequest) ([]adsdomain.GoogleAdsRow, error) {
				assert.Contains(t, req.Query, "customer_client.level = 1")
				return []adsdomain.GoogleAdsRow{
					{CustomerClient: &adsdomain.CustomerClient{ID: "9990001111", Manager: true}},
					{CustomerClient: &adsdomain.CustomerClient{ClientCustomer: "customers/333", DescriptiveName: "Filha"}},
					{CustomerClient: &adsdomain.CustomerClient{ID: "444", Manager: true, DescriptiveName: "Sub MCC"}},
				}, nil
			})

		children, err := integrator.ListChildAccounts(ctx, "at-1", "9990001111")
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, "333", children[0].ID)
		assert.Equal(t, "Filha", children[0].Name)
		assert.True(t, children[1].IsManager)
		assert.Equal(t, domain.AdAccountTypeManager, children[1].Type)
	})
}
