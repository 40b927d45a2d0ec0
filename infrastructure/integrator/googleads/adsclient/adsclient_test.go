package adsclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

func newTestClient(serverURL string) *AdsClient {
	cfg := &config.Config{}
	cfg.GoogleAds.URL = serverURL
	cfg.GoogleAds.TokenURL = serverURL + "/token"
	cfg.GoogleAds.ClientID = "client-id"
	cfg.GoogleAds.ClientSecret = "client-secret"
	cfg.GoogleAds.DeveloperToken = "dev-token"

	return NewClient(cfg).(*AdsClient)
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "rt-1", r.PostForm.Get("refresh_token"))
			assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
			w.Write([]byte(`{"access_token":"at-new","expires_in":3599,"token_type":"Bearer"}`))
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).RefreshAccessToken(context.Background(), "rt-1")
		require.NoError(t, err)
		assert.Equal(t, "at-new", resp.AccessToken)
		assert.Equal(t, int64(3599), resp.ExpiresIn)
	})

	t.Run("refresh token revogado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).RefreshAccessToken(context.Background(), "rt-1")
		require.Error(t, err)

		respErr, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
		assert.Contains(t, respErr.Body, "invalid_grant")
	})

	t.Run("token vazio na resposta", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"expires_in":3599}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).RefreshAccessToken(context.Background(), "rt-1")
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("refresh token vazio", func(t *testing.T) {
		_, err := newTestClient("http://127.0.0.1:0").RefreshAccessToken(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestListAccessibleCustomers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers:listAccessibleCustomers", r.URL.Path)
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Empty(t, r.Header.Get("login-customer-id"))
		w.Write([]byte(`{"resourceNames":["customers/1112223333","customers/4445556666"]}`))
	}))
	defer server.Close()

	ids, err := newTestClient(server.URL).ListAccessibleCustomers(context.Background(), "at-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1112223333", "4445556666"}, ids)
}

func TestSearch_Pagination(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/customers/4445556666/googleAds:search", r.URL.Path)
		assert.Equal(t, "9990001111", r.Header.Get("login-customer-id"))

		var payload map[string]string
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "SELECT campaign.id FROM campaign", payload["query"])

		if payload["pageToken"] == "" {
			w.Write([]byte(`{"results":[{"campaign":{"id":"1"}}],"nextPageToken":"p2"}`))
			return
		}
		assert.Equal(t, "p2", payload["pageToken"])
		w.Write([]byte(`{"results":[{"campaign":{"id":"2"}}]}`))
	}))
	defer server.Close()

	rows, err := newTestClient(server.URL).Search(context.Background(), QueryRequest{
		AccessToken:     "at-1",
		CustomerID:      "4445556666",
		LoginCustomerID: "9990001111",
		Query:           "SELECT campaign.id FROM campaign",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].Campaign.ID)
	assert.Equal(t, "2", rows[1].Campaign.ID)
	assert.Equal(t, 2, calls)
}

func TestSearchStream(t *testing.T) {
	t.Run("decodifica todos os lotes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers/4445556666/googleAds:searchStream", r.URL.Path)
			w.Write([]byte(`[
				{"results":[{"segments":{"date":"2024-01-01"},"metrics":{"impressions":"100","clicks":"10","costMicros":"5000000","conversions":2,"conversionsValue":50.5}}]},
				{"results":[{"segments":{"date":"2024-01-02"},"metrics":{"impressions":"7"}}],"requestId":"abc"}
			]`))
		}))
		defer server.Close()

		rows, err := newTestClient(server.URL).SearchStream(context.Background(), QueryRequest{
			AccessToken: "at-1",
			CustomerID:  "4445556666",
			Query:       "SELECT segments.date FROM campaign",
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2024-01-01", rows[0].Segments.Date)
		assert.Equal(t, "5000000", rows[0].Metrics.CostMicros)
		assert.Equal(t, 50.5, rows[0].Metrics.ConversionsValue)
		assert.Equal(t, "7", rows[1].Metrics.Impressions)
	})

	t.Run("array vazio", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		rows, err := newTestClient(server.URL).SearchStream(context.Background(), QueryRequest{CustomerID: "1"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("json malformado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"results":[`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SearchStream(context.Background(), QueryRequest{CustomerID: "1"})
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})
}

func TestResponseErrorClassification(t *testing.T) {
	tests := []struct {
		name             string
		status           int
		body             string
		permissionDenied bool
		transient        bool
	}{
		{
			name:             "permissão negada no searchStream (array)",
			status:           http.StatusForbidden,
			body:             `[{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED","details":[{"@type":"type.googleapis.com/google.ads.googleads.v17.errors.GoogleAdsFailure","errors":[{"errorCode":{"authorizationError":"USER_PERMISSION_DENIED"},"message":"User doesn't have permission"}]}]}}]`,
			permissionDenied: true,
		},
		{
			name:             "combinação login-customer-id inválida com status 400",
			status:           http.StatusBadRequest,
			body:             `{"error":{"code":400,"status":"INVALID_ARGUMENT","details":[{"errors":[{"errorCode":{"authorizationError":"INVALID_LOGIN_CUSTOMER_ID_SERVING_CUSTOMER_ID_COMBINATION"}}]}]}}`,
			permissionDenied: true,
		},
		{
			name:   "403 cujo corpo não indica permissão",
			status: http.StatusForbidden,
			body:   `{"error":{"code":403,"message":"Request is not valid","status":"FAILED_PRECONDITION","details":[{"errors":[{"errorCode":{"requestError":"INVALID_INPUT"}}]}]}}`,
		},
		{
			name:             "403 sem corpo",
			status:           http.StatusForbidden,
			body:             ``,
			permissionDenied: true,
		},
		{
			name:      "cota excedida",
			status:    http.StatusTooManyRequests,
			body:      `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED"}}`,
			transient: true,
		},
		{
			name:      "erro interno sem corpo",
			status:    http.StatusBadGateway,
			body:      ``,
			transient: true,
		},
		{
			name:   "query inválida",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":400,"message":"bad query","status":"INVALID_ARGUMENT"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).SearchStream(context.Background(), QueryRequest{CustomerID: "1"})
			require.Error(t, err)

			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.permissionDenied, respErr.IsPermissionDenied())
			assert.Equal(t, tt.transient, respErr.IsTransient())
		})
	}
}

func TestNetworkFailureIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).ListAccessibleCustomers(context.Background(), "at-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	_, isResponse := AsResponseError(err)
	assert.False(t, isResponse)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 horas e 0 minutos", FormatDuration(3600))
	assert.Equal(t, "0 horas e 59 minutos", FormatDuration(3599))
}
