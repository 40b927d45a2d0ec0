package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mocks"
	"github.com/vfg2006/ads-sync-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type apiFixture struct {
	handler       http.Handler
	authenticator authenticating.Authenticator
	orchestrator  *mocks.MockOrchestrator
	discoverer    *mocks.MockDiscoverer
	tokenManager  *mocks.MockTokenManager
}

func newAPIFixture(t *testing.T) apiFixture {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Auth.Secret = "s3cret"

	f := apiFixture{
		authenticator: authenticating.NewService(cfg),
		orchestrator:  mocks.NewMockOrchestrator(ctrl),
		discoverer:    mocks.NewMockDiscoverer(ctrl),
		tokenManager:  mocks.NewMockTokenManager(ctrl),
	}

	f.handler = NewHandler(cfg, Services{
		Orchestrator:  f.orchestrator,
		Discoverer:    f.discoverer,
		TokenManager:  f.tokenManager,
		Authenticator: f.authenticator,
	})

	return f
}

func (f apiFixture) token(t *testing.T, userID string, role int) string {
	token, err := f.authenticator.IssueToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (f apiFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func TestHealthcheckIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAuthRequired(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/v1/ingestions", "", domain.IngestionRequest{UserID: "u1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodPost, "/v1/ingestions", "garbage", domain.IngestionRequest{UserID: "u1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunIngestion(t *testing.T) {
	t.Run("serviço executa para qualquer usuário", func(t *testing.T) {
		f := newAPIFixture(t)
		request := domain.IngestionRequest{
			UserID:          "u1",
			TargetAccountID: "4445556666",
			StartDate:       "2024-01-01",
			EndDate:         "2024-01-07",
		}
		f.orchestrator.EXPECT().Run(gomock.Any(), request).Return(&domain.IngestionResponse{
			OK:               true,
			RunID:            "r1",
			RecordsProcessed: 42,
		}, nil)

		w := f.do(t, http.MethodPost, "/v1/ingestions", f.token(t, "", authenticating.RoleService), request)
		require.Equal(t, http.StatusOK, w.Code)

		var response domain.IngestionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.OK)
		assert.Equal(t, 42, response.RecordsProcessed)
	})

	t.Run("cliente usa o próprio user_id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.orchestrator.EXPECT().Run(gomock.Any(), domain.IngestionRequest{UserID: "u1"}).
			Return(&domain.IngestionResponse{OK: true, RunID: "r1"}, nil)

		w := f.do(t, http.MethodPost, "/v1/ingestions", f.token(t, "u1", authenticating.RoleClient), domain.IngestionRequest{})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cliente não age por outro usuário", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(t, http.MethodPost, "/v1/ingestions", f.token(t, "u1", authenticating.RoleClient), domain.IngestionRequest{UserID: "u2"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("falha com run devolve status mapeado e run_id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.orchestrator.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&domain.IngestionResponse{
			OK:               false,
			RunID:            "r9",
			HierarchyVerdict: domain.VerdictStatusDenied,
			Error:            "denied",
		}, &domain.HierarchyDeniedError{AggregatorID: "9998887777", TargetAccountID: "4445556666"})

		w := f.do(t, http.MethodPost, "/v1/ingestions", f.token(t, "", authenticating.RoleAdmin), domain.IngestionRequest{UserID: "u1"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		var response domain.IngestionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "r9", response.RunID)
		assert.False(t, response.OK)
	})

	t.Run("falha antes do run devolve APIError", func(t *testing.T) {
		f := newAPIFixture(t)
		f.orchestrator.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, &domain.NoCredentialError{UserID: "u1"})

		w := f.do(t, http.MethodPost, "/v1/ingestions", f.token(t, "", authenticating.RoleAdmin), domain.IngestionRequest{UserID: "u1"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "CRED_001")
	})
}

func TestIngestionRuns(t *testing.T) {
	t.Run("run inexistente", func(t *testing.T) {
		f := newAPIFixture(t)
		f.orchestrator.EXPECT().GetRun(gomock.Any(), "missing").Return(nil, domain.ErrRunNotFound)

		w := f.do(t, http.MethodGet, "/v1/ingestions/missing", f.token(t, "", authenticating.RoleAdmin), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cliente não vê run de outro usuário", func(t *testing.T) {
		f := newAPIFixture(t)
		f.orchestrator.EXPECT().GetRun(gomock.Any(), "r1").Return(&domain.IngestionRun{ID: "r1", UserID: "u2"}, nil)

		w := f.do(t, http.MethodGet, "/v1/ingestions/r1", f.token(t, "u1", authenticating.RoleClient), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("lista com limite", func(t *testing.T) {
		f := newAPIFixture(t)
		f.orchestrator.EXPECT().ListRuns(gomock.Any(), "u1", 5).Return([]*domain.IngestionRun{{ID: "r1"}}, nil)

		w := f.do(t, http.MethodGet, "/v1/users/u1/ingestions?limit=5", f.token(t, "u1", authenticating.RoleClient), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("limite inválido", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(t, http.MethodGet, "/v1/users/u1/ingestions?limit=abc", f.token(t, "", authenticating.RoleAdmin), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDiscoveryAndAccounts(t *testing.T) {
	t.Run("descoberta pelo cliente", func(t *testing.T) {
		f := newAPIFixture(t)
		f.discoverer.EXPECT().DiscoverAccounts(gomock.Any(), "u1").Return(&domain.DiscoveryResult{
			AccessibleCount: 1,
			LinkedAccountID: "4445556666",
		}, nil)

		w := f.do(t, http.MethodPost, "/v1/discovery", f.token(t, "u1", authenticating.RoleClient), domain.DiscoveryRequest{})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "4445556666")
	})

	t.Run("listagem de contas restrita", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(t, http.MethodGet, "/v1/accounts", f.token(t, "u1", authenticating.RoleClient), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("listagem de contas pelo serviço", func(t *testing.T) {
		f := newAPIFixture(t)
		f.discoverer.EXPECT().ListAccounts(gomock.Any()).Return([]*domain.AdAccount{{ID: "1", Name: "Loja"}}, nil)

		w := f.do(t, http.MethodGet, "/v1/accounts", f.token(t, "", authenticating.RoleService), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRegisterCredential(t *testing.T) {
	f := newAPIFixture(t)
	f.tokenManager.EXPECT().RegisterCredential(gomock.Any(), &domain.RegisterCredentialRequest{
		UserID:       "u1",
		RefreshToken: "rt",
	}).Return(&domain.Credential{ID: "c1", UserID: "u1"}, nil)

	w := f.do(t, http.MethodPost, "/v1/users/u1/credentials", f.token(t, "", authenticating.RoleAdmin), map[string]string{
		"refresh_token": "rt",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "refresh_token")
}

func TestUnknownRoutes(t *testing.T) {
	f := newAPIFixture(t)
	token := f.token(t, "", authenticating.RoleAdmin)

	w := f.do(t, http.MethodGet, "/v1/nada", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_004")

	w = f.do(t, http.MethodDelete, "/v1/ingestions", token, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_005")
}

func TestCronRequiresAdmin(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/v1/cron/ingestion", f.token(t, "", authenticating.RoleService), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/v1/cron/ingestion", f.token(t, "", authenticating.RoleAdmin), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = f.do(t, http.MethodGet, "/v1/cron/status", f.token(t, "", authenticating.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
