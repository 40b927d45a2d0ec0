package credentialing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)

type fixture struct {
	service   *Service
	repo      *repomocks.MockCredentialRepository
	refresher *mocks.MockTokenRefresher
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCredentialRepository(ctrl)
	refresher := mocks.NewMockTokenRefresher(ctrl)

	cfg := &config.Config{}
	cfg.GoogleAds.LoginCustomerID = "9998887777"

	service := NewService(cfg, repo, refresher).WithClock(func() time.Time { return fixedNow })

	return fixture{service: service, repo: repo, refresher: refresher}
}

func strPtr(s string) *string { return &s }

func TestEnsureAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("token válido não renova nem grava", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetLatestCredential(ctx, "u1").Return(&domain.Credential{
			ID:              "c1",
			UserID:          "u1",
			AccessToken:     "at-stored",
			RefreshToken:    "rt",
			ExpiresAt:       fixedNow.Add(time.Minute),
			LinkedAccountID: strPtr("4445556666"),
		}, nil)

		grant, err := f.service.EnsureAccessToken(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "at-stored", grant.AccessToken)
		assert.Equal(t, "c1", grant.CredentialID)
		assert.Equal(t, "9998887777", grant.AggregatorID)
		assert.Equal(t, "4445556666", grant.LinkedAccountID)
		assert.False(t, grant.Refreshed)
	})

	t.Run("expiração igual a now renova e persiste", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetLatestCredential(ctx, "u1").Return(&domain.Credential{
			ID:           "c1",
			UserID:       "u1",
			AccessToken:  "at-old",
			RefreshToken: "rt",
			ExpiresAt:    fixedNow,
		}, nil)
		f.refresher.EXPECT().RefreshAccessToken(ctx, "u1", "rt").Return("at-new", time.Hour, nil)
		f.repo.EXPECT().UpdateAccessToken(ctx, "c1", "at-new", fixedNow.Add(time.Hour)).Return(nil)

		grant, err := f.service.EnsureAccessToken(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "at-new", grant.AccessToken)
		assert.Equal(t, fixedNow.Add(time.Hour), grant.ExpiresAt)
		assert.True(t, grant.Refreshed)
	})

	t.Run("agregador da credencial tem prioridade sobre o configurado", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetLatestCredential(ctx, "u1").Return(&domain.Credential{
			ID:              "c1",
			AccessToken:     "at",
			ExpiresAt:       fixedNow.Add(time.Hour),
			LoginCustomerID: strPtr("1112223333"),
		}, nil)

		grant, err := f.service.EnsureAccessToken(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "1112223333", grant.AggregatorID)
	})

	t.Run("sem credencial", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetLatestCredential(ctx, "u2").Return(nil, nil)

		grant, err := f.service.EnsureAccessToken(ctx, "u2")
		assert.Nil(t, grant)

		var noCred *domain.NoCredentialError
		require.ErrorAs(t, err, &noCred)
		assert.Equal(t, "u2", noCred.UserID)
		assert.ErrorIs(t, err, domain.ErrNoCredential)
	})

	t.Run("falha na renovação não grava nada", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetLatestCredential(ctx, "u1").Return(&domain.Credential{
			ID:           "c1",
			RefreshToken: "rt",
			ExpiresAt:    fixedNow.Add(-time.Hour),
		}, nil)
		f.refresher.EXPECT().RefreshAccessToken(ctx, "u1", "rt").Return("", time.Duration(0), &domain.RefreshError{
			UserID:     "u1",
			StatusCode: 400,
			Body:       `{"error":"invalid_grant"}`,
		})

		_, err := f.service.EnsureAccessToken(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrTokenRefresh)
	})

	t.Run("erro ao persistir token renovado", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetLatestCredential(ctx, "u1").Return(&domain.Credential{
			ID:           "c1",
			RefreshToken: "rt",
			ExpiresAt:    fixedNow.Add(-time.Hour),
		}, nil)
		f.refresher.EXPECT().RefreshAccessToken(ctx, "u1", "rt").Return("at-new", time.Hour, nil)
		f.repo.EXPECT().UpdateAccessToken(ctx, "c1", "at-new", gomock.Any()).Return(errors.New("db down"))

		_, err := f.service.EnsureAccessToken(ctx, "u1")
		assert.ErrorContains(t, err, "db down")
	})
}

func TestRegisterCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("grava credencial já expirada e normaliza o agregador", func(t *testing.T) {
		f := newFixture(t)

		var saved *domain.Credential
		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Credential) error {
			saved = c
			return nil
		})

		credential, err := f.service.RegisterCredential(ctx, &domain.RegisterCredentialRequest{
			UserID:          "u1",
			RefreshToken:    "rt",
			LoginCustomerID: "999-888-7777",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Len(t, credential.ID, 16)
		assert.Equal(t, fixedNow, credential.ExpiresAt)
		assert.True(t, credential.IsExpired(fixedNow))
		require.NotNil(t, credential.LoginCustomerID)
		assert.Equal(t, "9998887777", *credential.LoginCustomerID)
	})

	t.Run("refresh token obrigatório", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RegisterCredential(ctx, &domain.RegisterCredentialRequest{UserID: "u1"})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("agregador inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RegisterCredential(ctx, &domain.RegisterCredentialRequest{
			UserID:          "u1",
			RefreshToken:    "rt",
			LoginCustomerID: "abc",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}
