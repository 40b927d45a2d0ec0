package googleads

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) platform() string {
	if s.cfg.Ingestion.Platform == "" {
		return "google_ads"
	}
	return s.cfg.Ingestion.Platform
}

// RefreshAccessToken troca o refresh token de um usuário por um access token novo.
// Recusas do endpoint OAuth viram RefreshError.
func (s *GoogleAdsIntegrator) RefreshAccessToken(ctx context.Context, userID, refreshToken string) (string, time.Duration, error) {
	resp, err := s.Client.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		refreshErr := &domain.RefreshError{UserID: userID, Err: err}
		if respErr, ok := adsclient.AsResponseError(err); ok {
			refreshErr.StatusCode = respErr.StatusCode
			refreshErr.Body = respErr.Body
		}

		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"status_code": refreshErr.StatusCode,
			"error":       err.Error(),
		}).Error("googleads: failed to refresh access token")

		return "", 0, refreshErr
	}

	return resp.AccessToken, time.Duration(resp.ExpiresIn) * time.Second, nil
}

// classifyQueryError converte a falha de uma consulta de métricas na taxonomia de domínio
func classifyQueryError(err error, operation, targetAccountID, aggregatorID string) error {
	respErr, ok := adsclient.AsResponseError(err)
	if !ok {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return upstream
		}
		return &domain.UpstreamError{Operation: operation, Err: err}
	}

	switch {
	case respErr.IsPermissionDenied():
		return &domain.AccessDeniedError{
			TargetAccountID: targetAccountID,
			AggregatorID:    aggregatorID,
			Message:         respErr.Message(),
		}
	case respErr.IsTransient():
		return &domain.TransientError{
			Operation:  operation,
			StatusCode: respErr.StatusCode,
			Body:       respErr.Body,
			Err:        respErr,
		}
	default:
		return &domain.UpstreamError{
			Operation:  operation,
			StatusCode: respErr.StatusCode,
			Body:       respErr.Body,
			Err:        respErr,
		}
	}
}
