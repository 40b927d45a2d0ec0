package adsclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const operationRefreshToken = "oauth token refresh"

// RefreshAccessToken troca o refresh token por um novo access token
func (c *AdsClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*adsdomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token não pode ser vazio")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.Cfg.GoogleAds.ClientID)
	form.Set("client_secret", c.Cfg.GoogleAds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.GoogleAds.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(operationRefreshToken, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := handleResponse(operationRefreshToken, resp)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"error":       err.Error(),
		}).Error("Erro ao renovar access token")
		return nil, err
	}

	var tokenResp adsdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &domain.UpstreamError{Operation: operationRefreshToken, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao decodificar resposta: %w", err)}
	}

	if tokenResp.AccessToken == "" {
		return nil, &domain.UpstreamError{Operation: operationRefreshToken, StatusCode: resp.StatusCode, Err: fmt.Errorf("token retornado pela API é vazio")}
	}

	logrus.Debugf("Access token renovado com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	hours := duration / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d horas e %d minutos", hours, minutes)
}
