package googleads

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// ValidateHierarchy confere se targetAccountID é cliente do agregador.
// Nunca devolve erro: negação e falha transitória são veredictos.
func (s *GoogleAdsIntegrator) ValidateHierarchy(ctx context.Context, accessToken, aggregatorID, targetAccountID string) domain.HierarchyVerdict {
	fields := logrus.Fields{
		"aggregator_id":     aggregatorID,
		"target_account_id": targetAccountID,
	}

	rows, err := s.Client.Search(ctx, adsclient.QueryRequest{
		AccessToken:     accessToken,
		CustomerID:      aggregatorID,
		LoginCustomerID: aggregatorID,
		Query:           buildHierarchyQuery(targetAccountID),
	})
	if err != nil {
		if isTransientFailure(err) {
			reason := fmt.Sprintf("validação da conta %s sob o agregador %s indisponível: %v", targetAccountID, aggregatorID, err)
			logrus.WithFields(fields).WithError(err).Warn("googleads: hierarchy validation transient failure")
			return domain.VerdictTransient(reason)
		}

		reason := fmt.Sprintf("conta %s não acessível sob o agregador %s: %v", targetAccountID, aggregatorID, err)
		logrus.WithFields(fields).WithError(err).Warn("googleads: hierarchy validation denied")
		return domain.VerdictDenied(reason)
	}

	for _, row := range rows {
		if row.CustomerClient != nil && row.CustomerClient.ID == targetAccountID {
			logrus.WithFields(fields).Debug("googleads: hierarchy validated")
			return domain.VerdictOK()
		}
	}

	logrus.WithFields(fields).Warn("googleads: target account not found under aggregator")
	return domain.VerdictDenied(fmt.Sprintf("conta %s não encontrada sob o agregador %s", targetAccountID, aggregatorID))
}

// isTransientFailure cobre 429, 5xx e falhas de rede
func isTransientFailure(err error) bool {
	if respErr, ok := adsclient.AsResponseError(err); ok {
		return respErr.IsTransient()
	}
	var upstream *domain.UpstreamError
	return errors.As(err, &upstream) || errors.Is(err, context.DeadlineExceeded)
}
