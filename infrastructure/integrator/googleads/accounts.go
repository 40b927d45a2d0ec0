package googleads

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	operationListAccounts   = "list accessible accounts"
	operationAccountDetails = "account details"
	operationChildAccounts  = "child accounts"
)

func (s *GoogleAdsIntegrator) ListAccessibleAccounts(ctx context.Context, accessToken string) ([]string, error) {
	ids, err := s.Client.ListAccessibleCustomers(ctx, accessToken)
	if err != nil {
		classified := classifyQueryError(err, operationListAccounts, "", "")
		logrus.WithError(classified).Error("googleads: failed to list accessible customers")
		return nil, classified
	}

	logrus.WithField("total_accounts", len(ids)).Debug("googleads: accessible customers listed")

	return ids, nil
}

// GetAccountDetails lê os metadados de uma conta. aggregatorID vazio consulta sem login-customer-id.
func (s *GoogleAdsIntegrator) GetAccountDetails(ctx context.Context, accessToken, aggregatorID, accountID string) (*domain.AdAccount, error) {
	rows, err := s.Client.Search(ctx, adsclient.QueryRequest{
		AccessToken:     accessToken,
		CustomerID:      accountID,
		LoginCustomerID: aggregatorID,
		Query:           customerDetailsQuery,
	})
	if err != nil {
		return nil, &domain.PartialMetadataFailure{
			AccountID: accountID,
			Err:       classifyQueryError(err, operationAccountDetails, accountID, aggregatorID),
		}
	}

	for _, row := range rows {
		if row.Customer != nil {
			return FactoryAdAccount(row.Customer, accountID, s.platform()), nil
		}
	}

	return nil, &domain.PartialMetadataFailure{
		AccountID: accountID,
		Err:       fmt.Errorf("consulta de detalhes sem resultado"),
	}
}

// ListChildAccounts devolve os filhos diretos (level = 1) do agregador
func (s *GoogleAdsIntegrator) ListChildAccounts(ctx context.Context, accessToken, aggregatorID string) ([]*domain.AdAccount, error) {
	rows, err := s.Client.Search(ctx, adsclient.QueryRequest{
		AccessToken:     accessToken,
		CustomerID:      aggregatorID,
		LoginCustomerID: aggregatorID,
		Query:           childAccountsQuery,
	})
	if err != nil {
		return nil, classifyQueryError(err, operationChildAccounts, aggregatorID, aggregatorID)
	}

	children := make([]*domain.AdAccount, 0, len(rows))
	for _, row := range rows {
		if row.CustomerClient == nil {
			continue
		}
		child := FactoryChildAccount(row.CustomerClient, s.platform())
		if child.ID == "" || child.ID == aggregatorID {
			continue
		}
		children = append(children, child)
	}

	logrus.WithFields(logrus.Fields{
		"aggregator_id":  aggregatorID,
		"total_children": len(children),
	}).Debug("googleads: child accounts listed")

	return children, nil
}
