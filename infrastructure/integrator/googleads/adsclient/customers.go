package adsclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const operationListAccessible = "listAccessibleCustomers"

// ListAccessibleCustomers lista os IDs de todas as contas que o token enxerga diretamente
func (c *AdsClient) ListAccessibleCustomers(ctx context.Context, accessToken string) ([]string, error) {
	url := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.GoogleAds.URL)

	req, err := c.newRequest(ctx, http.MethodGet, url, accessToken, "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(operationListAccessible, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := handleResponse(operationListAccessible, resp)
	if err != nil {
		return nil, err
	}

	var response adsdomain.ListAccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &domain.UpstreamError{Operation: operationListAccessible, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao decodificar JSON: %w", err)}
	}

	ids := make([]string, 0, len(response.ResourceNames))
	for _, name := range response.ResourceNames {
		id := strings.TrimPrefix(name, "customers/")
		if id != "" {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
