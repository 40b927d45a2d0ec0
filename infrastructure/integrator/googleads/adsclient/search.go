package adsclient

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	operationSearch       = "googleAds:search"
	operationSearchStream = "googleAds:searchStream"

	maxSearchPages = 200
)

// Search executa uma consulta GAQL paginada e devolve todas as linhas
func (c *AdsClient) Search(ctx context.Context, query QueryRequest) ([]adsdomain.GoogleAdsRow, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, query.CustomerID)

	rows := make([]adsdomain.GoogleAdsRow, 0)
	pageToken := ""

	for page := 0; page < maxSearchPages; page++ {
		payload := adsdomain.SearchRequest{Query: query.Query, PageToken: pageToken}

		req, err := c.newRequest(ctx, http.MethodPost, url, query.AccessToken, query.LoginCustomerID, payload)
		if err != nil {
			return nil, err
		}

		resp, err := c.do(operationSearch, req)
		if err != nil {
			return nil, err
		}

		body, err := handleResponse(operationSearch, resp)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		var response adsdomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, &domain.UpstreamError{Operation: operationSearch, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao decodificar JSON: %w", err)}
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			return rows, nil
		}
		pageToken = response.NextPageToken
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": query.CustomerID,
		"pages":       maxSearchPages,
	}).Warn("googleads: limite de páginas atingido, resultado truncado")

	return rows, nil
}

// SearchStream executa a consulta via searchStream. A resposta é um array de lotes
// que é decodificado lote a lote.
func (c *AdsClient) SearchStream(ctx context.Context, query QueryRequest) ([]adsdomain.GoogleAdsRow, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.GoogleAds.URL, query.CustomerID)

	req, err := c.newRequest(ctx, http.MethodPost, url, query.AccessToken, query.LoginCustomerID, adsdomain.SearchRequest{Query: query.Query})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(operationSearchStream, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, err := handleResponse(operationSearchStream, resp)
		return nil, err
	}

	rows := make([]adsdomain.GoogleAdsRow, 0)
	iter := jsoniter.Parse(json, resp.Body, 4096)
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		var batch adsdomain.SearchStreamBatch
		it.ReadVal(&batch)
		if it.Error != nil {
			return false
		}
		rows = append(rows, batch.Results...)
		return true
	})

	if iter.Error != nil {
		return nil, &domain.UpstreamError{Operation: operationSearchStream, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao decodificar stream: %w", iter.Error)}
	}

	return rows, nil
}
