package adsclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	adsdomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const maxErrorBody = 2048

// ResponseError é uma resposta não-2xx da API, com o corpo de erro parseado quando possível
type ResponseError struct {
	Operation  string
	StatusCode int
	Body       string
	Parsed     *adsdomain.ErrorResponse
}

func (e *ResponseError) Error() string {
	if e.Parsed != nil {
		return fmt.Sprintf("googleads: %s status %d: %s", e.Operation, e.StatusCode, e.Parsed.Summary())
	}
	return fmt.Sprintf("googleads: %s status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsPermissionDenied decide pelo corpo quando ele foi parseado. Sem corpo legível
// um 403 é tratado como negação.
func (e *ResponseError) IsPermissionDenied() bool {
	if e.Parsed != nil {
		return e.Parsed.IsPermissionDenied()
	}
	return e.StatusCode == http.StatusForbidden
}

func (e *ResponseError) IsTransient() bool {
	if e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError {
		return true
	}
	return e.Parsed != nil && e.Parsed.IsTransient()
}

// Message devolve a mensagem mais legível disponível
func (e *ResponseError) Message() string {
	if e.Parsed != nil && e.Parsed.Error.Message != "" {
		return e.Parsed.Error.Message
	}
	return e.Body
}

func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}
	return nil, false
}

// handleResponse lê o corpo e devolve ResponseError para status fora de 2xx
func handleResponse(operation string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Operation: operation, StatusCode: resp.StatusCode, Err: fmt.Errorf("erro ao ler resposta: %w", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, newResponseError(operation, resp.StatusCode, body)
}

func newResponseError(operation string, statusCode int, body []byte) *ResponseError {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}

	return &ResponseError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       text,
		Parsed:     ParseErrorResponse(body),
	}
}

// ParseErrorResponse aceita o erro como objeto ou como array (formato do searchStream)
func ParseErrorResponse(body []byte) *adsdomain.ErrorResponse {
	var single adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &single); err == nil && (single.Error.Code != 0 || single.Error.Status != "") {
		return &single
	}

	var batch []adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &batch); err == nil {
		for i := range batch {
			if batch[i].Error.Code != 0 || batch[i].Error.Status != "" {
				return &batch[i]
			}
		}
	}

	return nil
}
