package adsdomain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Type      string     `json:"@type"`
	Errors    []AdsError `json:"errors,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

type AdsError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

// OAuthErrorResponse é o formato de erro do endpoint de token
type OAuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func isPermissionErrorCode(code string) bool {
	switch code {
	case "USER_PERMISSION_DENIED",
		"CUSTOMER_NOT_ENABLED",
		"DEVELOPER_TOKEN_NOT_APPROVED",
		"ACTION_NOT_PERMITTED",
		"INVALID_LOGIN_CUSTOMER_ID_SERVING_CUSTOMER_ID_COMBINATION":
		return true
	}
	return false
}

// IsPermissionDenied verifica se a API recusou acesso à conta
func (e *ErrorResponse) IsPermissionDenied() bool {
	if e.Error.Status == "PERMISSION_DENIED" {
		return true
	}
	for _, code := range e.errorCodes() {
		if isPermissionErrorCode(code) {
			return true
		}
	}
	return false
}

func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == http.StatusUnauthorized
}

// IsTransient indica erros que podem ter sucesso numa nova tentativa
func (e *ErrorResponse) IsTransient() bool {
	switch e.Error.Status {
	case "RESOURCE_EXHAUSTED", "UNAVAILABLE", "DEADLINE_EXCEEDED", "INTERNAL":
		return true
	}
	return e.Error.Code == http.StatusTooManyRequests || e.Error.Code >= http.StatusInternalServerError
}

// Summary monta uma mensagem curta com os códigos de erro da API
func (e *ErrorResponse) Summary() string {
	codes := e.errorCodes()
	if len(codes) == 0 {
		return strings.TrimSpace(fmt.Sprintf("%s %s", e.Error.Status, e.Error.Message))
	}
	return fmt.Sprintf("%s %s [%s]", e.Error.Status, e.Error.Message, strings.Join(codes, ","))
}

func (e *ErrorResponse) errorCodes() []string {
	codes := make([]string, 0)
	for _, detail := range e.Error.Details {
		for _, adsErr := range detail.Errors {
			for _, code := range adsErr.ErrorCode {
				codes = append(codes, code)
			}
		}
	}
	return codes
}
