package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de credencial da plataforma
	ErrNoCredential = "CRED_001" // Usuário nunca autorizou a plataforma
	ErrTokenRefresh = "CRED_002" // Refresh token recusado

	// Erros da plataforma de anúncios
	ErrHierarchyDenied = "ADS_001" // Conta fora da hierarquia do agregador
	ErrAccessDenied    = "ADS_002" // Permissão negada na consulta
	ErrUpstream        = "ADS_003" // Falha na API da plataforma
	ErrTransient       = "ADS_004" // Plataforma indisponível temporariamente

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Recurso não encontrado
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrNoCredential:          http.StatusNotFound,
	ErrTokenRefresh:          http.StatusUnauthorized,
	ErrHierarchyDenied:       http.StatusForbidden,
	ErrAccessDenied:          http.StatusForbidden,
	ErrUpstream:              http.StatusBadGateway,
	ErrTransient:             http.StatusServiceUnavailable,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusCode devolve o status HTTP do código, 500 quando desconhecido
func StatusCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFor classifica um erro de domínio. TransientError é checado antes de UpstreamError
// porque também desembrulha para ErrUpstream.
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ErrInternalServer
	case errors.Is(err, domain.ErrInvalidRequest):
		return ErrInvalidRequest
	case errors.Is(err, domain.ErrRunNotFound):
		return ErrNotFound
	case errors.Is(err, domain.ErrNoCredential):
		return ErrNoCredential
	case errors.Is(err, domain.ErrTokenRefresh):
		return ErrTokenRefresh
	case errors.Is(err, domain.ErrHierarchyDenied):
		return ErrHierarchyDenied
	case errors.Is(err, domain.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, domain.ErrTransient):
		return ErrTransient
	case errors.Is(err, domain.ErrUpstream):
		return ErrUpstream
	case errors.Is(err, domain.ErrSink):
		return ErrDatabaseOperation
	default:
		return ErrInternalServer
	}
}

// WriteDomainError classifica o erro e escreve a resposta padronizada
func WriteDomainError(w http.ResponseWriter, err error) {
	WriteError(w, CodeFor(err), err.Error(), nil)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
