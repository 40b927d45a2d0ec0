package handler

import (
	"net/http"

	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-sync-api/internal/usecases/discovering"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ads-sync-api/pkg/log"
	"github.com/vfg2006/ads-sync-api/pkg/middleware"
)

func DiscoverAccounts(service discovering.Discoverer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DiscoverAccounts")

		var request domain.DiscoveryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		claims, _ := middleware.ClaimsFromContext(r.Context())
		if request.UserID == "" && claims != nil && claims.UserRoleID == authenticating.RoleClient {
			request.UserID = claims.UserID
		}

		if request.UserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		if !authenticating.CanActFor(claims, request.UserID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para descobrir contas deste usuário", nil)
			return
		}

		result, err := service.DiscoverAccounts(r.Context(), request.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro na descoberta de contas")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func AdAccountList(service discovering.Discoverer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Error listing accounts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	})
}
