package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/ads-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

// RoleMiddleware restringe a rota aos roles informados. Depende das claims do AuthMiddleware.
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":   claims.UserID,
					"user_role": claims.UserRoleID,
					"path":      r.URL.Path,
				}).Warn("Acesso negado por role")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleAdmin)
}

// AdminOrService permite administradores e integrações de serviço
func AdminOrService() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleAdmin, authenticating.RoleService)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleAdmin, authenticating.RoleService, authenticating.RoleClient)
}
