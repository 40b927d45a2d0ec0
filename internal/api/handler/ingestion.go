package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-sync-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ads-sync-api/pkg/log"
	"github.com/vfg2006/ads-sync-api/pkg/middleware"
)

const defaultRunsLimit = 50

// RunIngestion executa a ingestão de forma síncrona. Mesmo quando falha, a resposta
// traz o run_id para consulta posterior.
func RunIngestion(orchestrator ingesting.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunIngestion")

		var request domain.IngestionRequest
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
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ingerir dados deste usuário", nil)
			return
		}

		response, err := orchestrator.Run(r.Context(), request)
		if err != nil {
			if response == nil {
				apiErrors.WriteDomainError(w, err)
				return
			}

			writeJSON(w, apiErrors.StatusCode(apiErrors.CodeFor(err)), response)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func GetIngestionRun(orchestrator ingesting.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do run é obrigatório", nil)
			return
		}

		run, err := orchestrator.GetRun(r.Context(), id)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		claims, _ := middleware.ClaimsFromContext(r.Context())
		if !authenticating.CanActFor(claims, run.UserID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este run", nil)
			return
		}

		writeJSON(w, http.StatusOK, run)
	})
}

func ListUserIngestions(orchestrator ingesting.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		claims, _ := middleware.ClaimsFromContext(r.Context())
		if !authenticating.CanActFor(claims, userID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este usuário", nil)
			return
		}

		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		runs, err := orchestrator.ListRuns(r.Context(), userID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar runs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar ingestões", nil)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	})
}
