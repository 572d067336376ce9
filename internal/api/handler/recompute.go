package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/scheduler"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
	"github.com/vfg2006/sales-compliance-api/pkg/middleware"
)

// Tipos de job que podem ser disparados manualmente
const (
	RecomputeJobTypeRetry    = "retry"
	RecomputeJobTypeRollover = "rollover"
	RecomputeJobTypeAll      = "all"
)

// RecomputeJobServices contém os serviços agendados que podem ser executados
// manualmente pela API
type RecomputeJobServices struct {
	RetryService    *scheduler.RecomputeRetryService
	RolloverService *scheduler.BudgetRolloverService
}

// RunRecomputeJob dispara manualmente um job agendado
func RunRecomputeJob(services RecomputeJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunRecomputeJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar jobs de recálculo", nil)
			return
		}

		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		switch jobType {
		case RecomputeJobTypeRetry:
			if services.RetryService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de recálculos não disponível", nil)
				return
			}
			services.RetryService.TriggerManualSync()

		case RecomputeJobTypeRollover:
			if services.RolloverService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de virada de orçamentos não disponível", nil)
				return
			}
			services.RolloverService.TriggerManualSync()

		case RecomputeJobTypeAll:
			if services.RetryService != nil {
				services.RetryService.TriggerManualSync()
			}
			if services.RolloverService != nil {
				services.RolloverService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: retry, rollover, all", nil)
			return
		}

		response := map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetRecomputeStatus retorna o status dos jobs agendados
func GetRecomputeStatus(services RecomputeJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetRecomputeStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de jobs", nil)
			return
		}

		status := map[string]any{
			"retry":    services.RetryService.GetStatus(),
			"rollover": services.RolloverService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
