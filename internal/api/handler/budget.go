package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/budgeting"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
	"github.com/vfg2006/sales-compliance-api/pkg/middleware"
)

type CopyBudgetsPayload struct {
	Period string `json:"period"`
	Scope  string `json:"scope"`
}

// ListBudgets lista os orçamentos de um período/escopo via query string
func ListBudgets(service budgeting.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		scope := r.URL.Query().Get("scope")
		if scope == "" {
			scope = domain.BudgetScopeSales
		}

		budgets, err := service.ListByPeriodScope(period, scope)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

// UpsertBudgetBatch cria ou sobrescreve orçamentos em lote. Payloads com
// campos não reconhecidos são rejeitados.
func UpsertBudgetBatch(orchestrator recomputing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - UpsertBudgetBatch")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.BudgetBatchRequest
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		budgets, err := orchestrator.UpsertBudgetBatch(r.Context(), userClaims, req)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func UpdateBudget(orchestrator recomputing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - UpdateBudget")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		budgetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if budgetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do orçamento não fornecido", nil)
			return
		}

		var patch domain.BudgetPatch
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := orchestrator.UpdateBudget(r.Context(), userClaims, budgetID, patch)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// CopyBudgetsFromPreviousPeriod copia para o período alvo as metas do mês
// anterior que ainda não existem no alvo
func CopyBudgetsFromPreviousPeriod(orchestrator recomputing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CopyBudgetsFromPreviousPeriod")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var payload CopyBudgetsPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		period, err := domain.ParsePeriod(payload.Period)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período deve estar no formato mm-yyyy", nil)
			return
		}

		scope := payload.Scope
		if scope == "" {
			scope = domain.BudgetScopeSales
		}

		copied, err := orchestrator.CopyBudgetsFromPreviousPeriod(r.Context(), userClaims.PersonID, period, scope)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"copied":  len(copied),
			"budgets": copied,
		})
	}
}

// GetBudgetTree retorna a árvore organizacional com os agregados de
// orçamento do período nos nós locais
func GetBudgetTree(service budgeting.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		scope := r.URL.Query().Get("scope")
		if scope == "" {
			scope = domain.BudgetScopeSales
		}

		tree, err := service.Tree(period, scope)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tree)
	}
}
