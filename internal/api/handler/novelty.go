package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/novelty"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
	"github.com/vfg2006/sales-compliance-api/pkg/middleware"
	"github.com/vfg2006/sales-compliance-api/pkg/utils"
)

// CreateNoveltyPayload recebe as datas como yyyy-mm-dd
type CreateNoveltyPayload struct {
	PersonID  string `json:"person_id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type UpdateNoveltyPayload struct {
	Type      *string `json:"type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Notes     *string `json:"notes"`
}

func ListNovelties(service novelty.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		novelties, err := service.List(userClaims)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(novelties)
	}
}

func CreateNovelty(orchestrator recomputing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateNovelty")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var payload CreateNoveltyPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req, err := payload.toRequest()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato yyyy-mm-dd", nil)
			return
		}

		created, err := orchestrator.CreateNovelty(r.Context(), userClaims, req)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateNovelty(orchestrator recomputing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - UpdateNovelty")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		noveltyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if noveltyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da novidade não fornecido", nil)
			return
		}

		var payload UpdateNoveltyPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato yyyy-mm-dd", nil)
			return
		}

		updated, err := orchestrator.UpdateNovelty(r.Context(), userClaims, noveltyID, patch)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteNovelty(orchestrator recomputing.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DeleteNovelty")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		noveltyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if noveltyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da novidade não fornecido", nil)
			return
		}

		if err := orchestrator.DeleteNovelty(r.Context(), userClaims, noveltyID); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (p CreateNoveltyPayload) toRequest() (domain.CreateNoveltyRequest, error) {
	start, err := utils.ParseDate(p.StartDate)
	if err != nil {
		return domain.CreateNoveltyRequest{}, err
	}

	end, err := utils.ParseDate(p.EndDate)
	if err != nil {
		return domain.CreateNoveltyRequest{}, err
	}

	return domain.CreateNoveltyRequest{
		PersonID:  p.PersonID,
		Type:      p.Type,
		StartDate: *start,
		EndDate:   *end,
		Notes:     p.Notes,
	}, nil
}

func (p UpdateNoveltyPayload) toPatch() (domain.NoveltyPatch, error) {
	patch := domain.NoveltyPatch{
		Type:  p.Type,
		Notes: p.Notes,
	}

	if p.StartDate != nil {
		start, err := utils.ParseDate(*p.StartDate)
		if err != nil {
			return domain.NoveltyPatch{}, err
		}
		patch.StartDate = start
	}

	if p.EndDate != nil {
		end, err := utils.ParseDate(*p.EndDate)
		if err != nil {
			return domain.NoveltyPatch{}, err
		}
		patch.EndDate = end
	}

	return patch, nil
}
