package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/allocating"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/progressing"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
)

// GetPersonAllocation retorna a alocação mensal de uma pessoa em um período
func GetPersonAllocation(service allocating.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if personID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da pessoa não fornecido", nil)
			return
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		allocation, err := service.GetByPersonAndPeriod(personID, period)
		if err != nil {
			if errors.Is(err, allocating.ErrAllocationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Alocação não encontrada para o período", nil)
				return
			}
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(allocation)
	}
}

// GetPersonProgress retorna o registro de conformidade de uma pessoa em um período
func GetPersonProgress(service progressing.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if personID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da pessoa não fornecido", nil)
			return
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		record, err := service.GetByPersonAndPeriod(personID, period)
		if err != nil {
			if errors.Is(err, progressing.ErrProgressNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Registro de conformidade não encontrado para o período", nil)
				return
			}
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}
