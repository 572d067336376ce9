package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/settings"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/attributing"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
)

// GetUnmatchedSales conta as vendas de um período cujo vendedor externo não
// tem correspondência no diretório de pessoas
func GetUnmatchedSales(service attributing.Attributor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periodStr := r.URL.Query().Get("period")
		if periodStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period não fornecido", nil)
			return
		}

		period, err := domain.ParsePeriod(periodStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período deve estar no formato mm-yyyy", nil)
			return
		}

		count, err := service.CountUnmatched(period)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"period":    periodStr,
			"unmatched": count,
		})
	}
}

// RefreshSettings recarrega os parâmetros de conformidade e os apelidos de
// território sem reiniciar o serviço
func RefreshSettings(settingsService *settings.Service, attributor attributing.Attributor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RefreshSettings")

		if err := settingsService.Refresh(); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao recarregar parâmetros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao recarregar parâmetros", nil)
			return
		}

		if err := attributor.RefreshAliases(); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao recarregar apelidos de território")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao recarregar apelidos de território", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Parâmetros recarregados com sucesso",
		})
	}
}
