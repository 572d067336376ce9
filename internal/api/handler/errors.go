package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/budgeting"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/novelty"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/recomputing"
	"github.com/vfg2006/sales-compliance-api/internal/usecases/visibility"
	"github.com/vfg2006/sales-compliance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
)

// writeDomainError traduz erros dos casos de uso para a taxonomia de erros da
// API. Sobreposições de novidade carregam as linhas colidentes em Details.
func writeDomainError(w http.ResponseWriter, err error) {
	if overlapErr, ok := novelty.AsOverlapError(err); ok {
		apiErrors.WriteError(w, apiErrors.ErrConflictOverlap, "Intervalo colide com novidades existentes", map[string]any{
			"colliding": overlapErr.Colliding,
		})
		return
	}

	switch {
	case errors.Is(err, novelty.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Data inicial posterior à data final", nil)

	case errors.Is(err, novelty.ErrInvalidType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de novidade desconhecido", nil)

	case errors.Is(err, novelty.ErrPersonRequired),
		errors.Is(err, novelty.ErrDatesRequired),
		errors.Is(err, budgeting.ErrPersonRequired),
		errors.Is(err, budgeting.ErrScopeRequired),
		errors.Is(err, budgeting.ErrEmptyBatch):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, novelty.ErrEmptyPatch), errors.Is(err, budgeting.ErrEmptyPatch):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhum campo reconhecido na requisição", nil)

	case errors.Is(err, budgeting.ErrInvalidPeriod), errors.Is(err, budgeting.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, novelty.ErrPersonNotFound),
		errors.Is(err, novelty.ErrNoveltyNotFound),
		errors.Is(err, budgeting.ErrPersonNotFound),
		errors.Is(err, budgeting.ErrBudgetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, repository.ErrDuplicateBudget):
		apiErrors.WriteError(w, apiErrors.ErrConflictDuplicate, err.Error(), nil)

	case errors.Is(err, novelty.ErrForbidden),
		errors.Is(err, recomputing.ErrForbidden),
		errors.Is(err, visibility.ErrActorWithoutPerson):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Sem permissão para gerenciar registros desta pessoa", nil)

	default:
		log.L.WithError(err).Error("Erro não mapeado no tratamento da requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
