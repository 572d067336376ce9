package novelty

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-compliance-api/internal/domain"
)

// Erros específicos para o contexto de novidades
var (
	// Erros de validação
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrDatesRequired    = errors.New("start and end dates are required")
	ErrInvalidType      = errors.New("unknown novelty type")
	ErrPersonRequired   = errors.New("person ID is required")
	ErrEmptyPatch       = errors.New("no recognized field supplied")

	// Erros de domínio
	ErrPersonNotFound  = errors.New("person not found")
	ErrNoveltyNotFound = errors.New("novelty not found")
	ErrForbidden       = errors.New("actor cannot manage novelties for this person")
)

// OverlapError é retornado quando o intervalo proposto cruza novidades já
// registradas da mesma pessoa. Carrega as linhas colidentes para que o
// chamador possa apresentar uma escolha de resolução.
type OverlapError struct {
	Colliding []*domain.Novelty
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("date range overlaps %d existing novelty record(s)", len(e.Colliding))
}

// AsOverlapError extrai um OverlapError da cadeia de erros
func AsOverlapError(err error) (*OverlapError, bool) {
	var overlapErr *OverlapError
	if errors.As(err, &overlapErr) {
		return overlapErr, true
	}
	return nil, false
}
