package budgeting

import (
	"errors"
)

// Erros específicos para o contexto de orçamentos
var (
	// Erros de validação
	ErrInvalidPeriod  = errors.New("invalid period, expected mm-yyyy")
	ErrScopeRequired  = errors.New("budget scope is required")
	ErrEmptyBatch     = errors.New("batch has no items")
	ErrEmptyPatch     = errors.New("no recognized field supplied")
	ErrInvalidStatus  = errors.New("unknown budget status")
	ErrPersonRequired = errors.New("person ID is required")

	// Erros de domínio
	ErrBudgetNotFound = errors.New("budget not found")
	ErrPersonNotFound = errors.New("person not found")
)
