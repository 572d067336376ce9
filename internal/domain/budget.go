package domain

import (
	"time"
)

// Status possíveis de um orçamento
const (
	BudgetStatusDraft  = "draft"
	BudgetStatusActive = "active"
	BudgetStatusClosed = "closed"
)

// BudgetScopeSales é o escopo padrão dos orçamentos de venda
const BudgetScopeSales = "SALES"

// Budget é a meta mensal de uma pessoa. Única por (período, pessoa, escopo);
// nunca é apagada, apenas sobrescrita por upsert.
type Budget struct {
	ID        string    `json:"id"`
	Period    string    `json:"period"` // formato mm-yyyy
	PersonID  string    `json:"person_id"`
	Scope     string    `json:"scope"`
	Amount    int       `json:"amount"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetBatchItem é um item do upsert em lote. Campos fixos e validados;
// payloads com campos não reconhecidos são rejeitados no handler.
type BudgetBatchItem struct {
	PersonID string  `json:"person_id"`
	Amount   int     `json:"amount"`
	Status   *string `json:"status"`
}

type BudgetBatchRequest struct {
	Period string            `json:"period"`
	Scope  string            `json:"scope"`
	Items  []BudgetBatchItem `json:"items"`
}

// BudgetPatch é uma atualização parcial de um orçamento
type BudgetPatch struct {
	Amount *int    `json:"amount"`
	Status *string `json:"status"`
}

// IsEmpty indica que nenhum campo reconhecido foi informado
func (p BudgetPatch) IsEmpty() bool {
	return p.Amount == nil && p.Status == nil
}

func ValidBudgetStatus(status string) bool {
	switch status {
	case BudgetStatusDraft, BudgetStatusActive, BudgetStatusClosed:
		return true
	}
	return false
}
