package domain

import (
	"time"
)

// Status de um job de recálculo de progresso (etapa 2 da saga)
const (
	RecomputeJobPending = "pending"
	RecomputeJobDone    = "done"
	RecomputeJobFailed  = "failed"
)

// RecomputeJob é uma unidade de recálculo de ProgressRecord enfileirada após
// o commit da etapa atômica. Reexecutável: o recálculo é idempotente, então
// a semântica é at-least-once.
type RecomputeJob struct {
	ID        string     `json:"id"`
	PersonID  string     `json:"person_id"`
	Period    string     `json:"period"` // formato mm-yyyy
	Status    string     `json:"status"`
	Attempts  int        `json:"attempts"`
	LastError *string    `json:"last_error"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DoneAt    *time.Time `json:"done_at"`
}
