package domain

import (
	"time"
)

// Tipos de novidade (ausência) reconhecidos
const (
	NoveltyTypeVacation   = "VACATION"
	NoveltyTypeSickLeave  = "SICK_LEAVE"
	NoveltyTypeLicense    = "LICENSE"
	NoveltyTypePermission = "PERMISSION"
	NoveltyTypeTraining   = "TRAINING"
)

// Novelty é um registro de ausência que reduz os dias trabalhados de uma
// pessoa em todos os períodos que o intervalo toca.
// Invariante: para uma mesma pessoa os intervalos [StartDate, EndDate] de
// todas as novidades são dois a dois disjuntos (datas inclusivas).
type Novelty struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PeriodsSpanned lista os períodos tocados pelo intervalo da novidade
func (n *Novelty) PeriodsSpanned() []Period {
	return PeriodsSpanned(n.StartDate, n.EndDate)
}

type CreateNoveltyRequest struct {
	PersonID  string    `json:"person_id"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes"`
}

// NoveltyPatch é uma atualização parcial; campos nil são preservados
type NoveltyPatch struct {
	Type      *string    `json:"type"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Notes     *string    `json:"notes"`
}
