package domain

import (
	"time"
)

// MonthlyAllocation é o estado derivado de uma pessoa em um período: meta
// base, dias trabalhados e meta rateada. Recalculada sempre que o Budget ou
// uma Novelty sobreposta muda; estável fora disso.
type MonthlyAllocation struct {
	ID             int64     `json:"id"`
	PersonID       string    `json:"person_id"`
	Period         string    `json:"period"` // formato mm-yyyy
	BaseAmount     int       `json:"base_amount"`
	WorkedDays     int       `json:"worked_days"`
	DaysInMonth    int       `json:"days_in_month"`
	ProratedTarget float64   `json:"prorated_target"` // arredondada em 2 casas
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
