package domain

import (
	"time"
)

// Roles da plataforma. Os mesmos IDs são usados nos usuários da API e no
// diretório de pessoas.
const (
	RoleAdmin    = 1
	RoleRegional = 2
	RoleManager  = 3
	RoleAdvisor  = 4 // papel base de vendas
)

// Person representa um vendedor/gestor no diretório organizacional.
// O diretório é mantido por um sistema externo; este serviço apenas lê,
// com exceção do espelho legado MonthlyGoal (ver BudgetRepository).
type Person struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	ExternalID        string     `json:"external_id"` // id do assessor no feed de vendas
	OrgUnitID         string     `json:"org_unit_id"`
	Territory         string     `json:"territory"`
	TerritoryOverride *string    `json:"territory_override"`
	RoleID            int        `json:"role_id"`
	MonthlyGoal       int        `json:"monthly_goal"` // campo legado, espelhado do Budget
	Active            bool       `json:"active"`
	DeletedAt         *time.Time `json:"deleted_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Visibility é o conjunto de pessoas que um ator pode enxergar, resolvido uma
// única vez por chamada e reutilizado em todas as leituras.
type Visibility struct {
	All       bool
	PersonIDs []string
}

// Allows indica se a pessoa está dentro do escopo de visibilidade
func (v Visibility) Allows(personID string) bool {
	if v.All {
		return true
	}
	for _, id := range v.PersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}
