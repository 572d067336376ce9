package domain

import (
	"time"
)

// SalesBreakdown é o resultado da atribuição de vendas de uma pessoa em um
// período: contagens dentro/fora de território e total bruto.
type SalesBreakdown struct {
	InCount    int `json:"in_count"`
	OutCount   int `json:"out_count"`
	TotalCount int `json:"total_count"`
}

// ProgressRecord é o registro de conformidade derivado de uma pessoa em um
// período. Somente-leitura para todos os outros componentes; o campo Version
// é o token otimista bumpado a cada upsert.
type ProgressRecord struct {
	ID               int64     `json:"id"`
	PersonID         string    `json:"person_id"`
	Period           string    `json:"period"` // formato mm-yyyy
	InCount          int       `json:"in_count"`
	OutCount         int       `json:"out_count"`
	TotalCount       int       `json:"total_count"`
	Expected         int       `json:"expected"` // = BaseAmount da alocação
	Adjusted         float64   `json:"adjusted"` // = ProratedTarget da alocação
	ComplianceIn     float64   `json:"compliance_in"`
	ComplianceGlobal float64   `json:"compliance_global"`
	MetIn            bool      `json:"met_in"`
	MetGlobal        bool      `json:"met_global"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Thresholds são os limiares de conformidade lidos das configurações
type Thresholds struct {
	MinComplianceIn     float64 `json:"min_compliance_in"`
	MinComplianceGlobal float64 `json:"min_compliance_global"`
}
