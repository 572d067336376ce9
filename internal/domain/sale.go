package domain

import (
	"time"
)

// Classificação de uma venda em relação ao território do vendedor
type SaleClassification string

const (
	ClassificationIn           SaleClassification = "IN"
	ClassificationOut          SaleClassification = "OUT"
	ClassificationUnclassified SaleClassification = "UNCLASSIFIED"
)

// TerritoryUnclassified é o território canônico atribuído a nomes que não
// resolvem pela tabela de aliases
const TerritoryUnclassified = "UNCLASSIFIED"

// SalesRecord é uma linha do feed externo de vendas, imutável por período.
// Produzida por um processo de importação upstream; este serviço nunca
// escreve nessa tabela.
type SalesRecord struct {
	ID                string    `json:"id"`
	Period            string    `json:"period"` // formato mm-yyyy
	AdvisorExternalID string    `json:"advisor_external_id"`
	Territory         string    `json:"territory"`
	Date              time.Time `json:"date"`
}

// TerritoryAlias mapeia um nome bruto de território para o nome canônico
type TerritoryAlias struct {
	RawName       string `json:"raw_name"`
	CanonicalName string `json:"canonical_name"`
}
