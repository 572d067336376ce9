package domain

// Níveis da hierarquia organizacional
const (
	TierTop      = 1
	TierRegional = 2
	TierLocal    = 3
)

// OrgUnit é um nó da árvore organizacional (nacional > regional > local).
// Contexto somente-leitura para agregação.
type OrgUnit struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Tier     int     `json:"tier"`
	ParentID *string `json:"parent_id"`
}

// BudgetTreeNode é um nó da árvore organizacional anotado com os agregados
// de orçamento de um período/escopo. As contagens só são preenchidas em nós
// do nível local.
type BudgetTreeNode struct {
	Unit         OrgUnit           `json:"unit"`
	PersonCount  int               `json:"person_count"`
	BudgetTotal  int               `json:"budget_total"`
	MissingCount int               `json:"missing_count"`
	Children     []*BudgetTreeNode `json:"children,omitempty"`
}
