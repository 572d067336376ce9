package budgeting

import (
	"database/sql"
	"sort"

	"github.com/vfg2006/sales-compliance-api/infrastructure/repository"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/pkg/log"
	"github.com/vfg2006/sales-compliance-api/pkg/utils"
)

// Store mantém as metas mensais por (período, pessoa, escopo). As mutações
// rodam dentro da transação aberta pelo orquestrador de recálculo.
type Store interface {
	GetByID(id string) (*domain.Budget, error)
	ListByPeriodScope(period, scope string) ([]*domain.Budget, error)
	// Tree retorna a árvore organizacional anotada, nos nós locais, com os
	// agregados de orçamento do período/escopo
	Tree(period, scope string) ([]*domain.BudgetTreeNode, error)

	ValidateBatch(req domain.BudgetBatchRequest) error
	// UpsertBatchTx faz o upsert idempotente de cada item e devolve as linhas
	// afetadas. Quando a pessoa tem o papel base de vendas, o valor também é
	// espelhado no campo legado monthly_goal do diretório.
	UpsertBatchTx(tx *sql.Tx, req domain.BudgetBatchRequest, actorID string) ([]*domain.Budget, error)
	UpdateByIDTx(tx *sql.Tx, id string, patch domain.BudgetPatch, actorID string) (*domain.Budget, error)
	// CopyFromPreviousPeriodTx copia para o período alvo as chaves presentes
	// no mês anterior e ausentes no alvo; linhas já existentes nunca são
	// sobrescritas
	CopyFromPreviousPeriodTx(tx *sql.Tx, period domain.Period, scope, actorID string) ([]*domain.Budget, error)
}

type Service struct {
	budgetRepo  repository.BudgetRepository
	personRepo  repository.PersonRepository
	orgUnitRepo repository.OrgUnitRepository
}

func NewService(
	budgetRepo repository.BudgetRepository,
	personRepo repository.PersonRepository,
	orgUnitRepo repository.OrgUnitRepository,
) Store {
	return &Service{
		budgetRepo:  budgetRepo,
		personRepo:  personRepo,
		orgUnitRepo: orgUnitRepo,
	}
}

func (s *Service) GetByID(id string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}
	return budget, nil
}

func (s *Service) ListByPeriodScope(period, scope string) ([]*domain.Budget, error) {
	return s.budgetRepo.ListByPeriodScope(period, scope)
}

// ValidateBatch roda antes de qualquer escrita
func (s *Service) ValidateBatch(req domain.BudgetBatchRequest) error {
	if _, err := domain.ParsePeriod(req.Period); err != nil {
		return ErrInvalidPeriod
	}
	if req.Scope == "" {
		return ErrScopeRequired
	}
	if len(req.Items) == 0 {
		return ErrEmptyBatch
	}

	for _, item := range req.Items {
		if item.PersonID == "" {
			return ErrPersonRequired
		}
		if item.Status != nil && !domain.ValidBudgetStatus(*item.Status) {
			return ErrInvalidStatus
		}
	}

	return nil
}

func (s *Service) UpsertBatchTx(tx *sql.Tx, req domain.BudgetBatchRequest, actorID string) ([]*domain.Budget, error) {
	budgetRepo := s.budgetRepo.WithTx(tx)
	personRepo := s.personRepo.WithTx(tx)

	affected := make([]*domain.Budget, 0, len(req.Items))
	for _, item := range req.Items {
		person, err := personRepo.GetByID(item.PersonID)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, ErrPersonNotFound
		}

		status := domain.BudgetStatusActive
		if item.Status != nil {
			status = *item.Status
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		saved, err := budgetRepo.SaveOrUpdate(&domain.Budget{
			ID:        id,
			Period:    req.Period,
			PersonID:  item.PersonID,
			Scope:     req.Scope,
			Amount:    utils.ClampNonNegative(item.Amount),
			Status:    status,
			CreatedBy: actorID,
		})
		if err != nil {
			return nil, err
		}

		// Espelho legado: consumidores antigos de relatório ainda leem a meta
		// do diretório; a fonte de verdade segue sendo o Budget
		if person.RoleID == domain.RoleAdvisor {
			if err := personRepo.UpdateMonthlyGoal(person.ID, saved.Amount); err != nil {
				return nil, err
			}
		}

		affected = append(affected, saved)
	}

	log.L.WithFields(log.Fields{
		"period": req.Period,
		"scope":  req.Scope,
		"items":  len(affected),
	}).Info("Upsert em lote de orçamentos aplicado")

	return affected, nil
}

func (s *Service) UpdateByIDTx(tx *sql.Tx, id string, patch domain.BudgetPatch, actorID string) (*domain.Budget, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	if patch.Status != nil && !domain.ValidBudgetStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}

	budgetRepo := s.budgetRepo.WithTx(tx)

	existing, err := budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBudgetNotFound
	}

	updated := *existing
	if patch.Amount != nil {
		updated.Amount = utils.ClampNonNegative(*patch.Amount)
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}

	if err := budgetRepo.Update(&updated); err != nil {
		return nil, err
	}

	// Mantém o espelho legado coerente com o novo valor
	person, err := s.personRepo.WithTx(tx).GetByID(updated.PersonID)
	if err != nil {
		return nil, err
	}
	if person != nil && person.RoleID == domain.RoleAdvisor {
		if err := s.personRepo.WithTx(tx).UpdateMonthlyGoal(person.ID, updated.Amount); err != nil {
			return nil, err
		}
	}

	return &updated, nil
}

func (s *Service) CopyFromPreviousPeriodTx(tx *sql.Tx, period domain.Period, scope, actorID string) ([]*domain.Budget, error) {
	budgetRepo := s.budgetRepo.WithTx(tx)

	previous, err := budgetRepo.ListByPeriodScope(period.Previous().String(), scope)
	if err != nil {
		return nil, err
	}

	copied := make([]*domain.Budget, 0)
	for _, budget := range previous {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		candidate := &domain.Budget{
			ID:        id,
			Period:    period.String(),
			PersonID:  budget.PersonID,
			Scope:     budget.Scope,
			Amount:    budget.Amount,
			Status:    budget.Status,
			CreatedBy: actorID,
		}

		// Inserção condicional: chaves já presentes no período alvo são
		// preservadas intactas
		inserted, err := budgetRepo.InsertIgnoreDuplicate(candidate)
		if err != nil {
			return nil, err
		}
		if inserted {
			copied = append(copied, candidate)
		}
	}

	log.L.WithFields(log.Fields{
		"period": period.String(),
		"scope":  scope,
		"copied": len(copied),
	}).Info("Orçamentos copiados do período anterior")

	return copied, nil
}

func (s *Service) Tree(period, scope string) ([]*domain.BudgetTreeNode, error) {
	units, err := s.orgUnitRepo.ListAll()
	if err != nil {
		return nil, err
	}

	persons, err := s.personRepo.ListActive()
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListByPeriodScope(period, scope)
	if err != nil {
		return nil, err
	}

	budgetByPerson := make(map[string]*domain.Budget, len(budgets))
	for _, budget := range budgets {
		budgetByPerson[budget.PersonID] = budget
	}

	personsByUnit := make(map[string][]*domain.Person)
	for _, person := range persons {
		personsByUnit[person.OrgUnitID] = append(personsByUnit[person.OrgUnitID], person)
	}

	nodes := make(map[string]*domain.BudgetTreeNode, len(units))
	for _, unit := range units {
		node := &domain.BudgetTreeNode{Unit: *unit}

		if unit.Tier == domain.TierLocal {
			for _, person := range personsByUnit[unit.ID] {
				node.PersonCount++
				if budget, ok := budgetByPerson[person.ID]; ok {
					node.BudgetTotal += budget.Amount
				} else {
					node.MissingCount++
				}
			}
		}

		nodes[unit.ID] = node
	}

	roots := make([]*domain.BudgetTreeNode, 0)
	for _, unit := range units {
		node := nodes[unit.ID]
		if unit.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*unit.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sort.Slice(roots, func(i, j int) bool {
		return roots[i].Unit.Name < roots[j].Unit.Name
	})

	return roots, nil
}
