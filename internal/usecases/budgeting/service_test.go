package budgeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func TestService_ValidateBatch(t *testing.T) {
	service := &Service{}

	valid := domain.BudgetBatchRequest{
		Period: "03-2025",
		Scope:  domain.BudgetScopeSales,
		Items:  []domain.BudgetBatchItem{{PersonID: "PRS001", Amount: 100}},
	}

	tests := []struct {
		name     string
		mutate   func(req *domain.BudgetBatchRequest)
		expected error
	}{
		{
			name:     "Lote válido",
			mutate:   func(req *domain.BudgetBatchRequest) {},
			expected: nil,
		},
		{
			name: "Período fora do formato mm-yyyy",
			mutate: func(req *domain.BudgetBatchRequest) {
				req.Period = "2025-03"
			},
			expected: ErrInvalidPeriod,
		},
		{
			name: "Escopo ausente",
			mutate: func(req *domain.BudgetBatchRequest) {
				req.Scope = ""
			},
			expected: ErrScopeRequired,
		},
		{
			name: "Lote vazio",
			mutate: func(req *domain.BudgetBatchRequest) {
				req.Items = nil
			},
			expected: ErrEmptyBatch,
		},
		{
			name: "Item sem pessoa",
			mutate: func(req *domain.BudgetBatchRequest) {
				req.Items = []domain.BudgetBatchItem{{Amount: 100}}
			},
			expected: ErrPersonRequired,
		},
		{
			name: "Status desconhecido",
			mutate: func(req *domain.BudgetBatchRequest) {
				req.Items = []domain.BudgetBatchItem{
					{PersonID: "PRS001", Amount: 100, Status: stringPtr("archived")},
				}
			},
			expected: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			assert.Equal(t, tt.expected, service.ValidateBatch(req))
		})
	}
}

func TestService_UpsertBatchTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBudgetRepo := mocks.NewMockBudgetRepository(ctrl)
	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)

	service := &Service{
		budgetRepo: mockBudgetRepo,
		personRepo: mockPersonRepo,
	}

	req := domain.BudgetBatchRequest{
		Period: "03-2025",
		Scope:  domain.BudgetScopeSales,
		Items: []domain.BudgetBatchItem{
			{PersonID: "PRS001", Amount: 1000},
			{PersonID: "PRS010", Amount: 5000},
		},
	}

	t.Run("Espelho legado só é atualizado para o papel base de vendas", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
		mockPersonRepo.EXPECT().WithTx(gomock.Any()).Return(mockPersonRepo)

		// PRS001 é vendedor: o valor espelha no monthly_goal
		mockPersonRepo.EXPECT().
			GetByID("PRS001").
			Return(&domain.Person{ID: "PRS001", RoleID: domain.RoleAdvisor}, nil)
		mockBudgetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(budget *domain.Budget) (*domain.Budget, error) {
				assert.Equal(t, "03-2025", budget.Period)
				assert.Equal(t, domain.BudgetStatusActive, budget.Status)
				return budget, nil
			})
		mockPersonRepo.EXPECT().UpdateMonthlyGoal("PRS001", 1000).Return(nil)

		// PRS010 é gestor: nada de espelho
		mockPersonRepo.EXPECT().
			GetByID("PRS010").
			Return(&domain.Person{ID: "PRS010", RoleID: domain.RoleManager}, nil)
		mockBudgetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(budget *domain.Budget) (*domain.Budget, error) {
				return budget, nil
			})

		affected, err := service.UpsertBatchTx(nil, req, "USR001")
		assert.NoError(t, err)
		assert.Len(t, affected, 2)
	})

	t.Run("Valor negativo é saturado em zero", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
		mockPersonRepo.EXPECT().WithTx(gomock.Any()).Return(mockPersonRepo)

		mockPersonRepo.EXPECT().
			GetByID("PRS001").
			Return(&domain.Person{ID: "PRS001", RoleID: domain.RoleManager}, nil)
		mockBudgetRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(budget *domain.Budget) (*domain.Budget, error) {
				assert.Equal(t, 0, budget.Amount)
				return budget, nil
			})

		negative := domain.BudgetBatchRequest{
			Period: "03-2025",
			Scope:  domain.BudgetScopeSales,
			Items:  []domain.BudgetBatchItem{{PersonID: "PRS001", Amount: -50}},
		}

		_, err := service.UpsertBatchTx(nil, negative, "USR001")
		assert.NoError(t, err)
	})

	t.Run("Pessoa inexistente interrompe o lote", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
		mockPersonRepo.EXPECT().WithTx(gomock.Any()).Return(mockPersonRepo)

		mockPersonRepo.EXPECT().GetByID("PRS001").Return(nil, nil)

		_, err := service.UpsertBatchTx(nil, req, "USR001")
		assert.Equal(t, ErrPersonNotFound, err)
	})
}

func TestService_UpdateByIDTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBudgetRepo := mocks.NewMockBudgetRepository(ctrl)
	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)

	service := &Service{
		budgetRepo: mockBudgetRepo,
		personRepo: mockPersonRepo,
	}

	existing := &domain.Budget{
		ID:       "BDG001",
		Period:   "03-2025",
		PersonID: "PRS001",
		Scope:    domain.BudgetScopeSales,
		Amount:   1000,
		Status:   domain.BudgetStatusActive,
	}

	t.Run("Patch vazio", func(t *testing.T) {
		_, err := service.UpdateByIDTx(nil, "BDG001", domain.BudgetPatch{}, "USR001")
		assert.Equal(t, ErrEmptyPatch, err)
	})

	t.Run("Orçamento inexistente", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
		mockBudgetRepo.EXPECT().GetByID("BDG999").Return(nil, nil)

		_, err := service.UpdateByIDTx(nil, "BDG999", domain.BudgetPatch{Amount: intPtr(500)}, "USR001")
		assert.Equal(t, ErrBudgetNotFound, err)
	})

	t.Run("Atualização de valor mantém o espelho legado coerente", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
		mockBudgetRepo.EXPECT().GetByID("BDG001").Return(existing, nil)
		mockBudgetRepo.EXPECT().Update(gomock.Any()).Return(nil)

		mockPersonRepo.EXPECT().WithTx(gomock.Any()).Return(mockPersonRepo).Times(2)
		mockPersonRepo.EXPECT().
			GetByID("PRS001").
			Return(&domain.Person{ID: "PRS001", RoleID: domain.RoleAdvisor}, nil)
		mockPersonRepo.EXPECT().UpdateMonthlyGoal("PRS001", 1500).Return(nil)

		updated, err := service.UpdateByIDTx(nil, "BDG001", domain.BudgetPatch{Amount: intPtr(1500)}, "USR001")
		assert.NoError(t, err)
		assert.Equal(t, 1500, updated.Amount)
		assert.Equal(t, domain.BudgetStatusActive, updated.Status)
	})
}

func TestService_CopyFromPreviousPeriodTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBudgetRepo := mocks.NewMockBudgetRepository(ctrl)

	service := &Service{
		budgetRepo: mockBudgetRepo,
	}

	april := domain.Period{Year: 2025, Month: time.April}

	t.Run("Chaves já presentes no período alvo nunca são sobrescritas", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)

		mockBudgetRepo.EXPECT().
			ListByPeriodScope("03-2025", domain.BudgetScopeSales).
			Return([]*domain.Budget{
				{PersonID: "PRS001", Scope: domain.BudgetScopeSales, Amount: 1000, Status: domain.BudgetStatusActive},
				{PersonID: "PRS002", Scope: domain.BudgetScopeSales, Amount: 2000, Status: domain.BudgetStatusActive},
			}, nil)

		// PRS001 já tem orçamento em abril: a inserção condicional não aplica
		mockBudgetRepo.EXPECT().
			InsertIgnoreDuplicate(gomock.Any()).
			DoAndReturn(func(budget *domain.Budget) (bool, error) {
				assert.Equal(t, "04-2025", budget.Period)
				return budget.PersonID != "PRS001", nil
			}).
			Times(2)

		copied, err := service.CopyFromPreviousPeriodTx(nil, april, domain.BudgetScopeSales, "USR001")
		assert.NoError(t, err)
		assert.Len(t, copied, 1)
		assert.Equal(t, "PRS002", copied[0].PersonID)
		assert.Equal(t, 2000, copied[0].Amount)
	})

	t.Run("Mês anterior sem orçamentos - nada a copiar", func(t *testing.T) {
		mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)

		mockBudgetRepo.EXPECT().
			ListByPeriodScope("03-2025", domain.BudgetScopeSales).
			Return(nil, nil)

		copied, err := service.CopyFromPreviousPeriodTx(nil, april, domain.BudgetScopeSales, "USR001")
		assert.NoError(t, err)
		assert.Empty(t, copied)
	})
}

func TestService_Tree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBudgetRepo := mocks.NewMockBudgetRepository(ctrl)
	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)
	mockOrgUnitRepo := mocks.NewMockOrgUnitRepository(ctrl)

	service := &Service{
		budgetRepo:  mockBudgetRepo,
		personRepo:  mockPersonRepo,
		orgUnitRepo: mockOrgUnitRepo,
	}

	national := &domain.OrgUnit{ID: "ORG001", Name: "Nacional", Tier: domain.TierTop}
	regional := &domain.OrgUnit{ID: "ORG002", Name: "Regional Norte", Tier: domain.TierRegional, ParentID: stringPtr("ORG001")}
	local := &domain.OrgUnit{ID: "ORG003", Name: "Bogotá Centro", Tier: domain.TierLocal, ParentID: stringPtr("ORG002")}

	mockOrgUnitRepo.EXPECT().
		ListAll().
		Return([]*domain.OrgUnit{national, regional, local}, nil)

	mockPersonRepo.EXPECT().
		ListActive().
		Return([]*domain.Person{
			{ID: "PRS001", OrgUnitID: "ORG003"},
			{ID: "PRS002", OrgUnitID: "ORG003"},
			{ID: "PRS003", OrgUnitID: "ORG003"},
		}, nil)

	mockBudgetRepo.EXPECT().
		ListByPeriodScope("03-2025", domain.BudgetScopeSales).
		Return([]*domain.Budget{
			{PersonID: "PRS001", Amount: 1000},
			{PersonID: "PRS002", Amount: 2000},
		}, nil)

	roots, err := service.Tree("03-2025", domain.BudgetScopeSales)
	assert.NoError(t, err)
	assert.Len(t, roots, 1)

	assert.Equal(t, "Nacional", roots[0].Unit.Name)
	assert.Len(t, roots[0].Children, 1)

	leaf := roots[0].Children[0].Children[0]
	assert.Equal(t, "Bogotá Centro", leaf.Unit.Name)
	assert.Equal(t, 3, leaf.PersonCount)
	assert.Equal(t, 3000, leaf.BudgetTotal)
	assert.Equal(t, 1, leaf.MissingCount)
}
