package allocating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWorkedDays(t *testing.T) {
	march := domain.Period{Year: 2025, Month: time.March}

	tests := []struct {
		name      string
		period    domain.Period
		novelties []*domain.Novelty
		expected  int
	}{
		{
			name:      "Mês sem novidades - todos os dias contam como trabalhados",
			period:    march,
			novelties: nil,
			expected:  31,
		},
		{
			name:   "Novidade de 5 dias dentro do mês - subtrai exatamente 5 dias",
			period: march,
			novelties: []*domain.Novelty{
				{StartDate: date(2025, time.March, 10), EndDate: date(2025, time.March, 14)},
			},
			expected: 26,
		},
		{
			name:   "Novidades cobrindo o mesmo dia - o dia não subtrai em dobro",
			period: march,
			novelties: []*domain.Novelty{
				{StartDate: date(2025, time.March, 10), EndDate: date(2025, time.March, 14)},
				{StartDate: date(2025, time.March, 14), EndDate: date(2025, time.March, 16)},
			},
			expected: 24,
		},
		{
			name:   "Novidade cruzando a virada do mês - só os dias dentro do período contam",
			period: march,
			novelties: []*domain.Novelty{
				{StartDate: date(2025, time.February, 25), EndDate: date(2025, time.March, 3)},
			},
			expected: 28,
		},
		{
			name:   "Novidade cobrindo o mês inteiro - zero dias trabalhados",
			period: march,
			novelties: []*domain.Novelty{
				{StartDate: date(2025, time.February, 1), EndDate: date(2025, time.April, 30)},
			},
			expected: 0,
		},
		{
			name:      "Fevereiro de ano bissexto - 29 dias-calendário",
			period:    domain.Period{Year: 2024, Month: time.February},
			novelties: nil,
			expected:  29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WorkedDays(tt.period, tt.novelties))
		})
	}
}

func TestProratedTarget(t *testing.T) {
	tests := []struct {
		name        string
		base        int
		workedDays  int
		daysInMonth int
		expected    float64
	}{
		{
			name:        "Mês completo trabalhado - meta igual à base",
			base:        1000,
			workedDays:  31,
			daysInMonth: 31,
			expected:    1000,
		},
		{
			name:        "26 de 31 dias trabalhados - rateio arredondado em duas casas",
			base:        1000,
			workedDays:  26,
			daysInMonth: 31,
			expected:    838.71,
		},
		{
			name:        "Zero dias trabalhados - meta zero",
			base:        1000,
			workedDays:  0,
			daysInMonth: 31,
			expected:    0,
		},
		{
			name:        "Base não positiva - meta zero independente dos dias",
			base:        0,
			workedDays:  31,
			daysInMonth: 31,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProratedTarget(tt.base, tt.workedDays, tt.daysInMonth))
		})
	}
}

func TestService_RecomputeTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNoveltyRepo := mocks.NewMockNoveltyRepository(ctrl)
	mockBudgetRepo := mocks.NewMockBudgetRepository(ctrl)
	mockAllocationRepo := mocks.NewMockAllocationRepository(ctrl)

	service := &Service{
		noveltyRepo:    mockNoveltyRepo,
		budgetRepo:     mockBudgetRepo,
		allocationRepo: mockAllocationRepo,
		scope:          domain.BudgetScopeSales,
		fallbackBase:   500,
	}

	march := domain.Period{Year: 2025, Month: time.March}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, allocation *domain.MonthlyAllocation, err error)
	}{
		{
			name: "Orçamento ativo no período - base vem do orçamento e meta é rateada",
			setup: func() {
				mockNoveltyRepo.EXPECT().WithTx(gomock.Any()).Return(mockNoveltyRepo)
				mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
				mockAllocationRepo.EXPECT().WithTx(gomock.Any()).Return(mockAllocationRepo)

				mockNoveltyRepo.EXPECT().
					FindOverlapping("PRS001", march.Start(), march.End(), "").
					Return([]*domain.Novelty{
						{StartDate: date(2025, time.March, 10), EndDate: date(2025, time.March, 14)},
					}, nil)

				mockBudgetRepo.EXPECT().
					GetActiveByKey("03-2025", "PRS001", domain.BudgetScopeSales).
					Return(&domain.Budget{Amount: 1000}, nil)

				mockAllocationRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, allocation *domain.MonthlyAllocation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1000, allocation.BaseAmount)
				assert.Equal(t, 26, allocation.WorkedDays)
				assert.Equal(t, 31, allocation.DaysInMonth)
				assert.Equal(t, 838.71, allocation.ProratedTarget)
			},
		},
		{
			name: "Sem orçamento ativo - base preservada da alocação já persistida",
			setup: func() {
				mockNoveltyRepo.EXPECT().WithTx(gomock.Any()).Return(mockNoveltyRepo)
				mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
				mockAllocationRepo.EXPECT().WithTx(gomock.Any()).Return(mockAllocationRepo)

				mockNoveltyRepo.EXPECT().
					FindOverlapping("PRS001", march.Start(), march.End(), "").
					Return(nil, nil)

				mockBudgetRepo.EXPECT().
					GetActiveByKey("03-2025", "PRS001", domain.BudgetScopeSales).
					Return(nil, nil)

				mockAllocationRepo.EXPECT().
					GetByPersonAndPeriod("PRS001", "03-2025").
					Return(&domain.MonthlyAllocation{BaseAmount: 900}, nil)

				mockAllocationRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, allocation *domain.MonthlyAllocation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 900, allocation.BaseAmount)
				assert.Equal(t, 31, allocation.WorkedDays)
				assert.Equal(t, 900.0, allocation.ProratedTarget)
			},
		},
		{
			name: "Sem orçamento nem alocação anterior - usa a base de fallback",
			setup: func() {
				mockNoveltyRepo.EXPECT().WithTx(gomock.Any()).Return(mockNoveltyRepo)
				mockBudgetRepo.EXPECT().WithTx(gomock.Any()).Return(mockBudgetRepo)
				mockAllocationRepo.EXPECT().WithTx(gomock.Any()).Return(mockAllocationRepo)

				mockNoveltyRepo.EXPECT().
					FindOverlapping("PRS001", march.Start(), march.End(), "").
					Return(nil, nil)

				mockBudgetRepo.EXPECT().
					GetActiveByKey("03-2025", "PRS001", domain.BudgetScopeSales).
					Return(nil, nil)

				mockAllocationRepo.EXPECT().
					GetByPersonAndPeriod("PRS001", "03-2025").
					Return(nil, nil)

				mockAllocationRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, allocation *domain.MonthlyAllocation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 500, allocation.BaseAmount)
				assert.Equal(t, 500.0, allocation.ProratedTarget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			allocation, err := service.RecomputeTx(nil, "PRS001", march)
			tt.validate(t, allocation, err)
		})
	}
}
