package progressing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"github.com/vfg2006/sales-compliance-api/internal/settings"
	attributingmocks "github.com/vfg2006/sales-compliance-api/internal/usecases/attributing/mocks"
	"go.uber.org/mock/gomock"
)

func newSettings(ctrl *gomock.Controller, values map[string]string) *settings.Service {
	mockSettingRepo := mocks.NewMockSettingRepository(ctrl)
	mockSettingRepo.EXPECT().GetAll().Return(values, nil).AnyTimes()
	return settings.NewService(mockSettingRepo, time.Minute)
}

func TestService_Recompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)
	mockAllocationRepo := mocks.NewMockAllocationRepository(ctrl)
	mockProgressRepo := mocks.NewMockProgressRepository(ctrl)
	mockAttributor := attributingmocks.NewMockAttributor(ctrl)

	service := &Service{
		personRepo:     mockPersonRepo,
		allocationRepo: mockAllocationRepo,
		progressRepo:   mockProgressRepo,
		attributor:     mockAttributor,
		settings:       newSettings(ctrl, map[string]string{}),
	}

	march := domain.Period{Year: 2025, Month: time.March}
	person := &domain.Person{ID: "PRS001", ExternalID: "EXT-1001", Active: true}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, record *domain.ProgressRecord, err error)
	}{
		{
			name: "Alocação e vendas presentes - percentuais calculados sobre meta rateada e base",
			setup: func() {
				mockPersonRepo.EXPECT().GetByID("PRS001").Return(person, nil)

				mockAllocationRepo.EXPECT().
					GetByPersonAndPeriod("PRS001", "03-2025").
					Return(&domain.MonthlyAllocation{BaseAmount: 100, ProratedTarget: 80}, nil)

				mockAttributor.EXPECT().
					Aggregate(person, march).
					Return(domain.SalesBreakdown{InCount: 72, OutCount: 10, TotalCount: 90}, nil)

				mockProgressRepo.EXPECT().
					GetByPersonAndPeriod("PRS001", "03-2025").
					Return(nil, nil)

				mockProgressRepo.EXPECT().
					SaveOrUpdate(gomock.Any(), 0).
					Return(true, nil)
			},
			validate: func(t *testing.T, record *domain.ProgressRecord, err error) {
				assert.NoError(t, err)
				// 72 de 80 rateados = 90%; 90 de 100 esperados = 90%
				assert.Equal(t, 90.0, record.ComplianceIn)
				assert.Equal(t, 90.0, record.ComplianceGlobal)
				// Limiares padrão: 80% dentro do território, 90% global
				assert.True(t, record.MetIn)
				assert.True(t, record.MetGlobal)
			},
		},
		{
			name: "Sem alocação persistida - meta zero e percentuais zerados",
			setup: func() {
				mockPersonRepo.EXPECT().GetByID("PRS001").Return(person, nil)

				mockAllocationRepo.EXPECT().
					GetByPersonAndPeriod("PRS001", "03-2025").
					Return(nil, nil)

				mockAttributor.EXPECT().
					Aggregate(person, march).
					Return(domain.SalesBreakdown{InCount: 5, OutCount: 2, TotalCount: 7}, nil)

				mockProgressRepo.EXPECT().
					GetByPersonAndPeriod("PRS001", "03-2025").
					Return(nil, nil)

				mockProgressRepo.EXPECT().
					SaveOrUpdate(gomock.Any(), 0).
					Return(true, nil)
			},
			validate: func(t *testing.T, record *domain.ProgressRecord, err error) {
				assert.NoError(t, err)
				// Meta não positiva zera o percentual mesmo com vendas realizadas
				assert.Equal(t, 0.0, record.ComplianceIn)
				assert.Equal(t, 0.0, record.ComplianceGlobal)
				assert.False(t, record.MetIn)
				assert.False(t, record.MetGlobal)
				assert.Equal(t, 7, record.TotalCount)
			},
		},
		{
			name: "Pessoa inexistente",
			setup: func() {
				mockPersonRepo.EXPECT().GetByID("PRS001").Return(nil, nil)
			},
			validate: func(t *testing.T, record *domain.ProgressRecord, err error) {
				assert.Equal(t, ErrPersonNotFound, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			record, err := service.Recompute("PRS001", march)
			tt.validate(t, record, err)
		})
	}
}

func TestService_Recompute_VersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)
	mockAllocationRepo := mocks.NewMockAllocationRepository(ctrl)
	mockProgressRepo := mocks.NewMockProgressRepository(ctrl)
	mockAttributor := attributingmocks.NewMockAttributor(ctrl)

	service := &Service{
		personRepo:     mockPersonRepo,
		allocationRepo: mockAllocationRepo,
		progressRepo:   mockProgressRepo,
		attributor:     mockAttributor,
		settings:       newSettings(ctrl, map[string]string{}),
	}

	march := domain.Period{Year: 2025, Month: time.March}
	person := &domain.Person{ID: "PRS001", ExternalID: "EXT-1001"}

	setupRecompute := func() {
		mockPersonRepo.EXPECT().GetByID("PRS001").Return(person, nil)
		mockAllocationRepo.EXPECT().
			GetByPersonAndPeriod("PRS001", "03-2025").
			Return(&domain.MonthlyAllocation{BaseAmount: 100, ProratedTarget: 100}, nil)
		mockAttributor.EXPECT().
			Aggregate(person, march).
			Return(domain.SalesBreakdown{InCount: 50, TotalCount: 50}, nil)
	}

	t.Run("Versão avançou entre leitura e escrita - tenta de novo uma única vez", func(t *testing.T) {
		setupRecompute()

		// Primeira tentativa perde a corrida
		mockProgressRepo.EXPECT().
			GetByPersonAndPeriod("PRS001", "03-2025").
			Return(&domain.ProgressRecord{Version: 3}, nil)
		mockProgressRepo.EXPECT().
			SaveOrUpdate(gomock.Any(), 3).
			Return(false, nil)

		// Segunda tentativa relê a versão corrente e aplica
		mockProgressRepo.EXPECT().
			GetByPersonAndPeriod("PRS001", "03-2025").
			Return(&domain.ProgressRecord{Version: 4}, nil)
		mockProgressRepo.EXPECT().
			SaveOrUpdate(gomock.Any(), 4).
			Return(true, nil)

		_, err := service.Recompute("PRS001", march)
		assert.NoError(t, err)
	})

	t.Run("Conflito persistente - esgota as tentativas e devolve o erro de versão", func(t *testing.T) {
		setupRecompute()

		mockProgressRepo.EXPECT().
			GetByPersonAndPeriod("PRS001", "03-2025").
			Return(&domain.ProgressRecord{Version: 3}, nil).
			Times(2)
		mockProgressRepo.EXPECT().
			SaveOrUpdate(gomock.Any(), 3).
			Return(false, nil).
			Times(2)

		_, err := service.Recompute("PRS001", march)
		assert.Equal(t, ErrStaleVersion, err)
	})
}
